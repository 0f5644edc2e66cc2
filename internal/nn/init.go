package nn

import (
	"math"
	"math/rand"

	"github.com/mint-ml/mint/internal/tensor"
)

// InitConfig holds hyperparameters for an initialization rule, keyed by name.
// Each parameter gets its own independent copy.
type InitConfig map[string]any

// Float returns the value stored under key as a float64, or def if absent.
func (c InitConfig) Float(key string, def float64) float64 {
	v, ok := c[key]
	if !ok {
		return def
	}
	switch x := v.(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	default:
		return def
	}
}

// Clone returns an independent copy of the config.
func (c InitConfig) Clone() InitConfig {
	clone := make(InitConfig, len(c))
	for k, v := range c {
		clone[k] = v
	}
	return clone
}

// InitFunc produces an initial value for a parameter of the given shape.
type InitFunc func(shape tensor.Shape, cfg InitConfig) *tensor.Tensor

var initRegistry = map[string]InitFunc{
	"xavier":   Xavier,
	"gaussian": Gaussian,
	"constant": Constant,
	"zeros":    ZerosInit,
}

// RegisterInit adds an initialization rule under the given name, replacing any
// existing registration.
func RegisterInit(name string, fn InitFunc) {
	initRegistry[name] = fn
}

// ResolveInit looks up an initialization rule by name.
func ResolveInit(name string) (InitFunc, bool) {
	fn, ok := initRegistry[name]
	return fn, ok
}

// Xavier (Glorot) initialization.
//
// Draws values from the uniform distribution
// U(-sqrt(6/(fan_in + fan_out)), sqrt(6/(fan_in + fan_out))), which keeps the
// variance of activations roughly constant across layers. fan_in is the
// leading dimension, fan_out the trailing one; a 1-D shape uses its single
// dimension for both, and a scalar shape uses 1 for both.
func Xavier(shape tensor.Shape, cfg InitConfig) *tensor.Tensor {
	fanIn, fanOut := 1, 1
	if len(shape) > 0 {
		fanIn = shape[0]
		fanOut = shape[len(shape)-1]
	}
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))

	t := tensor.New(shape)
	data := t.Data()
	for i := range data {
		//nolint:gosec // math/rand is fine for weight initialization (not security-critical)
		data[i] = (rand.Float64()*2.0 - 1.0) * bound
	}
	return t
}

// Gaussian initialization: values drawn from N(mean, std²).
//
// Config keys: mean (default 0), std (default 0.01).
func Gaussian(shape tensor.Shape, cfg InitConfig) *tensor.Tensor {
	mean := cfg.Float("mean", 0)
	std := cfg.Float("std", 1e-2)

	t := tensor.New(shape)
	data := t.Data()
	for i := range data {
		//nolint:gosec // math/rand is fine for weight initialization (not security-critical)
		data[i] = rand.NormFloat64()*std + mean
	}
	return t
}

// Constant initialization: every element set to the configured value.
//
// Config keys: value (default 0).
func Constant(shape tensor.Shape, cfg InitConfig) *tensor.Tensor {
	return tensor.Full(shape, cfg.Float("value", 0))
}

// ZerosInit initializes a parameter to all zeros. Commonly used for biases.
func ZerosInit(shape tensor.Shape, cfg InitConfig) *tensor.Tensor {
	return tensor.Zeros(shape)
}
