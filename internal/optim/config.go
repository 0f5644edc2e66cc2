package optim

import (
	"github.com/mint-ml/mint/internal/tensor"
)

// LearningRate is the configuration key shared between update rules and the
// solver: every rule reads its step size from it, and the solver multiplies it
// by the decay factor at each epoch boundary.
const LearningRate = "learning_rate"

// Config holds the hyperparameters and evolving state of an update rule for a
// single parameter. Scalar hyperparameters (learning rate, momentum, betas)
// and tensor-valued buffers (velocity, moment estimates) live in the same
// mapping, keyed by name.
//
// Each parameter gets its own Config copy; update rules mutate it in place and
// return it from every call.
type Config map[string]any

// Float returns the value stored under key as a float64, or def if the key is
// absent. Integer values are widened.
func (c Config) Float(key string, def float64) float64 {
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

// Int returns the value stored under key as an int, or def if absent.
func (c Config) Int(key string, def int) int {
	v, ok := c[key]
	if !ok {
		return def
	}
	switch x := v.(type) {
	case int:
		return x
	case float64:
		return int(x)
	default:
		return def
	}
}

// Buffer returns the tensor buffer stored under key, creating and storing a
// zero tensor of the given shape on first use.
//
// Update rules use this for per-parameter accumulators: a fresh Config holds
// only scalar hyperparameters, and buffers materialize lazily on the first
// step.
func (c Config) Buffer(key string, shape tensor.Shape) *tensor.Tensor {
	if t, ok := c[key].(*tensor.Tensor); ok {
		return t
	}
	t := tensor.Zeros(shape)
	c[key] = t
	return t
}

// Clone returns an independent copy of the config. Tensor-valued buffers are
// deep-copied, so mutating one parameter's state never leaks into another's or
// into the base config.
func (c Config) Clone() Config {
	clone := make(Config, len(c))
	for k, v := range c {
		if t, ok := v.(*tensor.Tensor); ok {
			clone[k] = t.Clone()
			continue
		}
		clone[k] = v
	}
	return clone
}
