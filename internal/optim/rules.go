package optim

import (
	"math"

	"github.com/mint-ml/mint/internal/tensor"
)

// SGD performs vanilla stochastic gradient descent.
//
// Update rule:
//
//	w = w - learning_rate * dw
//
// Config keys: learning_rate (default 1e-2).
func SGD(w, dw *tensor.Tensor, cfg Config) (*tensor.Tensor, Config) {
	if cfg == nil {
		cfg = Config{}
	}
	lr := cfg.Float(LearningRate, 1e-2)

	next := w.Clone()
	nd := next.Data()
	gd := dw.Data()
	for i := range nd {
		nd[i] -= lr * gd[i]
	}
	return next, cfg
}

// SGDMomentum performs stochastic gradient descent with classical momentum.
//
// Update rule:
//
//	v = momentum * v - learning_rate * dw
//	w = w + v
//
// Config keys: learning_rate (default 1e-2), momentum (default 0.9),
// velocity (buffer, zero-initialized).
func SGDMomentum(w, dw *tensor.Tensor, cfg Config) (*tensor.Tensor, Config) {
	if cfg == nil {
		cfg = Config{}
	}
	lr := cfg.Float(LearningRate, 1e-2)
	momentum := cfg.Float("momentum", 0.9)
	v := cfg.Buffer("velocity", w.Shape())

	next := w.Clone()
	nd := next.Data()
	gd := dw.Data()
	vd := v.Data()
	for i := range nd {
		vd[i] = momentum*vd[i] - lr*gd[i]
		nd[i] += vd[i]
	}
	return next, cfg
}

// RMSProp scales the learning rate per element by a moving average of squared
// gradients.
//
// Update rule:
//
//	cache = decay_rate * cache + (1 - decay_rate) * dw²
//	w = w - learning_rate * dw / (sqrt(cache) + epsilon)
//
// Config keys: learning_rate (default 1e-2), decay_rate (default 0.99),
// epsilon (default 1e-8), cache (buffer, zero-initialized).
func RMSProp(w, dw *tensor.Tensor, cfg Config) (*tensor.Tensor, Config) {
	if cfg == nil {
		cfg = Config{}
	}
	lr := cfg.Float(LearningRate, 1e-2)
	decay := cfg.Float("decay_rate", 0.99)
	eps := cfg.Float("epsilon", 1e-8)
	cache := cfg.Buffer("cache", w.Shape())

	next := w.Clone()
	nd := next.Data()
	gd := dw.Data()
	cd := cache.Data()
	for i := range nd {
		g := gd[i]
		cd[i] = decay*cd[i] + (1-decay)*g*g
		nd[i] -= lr * g / (math.Sqrt(cd[i]) + eps)
	}
	return next, cfg
}

// Adam combines momentum with per-element adaptive learning rates and applies
// bias correction to both moment estimates.
//
// Update rule:
//
//	t += 1
//	m = beta1 * m + (1 - beta1) * dw
//	v = beta2 * v + (1 - beta2) * dw²
//	m_hat = m / (1 - beta1^t)
//	v_hat = v / (1 - beta2^t)
//	w = w - learning_rate * m_hat / (sqrt(v_hat) + epsilon)
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014).
//
// Config keys: learning_rate (default 1e-3), beta1 (default 0.9), beta2
// (default 0.999), epsilon (default 1e-8), m and v (buffers), t (step
// counter).
func Adam(w, dw *tensor.Tensor, cfg Config) (*tensor.Tensor, Config) {
	if cfg == nil {
		cfg = Config{}
	}
	lr := cfg.Float(LearningRate, 1e-3)
	beta1 := cfg.Float("beta1", 0.9)
	beta2 := cfg.Float("beta2", 0.999)
	eps := cfg.Float("epsilon", 1e-8)
	m := cfg.Buffer("m", w.Shape())
	v := cfg.Buffer("v", w.Shape())

	t := cfg.Int("t", 0) + 1
	cfg["t"] = t
	bias1 := 1 - math.Pow(beta1, float64(t))
	bias2 := 1 - math.Pow(beta2, float64(t))

	next := w.Clone()
	nd := next.Data()
	gd := dw.Data()
	md := m.Data()
	vd := v.Data()
	for i := range nd {
		g := gd[i]
		md[i] = beta1*md[i] + (1-beta1)*g
		vd[i] = beta2*vd[i] + (1-beta2)*g*g
		mHat := md[i] / bias1
		vHat := vd[i] / bias2
		nd[i] -= lr * mHat / (math.Sqrt(vHat) + eps)
	}
	return next, cfg
}
