// Package nn defines the model contract the solver trains against, and the
// registry of weight-initialization rules.
package nn

import (
	"github.com/mint-ml/mint/internal/tensor"
)

// ParamConfig describes a single trainable parameter: its shape, and
// optionally metadata consumed by initialization rules.
type ParamConfig struct {
	Shape tensor.Shape
}

// Model is the contract a trainable model exposes to the solver.
//
// The solver owns the training procedure but not the model: it reads
// ParamConfigs to discover the parameter set, mutates the live Params mapping
// as it applies updates, and calls Forward/Loss to evaluate batches.
//
// Params must return the model's live parameter mapping — the same map the
// forward pass consults — so that updates written into it take effect on the
// next Forward call. SetParams replaces the mapping wholesale; the solver uses
// it to install the best-validation snapshot at the end of training.
type Model interface {
	// Forward computes predictions for a batch of inputs.
	Forward(input *tensor.Tensor) (*tensor.Tensor, error)

	// Loss computes the scalar training loss for predictions against labels.
	Loss(pred, label *tensor.Tensor) (float64, error)

	// Params returns the live, mutable name → value parameter mapping.
	Params() map[string]*tensor.Tensor

	// SetParams replaces the parameter mapping.
	SetParams(params map[string]*tensor.Tensor)

	// ParamConfigs returns the read-only name → metadata mapping describing
	// every trainable parameter.
	ParamConfigs() map[string]ParamConfig
}
