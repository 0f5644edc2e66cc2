// Package grad defines the gradient capability the solver is built against.
//
// Differentiation is injected rather than built in: the solver only needs a
// function that, given a loss and the parameters to differentiate, returns one
// gradient per parameter plus the loss value. Any engine satisfying Function
// can drive training — the bundled central-difference implementation, a
// hand-derived analytic gradient, or a test stub.
package grad

import (
	"github.com/mint-ml/mint/internal/tensor"
)

// Loss evaluates the training loss. The parameter arguments identify the
// tensors being differentiated; implementations of the loss typically close
// over the model and batch and consult the model's live parameters directly.
type Loss func(params ...*tensor.Tensor) (float64, error)

// Function computes gradients of a loss with respect to params.
//
// The returned slice holds one gradient per parameter, in the same order as
// params. The float64 is the loss value at the current parameters.
type Function func(loss Loss, params []*tensor.Tensor) ([]*tensor.Tensor, float64, error)

// Numeric returns a central-difference gradient Function with perturbation
// size eps (a value around 1e-5 works well for float64).
//
// Each element of each parameter is perturbed in place and restored, so the
// loss must read the live parameter tensors — which is exactly the contract
// the solver's loss closure follows. Cost is two loss evaluations per
// parameter element; suitable for small models and for validating analytic
// gradients, not for large networks.
func Numeric(eps float64) Function {
	return func(loss Loss, params []*tensor.Tensor) ([]*tensor.Tensor, float64, error) {
		base, err := loss(params...)
		if err != nil {
			return nil, 0, err
		}

		grads := make([]*tensor.Tensor, len(params))
		for i, p := range params {
			g := tensor.Zeros(p.Shape())
			pd := p.Data()
			gd := g.Data()
			for j := range pd {
				orig := pd[j]

				pd[j] = orig + eps
				plus, err := loss(params...)
				if err != nil {
					pd[j] = orig
					return nil, 0, err
				}

				pd[j] = orig - eps
				minus, err := loss(params...)
				pd[j] = orig
				if err != nil {
					return nil, 0, err
				}

				gd[j] = (plus - minus) / (2 * eps)
			}
			grads[i] = g
		}
		return grads, base, nil
	}
}
