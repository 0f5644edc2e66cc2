// Copyright 2025 The mint Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package grad exposes the gradient capability the solver is built against.
//
// Differentiation is an injected function rather than a built-in engine: any
// implementation of Function — the bundled central-difference differentiator,
// an analytic gradient, or a test stub — can drive training.
package grad

import (
	"github.com/mint-ml/mint/internal/grad"
)

// Loss evaluates the training loss for the parameters being differentiated.
type Loss = grad.Loss

// Function computes per-parameter gradients of a loss along with its value.
type Function = grad.Function

// Numeric returns a central-difference gradient Function with perturbation
// size eps. Suitable for small models and for validating analytic gradients.
func Numeric(eps float64) Function {
	return grad.Numeric(eps)
}
