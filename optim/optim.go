// Copyright 2025 The mint Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides the update rules used to turn gradients into
// parameter updates, resolved by name from a registry.
//
// Built-in rules: "sgd", "sgd_momentum", "rmsprop", "adam". Custom rules can
// be added with Register and selected through the solver's "update_rule"
// option.
//
// Example:
//
//	update, ok := optim.Resolve("adam")
//	next, cfg := update(w, dw, optim.Config{"learning_rate": 1e-3})
package optim

import (
	"github.com/mint-ml/mint/internal/optim"
	"github.com/mint-ml/mint/internal/tensor"
)

// LearningRate is the Config key holding a rule's step size. The solver
// multiplies this key by the decay factor at every epoch boundary.
const LearningRate = optim.LearningRate

// Config holds the hyperparameters and evolving per-parameter state of an
// update rule.
type Config = optim.Config

// UpdateFunc performs a single parameter update, returning the next parameter
// value and the evolved Config.
type UpdateFunc = optim.UpdateFunc

// Register adds an update rule under the given name, replacing any existing
// registration.
func Register(name string, fn UpdateFunc) {
	optim.Register(name, fn)
}

// Resolve looks up an update rule by name.
func Resolve(name string) (UpdateFunc, bool) {
	return optim.Resolve(name)
}

// Rules returns the names of all registered update rules.
func Rules() []string {
	return optim.Rules()
}

// SGD performs vanilla stochastic gradient descent.
func SGD(w, dw *tensor.Tensor, cfg Config) (*tensor.Tensor, Config) {
	return optim.SGD(w, dw, cfg)
}

// SGDMomentum performs stochastic gradient descent with classical momentum.
func SGDMomentum(w, dw *tensor.Tensor, cfg Config) (*tensor.Tensor, Config) {
	return optim.SGDMomentum(w, dw, cfg)
}

// RMSProp scales the learning rate per element by a moving average of squared
// gradients.
func RMSProp(w, dw *tensor.Tensor, cfg Config) (*tensor.Tensor, Config) {
	return optim.RMSProp(w, dw, cfg)
}

// Adam combines momentum with per-element adaptive learning rates and bias
// correction.
func Adam(w, dw *tensor.Tensor, cfg Config) (*tensor.Tensor, Config) {
	return optim.Adam(w, dw, cfg)
}
