// Copyright 2025 The mint Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn exposes the model contract the solver trains against, together
// with the registry of weight-initialization rules.
//
// A model is anything implementing the Model interface: a forward pass, a
// scalar loss, a live parameter mapping and a parameter-config mapping
// describing every trainable parameter's shape.
//
// Built-in init rules: "xavier", "gaussian", "constant", "zeros".
package nn

import (
	"github.com/mint-ml/mint/internal/nn"
	"github.com/mint-ml/mint/internal/tensor"
)

// Model is the contract a trainable model exposes to the solver.
type Model = nn.Model

// ParamConfig describes a single trainable parameter.
type ParamConfig = nn.ParamConfig

// InitConfig holds hyperparameters for an initialization rule.
type InitConfig = nn.InitConfig

// InitFunc produces an initial value for a parameter of the given shape.
type InitFunc = nn.InitFunc

// RegisterInit adds an initialization rule under the given name, replacing
// any existing registration.
func RegisterInit(name string, fn InitFunc) {
	nn.RegisterInit(name, fn)
}

// ResolveInit looks up an initialization rule by name.
func ResolveInit(name string) (InitFunc, bool) {
	return nn.ResolveInit(name)
}

// Xavier is Glorot uniform initialization.
func Xavier(shape tensor.Shape, cfg InitConfig) *tensor.Tensor {
	return nn.Xavier(shape, cfg)
}

// Gaussian draws values from N(mean, std²).
func Gaussian(shape tensor.Shape, cfg InitConfig) *tensor.Tensor {
	return nn.Gaussian(shape, cfg)
}

// Constant fills a parameter with a configured value.
func Constant(shape tensor.Shape, cfg InitConfig) *tensor.Tensor {
	return nn.Constant(shape, cfg)
}

// ZerosInit initializes a parameter to all zeros.
func ZerosInit(shape tensor.Shape, cfg InitConfig) *tensor.Tensor {
	return nn.ZerosInit(shape, cfg)
}
