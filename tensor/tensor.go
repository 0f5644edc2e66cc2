// Copyright 2025 The mint Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for tensor values in mint.
//
// Tensors are dense, row-major arrays of float64 values. They are the common
// currency of the framework: model parameters, gradients and data batches are
// all tensors.
//
// Example:
//
//	w := tensor.Randn(tensor.Shape{784, 10})
//	b := tensor.Zeros(tensor.Shape{10})
//	v := w.At(3, 7)
package tensor

import (
	"github.com/mint-ml/mint/internal/tensor"
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Tensor is a dense, row-major tensor of float64 values.
type Tensor = tensor.Tensor

// Creation functions

// New creates a zero-valued tensor with the given shape.
func New(shape Shape) *Tensor {
	return tensor.New(shape)
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape) *Tensor {
	return tensor.Zeros(shape)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape) *Tensor {
	return tensor.Ones(shape)
}

// Full creates a tensor filled with a specific value.
func Full(shape Shape, value float64) *Tensor {
	return tensor.Full(shape, value)
}

// Randn creates a tensor filled with random values from the standard normal
// distribution N(0, 1).
func Randn(shape Shape) *Tensor {
	return tensor.Randn(shape)
}

// Rand creates a tensor filled with random values from the uniform
// distribution U(0, 1).
func Rand(shape Shape) *Tensor {
	return tensor.Rand(shape)
}

// FromSlice creates a tensor from a Go slice.
//
// Example:
//
//	x, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
func FromSlice(data []float64, shape Shape) (*Tensor, error) {
	return tensor.FromSlice(data, shape)
}
