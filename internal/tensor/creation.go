package tensor

import (
	"math/rand"
)

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape) *Tensor {
	return New(shape)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape) *Tensor {
	return Full(shape, 1)
}

// Full creates a tensor filled with a specific value.
func Full(shape Shape, value float64) *Tensor {
	t := New(shape)
	for i := range t.data {
		t.data[i] = value
	}
	return t
}

// Randn creates a tensor filled with random values from the standard normal
// distribution N(0, 1).
func Randn(shape Shape) *Tensor {
	t := New(shape)
	for i := range t.data {
		//nolint:gosec // math/rand is fine for weight initialization (not security-critical)
		t.data[i] = rand.NormFloat64()
	}
	return t
}

// Rand creates a tensor filled with random values from the uniform
// distribution U(0, 1).
func Rand(shape Shape) *Tensor {
	t := New(shape)
	for i := range t.data {
		//nolint:gosec // math/rand is fine for weight initialization (not security-critical)
		t.data[i] = rand.Float64()
	}
	return t
}
