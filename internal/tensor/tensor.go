package tensor

import (
	"fmt"
	"math"
)

// Tensor is a dense, row-major tensor of float64 values.
//
// It is the common currency between models, optimizers, initializers and the
// solver: parameters, gradients and batches are all carried as *Tensor.
//
// Example:
//
//	w := tensor.Zeros(tensor.Shape{3, 4})
//	w.Set(1.5, 0, 2)
//	v := w.At(0, 2) // 1.5
type Tensor struct {
	data   []float64
	shape  Shape
	stride []int
}

// New creates a zero-valued tensor with the given shape.
// Panics on an invalid shape; use FromSlice for error-returning construction.
func New(shape Shape) *Tensor {
	if err := shape.Validate(); err != nil {
		panic(fmt.Sprintf("tensor: %v", err))
	}
	return &Tensor{
		data:   make([]float64, shape.NumElements()),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
	}
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice(data []float64, shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	t := New(shape)
	copy(t.data, data)
	return t, nil
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape
}

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return len(t.data)
}

// Data returns the tensor's backing slice.
// The slice directly accesses the underlying memory (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (t *Tensor) Data() []float64 {
	return t.data
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor) At(indices ...int) float64 {
	return t.data[t.offset(indices)]
}

// Set sets the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor) Set(value float64, indices ...int) {
	t.data[t.offset(indices)] = value
}

func (t *Tensor) offset(indices []int) int {
	if len(indices) != len(t.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(t.shape), len(indices)))
	}
	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, t.shape[i]))
		}
		offset += idx * t.stride[i]
	}
	return offset
}

// Clone creates a deep copy of the tensor.
// The copy shares no memory with the original.
func (t *Tensor) Clone() *Tensor {
	c := New(t.shape)
	copy(c.data, t.data)
	return c
}

// Equal reports whether two tensors have the same shape and values.
func (t *Tensor) Equal(other *Tensor) bool {
	if other == nil || !t.shape.Equal(other.shape) {
		return false
	}
	for i, v := range t.data {
		if v != other.data[i] {
			return false
		}
	}
	return true
}

// AllClose reports whether two tensors have the same shape and element-wise
// values within eps.
func (t *Tensor) AllClose(other *Tensor, eps float64) bool {
	if other == nil || !t.shape.Equal(other.shape) {
		return false
	}
	for i, v := range t.data {
		if math.Abs(v-other.data[i]) > eps {
			return false
		}
	}
	return true
}

// ArgmaxRows returns, for each row of a 2-D tensor, the column index of the
// maximum value. A 1-D tensor is treated as a single row.
//
// Used by accuracy evaluation: the argmax of a score row is the predicted
// class for that example.
func (t *Tensor) ArgmaxRows() []int {
	rows := t.shape.Rows()
	cols := t.NumElements() / rows
	out := make([]int, rows)
	for r := 0; r < rows; r++ {
		row := t.data[r*cols : (r+1)*cols]
		best := 0
		for c, v := range row {
			if v > row[best] {
				best = c
			}
		}
		out[r] = best
	}
	return out
}

// String returns a human-readable representation of the tensor.
func (t *Tensor) String() string {
	return fmt.Sprintf("Tensor%v (%d elements)", t.shape, len(t.data))
}
