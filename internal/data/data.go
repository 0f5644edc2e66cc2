// Package data provides the batch-iteration protocol consumed by the solver:
// a finite, restartable sequence of batches with support for bounded prefix
// views used to cap evaluation cost.
package data

import (
	"fmt"
	"math/rand"

	"github.com/mint-ml/mint/internal/tensor"
)

// Batch is one unit of training or evaluation: one or more aligned data
// streams and one or more aligned label streams. The solver consumes the first
// stream of each; extra streams are available for multi-input models.
type Batch struct {
	Data  []*tensor.Tensor
	Label []*tensor.Tensor
	Size  int // number of examples actually in this batch
}

// Iterator produces a finite, restartable sequence of batches.
type Iterator interface {
	// Next returns the next batch, or (nil, false) when the pass is complete.
	Next() (*Batch, bool)

	// Reset rewinds the iterator to its initial position.
	Reset()

	// NumData returns the total number of examples.
	NumData() int

	// BatchSize returns the configured batch size.
	BatchSize() int

	// NumIterations returns the number of batches in one full pass.
	NumIterations() int

	// SubIterator returns a bounded view over the first n examples.
	SubIterator(n int) Iterator
}

// ArrayIterator is an in-memory Iterator over tensor-backed arrays.
//
// Every data and label stream is a tensor whose leading dimension is the
// example count; batches are produced by slicing rows. The final batch of a
// pass may be smaller than the configured batch size.
type ArrayIterator struct {
	data      []*tensor.Tensor
	label     []*tensor.Tensor
	batchSize int
	shuffle   bool

	indices  []int
	position int
}

// NewArrayIterator creates an iterator over the given data and label streams.
//
// All streams must share the same leading dimension. If shuffle is true the
// example order is re-randomized on every Reset.
func NewArrayIterator(data, label []*tensor.Tensor, batchSize int, shuffle bool) (*ArrayIterator, error) {
	if len(data) == 0 || len(label) == 0 {
		return nil, fmt.Errorf("iterator requires at least one data stream and one label stream")
	}
	if batchSize <= 0 {
		return nil, fmt.Errorf("batch size must be positive, got %d", batchSize)
	}

	if len(data[0].Shape()) == 0 {
		return nil, fmt.Errorf("data stream must have a leading example dimension")
	}
	n := data[0].Shape()[0]
	for i, s := range append(append([]*tensor.Tensor{}, data...), label...) {
		if len(s.Shape()) == 0 || s.Shape()[0] != n {
			return nil, fmt.Errorf("stream %d leading dimension mismatch: want %d", i, n)
		}
	}

	it := &ArrayIterator{
		data:      data,
		label:     label,
		batchSize: batchSize,
		shuffle:   shuffle,
		indices:   make([]int, n),
	}
	for i := range it.indices {
		it.indices[i] = i
	}
	if shuffle {
		it.reshuffle()
	}
	return it, nil
}

func (it *ArrayIterator) reshuffle() {
	//nolint:gosec // math/rand is fine for batch shuffling (not security-critical)
	rand.Shuffle(len(it.indices), func(i, j int) {
		it.indices[i], it.indices[j] = it.indices[j], it.indices[i]
	})
}

// Next returns the next batch, or (nil, false) at the end of the pass.
func (it *ArrayIterator) Next() (*Batch, bool) {
	if it.position >= len(it.indices) {
		return nil, false
	}

	end := it.position + it.batchSize
	if end > len(it.indices) {
		end = len(it.indices)
	}
	rows := it.indices[it.position:end]
	it.position = end

	batch := &Batch{Size: len(rows)}
	for _, s := range it.data {
		batch.Data = append(batch.Data, gatherRows(s, rows))
	}
	for _, s := range it.label {
		batch.Label = append(batch.Label, gatherRows(s, rows))
	}
	return batch, true
}

// Reset rewinds to the start of the pass, re-randomizing the example order if
// the iterator was created with shuffling enabled.
func (it *ArrayIterator) Reset() {
	it.position = 0
	if it.shuffle {
		it.reshuffle()
	}
}

// NumData returns the total number of examples.
func (it *ArrayIterator) NumData() int {
	return len(it.indices)
}

// BatchSize returns the configured batch size.
func (it *ArrayIterator) BatchSize() int {
	return it.batchSize
}

// NumIterations returns the number of batches in one full pass, counting a
// final partial batch.
func (it *ArrayIterator) NumIterations() int {
	return (len(it.indices) + it.batchSize - 1) / it.batchSize
}

// SubIterator returns a bounded view over the first n examples of the current
// example order. The view shares the backing tensors but iterates
// independently and never reshuffles; if the parent shuffles, the prefix is a
// snapshot of the parent's current permutation.
func (it *ArrayIterator) SubIterator(n int) Iterator {
	if n > len(it.indices) {
		n = len(it.indices)
	}
	indices := make([]int, n)
	copy(indices, it.indices[:n])

	return &ArrayIterator{
		data:      it.data,
		label:     it.label,
		batchSize: it.batchSize,
		shuffle:   false,
		indices:   indices,
	}
}

// gatherRows copies the given rows of a stream into a new batch tensor whose
// leading dimension is len(rows).
func gatherRows(s *tensor.Tensor, rows []int) *tensor.Tensor {
	shape := s.Shape().Clone()
	rowSize := s.NumElements() / shape[0]
	shape[0] = len(rows)

	out := tensor.New(shape)
	src := s.Data()
	dst := out.Data()
	for i, r := range rows {
		copy(dst[i*rowSize:(i+1)*rowSize], src[r*rowSize:(r+1)*rowSize])
	}
	return out
}
