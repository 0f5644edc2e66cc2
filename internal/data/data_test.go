package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mint-ml/mint/internal/tensor"
)

// makeDataset builds a 2-feature dataset of n examples where example i has
// features {i, i} and label i.
func makeDataset(t *testing.T, n int) (*tensor.Tensor, *tensor.Tensor) {
	t.Helper()
	features := make([]float64, n*2)
	labels := make([]float64, n)
	for i := 0; i < n; i++ {
		features[i*2] = float64(i)
		features[i*2+1] = float64(i)
		labels[i] = float64(i)
	}
	x, err := tensor.FromSlice(features, tensor.Shape{n, 2})
	require.NoError(t, err)
	y, err := tensor.FromSlice(labels, tensor.Shape{n})
	require.NoError(t, err)
	return x, y
}

func TestArrayIterator_FullPass(t *testing.T) {
	x, y := makeDataset(t, 10)
	it, err := NewArrayIterator([]*tensor.Tensor{x}, []*tensor.Tensor{y}, 4, false)
	require.NoError(t, err)

	assert.Equal(t, 10, it.NumData())
	assert.Equal(t, 4, it.BatchSize())
	assert.Equal(t, 3, it.NumIterations()) // 4 + 4 + 2

	var sizes []int
	var seen []float64
	for batch, ok := it.Next(); ok; batch, ok = it.Next() {
		sizes = append(sizes, batch.Size)
		seen = append(seen, batch.Label[0].Data()...)
	}
	assert.Equal(t, []int{4, 4, 2}, sizes)
	assert.Len(t, seen, 10)
	for i, v := range seen {
		assert.Equal(t, float64(i), v, "sequential order without shuffle")
	}
}

func TestArrayIterator_BatchContents(t *testing.T) {
	x, y := makeDataset(t, 6)
	it, err := NewArrayIterator([]*tensor.Tensor{x}, []*tensor.Tensor{y}, 3, false)
	require.NoError(t, err)

	batch, ok := it.Next()
	require.True(t, ok)
	assert.True(t, batch.Data[0].Shape().Equal(tensor.Shape{3, 2}))
	assert.Equal(t, 2.0, batch.Data[0].At(2, 0))
	assert.Equal(t, 2.0, batch.Label[0].At(2))
}

func TestArrayIterator_Reset(t *testing.T) {
	x, y := makeDataset(t, 5)
	it, err := NewArrayIterator([]*tensor.Tensor{x}, []*tensor.Tensor{y}, 5, false)
	require.NoError(t, err)

	_, ok := it.Next()
	require.True(t, ok)
	_, ok = it.Next()
	require.False(t, ok, "single-batch pass exhausted")

	it.Reset()
	batch, ok := it.Next()
	require.True(t, ok, "Reset rewinds to the start")
	assert.Equal(t, 5, batch.Size)
}

func TestArrayIterator_Shuffle(t *testing.T) {
	x, y := makeDataset(t, 200)
	it, err := NewArrayIterator([]*tensor.Tensor{x}, []*tensor.Tensor{y}, 200, true)
	require.NoError(t, err)

	batch, ok := it.Next()
	require.True(t, ok)

	// All labels present exactly once, data/label alignment preserved.
	seen := make(map[float64]bool)
	inOrder := true
	for i := 0; i < batch.Size; i++ {
		label := batch.Label[0].At(i)
		assert.Equal(t, label, batch.Data[0].At(i, 0), "data/label alignment")
		seen[label] = true
		if label != float64(i) {
			inOrder = false
		}
	}
	assert.Len(t, seen, 200)
	assert.False(t, inOrder, "200 shuffled examples should not come out in identity order")
}

func TestArrayIterator_SubIterator(t *testing.T) {
	x, y := makeDataset(t, 10)
	it, err := NewArrayIterator([]*tensor.Tensor{x}, []*tensor.Tensor{y}, 4, false)
	require.NoError(t, err)

	sub := it.SubIterator(6)
	assert.Equal(t, 6, sub.NumData())
	assert.Equal(t, 4, sub.BatchSize())
	assert.Equal(t, 2, sub.NumIterations())

	var seen []float64
	for batch, ok := sub.Next(); ok; batch, ok = sub.Next() {
		seen = append(seen, batch.Label[0].Data()...)
	}
	assert.Equal(t, []float64{0, 1, 2, 3, 4, 5}, seen, "prefix view")

	// Parent position is unaffected by sub-iteration.
	batch, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, 0.0, batch.Label[0].At(0))
}

func TestArrayIterator_SubIteratorClamped(t *testing.T) {
	x, y := makeDataset(t, 3)
	it, err := NewArrayIterator([]*tensor.Tensor{x}, []*tensor.Tensor{y}, 2, false)
	require.NoError(t, err)

	sub := it.SubIterator(100)
	assert.Equal(t, 3, sub.NumData())
}

func TestNewArrayIterator_Validation(t *testing.T) {
	x, y := makeDataset(t, 4)

	_, err := NewArrayIterator(nil, []*tensor.Tensor{y}, 2, false)
	assert.Error(t, err, "missing data stream")

	_, err = NewArrayIterator([]*tensor.Tensor{x}, []*tensor.Tensor{y}, 0, false)
	assert.Error(t, err, "non-positive batch size")

	short, _ := tensor.FromSlice([]float64{1, 2}, tensor.Shape{2})
	_, err = NewArrayIterator([]*tensor.Tensor{x}, []*tensor.Tensor{short}, 2, false)
	assert.Error(t, err, "leading dimension mismatch")
}
