// Copyright 2025 The mint Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package data provides the batch-iteration protocol the solver consumes and
// an in-memory iterator implementation.
//
// Example:
//
//	it, err := data.NewArrayIterator(
//	    []*tensor.Tensor{images},
//	    []*tensor.Tensor{labels},
//	    100,  // batch size
//	    true, // shuffle each pass
//	)
package data

import (
	"github.com/mint-ml/mint/internal/data"
	"github.com/mint-ml/mint/internal/tensor"
)

// Batch is one unit of training or evaluation: aligned data and label
// streams.
type Batch = data.Batch

// Iterator produces a finite, restartable sequence of batches.
type Iterator = data.Iterator

// ArrayIterator is an in-memory Iterator over tensor-backed arrays.
type ArrayIterator = data.ArrayIterator

// NewArrayIterator creates an iterator over the given data and label streams.
// All streams must share the same leading dimension.
func NewArrayIterator(dataStreams, labelStreams []*tensor.Tensor, batchSize int, shuffle bool) (*ArrayIterator, error) {
	return data.NewArrayIterator(dataStreams, labelStreams, batchSize, shuffle)
}
