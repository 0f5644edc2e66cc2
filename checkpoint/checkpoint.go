// Copyright 2025 The mint Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package checkpoint persists training results as JSON: the best parameter
// snapshot together with the run's bookkeeping.
//
// Example:
//
//	c, err := checkpoint.Load("best.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	params, err := c.Params()
package checkpoint

import (
	"github.com/mint-ml/mint/internal/checkpoint"
	"github.com/mint-ml/mint/internal/tensor"
)

// Checkpoint is a complete saved training run.
type Checkpoint = checkpoint.Checkpoint

// WeightTensor is a serialized parameter tensor.
type WeightTensor = checkpoint.WeightTensor

// TrainingState captures training progress at checkpoint time.
type TrainingState = checkpoint.TrainingState

// New builds a Checkpoint from a parameter snapshot and training state.
func New(runID string, params map[string]*tensor.Tensor, state TrainingState) *Checkpoint {
	return checkpoint.New(runID, params, state)
}

// Save writes a checkpoint to path as JSON.
func Save(path string, c *Checkpoint) error {
	return checkpoint.Save(path, c)
}

// Load reads a checkpoint previously written by Save.
func Load(path string) (*Checkpoint, error) {
	return checkpoint.Load(path)
}
