// Copyright 2025 The mint Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package solver provides the training controller: the epoch/iteration loop
// that drives a model, a pair of data iterators, an update rule and a
// gradient mechanism through a complete optimization run.
//
// Example:
//
//	s, err := solver.New(model, trainIter, valIter, nil, solver.Options{
//		"update_rule":  "sgd_momentum",
//		"optim_config": optim.Config{"learning_rate": 1e-2},
//		"lr_decay":     0.95,
//		"num_epochs":   10,
//		"batch_size":   100,
//		"print_every":  100,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	s.Init()
//	if err := s.Train(); err != nil {
//		log.Fatal(err)
//	}
//
// After Train returns, the model holds the parameters that performed best on
// the validation iterator, LossHistory carries the loss of every training
// step, and TrainAccHistory/ValAccHistory carry one accuracy per epoch.
package solver

import (
	"github.com/mint-ml/mint/internal/data"
	"github.com/mint-ml/mint/internal/grad"
	"github.com/mint-ml/mint/internal/nn"
	"github.com/mint-ml/mint/internal/solver"
)

// Solver coordinates a model, two data iterators, an update rule and a
// gradient mechanism into a complete training run.
type Solver = solver.Solver

// Options configures a Solver; see the recognized keys on the internal type.
type Options = solver.Options

// Sentinel errors; match with errors.Is.
var (
	ErrUnrecognizedOption = solver.ErrUnrecognizedOption
	ErrUnknownRule        = solver.ErrUnknownRule
	ErrNoBatches          = solver.ErrNoBatches
)

// New constructs a Solver. Passing a nil gradient function selects the
// bundled central-difference differentiator.
func New(model nn.Model, trainIter, valIter data.Iterator, gradFn grad.Function, opts Options) (*Solver, error) {
	return solver.New(model, trainIter, valIter, gradFn, opts)
}
