// Package solver implements the training controller: it drives the
// epoch/iteration loop over a model, a pair of data iterators and an update
// rule, tracking losses and accuracies and keeping the best-on-validation
// parameter snapshot.
//
// The solver owns the procedure, not the collaborators: the model, the data
// iterators and the gradient mechanism are all injected, so the controller is
// testable with stubs and indifferent to how gradients are actually computed.
//
// Example:
//
//	s, err := solver.New(model, trainIter, valIter, nil, solver.Options{
//		"update_rule":  "sgd",
//		"optim_config": optim.Config{"learning_rate": 1e-3},
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
//	// model now holds the parameters that scored best on validation;
//	// s.ValAccHistory() has one entry per epoch.
package solver

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/google/uuid"

	"github.com/mint-ml/mint/internal/checkpoint"
	"github.com/mint-ml/mint/internal/data"
	"github.com/mint-ml/mint/internal/grad"
	"github.com/mint-ml/mint/internal/nn"
	"github.com/mint-ml/mint/internal/optim"
	"github.com/mint-ml/mint/internal/tensor"
)

// trainEvalSamples caps the per-epoch training-accuracy evaluation. Validation
// accuracy is always computed over the full validation iterator.
const trainEvalSamples = 1000

// defaultNumericEps is the perturbation size of the fallback numeric
// differentiator used when no gradient function is supplied.
const defaultNumericEps = 1e-5

// Solver coordinates a model, two data iterators, an update rule and a
// gradient mechanism into a complete training run.
//
// A Solver is built for a single run: Train mutates the model's parameters
// destructively and finishes by installing the best-validation snapshot.
// It is not safe for concurrent use; training is strictly sequential.
type Solver struct {
	model     nn.Model
	trainIter data.Iterator
	valIter   data.Iterator
	gradFn    grad.Function

	updateRule optim.UpdateFunc
	initRule   nn.InitFunc
	settings   settings

	runID string
	out   io.Writer

	// Per-parameter state, rebuilt by Reset: one independent config copy per
	// parameter name in the model's ParamConfigs.
	optimConfigs map[string]optim.Config
	initConfigs  map[string]nn.InitConfig

	epoch           int
	bestValAcc      float64
	bestParams      map[string]*tensor.Tensor
	lossHistory     []float64
	trainAccHistory []float64
	valAccHistory   []float64
}

// New constructs a Solver for the given model and iterators.
//
// gradFn supplies gradients for the training steps; passing nil selects the
// bundled central-difference differentiator, which is exact enough for small
// models and tests but evaluates the loss twice per parameter element.
//
// New fails with ErrUnrecognizedOption if opts contains a key outside the
// recognized set, and with ErrUnknownRule if the update or init rule name does
// not resolve. On success the solver is fully reset and ready to train.
func New(model nn.Model, trainIter, valIter data.Iterator, gradFn grad.Function, opts Options) (*Solver, error) {
	cfg, err := parseOptions(opts)
	if err != nil {
		return nil, err
	}

	updateRule, ok := optim.Resolve(cfg.updateRuleName)
	if !ok {
		return nil, fmt.Errorf("%w: update rule %q", ErrUnknownRule, cfg.updateRuleName)
	}
	initRule, ok := nn.ResolveInit(cfg.initRuleName)
	if !ok {
		return nil, fmt.Errorf("%w: init rule %q", ErrUnknownRule, cfg.initRuleName)
	}

	if gradFn == nil {
		gradFn = grad.Numeric(defaultNumericEps)
	}

	s := &Solver{
		model:      model,
		trainIter:  trainIter,
		valIter:    valIter,
		gradFn:     gradFn,
		updateRule: updateRule,
		initRule:   initRule,
		settings:   cfg,
		runID:      uuid.NewString(),
		out:        os.Stdout,
	}
	s.Reset()
	return s, nil
}

// SetOutput redirects verbose progress output, which otherwise goes to
// standard output.
func (s *Solver) SetOutput(w io.Writer) {
	s.out = w
}

// Reset restores the solver to its post-construction state: bookkeeping
// zeroed, histories cleared, both iterators rewound, and a fresh independent
// copy of the optimizer and init configs created for every parameter in the
// model's ParamConfigs.
func (s *Solver) Reset() {
	s.epoch = 0
	s.bestValAcc = 0
	s.bestParams = map[string]*tensor.Tensor{}
	s.lossHistory = nil
	s.trainAccHistory = nil
	s.valAccHistory = nil
	s.trainIter.Reset()
	s.valIter.Reset()

	s.optimConfigs = make(map[string]optim.Config)
	s.initConfigs = make(map[string]nn.InitConfig)
	for name := range s.model.ParamConfigs() {
		s.optimConfigs[name] = s.settings.optimConfig.Clone()
		s.initConfigs[name] = s.settings.initConfig.Clone()
	}
}

// Init materializes initial values for every parameter described by the
// model's ParamConfigs, using the resolved init rule and each parameter's own
// init config. Calling it again before training re-initializes from scratch.
func (s *Solver) Init() {
	params := s.model.Params()
	for name, cfg := range s.model.ParamConfigs() {
		params[name] = s.initRule(cfg.Shape, s.initConfigs[name])
	}
}

// Step performs a single gradient update on one batch: it differentiates the
// model's loss with respect to every parameter, appends the loss to the loss
// history, and applies the update rule to each parameter independently.
//
// The loss closure ignores the parameter values it is handed and consults the
// model's live parameter mapping instead; the arguments exist to tell the
// gradient mechanism which tensors to differentiate.
func (s *Solver) Step(batch *data.Batch) error {
	if batch == nil || len(batch.Data) == 0 || len(batch.Label) == 0 {
		return fmt.Errorf("step requires a batch with at least one data and one label stream")
	}
	input := batch.Data[0]
	label := batch.Label[0]

	lossFn := func(_ ...*tensor.Tensor) (float64, error) {
		pred, err := s.model.Forward(input)
		if err != nil {
			return 0, fmt.Errorf("forward pass failed: %w", err)
		}
		loss, err := s.model.Loss(pred, label)
		if err != nil {
			return 0, fmt.Errorf("loss computation failed: %w", err)
		}
		return loss, nil
	}

	names := s.paramNames()
	params := make([]*tensor.Tensor, len(names))
	modelParams := s.model.Params()
	for i, name := range names {
		params[i] = modelParams[name]
	}

	grads, lossVal, err := s.gradFn(lossFn, params)
	if err != nil {
		return fmt.Errorf("gradient computation failed: %w", err)
	}
	if len(grads) != len(params) {
		return fmt.Errorf("gradient mechanism returned %d gradients for %d parameters", len(grads), len(params))
	}

	s.lossHistory = append(s.lossHistory, lossVal)

	for i, name := range names {
		next, nextCfg := s.updateRule(params[i], grads[i], s.optimConfigs[name])
		modelParams[name] = next
		s.optimConfigs[name] = nextCfg
	}
	return nil
}

// CheckAccuracy evaluates classification accuracy over the given iterator.
//
// If numSamples is positive and the iterator holds more examples than that,
// evaluation runs over a bounded prefix view of numSamples examples;
// otherwise the full iterator is consumed. The predicted class of each example
// is the argmax of its score row.
//
// The denominator accumulates the iterator's configured batch size per batch
// rather than the actual batch length, so a final partial batch slightly
// overstates it and the ratio understates accuracy by the same margin.
//
// An iterator yielding no batches fails with ErrNoBatches rather than
// producing an undefined ratio.
func (s *Solver) CheckAccuracy(it data.Iterator, numSamples int) (float64, error) {
	check := it
	if numSamples > 0 && it.NumData() > numSamples {
		check = it.SubIterator(numSamples)
	}
	// Evaluation always covers a full pass, even when the caller hands over an
	// iterator exhausted by a preceding training epoch.
	check.Reset()

	correct, seen := 0, 0
	for batch, ok := check.Next(); ok; batch, ok = check.Next() {
		pred, err := s.model.Forward(batch.Data[0])
		if err != nil {
			return 0, fmt.Errorf("forward pass failed during evaluation: %w", err)
		}
		predicted := pred.ArgmaxRows()
		labels := batch.Label[0].Data()
		for i, class := range predicted {
			if i < len(labels) && float64(class) == labels[i] {
				correct++
			}
		}
		seen += check.BatchSize()
	}
	if seen == 0 {
		return 0, ErrNoBatches
	}
	return float64(correct) / float64(seen), nil
}

// Train runs the full optimization: numEpochs passes over the training
// iterator with a gradient step per batch, per-epoch accuracy evaluation on
// both iterators, best-snapshot tracking on validation accuracy and per-epoch
// learning-rate decay.
//
// On normal completion the model's parameters are replaced with the snapshot
// from the epoch with the highest validation accuracy. Replacement is on
// strict improvement over the initial best of 0, so a run whose validation
// accuracy never exceeds 0 takes no snapshot and leaves the model holding its
// last-trained parameters. Any collaborator failure aborts the run
// immediately: no retry, no rollback, histories keep whatever was recorded.
func (s *Solver) Train() error {
	numIterations := s.trainIter.NumIterations() * s.settings.numEpochs
	t := 0

	for epoch := 0; epoch < s.settings.numEpochs; epoch++ {
		for batch, ok := s.trainIter.Next(); ok; batch, ok = s.trainIter.Next() {
			if err := s.Step(batch); err != nil {
				return err
			}
			if s.settings.verbose && t%s.settings.printEvery == 0 {
				fmt.Fprintf(s.out, "(Iteration %d / %d) loss: %f\n",
					t+1, numIterations, s.lossHistory[len(s.lossHistory)-1])
			}
			t++
		}

		trainAcc, err := s.CheckAccuracy(s.trainIter, trainEvalSamples)
		if err != nil {
			return fmt.Errorf("train accuracy evaluation failed: %w", err)
		}
		valAcc, err := s.CheckAccuracy(s.valIter, 0)
		if err != nil {
			return fmt.Errorf("validation accuracy evaluation failed: %w", err)
		}
		s.trainAccHistory = append(s.trainAccHistory, trainAcc)
		s.valAccHistory = append(s.valAccHistory, valAcc)

		// Both iterators are exhausted at this point.
		s.trainIter.Reset()
		s.valIter.Reset()

		if s.settings.verbose {
			fmt.Fprintf(s.out, "(Epoch %d / %d) train acc: %f; val acc: %f\n",
				epoch+1, s.settings.numEpochs, trainAcc, valAcc)
		}

		if valAcc > s.bestValAcc {
			s.bestValAcc = valAcc
			s.bestParams = make(map[string]*tensor.Tensor, len(s.model.Params()))
			for name, value := range s.model.Params() {
				// Deep copy: later steps must not mutate the snapshot.
				s.bestParams[name] = value.Clone()
			}
		}

		// Decay every parameter's stored learning rate. Configs that never
		// set one fall through to the rule's built-in default and are left
		// alone.
		for _, cfg := range s.optimConfigs {
			if _, ok := cfg[optim.LearningRate]; ok {
				cfg[optim.LearningRate] = cfg.Float(optim.LearningRate, 0) * s.settings.lrDecay
			}
		}

		s.epoch = epoch + 1
	}

	if len(s.bestParams) > 0 {
		s.model.SetParams(s.bestParams)
	}

	if s.settings.checkpointPath != "" {
		c := checkpoint.New(s.runID, s.model.Params(), checkpoint.TrainingState{
			Epoch:           s.epoch,
			BestValAccuracy: s.bestValAcc,
			LossHistory:     s.lossHistory,
			TrainAccHistory: s.trainAccHistory,
			ValAccHistory:   s.valAccHistory,
		})
		if err := checkpoint.Save(s.settings.checkpointPath, c); err != nil {
			return fmt.Errorf("failed to save checkpoint: %w", err)
		}
	}
	return nil
}

// paramNames returns the model's parameter names in sorted order. Gradients
// are requested and updates applied in this fixed order so runs are
// deterministic.
func (s *Solver) paramNames() []string {
	params := s.model.Params()
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RunID returns the unique identifier assigned to this training run.
func (s *Solver) RunID() string {
	return s.runID
}

// Epoch returns the number of completed epochs.
func (s *Solver) Epoch() int {
	return s.epoch
}

// BestValAcc returns the best validation accuracy observed so far.
func (s *Solver) BestValAcc() float64 {
	return s.bestValAcc
}

// BestParams returns the best-on-validation parameter snapshot. The returned
// map is the solver's own; treat it as read-only.
func (s *Solver) BestParams() map[string]*tensor.Tensor {
	return s.bestParams
}

// LossHistory returns the loss of every training step executed so far.
func (s *Solver) LossHistory() []float64 {
	return s.lossHistory
}

// TrainAccHistory returns the per-epoch training accuracies.
func (s *Solver) TrainAccHistory() []float64 {
	return s.trainAccHistory
}

// ValAccHistory returns the per-epoch validation accuracies.
func (s *Solver) ValAccHistory() []float64 {
	return s.valAccHistory
}

// OptimConfig returns the live optimizer state for a parameter, or nil if the
// name is unknown. Exposed for inspection and tests.
func (s *Solver) OptimConfig(name string) optim.Config {
	return s.optimConfigs[name]
}
