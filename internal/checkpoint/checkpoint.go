// Package checkpoint persists training results: the best parameter snapshot
// together with the run's bookkeeping, serialized as JSON.
package checkpoint

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/mint-ml/mint/internal/tensor"
)

// WeightTensor is a serialized parameter tensor.
type WeightTensor struct {
	Name  string    `json:"name"`
	Shape []int     `json:"shape"`
	Data  []float64 `json:"data"`
}

// TrainingState captures the training progress at checkpoint time.
type TrainingState struct {
	Epoch           int       `json:"epoch"`
	BestValAccuracy float64   `json:"best_val_accuracy"`
	LossHistory     []float64 `json:"loss_history,omitempty"`
	TrainAccHistory []float64 `json:"train_acc_history,omitempty"`
	ValAccHistory   []float64 `json:"val_acc_history,omitempty"`
}

// Checkpoint is a complete saved training run: parameter snapshot, training
// state and metadata.
type Checkpoint struct {
	RunID         string         `json:"run_id"`
	CreatedAt     time.Time      `json:"created_at"`
	Weights       []WeightTensor `json:"weights"`
	TrainingState TrainingState  `json:"training_state"`
}

// New builds a Checkpoint from a parameter snapshot and training state.
// Weights are emitted in sorted name order so output is deterministic.
func New(runID string, params map[string]*tensor.Tensor, state TrainingState) *Checkpoint {
	c := &Checkpoint{
		RunID:         runID,
		CreatedAt:     time.Now().UTC(),
		TrainingState: state,
	}
	for _, name := range sortedNames(params) {
		t := params[name]
		data := make([]float64, t.NumElements())
		copy(data, t.Data())
		c.Weights = append(c.Weights, WeightTensor{
			Name:  name,
			Shape: t.Shape().Clone(),
			Data:  data,
		})
	}
	return c
}

// Params reconstructs the parameter snapshot from the checkpoint.
func (c *Checkpoint) Params() (map[string]*tensor.Tensor, error) {
	params := make(map[string]*tensor.Tensor, len(c.Weights))
	for _, w := range c.Weights {
		t, err := tensor.FromSlice(w.Data, tensor.Shape(w.Shape))
		if err != nil {
			return nil, fmt.Errorf("weight %q: %w", w.Name, err)
		}
		params[w.Name] = t
	}
	return params, nil
}

// Save writes the checkpoint to path as JSON.
func Save(path string, c *Checkpoint) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal checkpoint: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write checkpoint: %w", err)
	}
	return nil
}

// Load reads a checkpoint previously written by Save.
func Load(path string) (*Checkpoint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read checkpoint: %w", err)
	}
	var c Checkpoint
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse checkpoint: %w", err)
	}
	return &c, nil
}

func sortedNames(params map[string]*tensor.Tensor) []string {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
