// Package optim implements the update rules used by the solver to turn
// gradients into parameter updates.
//
// Rules are plain functions resolved by name from a registry, in the spirit of
// a lookup table rather than reflection:
//
//	update, ok := optim.Resolve("sgd")
//	next, cfg := update(w, dw, cfg)
//
// Every rule follows the same contract: given the current parameter value, its
// gradient and its per-parameter Config, return the next value and the (same,
// mutated) Config. Rules are pure apart from the Config they own: no hidden
// globals, no cross-parameter state.
package optim

import (
	"sort"

	"github.com/mint-ml/mint/internal/tensor"
)

// UpdateFunc performs a single parameter update.
//
// w is the current value, dw its gradient. The returned tensor is a fresh
// value; w itself is not modified. The returned Config carries the rule's
// evolved state (momentum buffers, moment estimates, step counters) and must
// be passed back on the next call for the same parameter.
type UpdateFunc func(w, dw *tensor.Tensor, cfg Config) (*tensor.Tensor, Config)

var registry = map[string]UpdateFunc{
	"sgd":          SGD,
	"sgd_momentum": SGDMomentum,
	"rmsprop":      RMSProp,
	"adam":         Adam,
}

// Register adds an update rule under the given name, replacing any existing
// registration. Useful for experiments without touching the built-in set.
func Register(name string, fn UpdateFunc) {
	registry[name] = fn
}

// Resolve looks up an update rule by name.
func Resolve(name string) (UpdateFunc, bool) {
	fn, ok := registry[name]
	return fn, ok
}

// Rules returns the names of all registered update rules, sorted.
func Rules() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
