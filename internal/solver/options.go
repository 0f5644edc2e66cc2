package solver

import (
	"errors"
	"fmt"
	"sort"

	"github.com/mint-ml/mint/internal/nn"
	"github.com/mint-ml/mint/internal/optim"
)

// Sentinel errors surfaced at construction and evaluation time. Wrapped
// errors carry detail; match with errors.Is.
var (
	// ErrUnrecognizedOption reports an Options key outside the recognized set.
	ErrUnrecognizedOption = errors.New("unrecognized option")

	// ErrUnknownRule reports an update or init rule name that does not
	// resolve in its registry.
	ErrUnknownRule = errors.New("unknown rule")

	// ErrNoBatches reports an accuracy evaluation over an iterator that
	// produced no batches, which would otherwise divide by zero.
	ErrNoBatches = errors.New("iterator produced no batches")
)

// Options configures a Solver. It is a string-keyed mapping so that the
// recognized set can be validated at construction time; any key outside it
// fails with ErrUnrecognizedOption.
//
// Recognized keys:
//
//	update_rule     string       update rule name (default "sgd")
//	optim_config    optim.Config base hyperparameters copied per parameter
//	init_rule       string       init rule name (default "xavier")
//	init_config     nn.InitConfig
//	lr_decay        float64      per-epoch learning-rate factor in (0, 1], default 1.0
//	batch_size      int          default 100; validated but otherwise unused,
//	                             the iterators own the actual batching
//	num_epochs      int          default 10
//	print_every     int          progress cadence in steps, default 10
//	verbose         bool         default true
//	checkpoint_path string       if set, the best snapshot is written here after Train
type Options map[string]any

// settings is the validated, typed form of Options.
type settings struct {
	updateRuleName string
	initRuleName   string
	optimConfig    optim.Config
	initConfig     nn.InitConfig
	lrDecay        float64
	batchSize      int
	numEpochs      int
	printEvery     int
	verbose        bool
	checkpointPath string
}

func parseOptions(opts Options) (settings, error) {
	s := settings{
		updateRuleName: "sgd",
		initRuleName:   "xavier",
		optimConfig:    optim.Config{},
		initConfig:     nn.InitConfig{},
		lrDecay:        1.0,
		batchSize:      100,
		numEpochs:      10,
		printEvery:     10,
		verbose:        true,
	}

	remaining := make(map[string]bool, len(opts))
	for k := range opts {
		remaining[k] = true
	}
	take := func(key string) (any, bool) {
		v, ok := opts[key]
		if ok {
			delete(remaining, key)
		}
		return v, ok
	}

	var err error
	if v, ok := take("update_rule"); ok {
		if s.updateRuleName, err = asString("update_rule", v); err != nil {
			return s, err
		}
	}
	if v, ok := take("init_rule"); ok {
		if s.initRuleName, err = asString("init_rule", v); err != nil {
			return s, err
		}
	}
	if v, ok := take("optim_config"); ok {
		switch c := v.(type) {
		case optim.Config:
			s.optimConfig = c
		case map[string]any:
			s.optimConfig = optim.Config(c)
		default:
			return s, fmt.Errorf("optim_config must be an optim.Config, got %T", v)
		}
	}
	if v, ok := take("init_config"); ok {
		switch c := v.(type) {
		case nn.InitConfig:
			s.initConfig = c
		case map[string]any:
			s.initConfig = nn.InitConfig(c)
		default:
			return s, fmt.Errorf("init_config must be an nn.InitConfig, got %T", v)
		}
	}
	if v, ok := take("lr_decay"); ok {
		if s.lrDecay, err = asFloat("lr_decay", v); err != nil {
			return s, err
		}
		if s.lrDecay <= 0 || s.lrDecay > 1 {
			return s, fmt.Errorf("lr_decay must be in (0, 1], got %v", s.lrDecay)
		}
	}
	if v, ok := take("batch_size"); ok {
		if s.batchSize, err = asInt("batch_size", v); err != nil {
			return s, err
		}
	}
	if v, ok := take("num_epochs"); ok {
		if s.numEpochs, err = asInt("num_epochs", v); err != nil {
			return s, err
		}
	}
	if v, ok := take("print_every"); ok {
		if s.printEvery, err = asInt("print_every", v); err != nil {
			return s, err
		}
	}
	if v, ok := take("verbose"); ok {
		b, ok := v.(bool)
		if !ok {
			return s, fmt.Errorf("verbose must be a bool, got %T", v)
		}
		s.verbose = b
	}
	if v, ok := take("checkpoint_path"); ok {
		if s.checkpointPath, err = asString("checkpoint_path", v); err != nil {
			return s, err
		}
	}

	if s.batchSize <= 0 {
		return s, fmt.Errorf("batch_size must be positive, got %d", s.batchSize)
	}
	if s.numEpochs <= 0 {
		return s, fmt.Errorf("num_epochs must be positive, got %d", s.numEpochs)
	}
	if s.printEvery <= 0 {
		return s, fmt.Errorf("print_every must be positive, got %d", s.printEvery)
	}

	if len(remaining) > 0 {
		keys := make([]string, 0, len(remaining))
		for k := range remaining {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return s, fmt.Errorf("%w: %v", ErrUnrecognizedOption, keys)
	}
	return s, nil
}

func asString(key string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string, got %T", key, v)
	}
	return s, nil
}

func asInt(key string, v any) (int, error) {
	switch x := v.(type) {
	case int:
		return x, nil
	case float64:
		return int(x), nil
	default:
		return 0, fmt.Errorf("%s must be an int, got %T", key, v)
	}
}

func asFloat(key string, v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	default:
		return 0, fmt.Errorf("%s must be a float, got %T", key, v)
	}
}
