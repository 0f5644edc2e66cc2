package optim

import (
	"math"
	"testing"

	"github.com/mint-ml/mint/internal/tensor"
)

// Helper to check float equality with tolerance.
func floatEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestSGD_SimpleUpdate(t *testing.T) {
	w, _ := tensor.FromSlice([]float64{2.0}, tensor.Shape{1})
	dw, _ := tensor.FromSlice([]float64{1.0}, tensor.Shape{1})

	next, cfg := SGD(w, dw, Config{LearningRate: 0.1})

	// w_new = 2.0 - 0.1 * 1.0 = 1.9
	if got := next.At(0); !floatEqual(got, 1.9, 1e-9) {
		t.Errorf("SGD update: got %f, want %f", got, 1.9)
	}
	// Input tensor must not be modified.
	if got := w.At(0); got != 2.0 {
		t.Errorf("SGD mutated its input: %f", got)
	}
	if got := cfg.Float(LearningRate, 0); got != 0.1 {
		t.Errorf("learning rate changed: %f", got)
	}
}

func TestSGD_DefaultLearningRate(t *testing.T) {
	w, _ := tensor.FromSlice([]float64{1.0}, tensor.Shape{1})
	dw, _ := tensor.FromSlice([]float64{1.0}, tensor.Shape{1})

	next, _ := SGD(w, dw, nil)

	if got := next.At(0); !floatEqual(got, 1.0-1e-2, 1e-9) {
		t.Errorf("SGD default lr: got %f, want %f", got, 1.0-1e-2)
	}
}

func TestSGDMomentum_TwoSteps(t *testing.T) {
	w, _ := tensor.FromSlice([]float64{1.0}, tensor.Shape{1})
	dw, _ := tensor.FromSlice([]float64{1.0}, tensor.Shape{1})
	cfg := Config{LearningRate: 0.1, "momentum": 0.9}

	// Step 1: v = 0.9*0 - 0.1*1 = -0.1; w = 1.0 - 0.1 = 0.9
	w, cfg = SGDMomentum(w, dw, cfg)
	if got := w.At(0); !floatEqual(got, 0.9, 1e-9) {
		t.Errorf("momentum step 1: got %f, want 0.9", got)
	}

	// Step 2: v = 0.9*(-0.1) - 0.1*1 = -0.19; w = 0.9 - 0.19 = 0.71
	w, _ = SGDMomentum(w, dw, cfg)
	if got := w.At(0); !floatEqual(got, 0.71, 1e-9) {
		t.Errorf("momentum step 2: got %f, want 0.71", got)
	}
}

func TestRMSProp_MatchesManualCalculation(t *testing.T) {
	w, _ := tensor.FromSlice([]float64{1.0}, tensor.Shape{1})
	dw, _ := tensor.FromSlice([]float64{0.5}, tensor.Shape{1})
	cfg := Config{LearningRate: 0.01, "decay_rate": 0.9, "epsilon": 1e-8}

	var cache, x float64 = 0, 1.0
	cur := w
	for step := 0; step < 3; step++ {
		cur, cfg = RMSProp(cur, dw, cfg)

		g := 0.5
		cache = 0.9*cache + 0.1*g*g
		x -= 0.01 * g / (math.Sqrt(cache) + 1e-8)

		if got := cur.At(0); !floatEqual(got, x, 1e-12) {
			t.Fatalf("rmsprop step %d: got %.12f, want %.12f", step+1, got, x)
		}
	}
}

func TestAdam_MatchesManualCalculation(t *testing.T) {
	lr, beta1, beta2, eps := 0.001, 0.9, 0.999, 1e-8
	w, _ := tensor.FromSlice([]float64{1.0}, tensor.Shape{1})
	cfg := Config{LearningRate: lr, "beta1": beta1, "beta2": beta2, "epsilon": eps}

	var m, v float64
	x := 1.0
	cur := w
	gradients := []float64{0.1, 0.05, 0.2, 0.01, 0.15}

	for step, g := range gradients {
		dw, _ := tensor.FromSlice([]float64{g}, tensor.Shape{1})
		cur, cfg = Adam(cur, dw, cfg)

		m = beta1*m + (1-beta1)*g
		v = beta2*v + (1-beta2)*g*g
		mHat := m / (1 - math.Pow(beta1, float64(step+1)))
		vHat := v / (1 - math.Pow(beta2, float64(step+1)))
		x -= lr * mHat / (math.Sqrt(vHat) + eps)

		if got := cur.At(0); !floatEqual(got, x, 1e-12) {
			t.Fatalf("adam step %d: got %.12f, want %.12f", step+1, got, x)
		}
	}

	if got := cfg.Int("t", 0); got != len(gradients) {
		t.Errorf("adam step counter = %d, want %d", got, len(gradients))
	}
}

func TestConfigClone_Independent(t *testing.T) {
	base := Config{LearningRate: 0.1, "momentum": 0.9}
	a := base.Clone()
	b := base.Clone()

	a[LearningRate] = 0.05
	if got := b.Float(LearningRate, 0); got != 0.1 {
		t.Errorf("clone b affected by mutation of clone a: %f", got)
	}
	if got := base.Float(LearningRate, 0); got != 0.1 {
		t.Errorf("base affected by mutation of clone: %f", got)
	}

	// Tensor buffers must be deep-copied.
	buf, _ := tensor.FromSlice([]float64{1, 2}, tensor.Shape{2})
	withBuf := Config{"velocity": buf}
	cloned := withBuf.Clone()
	cloned["velocity"].(*tensor.Tensor).Data()[0] = 99
	if buf.At(0) != 1 {
		t.Error("Clone aliased a tensor buffer")
	}
}

func TestResolve(t *testing.T) {
	for _, name := range []string{"sgd", "sgd_momentum", "rmsprop", "adam"} {
		if _, ok := Resolve(name); !ok {
			t.Errorf("built-in rule %q not registered", name)
		}
	}
	if _, ok := Resolve("definitely_not_a_rule"); ok {
		t.Error("bogus rule resolved")
	}
}

func TestRegister(t *testing.T) {
	called := false
	Register("test_identity", func(w, dw *tensor.Tensor, cfg Config) (*tensor.Tensor, Config) {
		called = true
		return w.Clone(), cfg
	})
	fn, ok := Resolve("test_identity")
	if !ok {
		t.Fatal("registered rule not resolvable")
	}
	w := tensor.Zeros(tensor.Shape{1})
	fn(w, w, Config{})
	if !called {
		t.Error("resolved function is not the registered one")
	}
}
