package nn

import (
	"math"
	"testing"

	"github.com/mint-ml/mint/internal/tensor"
)

func TestResolveInit(t *testing.T) {
	for _, name := range []string{"xavier", "gaussian", "constant", "zeros"} {
		if _, ok := ResolveInit(name); !ok {
			t.Errorf("built-in init rule %q not registered", name)
		}
	}
	if _, ok := ResolveInit("nope"); ok {
		t.Error("bogus init rule resolved")
	}
}

func TestXavier_Bound(t *testing.T) {
	shape := tensor.Shape{20, 30}
	bound := math.Sqrt(6.0 / float64(20+30))

	w := Xavier(shape, nil)
	if !w.Shape().Equal(shape) {
		t.Fatalf("shape = %v, want %v", w.Shape(), shape)
	}
	for _, v := range w.Data() {
		if v < -bound || v > bound {
			t.Fatalf("value %v outside xavier bound ±%v", v, bound)
		}
	}
}

func TestXavier_ScalarShape(t *testing.T) {
	// fanIn = fanOut = 1, bound sqrt(3).
	bound := math.Sqrt(3.0)

	w := Xavier(tensor.Shape{}, nil)
	if w.NumElements() != 1 {
		t.Fatalf("scalar tensor has %d elements", w.NumElements())
	}
	if v := w.Data()[0]; v < -bound || v > bound {
		t.Fatalf("value %v outside xavier bound ±%v", v, bound)
	}
}

func TestGaussian_Std(t *testing.T) {
	w := Gaussian(tensor.Shape{10000}, InitConfig{"std": 0.5})

	var sum, sumSq float64
	for _, v := range w.Data() {
		sum += v
		sumSq += v * v
	}
	n := float64(w.NumElements())
	mean := sum / n
	std := math.Sqrt(sumSq/n - mean*mean)

	if math.Abs(mean) > 0.05 {
		t.Errorf("sample mean %v too far from 0", mean)
	}
	if math.Abs(std-0.5) > 0.05 {
		t.Errorf("sample std %v too far from 0.5", std)
	}
}

func TestConstant(t *testing.T) {
	w := Constant(tensor.Shape{2, 2}, InitConfig{"value": 3.0})
	for _, v := range w.Data() {
		if v != 3.0 {
			t.Fatalf("constant init value = %v, want 3.0", v)
		}
	}

	// Default value is zero.
	z := Constant(tensor.Shape{3}, nil)
	for _, v := range z.Data() {
		if v != 0 {
			t.Fatalf("default constant value = %v, want 0", v)
		}
	}
}

func TestZerosInit(t *testing.T) {
	w := ZerosInit(tensor.Shape{4}, nil)
	for _, v := range w.Data() {
		if v != 0 {
			t.Fatalf("zeros init value = %v", v)
		}
	}
}

func TestInitConfigClone(t *testing.T) {
	base := InitConfig{"std": 0.1}
	c := base.Clone()
	c["std"] = 0.9
	if base.Float("std", 0) != 0.1 {
		t.Error("Clone aliased the base config")
	}
}
