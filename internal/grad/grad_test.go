package grad

import (
	"errors"
	"math"
	"testing"

	"github.com/mint-ml/mint/internal/tensor"
)

func TestNumeric_Quadratic(t *testing.T) {
	// f(x) = sum(x²); df/dx_i = 2*x_i.
	x, _ := tensor.FromSlice([]float64{1, -2, 3}, tensor.Shape{3})
	loss := func(params ...*tensor.Tensor) (float64, error) {
		var sum float64
		for _, v := range x.Data() {
			sum += v * v
		}
		return sum, nil
	}

	grads, lossVal, err := Numeric(1e-5)(loss, []*tensor.Tensor{x})
	if err != nil {
		t.Fatalf("Numeric: %v", err)
	}

	if math.Abs(lossVal-14) > 1e-9 {
		t.Errorf("loss = %v, want 14", lossVal)
	}
	want := []float64{2, -4, 6}
	for i, w := range want {
		if got := grads[0].At(i); math.Abs(got-w) > 1e-6 {
			t.Errorf("grad[%d] = %v, want %v", i, got, w)
		}
	}

	// Parameters must be restored exactly after differentiation.
	restored := []float64{1, -2, 3}
	for i, w := range restored {
		if got := x.At(i); got != w {
			t.Errorf("param[%d] = %v after Numeric, want %v", i, got, w)
		}
	}
}

func TestNumeric_MultipleParams(t *testing.T) {
	// f(a, b) = 3a + b²
	a, _ := tensor.FromSlice([]float64{2}, tensor.Shape{1})
	b, _ := tensor.FromSlice([]float64{5}, tensor.Shape{1})
	loss := func(params ...*tensor.Tensor) (float64, error) {
		return 3*a.At(0) + b.At(0)*b.At(0), nil
	}

	grads, _, err := Numeric(1e-5)(loss, []*tensor.Tensor{a, b})
	if err != nil {
		t.Fatalf("Numeric: %v", err)
	}

	if got := grads[0].At(0); math.Abs(got-3) > 1e-6 {
		t.Errorf("df/da = %v, want 3", got)
	}
	if got := grads[1].At(0); math.Abs(got-10) > 1e-6 {
		t.Errorf("df/db = %v, want 10", got)
	}
}

func TestNumeric_PropagatesLossError(t *testing.T) {
	boom := errors.New("forward failed")
	x := tensor.Zeros(tensor.Shape{2})
	loss := func(params ...*tensor.Tensor) (float64, error) {
		return 0, boom
	}

	_, _, err := Numeric(1e-5)(loss, []*tensor.Tensor{x})
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want wrapped %v", err, boom)
	}
}
