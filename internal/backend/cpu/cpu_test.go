package cpu

import (
	"math"
	"testing"

	"github.com/CohenAriel/neuronika/internal/parallel"
	"github.com/CohenAriel/neuronika/internal/tensor"
)

func f64s(t *testing.T, data []float64, shape tensor.Shape) *tensor.RawTensor {
	t.Helper()
	x, err := tensor.FromSlice(data, shape)
	if err != nil {
		t.Fatal(err)
	}
	return x
}

func assertValues(t *testing.T, got *tensor.RawTensor, want []float64, tol float64) {
	t.Helper()
	if got.NumElements() != len(want) {
		t.Fatalf("got %d elements, want %d", got.NumElements(), len(want))
	}
	data := got.AsFloat64()
	for i := range want {
		if math.Abs(data[i]-want[i]) > tol {
			t.Fatalf("element %d = %v, want %v", i, data[i], want[i])
		}
	}
}

func TestAddSameShape(t *testing.T) {
	c := New()
	a := f64s(t, []float64{1, 2, 3, 4}, tensor.Shape{2, 2})
	b := f64s(t, []float64{10, 20, 30, 40}, tensor.Shape{2, 2})

	assertValues(t, c.Add(a, b), []float64{11, 22, 33, 44}, 0)
}

func TestAddBroadcast(t *testing.T) {
	c := New()
	a := f64s(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	row := f64s(t, []float64{10, 20, 30}, tensor.Shape{1, 3})
	col := f64s(t, []float64{100, 200}, tensor.Shape{2, 1})

	assertValues(t, c.Add(a, row), []float64{11, 22, 33, 14, 25, 36}, 0)
	assertValues(t, c.Add(a, col), []float64{101, 102, 103, 204, 205, 206}, 0)

	got := c.Add(a, row)
	if !got.Shape().Equal(tensor.Shape{2, 3}) {
		t.Errorf("shape = %v, want [2 3]", got.Shape())
	}
}

func TestMulDivSub(t *testing.T) {
	c := New()
	a := f64s(t, []float64{2, 4, 8}, tensor.Shape{3})
	b := f64s(t, []float64{2, 2, 2}, tensor.Shape{3})

	assertValues(t, c.Mul(a, b), []float64{4, 8, 16}, 0)
	assertValues(t, c.Div(a, b), []float64{1, 2, 4}, 0)
	assertValues(t, c.Sub(a, b), []float64{0, 2, 6}, 0)
}

func TestMatMul(t *testing.T) {
	c := New()
	a := f64s(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	b := f64s(t, []float64{7, 8, 9, 10, 11, 12}, tensor.Shape{3, 2})

	got := c.MatMul(a, b)
	if !got.Shape().Equal(tensor.Shape{2, 2}) {
		t.Fatalf("shape = %v, want [2 2]", got.Shape())
	}
	assertValues(t, got, []float64{58, 64, 139, 154}, 1e-12)
}

func TestMatMulFloat32(t *testing.T) {
	c := New()
	a, err := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2})
	if err != nil {
		t.Fatal(err)
	}
	got := c.MatMul(a, a)
	want := []float32{7, 10, 15, 22}
	for i, v := range got.AsFloat32() {
		if v != want[i] {
			t.Fatalf("element %d = %v, want %v", i, v, want[i])
		}
	}
}

func TestSumMean(t *testing.T) {
	c := New()
	x := f64s(t, []float64{1, 2, 3, 4}, tensor.Shape{2, 2})

	sum := c.Sum(x)
	if !sum.Shape().IsScalar() || sum.Item() != 10 {
		t.Errorf("Sum = %v (shape %v), want 10 scalar", sum.Item(), sum.Shape())
	}

	mean := c.Mean(x)
	if mean.Item() != 2.5 {
		t.Errorf("Mean = %v, want 2.5", mean.Item())
	}
}

func TestSumAxis(t *testing.T) {
	c := New()
	x := f64s(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})

	rows := c.SumAxis(x, 1, false)
	if !rows.Shape().Equal(tensor.Shape{2}) {
		t.Fatalf("shape = %v, want [2]", rows.Shape())
	}
	assertValues(t, rows, []float64{6, 15}, 0)

	cols := c.SumAxis(x, 0, true)
	if !cols.Shape().Equal(tensor.Shape{1, 3}) {
		t.Fatalf("shape = %v, want [1 3]", cols.Shape())
	}
	assertValues(t, cols, []float64{5, 7, 9}, 0)
}

func TestSoftmaxRowsSumToOne(t *testing.T) {
	c := New()
	x := f64s(t, []float64{1, 2, 3, 1000, 1001, 1002}, tensor.Shape{2, 3})

	s := c.Softmax(x, 1)
	data := s.AsFloat64()
	for r := 0; r < 2; r++ {
		var sum float64
		for j := 0; j < 3; j++ {
			v := data[r*3+j]
			if v < 0 || v > 1 || math.IsNaN(v) {
				t.Fatalf("softmax value out of range: %v", v)
			}
			sum += v
		}
		if math.Abs(sum-1) > 1e-12 {
			t.Errorf("row %d sums to %v", r, sum)
		}
	}
	// Both rows have the same relative offsets, so identical distributions.
	for j := 0; j < 3; j++ {
		if math.Abs(data[j]-data[3+j]) > 1e-9 {
			t.Errorf("max-shift instability: %v vs %v", data[j], data[3+j])
		}
	}
}

func TestTranspose(t *testing.T) {
	c := New()
	x := f64s(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})

	got := c.Transpose(x)
	if !got.Shape().Equal(tensor.Shape{3, 2}) {
		t.Fatalf("shape = %v, want [3 2]", got.Shape())
	}
	assertValues(t, got, []float64{1, 4, 2, 5, 3, 6}, 0)

	// Explicit identity permutation.
	assertValues(t, c.Transpose(x, 0, 1), []float64{1, 2, 3, 4, 5, 6}, 0)
}

func TestReshapeIsView(t *testing.T) {
	c := New()
	x := f64s(t, []float64{1, 2, 3, 4}, tensor.Shape{2, 2})

	v := c.Reshape(x, tensor.Shape{4})
	v.AsFloat64()[0] = 9
	if x.At(0, 0) != 9 {
		t.Error("reshape should share the underlying buffer")
	}
}

func TestUnsqueezeSqueeze(t *testing.T) {
	c := New()
	x := f64s(t, []float64{1, 2, 3}, tensor.Shape{3})

	u := c.Unsqueeze(x, 0)
	if !u.Shape().Equal(tensor.Shape{1, 3}) {
		t.Fatalf("unsqueeze shape = %v", u.Shape())
	}
	s := c.Squeeze(u, 0)
	if !s.Shape().Equal(tensor.Shape{3}) {
		t.Fatalf("squeeze shape = %v", s.Shape())
	}
}

func TestCatAndNarrow(t *testing.T) {
	c := New()
	a := f64s(t, []float64{1, 2, 3, 4}, tensor.Shape{2, 2})
	b := f64s(t, []float64{5, 6}, tensor.Shape{2, 1})

	cat := c.Cat([]*tensor.RawTensor{a, b}, 1)
	if !cat.Shape().Equal(tensor.Shape{2, 3}) {
		t.Fatalf("cat shape = %v, want [2 3]", cat.Shape())
	}
	assertValues(t, cat, []float64{1, 2, 5, 3, 4, 6}, 0)

	back := c.Narrow(cat, 1, 0, 2)
	assertValues(t, back, []float64{1, 2, 3, 4}, 0)
	tail := c.Narrow(cat, 1, 2, 1)
	assertValues(t, tail, []float64{5, 6}, 0)
}

func TestAxpyScale(t *testing.T) {
	c := New()
	x := f64s(t, []float64{1, 2, 3}, tensor.Shape{3})
	dst := f64s(t, []float64{10, 10, 10}, tensor.Shape{3})

	c.Axpy(2, x, dst)
	assertValues(t, dst, []float64{12, 14, 16}, 1e-12)

	c.Scale(0.5, dst)
	assertValues(t, dst, []float64{6, 7, 8}, 1e-12)
}

func TestUnaryKernels(t *testing.T) {
	c := New()
	x := f64s(t, []float64{-1, 0, 4}, tensor.Shape{3})

	assertValues(t, c.Neg(x), []float64{1, 0, -4}, 0)
	assertValues(t, c.ReLU(x), []float64{0, 0, 4}, 0)
	assertValues(t, c.GreaterScalar(x, 0), []float64{0, 0, 1}, 0)
	assertValues(t, c.AddScalar(x, 1), []float64{0, 1, 5}, 0)
	assertValues(t, c.MulScalar(x, -2), []float64{2, 0, -8}, 0)

	pos := f64s(t, []float64{1, 4, 9}, tensor.Shape{3})
	assertValues(t, c.Sqrt(pos), []float64{1, 2, 3}, 1e-12)
	assertValues(t, c.Pow(pos, 2), []float64{1, 16, 81}, 1e-12)
	assertValues(t, c.Log(c.Exp(x)), []float64{-1, 0, 4}, 1e-12)
}

func TestParallelMatchesSequential(t *testing.T) {
	seq := NewWithConfig(parallel.Sequential())
	par := NewWithConfig(parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 1})

	data := make([]float64, 10000)
	for i := range data {
		data[i] = float64(i) * 0.25
	}
	x := f64s(t, data, tensor.Shape{100, 100})

	a := seq.Sigmoid(x).AsFloat64()
	b := par.Sigmoid(x).AsFloat64()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("worker count changed result at %d: %v vs %v", i, a[i], b[i])
		}
	}
}
