package ops

import (
	"errors"
	"testing"

	"github.com/CohenAriel/neuronika/internal/backend/cpu"
	"github.com/CohenAriel/neuronika/internal/graph"
	"github.com/CohenAriel/neuronika/internal/tensor"
)

func leaf(t *testing.T, values []float64, shape tensor.Shape) *graph.Source {
	t.Helper()
	raw, err := tensor.FromSlice(values, shape)
	if err != nil {
		t.Fatal(err)
	}
	return graph.NewSource(raw)
}

func TestReduceBroadcast(t *testing.T) {
	backend := cpu.New()
	grad, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		target tensor.Shape
		want   []float64
	}{
		{"identity", tensor.Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6}},
		{"scalar", tensor.Shape{}, []float64{21}},
		{"drop leading", tensor.Shape{3}, []float64{5, 7, 9}},
		{"keep size one", tensor.Shape{1, 3}, []float64{5, 7, 9}},
		{"column", tensor.Shape{2, 1}, []float64{6, 15}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reduceBroadcast(backend, grad, tt.target)
			if !got.Shape().Equal(tt.target) {
				t.Fatalf("shape = %v, want %v", got.Shape(), tt.target)
			}
			data := got.AsFloat64()
			for i, w := range tt.want {
				if data[i] != w {
					t.Fatalf("element %d = %v, want %v", i, data[i], w)
				}
			}
		})
	}
}

func TestForwardIsMemoizedPerNode(t *testing.T) {
	backend := cpu.New()
	a := leaf(t, []float64{1, 2}, tensor.Shape{2})
	b := leaf(t, []float64{3, 4}, tensor.Shape{2})

	add, err := NewAdd(a, b, backend)
	if err != nil {
		t.Fatal(err)
	}

	if add.Computed() {
		t.Fatal("node computed before Forward")
	}
	if err := add.Forward(); err != nil {
		t.Fatal(err)
	}
	first := add.Data().Value()
	if err := add.Forward(); err != nil {
		t.Fatal(err)
	}
	if add.Data().Value() != first {
		t.Error("second Forward replaced the memoized value")
	}

	add.ResetComputed()
	if add.Computed() {
		t.Error("flag survived reset")
	}
}

func TestForwardGuardsUncomputedOperands(t *testing.T) {
	backend := cpu.New()
	a := leaf(t, []float64{1, 2}, tensor.Shape{2})
	neg := NewNeg(a, backend)

	// Skipping neg's evaluation violates the scheduling contract.
	mul, err := NewMul(a, neg, backend)
	if err != nil {
		t.Fatal(err)
	}
	if err := mul.Forward(); !errors.Is(err, graph.ErrUncomputedDependency) {
		t.Errorf("err = %v, want ErrUncomputedDependency", err)
	}
}

func TestMulBackwardSkipsUntrackedOperand(t *testing.T) {
	backend := cpu.New()
	a := leaf(t, []float64{2, 3}, tensor.Shape{2})
	b := leaf(t, []float64{5, 7}, tensor.Shape{2})

	mul, err := NewMul(a, b, backend)
	if err != nil {
		t.Fatal(err)
	}
	if err := mul.Forward(); err != nil {
		t.Fatal(err)
	}

	// Only a is tracked; b's side has no backward mirror.
	acc, err := graph.NewAccumulator(tensor.Shape{2}, tensor.Float64, backend)
	if err != nil {
		t.Fatal(err)
	}
	sink := graph.NewSink(acc)

	back, err := NewMulBackward(mul.Data(),
		Operand{Node: sink, Data: a.Data()},
		Operand{Node: nil, Data: b.Data()},
		backend)
	if err != nil {
		t.Fatal(err)
	}

	if got := len(back.Operands()); got != 1 {
		t.Fatalf("backward edges = %d, want 1", got)
	}

	seed, err := tensor.Ones(tensor.Shape{2}, tensor.Float64)
	if err != nil {
		t.Fatal(err)
	}
	if err := back.Grad().Push(seed); err != nil {
		t.Fatal(err)
	}
	if err := back.Backward(); err != nil {
		t.Fatal(err)
	}

	grad := acc.Gradient().AsFloat64()
	if grad[0] != 5 || grad[1] != 7 {
		t.Errorf("gradient = %v, want [5 7]", grad)
	}
}

func TestBinaryConstructionRejectsBadShapes(t *testing.T) {
	backend := cpu.New()
	a := leaf(t, []float64{1, 2}, tensor.Shape{2})
	b := leaf(t, []float64{1, 2, 3}, tensor.Shape{3})

	if _, err := NewAdd(a, b, backend); !errors.Is(err, graph.ErrShapeMismatch) {
		t.Errorf("err = %v, want ErrShapeMismatch", err)
	}
	if _, err := NewSqueeze(a, 0, backend); !errors.Is(err, graph.ErrShapeMismatch) {
		t.Errorf("squeeze of size-2 axis: err = %v, want ErrShapeMismatch", err)
	}
}
