package tensor

import (
	"math/rand"
	"testing"
)

func TestFromSliceAndAt(t *testing.T) {
	x, err := FromSlice([]float32{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	if err != nil {
		t.Fatal(err)
	}

	if x.DType() != Float32 {
		t.Errorf("dtype = %s, want float32", x.DType())
	}
	if got := x.At(1, 2); got != 6 {
		t.Errorf("At(1, 2) = %v, want 6", got)
	}
	if got := x.At(0, 0); got != 1 {
		t.Errorf("At(0, 0) = %v, want 1", got)
	}
}

func TestFromSliceLengthMismatch(t *testing.T) {
	if _, err := FromSlice([]float64{1, 2, 3}, Shape{2, 2}); err == nil {
		t.Error("expected error for mismatched length")
	}
}

func TestWithShapeSharesBuffer(t *testing.T) {
	x, err := FromSlice([]float64{1, 2, 3, 4}, Shape{2, 2})
	if err != nil {
		t.Fatal(err)
	}

	view, err := x.WithShape(Shape{4})
	if err != nil {
		t.Fatal(err)
	}

	view.AsFloat64()[0] = 42
	if got := x.At(0, 0); got != 42 {
		t.Errorf("view write not visible through original: At(0, 0) = %v", got)
	}

	if _, err := x.WithShape(Shape{3}); err == nil {
		t.Error("expected error for element count change")
	}
}

func TestCloneIsDeep(t *testing.T) {
	x, err := FromSlice([]float32{1, 2}, Shape{2})
	if err != nil {
		t.Fatal(err)
	}

	c := x.Clone()
	c.AsFloat32()[0] = 99
	if got := x.At(0); got != 1 {
		t.Errorf("clone write leaked into original: %v", got)
	}
}

func TestItem(t *testing.T) {
	x, err := Full(Shape{}, Float64, 3.5)
	if err != nil {
		t.Fatal(err)
	}
	if got := x.Item(); got != 3.5 {
		t.Errorf("Item = %v, want 3.5", got)
	}
}

func TestFillAndZero(t *testing.T) {
	x, err := NewRaw(Shape{3}, Float32)
	if err != nil {
		t.Fatal(err)
	}

	x.Fill(7)
	for i, v := range x.AsFloat32() {
		if v != 7 {
			t.Fatalf("element %d = %v after Fill(7)", i, v)
		}
	}

	x.Zero()
	for i, v := range x.AsFloat32() {
		if v != 0 {
			t.Fatalf("element %d = %v after Zero", i, v)
		}
	}
}

func TestRandnRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	x, err := Randn(Shape{1000}, Float64, rng)
	if err != nil {
		t.Fatal(err)
	}

	var sum float64
	for _, v := range x.AsFloat64() {
		sum += v
	}
	mean := sum / 1000
	if mean > 0.2 || mean < -0.2 {
		t.Errorf("sample mean = %v, expected near 0", mean)
	}
}
