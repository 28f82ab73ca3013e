package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"

	"github.com/CohenAriel/neuronika/internal/tensor"
)

// MatMul multiplies two 2-D tensors via BLAS gemm.
func (c *Backend) MatMul(a, b *tensor.RawTensor) *tensor.RawTensor {
	aShape, bShape := a.Shape(), b.Shape()
	if len(aShape) != 2 || len(bShape) != 2 {
		panic(fmt.Sprintf("matmul: expected 2-D operands, got %v and %v", aShape, bShape))
	}
	if aShape[1] != bShape[0] {
		panic(fmt.Sprintf("matmul: inner dimensions differ: %v @ %v", aShape, bShape))
	}
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("matmul: dtype mismatch: %s vs %s", a.DType(), b.DType()))
	}

	m, k, n := aShape[0], aShape[1], bShape[1]
	out, err := tensor.NewRaw(tensor.Shape{m, n}, a.DType())
	if err != nil {
		panic(fmt.Sprintf("matmul: %v", err))
	}

	switch a.DType() {
	case tensor.Float32:
		blas32.Gemm(blas.NoTrans, blas.NoTrans, 1,
			blas32.General{Rows: m, Cols: k, Stride: k, Data: a.AsFloat32()},
			blas32.General{Rows: k, Cols: n, Stride: n, Data: b.AsFloat32()},
			0,
			blas32.General{Rows: m, Cols: n, Stride: n, Data: out.AsFloat32()})
	case tensor.Float64:
		blas64.Gemm(blas.NoTrans, blas.NoTrans, 1,
			blas64.General{Rows: m, Cols: k, Stride: k, Data: a.AsFloat64()},
			blas64.General{Rows: k, Cols: n, Stride: n, Data: b.AsFloat64()},
			0,
			blas64.General{Rows: m, Cols: n, Stride: n, Data: out.AsFloat64()})
	}

	return out
}

// Axpy computes dst += alpha*x in place. Shapes must match exactly.
func (c *Backend) Axpy(alpha float64, x, dst *tensor.RawTensor) {
	if !x.Shape().Equal(dst.Shape()) {
		panic(fmt.Sprintf("axpy: shape mismatch: %v vs %v", x.Shape(), dst.Shape()))
	}
	if x.DType() != dst.DType() {
		panic(fmt.Sprintf("axpy: dtype mismatch: %s vs %s", x.DType(), dst.DType()))
	}

	n := x.NumElements()
	switch x.DType() {
	case tensor.Float32:
		blas32.Axpy(float32(alpha),
			blas32.Vector{N: n, Inc: 1, Data: x.AsFloat32()},
			blas32.Vector{N: n, Inc: 1, Data: dst.AsFloat32()})
	case tensor.Float64:
		blas64.Axpy(alpha,
			blas64.Vector{N: n, Inc: 1, Data: x.AsFloat64()},
			blas64.Vector{N: n, Inc: 1, Data: dst.AsFloat64()})
	}
}

// Scale computes x *= alpha in place.
func (c *Backend) Scale(alpha float64, x *tensor.RawTensor) {
	n := x.NumElements()
	switch x.DType() {
	case tensor.Float32:
		blas32.Scal(float32(alpha), blas32.Vector{N: n, Inc: 1, Data: x.AsFloat32()})
	case tensor.Float64:
		blas64.Scal(alpha, blas64.Vector{N: n, Inc: 1, Data: x.AsFloat64()})
	}
}
