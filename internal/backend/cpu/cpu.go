// Package cpu implements the tensor.Backend kernel interface on the host CPU.
//
// Element-wise kernels are data-parallel over disjoint index ranges; matrix
// multiplication and the in-place update kernels are delegated to gonum BLAS.
// Shape manipulation kernels (Reshape, Unsqueeze, Squeeze) return zero-copy
// views over the input buffer.
package cpu

import (
	"fmt"

	"github.com/CohenAriel/neuronika/internal/parallel"
	"github.com/CohenAriel/neuronika/internal/tensor"
)

// Backend implements tensor.Backend on the CPU.
type Backend struct {
	cfg parallel.Config
}

// New creates a CPU backend with default parallelism settings.
func New() *Backend {
	return &Backend{cfg: parallel.DefaultConfig()}
}

// NewWithConfig creates a CPU backend with explicit parallelism settings.
func NewWithConfig(cfg parallel.Config) *Backend {
	return &Backend{cfg: cfg}
}

// Name returns the backend name.
func (c *Backend) Name() string {
	return "CPU"
}

// binary applies a broadcast-aware element-wise binary kernel.
func (c *Backend) binary(op string, a, b *tensor.RawTensor,
	f32 func(x, y float32) float32, f64 func(x, y float64) float64) *tensor.RawTensor {

	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch: %s vs %s", op, a.DType(), b.DType()))
	}

	outShape, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}

	out, err := tensor.NewRaw(outShape, a.DType())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}

	if a.Shape().Equal(b.Shape()) {
		switch a.DType() {
		case tensor.Float32:
			binarySame(a.AsFloat32(), b.AsFloat32(), out.AsFloat32(), f32, c.cfg)
		case tensor.Float64:
			binarySame(a.AsFloat64(), b.AsFloat64(), out.AsFloat64(), f64, c.cfg)
		}
		return out
	}

	switch a.DType() {
	case tensor.Float32:
		binaryBroadcast(a, b, out, f32, c.cfg)
	case tensor.Float64:
		binaryBroadcast(a, b, out, f64, c.cfg)
	}
	return out
}

// unary applies an element-wise unary kernel.
func (c *Backend) unary(op string, x *tensor.RawTensor,
	f32 func(v float32) float32, f64 func(v float64) float64) *tensor.RawTensor {

	out, err := tensor.NewRaw(x.Shape(), x.DType())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}

	switch x.DType() {
	case tensor.Float32:
		in, res := x.AsFloat32(), out.AsFloat32()
		parallel.For(len(in), c.cfg, func(i int) { res[i] = f32(in[i]) })
	case tensor.Float64:
		in, res := x.AsFloat64(), out.AsFloat64()
		parallel.For(len(in), c.cfg, func(i int) { res[i] = f64(in[i]) })
	}
	return out
}

// binarySame is the fast path for operands of identical shape.
func binarySame[T tensor.Element](a, b, out []T, f func(x, y T) T, cfg parallel.Config) {
	parallel.For(len(out), cfg, func(i int) { out[i] = f(a[i], b[i]) })
}

// binaryBroadcast walks the output index space and maps each position back to
// the operand buffers through zero-strides on broadcast dimensions.
func binaryBroadcast[T tensor.Element](a, b, out *tensor.RawTensor, f func(x, y T) T, cfg parallel.Config) {
	outShape := out.Shape()
	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(a.Shape(), outShape)
	bStrides := broadcastStrides(b.Shape(), outShape)

	aData := asSlice[T](a)
	bData := asSlice[T](b)
	outData := asSlice[T](out)

	parallel.For(len(outData), cfg, func(i int) {
		ai, bi := 0, 0
		rem := i
		for d := 0; d < len(outShape); d++ {
			coord := rem / outStrides[d]
			rem %= outStrides[d]
			ai += coord * aStrides[d]
			bi += coord * bStrides[d]
		}
		outData[i] = f(aData[ai], bData[bi])
	})
}

// broadcastStrides aligns shape's strides to the broadcast output shape,
// zeroing strides along broadcast (size-1 or missing) dimensions.
func broadcastStrides(shape, out tensor.Shape) []int {
	strides := shape.ComputeStrides()
	aligned := make([]int, len(out))
	offset := len(out) - len(shape)
	for i := range out {
		j := i - offset
		if j >= 0 && shape[j] != 1 {
			aligned[i] = strides[j]
		}
	}
	return aligned
}

func asSlice[T tensor.Element](t *tensor.RawTensor) []T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(t.AsFloat32()).([]T)
	default:
		return any(t.AsFloat64()).([]T)
	}
}
