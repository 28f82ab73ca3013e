package cpu

import (
	"fmt"
	"math"

	"github.com/CohenAriel/neuronika/internal/tensor"
)

// Sum reduces all elements to a scalar-shaped tensor.
func (c *Backend) Sum(x *tensor.RawTensor) *tensor.RawTensor {
	out, err := tensor.NewRaw(tensor.Shape{}, x.DType())
	if err != nil {
		panic(fmt.Sprintf("sum: %v", err))
	}

	switch x.DType() {
	case tensor.Float32:
		var acc float64 // accumulate in float64 to limit rounding drift
		for _, v := range x.AsFloat32() {
			acc += float64(v)
		}
		out.AsFloat32()[0] = float32(acc)
	case tensor.Float64:
		var acc float64
		for _, v := range x.AsFloat64() {
			acc += v
		}
		out.AsFloat64()[0] = acc
	}
	return out
}

// Mean reduces all elements to their scalar-shaped average.
func (c *Backend) Mean(x *tensor.RawTensor) *tensor.RawTensor {
	out := c.Sum(x)
	c.Scale(1/float64(x.NumElements()), out)
	return out
}

// SumAxis sums along one axis. With keepDim the axis is retained with size 1,
// otherwise it is removed from the result shape.
func (c *Backend) SumAxis(x *tensor.RawTensor, axis int, keepDim bool) *tensor.RawTensor {
	shape := x.Shape()
	if axis < 0 || axis >= len(shape) {
		panic(fmt.Sprintf("sumaxis: axis %d out of range for shape %v", axis, shape))
	}

	outShape := make(tensor.Shape, 0, len(shape))
	for d, dim := range shape {
		switch {
		case d != axis:
			outShape = append(outShape, dim)
		case keepDim:
			outShape = append(outShape, 1)
		}
	}

	out, err := tensor.NewRaw(outShape, x.DType())
	if err != nil {
		panic(fmt.Sprintf("sumaxis: %v", err))
	}

	outer, n, inner := axisSpans(shape, axis)
	switch x.DType() {
	case tensor.Float32:
		sumAxisInto(x.AsFloat32(), out.AsFloat32(), outer, n, inner)
	case tensor.Float64:
		sumAxisInto(x.AsFloat64(), out.AsFloat64(), outer, n, inner)
	}
	return out
}

// Softmax applies a numerically stable softmax along the given axis.
func (c *Backend) Softmax(x *tensor.RawTensor, axis int) *tensor.RawTensor {
	shape := x.Shape()
	if axis < 0 || axis >= len(shape) {
		panic(fmt.Sprintf("softmax: axis %d out of range for shape %v", axis, shape))
	}

	out, err := tensor.NewRaw(shape, x.DType())
	if err != nil {
		panic(fmt.Sprintf("softmax: %v", err))
	}

	outer, n, inner := axisSpans(shape, axis)
	switch x.DType() {
	case tensor.Float32:
		softmaxInto(x.AsFloat32(), out.AsFloat32(), outer, n, inner)
	case tensor.Float64:
		softmaxInto(x.AsFloat64(), out.AsFloat64(), outer, n, inner)
	}
	return out
}

// axisSpans decomposes a shape around one axis into (outer, n, inner) spans so
// the element at (o, j, i) lives at flat index (o*n+j)*inner+i.
func axisSpans(shape tensor.Shape, axis int) (outer, n, inner int) {
	outer, n, inner = 1, shape[axis], 1
	for d := 0; d < axis; d++ {
		outer *= shape[d]
	}
	for d := axis + 1; d < len(shape); d++ {
		inner *= shape[d]
	}
	return outer, n, inner
}

func sumAxisInto[T tensor.Element](in, out []T, outer, n, inner int) {
	for o := 0; o < outer; o++ {
		for j := 0; j < n; j++ {
			base := (o*n + j) * inner
			outBase := o * inner
			for i := 0; i < inner; i++ {
				out[outBase+i] += in[base+i]
			}
		}
	}
}

func softmaxInto[T tensor.Element](in, out []T, outer, n, inner int) {
	for o := 0; o < outer; o++ {
		for i := 0; i < inner; i++ {
			// Max-shift for numerical stability.
			maxVal := math.Inf(-1)
			for j := 0; j < n; j++ {
				v := float64(in[(o*n+j)*inner+i])
				if v > maxVal {
					maxVal = v
				}
			}
			var denom float64
			for j := 0; j < n; j++ {
				idx := (o*n+j)*inner + i
				e := math.Exp(float64(in[idx]) - maxVal)
				out[idx] = T(e)
				denom += e
			}
			for j := 0; j < n; j++ {
				idx := (o*n+j)*inner + i
				out[idx] = T(float64(out[idx]) / denom)
			}
		}
	}
}
