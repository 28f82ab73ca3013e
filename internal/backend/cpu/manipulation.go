package cpu

import (
	"fmt"

	"github.com/CohenAriel/neuronika/internal/tensor"
)

// Reshape returns a zero-copy view of x under a new shape.
func (c *Backend) Reshape(x *tensor.RawTensor, shape tensor.Shape) *tensor.RawTensor {
	out, err := x.WithShape(shape)
	if err != nil {
		panic(fmt.Sprintf("reshape: %v", err))
	}
	return out
}

// Unsqueeze returns a view of x with a size-1 dimension inserted at axis.
func (c *Backend) Unsqueeze(x *tensor.RawTensor, axis int) *tensor.RawTensor {
	shape := x.Shape()
	if axis < 0 || axis > len(shape) {
		panic(fmt.Sprintf("unsqueeze: axis %d out of range for shape %v", axis, shape))
	}

	newShape := make(tensor.Shape, 0, len(shape)+1)
	newShape = append(newShape, shape[:axis]...)
	newShape = append(newShape, 1)
	newShape = append(newShape, shape[axis:]...)

	return c.Reshape(x, newShape)
}

// Squeeze returns a view of x with the size-1 dimension at axis removed.
func (c *Backend) Squeeze(x *tensor.RawTensor, axis int) *tensor.RawTensor {
	shape := x.Shape()
	if axis < 0 || axis >= len(shape) {
		panic(fmt.Sprintf("squeeze: axis %d out of range for shape %v", axis, shape))
	}
	if shape[axis] != 1 {
		panic(fmt.Sprintf("squeeze: dimension %d of shape %v has size %d, not 1", axis, shape, shape[axis]))
	}

	newShape := make(tensor.Shape, 0, len(shape)-1)
	newShape = append(newShape, shape[:axis]...)
	newShape = append(newShape, shape[axis+1:]...)

	return c.Reshape(x, newShape)
}

// Transpose permutes the dimensions of x. With no axes given, all dimensions
// are reversed.
func (c *Backend) Transpose(x *tensor.RawTensor, axes ...int) *tensor.RawTensor {
	shape := x.Shape()
	ndim := len(shape)

	if len(axes) == 0 {
		axes = make([]int, ndim)
		for i := range axes {
			axes[i] = ndim - 1 - i
		}
	}
	if len(axes) != ndim {
		panic(fmt.Sprintf("transpose: got %d axes for %d-D tensor", len(axes), ndim))
	}
	seen := make([]bool, ndim)
	for _, ax := range axes {
		if ax < 0 || ax >= ndim {
			panic(fmt.Sprintf("transpose: invalid axis %d for %d-D tensor", ax, ndim))
		}
		if seen[ax] {
			panic(fmt.Sprintf("transpose: duplicate axis %d", ax))
		}
		seen[ax] = true
	}

	outShape := make(tensor.Shape, ndim)
	for i, ax := range axes {
		outShape[i] = shape[ax]
	}

	out, err := tensor.NewRaw(outShape, x.DType())
	if err != nil {
		panic(fmt.Sprintf("transpose: %v", err))
	}

	switch x.DType() {
	case tensor.Float32:
		permute(x.AsFloat32(), out.AsFloat32(), shape, outShape, axes)
	case tensor.Float64:
		permute(x.AsFloat64(), out.AsFloat64(), shape, outShape, axes)
	}
	return out
}

// permute copies in into out following the axis permutation.
func permute[T tensor.Element](in, out []T, inShape, outShape tensor.Shape, axes []int) {
	inStrides := inShape.ComputeStrides()
	outStrides := outShape.ComputeStrides()

	for i := range out {
		// Decompose the output index and map each coordinate back to the
		// corresponding input axis.
		rem := i
		src := 0
		for d := 0; d < len(outShape); d++ {
			coord := rem / outStrides[d]
			rem %= outStrides[d]
			src += coord * inStrides[axes[d]]
		}
		out[i] = in[src]
	}
}

// Cat concatenates tensors along the given axis. All inputs must share dtype
// and every dimension except the concatenation axis.
func (c *Backend) Cat(xs []*tensor.RawTensor, axis int) *tensor.RawTensor {
	if len(xs) == 0 {
		panic("cat: no tensors given")
	}

	first := xs[0].Shape()
	if axis < 0 || axis >= len(first) {
		panic(fmt.Sprintf("cat: axis %d out of range for shape %v", axis, first))
	}

	total := 0
	for _, x := range xs {
		shape := x.Shape()
		if len(shape) != len(first) {
			panic(fmt.Sprintf("cat: rank mismatch: %v vs %v", first, shape))
		}
		for d := range shape {
			if d != axis && shape[d] != first[d] {
				panic(fmt.Sprintf("cat: shapes %v and %v differ outside axis %d", first, shape, axis))
			}
		}
		if x.DType() != xs[0].DType() {
			panic(fmt.Sprintf("cat: dtype mismatch: %s vs %s", xs[0].DType(), x.DType()))
		}
		total += shape[axis]
	}

	outShape := first.Clone()
	outShape[axis] = total

	out, err := tensor.NewRaw(outShape, xs[0].DType())
	if err != nil {
		panic(fmt.Sprintf("cat: %v", err))
	}

	// Copy slab by slab: for each outer index, the inputs contribute
	// contiguous runs of axisDim*inner elements in order.
	outer, _, inner := axisSpans(outShape, axis)
	elem := xs[0].DType().Size()
	outData := out.Data()

	for o := 0; o < outer; o++ {
		dst := o * total * inner * elem
		for _, x := range xs {
			run := x.Shape()[axis] * inner * elem
			copy(outData[dst:dst+run], x.Data()[o*run:(o+1)*run])
			dst += run
		}
	}
	return out
}

// Narrow copies the slice of x covering [start, start+length) along axis.
func (c *Backend) Narrow(x *tensor.RawTensor, axis, start, length int) *tensor.RawTensor {
	shape := x.Shape()
	if axis < 0 || axis >= len(shape) {
		panic(fmt.Sprintf("narrow: axis %d out of range for shape %v", axis, shape))
	}
	if start < 0 || length <= 0 || start+length > shape[axis] {
		panic(fmt.Sprintf("narrow: range [%d, %d) out of bounds for dimension %d of shape %v",
			start, start+length, axis, shape))
	}

	outShape := shape.Clone()
	outShape[axis] = length

	out, err := tensor.NewRaw(outShape, x.DType())
	if err != nil {
		panic(fmt.Sprintf("narrow: %v", err))
	}

	outer, n, inner := axisSpans(shape, axis)
	elem := x.DType().Size()
	inData, outData := x.Data(), out.Data()
	run := length * inner * elem

	for o := 0; o < outer; o++ {
		src := (o*n + start) * inner * elem
		copy(outData[o*run:(o+1)*run], inData[src:src+run])
	}
	return out
}
