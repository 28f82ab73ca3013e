package ops

import (
	"fmt"

	"github.com/CohenAriel/neuronika/internal/graph"
	"github.com/CohenAriel/neuronika/internal/tensor"
)

// Cat concatenates its operands along one axis. All operands must share
// dtype, rank, and every dimension except the concatenation axis.
type Cat struct {
	forwardNode
	axis int
}

func NewCat(xs []graph.Node, axis int, backend tensor.Backend) (*Cat, error) {
	if len(xs) == 0 {
		return nil, fmt.Errorf("%w: cat needs at least one operand", graph.ErrShapeMismatch)
	}

	first := xs[0].Data().Shape()
	dtype := xs[0].Data().DType()
	if axis < 0 || axis >= len(first) {
		return nil, fmt.Errorf("%w: cat axis %d out of range for shape %v",
			graph.ErrShapeMismatch, axis, first)
	}

	total := 0
	for _, x := range xs {
		shape := x.Data().Shape()
		if x.Data().DType() != dtype {
			return nil, fmt.Errorf("cat: operand dtypes differ: %s vs %s", dtype, x.Data().DType())
		}
		if len(shape) != len(first) {
			return nil, fmt.Errorf("%w: cat rank mismatch: %v vs %v", graph.ErrShapeMismatch, first, shape)
		}
		for d := range shape {
			if d != axis && shape[d] != first[d] {
				return nil, fmt.Errorf("%w: cat shapes %v and %v differ outside axis %d",
					graph.ErrShapeMismatch, first, shape, axis)
			}
		}
		total += shape[axis]
	}

	outShape := first.Clone()
	outShape[axis] = total

	return &Cat{forwardNode{
		operands: xs,
		data:     graph.NewData(outShape, dtype),
		backend:  backend,
	}, axis}, nil
}

func (n *Cat) Forward() error {
	if n.computed {
		return nil
	}
	vals, err := n.values()
	if err != nil {
		return err
	}
	if err := n.data.Replace(n.backend.Cat(vals, n.axis)); err != nil {
		return err
	}
	n.computed = true
	return nil
}

// CatBackward slices the output gradient back into per-operand segments
// along the concatenation axis.
type CatBackward struct {
	backwardNode
	xs   []Operand
	axis int
}

func NewCatBackward(out *graph.Data, xs []Operand, axis int, backend tensor.Backend) (*CatBackward, error) {
	base, err := newBackward(out, backend, xs...)
	if err != nil {
		return nil, err
	}
	return &CatBackward{base, xs, axis}, nil
}

func (n *CatBackward) Backward() error {
	g := n.grad.Gradient()
	offset := 0
	for _, x := range n.xs {
		size := x.Data.Shape()[n.axis]
		if acc := x.grad(); acc != nil {
			if err := acc.Push(n.backend.Narrow(g, n.axis, offset, size)); err != nil {
				return err
			}
		}
		offset += size
	}
	return nil
}
