package ops

import (
	"fmt"

	"github.com/CohenAriel/neuronika/internal/graph"
	"github.com/CohenAriel/neuronika/internal/tensor"
)

// SumAxis reduces along one axis, optionally keeping it as size 1.
type SumAxis struct {
	forwardNode
	axis    int
	keepDim bool
}

func NewSumAxis(x graph.Node, axis int, keepDim bool, backend tensor.Backend) (*SumAxis, error) {
	shape := x.Data().Shape()
	if axis < 0 || axis >= len(shape) {
		return nil, fmt.Errorf("%w: sum axis %d out of range for shape %v",
			graph.ErrShapeMismatch, axis, shape)
	}

	var outShape tensor.Shape
	if keepDim {
		outShape = shape.Clone()
		outShape[axis] = 1
	} else {
		outShape = make(tensor.Shape, 0, len(shape)-1)
		outShape = append(outShape, shape[:axis]...)
		outShape = append(outShape, shape[axis+1:]...)
	}

	return &SumAxis{newUnaryForward(x, outShape, backend), axis, keepDim}, nil
}

func (n *SumAxis) Forward() error {
	if n.computed {
		return nil
	}
	vals, err := n.values()
	if err != nil {
		return err
	}
	if err := n.data.Replace(n.backend.SumAxis(vals[0], n.axis, n.keepDim)); err != nil {
		return err
	}
	n.computed = true
	return nil
}

// SumAxisBackward stretches the output gradient back along the reduced axis.
type SumAxisBackward struct {
	backwardNode
	x       Operand
	axis    int
	keepDim bool
}

func NewSumAxisBackward(out *graph.Data, x Operand, axis int, keepDim bool, backend tensor.Backend) (*SumAxisBackward, error) {
	base, err := newBackward(out, backend, x)
	if err != nil {
		return nil, err
	}
	return &SumAxisBackward{base, x, axis, keepDim}, nil
}

func (n *SumAxisBackward) Backward() error {
	acc := n.x.grad()
	if acc == nil {
		return nil
	}

	g := n.grad.Gradient()
	if !n.keepDim {
		g = n.backend.Unsqueeze(g, n.axis)
	}

	// Broadcast-add against zeros to expand the size-1 axis.
	zeros, err := tensor.Zeros(n.x.Data.Shape(), n.x.Data.DType())
	if err != nil {
		return err
	}
	return acc.Push(n.backend.Add(zeros, g))
}
