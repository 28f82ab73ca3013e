package ops

import (
	"fmt"

	"github.com/CohenAriel/neuronika/internal/graph"
	"github.com/CohenAriel/neuronika/internal/tensor"
)

// Squeeze removes a size-1 dimension at the given axis.
type Squeeze struct {
	forwardNode
	axis int
}

func NewSqueeze(x graph.Node, axis int, backend tensor.Backend) (*Squeeze, error) {
	shape := x.Data().Shape()
	if axis < 0 || axis >= len(shape) {
		return nil, fmt.Errorf("%w: squeeze axis %d out of range for shape %v",
			graph.ErrShapeMismatch, axis, shape)
	}
	if shape[axis] != 1 {
		return nil, fmt.Errorf("%w: squeeze axis %d of shape %v has size %d, not 1",
			graph.ErrShapeMismatch, axis, shape, shape[axis])
	}

	outShape := make(tensor.Shape, 0, len(shape)-1)
	outShape = append(outShape, shape[:axis]...)
	outShape = append(outShape, shape[axis+1:]...)

	return &Squeeze{newUnaryForward(x, outShape, backend), axis}, nil
}

func (n *Squeeze) Forward() error {
	if n.computed {
		return nil
	}
	vals, err := n.values()
	if err != nil {
		return err
	}
	if err := n.data.Replace(n.backend.Squeeze(vals[0], n.axis)); err != nil {
		return err
	}
	n.computed = true
	return nil
}

// SqueezeBackward reinserts the removed dimension into the gradient.
type SqueezeBackward struct {
	backwardNode
	x    Operand
	axis int
}

func NewSqueezeBackward(out *graph.Data, x Operand, axis int, backend tensor.Backend) (*SqueezeBackward, error) {
	base, err := newBackward(out, backend, x)
	if err != nil {
		return nil, err
	}
	return &SqueezeBackward{base, x, axis}, nil
}

func (n *SqueezeBackward) Backward() error {
	if acc := n.x.grad(); acc != nil {
		return acc.Push(n.backend.Unsqueeze(n.grad.Gradient(), n.axis))
	}
	return nil
}
