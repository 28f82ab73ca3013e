package ops

import (
	"fmt"

	"github.com/CohenAriel/neuronika/internal/graph"
	"github.com/CohenAriel/neuronika/internal/tensor"
)

// Unsqueeze inserts a size-1 dimension at the given axis.
type Unsqueeze struct {
	forwardNode
	axis int
}

func NewUnsqueeze(x graph.Node, axis int, backend tensor.Backend) (*Unsqueeze, error) {
	shape := x.Data().Shape()
	if axis < 0 || axis > len(shape) {
		return nil, fmt.Errorf("%w: unsqueeze axis %d out of range for shape %v",
			graph.ErrShapeMismatch, axis, shape)
	}

	outShape := make(tensor.Shape, 0, len(shape)+1)
	outShape = append(outShape, shape[:axis]...)
	outShape = append(outShape, 1)
	outShape = append(outShape, shape[axis:]...)

	return &Unsqueeze{newUnaryForward(x, outShape, backend), axis}, nil
}

func (n *Unsqueeze) Forward() error {
	if n.computed {
		return nil
	}
	vals, err := n.values()
	if err != nil {
		return err
	}
	if err := n.data.Replace(n.backend.Unsqueeze(vals[0], n.axis)); err != nil {
		return err
	}
	n.computed = true
	return nil
}

// UnsqueezeBackward squeezes the inserted dimension back out of the gradient.
type UnsqueezeBackward struct {
	backwardNode
	x    Operand
	axis int
}

func NewUnsqueezeBackward(out *graph.Data, x Operand, axis int, backend tensor.Backend) (*UnsqueezeBackward, error) {
	base, err := newBackward(out, backend, x)
	if err != nil {
		return nil, err
	}
	return &UnsqueezeBackward{base, x, axis}, nil
}

func (n *UnsqueezeBackward) Backward() error {
	if acc := n.x.grad(); acc != nil {
		return acc.Push(n.backend.Squeeze(n.grad.Gradient(), n.axis))
	}
	return nil
}
