package ops

import (
	"fmt"

	"github.com/CohenAriel/neuronika/internal/graph"
	"github.com/CohenAriel/neuronika/internal/tensor"
)

// Reshape reinterprets its operand under a new shape with the same element
// count.
type Reshape struct {
	forwardNode
	shape tensor.Shape
}

func NewReshape(x graph.Node, shape tensor.Shape, backend tensor.Backend) (*Reshape, error) {
	in := x.Data().Shape()
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("%w: reshape: %v", graph.ErrShapeMismatch, err)
	}
	if shape.NumElements() != in.NumElements() {
		return nil, fmt.Errorf("%w: cannot reshape %v into %v", graph.ErrShapeMismatch, in, shape)
	}
	return &Reshape{newUnaryForward(x, shape, backend), shape.Clone()}, nil
}

func (n *Reshape) Forward() error {
	if n.computed {
		return nil
	}
	vals, err := n.values()
	if err != nil {
		return err
	}
	if err := n.data.Replace(n.backend.Reshape(vals[0], n.shape)); err != nil {
		return err
	}
	n.computed = true
	return nil
}

// ReshapeBackward restores the operand's original shape on the gradient.
type ReshapeBackward struct {
	backwardNode
	x Operand
}

func NewReshapeBackward(out *graph.Data, x Operand, backend tensor.Backend) (*ReshapeBackward, error) {
	base, err := newBackward(out, backend, x)
	if err != nil {
		return nil, err
	}
	return &ReshapeBackward{base, x}, nil
}

func (n *ReshapeBackward) Backward() error {
	if acc := n.x.grad(); acc != nil {
		return acc.Push(n.backend.Reshape(n.grad.Gradient(), n.x.Data.Shape()))
	}
	return nil
}
