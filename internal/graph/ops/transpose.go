package ops

import (
	"fmt"

	"github.com/CohenAriel/neuronika/internal/graph"
	"github.com/CohenAriel/neuronika/internal/tensor"
)

// Transpose permutes the dimensions of its operand. With no axes given, all
// dimensions are reversed.
type Transpose struct {
	forwardNode
	axes []int
}

func NewTranspose(x graph.Node, backend tensor.Backend, axes ...int) (*Transpose, error) {
	shape := x.Data().Shape()
	ndim := len(shape)

	if len(axes) == 0 {
		axes = make([]int, ndim)
		for i := range axes {
			axes[i] = ndim - 1 - i
		}
	}
	if len(axes) != ndim {
		return nil, fmt.Errorf("%w: transpose got %d axes for %d-D operand",
			graph.ErrShapeMismatch, len(axes), ndim)
	}
	seen := make([]bool, ndim)
	for _, ax := range axes {
		if ax < 0 || ax >= ndim {
			return nil, fmt.Errorf("%w: transpose axis %d out of range for shape %v",
				graph.ErrShapeMismatch, ax, shape)
		}
		if seen[ax] {
			return nil, fmt.Errorf("%w: transpose axis %d repeated", graph.ErrShapeMismatch, ax)
		}
		seen[ax] = true
	}

	outShape := make(tensor.Shape, ndim)
	for i, ax := range axes {
		outShape[i] = shape[ax]
	}
	return &Transpose{newUnaryForward(x, outShape, backend), axes}, nil
}

func (n *Transpose) Forward() error {
	if n.computed {
		return nil
	}
	vals, err := n.values()
	if err != nil {
		return err
	}
	if err := n.data.Replace(n.backend.Transpose(vals[0], n.axes...)); err != nil {
		return err
	}
	n.computed = true
	return nil
}

// Axes returns the forward permutation this node applies.
func (n *Transpose) Axes() []int { return n.axes }

// TransposeBackward applies the inverse permutation to the output gradient.
type TransposeBackward struct {
	backwardNode
	x       Operand
	inverse []int
}

func NewTransposeBackward(out *graph.Data, x Operand, axes []int, backend tensor.Backend) (*TransposeBackward, error) {
	base, err := newBackward(out, backend, x)
	if err != nil {
		return nil, err
	}
	inverse := make([]int, len(axes))
	for i, ax := range axes {
		inverse[ax] = i
	}
	return &TransposeBackward{base, x, inverse}, nil
}

func (n *TransposeBackward) Backward() error {
	if acc := n.x.grad(); acc != nil {
		return acc.Push(n.backend.Transpose(n.grad.Gradient(), n.inverse...))
	}
	return nil
}
