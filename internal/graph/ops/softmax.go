package ops

import (
	"fmt"

	"github.com/CohenAriel/neuronika/internal/graph"
	"github.com/CohenAriel/neuronika/internal/tensor"
)

// Softmax normalizes x into a probability distribution along one axis.
type Softmax struct {
	forwardNode
	axis int
}

func NewSoftmax(x graph.Node, axis int, backend tensor.Backend) (*Softmax, error) {
	shape := x.Data().Shape()
	if axis < 0 || axis >= len(shape) {
		return nil, fmt.Errorf("%w: softmax axis %d out of range for shape %v",
			graph.ErrShapeMismatch, axis, shape)
	}
	return &Softmax{newUnaryForward(x, shape, backend), axis}, nil
}

func (n *Softmax) Forward() error {
	if n.computed {
		return nil
	}
	vals, err := n.values()
	if err != nil {
		return err
	}
	if err := n.data.Replace(n.backend.Softmax(vals[0], n.axis)); err != nil {
		return err
	}
	n.computed = true
	return nil
}

// SoftmaxBackward contracts the Jacobian against the output gradient without
// materializing it: grad(x) = s ⊙ (g - Σ_axis(g ⊙ s)).
type SoftmaxBackward struct {
	backwardNode
	x    Operand
	out  *graph.Data
	axis int
}

func NewSoftmaxBackward(out *graph.Data, x Operand, axis int, backend tensor.Backend) (*SoftmaxBackward, error) {
	base, err := newBackward(out, backend, x)
	if err != nil {
		return nil, err
	}
	return &SoftmaxBackward{base, x, out, axis}, nil
}

func (n *SoftmaxBackward) Backward() error {
	acc := n.x.grad()
	if acc == nil {
		return nil
	}
	g := n.grad.Gradient()
	s := n.out.Value()
	dot := n.backend.SumAxis(n.backend.Mul(g, s), n.axis, true)
	return acc.Push(n.backend.Mul(s, n.backend.Sub(g, dot)))
}
