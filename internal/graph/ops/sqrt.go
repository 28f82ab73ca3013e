package ops

import (
	"github.com/CohenAriel/neuronika/internal/graph"
	"github.com/CohenAriel/neuronika/internal/tensor"
)

// Sqrt is the element-wise square root.
type Sqrt struct{ forwardNode }

func NewSqrt(x graph.Node, backend tensor.Backend) *Sqrt {
	return &Sqrt{newUnaryForward(x, x.Data().Shape(), backend)}
}

func (n *Sqrt) Forward() error {
	if n.computed {
		return nil
	}
	vals, err := n.values()
	if err != nil {
		return err
	}
	if err := n.data.Replace(n.backend.Sqrt(vals[0])); err != nil {
		return err
	}
	n.computed = true
	return nil
}

// SqrtBackward reuses the forward output: d/dx √x = 1/(2√x).
type SqrtBackward struct {
	backwardNode
	x   Operand
	out *graph.Data
}

func NewSqrtBackward(out *graph.Data, x Operand, backend tensor.Backend) (*SqrtBackward, error) {
	base, err := newBackward(out, backend, x)
	if err != nil {
		return nil, err
	}
	return &SqrtBackward{base, x, out}, nil
}

func (n *SqrtBackward) Backward() error {
	if acc := n.x.grad(); acc != nil {
		return acc.Push(n.backend.Div(n.grad.Gradient(), n.backend.MulScalar(n.out.Value(), 2)))
	}
	return nil
}
