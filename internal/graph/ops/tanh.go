package ops

import (
	"github.com/CohenAriel/neuronika/internal/graph"
	"github.com/CohenAriel/neuronika/internal/tensor"
)

// Tanh is the element-wise hyperbolic tangent.
type Tanh struct{ forwardNode }

func NewTanh(x graph.Node, backend tensor.Backend) *Tanh {
	return &Tanh{newUnaryForward(x, x.Data().Shape(), backend)}
}

func (n *Tanh) Forward() error {
	if n.computed {
		return nil
	}
	vals, err := n.values()
	if err != nil {
		return err
	}
	if err := n.data.Replace(n.backend.Tanh(vals[0])); err != nil {
		return err
	}
	n.computed = true
	return nil
}

// TanhBackward reuses the forward output: tanh' = 1 - tanh².
type TanhBackward struct {
	backwardNode
	x   Operand
	out *graph.Data
}

func NewTanhBackward(out *graph.Data, x Operand, backend tensor.Backend) (*TanhBackward, error) {
	base, err := newBackward(out, backend, x)
	if err != nil {
		return nil, err
	}
	return &TanhBackward{base, x, out}, nil
}

func (n *TanhBackward) Backward() error {
	acc := n.x.grad()
	if acc == nil {
		return nil
	}
	t := n.out.Value()
	local := n.backend.AddScalar(n.backend.Neg(n.backend.Mul(t, t)), 1)
	return acc.Push(n.backend.Mul(n.grad.Gradient(), local))
}
