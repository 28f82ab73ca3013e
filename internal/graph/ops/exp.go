package ops

import (
	"github.com/CohenAriel/neuronika/internal/graph"
	"github.com/CohenAriel/neuronika/internal/tensor"
)

// Exp is the element-wise exponential.
type Exp struct{ forwardNode }

func NewExp(x graph.Node, backend tensor.Backend) *Exp {
	return &Exp{newUnaryForward(x, x.Data().Shape(), backend)}
}

func (n *Exp) Forward() error {
	if n.computed {
		return nil
	}
	vals, err := n.values()
	if err != nil {
		return err
	}
	if err := n.data.Replace(n.backend.Exp(vals[0])); err != nil {
		return err
	}
	n.computed = true
	return nil
}

// ExpBackward reuses the memoized forward output: d/dx eˣ = eˣ.
type ExpBackward struct {
	backwardNode
	x   Operand
	out *graph.Data
}

func NewExpBackward(out *graph.Data, x Operand, backend tensor.Backend) (*ExpBackward, error) {
	base, err := newBackward(out, backend, x)
	if err != nil {
		return nil, err
	}
	return &ExpBackward{base, x, out}, nil
}

func (n *ExpBackward) Backward() error {
	if acc := n.x.grad(); acc != nil {
		return acc.Push(n.backend.Mul(n.grad.Gradient(), n.out.Value()))
	}
	return nil
}
