package ops

import (
	"github.com/CohenAriel/neuronika/internal/graph"
	"github.com/CohenAriel/neuronika/internal/tensor"
)

// Pow raises every element to a fixed scalar exponent.
type Pow struct {
	forwardNode
	exponent float64
}

func NewPow(x graph.Node, exponent float64, backend tensor.Backend) *Pow {
	return &Pow{newUnaryForward(x, x.Data().Shape(), backend), exponent}
}

func (n *Pow) Forward() error {
	if n.computed {
		return nil
	}
	vals, err := n.values()
	if err != nil {
		return err
	}
	if err := n.data.Replace(n.backend.Pow(vals[0], n.exponent)); err != nil {
		return err
	}
	n.computed = true
	return nil
}

// PowBackward: d/dx xⁿ = n·xⁿ⁻¹.
type PowBackward struct {
	backwardNode
	x        Operand
	exponent float64
}

func NewPowBackward(out *graph.Data, x Operand, exponent float64, backend tensor.Backend) (*PowBackward, error) {
	base, err := newBackward(out, backend, x)
	if err != nil {
		return nil, err
	}
	return &PowBackward{base, x, exponent}, nil
}

func (n *PowBackward) Backward() error {
	acc := n.x.grad()
	if acc == nil {
		return nil
	}
	local := n.backend.MulScalar(n.backend.Pow(n.x.value(), n.exponent-1), n.exponent)
	return acc.Push(n.backend.Mul(n.grad.Gradient(), local))
}
