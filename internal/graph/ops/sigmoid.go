package ops

import (
	"github.com/CohenAriel/neuronika/internal/graph"
	"github.com/CohenAriel/neuronika/internal/tensor"
)

// Sigmoid is the element-wise logistic function.
type Sigmoid struct{ forwardNode }

func NewSigmoid(x graph.Node, backend tensor.Backend) *Sigmoid {
	return &Sigmoid{newUnaryForward(x, x.Data().Shape(), backend)}
}

func (n *Sigmoid) Forward() error {
	if n.computed {
		return nil
	}
	vals, err := n.values()
	if err != nil {
		return err
	}
	if err := n.data.Replace(n.backend.Sigmoid(vals[0])); err != nil {
		return err
	}
	n.computed = true
	return nil
}

// SigmoidBackward reuses the forward output: σ' = σ(1-σ).
type SigmoidBackward struct {
	backwardNode
	x   Operand
	out *graph.Data
}

func NewSigmoidBackward(out *graph.Data, x Operand, backend tensor.Backend) (*SigmoidBackward, error) {
	base, err := newBackward(out, backend, x)
	if err != nil {
		return nil, err
	}
	return &SigmoidBackward{base, x, out}, nil
}

func (n *SigmoidBackward) Backward() error {
	acc := n.x.grad()
	if acc == nil {
		return nil
	}
	s := n.out.Value()
	local := n.backend.Mul(s, n.backend.AddScalar(n.backend.Neg(s), 1))
	return acc.Push(n.backend.Mul(n.grad.Gradient(), local))
}
