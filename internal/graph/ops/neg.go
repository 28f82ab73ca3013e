package ops

import (
	"github.com/CohenAriel/neuronika/internal/graph"
	"github.com/CohenAriel/neuronika/internal/tensor"
)

// Neg is element-wise negation.
type Neg struct{ forwardNode }

func NewNeg(x graph.Node, backend tensor.Backend) *Neg {
	return &Neg{newUnaryForward(x, x.Data().Shape(), backend)}
}

func (n *Neg) Forward() error {
	if n.computed {
		return nil
	}
	vals, err := n.values()
	if err != nil {
		return err
	}
	if err := n.data.Replace(n.backend.Neg(vals[0])); err != nil {
		return err
	}
	n.computed = true
	return nil
}

// NegBackward flips the sign of the output gradient.
type NegBackward struct {
	backwardNode
	x Operand
}

func NewNegBackward(out *graph.Data, x Operand, backend tensor.Backend) (*NegBackward, error) {
	base, err := newBackward(out, backend, x)
	if err != nil {
		return nil, err
	}
	return &NegBackward{base, x}, nil
}

func (n *NegBackward) Backward() error {
	if acc := n.x.grad(); acc != nil {
		return acc.Push(n.backend.Neg(n.grad.Gradient()))
	}
	return nil
}
