package ops

import (
	"github.com/CohenAriel/neuronika/internal/graph"
	"github.com/CohenAriel/neuronika/internal/tensor"
)

// Mul is element-wise multiplication with broadcasting.
type Mul struct{ forwardNode }

func NewMul(a, b graph.Node, backend tensor.Backend) (*Mul, error) {
	f, err := newBinaryForward("mul", a, b, backend)
	if err != nil {
		return nil, err
	}
	return &Mul{f}, nil
}

func (n *Mul) Forward() error {
	if n.computed {
		return nil
	}
	vals, err := n.values()
	if err != nil {
		return err
	}
	if err := n.data.Replace(n.backend.Mul(vals[0], vals[1])); err != nil {
		return err
	}
	n.computed = true
	return nil
}

// MulBackward applies the product rule: each operand receives the output
// gradient scaled element-wise by the other operand's forward value.
type MulBackward struct {
	backwardNode
	left, right Operand
}

func NewMulBackward(out *graph.Data, left, right Operand, backend tensor.Backend) (*MulBackward, error) {
	base, err := newBackward(out, backend, left, right)
	if err != nil {
		return nil, err
	}
	return &MulBackward{base, left, right}, nil
}

func (n *MulBackward) Backward() error {
	g := n.grad.Gradient()
	if acc := n.left.grad(); acc != nil {
		if err := deliver(n.backend, acc, n.backend.Mul(g, n.right.value())); err != nil {
			return err
		}
	}
	if acc := n.right.grad(); acc != nil {
		return deliver(n.backend, acc, n.backend.Mul(g, n.left.value()))
	}
	return nil
}
