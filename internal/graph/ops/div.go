package ops

import (
	"github.com/CohenAriel/neuronika/internal/graph"
	"github.com/CohenAriel/neuronika/internal/tensor"
)

// Div is element-wise division with broadcasting.
type Div struct{ forwardNode }

func NewDiv(a, b graph.Node, backend tensor.Backend) (*Div, error) {
	f, err := newBinaryForward("div", a, b, backend)
	if err != nil {
		return nil, err
	}
	return &Div{f}, nil
}

func (n *Div) Forward() error {
	if n.computed {
		return nil
	}
	vals, err := n.values()
	if err != nil {
		return err
	}
	if err := n.data.Replace(n.backend.Div(vals[0], vals[1])); err != nil {
		return err
	}
	n.computed = true
	return nil
}

// DivBackward implements the quotient rule: d/dl (l/r) = 1/r and
// d/dr (l/r) = -l/r².
type DivBackward struct {
	backwardNode
	left, right Operand
}

func NewDivBackward(out *graph.Data, left, right Operand, backend tensor.Backend) (*DivBackward, error) {
	base, err := newBackward(out, backend, left, right)
	if err != nil {
		return nil, err
	}
	return &DivBackward{base, left, right}, nil
}

func (n *DivBackward) Backward() error {
	g := n.grad.Gradient()
	r := n.right.value()
	if acc := n.left.grad(); acc != nil {
		if err := deliver(n.backend, acc, n.backend.Div(g, r)); err != nil {
			return err
		}
	}
	if acc := n.right.grad(); acc != nil {
		num := n.backend.Mul(g, n.left.value())
		den := n.backend.Mul(r, r)
		return deliver(n.backend, acc, n.backend.Neg(n.backend.Div(num, den)))
	}
	return nil
}
