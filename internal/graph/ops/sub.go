package ops

import (
	"github.com/CohenAriel/neuronika/internal/graph"
	"github.com/CohenAriel/neuronika/internal/tensor"
)

// Sub is element-wise subtraction with broadcasting.
type Sub struct{ forwardNode }

func NewSub(a, b graph.Node, backend tensor.Backend) (*Sub, error) {
	f, err := newBinaryForward("sub", a, b, backend)
	if err != nil {
		return nil, err
	}
	return &Sub{f}, nil
}

func (n *Sub) Forward() error {
	if n.computed {
		return nil
	}
	vals, err := n.values()
	if err != nil {
		return err
	}
	if err := n.data.Replace(n.backend.Sub(vals[0], vals[1])); err != nil {
		return err
	}
	n.computed = true
	return nil
}

// SubBackward sends the output gradient to the minuend and its negation to
// the subtrahend.
type SubBackward struct {
	backwardNode
	left, right Operand
}

func NewSubBackward(out *graph.Data, left, right Operand, backend tensor.Backend) (*SubBackward, error) {
	base, err := newBackward(out, backend, left, right)
	if err != nil {
		return nil, err
	}
	return &SubBackward{base, left, right}, nil
}

func (n *SubBackward) Backward() error {
	g := n.grad.Gradient()
	if err := deliver(n.backend, n.left.grad(), g); err != nil {
		return err
	}
	if acc := n.right.grad(); acc != nil {
		return deliver(n.backend, acc, n.backend.Neg(g))
	}
	return nil
}
