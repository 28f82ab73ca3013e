package ops

import (
	"github.com/CohenAriel/neuronika/internal/graph"
	"github.com/CohenAriel/neuronika/internal/tensor"
)

// Add is element-wise addition with broadcasting.
type Add struct{ forwardNode }

// NewAdd validates broadcasting between a and b and allocates the output
// cell. Nothing is computed until the scheduler calls Forward.
func NewAdd(a, b graph.Node, backend tensor.Backend) (*Add, error) {
	f, err := newBinaryForward("add", a, b, backend)
	if err != nil {
		return nil, err
	}
	return &Add{f}, nil
}

func (n *Add) Forward() error {
	if n.computed {
		return nil
	}
	vals, err := n.values()
	if err != nil {
		return err
	}
	if err := n.data.Replace(n.backend.Add(vals[0], vals[1])); err != nil {
		return err
	}
	n.computed = true
	return nil
}

// AddBackward routes the output gradient to both operands unchanged, summing
// along any axes the forward pass broadcast.
type AddBackward struct {
	backwardNode
	left, right Operand
}

func NewAddBackward(out *graph.Data, left, right Operand, backend tensor.Backend) (*AddBackward, error) {
	base, err := newBackward(out, backend, left, right)
	if err != nil {
		return nil, err
	}
	return &AddBackward{base, left, right}, nil
}

func (n *AddBackward) Backward() error {
	g := n.grad.Gradient()
	if err := deliver(n.backend, n.left.grad(), g); err != nil {
		return err
	}
	return deliver(n.backend, n.right.grad(), g)
}
