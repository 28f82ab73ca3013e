package ops

import (
	"github.com/CohenAriel/neuronika/internal/graph"
	"github.com/CohenAriel/neuronika/internal/tensor"
)

// ReLU is the element-wise rectifier max(0, x).
type ReLU struct{ forwardNode }

func NewReLU(x graph.Node, backend tensor.Backend) *ReLU {
	return &ReLU{newUnaryForward(x, x.Data().Shape(), backend)}
}

func (n *ReLU) Forward() error {
	if n.computed {
		return nil
	}
	vals, err := n.values()
	if err != nil {
		return err
	}
	if err := n.data.Replace(n.backend.ReLU(vals[0])); err != nil {
		return err
	}
	n.computed = true
	return nil
}

// ReLUBackward masks the output gradient where the input was non-positive.
// The subgradient at zero is taken as zero.
type ReLUBackward struct {
	backwardNode
	x Operand
}

func NewReLUBackward(out *graph.Data, x Operand, backend tensor.Backend) (*ReLUBackward, error) {
	base, err := newBackward(out, backend, x)
	if err != nil {
		return nil, err
	}
	return &ReLUBackward{base, x}, nil
}

func (n *ReLUBackward) Backward() error {
	if acc := n.x.grad(); acc != nil {
		mask := n.backend.GreaterScalar(n.x.value(), 0)
		return acc.Push(n.backend.Mul(n.grad.Gradient(), mask))
	}
	return nil
}
