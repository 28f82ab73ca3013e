package ops

import (
	"fmt"

	"github.com/CohenAriel/neuronika/internal/graph"
	"github.com/CohenAriel/neuronika/internal/tensor"
)

// MatMul is 2-D matrix multiplication: [m, k] × [k, n] → [m, n].
type MatMul struct{ forwardNode }

func NewMatMul(a, b graph.Node, backend tensor.Backend) (*MatMul, error) {
	as, bs := a.Data().Shape(), b.Data().Shape()
	if a.Data().DType() != b.Data().DType() {
		return nil, fmt.Errorf("matmul: operand dtypes differ: %s vs %s", a.Data().DType(), b.Data().DType())
	}
	if len(as) != 2 || len(bs) != 2 {
		return nil, fmt.Errorf("%w: matmul requires 2-D operands, got %v and %v",
			graph.ErrShapeMismatch, as, bs)
	}
	if as[1] != bs[0] {
		return nil, fmt.Errorf("%w: matmul inner dimensions %v and %v", graph.ErrShapeMismatch, as, bs)
	}

	return &MatMul{forwardNode{
		operands: []graph.Node{a, b},
		data:     graph.NewData(tensor.Shape{as[0], bs[1]}, a.Data().DType()),
		backend:  backend,
	}}, nil
}

func (n *MatMul) Forward() error {
	if n.computed {
		return nil
	}
	vals, err := n.values()
	if err != nil {
		return err
	}
	if err := n.data.Replace(n.backend.MatMul(vals[0], vals[1])); err != nil {
		return err
	}
	n.computed = true
	return nil
}

// MatMulBackward: for c = a·b, grad(a) = g·bᵀ and grad(b) = aᵀ·g. No
// broadcast reduction is involved since MatMul never broadcasts.
type MatMulBackward struct {
	backwardNode
	left, right Operand
}

func NewMatMulBackward(out *graph.Data, left, right Operand, backend tensor.Backend) (*MatMulBackward, error) {
	base, err := newBackward(out, backend, left, right)
	if err != nil {
		return nil, err
	}
	return &MatMulBackward{base, left, right}, nil
}

func (n *MatMulBackward) Backward() error {
	g := n.grad.Gradient()
	if acc := n.left.grad(); acc != nil {
		if err := acc.Push(n.backend.MatMul(g, n.backend.Transpose(n.right.value()))); err != nil {
			return err
		}
	}
	if acc := n.right.grad(); acc != nil {
		return acc.Push(n.backend.MatMul(n.backend.Transpose(n.left.value()), g))
	}
	return nil
}
