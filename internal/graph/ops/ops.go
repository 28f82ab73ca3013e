// Package ops defines the closed catalogue of differentiable operations.
//
// Every operation contributes a forward node (lazy, memoized evaluation rule)
// and a backward node (the vector-Jacobian-product rule plus the broadcast
// metadata it needs). The catalogue is closed on purpose: adding an operation
// means adding a type here, and nothing outside this package invents new
// gradient rules.
package ops

import (
	"fmt"

	"github.com/CohenAriel/neuronika/internal/graph"
	"github.com/CohenAriel/neuronika/internal/tensor"
)

// forwardNode carries the state shared by every forward operation node.
type forwardNode struct {
	operands []graph.Node
	data     *graph.Data
	computed bool
	backend  tensor.Backend
}

// Operands returns the nodes this operation reads.
func (f *forwardNode) Operands() []graph.Node { return f.operands }

// Data returns the operation's shared output cell.
func (f *forwardNode) Data() *graph.Data { return f.data }

// Computed reports whether the output cell is up to date.
func (f *forwardNode) Computed() bool { return f.computed }

// ResetComputed clears the memoization flag.
func (f *forwardNode) ResetComputed() { f.computed = false }

// values collects operand buffers, guarding the scheduling invariant that
// operands are computed before their consumers.
func (f *forwardNode) values() ([]*tensor.RawTensor, error) {
	vals := make([]*tensor.RawTensor, len(f.operands))
	for i, op := range f.operands {
		if !op.Computed() || op.Data().Value() == nil {
			return nil, fmt.Errorf("%w (operand %d)", graph.ErrUncomputedDependency, i)
		}
		vals[i] = op.Data().Value()
	}
	return vals, nil
}

// newBinaryForward validates broadcasting for a two-operand node and
// allocates its (still empty) output cell.
func newBinaryForward(op string, a, b graph.Node, backend tensor.Backend) (forwardNode, error) {
	ad, bd := a.Data(), b.Data()
	if ad.DType() != bd.DType() {
		return forwardNode{}, fmt.Errorf("%s: operand dtypes differ: %s vs %s", op, ad.DType(), bd.DType())
	}
	shape, err := tensor.BroadcastShapes(ad.Shape(), bd.Shape())
	if err != nil {
		return forwardNode{}, fmt.Errorf("%w: %s: %v", graph.ErrShapeMismatch, op, err)
	}
	return forwardNode{
		operands: []graph.Node{a, b},
		data:     graph.NewData(shape, ad.DType()),
		backend:  backend,
	}, nil
}

// newUnaryForward allocates the output cell for a single-operand node.
func newUnaryForward(x graph.Node, shape tensor.Shape, backend tensor.Backend) forwardNode {
	return forwardNode{
		operands: []graph.Node{x},
		data:     graph.NewData(shape, x.Data().DType()),
		backend:  backend,
	}
}

// backwardNode carries the state shared by every backward operation node:
// the node's own accumulator and the edges gradient flows along.
type backwardNode struct {
	operands []graph.BackwardNode
	grad     *graph.Accumulator
	backend  tensor.Backend
}

// Operands returns the backward mirrors of the operation's tracked operands.
func (b *backwardNode) Operands() []graph.BackwardNode { return b.operands }

// Grad returns the operation's own accumulator.
func (b *backwardNode) Grad() *graph.Accumulator { return b.grad }

// Operand pairs a forward value cell with the backward node its gradient
// flows to. A nil Node marks an untracked operand: contributions addressed to
// it are dropped.
type Operand struct {
	Node graph.BackwardNode
	Data *graph.Data
}

func (o Operand) grad() *graph.Accumulator {
	if o.Node == nil {
		return nil
	}
	return o.Node.Grad()
}

func (o Operand) value() *tensor.RawTensor { return o.Data.Value() }

// edges collects the backward nodes of the tracked operands; these are the
// scheduler's traversal edges.
func edges(operands ...Operand) []graph.BackwardNode {
	var out []graph.BackwardNode
	for _, o := range operands {
		if o.Node != nil {
			out = append(out, o.Node)
		}
	}
	return out
}

// newBackward allocates a backward node base with an accumulator matching
// the operation's output cell.
func newBackward(out *graph.Data, backend tensor.Backend, operands ...Operand) (backwardNode, error) {
	acc, err := graph.NewAccumulator(out.Shape(), out.DType(), backend)
	if err != nil {
		return backwardNode{}, err
	}
	return backwardNode{operands: edges(operands...), grad: acc, backend: backend}, nil
}

// deliver reduces a raw contribution to the accumulator's shape — mirroring
// the forward broadcast exactly in reverse — and pushes it. Nil accumulators
// (untracked operands) swallow their contribution.
func deliver(backend tensor.Backend, acc *graph.Accumulator, contrib *tensor.RawTensor) error {
	if acc == nil {
		return nil
	}
	return acc.Push(reduceBroadcast(backend, contrib, acc.Shape()))
}

// reduceBroadcast sums a gradient along the axes the forward pass broadcast,
// so the result matches the target operand shape exactly.
//
// Example: forward a[3,1] + b[3,4] → c[3,4]; the gradient w.r.t. a is the
// output gradient summed along axis 1.
func reduceBroadcast(backend tensor.Backend, grad *tensor.RawTensor, target tensor.Shape) *tensor.RawTensor {
	if grad.Shape().Equal(target) {
		return grad
	}
	if target.IsScalar() {
		return backend.Sum(grad)
	}

	// Leading dimensions the target never had are summed away first.
	result := grad
	for len(result.Shape()) > len(target) {
		result = backend.SumAxis(result, 0, false)
	}

	// Then dimensions the forward pass stretched from size 1.
	for d := range target {
		if target[d] == 1 && result.Shape()[d] > 1 {
			result = backend.SumAxis(result, d, true)
		}
	}

	if !result.Shape().Equal(target) {
		result = backend.Reshape(result, target)
	}
	return result
}
