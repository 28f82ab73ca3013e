// Package variable exposes the user-facing handle over the computation
// graph. A Var owns nothing: it references a forward node (and, when the
// value participates in differentiation, its backward mirror) and builds new
// graph nodes as operations are applied to it.
package variable

import (
	"fmt"

	"github.com/CohenAriel/neuronika/internal/graph"
	"github.com/CohenAriel/neuronika/internal/tensor"
)

// Var is a handle on one value in the computation graph.
//
// Applying an operation to a Var records a new node and returns a new handle;
// no numeric work happens until Forward (or Backward, which runs the forward
// pass implicitly). Handles are cheap to copy around: concurrent reads are
// safe, graph construction and evaluation are single-goroutine.
type Var struct {
	node    graph.Node
	grad    graph.BackwardNode
	backend tensor.Backend
}

// New wraps a tensor as an untracked input variable. Operations on it are
// recorded and evaluated, but no gradient machinery is attached until a
// tracked variable enters the expression.
func New(value *tensor.RawTensor, backend tensor.Backend) *Var {
	return &Var{node: graph.NewSource(value), backend: backend}
}

// NewParameter wraps a tensor as a tracked leaf. Its accumulator is the
// terminal gradient destination: backward passes add into it until ZeroGrad.
func NewParameter(value *tensor.RawTensor, backend tensor.Backend) (*Var, error) {
	acc, err := graph.NewAccumulator(value.Shape(), value.DType(), backend)
	if err != nil {
		return nil, err
	}
	return &Var{
		node:    graph.NewSource(value),
		grad:    graph.NewSink(acc),
		backend: backend,
	}, nil
}

// Tracked reports whether gradient flows through this variable.
func (v *Var) Tracked() bool { return v.grad != nil }

// Shape returns the variable's shape, known before evaluation.
func (v *Var) Shape() tensor.Shape { return v.node.Data().Shape() }

// DType returns the variable's element type.
func (v *Var) DType() tensor.DataType { return v.node.Data().DType() }

// Backend returns the compute backend this variable's graph runs on.
func (v *Var) Backend() tensor.Backend { return v.backend }

// Value returns the variable's tensor, or nil when it has not been computed
// yet. The buffer is shared with the graph; treat it as read-only.
func (v *Var) Value() *tensor.RawTensor { return v.node.Data().Value() }

// Item evaluates the variable and returns its single element.
func (v *Var) Item() (float64, error) {
	if err := v.Forward(); err != nil {
		return 0, err
	}
	if v.Shape().NumElements() != 1 {
		return 0, fmt.Errorf("%w: item requires a single-element variable, got shape %v",
			graph.ErrShapeMismatch, v.Shape())
	}
	return v.Value().Item(), nil
}

// Forward evaluates every stale node this variable depends on, in dependency
// order, each at most once. Already-computed subgraphs are skipped.
func (v *Var) Forward() error {
	return graph.Forward(v.node)
}

// ResetComputation marks the reachable subgraph stale so the next Forward
// recomputes it. Call after mutating a leaf tensor in place.
func (v *Var) ResetComputation() {
	graph.ResetComputation(v.node)
}

// Backward runs reverse-mode differentiation from this variable with a
// ones-filled seed, running the forward pass first if needed. Gradients of
// parameters accumulate; interior gradients are overwritten each pass.
func (v *Var) Backward() error {
	if !v.Tracked() {
		return graph.ErrUntrackedBackward
	}
	seed, err := tensor.Ones(v.Shape(), v.DType())
	if err != nil {
		return err
	}
	return v.BackwardWithSeed(seed)
}

// BackwardWithSeed is Backward with an explicit output gradient. The seed
// must match the variable's shape exactly.
func (v *Var) BackwardWithSeed(seed *tensor.RawTensor) error {
	if !v.Tracked() {
		return graph.ErrUntrackedBackward
	}
	if !seed.Shape().Equal(v.Shape()) {
		return fmt.Errorf("%w: seed shape %v for output shape %v",
			graph.ErrShapeMismatch, seed.Shape(), v.Shape())
	}
	if err := v.Forward(); err != nil {
		return err
	}
	return graph.RunBackward(v.grad, seed)
}

// Grad returns the accumulated gradient buffer, or nil for untracked
// variables. Optimizers read and consume it in place.
func (v *Var) Grad() *tensor.RawTensor {
	if v.grad == nil {
		return nil
	}
	return v.grad.Grad().Gradient()
}

// Accumulator exposes the variable's gradient accumulator, or nil when
// untracked.
func (v *Var) Accumulator() *graph.Accumulator {
	if v.grad == nil {
		return nil
	}
	return v.grad.Grad()
}

// ZeroGrad resets the accumulated gradient to zero.
func (v *Var) ZeroGrad() {
	if v.grad != nil {
		v.grad.Grad().Zero()
	}
}

// Detach returns an untracked handle sharing this variable's value cell.
// Gradient never flows through the detached handle, but forward passes over
// the original graph still populate the shared cell.
func (v *Var) Detach() *Var {
	return &Var{node: graph.SourceFrom(v.node.Data()), backend: v.backend}
}
