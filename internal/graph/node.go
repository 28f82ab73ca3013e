package graph

import "github.com/CohenAriel/neuronika/internal/tensor"

// Node is the forward half of a graph node: one differentiable operation (or
// leaf) together with its shared output cell and memoization flag.
//
// Nodes form a DAG by construction: a node can only reference nodes that
// already existed when it was created, never itself or a later node.
type Node interface {
	// Operands returns the nodes whose values this node reads. Leaves
	// return nil.
	Operands() []Node

	// Data returns the node's shared output cell.
	Data() *Data

	// Computed reports whether the output cell holds a value produced
	// since the last reset.
	Computed() bool

	// Forward computes the node's value from its operands' cells and
	// marks the node computed. Returns immediately when already computed.
	Forward() error

	// ResetComputed clears the memoization flag so the next forward pass
	// recomputes the value.
	ResetComputed()
}

// BackwardNode is the gradient-propagation mirror of a Node. It owns the
// node's Accumulator and knows the operation's vector-Jacobian-product rule.
type BackwardNode interface {
	// Operands returns the backward nodes gradient flows to: the mirrors
	// of this node's tracked operands. Untracked operands have no mirror,
	// so backward traversal stops there naturally.
	Operands() []BackwardNode

	// Grad returns this node's gradient accumulator.
	Grad() *Accumulator

	// Backward reads the node's accumulated output gradient, applies the
	// VJP rule, and pushes each operand's contribution — reduced along any
	// broadcast axes — into that operand's accumulator.
	Backward() error
}

// Source is a non-differentiable leaf: plain input storage with no gradient
// machinery. It is always "computed" and never resets.
type Source struct {
	data *Data
}

// NewSource wraps a value as a non-differentiable leaf node.
func NewSource(value *tensor.RawTensor) *Source {
	return &Source{data: DataFrom(value)}
}

// SourceFrom wraps an existing cell as a non-differentiable leaf. Detached
// variables use it to keep sharing the producing graph's storage.
func SourceFrom(data *Data) *Source {
	return &Source{data: data}
}

// Operands returns nil; a leaf reads nothing.
func (s *Source) Operands() []Node { return nil }

// Data returns the leaf's storage cell.
func (s *Source) Data() *Data { return s.data }

// Computed always reports true; leaf values exist from construction.
func (s *Source) Computed() bool { return true }

// Forward is a no-op on leaves.
func (s *Source) Forward() error { return nil }

// ResetComputed is a no-op on leaves.
func (s *Source) ResetComputed() {}

// Sink is the backward leaf of a differentiable parameter. It has no operand
// references — gradient stops here — and its accumulator is the terminal
// destination optimizers read from.
type Sink struct {
	grad *Accumulator
}

// NewSink creates the backward leaf owning a parameter's accumulator.
func NewSink(grad *Accumulator) *Sink {
	return &Sink{grad: grad}
}

// Operands returns nil; gradient does not flow past a parameter.
func (s *Sink) Operands() []BackwardNode { return nil }

// Grad returns the parameter's accumulator.
func (s *Sink) Grad() *Accumulator { return s.grad }

// Backward is a no-op; the accumulator already holds the total gradient.
func (s *Sink) Backward() error { return nil }
