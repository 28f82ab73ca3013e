package graph

import (
	"fmt"

	"github.com/CohenAriel/neuronika/internal/tensor"
)

// The scheduler linearizes the reachable graph into a deterministic,
// dependency-respecting order and drives evaluation along it. Traversal is
// single-threaded; any parallelism lives inside kernels and is not observable
// in values or accumulation order.

type visitState uint8

const (
	unseen visitState = iota
	visiting
	finished
)

type frame struct {
	node Node
	next int
}

// ForwardOrder returns the not-yet-computed nodes reachable from root in
// dependency order (operands before consumers), deduplicated by node
// identity. Memoized subgraphs are skipped entirely, which is what makes a
// second forward pass over an unchanged graph free.
func ForwardOrder(root Node) ([]Node, error) {
	if root.Computed() {
		return nil, nil
	}

	state := map[Node]visitState{root: visiting}
	stack := []*frame{{node: root}}
	var order []Node

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		operands := f.node.Operands()

		if f.next < len(operands) {
			child := operands[f.next]
			f.next++

			switch state[child] {
			case visiting:
				return nil, fmt.Errorf("%w (node consumed by its own subgraph)", ErrCycle)
			case finished:
				continue
			}
			if child.Computed() {
				state[child] = finished
				continue
			}
			state[child] = visiting
			stack = append(stack, &frame{node: child})
			continue
		}

		stack = stack[:len(stack)-1]
		state[f.node] = finished
		order = append(order, f.node)
	}

	return order, nil
}

// Forward evaluates every uncomputed node reachable from root, operands
// first. Visiting each node exactly once keeps diamond-shaped graphs from
// recomputing shared producers.
func Forward(root Node) error {
	order, err := ForwardOrder(root)
	if err != nil {
		return err
	}
	for _, n := range order {
		if err := n.Forward(); err != nil {
			return err
		}
	}
	return nil
}

// ResetComputation clears memoization flags on every node reachable from
// root, forcing the next forward pass to recompute from the leaves.
func ResetComputation(root Node) {
	seen := map[Node]bool{root: true}
	stack := []Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n.ResetComputed()
		for _, op := range n.Operands() {
			if !seen[op] {
				seen[op] = true
				stack = append(stack, op)
			}
		}
	}
}

// BackwardOrder returns the backward nodes reachable from root ordered so
// every node appears before all of its operands (consumers before
// producers), deduplicated by identity. When a node's turn comes, every
// consumer has already contributed, so its accumulator holds the complete
// output gradient.
func BackwardOrder(root BackwardNode) ([]BackwardNode, error) {
	type bframe struct {
		node BackwardNode
		next int
	}

	state := map[BackwardNode]visitState{root: visiting}
	stack := []*bframe{{node: root}}
	var postorder []BackwardNode

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		operands := f.node.Operands()

		if f.next < len(operands) {
			child := operands[f.next]
			f.next++

			switch state[child] {
			case visiting:
				return nil, fmt.Errorf("%w (backward edge loops)", ErrCycle)
			case finished:
				continue
			}
			state[child] = visiting
			stack = append(stack, &bframe{node: child})
			continue
		}

		stack = stack[:len(stack)-1]
		state[f.node] = finished
		postorder = append(postorder, f.node)
	}

	// Reversed post-order: each node precedes its operands.
	for i, j := 0, len(postorder)-1; i < j; i, j = i+1, j-1 {
		postorder[i], postorder[j] = postorder[j], postorder[i]
	}
	return postorder, nil
}

// RunBackward seeds root's accumulator and propagates gradient to every
// reachable backward node.
//
// Interior accumulators are armed first, so their initial contribution of
// this pass overwrites last pass's value; parameter sinks are left alone and
// therefore accumulate across passes. The seed overwrites unconditionally.
func RunBackward(root BackwardNode, seed *tensor.RawTensor) error {
	order, err := BackwardOrder(root)
	if err != nil {
		return err
	}

	for _, n := range order {
		if len(n.Operands()) > 0 {
			n.Grad().Arm()
		}
	}

	root.Grad().Arm()
	if err := root.Grad().Push(seed); err != nil {
		return fmt.Errorf("seeding backward pass: %w", err)
	}

	for _, n := range order {
		if err := n.Backward(); err != nil {
			return err
		}
	}
	return nil
}
