package graph

import "errors"

// Error kinds surfaced by graph construction and propagation.
//
// Shape errors are reported at construction time, before any node is wired
// into the graph. Tracking errors are reported when backward propagation is
// requested. ErrUncomputedDependency and ErrCycle guard internal invariants
// that correct scheduling makes unreachable.
var (
	// ErrShapeMismatch reports operand shapes incompatible with the
	// requested operation, including failed broadcasts.
	ErrShapeMismatch = errors.New("graph: shape mismatch")

	// ErrUntrackedBackward reports a backward call on a variable with no
	// gradient tracking.
	ErrUntrackedBackward = errors.New("graph: backward requested on untracked variable")

	// ErrUncomputedDependency reports a node visited before its operands
	// were computed. Indicates a scheduler bug.
	ErrUncomputedDependency = errors.New("graph: operand read before being computed")

	// ErrCycle reports a dependency cycle. The construction API cannot
	// express cycles, so this guards against hand-built node graphs.
	ErrCycle = errors.New("graph: dependency cycle detected")
)
