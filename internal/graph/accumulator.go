package graph

import (
	"fmt"
	"sync"

	"github.com/CohenAriel/neuronika/internal/tensor"
)

// Accumulator collects the gradient contributions delivered to one node
// during backward propagation.
//
// Contributions are additive; while a pass is running, the buffer equals the
// sum of all contributions delivered so far, and once every consumer has been
// visited it equals the node's total gradient.
//
// Interior accumulators are re-armed by the scheduler at the start of each
// pass so their first contribution overwrites the stale value from the
// previous pass. Parameter accumulators are never re-armed: repeated backward
// calls keep adding until ZeroGrad, which is what gradient-accumulation
// training loops expect.
//
// Push serializes writers with a mutex, so kernels that partition a backward
// step internally cannot interleave partial sums.
type Accumulator struct {
	mu      sync.Mutex
	grad    *tensor.RawTensor
	armed   bool
	backend tensor.Backend
}

// NewAccumulator allocates a zero-initialized accumulator for the given
// shape and dtype.
func NewAccumulator(shape tensor.Shape, dtype tensor.DataType, backend tensor.Backend) (*Accumulator, error) {
	grad, err := tensor.NewRaw(shape, dtype)
	if err != nil {
		return nil, fmt.Errorf("accumulator: %w", err)
	}
	return &Accumulator{grad: grad, backend: backend}, nil
}

// Shape returns the accumulator's shape (always the owning node's shape).
func (a *Accumulator) Shape() tensor.Shape {
	return a.grad.Shape()
}

// Arm marks the accumulator so the next Push overwrites instead of adding.
func (a *Accumulator) Arm() {
	a.mu.Lock()
	a.armed = true
	a.mu.Unlock()
}

// Push delivers one gradient contribution. The contribution's shape must
// match the accumulator exactly; broadcast reduction happens in the VJP rule
// before delivery.
func (a *Accumulator) Push(contrib *tensor.RawTensor) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !contrib.Shape().Equal(a.grad.Shape()) {
		return fmt.Errorf("%w: gradient contribution %v for accumulator %v",
			ErrShapeMismatch, contrib.Shape(), a.grad.Shape())
	}

	if a.armed {
		a.armed = false
		return a.grad.CopyFrom(contrib)
	}
	a.backend.Axpy(1, contrib, a.grad)
	return nil
}

// Gradient returns the accumulation buffer. Callers outside a backward pass
// (optimizers) may read it and mutate it through Zero or in-place updates.
func (a *Accumulator) Gradient() *tensor.RawTensor {
	return a.grad
}

// Zero resets the accumulated gradient to zero.
func (a *Accumulator) Zero() {
	a.mu.Lock()
	a.grad.Zero()
	a.armed = false
	a.mu.Unlock()
}
