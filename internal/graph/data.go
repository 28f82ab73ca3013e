// Package graph implements the dynamic computation graph at the heart of the
// engine: shared data cells, gradient accumulators, forward and backward node
// protocols, and the topological scheduler that drives lazy memoized forward
// evaluation and reverse-mode gradient propagation.
package graph

import (
	"fmt"

	"github.com/CohenAriel/neuronika/internal/tensor"
)

// Data is the shared storage cell for one tensor value in the graph.
//
// Every variable and node referencing the same computed value holds the same
// *Data; the cell outlives any single holder. Interior cells start empty and
// are written exactly once per forward pass by the producing node; leaf cells
// are populated at construction. Consumers only read.
type Data struct {
	shape tensor.Shape
	dtype tensor.DataType
	value *tensor.RawTensor
}

// NewData creates an empty cell with fixed shape and dtype. The value is
// supplied later by the producing forward step.
func NewData(shape tensor.Shape, dtype tensor.DataType) *Data {
	return &Data{shape: shape.Clone(), dtype: dtype}
}

// DataFrom creates a cell already holding a value (leaf storage).
func DataFrom(value *tensor.RawTensor) *Data {
	return &Data{shape: value.Shape().Clone(), dtype: value.DType(), value: value}
}

// Shape returns the cell's shape, known at construction time.
func (d *Data) Shape() tensor.Shape {
	return d.shape
}

// DType returns the cell's element type.
func (d *Data) DType() tensor.DataType {
	return d.dtype
}

// Value returns the held tensor, or nil when the cell has not been produced
// yet.
func (d *Data) Value() *tensor.RawTensor {
	return d.value
}

// Replace installs the value produced by a forward step. Only the producing
// node calls Replace, exactly once per evaluation.
func (d *Data) Replace(value *tensor.RawTensor) error {
	if value.DType() != d.dtype {
		return fmt.Errorf("data cell holds %s, produced %s", d.dtype, value.DType())
	}
	if !value.Shape().Equal(d.shape) {
		return fmt.Errorf("data cell has shape %v, produced %v", d.shape, value.Shape())
	}
	d.value = value
	return nil
}
