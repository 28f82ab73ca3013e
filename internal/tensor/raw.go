// Package tensor provides the dense N-D array substrate consumed by the
// autodiff graph: shapes with NumPy-style broadcasting, a shared raw buffer
// type, and the Backend interface implemented by compute kernels.
package tensor

import (
	"fmt"
	"unsafe"
)

// RawTensor is the low-level dense array representation.
//
// A RawTensor may be referenced by many graph nodes at once; the buffer is
// shared, not copied. Mutation is restricted by protocol: the forward step
// that produces a value writes it exactly once, every other holder reads.
// Accumulation buffers are mutated only through Accumulator methods.
type RawTensor struct {
	data   []byte
	shape  Shape
	stride []int
	dtype  DataType
}

// NewRaw allocates a zero-filled RawTensor with the given shape and type.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	return &RawTensor{
		data:   make([]byte, shape.NumElements()*dtype.Size()),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  dtype,
	}, nil
}

// Shape returns the tensor's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// Strides returns the tensor's row-major memory strides.
func (r *RawTensor) Strides() []int {
	return r.stride
}

// DType returns the tensor's data type.
func (r *RawTensor) DType() DataType {
	return r.dtype
}

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int {
	return r.shape.NumElements()
}

// Data returns the raw byte slice backing the tensor.
func (r *RawTensor) Data() []byte {
	return r.data
}

// AsFloat32 interprets the buffer as []float32.
// Panics if the tensor's dtype is not Float32.
func (r *RawTensor) AsFloat32() []float32 {
	if r.dtype != Float32 {
		panic(fmt.Sprintf("tensor dtype is %s, not float32", r.dtype))
	}
	//nolint:gosec // zero-copy view, length bounded by NumElements
	return unsafe.Slice((*float32)(unsafe.Pointer(&r.data[0])), r.NumElements())
}

// AsFloat64 interprets the buffer as []float64.
// Panics if the tensor's dtype is not Float64.
func (r *RawTensor) AsFloat64() []float64 {
	if r.dtype != Float64 {
		panic(fmt.Sprintf("tensor dtype is %s, not float64", r.dtype))
	}
	//nolint:gosec // zero-copy view, length bounded by NumElements
	return unsafe.Slice((*float64)(unsafe.Pointer(&r.data[0])), r.NumElements())
}

// At returns the element at the given indices as float64.
func (r *RawTensor) At(indices ...int) float64 {
	if len(indices) != len(r.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(r.shape), len(indices)))
	}
	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= r.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, r.shape[i]))
		}
		offset += idx * r.stride[i]
	}
	switch r.dtype {
	case Float32:
		return float64(r.AsFloat32()[offset])
	default:
		return r.AsFloat64()[offset]
	}
}

// Item returns the value of a single-element tensor as float64.
// Panics if the tensor holds more than one element.
func (r *RawTensor) Item() float64 {
	if r.NumElements() != 1 {
		panic(fmt.Sprintf("Item() requires a single-element tensor, got shape %v", r.shape))
	}
	switch r.dtype {
	case Float32:
		return float64(r.AsFloat32()[0])
	default:
		return r.AsFloat64()[0]
	}
}

// Fill sets every element to v.
func (r *RawTensor) Fill(v float64) {
	switch r.dtype {
	case Float32:
		data := r.AsFloat32()
		f := float32(v)
		for i := range data {
			data[i] = f
		}
	case Float64:
		data := r.AsFloat64()
		for i := range data {
			data[i] = v
		}
	}
}

// Zero resets every element to zero.
func (r *RawTensor) Zero() {
	clear(r.data)
}

// CopyFrom copies src's values into r. Shapes and dtypes must match exactly.
func (r *RawTensor) CopyFrom(src *RawTensor) error {
	if r.dtype != src.dtype {
		return fmt.Errorf("dtype mismatch: %s vs %s", r.dtype, src.dtype)
	}
	if !r.shape.Equal(src.shape) {
		return fmt.Errorf("shape mismatch: %v vs %v", r.shape, src.shape)
	}
	copy(r.data, src.data)
	return nil
}

// Clone returns a deep copy of the tensor.
func (r *RawTensor) Clone() *RawTensor {
	data := make([]byte, len(r.data))
	copy(data, r.data)
	return &RawTensor{
		data:   data,
		shape:  r.shape.Clone(),
		stride: append([]int(nil), r.stride...),
		dtype:  r.dtype,
	}
}

// WithShape returns a view sharing r's buffer under a different shape.
// The element count must be unchanged.
func (r *RawTensor) WithShape(shape Shape) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if shape.NumElements() != r.NumElements() {
		return nil, fmt.Errorf("cannot view shape %v as %v (different element counts)", r.shape, shape)
	}
	return &RawTensor{
		data:   r.data,
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  r.dtype,
	}, nil
}

// String returns a short description of the tensor.
func (r *RawTensor) String() string {
	return fmt.Sprintf("RawTensor[%s]%v", r.dtype, r.shape)
}
