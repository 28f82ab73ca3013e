package tensor

import "fmt"

// DataType identifies the element type of a RawTensor at runtime.
//
// The engine differentiates float32 and float64 values only; integer and
// boolean tensors have no gradient semantics and are out of scope.
type DataType int

// Supported element types.
const (
	Float32 DataType = iota
	Float64
)

// Size returns the size of one element in bytes.
func (dt DataType) Size() int {
	switch dt {
	case Float32:
		return 4
	case Float64:
		return 8
	default:
		panic(fmt.Sprintf("unknown data type %d", int(dt)))
	}
}

// String returns a human-readable type name.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// Element is the compile-time constraint matching supported element types.
type Element interface {
	~float32 | ~float64
}

// DataTypeOf returns the DataType for the element type T.
func DataTypeOf[T Element]() DataType {
	var zero T
	switch any(zero).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	default:
		panic("unsupported element type")
	}
}
