package tensor

import "fmt"

// Shape represents the dimensions of a tensor. An empty Shape is a scalar.
type Shape []int

// NumElements returns the total number of elements described by the shape.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that every dimension is strictly positive.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal reports whether two shapes are identical.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// IsScalar reports whether the shape describes a single element.
func (s Shape) IsScalar() bool {
	return len(s) == 0
}

// ComputeStrides calculates row-major strides for the shape.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}
	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// BroadcastShapes applies NumPy-style broadcasting rules to two shapes.
//
// Shapes are compared element-wise from the right; dimensions are compatible
// when they are equal or one of them is 1, and missing leading dimensions are
// treated as 1. Returns the broadcast result shape or an error when the
// shapes are incompatible.
//
// Examples:
//
//	(3, 1) + (3, 5) → (3, 5)
//	(5)    + (2, 5) → (2, 5)
//	(3, 4) + (3, 5) → error
func BroadcastShapes(a, b Shape) (Shape, error) {
	n := max(len(a), len(b))
	result := make(Shape, n)

	for i := 0; i < n; i++ {
		aDim, bDim := 1, 1
		if idx := len(a) - 1 - i; idx >= 0 {
			aDim = a[idx]
		}
		if idx := len(b) - 1 - i; idx >= 0 {
			bDim = b[idx]
		}

		switch {
		case aDim == bDim, bDim == 1:
			result[n-1-i] = aDim
		case aDim == 1:
			result[n-1-i] = bDim
		default:
			return nil, fmt.Errorf("shapes %v and %v are not broadcast-compatible (dimension %d: %d vs %d)",
				a, b, n-1-i, aDim, bDim)
		}
	}

	return result, nil
}
