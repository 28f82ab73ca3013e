// Copyright 2026 Neuronika Go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor is the public API for the dense N-D array substrate.
//
// It re-exports the internal tensor types: shapes with NumPy-style
// broadcasting, the RawTensor buffer, the Backend kernel interface, and the
// creation helpers.
//
// Example:
//
//	x, _ := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2})
//	y, _ := tensor.Ones(tensor.Shape{2, 2}, tensor.Float32)
package tensor

import (
	"math/rand"

	"github.com/CohenAriel/neuronika/internal/tensor"
)

// Shape represents the dimensions of a tensor.
type Shape = tensor.Shape

// DataType identifies a tensor's element type.
type DataType = tensor.DataType

// Supported element types.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
)

// Element constrains the Go types a tensor can hold.
type Element = tensor.Element

// RawTensor is the dense buffer type shared across the graph.
type RawTensor = tensor.RawTensor

// Backend is the compute-kernel interface.
type Backend = tensor.Backend

// BroadcastShapes returns the broadcast result shape of a and b, or an error
// when they are incompatible.
func BroadcastShapes(a, b Shape) (Shape, error) {
	return tensor.BroadcastShapes(a, b)
}

// Zeros allocates a zero-filled tensor.
func Zeros(shape Shape, dtype DataType) (*RawTensor, error) {
	return tensor.Zeros(shape, dtype)
}

// Ones allocates a tensor filled with ones.
func Ones(shape Shape, dtype DataType) (*RawTensor, error) {
	return tensor.Ones(shape, dtype)
}

// Full allocates a tensor filled with value.
func Full(shape Shape, dtype DataType, value float64) (*RawTensor, error) {
	return tensor.Full(shape, dtype, value)
}

// FromSlice copies a Go slice into a freshly allocated tensor.
func FromSlice[T Element](data []T, shape Shape) (*RawTensor, error) {
	return tensor.FromSlice(data, shape)
}

// Randn allocates a tensor with elements drawn from N(0, 1) using rng.
func Randn(shape Shape, dtype DataType, rng *rand.Rand) (*RawTensor, error) {
	return tensor.Randn(shape, dtype, rng)
}

// Rand allocates a tensor with elements drawn from U(0, 1) using rng.
func Rand(shape Shape, dtype DataType, rng *rand.Rand) (*RawTensor, error) {
	return tensor.Rand(shape, dtype, rng)
}
