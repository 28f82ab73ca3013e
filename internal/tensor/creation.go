package tensor

import (
	"fmt"
	"math/rand"
)

// Zeros allocates a zero-filled tensor.
func Zeros(shape Shape, dtype DataType) (*RawTensor, error) {
	return NewRaw(shape, dtype)
}

// Ones allocates a tensor filled with ones.
func Ones(shape Shape, dtype DataType) (*RawTensor, error) {
	return Full(shape, dtype, 1)
}

// Full allocates a tensor filled with the given value.
func Full(shape Shape, dtype DataType, value float64) (*RawTensor, error) {
	t, err := NewRaw(shape, dtype)
	if err != nil {
		return nil, err
	}
	t.Fill(value)
	return t, nil
}

// FromSlice copies a Go slice into a freshly allocated tensor.
func FromSlice[T Element](data []T, shape Shape) (*RawTensor, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, got %d", shape, shape.NumElements(), len(data))
	}

	t, err := NewRaw(shape, DataTypeOf[T]())
	if err != nil {
		return nil, err
	}

	switch any(data).(type) {
	case []float32:
		copy(t.AsFloat32(), any(data).([]float32))
	case []float64:
		copy(t.AsFloat64(), any(data).([]float64))
	}

	return t, nil
}

// Randn allocates a tensor with elements drawn from N(0, 1) using rng.
func Randn(shape Shape, dtype DataType, rng *rand.Rand) (*RawTensor, error) {
	t, err := NewRaw(shape, dtype)
	if err != nil {
		return nil, err
	}

	switch dtype {
	case Float32:
		data := t.AsFloat32()
		for i := range data {
			data[i] = float32(rng.NormFloat64())
		}
	case Float64:
		data := t.AsFloat64()
		for i := range data {
			data[i] = rng.NormFloat64()
		}
	}

	return t, nil
}

// Rand allocates a tensor with elements drawn from U(0, 1) using rng.
func Rand(shape Shape, dtype DataType, rng *rand.Rand) (*RawTensor, error) {
	t, err := NewRaw(shape, dtype)
	if err != nil {
		return nil, err
	}

	switch dtype {
	case Float32:
		data := t.AsFloat32()
		for i := range data {
			data[i] = rng.Float32()
		}
	case Float64:
		data := t.AsFloat64()
		for i := range data {
			data[i] = rng.Float64()
		}
	}

	return t, nil
}
