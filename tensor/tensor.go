// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"math/rand"

	"github.com/born-ml/mdarray/internal/tensor"
)

// Tensor is a strided view over a reference-counted float64 buffer.
type Tensor = tensor.Tensor

// Shape lists the extent of each dimension.
type Shape = tensor.Shape

// DataType identifies the element type.
type DataType = tensor.DataType

// Float64 is the only supported element type.
const Float64 = tensor.Float64

// MaxElements bounds the element count of a single allocation.
const MaxElements = tensor.MaxElements

// Errors returned by tensor operations.
var (
	ErrInvalidShape      = tensor.ErrInvalidShape
	ErrAllocation        = tensor.ErrAllocation
	ErrBounds            = tensor.ErrBounds
	ErrShapeMismatch     = tensor.ErrShapeMismatch
	ErrRankMismatch      = tensor.ErrRankMismatch
	ErrDimensionMismatch = tensor.ErrDimensionMismatch
	ErrAxisOutOfBounds   = tensor.ErrAxisOutOfBounds
	ErrReleased          = tensor.ErrReleased
)

// Creation

// New allocates an owning tensor. Its contents are unspecified until filled.
func New(shape ...int) (*Tensor, error) {
	return tensor.New(shape...)
}

// FromSlice copies data into a new owning tensor of the given shape.
//
// Example:
//
//	x, err := tensor.FromSlice([]float64{1, 2, 3, 4}, 2, 2)
func FromSlice(data []float64, shape ...int) (*Tensor, error) {
	return tensor.FromSlice(data, shape...)
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape ...int) (*Tensor, error) {
	return tensor.Zeros(shape...)
}

// Ones creates a tensor filled with ones.
func Ones(shape ...int) (*Tensor, error) {
	return tensor.Ones(shape...)
}

// Full creates a tensor filled with value.
func Full(value float64, shape ...int) (*Tensor, error) {
	return tensor.Full(value, shape...)
}

// Rand creates a tensor with values drawn uniformly from [-scale, scale).
func Rand(rng *rand.Rand, scale float64, shape ...int) (*Tensor, error) {
	return tensor.Rand(rng, scale, shape...)
}

// Elementwise

// Add returns a + b. Shapes must match exactly.
func Add(a, b *Tensor) (*Tensor, error) {
	return tensor.Add(a, b)
}

// Sub returns a - b.
func Sub(a, b *Tensor) (*Tensor, error) {
	return tensor.Sub(a, b)
}

// Mul returns the elementwise product a * b.
func Mul(a, b *Tensor) (*Tensor, error) {
	return tensor.Mul(a, b)
}

// Scale returns a * s.
func Scale(a *Tensor, s float64) (*Tensor, error) {
	return tensor.Scale(a, s)
}

// Apply maps fn over every element of a.
func Apply(a *Tensor, fn func(float64) float64) (*Tensor, error) {
	return tensor.Apply(a, fn)
}

// Reductions

// Sum returns the sum of all elements.
func Sum(a *Tensor) (float64, error) {
	return tensor.Sum(a)
}

// SumAlongAxis sums over one axis, removing it from the shape.
//
// Example:
//
//	s, err := tensor.SumAlongAxis(x, 1) // [2, 3] -> [2]
func SumAlongAxis(a *Tensor, axis int) (*Tensor, error) {
	return tensor.SumAlongAxis(a, axis)
}

// Linear algebra

// MatMul returns the matrix product of two rank-2 tensors.
func MatMul(x, y *Tensor) (*Tensor, error) {
	return tensor.MatMul(x, y)
}

// Transpose returns a materialized transpose of a rank-2 tensor.
func Transpose(a *Tensor) (*Tensor, error) {
	return tensor.Transpose(a)
}

// AllClose reports whether a and b have equal shapes and all elements
// within tol of each other.
func AllClose(a, b *Tensor, tol float64) bool {
	return tensor.AllClose(a, b, tol)
}
