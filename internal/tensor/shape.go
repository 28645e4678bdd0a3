package tensor

import (
	"math"

	"github.com/pkg/errors"
)

// MaxElements bounds the element count of a single buffer. Requests above it
// fail with ErrAllocation instead of aborting the process inside make().
// It fits in int on every GOARCH.
const MaxElements = math.MaxInt32

// Shape represents the dimensions of a tensor.
type Shape []int

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that the shape has at least one dimension and that every
// extent is positive. Zero-size tensors are rejected.
func (s Shape) Validate() error {
	if len(s) == 0 {
		return errors.Wrap(ErrInvalidShape, "rank must be at least 1")
	}
	for i, dim := range s {
		if dim <= 0 {
			return errors.Wrapf(ErrInvalidShape, "dimension %d has extent %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// checkedNumElements validates s and returns its element count, failing with
// ErrAllocation when the product would exceed MaxElements.
func (s Shape) checkedNumElements() (int, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	n := 1
	for _, dim := range s {
		if n > MaxElements/dim {
			return 0, errors.Wrapf(ErrAllocation, "shape %v exceeds %d elements", s, MaxElements)
		}
		n *= dim
	}
	return n, nil
}

// Equal checks if two shapes are equal.
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

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
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

// without returns a copy of the shape with dimension dim removed.
func (s Shape) without(dim int) Shape {
	out := make(Shape, 0, len(s)-1)
	for i, d := range s {
		if i != dim {
			out = append(out, d)
		}
	}
	return out
}
