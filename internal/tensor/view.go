package tensor

import "github.com/pkg/errors"

// SubView returns a view that fixes the leading dropDims coordinates at
// start and keeps the remaining dimensions whole.
//
// The view has rank Rank()-dropDims, extents Shape()[dropDims:] and aliases
// t's buffer starting at the element selected by start. SubView(0) is a
// full-rank view of t at its own origin. Only full
// leading-dimension slices are supported; they are always contiguous, so
// the view's strides are plain row-major strides for its own shape.
//
// Example:
//
//	batch, _ := tensor.Zeros(4, 3, 2)
//	sample, _ := batch.SubView(1, 2) // shape [3, 2], third sample
func (t *Tensor) SubView(dropDims int, start ...int) (*Tensor, error) {
	if err := t.check(); err != nil {
		return nil, err
	}
	if dropDims < 0 || dropDims >= len(t.shape) {
		return nil, errors.Wrapf(ErrInvalidShape, "subview: cannot drop %d of %d dimensions", dropDims, len(t.shape))
	}
	if len(start) != dropDims {
		return nil, errors.Wrapf(ErrRankMismatch, "subview: expected %d start indices, got %d", dropDims, len(start))
	}

	offset := t.offset
	for i, idx := range start {
		if idx < 0 || idx >= t.shape[i] {
			return nil, errors.Wrapf(ErrBounds, "subview: index %d out of range for dimension %d (extent %d)", idx, i, t.shape[i])
		}
		offset += idx * t.strides[i]
	}

	return t.alias(t.shape[dropDims:].Clone(), offset), nil
}

// Reshape returns a view with the same storage and a new shape.
//
// The new shape must describe exactly as many elements as the tensor.
//
// Example:
//
//	b, _ := tensor.Zeros(3)
//	col, _ := b.Reshape(3, 1) // column vector over the same elements
func (t *Tensor) Reshape(newShape ...int) (*Tensor, error) {
	if err := t.check(); err != nil {
		return nil, err
	}
	s := Shape(newShape)
	n, err := s.checkedNumElements()
	if err != nil {
		return nil, err
	}
	if n != t.NumElements() {
		return nil, errors.Wrapf(ErrShapeMismatch, "reshape: cannot view %v (%d elements) as %v (%d elements)",
			t.shape, t.NumElements(), s, n)
	}
	return t.alias(s.Clone(), t.offset), nil
}

// View returns a full-shape view of t that shares its storage.
// Holding a view keeps the elements alive after t is released.
func (t *Tensor) View() (*Tensor, error) {
	return t.Reshape(t.shape...)
}
