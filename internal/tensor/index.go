package tensor

import "github.com/pkg/errors"

// FlatOffset converts a multi-index into an element offset relative to the
// tensor's first element, using its strides.
//
// Every coordinate is bounds-checked against its dimension.
func (t *Tensor) FlatOffset(indices ...int) (int, error) {
	if err := t.check(); err != nil {
		return 0, err
	}
	if len(indices) != len(t.shape) {
		return 0, errors.Wrapf(ErrRankMismatch, "expected %d indices, got %d", len(t.shape), len(indices))
	}

	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			return 0, errors.Wrapf(ErrBounds, "index %d out of range for dimension %d (extent %d)", idx, i, t.shape[i])
		}
		offset += idx * t.strides[i]
	}
	return offset, nil
}

// At returns the element at the given indices.
//
// Example:
//
//	t, _ := tensor.Zeros(3, 4)
//	v, err := t.At(1, 2) // Row 1, column 2
func (t *Tensor) At(indices ...int) (float64, error) {
	off, err := t.FlatOffset(indices...)
	if err != nil {
		return 0, err
	}
	return t.buf.data[t.offset+off], nil
}

// Set writes value at the given indices. It uses the same bounds checks as At.
func (t *Tensor) Set(value float64, indices ...int) error {
	off, err := t.FlatOffset(indices...)
	if err != nil {
		return err
	}
	t.buf.data[t.offset+off] = value
	return nil
}

// forEach visits every element in row-major order, passing the multi-index
// and the element's absolute position within the buffer. idx is reused
// between calls and must not be retained.
func (t *Tensor) forEach(fn func(idx []int, pos int)) {
	rank := len(t.shape)
	idx := make([]int, rank)
	pos := t.offset
	for n := t.NumElements(); n > 0; n-- {
		fn(idx, pos)
		// Odometer increment from the innermost dimension.
		for d := rank - 1; d >= 0; d-- {
			idx[d]++
			pos += t.strides[d]
			if idx[d] < t.shape[d] {
				break
			}
			pos -= idx[d] * t.strides[d]
			idx[d] = 0
		}
	}
}

// positionOf returns the absolute buffer position of idx without bounds checks.
func (t *Tensor) positionOf(idx []int) int {
	pos := t.offset
	for i, v := range idx {
		pos += v * t.strides[i]
	}
	return pos
}
