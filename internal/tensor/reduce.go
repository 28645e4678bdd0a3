package tensor

import "github.com/pkg/errors"

// SumAlongAxis sums tensor elements along the given axis and returns a new
// owning tensor with that axis removed.
//
// The remaining dimensions keep their relative order. Reducing a rank-1
// tensor yields shape [1].
//
// Example:
//
//	x, _ := tensor.Ones(2, 3, 4)
//	y, _ := tensor.SumAlongAxis(x, 1) // shape [2, 4], every element 3
func SumAlongAxis(a *Tensor, axis int) (*Tensor, error) {
	if err := a.check(); err != nil {
		return nil, err
	}
	rank := len(a.shape)
	if axis < 0 || axis >= rank {
		return nil, errors.Wrapf(ErrAxisOutOfBounds, "sum: axis %d out of range for %dD tensor", axis, rank)
	}

	outShape := a.shape.without(axis)
	if len(outShape) == 0 {
		outShape = Shape{1}
	}
	result, err := Zeros(outShape...)
	if err != nil {
		return nil, err
	}

	// Strides of the result addressed by the input's coordinates: the reduced
	// axis contributes nothing, every other axis maps onto the result's stride.
	outStrides := result.strides
	proj := make([]int, rank)
	for d, k := 0, 0; d < rank; d++ {
		if d == axis {
			continue
		}
		proj[d] = outStrides[k]
		k++
	}

	dst := result.buf.data
	a.forEach(func(idx []int, pos int) {
		outIdx := 0
		for d, c := range idx {
			outIdx += c * proj[d]
		}
		dst[outIdx] += a.buf.data[pos]
	})

	return result, nil
}
