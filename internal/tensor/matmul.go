package tensor

import "github.com/pkg/errors"

// MatMul performs matrix multiplication: (M, K) @ (K, N) -> (M, N).
//
// Both operands must be 2D. Stacked (batched) products are not supported.
// Each output element is accumulated locally and written once.
//
// Example:
//
//	x: [10, 768], y: [768, 1] -> [10, 1]
func MatMul(x, y *Tensor) (*Tensor, error) {
	if err := x.check(); err != nil {
		return nil, err
	}
	if err := y.check(); err != nil {
		return nil, err
	}
	if len(x.shape) != 2 || len(y.shape) != 2 {
		return nil, errors.Wrapf(ErrRankMismatch, "matmul: only 2D tensors supported, got %dD and %dD",
			len(x.shape), len(y.shape))
	}

	m, k := x.shape[0], x.shape[1]
	kAlt, n := y.shape[0], y.shape[1]
	if k != kAlt {
		return nil, errors.Wrapf(ErrDimensionMismatch, "matmul: shape mismatch [%d,%d] @ [%d,%d]", m, k, kAlt, n)
	}

	result, err := New(m, n)
	if err != nil {
		return nil, err
	}
	matmulFloat64(result.buf.data, x, y, m, k, n)
	return result, nil
}

// matmulFloat64 computes C[i,j] = sum_k A[i,k] * B[k,j] over strided operands.
func matmulFloat64(c []float64, a, b *Tensor, m, k, n int) {
	ad, bd := a.buf.data, b.buf.data
	as0, as1 := a.strides[0], a.strides[1]
	bs0, bs1 := b.strides[0], b.strides[1]

	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			sum := float64(0)
			ap := a.offset + i*as0
			bp := b.offset + j*bs1
			for kIdx := 0; kIdx < k; kIdx++ {
				sum += ad[ap+kIdx*as1] * bd[bp+kIdx*bs0]
			}
			c[i*n+j] = sum
		}
	}
}

// Transpose returns a new owning 2D tensor with rows and columns swapped.
// The result is always materialized, never a stride-swapped view.
func Transpose(a *Tensor) (*Tensor, error) {
	if err := a.check(); err != nil {
		return nil, err
	}
	if len(a.shape) != 2 {
		return nil, errors.Wrapf(ErrRankMismatch, "transpose: only 2D tensors supported, got %dD", len(a.shape))
	}

	rows, cols := a.shape[0], a.shape[1]
	result, err := New(cols, rows)
	if err != nil {
		return nil, err
	}
	dst := result.buf.data
	a.forEach(func(idx []int, pos int) {
		dst[idx[1]*rows+idx[0]] = a.buf.data[pos]
	})
	return result, nil
}
