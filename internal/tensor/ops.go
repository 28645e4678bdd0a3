package tensor

import (
	"math"

	"github.com/pkg/errors"
)

// sameShape validates that a and b are live and have identical shapes.
func sameShape(op string, a, b *Tensor) error {
	if err := a.check(); err != nil {
		return err
	}
	if err := b.check(); err != nil {
		return err
	}
	if len(a.shape) != len(b.shape) {
		return errors.Wrapf(ErrShapeMismatch, "%s: rank %d vs %d", op, len(a.shape), len(b.shape))
	}
	if !a.shape.Equal(b.shape) {
		return errors.Wrapf(ErrShapeMismatch, "%s: shape %v vs %v", op, a.shape, b.shape)
	}
	return nil
}

// zipWith allocates an owning result with a's shape and fills it with
// fn(a[idx], b[idx]), walking each operand by multi-index over its own strides.
func zipWith(a, b *Tensor, fn func(x, y float64) float64) (*Tensor, error) {
	out, err := New(a.shape...)
	if err != nil {
		return nil, err
	}
	dst := out.buf.data
	src := b.buf.data
	i := 0
	a.forEach(func(idx []int, pos int) {
		dst[i] = fn(a.buf.data[pos], src[b.positionOf(idx)])
		i++
	})
	return out, nil
}

// Add returns a new owning tensor holding a + b elementwise.
//
// Both operands must have the same rank and extents; no broadcasting is done.
// Operands are left unchanged.
func Add(a, b *Tensor) (*Tensor, error) {
	if err := sameShape("add", a, b); err != nil {
		return nil, err
	}
	return zipWith(a, b, func(x, y float64) float64 { return x + y })
}

// Sub returns a new owning tensor holding a - b elementwise.
func Sub(a, b *Tensor) (*Tensor, error) {
	if err := sameShape("sub", a, b); err != nil {
		return nil, err
	}
	return zipWith(a, b, func(x, y float64) float64 { return x - y })
}

// Mul returns a new owning tensor holding a * b elementwise.
func Mul(a, b *Tensor) (*Tensor, error) {
	if err := sameShape("mul", a, b); err != nil {
		return nil, err
	}
	return zipWith(a, b, func(x, y float64) float64 { return x * y })
}

// Apply returns a new owning tensor holding fn(a) elementwise.
func Apply(a *Tensor, fn func(float64) float64) (*Tensor, error) {
	if err := a.check(); err != nil {
		return nil, err
	}
	out, err := New(a.shape...)
	if err != nil {
		return nil, err
	}
	dst := out.buf.data
	i := 0
	a.forEach(func(_ []int, pos int) {
		dst[i] = fn(a.buf.data[pos])
		i++
	})
	return out, nil
}

// Scale returns a new owning tensor holding a * s.
func Scale(a *Tensor, s float64) (*Tensor, error) {
	return Apply(a, func(x float64) float64 { return x * s })
}

// Sum returns the sum of all elements of a.
func Sum(a *Tensor) (float64, error) {
	if err := a.check(); err != nil {
		return 0, err
	}
	var total float64
	a.forEach(func(_ []int, pos int) {
		total += a.buf.data[pos]
	})
	return total, nil
}

// AllClose reports whether a and b have the same shape and every pair of
// elements differs by at most tol.
func AllClose(a, b *Tensor, tol float64) bool {
	if sameShape("allclose", a, b) != nil {
		return false
	}
	ok := true
	a.forEach(func(idx []int, pos int) {
		d := a.buf.data[pos] - b.buf.data[b.positionOf(idx)]
		if !(math.Abs(d) <= tol) {
			ok = false
		}
	})
	return ok
}
