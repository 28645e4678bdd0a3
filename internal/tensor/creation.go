package tensor

import "math/rand"

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	t, err := tensor.Zeros(3, 4)
func Zeros(shape ...int) (*Tensor, error) {
	return Full(0, shape...)
}

// Ones creates a tensor filled with ones.
func Ones(shape ...int) (*Tensor, error) {
	return Full(1, shape...)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t, err := tensor.Full(3.14, 3, 3)
func Full(value float64, shape ...int) (*Tensor, error) {
	t, err := New(shape...)
	if err != nil {
		return nil, err
	}
	// A fresh tensor cannot be released, so Fill cannot fail here.
	_ = t.Fill(value)
	return t, nil
}

// Rand creates a tensor with values drawn uniformly from [-scale, scale).
func Rand(rng *rand.Rand, scale float64, shape ...int) (*Tensor, error) {
	t, err := New(shape...)
	if err != nil {
		return nil, err
	}
	data := t.Data()
	for i := range data {
		data[i] = (rng.Float64()*2 - 1) * scale
	}
	return t, nil
}

// Fill overwrites every element of t (owning or view) with value.
func (t *Tensor) Fill(value float64) error {
	if err := t.check(); err != nil {
		return err
	}
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return nil
}

// FillZeros overwrites every element with 0.
func (t *Tensor) FillZeros() error {
	return t.Fill(0)
}

// FillOnes overwrites every element with 1.
func (t *Tensor) FillOnes() error {
	return t.Fill(1)
}
