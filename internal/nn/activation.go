package nn

import (
	"github.com/born-ml/mdarray/internal/tensor"
)

// ReLU is a Rectified Linear Unit activation layer.
//
// Applies the element-wise function: f(x) = max(0, x)
type ReLU struct {
	input *tensor.Tensor
}

// NewReLU creates a new ReLU activation layer.
func NewReLU() *ReLU {
	return &ReLU{}
}

// Forward applies ReLU activation: f(x) = max(0, x).
func (r *ReLU) Forward(input *tensor.Tensor) (*tensor.Tensor, error) {
	out, err := tensor.Apply(input, relu)
	if err != nil {
		return nil, err
	}
	if err := cacheInput(&r.input, input); err != nil {
		_ = out.Release()
		return nil, err
	}
	return out, nil
}

// Backward passes the gradient through where the input was positive.
func (r *ReLU) Backward(gradOutput *tensor.Tensor) (*tensor.Tensor, error) {
	if r.input == nil {
		return nil, ErrNoForward
	}
	mask, err := tensor.Apply(r.input, step)
	if err != nil {
		return nil, err
	}
	defer func() { _ = mask.Release() }()
	return tensor.Mul(gradOutput, mask)
}

// Parameters returns nil (ReLU has no trainable parameters).
func (r *ReLU) Parameters() []*Parameter {
	return nil
}

// Release frees the cached input view.
func (r *ReLU) Release() error {
	err := releaseAll(r.input)
	r.input = nil
	return err
}

func relu(x float64) float64 {
	if x > 0 {
		return x
	}
	return 0
}

func step(x float64) float64 {
	if x > 0 {
		return 1
	}
	return 0
}
