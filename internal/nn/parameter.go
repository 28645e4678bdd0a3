package nn

import (
	"github.com/born-ml/mdarray/internal/tensor"
)

// Parameter represents a trainable parameter in a neural network.
//
// Example:
//
//	weight := nn.NewParameter("weight", weightTensor)
//	w := weight.Tensor()
//	grad := weight.Grad() // nil before the first backward pass
type Parameter struct {
	name   string
	tensor *tensor.Tensor
	grad   *tensor.Tensor
}

// NewParameter creates a new trainable parameter. The parameter takes
// ownership of t.
func NewParameter(name string, t *tensor.Tensor) *Parameter {
	return &Parameter{
		name:   name,
		tensor: t,
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Tensor returns the parameter tensor.
func (p *Parameter) Tensor() *tensor.Tensor {
	return p.tensor
}

// Grad returns the gradient tensor, or nil if none has been computed.
func (p *Parameter) Grad() *tensor.Tensor {
	return p.grad
}

// SetGrad replaces the gradient, releasing the previous one.
func (p *Parameter) SetGrad(grad *tensor.Tensor) {
	if p.grad != nil && p.grad != grad {
		_ = p.grad.Release()
	}
	p.grad = grad
}

// ZeroGrad clears the gradient tensor.
func (p *Parameter) ZeroGrad() {
	p.SetGrad(nil)
}

// Release frees the parameter and its gradient.
func (p *Parameter) Release() error {
	p.ZeroGrad()
	return p.tensor.Release()
}
