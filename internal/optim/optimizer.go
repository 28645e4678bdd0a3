// Package optim implements the gradient-descent update rules used to train
// mdarray layers.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with optional momentum
//   - Adam: Adaptive Moment Estimation
//
// Example usage:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.01})
//
//	for epoch := range epochs {
//	    output, _ := model.Forward(input)
//	    grad, _ := loss.Gradient(output, targets)
//	    _, _ = model.Backward(grad)
//
//	    _ = optimizer.Step()
//	    optimizer.ZeroGrad()
//	}
package optim

import (
	"github.com/pkg/errors"

	"github.com/born-ml/mdarray/internal/nn"
	"github.com/born-ml/mdarray/internal/tensor"
)

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step updates every parameter in place from its stored gradient.
	// Parameters without a gradient are skipped.
	Step() error

	// ZeroGrad clears all parameter gradients.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64

	// SetLR updates the learning rate (used for scheduling).
	SetLR(lr float64)

	// Release frees the optimizer's state tensors. Parameters are left to
	// their owning layers. A later Step starts from fresh state.
	Release() error
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate
}

// getGradient returns the parameter's gradient after checking that its
// shape matches the parameter. Returns nil, nil when there is no gradient.
func getGradient(param *nn.Parameter) (*tensor.Tensor, error) {
	if param == nil || param.Grad() == nil {
		return nil, nil
	}
	grad := param.Grad()
	if !grad.Shape().Equal(param.Tensor().Shape()) {
		return nil, errors.Wrapf(tensor.ErrShapeMismatch, "optim: %s gradient %v does not match parameter %v",
			param.Name(), grad.Shape(), param.Tensor().Shape())
	}
	return grad, nil
}

func zeroGrad(params []*nn.Parameter) {
	for _, param := range params {
		param.ZeroGrad()
	}
}

// releaseState releases every state tensor in store and empties it.
func releaseState(store map[*nn.Parameter]*tensor.Tensor) error {
	var first error
	for param, t := range store {
		if err := t.Release(); err != nil && first == nil {
			first = err
		}
		delete(store, param)
	}
	return first
}
