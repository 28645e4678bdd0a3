// Package nn implements the hand-written layers and losses of the mdarray project.
//
// This package provides:
//   - Layer interface: forward/backward contract shared by all layers
//   - Parameter: trainable tensor plus its gradient
//   - Linear: affine layer y = W·x + b
//   - ReLU: rectified linear activation
//   - Sequential: container chaining layers
//   - MSELoss: mean squared error
//
// Tensors are laid out features × batch: each sample is a column.
package nn

import (
	"github.com/pkg/errors"

	"github.com/born-ml/mdarray/internal/tensor"
)

// ErrNoForward is returned by Backward when no forward pass has been cached.
var ErrNoForward = errors.New("nn: backward called before forward")

// Layer is the interface implemented by every network layer.
//
// Forward returns a new tensor owned by the caller. The layer keeps a view
// of its input for Backward, so callers may release the input afterwards.
// Backward takes the gradient of the loss with respect to the layer output,
// stores parameter gradients, and returns the gradient with respect to the
// layer input (also owned by the caller).
type Layer interface {
	Forward(input *tensor.Tensor) (*tensor.Tensor, error)
	Backward(gradOutput *tensor.Tensor) (*tensor.Tensor, error)

	// Parameters returns all trainable parameters of this layer.
	// Returns an empty slice for layers without parameters.
	Parameters() []*Parameter

	// Release frees cached activations and parameter storage.
	Release() error
}

// cacheInput swaps the cached activation for a fresh view of input.
func cacheInput(cached **tensor.Tensor, input *tensor.Tensor) error {
	view, err := input.View()
	if err != nil {
		return err
	}
	if *cached != nil {
		_ = (*cached).Release()
	}
	*cached = view
	return nil
}

// releaseAll releases every non-nil tensor, returning the first error.
func releaseAll(ts ...*tensor.Tensor) error {
	var first error
	for _, t := range ts {
		if t == nil {
			continue
		}
		if err := t.Release(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
