package nn

import (
	"github.com/pkg/errors"

	"github.com/born-ml/mdarray/internal/tensor"
)

// Sequential is a container layer that chains multiple layers together.
//
// Each layer's output becomes the next layer's input; Backward walks the
// layers in reverse.
//
// Example:
//
//	hidden, _ := nn.NewLinear(3, 8, cfg)
//	head, _ := nn.NewLinear(8, 1, cfg)
//	model := nn.NewSequential(hidden, nn.NewReLU(), head)
type Sequential struct {
	layers []Layer
}

// NewSequential creates a new Sequential container.
func NewSequential(layers ...Layer) *Sequential {
	return &Sequential{
		layers: layers,
	}
}

// Forward applies all layers in sequence.
//
// Intermediate activations are released as soon as the next layer has
// consumed them; each layer keeps its own view for Backward.
func (s *Sequential) Forward(input *tensor.Tensor) (*tensor.Tensor, error) {
	output := input
	for i, layer := range s.layers {
		next, err := layer.Forward(output)
		if output != input {
			_ = output.Release()
		}
		if err != nil {
			return nil, errors.Wrapf(err, "sequential: layer %d forward", i)
		}
		output = next
	}
	if output == input {
		return input.View()
	}
	return output, nil
}

// Backward propagates the gradient through all layers in reverse order.
func (s *Sequential) Backward(gradOutput *tensor.Tensor) (*tensor.Tensor, error) {
	grad := gradOutput
	for i := len(s.layers) - 1; i >= 0; i-- {
		next, err := s.layers[i].Backward(grad)
		if grad != gradOutput {
			_ = grad.Release()
		}
		if err != nil {
			return nil, errors.Wrapf(err, "sequential: layer %d backward", i)
		}
		grad = next
	}
	if grad == gradOutput {
		return gradOutput.View()
	}
	return grad, nil
}

// Parameters returns all trainable parameters from all layers.
func (s *Sequential) Parameters() []*Parameter {
	var params []*Parameter
	for _, layer := range s.layers {
		params = append(params, layer.Parameters()...)
	}
	return params
}

// Add appends a layer to the sequence.
func (s *Sequential) Add(layer Layer) {
	s.layers = append(s.layers, layer)
}

// Len returns the number of layers in the sequence.
func (s *Sequential) Len() int {
	return len(s.layers)
}

// Layer returns the layer at the given index, or nil if out of range.
func (s *Sequential) Layer(index int) Layer {
	if index < 0 || index >= len(s.layers) {
		return nil
	}
	return s.layers[index]
}

// Release releases every layer.
func (s *Sequential) Release() error {
	var first error
	for _, layer := range s.layers {
		if err := layer.Release(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
