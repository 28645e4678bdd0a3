package nn

import (
	"github.com/pkg/errors"

	"github.com/born-ml/mdarray/internal/tensor"
)

// Loss is implemented by scalar loss functions.
type Loss interface {
	// Forward returns the scalar loss of predictions against targets.
	Forward(predictions, targets *tensor.Tensor) (float64, error)

	// Gradient returns dLoss/dPredictions with the shape of predictions.
	Gradient(predictions, targets *tensor.Tensor) (*tensor.Tensor, error)
}

// MSELoss computes Mean Squared Error loss.
//
// Loss = mean((predictions - targets)²)
//
// Predictions and targets are compared element by element in row-major
// order; they must hold the same number of elements.
type MSELoss struct{}

// NewMSELoss creates a new MSE loss function.
func NewMSELoss() *MSELoss {
	return &MSELoss{}
}

func (m *MSELoss) check(predictions, targets *tensor.Tensor) error {
	if predictions.Released() || targets.Released() {
		return tensor.ErrReleased
	}
	if predictions.NumElements() != targets.NumElements() {
		return errors.Wrapf(tensor.ErrShapeMismatch, "mse: predictions have %d elements, targets %d",
			predictions.NumElements(), targets.NumElements())
	}
	return nil
}

// Forward computes mean((predictions - targets)²).
func (m *MSELoss) Forward(predictions, targets *tensor.Tensor) (float64, error) {
	if err := m.check(predictions, targets); err != nil {
		return 0, err
	}
	p, t := predictions.Data(), targets.Data()
	var sum float64
	for i := range p {
		d := p[i] - t[i]
		sum += d * d
	}
	return sum / float64(len(p)), nil
}

// Gradient computes 2·(predictions - targets)/n.
func (m *MSELoss) Gradient(predictions, targets *tensor.Tensor) (*tensor.Tensor, error) {
	if err := m.check(predictions, targets); err != nil {
		return nil, err
	}
	grad, err := tensor.New(predictions.Shape()...)
	if err != nil {
		return nil, err
	}
	p, t, g := predictions.Data(), targets.Data(), grad.Data()
	n := float64(len(p))
	for i := range p {
		g[i] = 2 * (p[i] - t[i]) / n
	}
	return grad, nil
}
