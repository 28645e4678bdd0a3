package optim

import (
	"github.com/born-ml/mdarray/internal/nn"
	"github.com/born-ml/mdarray/internal/tensor"
)

// SGD implements Stochastic Gradient Descent optimizer with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
type SGD struct {
	params     []*nn.Parameter
	lr         float64
	momentum   float64
	velocities map[*nn.Parameter]*tensor.Tensor
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer.
func NewSGD(params []*nn.Parameter, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*nn.Parameter]*tensor.Tensor),
	}
}

// Step performs a single optimization step.
func (s *SGD) Step() error {
	for _, param := range s.params {
		grad, err := getGradient(param)
		if err != nil {
			return err
		}
		if grad == nil {
			continue
		}

		if s.momentum == 0 {
			err = s.updateParameter(param, grad)
		} else {
			err = s.updateParameterWithMomentum(param, grad)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// updateParameter performs param -= lr * grad.
func (s *SGD) updateParameter(param *nn.Parameter, grad *tensor.Tensor) error {
	scaled, err := tensor.Scale(grad, s.lr)
	if err != nil {
		return err
	}
	defer func() { _ = scaled.Release() }()

	updated, err := tensor.Sub(param.Tensor(), scaled)
	if err != nil {
		return err
	}
	copy(param.Tensor().Data(), updated.Data())
	return updated.Release()
}

// updateParameterWithMomentum performs SGD update with momentum.
func (s *SGD) updateParameterWithMomentum(param *nn.Parameter, grad *tensor.Tensor) error {
	velocity, exists := s.velocities[param]
	if !exists {
		v, err := tensor.Zeros(param.Tensor().Shape()...)
		if err != nil {
			return err
		}
		velocity = v
		s.velocities[param] = velocity
	}

	// velocity = momentum * velocity + grad
	v, g := velocity.Data(), grad.Data()
	for i := range v {
		v[i] = s.momentum*v[i] + g[i]
	}

	return s.updateParameter(param, velocity)
}

// ZeroGrad clears gradients for all parameters.
func (s *SGD) ZeroGrad() {
	zeroGrad(s.params)
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}

// Release frees the momentum buffers.
func (s *SGD) Release() error {
	return releaseState(s.velocities)
}
