// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/born-ml/mdarray/internal/nn"
	"github.com/born-ml/mdarray/tensor"
)

// Layer is implemented by every trainable building block.
type Layer = nn.Layer

// Loss is implemented by scalar loss functions.
type Loss = nn.Loss

// ErrNoForward is returned by Backward when no forward pass is cached.
var ErrNoForward = nn.ErrNoForward

// Parameter represents a trainable tensor and its gradient.
type Parameter = nn.Parameter

// NewParameter creates a new parameter that takes ownership of t.
func NewParameter(name string, t *tensor.Tensor) *Parameter {
	return nn.NewParameter(name, t)
}

// Initialization

// Initializer fills a freshly allocated weight tensor.
type Initializer = nn.Initializer

// InitOnes sets every weight to 1.
func InitOnes(w *tensor.Tensor) error {
	return nn.InitOnes(w)
}

// InitUniform draws weights uniformly from [-scale, scale).
func InitUniform(rng *rand.Rand, scale float64) Initializer {
	return nn.InitUniform(rng, scale)
}

// InitXavier draws weights from the Xavier/Glorot uniform distribution.
func InitXavier(rng *rand.Rand) Initializer {
	return nn.InitXavier(rng)
}

// Layers

// Linear represents a fully connected layer.
type Linear = nn.Linear

// LinearConfig configures a Linear layer.
type LinearConfig = nn.LinearConfig

// NewLinear creates a linear layer mapping inFeatures to outFeatures.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	layer, err := nn.NewLinear(3, 1, nn.LinearConfig{Init: nn.InitUniform(rng, 0.01)})
func NewLinear(inFeatures, outFeatures int, cfg LinearConfig) (*Linear, error) {
	return nn.NewLinear(inFeatures, outFeatures, cfg)
}

// NewLinearFor creates a linear layer sized from an input batch and its labels.
func NewLinearFor(input, labels *tensor.Tensor, cfg LinearConfig) (*Linear, error) {
	return nn.NewLinearFor(input, labels, cfg)
}

// ReLU represents the rectified linear activation.
type ReLU = nn.ReLU

// NewReLU creates a new ReLU activation layer.
func NewReLU() *ReLU {
	return nn.NewReLU()
}

// Sequential chains layers in order.
type Sequential = nn.Sequential

// NewSequential creates a sequential container from layers.
//
// Example:
//
//	model := nn.NewSequential(hidden, nn.NewReLU(), head)
func NewSequential(layers ...Layer) *Sequential {
	return nn.NewSequential(layers...)
}

// Losses

// MSELoss computes the mean squared error.
type MSELoss = nn.MSELoss

// NewMSELoss creates a new MSE loss function.
func NewMSELoss() *MSELoss {
	return nn.NewMSELoss()
}
