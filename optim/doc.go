// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for training nn layers.
//
// # Overview
//
// This package contains:
//   - SGD: gradient descent with optional momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom optimizers
//
// Optimizers read the gradients that a layer's Backward pass stored on
// its parameters and update the parameter tensors in place.
//
// # Training Loop Pattern
//
//	optimizer := optim.NewSGD(layer.Parameters(), optim.SGDConfig{LR: 0.01})
//
//	for epoch := range numEpochs {
//	    out, _ := layer.Forward(x)
//	    grad, _ := loss.Gradient(out, y)
//	    _, _ = layer.Backward(grad)
//
//	    _ = optimizer.Step()
//	    optimizer.ZeroGrad()
//	}
package optim
