// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides trainable layers and losses on top of package tensor.
//
// # Layout
//
// Batches are laid out features × batch: every sample is a column. A
// Linear layer with weights [out, in] maps an input [in, batch] to an
// output [out, batch].
//
// # Basic Usage
//
//	layer, _ := nn.NewLinear(3, 1, nn.LinearConfig{})
//	loss := nn.NewMSELoss()
//
//	out, _ := layer.Forward(x)
//	value, _ := loss.Forward(out, y)
//	grad, _ := loss.Gradient(out, y)
//	_, _ = layer.Backward(grad) // stores gradients on layer.Parameters()
//
// # Layers
//
//   - Linear: affine map W·x + b
//   - ReLU: max(0, x)
//   - Sequential: ordered chain of layers
package nn
