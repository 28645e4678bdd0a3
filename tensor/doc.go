// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides strided, reference-counted float64 arrays.
//
// # Overview
//
// A Tensor is a descriptor (shape, strides, origin) over a shared buffer.
// Creating a tensor with New, Zeros, Ones or FromSlice yields an owning
// tensor; SubView and Reshape yield views that alias the same elements.
// Every descriptor holds one reference to its buffer, so releasing an
// owner never invalidates live views.
//
// # Basic Usage
//
//	x, _ := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
//	defer x.Release()
//
//	row, _ := x.SubView(1, 1)      // aliases the second row, shape [3]
//	flat, _ := x.Reshape(6)        // aliases all six elements
//	xt, _ := tensor.Transpose(x)   // materialized [3, 2]
//	y, _ := tensor.MatMul(x, xt)   // [2, 2]
//
// # Errors
//
// Operations never panic on bad input. They return one of the sentinel
// errors (ErrInvalidShape, ErrBounds, ErrShapeMismatch, ...) wrapped with
// context; match them with errors.Is.
package tensor
