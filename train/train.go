// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package train runs full-batch training of an nn layer.
//
// Example:
//
//	trainer := train.New(train.Config{Epochs: 50})
//	history, err := trainer.Fit(layer, nn.NewMSELoss(), optimizer, x, y)
//	fmt.Println(history.Final())
package train

import (
	"github.com/born-ml/mdarray/internal/train"
)

// ErrNonFinite is returned when the loss becomes NaN or infinite.
var ErrNonFinite = train.ErrNonFinite

// Config holds configuration for a Trainer.
type Config = train.Config

// History records per-epoch loss and learning rate.
type History = train.History

// Trainer runs the epoch loop.
type Trainer = train.Trainer

// New creates a Trainer. Zero config fields take their defaults.
func New(cfg Config) *Trainer {
	return train.New(cfg)
}
