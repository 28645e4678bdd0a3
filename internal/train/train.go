// Package train drives the forward/backward training loop over a layer,
// a loss and an optimizer.
package train

import (
	"log/slog"
	"math"

	"github.com/pkg/errors"

	"github.com/born-ml/mdarray/internal/nn"
	"github.com/born-ml/mdarray/internal/optim"
	"github.com/born-ml/mdarray/internal/tensor"
)

// ErrNonFinite is returned when the loss becomes NaN or infinite.
var ErrNonFinite = errors.New("train: loss is not finite")

// Config holds configuration for a Trainer.
type Config struct {
	Epochs          int          // Number of passes over the data (default: 50)
	DivergenceRatio float64      // Loss growth that triggers LR decay (default: 1.5)
	DecayFactor     float64      // LR multiplier applied on divergence (default: 0.5)
	Logger          *slog.Logger // Per-epoch progress (default: slog.Default())
}

// History records the loss and learning rate of every completed epoch.
type History struct {
	Losses []float64
	LRs    []float64
}

// Final returns the loss of the last completed epoch, or NaN if none ran.
func (h History) Final() float64 {
	if len(h.Losses) == 0 {
		return math.NaN()
	}
	return h.Losses[len(h.Losses)-1]
}

// Trainer runs full-batch gradient descent.
type Trainer struct {
	epochs          int
	divergenceRatio float64
	decayFactor     float64
	logger          *slog.Logger
}

// New creates a Trainer, filling unset config fields with defaults.
func New(cfg Config) *Trainer {
	if cfg.Epochs == 0 {
		cfg.Epochs = 50
	}
	if cfg.DivergenceRatio == 0 {
		cfg.DivergenceRatio = 1.5
	}
	if cfg.DecayFactor == 0 {
		cfg.DecayFactor = 0.5
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Trainer{
		epochs:          cfg.Epochs,
		divergenceRatio: cfg.DivergenceRatio,
		decayFactor:     cfg.DecayFactor,
		logger:          cfg.Logger,
	}
}

// Fit trains model on (input, targets) for the configured number of epochs.
//
// Each epoch runs forward, loss, loss gradient, backward and an optimizer
// step. When the loss grows by more than DivergenceRatio over the previous
// epoch the learning rate is multiplied by DecayFactor before the update.
// A failing forward or backward pass aborts training; the history of the
// completed epochs is returned alongside the error.
func (tr *Trainer) Fit(model nn.Layer, loss nn.Loss, opt optim.Optimizer, input, targets *tensor.Tensor) (History, error) {
	var history History
	prevLoss := math.Inf(1)

	for epoch := 0; epoch < tr.epochs; epoch++ {
		value, err := tr.step(epoch, model, loss, opt, input, targets, prevLoss)
		if err != nil {
			return history, errors.Wrapf(err, "epoch %d", epoch)
		}
		prevLoss = value
		history.Losses = append(history.Losses, value)
		history.LRs = append(history.LRs, opt.GetLR())
	}

	tr.logger.Info("training finished", "epochs", tr.epochs, "loss", history.Final())
	return history, nil
}

func (tr *Trainer) step(
	epoch int,
	model nn.Layer,
	loss nn.Loss,
	opt optim.Optimizer,
	input, targets *tensor.Tensor,
	prevLoss float64,
) (float64, error) {
	predictions, err := model.Forward(input)
	if err != nil {
		return 0, errors.Wrap(err, "forward")
	}
	defer func() { _ = predictions.Release() }()

	value, err := loss.Forward(predictions, targets)
	if err != nil {
		return 0, errors.Wrap(err, "loss")
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, errors.Wrapf(ErrNonFinite, "loss %v", value)
	}

	if value > prevLoss*tr.divergenceRatio {
		lr := opt.GetLR() * tr.decayFactor
		opt.SetLR(lr)
		tr.logger.Warn("loss diverging, decaying learning rate", "epoch", epoch, "loss", value, "lr", lr)
	}
	tr.logger.Info("epoch", "epoch", epoch, "loss", value, "lr", opt.GetLR())

	grad, err := loss.Gradient(predictions, targets)
	if err != nil {
		return 0, errors.Wrap(err, "loss gradient")
	}
	defer func() { _ = grad.Release() }()

	gradInput, err := model.Backward(grad)
	if err != nil {
		return 0, errors.Wrap(err, "backward")
	}
	_ = gradInput.Release()

	if err := opt.Step(); err != nil {
		return 0, errors.Wrap(err, "optimizer step")
	}
	opt.ZeroGrad()
	return value, nil
}
