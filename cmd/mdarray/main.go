// Package main provides the mdarray CLI.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"

	"github.com/pkg/errors"

	"github.com/born-ml/mdarray/nn"
	"github.com/born-ml/mdarray/optim"
	"github.com/born-ml/mdarray/tensor"
	"github.com/born-ml/mdarray/train"
)

const version = "v0.1.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stdout)
		return 0
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(stdout, "mdarray %s\n", version)
		return 0
	case "train":
		if err := trainDemo(args[1:], stdout, stderr); err != nil {
			fmt.Fprintf(stderr, "train: %v\n", err)
			return 1
		}
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
		usage(stderr)
		return 2
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "mdarray - strided tensors with a hand-written affine layer")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version")
	fmt.Fprintln(w, "  train      Fit a linear layer to the built-in regression demo")
}

// trainDemo fits a 3->1 linear layer to two samples of three features.
func trainDemo(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("train", flag.ContinueOnError)
	fs.SetOutput(stderr)
	epochs := fs.Int("epochs", 50, "number of training epochs")
	lr := fs.Float64("lr", 0.01, "initial learning rate")
	seed := fs.Int64("seed", 42, "weight initialization seed")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *epochs <= 0 {
		return errors.Errorf("epochs must be positive, got %d", *epochs)
	}

	logger := slog.New(slog.NewTextHandler(stdout, nil))

	// Samples are columns: (1, 3, 5) -> 1 and (2, 4, 6) -> 2.
	input, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, 3, 2)
	if err != nil {
		return err
	}
	defer func() { _ = input.Release() }()
	targets, err := tensor.FromSlice([]float64{1, 2}, 1, 2)
	if err != nil {
		return err
	}
	defer func() { _ = targets.Release() }()

	rng := rand.New(rand.NewSource(*seed)) //nolint:gosec // G404: reproducible demo weights
	layer, err := nn.NewLinearFor(input, targets, nn.LinearConfig{Init: nn.InitUniform(rng, 0.01)})
	if err != nil {
		return err
	}
	defer func() { _ = layer.Release() }()

	opt := optim.NewSGD(layer.Parameters(), optim.SGDConfig{LR: *lr})
	defer func() { _ = opt.Release() }()
	history, err := train.New(train.Config{Epochs: *epochs, Logger: logger}).
		Fit(layer, nn.NewMSELoss(), opt, input, targets)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "final loss %.6f (lr %g)\n", history.Final(), opt.GetLR())
	fmt.Fprintf(stdout, "weights %v bias %v\n", layer.Weight().Tensor().Data(), layer.Bias().Tensor().Data())
	return nil
}
