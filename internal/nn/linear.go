package nn

import (
	"github.com/pkg/errors"

	"github.com/born-ml/mdarray/internal/tensor"
)

// Linear implements an affine (fully connected) layer.
//
// Performs the transformation: y = W·x + b
// where:
//   - x is the input tensor with shape [in_features, batch_size]
//   - W is the weight matrix with shape [out_features, in_features]
//   - b is the bias vector with shape [out_features]
//   - y is the output tensor with shape [out_features, batch_size]
//
// Example:
//
//	layer, err := nn.NewLinear(3, 1, nn.LinearConfig{})
//	output, err := layer.Forward(input) // input: [3, batch]
type Linear struct {
	inFeatures  int
	outFeatures int
	weight      *Parameter // [out_features, in_features]
	bias        *Parameter // [out_features]
	input       *tensor.Tensor
}

// LinearConfig holds construction options for Linear.
type LinearConfig struct {
	Init Initializer // Weight initializer (default: InitOnes)
}

// NewLinear creates a new Linear layer.
//
// Weights are filled by cfg.Init; biases start at zero.
func NewLinear(inFeatures, outFeatures int, cfg LinearConfig) (*Linear, error) {
	if cfg.Init == nil {
		cfg.Init = InitOnes
	}

	w, err := tensor.New(outFeatures, inFeatures)
	if err != nil {
		return nil, errors.Wrap(err, "linear: weight")
	}
	if err := cfg.Init(w); err != nil {
		_ = w.Release()
		return nil, errors.Wrap(err, "linear: init weight")
	}

	b, err := tensor.Zeros(outFeatures)
	if err != nil {
		_ = w.Release()
		return nil, errors.Wrap(err, "linear: bias")
	}

	return &Linear{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weight:      NewParameter("weight", w),
		bias:        NewParameter("bias", b),
	}, nil
}

// NewLinearFor sizes a Linear layer from example data: input is
// [in_features, batch] and labels is [out_features, batch].
func NewLinearFor(input, labels *tensor.Tensor, cfg LinearConfig) (*Linear, error) {
	if input.Rank() != 2 || labels.Rank() != 2 {
		return nil, errors.Wrapf(tensor.ErrRankMismatch, "linear: expected 2D input and labels, got %dD and %dD",
			input.Rank(), labels.Rank())
	}
	return NewLinear(input.Shape()[0], labels.Shape()[0], cfg)
}

// Forward computes W·x + b.
//
// The bias is expanded across the batch as b[out,1]·ones[1,batch] rather
// than broadcast.
func (l *Linear) Forward(input *tensor.Tensor) (*tensor.Tensor, error) {
	if input.Released() {
		return nil, errors.Wrap(tensor.ErrReleased, "linear: forward input")
	}
	shape := input.Shape()
	if len(shape) != 2 {
		return nil, errors.Wrapf(tensor.ErrRankMismatch, "linear: expected 2D input [features, batch], got shape %v", shape)
	}
	if shape[0] != l.inFeatures {
		return nil, errors.Wrapf(tensor.ErrDimensionMismatch, "linear: expected input with %d features, got %d",
			l.inFeatures, shape[0])
	}
	batch := shape[1]

	out, err := tensor.MatMul(l.weight.Tensor(), input)
	if err != nil {
		return nil, errors.Wrap(err, "linear: weights·input")
	}

	biasCol, err := l.bias.Tensor().Reshape(l.outFeatures, 1)
	if err != nil {
		_ = out.Release()
		return nil, errors.Wrap(err, "linear: bias view")
	}
	ones, err := tensor.Ones(1, batch)
	if err != nil {
		_ = releaseAll(out, biasCol)
		return nil, err
	}
	biases, err := tensor.MatMul(biasCol, ones)
	if err != nil {
		_ = releaseAll(out, biasCol, ones)
		return nil, errors.Wrap(err, "linear: expand bias")
	}

	result, err := tensor.Add(out, biases)
	_ = releaseAll(out, biasCol, ones, biases)
	if err != nil {
		return nil, errors.Wrap(err, "linear: add bias")
	}

	if err := cacheInput(&l.input, input); err != nil {
		_ = result.Release()
		return nil, err
	}
	return result, nil
}

// Backward computes parameter gradients and the input gradient.
//
//	dL/dW = g · xᵀ
//	dL/db = sum(g, axis 1)
//	dL/dx = Wᵀ · g
func (l *Linear) Backward(gradOutput *tensor.Tensor) (*tensor.Tensor, error) {
	if l.input == nil {
		return nil, ErrNoForward
	}
	if gradOutput.Released() {
		return nil, errors.Wrap(tensor.ErrReleased, "linear: gradient")
	}
	want := tensor.Shape{l.outFeatures, l.input.Shape()[1]}
	if !gradOutput.Shape().Equal(want) {
		return nil, errors.Wrapf(tensor.ErrShapeMismatch, "linear: expected gradient %v, got %v", want, gradOutput.Shape())
	}

	inputT, err := tensor.Transpose(l.input)
	if err != nil {
		return nil, errors.Wrap(err, "linear: transpose input")
	}
	gradW, err := tensor.MatMul(gradOutput, inputT)
	_ = inputT.Release()
	if err != nil {
		return nil, errors.Wrap(err, "linear: weight gradient")
	}

	gradB, err := tensor.SumAlongAxis(gradOutput, 1)
	if err != nil {
		_ = gradW.Release()
		return nil, errors.Wrap(err, "linear: bias gradient")
	}

	weightT, err := tensor.Transpose(l.weight.Tensor())
	if err != nil {
		_ = releaseAll(gradW, gradB)
		return nil, errors.Wrap(err, "linear: transpose weight")
	}
	gradInput, err := tensor.MatMul(weightT, gradOutput)
	_ = weightT.Release()
	if err != nil {
		_ = releaseAll(gradW, gradB)
		return nil, errors.Wrap(err, "linear: input gradient")
	}

	l.weight.SetGrad(gradW)
	l.bias.SetGrad(gradB)
	return gradInput, nil
}

// Parameters returns [weight, bias].
func (l *Linear) Parameters() []*Parameter {
	return []*Parameter{l.weight, l.bias}
}

// Weight returns the weight parameter.
func (l *Linear) Weight() *Parameter {
	return l.weight
}

// Bias returns the bias parameter.
func (l *Linear) Bias() *Parameter {
	return l.bias
}

// InFeatures returns the number of input features.
func (l *Linear) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the number of output features.
func (l *Linear) OutFeatures() int {
	return l.outFeatures
}

// Release frees the parameters and the cached input view.
func (l *Linear) Release() error {
	err := releaseAll(l.input)
	l.input = nil
	if werr := l.weight.Release(); err == nil {
		err = werr
	}
	if berr := l.bias.Release(); err == nil {
		err = berr
	}
	return err
}
