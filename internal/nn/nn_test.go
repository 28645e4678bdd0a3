package nn_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/mdarray/internal/nn"
	"github.com/born-ml/mdarray/internal/tensor"
)

// features × batch input used throughout: 3 features, 2 samples.
func sampleInput(t *testing.T) *tensor.Tensor {
	t.Helper()
	x, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, 3, 2)
	require.NoError(t, err)
	return x
}

func TestParameter(t *testing.T) {
	data, err := tensor.FromSlice([]float64{1, 2, 3}, 3)
	require.NoError(t, err)
	param := nn.NewParameter("test_param", data)

	assert.Equal(t, "test_param", param.Name())
	assert.Same(t, data, param.Tensor())
	assert.Nil(t, param.Grad())

	g1, err := tensor.Ones(3)
	require.NoError(t, err)
	param.SetGrad(g1)
	assert.Same(t, g1, param.Grad())

	g2, err := tensor.Zeros(3)
	require.NoError(t, err)
	param.SetGrad(g2)
	assert.True(t, g1.Released(), "replaced gradient must be released")

	param.ZeroGrad()
	assert.Nil(t, param.Grad())
	assert.True(t, g2.Released())

	require.NoError(t, param.Release())
	assert.True(t, data.Released())
}

func TestLinear_Creation(t *testing.T) {
	layer, err := nn.NewLinear(10, 5, nn.LinearConfig{})
	require.NoError(t, err)

	assert.Equal(t, 10, layer.InFeatures())
	assert.Equal(t, 5, layer.OutFeatures())
	assert.Equal(t, tensor.Shape{5, 10}, layer.Weight().Tensor().Shape())
	assert.Equal(t, tensor.Shape{5}, layer.Bias().Tensor().Shape())
	assert.Len(t, layer.Parameters(), 2)

	for _, v := range layer.Weight().Tensor().Data() {
		assert.Equal(t, 1.0, v, "default init is ones")
	}
	for _, v := range layer.Bias().Tensor().Data() {
		assert.Zero(t, v)
	}

	_, err = nn.NewLinear(0, 5, nn.LinearConfig{})
	require.ErrorIs(t, err, tensor.ErrInvalidShape)
}

func TestLinear_NewFor(t *testing.T) {
	x := sampleInput(t)
	labels, err := tensor.New(1, 2)
	require.NoError(t, err)

	layer, err := nn.NewLinearFor(x, labels, nn.LinearConfig{})
	require.NoError(t, err)
	assert.Equal(t, 3, layer.InFeatures())
	assert.Equal(t, 1, layer.OutFeatures())

	flat, err := tensor.New(6)
	require.NoError(t, err)
	_, err = nn.NewLinearFor(flat, labels, nn.LinearConfig{})
	require.ErrorIs(t, err, tensor.ErrRankMismatch)
}

func TestLinear_Initializers(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	layer, err := nn.NewLinear(4, 3, nn.LinearConfig{Init: nn.InitUniform(rng, 0.01)})
	require.NoError(t, err)
	for _, v := range layer.Weight().Tensor().Data() {
		assert.InDelta(t, 0, v, 0.01)
	}

	xavier, err := nn.NewLinear(4, 3, nn.LinearConfig{Init: nn.InitXavier(rng)})
	require.NoError(t, err)
	for _, v := range xavier.Weight().Tensor().Data() {
		assert.InDelta(t, 0, v, 0.926) // sqrt(6/7)
	}
}

func TestLinear_Forward(t *testing.T) {
	layer, err := nn.NewLinear(3, 1, nn.LinearConfig{})
	require.NoError(t, err)
	require.NoError(t, layer.Bias().Tensor().Fill(0.5))

	x := sampleInput(t)
	out, err := layer.Forward(x)
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{1, 2}, out.Shape())
	assert.True(t, out.Owns())
	assert.Equal(t, []float64{9.5, 12.5}, out.Data())
}

func TestLinear_ForwardMultipleOutputs(t *testing.T) {
	layer, err := nn.NewLinear(2, 2, nn.LinearConfig{})
	require.NoError(t, err)
	copy(layer.Weight().Tensor().Data(), []float64{1, 0, 0, 2})
	copy(layer.Bias().Tensor().Data(), []float64{10, 20})

	x, err := tensor.FromSlice([]float64{1, 2, 3, 3, 4, 5}, 2, 3)
	require.NoError(t, err)
	out, err := layer.Forward(x)
	require.NoError(t, err)
	assert.Equal(t, []float64{11, 12, 13, 26, 28, 30}, out.Data())
}

func TestLinear_ForwardErrors(t *testing.T) {
	layer, err := nn.NewLinear(3, 1, nn.LinearConfig{})
	require.NoError(t, err)

	wrong, err := tensor.New(2, 2)
	require.NoError(t, err)
	_, err = layer.Forward(wrong)
	require.ErrorIs(t, err, tensor.ErrDimensionMismatch)

	flat, err := tensor.New(3)
	require.NoError(t, err)
	_, err = layer.Forward(flat)
	require.ErrorIs(t, err, tensor.ErrRankMismatch)

	_, err = layer.Forward(nil)
	require.ErrorIs(t, err, tensor.ErrReleased)

	gone, err := tensor.New(3, 2)
	require.NoError(t, err)
	require.NoError(t, gone.Release())
	_, err = layer.Forward(gone)
	require.ErrorIs(t, err, tensor.ErrReleased)
}

func TestLinear_Backward(t *testing.T) {
	layer, err := nn.NewLinear(3, 1, nn.LinearConfig{})
	require.NoError(t, err)

	_, err = layer.Backward(nil)
	require.ErrorIs(t, err, nn.ErrNoForward)

	x := sampleInput(t)
	out, err := layer.Forward(x)
	require.NoError(t, err)

	// The layer keeps its own view of the input.
	require.NoError(t, x.Release())

	g, err := tensor.Ones(1, 2)
	require.NoError(t, err)
	gradInput, err := layer.Backward(g)
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{3, 1}, layer.Weight().Grad().Shape())
	assert.Equal(t, []float64{3, 7, 11}, layer.Weight().Grad().Data())
	assert.Equal(t, tensor.Shape{1}, layer.Bias().Grad().Shape())
	assert.Equal(t, []float64{2}, layer.Bias().Grad().Data())
	assert.Equal(t, tensor.Shape{3, 2}, gradInput.Shape())
	assert.Equal(t, []float64{1, 1, 1, 1, 1, 1}, gradInput.Data())

	bad, err := tensor.Ones(2, 2)
	require.NoError(t, err)
	_, err = layer.Backward(bad)
	require.ErrorIs(t, err, tensor.ErrShapeMismatch)

	_, err = layer.Backward(nil)
	require.ErrorIs(t, err, tensor.ErrReleased)

	require.NoError(t, out.Release())
	require.NoError(t, layer.Release())
	assert.True(t, layer.Weight().Tensor().Released())
}

// TestLinear_GradientCheck compares analytic weight gradients with
// central finite differences of the MSE loss.
func TestLinear_GradientCheck(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	layer, err := nn.NewLinear(3, 2, nn.LinearConfig{Init: nn.InitUniform(rng, 1)})
	require.NoError(t, err)
	x, err := tensor.Rand(rng, 1, 3, 4)
	require.NoError(t, err)
	y, err := tensor.Rand(rng, 1, 2, 4)
	require.NoError(t, err)
	mse := nn.NewMSELoss()

	lossAt := func() float64 {
		out, err := layer.Forward(x)
		require.NoError(t, err)
		defer func() { _ = out.Release() }()
		l, err := mse.Forward(out, y)
		require.NoError(t, err)
		return l
	}

	out, err := layer.Forward(x)
	require.NoError(t, err)
	g, err := mse.Gradient(out, y)
	require.NoError(t, err)
	_, err = layer.Backward(g)
	require.NoError(t, err)

	const eps = 1e-6
	for _, p := range layer.Parameters() {
		data := p.Tensor().Data()
		analytic := p.Grad().Data()
		for i := range data {
			orig := data[i]
			data[i] = orig + eps
			plus := lossAt()
			data[i] = orig - eps
			minus := lossAt()
			data[i] = orig
			assert.InDelta(t, (plus-minus)/(2*eps), analytic[i], 1e-6, "%s[%d]", p.Name(), i)
		}
	}
}

func TestReLU(t *testing.T) {
	relu := nn.NewReLU()
	assert.Nil(t, relu.Parameters())

	_, err := relu.Backward(nil)
	require.ErrorIs(t, err, nn.ErrNoForward)

	x, err := tensor.FromSlice([]float64{-1, 0, 2, -3, 4, 5}, 2, 3)
	require.NoError(t, err)
	out, err := relu.Forward(x)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 2, 0, 4, 5}, out.Data())

	g, err := tensor.Full(3, 2, 3)
	require.NoError(t, err)
	gi, err := relu.Backward(g)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 3, 0, 3, 3}, gi.Data())
	require.NoError(t, relu.Release())
}

func TestSequential(t *testing.T) {
	l1, err := nn.NewLinear(3, 2, nn.LinearConfig{})
	require.NoError(t, err)
	l2, err := nn.NewLinear(2, 1, nn.LinearConfig{})
	require.NoError(t, err)
	model := nn.NewSequential(l1, nn.NewReLU())
	model.Add(l2)

	assert.Equal(t, 3, model.Len())
	assert.Same(t, l2, model.Layer(2))
	assert.Nil(t, model.Layer(3))
	assert.Len(t, model.Parameters(), 4)

	x := sampleInput(t)
	out, err := model.Forward(x)
	require.NoError(t, err)
	// Hidden: [[9 12] [9 12]] -> ReLU unchanged -> sum of rows.
	assert.Equal(t, []float64{18, 24}, out.Data())

	g, err := tensor.Ones(1, 2)
	require.NoError(t, err)
	gi, err := model.Backward(g)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{3, 2}, gi.Shape())
	assert.Equal(t, []float64{2, 2, 2, 2, 2, 2}, gi.Data())
	assert.Equal(t, []float64{9 + 12, 9 + 12}, l2.Weight().Grad().Data())

	require.NoError(t, model.Release())
}

func TestSequential_Empty(t *testing.T) {
	model := nn.NewSequential()
	x := sampleInput(t)
	out, err := model.Forward(x)
	require.NoError(t, err)
	assert.True(t, out.SharesStorage(x))
	assert.Equal(t, x.Data(), out.Data())
}

func TestMSELoss(t *testing.T) {
	mse := nn.NewMSELoss()
	p, err := tensor.FromSlice([]float64{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)
	y, err := tensor.FromSlice([]float64{1, 1, 1, 1}, 4)
	require.NoError(t, err)

	loss, err := mse.Forward(p, y)
	require.NoError(t, err)
	assert.InDelta(t, (0+1+4+9)/4.0, loss, 1e-12)

	g, err := mse.Gradient(p, y)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 2}, g.Shape())
	assert.Equal(t, []float64{0, 0.5, 1, 1.5}, g.Data())

	short, err := tensor.New(3)
	require.NoError(t, err)
	_, err = mse.Forward(p, short)
	require.ErrorIs(t, err, tensor.ErrShapeMismatch)
	_, err = mse.Gradient(p, short)
	require.ErrorIs(t, err, tensor.ErrShapeMismatch)

	require.NoError(t, y.Release())
	_, err = mse.Forward(p, y)
	require.ErrorIs(t, err, tensor.ErrReleased)
}
