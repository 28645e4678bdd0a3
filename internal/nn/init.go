package nn

import (
	"math"
	"math/rand"

	"github.com/born-ml/mdarray/internal/tensor"
)

// Initializer fills a freshly allocated weight tensor of shape [out, in].
type Initializer func(w *tensor.Tensor) error

// InitOnes sets every weight to 1.
func InitOnes(w *tensor.Tensor) error {
	return w.FillOnes()
}

// InitUniform draws weights uniformly from [-scale, scale).
func InitUniform(rng *rand.Rand, scale float64) Initializer {
	return func(w *tensor.Tensor) error {
		if err := w.FillZeros(); err != nil {
			return err
		}
		data := w.Data()
		for i := range data {
			//nolint:gosec // Using math/rand for weight initialization (not security-critical)
			data[i] = (rng.Float64()*2 - 1) * scale
		}
		return nil
	}
}

// InitXavier draws weights from the Xavier/Glorot uniform distribution:
// U(-sqrt(6/(fan_in + fan_out)), sqrt(6/(fan_in + fan_out))).
func InitXavier(rng *rand.Rand) Initializer {
	return func(w *tensor.Tensor) error {
		shape := w.Shape()
		fanOut, fanIn := shape[0], shape[len(shape)-1]
		bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
		return InitUniform(rng, bound)(w)
	}
}
