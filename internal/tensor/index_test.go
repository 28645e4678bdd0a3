package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatOffset(t *testing.T) {
	x, err := New(2, 3, 4)
	require.NoError(t, err)

	tests := []struct {
		idx  []int
		want int
	}{
		{[]int{0, 0, 0}, 0},
		{[]int{0, 0, 3}, 3},
		{[]int{0, 2, 0}, 8},
		{[]int{1, 0, 0}, 12},
		{[]int{1, 2, 3}, 23},
	}
	for _, tt := range tests {
		got, err := x.FlatOffset(tt.idx...)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "FlatOffset%v", tt.idx)
	}
}

func TestFlatOffsetBoundsEveryDimension(t *testing.T) {
	x, err := New(2, 3, 4)
	require.NoError(t, err)

	for d := range x.Shape() {
		idx := []int{0, 0, 0}
		idx[d] = x.Shape()[d]
		_, err := x.FlatOffset(idx...)
		assert.ErrorIs(t, err, ErrBounds, "dimension %d at extent", d)

		idx[d] = -1
		_, err = x.FlatOffset(idx...)
		assert.ErrorIs(t, err, ErrBounds, "dimension %d negative", d)
	}
}

func TestFlatOffsetWrongRank(t *testing.T) {
	x, err := New(2, 3)
	require.NoError(t, err)

	_, err = x.FlatOffset(1)
	require.ErrorIs(t, err, ErrRankMismatch)
	_, err = x.At(1, 1, 1)
	require.ErrorIs(t, err, ErrRankMismatch)
}

func TestSetGetRoundTrip(t *testing.T) {
	x, err := Zeros(2, 3)
	require.NoError(t, err)

	require.NoError(t, x.Set(42, 1, 2))
	v, err := x.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 42.0, v)

	// Every other element is untouched.
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			if i == 1 && j == 2 {
				continue
			}
			v, err := x.At(i, j)
			require.NoError(t, err)
			assert.Zero(t, v, "element (%d,%d)", i, j)
		}
	}
}

func TestSetIsBoundsChecked(t *testing.T) {
	x, err := Zeros(2, 3)
	require.NoError(t, err)

	require.ErrorIs(t, x.Set(1, 2, 3), ErrBounds)
	require.ErrorIs(t, x.Set(1, 0, 3), ErrBounds)
	assert.Equal(t, []float64{0, 0, 0, 0, 0, 0}, x.Data())
}

func TestForEachOrder(t *testing.T) {
	x, err := FromSlice([]float64{0, 1, 2, 3, 4, 5}, 3, 2)
	require.NoError(t, err)

	var seen []float64
	var coords [][]int
	x.forEach(func(idx []int, pos int) {
		seen = append(seen, x.buf.data[pos])
		coords = append(coords, append([]int(nil), idx...))
	})
	assert.Equal(t, []float64{0, 1, 2, 3, 4, 5}, seen)
	assert.Equal(t, [][]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 0}, {2, 1}}, coords)
}
