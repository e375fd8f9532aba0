package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestSlicesIncreasing(t *testing.T) {
	t.Parallel()

	const z0, rz, n = -12.5, 2.5, 8
	got := Slices(Frame{
		Origin:       []float64{1, 2, z0},
		Resolutions:  []float64{1, 1, rz},
		Orientations: []Orientation{R2L, A2P, I2S},
		Slices:       n,
	})
	require.Len(t, got, n)
	for i, s := range got {
		assert.Equal(t, i, s.Slice)
		assert.Equal(t, 0, s.Time)
		assert.InDelta(t, z0+float64(i)*rz, s.Origin.Z, 1e-9)
		assert.Equal(t, 1.0, s.Origin.X)
		assert.Equal(t, 2.0, s.Origin.Y)
	}
}

func TestSlicesDecreasing(t *testing.T) {
	t.Parallel()

	got := Slices(Frame{
		Origin:       []float64{0, 0, 10},
		Resolutions:  []float64{1, 1, 2},
		Orientations: []Orientation{L2R, P2A, S2I},
		Slices:       3,
	})
	require.Len(t, got, 3)
	assert.Equal(t, r3.Vec{Z: 10}, got[0].Origin)
	assert.Equal(t, r3.Vec{Z: 8}, got[1].Origin)
	assert.Equal(t, r3.Vec{Z: 6}, got[2].Origin)
}

func TestSlicesTimeSeries(t *testing.T) {
	t.Parallel()

	got := Slices(Frame{
		Origin:       []float64{0, 0, 5, 100},
		Resolutions:  []float64{1, 1, 1, 0.5},
		Orientations: []Orientation{R2L, A2P, I2S},
		Slices:       2,
		Times:        3,
	})
	require.Len(t, got, 6)

	for i, s := range got {
		assert.Equal(t, i/2, s.Time)
		assert.Equal(t, i%2, s.Slice)
		assert.Equal(t, 5+float64(i%2), s.Origin.Z, "z restarts per time index")
		assert.Equal(t, 100+0.5*float64(i/2), s.TimeOrigin)
	}
}

func TestSlicesDefaults(t *testing.T) {
	t.Parallel()

	got := Slices(Frame{})
	require.Len(t, got, 1)
	assert.Equal(t, r3.Vec{}, got[0].Origin)
	assert.Equal(t, 1.0, Unknown.Sign())
}

func TestOrientationSigns(t *testing.T) {
	t.Parallel()

	for _, o := range []Orientation{R2L, A2P, I2S} {
		assert.Equal(t, 1.0, o.Sign(), o.String())
	}
	for _, o := range []Orientation{L2R, P2A, S2I} {
		assert.Equal(t, -1.0, o.Sign(), o.String())
	}
}

func TestParseOrientation(t *testing.T) {
	t.Parallel()

	o, err := ParseOrientation("s2i")
	require.NoError(t, err)
	assert.Equal(t, S2I, o)

	_, err = ParseOrientation("up")
	assert.Error(t, err)
	_, err = ParseOrientation("unknown")
	assert.Error(t, err)
}

func TestOrientationsForSpace(t *testing.T) {
	t.Parallel()

	o, ok := OrientationsForSpace("left-posterior-superior")
	require.True(t, ok)
	assert.Equal(t, []Orientation{R2L, A2P, I2S}, o)

	o, ok = OrientationsForSpace("RAS")
	require.True(t, ok)
	assert.Equal(t, []Orientation{L2R, P2A, I2S}, o)

	_, ok = OrientationsForSpace("scanner-xyz")
	assert.False(t, ok)
}
