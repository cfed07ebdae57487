package geo

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var nairobi = []orb.Point{
	{36.8389, -1.2159},
	{36.8417, -1.2165},
	{36.8391, -1.2185},
	{36.7939, -1.2028},
	{36.8236, -1.2523},
	{36.8075, -1.2359},
	{36.8123, -1.2644},
}

func TestProjector_Bounds(t *testing.T) {
	t.Parallel()

	p, err := NewProjector(nairobi, 900, 500, 60)
	require.NoError(t, err)

	for _, pt := range nairobi {
		got := p.Project(pt.Lat(), pt.Lon())
		assert.GreaterOrEqual(t, got.X, 60.0)
		assert.LessOrEqual(t, got.X, 840.0)
		assert.GreaterOrEqual(t, got.Y, 60.0)
		assert.LessOrEqual(t, got.Y, 440.0)
	}
}

func TestProjector_AxisInversion(t *testing.T) {
	t.Parallel()

	p, err := NewProjector(nairobi, 900, 500, 60)
	require.NoError(t, err)

	south := p.Project(-1.2644, 36.8123)
	north := p.Project(-1.2028, 36.7939)
	east := p.Project(-1.2165, 36.8417)

	assert.InDelta(t, 440, south.Y, 1e-9, "min latitude maps to max y")
	assert.InDelta(t, 60, north.Y, 1e-9, "max latitude maps to min y")
	assert.InDelta(t, 60, north.X, 1e-9, "min longitude maps to min x")
	assert.InDelta(t, 840, east.X, 1e-9, "max longitude maps to max x")
}

func TestProjector_DegenerateSpan(t *testing.T) {
	t.Parallel()

	// same latitude for every point, distinct longitudes
	pts := []orb.Point{{10, 5}, {20, 5}}
	p, err := NewProjector(pts, 200, 100, 10)
	require.NoError(t, err)

	a := p.Project(5, 10)
	b := p.Project(5, 20)
	assert.Equal(t, 50.0, a.Y)
	assert.Equal(t, 50.0, b.Y)
	assert.Equal(t, 10.0, a.X)
	assert.Equal(t, 190.0, b.X)

	// a single point collapses on both axes
	single, err := NewProjector([]orb.Point{{1, 1}}, 200, 100, 10)
	require.NoError(t, err)
	got := single.Project(1, 1)
	assert.False(t, math.IsNaN(got.X) || math.IsNaN(got.Y))
	assert.Equal(t, Point{X: 100, Y: 50}, got)
}

func TestNewProjector_Errors(t *testing.T) {
	t.Parallel()

	_, err := NewProjector(nil, 900, 500, 60)
	assert.ErrorIs(t, err, ErrNoPoints)

	_, err = NewProjector(nairobi, 100, 500, 60)
	assert.ErrorIs(t, err, ErrCanvasTooSmall)
}
