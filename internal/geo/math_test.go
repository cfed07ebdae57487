package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceMeters_SymmetryAndIdentity(t *testing.T) {
	t.Parallel()

	a := [2]float64{-1.2159, 36.8389}
	b := [2]float64{-1.2028, 36.7939}

	ab := DistanceMeters(a[0], a[1], b[0], b[1])
	ba := DistanceMeters(b[0], b[1], a[0], a[1])

	assert.Equal(t, ab, ba)
	assert.Zero(t, DistanceMeters(a[0], a[1], a[0], a[1]))
	assert.InDelta(t, 5210.4, ab, 0.5)
}

func TestDistanceMeters_Equator(t *testing.T) {
	t.Parallel()

	// one degree of longitude on the equator is R*pi/180
	got := DistanceMeters(0, 0, 0, 1)
	assert.InDelta(t, 111194.93, got, 0.01)
}

func TestFormatDistance(t *testing.T) {
	t.Parallel()

	cases := []struct {
		meters float64
		want   string
	}{
		{0, "0M"},
		{150, "150M"},
		{149.5, "150M"},
		{149.4, "149M"},
		{999, "999M"},
		{999.6, "1000M"},
		{1000, "1.0KM"},
		{1049, "1.0KM"},
		{1050, "1.1KM"},
		{3150, "3.2KM"},
		{6150.48, "6.2KM"},
		{12345, "12.3KM"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatDistance(tc.meters), "meters=%v", tc.meters)
	}
}
