package geo

import (
	"errors"

	"github.com/paulmach/orb"
)

var (
	// ErrNoPoints is returned when a projector is requested for an empty point set.
	ErrNoPoints = errors.New("geo: no points to project")
	// ErrCanvasTooSmall is returned when padding leaves no drawable area.
	ErrCanvasTooSmall = errors.New("geo: canvas smaller than twice the padding")
)

// Point is a position in scene coordinates (pixels, y grows downward).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Projector maps geographic coordinates into a padded canvas using min/max
// normalization over the bounding box of a fixed point set.
type Projector struct {
	bound   orb.Bound
	width   float64
	height  float64
	padding float64
}

// NewProjector builds a projector for the bounding box of points.
// Points are orb points, i.e. [lng, lat].
func NewProjector(points []orb.Point, width, height, padding float64) (*Projector, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	if width-2*padding < 0 || height-2*padding < 0 {
		return nil, ErrCanvasTooSmall
	}

	return &Projector{
		bound:   orb.MultiPoint(points).Bound(),
		width:   width,
		height:  height,
		padding: padding,
	}, nil
}

// Bound returns the geographic bounding box the projector normalizes over.
func (p *Projector) Bound() orb.Bound {
	return p.bound
}

// Project converts lat/lng degrees to scene coordinates inside
// [padding, width-padding] x [padding, height-padding]. Latitude is inverted
// so north is up. An axis with zero span collapses to its midpoint.
func (p *Projector) Project(lat, lng float64) Point {
	minLng, minLat := p.bound.Min.Lon(), p.bound.Min.Lat()
	maxLng, maxLat := p.bound.Max.Lon(), p.bound.Max.Lat()

	pt := Point{X: p.width / 2, Y: p.height / 2}

	if span := maxLng - minLng; span > 0 {
		pt.X = (lng-minLng)/span*(p.width-2*p.padding) + p.padding
	}
	if span := maxLat - minLat; span > 0 {
		pt.Y = (maxLat-lat)/span*(p.height-2*p.padding) + p.padding
	}

	return pt
}
