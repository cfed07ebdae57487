// Package landmark holds the static landmark dataset shown on the map.
package landmark

import (
	"errors"
	"fmt"
	"sync"

	"github.com/vista6040/vistamap/internal/geo"

	"github.com/paulmach/orb"
)

// Category tags a landmark for icon and legend purposes only.
type Category string

const (
	Development Category = "development"
	Highway     Category = "highway"
	Recreation  Category = "recreation"
	Shopping    Category = "shopping"
	Nature      Category = "nature"
	Business    Category = "business"
)

var (
	ErrEmptySet        = errors.New("landmark set is empty")
	ErrNoPrimary       = errors.New("landmark set has no primary landmark")
	ErrMultiplePrimary = errors.New("landmark set has more than one primary landmark")
	ErrDuplicateID     = errors.New("duplicate landmark id")
)

// Landmark is a named point of interest with display metadata.
type Landmark struct {
	ID          string   `yaml:"id" json:"id"`
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	Details     string   `yaml:"details" json:"details"`
	Type        Category `yaml:"type" json:"type"`
	Icon        string   `yaml:"icon" json:"icon"`
	Color       string   `yaml:"color" json:"color"`
	Distance    string   `yaml:"distance" json:"distance"` // static fallback
	Time        string   `yaml:"time" json:"time"`
	Lat         float64  `yaml:"lat" json:"lat"`
	Lng         float64  `yaml:"lng" json:"lng"`
	IsPrimary   bool     `yaml:"primary,omitempty" json:"is_primary,omitempty"`

	// CalculatedDistance is derived from the primary landmark on first render.
	CalculatedDistance string `yaml:"-" json:"calculated_distance,omitempty"`
}

// DisplayDistance prefers the calculated distance over the static fallback.
func (l *Landmark) DisplayDistance() string {
	if l.CalculatedDistance != "" {
		return l.CalculatedDistance
	}

	return l.Distance
}

// Point returns the landmark position as an orb point ([lng, lat]).
func (l *Landmark) Point() orb.Point {
	return orb.Point{l.Lng, l.Lat}
}

// Set is an ordered, validated landmark collection with exactly one primary.
// It is read-only after construction except for calculated distances,
// which are filled exactly once.
type Set struct {
	items   []*Landmark
	byID    map[string]*Landmark
	primary *Landmark
	once    sync.Once
}

// NewSet validates landmarks and builds a set preserving their order.
func NewSet(landmarks []Landmark) (*Set, error) {
	if len(landmarks) == 0 {
		return nil, ErrEmptySet
	}

	s := &Set{
		items: make([]*Landmark, 0, len(landmarks)),
		byID:  make(map[string]*Landmark, len(landmarks)),
	}

	for i := range landmarks {
		l := landmarks[i]
		if _, ok := s.byID[l.ID]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, l.ID)
		}

		if l.IsPrimary {
			if s.primary != nil {
				return nil, fmt.Errorf("%w: %q and %q", ErrMultiplePrimary, s.primary.ID, l.ID)
			}
			s.primary = &l
		}

		s.items = append(s.items, &l)
		s.byID[l.ID] = &l
	}

	if s.primary == nil {
		return nil, ErrNoPrimary
	}

	return s, nil
}

// All returns the landmarks in dataset order.
func (s *Set) All() []*Landmark {
	return s.items
}

// Len returns the number of landmarks.
func (s *Set) Len() int {
	return len(s.items)
}

// Primary returns the subject landmark.
func (s *Set) Primary() *Landmark {
	return s.primary
}

// Get looks a landmark up by id.
func (s *Set) Get(id string) (*Landmark, bool) {
	l, ok := s.byID[id]
	return l, ok
}

// Points returns all landmark positions as orb points.
func (s *Set) Points() []orb.Point {
	pts := make([]orb.Point, len(s.items))
	for i, l := range s.items {
		pts[i] = l.Point()
	}

	return pts
}

// ComputeDistances fills CalculatedDistance for every non-primary landmark
// with the haversine distance from the primary. Only the first call does work.
func (s *Set) ComputeDistances() {
	s.once.Do(func() {
		p := s.primary
		for _, l := range s.items {
			if l == p {
				continue
			}
			m := geo.DistanceMeters(p.Lat, p.Lng, l.Lat, l.Lng)
			l.CalculatedDistance = geo.FormatDistance(m)
		}
	})
}
