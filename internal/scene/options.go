package scene

import (
	"strings"

	"github.com/google/uuid"
)

// Canvas defaults.
const (
	DefaultWidth         = 900
	DefaultHeight        = 500
	DefaultPreviewHeight = 400
	DefaultPadding       = 60
)

// Connector is a decorative path from the primary landmark to another one.
// With a two-element Control offset the path is a quadratic curve whose
// control point sits at target+offset, otherwise it is a straight line.
type Connector struct {
	To      string    `yaml:"to" json:"to"`
	Control []float64 `yaml:"control,omitempty" json:"control,omitempty"`
}

// Options configures one map instance.
type Options struct {
	// ID namespaces element ids so several maps can share a page.
	ID          string
	Connectors  []Connector
	Width       float64
	Height      float64
	Padding     float64
	Preview     bool
	ShowLegend  bool
	EnableModal bool
}

// ModalEnabled reports whether clicks open the detail modal.
func (o Options) ModalEnabled() bool {
	return o.EnableModal && !o.Preview
}

// LegendVisible reports whether the legend is rendered.
func (o Options) LegendVisible() bool {
	return o.ShowLegend && !o.Preview
}

// Normalize fills zero values with defaults.
func (o Options) Normalize() Options {
	if o.ID == "" {
		o.ID = strings.SplitN(uuid.NewString(), "-", 2)[0]
	}
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
		if o.Preview {
			o.Height = DefaultPreviewHeight
		}
	}
	if o.Padding <= 0 {
		o.Padding = DefaultPadding
	}

	return o
}

// ref returns a namespaced element id.
func (o Options) ref(name string) string {
	return name + "-" + o.ID
}
