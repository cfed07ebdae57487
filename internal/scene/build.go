package scene

import (
	"fmt"

	"github.com/vista6040/vistamap/internal/geo"
	"github.com/vista6040/vistamap/internal/landmark"

	"github.com/rs/zerolog/log"
)

// Marker sizes and pulse animation, in scene pixels.
const (
	PrimaryRadius   = 12
	SecondaryRadius = 8
	PulseMinRadius  = 15
	PulseMaxRadius  = 25
	PulseDuration   = "3s"
	highwayHalfLen  = 100
)

// Marker is a landmark placed in scene space.
type Marker struct {
	Landmark *landmark.Landmark
	At       geo.Point
}

// Place computes distances from the primary landmark and projects every
// landmark into the canvas described by opts.
func Place(set *landmark.Set, opts Options) ([]Marker, error) {
	opts = opts.Normalize()
	set.ComputeDistances()

	proj, err := geo.NewProjector(set.Points(), opts.Width, opts.Height, opts.Padding)
	if err != nil {
		return nil, fmt.Errorf("project landmarks: %w", err)
	}

	markers := make([]Marker, 0, set.Len())
	for _, l := range set.All() {
		markers = append(markers, Marker{Landmark: l, At: proj.Project(l.Lat, l.Lng)})
	}

	return markers, nil
}

// Build returns the SVG scene: definitions, background, connector paths
// and one interactive group per landmark.
func Build(set *landmark.Set, opts Options) (*Node, error) {
	opts = opts.Normalize()

	markers, err := Place(set, opts)
	if err != nil {
		return nil, err
	}

	svg := El("svg",
		"xmlns", "http://www.w3.org/2000/svg",
		"viewBox", fmt.Sprintf("0 0 %s %s", num(opts.Width), num(opts.Height)),
		"data-ns", opts.ID,
		"style", "width: 100%; height: 100%;",
	)

	svg.Append(
		defs(opts),
		El("rect", "width", "100%", "height", "100%", "fill", "url(#"+opts.ref("mapBg")+")", "rx", "8"),
		Roads(markers, opts),
	)

	group := El("g", "class", "landmarks")
	for _, m := range markers {
		group.Append(MarkerNode(m, opts))
	}
	svg.Append(group)

	log.Debug().
		Str("module", "scene").
		Str("ns", opts.ID).
		Int("markers", len(markers)).
		Bool("preview", opts.Preview).
		Msg("Scene built")

	return svg, nil
}

func defs(opts Options) *Node {
	bg := El("radialGradient", "id", opts.ref("mapBg"), "cx", "50%", "cy", "50%", "r", "60%").Append(
		El("stop", "offset", "0%", "style", "stop-color:var(--cream);stop-opacity:1"),
		El("stop", "offset", "100%", "style", "stop-color:var(--beige);stop-opacity:1"),
	)

	shadow := El("filter", "id", opts.ref("shadow")).Append(
		El("feDropShadow", "dx", "0", "dy", "2", "stdDeviation", "2", "flood-opacity", "0.3"),
	)

	glow := El("filter", "id", opts.ref("glow")).Append(
		El("feGaussianBlur", "stdDeviation", "3", "result", "coloredBlur"),
		El("feMerge").Append(
			El("feMergeNode", "in", "coloredBlur"),
			El("feMergeNode", "in", "SourceGraphic"),
		),
	)

	return El("defs").Append(bg, shadow, glow)
}

// Roads draws the stylized road network: a horizontal stroke through each
// highway landmark and the configured connectors from the primary landmark.
func Roads(markers []Marker, opts Options) *Node {
	g := El("g", "class", "roads")

	var primary *Marker
	byID := make(map[string]*Marker, len(markers))
	for i := range markers {
		m := &markers[i]
		byID[m.Landmark.ID] = m
		if m.Landmark.IsPrimary {
			primary = m
		}
		if m.Landmark.Type == landmark.Highway {
			g.Append(El("path",
				"d", fmt.Sprintf("M %s %s L %s %s",
					num(m.At.X-highwayHalfLen), num(m.At.Y),
					num(m.At.X+highwayHalfLen), num(m.At.Y)),
				"stroke", "var(--bronze)",
				"stroke-width", "4",
				"opacity", "0.6",
				"stroke-linecap", "round",
			))
		}
	}

	if primary == nil {
		return g
	}

	for _, c := range opts.Connectors {
		to, ok := byID[c.To]
		if !ok {
			log.Warn().Str("module", "scene").Str("to", c.To).Msg("Connector target not found, skipping")
			continue
		}

		from := primary.At
		var d string
		if len(c.Control) == 2 {
			d = fmt.Sprintf("M %s %s Q %s %s %s %s",
				num(from.X), num(from.Y),
				num(to.At.X+c.Control[0]), num(to.At.Y+c.Control[1]),
				num(to.At.X), num(to.At.Y))
		} else {
			d = fmt.Sprintf("M %s %s L %s %s", num(from.X), num(from.Y), num(to.At.X), num(to.At.Y))
		}

		g.Append(El("path",
			"class", "connector",
			"data-to", c.To,
			"d", d,
			"stroke", "var(--warm-gray)",
			"stroke-width", "2",
			"opacity", "0.4",
			"stroke-linecap", "round",
			"fill", "none",
		))
	}

	return g
}

// MarkerNode renders one landmark group: pulse ring for the primary,
// label outside preview, the marker circle and its icon.
func MarkerNode(m Marker, opts Options) *Node {
	l := m.Landmark
	x, y := num(m.At.X), num(m.At.Y)

	g := El("g",
		"class", "landmark",
		"data-id", l.ID,
		"style", "cursor: pointer;",
	)

	if l.IsPrimary {
		g.Append(Pulse(m))
	}

	if !opts.Preview {
		g.Append(El("text",
			"class", "label",
			"x", num(m.At.X+15),
			"y", num(m.At.Y-10),
			"font-family", "Lato, sans-serif",
			"font-size", "12",
			"font-weight", "600",
			"fill", "var(--charcoal)",
		).WithText(l.Name))
	}

	radius, fontSize := SecondaryRadius, "10"
	if l.IsPrimary {
		radius, fontSize = PrimaryRadius, "14"
	}

	g.Append(
		El("circle",
			"class", "marker",
			"cx", x,
			"cy", y,
			"r", fmt.Sprint(radius),
			"fill", l.Color,
			"stroke", "white",
			"stroke-width", "2",
			"filter", "url(#"+opts.ref("shadow")+")",
		),
		El("text",
			"class", "icon",
			"x", x,
			"y", num(m.At.Y+2),
			"text-anchor", "middle",
			"dominant-baseline", "middle",
			"font-size", fontSize,
		).WithText(l.Icon),
	)

	return g
}

// Pulse is the decorative ring around the primary marker, animated
// indefinitely between two radii and opacities.
func Pulse(m Marker) *Node {
	return El("circle",
		"class", "pulse",
		"cx", num(m.At.X),
		"cy", num(m.At.Y),
		"r", fmt.Sprint(PulseMinRadius),
		"fill", "none",
		"stroke", m.Landmark.Color,
		"stroke-width", "2",
		"opacity", "0.6",
	).Append(
		El("animate",
			"attributeName", "r",
			"values", fmt.Sprintf("%d;%d;%d", PulseMinRadius, PulseMaxRadius, PulseMinRadius),
			"dur", PulseDuration,
			"repeatCount", "indefinite",
		),
		El("animate",
			"attributeName", "opacity",
			"values", "0.6;0;0.6",
			"dur", PulseDuration,
			"repeatCount", "indefinite",
		),
	)
}
