package interaction

import "github.com/vista6040/vistamap/internal/geo"

// Size is a width/height pair in viewport pixels.
type Size struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Placement holds the tooltip offsets from the pointer. The page hands it
// to the client script as JSON so both sides place tooltips alike.
type Placement struct {
	OffsetX float64 `json:"offsetX"`
	OffsetY float64 `json:"offsetY"`
	BelowY  float64 `json:"belowY"`
}

// DefaultPlacement puts the tooltip right of and above the pointer.
var DefaultPlacement = Placement{OffsetX: 10, OffsetY: -10, BelowY: 20}

// PlaceTooltip positions a tooltip with DefaultPlacement.
func PlaceTooltip(pointer geo.Point, size, viewport Size) geo.Point {
	return DefaultPlacement.Place(pointer, size, viewport)
}

// Place positions a tooltip of the given size next to the pointer,
// flipping to the other side of the pointer when it would overflow and
// clamping the result into the viewport.
func (p Placement) Place(pointer geo.Point, size, viewport Size) geo.Point {
	x := pointer.X + p.OffsetX
	y := pointer.Y + p.OffsetY

	if x+size.W > viewport.W {
		x = pointer.X - size.W - p.OffsetX
	}
	if y < 0 {
		y = pointer.Y + p.BelowY
	}
	if y+size.H > viewport.H {
		y = pointer.Y - size.H + p.OffsetY
	}

	return geo.Point{
		X: clamp(x, 0, viewport.W-size.W),
		Y: clamp(y, 0, viewport.H-size.H),
	}
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
