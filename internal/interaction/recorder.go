package interaction

import (
	"github.com/vista6040/vistamap/internal/geo"
	"github.com/vista6040/vistamap/internal/landmark"
	"github.com/vista6040/vistamap/internal/scene"
)

// Recorder is a Surface without a display. It keeps the overlay each kind
// currently shows and everything announced or opened, so the controller's
// output can be rendered ahead of time.
type Recorder struct {
	Overlays  map[Kind]*scene.Node
	Positions map[Kind]geo.Point
	Opened    []string
	Announced []string
	Size      Size
}

// NewRecorder returns an empty recorder measuring overlays as size.
func NewRecorder(size Size) *Recorder {
	return &Recorder{
		Overlays:  map[Kind]*scene.Node{},
		Positions: map[Kind]geo.Point{},
		Size:      size,
	}
}

func (r *Recorder) Mount(kind Kind, n *scene.Node) { r.Overlays[kind] = n }
func (r *Recorder) Unmount(kind Kind)              { delete(r.Overlays, kind) }
func (r *Recorder) Move(kind Kind, at geo.Point)   { r.Positions[kind] = at }
func (r *Recorder) Measure(Kind) Size              { return r.Size }
func (r *Recorder) OpenExternal(url string)        { r.Opened = append(r.Opened, url) }
func (r *Recorder) Announce(msg string)            { r.Announced = append(r.Announced, msg) }

// last returns the latest announcement, or "" when nothing was announced.
func (r *Recorder) last() string {
	if len(r.Announced) == 0 {
		return ""
	}
	return r.Announced[len(r.Announced)-1]
}

// Outcome is what the controller shows for one landmark: the tooltip
// mounted on hover, and either the modal mounted on click or the link it
// opens instead.
type Outcome struct {
	Landmark *landmark.Landmark
	Tooltip  *scene.Node
	Hover    string
	Modal    *scene.Node
	Opened   string
	Href     string
	Closed   string
}

// Outcomes drives a controller through hover, leave, click and close for
// every landmark of set and records what it mounted and announced.
func Outcomes(set *landmark.Set, opts Options) []Outcome {
	out := make([]Outcome, 0, set.Len())

	for _, l := range set.All() {
		rec := NewRecorder(Size{})
		c := New(set, rec, opts)

		var o Outcome
		o.Landmark = l

		c.HoverEnter(l.ID, geo.Point{})
		o.Tooltip = rec.Overlays[Tooltip]
		o.Hover = rec.last()
		c.HoverLeave()

		c.Click(l.ID)
		if c.State() == ModalOpen {
			o.Modal = rec.Overlays[Modal]
			o.Opened = rec.last()
			o.Href = opts.Directions.URL(l)
			c.Close()
			o.Closed = rec.last()
		} else if len(rec.Opened) > 0 {
			o.Href = rec.Opened[len(rec.Opened)-1]
		}

		out = append(out, o)
	}

	return out
}
