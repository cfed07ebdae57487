// Package interaction implements the hover/click behaviour of map markers
// as a display-independent state machine.
package interaction

import (
	"github.com/vista6040/vistamap/internal/geo"
	"github.com/vista6040/vistamap/internal/landmark"
	"github.com/vista6040/vistamap/internal/scene"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// State of a controller.
type State int

const (
	Idle State = iota
	TooltipOpen
	ModalOpen
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case TooltipOpen:
		return "tooltip_open"
	case ModalOpen:
		return "modal_open"
	default:
		return "unknown"
	}
}

// EscapeKey is the key name that dismisses the modal.
const EscapeKey = "Escape"

// ClosedAnnouncement is announced when the modal is dismissed.
const ClosedAnnouncement = "Details closed"

// Surface is the display the controller drives. Mount adds an overlay to
// the display; the controller guarantees Unmount of the same kind first.
type Surface interface {
	Mount(kind Kind, overlay *scene.Node)
	Unmount(kind Kind)
	Move(kind Kind, at geo.Point)
	Measure(kind Kind) Size
	OpenExternal(url string)
	Announce(message string)
}

// Options configures a controller.
type Options struct {
	Directions Directions
	Viewport   Size
	// Placement defaults to DefaultPlacement.
	Placement   *Placement
	Preview     bool
	EnableModal bool
}

// Controller owns the overlay state of one map instance.
type Controller struct {
	set      *landmark.Set
	surface  Surface
	tooltip  *landmark.Landmark
	modal    *landmark.Landmark
	log      zerolog.Logger
	opts     Options
	viewport Size
}

// New creates a controller. A nil surface means there is no container to
// drive: every event is then silently ignored.
func New(set *landmark.Set, surface Surface, opts Options) *Controller {
	if set != nil {
		set.ComputeDistances()
	}

	return &Controller{
		set:      set,
		surface:  surface,
		opts:     opts,
		viewport: opts.Viewport,
		log:      log.With().Str("module", "interaction").Logger(),
	}
}

// State reports the current overlay state.
func (c *Controller) State() State {
	switch {
	case c.modal != nil:
		return ModalOpen
	case c.tooltip != nil:
		return TooltipOpen
	default:
		return Idle
	}
}

// ModalEnabled reports whether a click opens the detail modal.
func (c *Controller) ModalEnabled() bool {
	return c.opts.EnableModal && !c.opts.Preview
}

// HoverEnter opens the tooltip for id next to the pointer, replacing any
// tooltip already open. It is ignored while the modal covers the map.
func (c *Controller) HoverEnter(id string, pointer geo.Point) {
	l, ok := c.lookup(id)
	if !ok || c.modal != nil {
		return
	}

	c.tooltip = l
	c.mount(Tooltip, TooltipNode(l, c.opts.Preview))
	c.place(pointer)
	c.surface.Announce(HoverAnnouncement(l))
}

// HoverMove makes the open tooltip track the pointer.
func (c *Controller) HoverMove(pointer geo.Point) {
	if !c.ready() || c.tooltip == nil {
		return
	}
	c.place(pointer)
}

// HoverLeave closes the tooltip.
func (c *Controller) HoverLeave() {
	if !c.ready() {
		return
	}
	c.closeTooltip()
}

// Click opens the detail modal when enabled, otherwise it opens the
// directions link in a new browsing context.
func (c *Controller) Click(id string) {
	l, ok := c.lookup(id)
	if !ok {
		return
	}

	if !c.ModalEnabled() {
		c.surface.OpenExternal(c.opts.Directions.URL(l))
		return
	}

	c.closeTooltip()
	c.modal = l
	c.mount(Modal, ModalNode(l, c.opts.Directions.URL(l)))
	c.surface.Announce(OpenAnnouncement(l))
}

// Close handles the modal close controls.
func (c *Controller) Close() {
	c.dismiss()
}

// BackdropClick handles a click on the modal backdrop.
func (c *Controller) BackdropClick() {
	c.dismiss()
}

// KeyDown dismisses the modal on Escape.
func (c *Controller) KeyDown(key string) {
	if key == EscapeKey {
		c.dismiss()
	}
}

// Resize records the new viewport and closes open overlays. Marker
// positions are not re-projected.
func (c *Controller) Resize(viewport Size) {
	if !c.ready() {
		return
	}
	c.viewport = viewport
	c.closeTooltip()
	c.closeModal()
}

func (c *Controller) dismiss() {
	if !c.ready() || c.modal == nil {
		return
	}
	c.closeModal()
	c.surface.Announce(ClosedAnnouncement)
}

// HoverAnnouncement is the live-region text of a landmark's tooltip.
func HoverAnnouncement(l *landmark.Landmark) string {
	return l.Name + ": " + l.DisplayDistance() + ", " + l.Time
}

// OpenAnnouncement is the live-region text of a landmark's modal.
func OpenAnnouncement(l *landmark.Landmark) string {
	return l.Name + " details opened"
}

// mount removes whatever overlay of kind the surface still shows before
// adding the new one.
func (c *Controller) mount(kind Kind, overlay *scene.Node) {
	c.surface.Unmount(kind)
	c.surface.Mount(kind, overlay)
}

func (c *Controller) place(pointer geo.Point) {
	p := DefaultPlacement
	if c.opts.Placement != nil {
		p = *c.opts.Placement
	}
	at := p.Place(pointer, c.surface.Measure(Tooltip), c.viewport)
	c.surface.Move(Tooltip, at)
}

func (c *Controller) closeTooltip() {
	if c.tooltip == nil {
		return
	}
	c.surface.Unmount(Tooltip)
	c.tooltip = nil
}

func (c *Controller) closeModal() {
	if c.modal == nil {
		return
	}
	c.surface.Unmount(Modal)
	c.modal = nil
}

func (c *Controller) ready() bool {
	return c != nil && c.surface != nil
}

func (c *Controller) lookup(id string) (*landmark.Landmark, bool) {
	if !c.ready() || c.set == nil {
		return nil, false
	}

	l, ok := c.set.Get(id)
	if !ok {
		c.log.Debug().Str("id", id).Msg("Event for unknown landmark ignored")
	}

	return l, ok
}
