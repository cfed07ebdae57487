package interaction

import (
	"testing"

	"github.com/vista6040/vistamap/internal/geo"
	"github.com/vista6040/vistamap/internal/landmark"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcomes_Modal(t *testing.T) {
	t.Parallel()

	set, err := landmark.Default()
	require.NoError(t, err)

	outcomes := Outcomes(set, Options{Directions: testDirections, EnableModal: true})
	require.Len(t, outcomes, set.Len())

	for _, o := range outcomes {
		l := o.Landmark
		require.NotNil(t, o.Tooltip, l.ID)
		require.NotNil(t, o.Modal, l.ID)
		assert.Equal(t, l.ID, dataID(o.Tooltip))
		assert.Equal(t, HoverAnnouncement(l), o.Hover)
		assert.Equal(t, OpenAnnouncement(l), o.Opened)
		assert.Equal(t, ClosedAnnouncement, o.Closed)
		assert.Equal(t, testDirections.URL(l), o.Href)
	}

	two := outcomes[indexOf(t, outcomes, "two-rivers")]
	assert.Equal(t, "Two Rivers Mall: 5.2KM, 8 min drive", two.Hover)
	assert.Equal(t, "Two Rivers Mall details opened", two.Opened)
}

func TestOutcomes_Preview(t *testing.T) {
	t.Parallel()

	set, err := landmark.Default()
	require.NoError(t, err)

	outcomes := Outcomes(set, Options{Directions: testDirections, EnableModal: true, Preview: true})
	for _, o := range outcomes {
		assert.Nil(t, o.Modal, o.Landmark.ID)
		assert.Empty(t, o.Opened, o.Landmark.ID)
		assert.Empty(t, o.Closed, o.Landmark.ID)
		assert.Equal(t, testDirections.URL(o.Landmark), o.Href)
		assert.Empty(t, o.Tooltip.ByClass("description"), o.Landmark.ID)
	}
}

func TestController_CustomPlacement(t *testing.T) {
	t.Parallel()

	p := Placement{OffsetX: 4, OffsetY: -6, BelowY: 12}
	c, dom := newController(t, Options{Placement: &p})

	c.HoverEnter("two-rivers", geo.Point{X: 100, Y: 200})
	assert.Equal(t, geo.Point{X: 104, Y: 194}, dom.positions[Tooltip])

	c.HoverMove(geo.Point{X: 100, Y: 2})
	assert.Equal(t, geo.Point{X: 104, Y: 14}, dom.positions[Tooltip])
}

func TestPlaceTooltip_UsesDefaultPlacement(t *testing.T) {
	t.Parallel()

	size := Size{W: 200, H: 100}
	viewport := Size{W: 1000, H: 600}

	for _, pointer := range []geo.Point{{X: 100, Y: 200}, {X: 900, Y: 5}, {X: 100, Y: 580}} {
		assert.Equal(t, DefaultPlacement.Place(pointer, size, viewport), PlaceTooltip(pointer, size, viewport))
	}
	assert.Equal(t, Placement{OffsetX: 10, OffsetY: -10, BelowY: 20}, DefaultPlacement)
}

func indexOf(t *testing.T, outcomes []Outcome, id string) int {
	t.Helper()

	for i, o := range outcomes {
		if o.Landmark.ID == id {
			return i
		}
	}
	require.Failf(t, "landmark not found", id)

	return -1
}
