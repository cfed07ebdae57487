package interaction

import (
	"github.com/vista6040/vistamap/internal/landmark"
	"github.com/vista6040/vistamap/internal/scene"
)

// Kind identifies an overlay slot. At most one overlay of each kind exists.
type Kind int

const (
	Tooltip Kind = iota
	Modal
)

func (k Kind) String() string {
	switch k {
	case Tooltip:
		return "tooltip"
	case Modal:
		return "modal"
	default:
		return "unknown"
	}
}

// TooltipNode renders the hover tooltip. Preview mode drops the description.
func TooltipNode(l *landmark.Landmark, preview bool) *scene.Node {
	n := scene.El("div", "class", "map-tooltip", "role", "tooltip", "data-id", l.ID).Append(
		scene.El("h4").WithText(l.Icon+" "+l.Name),
		labelled("Distance:", l.DisplayDistance()),
		labelled("Travel Time:", l.Time),
	)
	if !preview {
		n.Append(scene.El("p", "class", "description").WithText(l.Description))
	}

	return n
}

// ModalNode renders the landmark detail dialog.
func ModalNode(l *landmark.Landmark, directionsURL string) *scene.Node {
	title := "landmark-title-" + l.ID

	content := scene.El("div", "class", "landmark-info-content").Append(
		scene.El("button", "type", "button", "class", "close-info", "aria-label", "Close").WithText("×"),
		scene.El("h2", "id", title).WithText(l.Icon+" "+l.Name),
		scene.El("div", "class", "landmark-distance").WithText(l.DisplayDistance()+" • "+l.Time),
		scene.El("p").WithText(l.Details),
		scene.El("div", "class", "landmark-actions").Append(
			scene.El("a",
				"href", directionsURL,
				"target", "_blank",
				"rel", "noopener",
				"class", "btn-primary",
			).WithText("Get Directions"),
			scene.El("button", "type", "button", "class", "btn-secondary close-info").WithText("Close"),
		),
	)

	return scene.El("div",
		"class", "landmark-info-modal",
		"role", "dialog",
		"aria-modal", "true",
		"aria-labelledby", title,
		"data-id", l.ID,
	).Append(content)
}

// LiveRegion is the polite ARIA region overlay changes are announced on.
func LiveRegion() *scene.Node {
	return scene.El("div", "class", "sr-only map-live", "aria-live", "polite", "aria-atomic", "true")
}

func labelled(label, value string) *scene.Node {
	return scene.El("p").Append(
		scene.El("strong").WithText(label),
		scene.El("span").WithText(" "+value),
	)
}
