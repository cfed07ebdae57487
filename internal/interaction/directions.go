package interaction

import (
	"net/url"
	"strings"

	"github.com/vista6040/vistamap/internal/landmark"
)

// DefaultDirectionsURL is the routing endpoint directions links point at.
const DefaultDirectionsURL = "https://www.google.com/maps/dir"

// Directions builds outbound routing links from a fixed origin.
type Directions struct {
	BaseURL string
	Origin  string
	// Suffix is appended to the landmark name to disambiguate the destination.
	Suffix string
}

// URL returns <base>/<escaped origin>/<escaped destination>.
func (d Directions) URL(l *landmark.Landmark) string {
	base := d.BaseURL
	if base == "" {
		base = DefaultDirectionsURL
	}

	dest := l.Name
	if d.Suffix != "" {
		dest += ", " + d.Suffix
	}

	return strings.TrimRight(base, "/") + "/" + escapeComponent(d.Origin) + "/" + escapeComponent(dest)
}

// componentKeep are the marks a URI component keeps unescaped besides
// letters, digits and "-_.~".
var componentKeep = strings.NewReplacer("%21", "!", "%27", "'", "%28", "(", "%29", ")", "%2A", "*")

// escapeComponent escapes s as a single URI component: spaces become %20
// and reserved characters such as "&", "," and "/" are percent-encoded.
func escapeComponent(s string) string {
	return componentKeep.Replace(strings.ReplaceAll(url.QueryEscape(s), "+", "%20"))
}
