package scene

import "github.com/vista6040/vistamap/internal/landmark"

// LegendLimit is how many landmarks the legend lists.
const LegendLimit = 5

// Legend lists the first landmarks with their icons. It returns nil when
// the legend is hidden for opts, which Append treats as nothing.
func Legend(set *landmark.Set, opts Options) *Node {
	if !opts.LegendVisible() {
		return nil
	}

	items := El("div", "class", "legend-items")
	for i, l := range set.All() {
		if i == LegendLimit {
			break
		}
		items.Append(El("div", "class", "legend-item").Append(
			El("span", "class", "legend-icon").WithText(l.Icon),
			El("span").WithText(l.Name),
		))
	}

	return El("div", "class", "map-legend").Append(
		El("h4").WithText("Key Locations"),
		items,
	)
}

// Container assembles the visual tree inserted into a page container:
// the scene wrapper and, when visible, the legend.
func Container(set *landmark.Set, opts Options) (*Node, error) {
	opts = opts.Normalize()

	svg, err := Build(set, opts)
	if err != nil {
		return nil, err
	}

	class := "interactive-map"
	if opts.Preview {
		class += " is-preview"
	}

	root := El("div", "class", class, "data-ns", opts.ID)
	root.Append(
		El("div", "class", "map-container").Append(svg),
		Legend(set, opts),
	)

	return root, nil
}
