package render

import (
	"bytes"
	"encoding/json"
	"html"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/vista6040/vistamap/assets"
	"github.com/vista6040/vistamap/internal/config"
	"github.com/vista6040/vistamap/internal/interaction"
	"github.com/vista6040/vistamap/internal/landmark"
	"github.com/vista6040/vistamap/internal/scene"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRenderer(t *testing.T) (*Renderer, *config.Config, *landmark.Set) {
	t.Helper()

	cfg := config.Default()
	set, err := landmark.Default()
	require.NoError(t, err)

	r, err := NewRenderer(cfg, set)
	require.NoError(t, err)

	return r, cfg, set
}

func TestSVG(t *testing.T) {
	t.Parallel()

	r, cfg, _ := newRenderer(t)

	out, err := r.SVG(cfg.Maps[0])
	require.NoError(t, err)

	s := string(out)
	assert.True(t, strings.HasPrefix(s, "<svg") || strings.HasPrefix(s, "<?xml"))
	assert.Contains(t, s, "Windsor Golf Club")
	assert.Contains(t, s, "--cream")
	assert.Contains(t, s, "indefinite")
}

func TestPageData_FullProfile(t *testing.T) {
	t.Parallel()

	r, cfg, set := newRenderer(t)

	data, err := r.pageData(cfg.Maps[0])
	require.NoError(t, err)

	assert.True(t, data.Modal)
	assert.False(t, data.Preview)
	assert.Equal(t, "Location", data.Title)
	assert.Equal(t, set.Len(), strings.Count(string(data.Overlays), `data-kind="tooltip"`))
	assert.Equal(t, set.Len(), strings.Count(string(data.Overlays), `data-kind="modal"`))
	assert.Contains(t, string(data.Map), "Key Locations")
	assert.Contains(t, string(data.Map), `data-href="https://www.google.com/maps/dir/`)
	assert.Contains(t, string(data.LiveRegion), `aria-live="polite"`)
	assert.Len(t, data.Links, len(cfg.Maps))
}

func TestPageData_AnnouncesControllerOutput(t *testing.T) {
	t.Parallel()

	r, cfg, set := newRenderer(t)

	data, err := r.pageData(cfg.Maps[0])
	require.NoError(t, err)

	outcomes := interaction.Outcomes(set, interaction.Options{
		Directions:  cfg.Directions(),
		EnableModal: true,
	})
	overlays := string(data.Overlays)
	for _, o := range outcomes {
		assert.Contains(t, overlays, `data-announce="`+html.EscapeString(o.Hover)+`"`, o.Landmark.ID)
		assert.Contains(t, overlays, `data-announce="`+html.EscapeString(o.Opened)+`"`, o.Landmark.ID)
	}
	assert.Equal(t, interaction.ClosedAnnouncement, data.Closed)

	var placement interaction.Placement
	require.NoError(t, json.Unmarshal([]byte(data.Placement), &placement))
	assert.Equal(t, interaction.DefaultPlacement, placement)
}

func TestPageData_PreviewLinks(t *testing.T) {
	t.Parallel()

	r, cfg, set := newRenderer(t)

	data, err := r.pageData(cfg.Maps[1])
	require.NoError(t, err)

	dirs := cfg.Directions()
	for _, l := range set.All() {
		assert.Contains(t, string(data.Map), `data-href="`+html.EscapeString(dirs.URL(l))+`"`, l.ID)
	}
}

// The client script positions tooltips from the page's data-placement and
// announces the text rendered by the controller, never its own copies.
func TestScript_FollowsPlacement(t *testing.T) {
	t.Parallel()

	var keys map[string]float64
	raw, err := json.Marshal(interaction.DefaultPlacement)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &keys))
	require.Len(t, keys, 3)

	for key := range keys {
		assert.Contains(t, assets.Script, "p."+key)
	}
	for _, attr := range []string{"data-placement", "data-announce", "data-closed"} {
		assert.Contains(t, assets.Script, attr)
	}

	for _, literal := range []string{"clientX + 10", "clientY - 10", "clientY + 20", "- 10;", "details opened", interaction.ClosedAnnouncement} {
		assert.NotContains(t, assets.Script, literal)
	}
}

func TestPage_CarriesPlacement(t *testing.T) {
	t.Parallel()

	r, cfg, _ := newRenderer(t)

	out, err := r.Page(cfg.Maps[0])
	require.NoError(t, err)

	assert.Contains(t, string(out), "data-placement")
	assert.Contains(t, string(out), "offsetX")
	assert.Contains(t, string(out), "data-announce")
}

func TestPageData_PreviewProfile(t *testing.T) {
	t.Parallel()

	r, cfg, set := newRenderer(t)

	data, err := r.pageData(cfg.Maps[1])
	require.NoError(t, err)

	assert.False(t, data.Modal)
	assert.True(t, data.Preview)
	assert.Equal(t, set.Len(), strings.Count(string(data.Overlays), `data-kind="tooltip"`))
	assert.NotContains(t, string(data.Overlays), `data-kind="modal"`)
	assert.NotContains(t, string(data.Overlays), `class="description"`)
	assert.NotContains(t, string(data.Map), "Key Locations")
}

func TestPage_Minified(t *testing.T) {
	t.Parallel()

	r, cfg, _ := newRenderer(t)

	out, err := r.Page(cfg.Maps[0])
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, "<svg")
	assert.Contains(t, s, "InteractiveMap")
	assert.NotContains(t, s, "\n  ")
}

func TestRaster(t *testing.T) {
	t.Parallel()

	_, cfg, set := newRenderer(t)
	opts := cfg.SceneOptions(cfg.Maps[0])

	img, err := Raster(set, opts, 0)
	require.NoError(t, err)
	assert.Equal(t, 900, img.Bounds().Dx())
	assert.Equal(t, 500, img.Bounds().Dy())

	markers, err := scene.Place(set, opts)
	require.NoError(t, err)
	primary := markers[0]
	require.True(t, primary.Landmark.IsPrimary)

	got := color.NRGBAModel.Convert(img.At(int(primary.At.X), int(primary.At.Y))).(color.NRGBA)
	want := ParseColor(primary.Landmark.Color)
	assert.InDelta(t, int(want.R), int(got.R), 1)
	assert.InDelta(t, int(want.G), int(got.G), 1)
	assert.InDelta(t, int(want.B), int(got.B), 1)

	small, err := Raster(set, opts, 450)
	require.NoError(t, err)
	assert.Equal(t, 450, small.Bounds().Dx())
	assert.Equal(t, 250, small.Bounds().Dy())

	var buf bytes.Buffer
	require.NoError(t, EncodePNG(&buf, small))
	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, small.Bounds(), decoded.Bounds())

	buf.Reset()
	require.NoError(t, EncodeWebP(&buf, small))
	assert.Equal(t, "RIFF", string(buf.Bytes()[:4]))
}

func TestParseColor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, color.NRGBA{R: 0xC9, G: 0xA8, B: 0x69, A: 0xff}, ParseColor("#C9A869"))
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, ParseColor("#fff"))
	assert.Equal(t, ParseColor(Palette["bronze"]), ParseColor("var(--bronze)"))
	assert.Equal(t, color.NRGBA{A: 0xff}, ParseColor("var(--unknown)"))
	assert.Equal(t, color.NRGBA{A: 0xff}, ParseColor("#zzzzzz"))
	assert.Equal(t, uint8(0x7f), withOpacity(ParseColor("white"), 0.5).A)
}

func TestPaletteCSS(t *testing.T) {
	t.Parallel()

	css := PaletteCSS(":root")
	assert.True(t, strings.HasPrefix(css, ":root{--beige:"))
	assert.True(t, strings.HasSuffix(css, ";}"))
}
