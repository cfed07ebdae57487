package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/vista6040/vistamap/internal/geo"
	"github.com/vista6040/vistamap/internal/landmark"
	"github.com/vista6040/vistamap/internal/scene"

	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// curveSegments is how many line segments approximate a connector curve.
const curveSegments = 24

// Raster paints a flat preview of the scene: background, roads, markers,
// the primary pulse ring at rest and, outside preview, ASCII labels.
// A positive width scales the result keeping the aspect ratio.
func Raster(set *landmark.Set, opts scene.Options, width int) (image.Image, error) {
	opts = opts.Normalize()

	markers, err := scene.Place(set, opts)
	if err != nil {
		return nil, err
	}

	w, h := int(math.Ceil(opts.Width)), int(math.Ceil(opts.Height))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	paintBackground(img)

	p := &painter{dst: img, z: vector.NewRasterizer(w, h)}
	p.roads(markers, opts)
	for _, m := range markers {
		p.marker(m)
	}
	if !opts.Preview {
		for _, m := range markers {
			label(img, m)
		}
	}

	if width <= 0 || width == w {
		return img, nil
	}

	height := int(math.Round(float64(h) * float64(width) / float64(w)))
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)

	return dst, nil
}

// EncodeWebP writes img as lossy WebP.
func EncodeWebP(w io.Writer, img image.Image) error {
	return webp.Encode(w, img, &webp.Options{Lossless: false, Quality: 85})
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// paintBackground approximates the radial cream-to-beige gradient.
func paintBackground(img *image.RGBA) {
	inner, outer := ParseColor("var(--cream)"), ParseColor("var(--beige)")

	b := img.Bounds()
	cx, cy := float64(b.Dx())/2, float64(b.Dy())/2
	radius := 0.6 * math.Hypot(cx, cy)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			t := math.Min(math.Hypot(float64(x)-cx, float64(y)-cy)/radius, 1)
			img.SetRGBA(x, y, color.RGBA{
				R: lerp(inner.R, outer.R, t),
				G: lerp(inner.G, outer.G, t),
				B: lerp(inner.B, outer.B, t),
				A: 0xff,
			})
		}
	}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

type painter struct {
	dst *image.RGBA
	z   *vector.Rasterizer
}

func (p *painter) fill(c color.NRGBA) {
	p.z.Draw(p.dst, p.dst.Bounds(), image.NewUniform(c), image.Point{})
	b := p.dst.Bounds()
	p.z.Reset(b.Dx(), b.Dy())
}

// circle fills a disc using four cubic arcs. Each disc is a separate fill
// so overlapping shapes composite instead of cancelling windings.
func (p *painter) circle(center geo.Point, r float64, c color.NRGBA) {
	const k = 0.5522847498
	x, y := float32(center.X), float32(center.Y)
	rr, kr := float32(r), float32(r*k)

	p.z.MoveTo(x+rr, y)
	p.z.CubeTo(x+rr, y+kr, x+kr, y+rr, x, y+rr)
	p.z.CubeTo(x-kr, y+rr, x-rr, y+kr, x-rr, y)
	p.z.CubeTo(x-rr, y-kr, x-kr, y-rr, x, y-rr)
	p.z.CubeTo(x+kr, y-rr, x+rr, y-kr, x+rr, y)
	p.z.ClosePath()
	p.fill(c)
}

// ring strokes a circle outline of the given width.
func (p *painter) ring(center geo.Point, r, width float64, c color.NRGBA) {
	steps := 64
	outer, inner := r+width/2, r-width/2
	for i := 0; i < steps; i++ {
		a0 := 2 * math.Pi * float64(i) / float64(steps)
		a1 := 2 * math.Pi * float64(i+1) / float64(steps)
		p.z.MoveTo(float32(center.X+outer*math.Cos(a0)), float32(center.Y+outer*math.Sin(a0)))
		p.z.LineTo(float32(center.X+outer*math.Cos(a1)), float32(center.Y+outer*math.Sin(a1)))
		p.z.LineTo(float32(center.X+inner*math.Cos(a1)), float32(center.Y+inner*math.Sin(a1)))
		p.z.LineTo(float32(center.X+inner*math.Cos(a0)), float32(center.Y+inner*math.Sin(a0)))
		p.z.ClosePath()
	}
	p.fill(c)
}

// polyline strokes connected segments with round joins.
func (p *painter) polyline(pts []geo.Point, width float64, c color.NRGBA) {
	half := width / 2
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		dx, dy := b.X-a.X, b.Y-a.Y
		l := math.Hypot(dx, dy)
		if l == 0 {
			continue
		}
		nx, ny := -dy/l*half, dx/l*half

		p.z.MoveTo(float32(a.X+nx), float32(a.Y+ny))
		p.z.LineTo(float32(b.X+nx), float32(b.Y+ny))
		p.z.LineTo(float32(b.X-nx), float32(b.Y-ny))
		p.z.LineTo(float32(a.X-nx), float32(a.Y-ny))
		p.z.ClosePath()
	}
	p.fill(c)

	for _, pt := range pts {
		p.circle(pt, half, c)
	}
}

func (p *painter) roads(markers []scene.Marker, opts scene.Options) {
	var primary *scene.Marker
	byID := make(map[string]*scene.Marker, len(markers))
	for i := range markers {
		m := &markers[i]
		byID[m.Landmark.ID] = m
		if m.Landmark.IsPrimary {
			primary = m
		}
		if m.Landmark.Type == landmark.Highway {
			p.polyline([]geo.Point{
				{X: m.At.X - 100, Y: m.At.Y},
				{X: m.At.X + 100, Y: m.At.Y},
			}, 4, withOpacity(ParseColor("var(--bronze)"), 0.6))
		}
	}
	if primary == nil {
		return
	}

	road := withOpacity(ParseColor("var(--warm-gray)"), 0.4)
	for _, c := range opts.Connectors {
		to, ok := byID[c.To]
		if !ok {
			continue
		}
		if len(c.Control) != 2 {
			p.polyline([]geo.Point{primary.At, to.At}, 2, road)
			continue
		}

		ctrl := geo.Point{X: to.At.X + c.Control[0], Y: to.At.Y + c.Control[1]}
		p.polyline(quadratic(primary.At, ctrl, to.At, curveSegments), 2, road)
	}
}

func (p *painter) marker(m scene.Marker) {
	l := m.Landmark
	fill := ParseColor(l.Color)

	r := float64(scene.SecondaryRadius)
	if l.IsPrimary {
		r = scene.PrimaryRadius
		p.ring(m.At, scene.PulseMinRadius, 2, withOpacity(fill, 0.6))
	}

	p.circle(geo.Point{X: m.At.X, Y: m.At.Y + 2}, r+1, color.NRGBA{A: 0x40})
	p.circle(m.At, r+1, ParseColor("white"))
	p.circle(m.At, r-1, fill)
}

func label(img *image.RGBA, m scene.Marker) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(ParseColor("var(--charcoal)")),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(int(m.At.X+15), int(m.At.Y-10)),
	}
	d.DrawString(asciiOnly(m.Landmark.Name))
}

// quadratic flattens a quadratic Bézier curve into n segments.
func quadratic(a, c, b geo.Point, n int) []geo.Point {
	pts := make([]geo.Point, 0, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		u := 1 - t
		pts = append(pts, geo.Point{
			X: u*u*a.X + 2*u*t*c.X + t*t*b.X,
			Y: u*u*a.Y + 2*u*t*c.Y + t*t*b.Y,
		})
	}

	return pts
}

// asciiOnly drops runes the bitmap face cannot draw.
func asciiOnly(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r >= 0x20 && r < 0x7f {
			out = append(out, r)
		}
	}

	return string(out)
}
