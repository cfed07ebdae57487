package render

import (
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"
)

// Palette holds the CSS custom properties the scene references through var(--name).
var Palette = map[string]string{
	"cream":     "#F7F3EC",
	"beige":     "#E8DCC8",
	"bronze":    "#A37F4E",
	"gold":      "#C9A869",
	"warm-gray": "#8C8279",
	"charcoal":  "#2B2B2B",
}

// PaletteCSS declares the palette as custom properties on selector.
func PaletteCSS(selector string) string {
	names := make([]string, 0, len(Palette))
	for name := range Palette {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(selector + "{")
	for _, name := range names {
		fmt.Fprintf(&b, "--%s:%s;", name, Palette[name])
	}
	b.WriteString("}")

	return b.String()
}

// ParseColor resolves "#RRGGBB", "#RGB", "white", "black" and
// "var(--name)" palette references. Unknown tokens resolve to black.
func ParseColor(token string) color.NRGBA {
	token = strings.TrimSpace(token)

	if strings.HasPrefix(token, "var(--") && strings.HasSuffix(token, ")") {
		name := strings.TrimSuffix(strings.TrimPrefix(token, "var(--"), ")")
		if hex, ok := Palette[name]; ok {
			return ParseColor(hex)
		}
		return color.NRGBA{A: 0xff}
	}

	switch token {
	case "white":
		return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	case "black", "":
		return color.NRGBA{A: 0xff}
	}

	hex := strings.TrimPrefix(token, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.NRGBA{A: 0xff}
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{A: 0xff}
	}

	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

// withOpacity scales the alpha channel.
func withOpacity(c color.NRGBA, opacity float64) color.NRGBA {
	c.A = uint8(float64(c.A) * opacity)
	return c
}
