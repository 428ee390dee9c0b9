package alignment

import (
	"fmt"
	"image/color"
)

// Color is a display color in "#rrggbb" hex form. The hex form is understood
// directly by terminal styling libraries and parses to an RGBA for raster
// renderers via RGBA.
type Color string

// Palette maps display symbols to colors. Zero-value fields are not filled
// in; start from DefaultPalette and override.
type Palette struct {
	// Bases colors mismatch and insertion columns by their base symbol.
	Bases map[rune]Color

	// Covered colors match columns.
	Covered Color

	// Blank colors deletion columns and layout padding.
	Blank Color

	// Fallback colors mismatch/insertion symbols missing from Bases.
	Fallback Color

	// Marker colors collapsed insertion-run annotations in truncated views.
	Marker Color
}

// DefaultPalette returns the standard nucleotide palette: green A, red T,
// gold G, blue C, gray for covered, white for blank, purple markers.
func DefaultPalette() Palette {
	return Palette{
		Bases: map[rune]Color{
			'A': "#008000",
			'T': "#ff0000",
			'G': "#ffd700",
			'C': "#0000ff",
		},
		Covered:  "#808080",
		Blank:    "#ffffff",
		Fallback: "#808080",
		Marker:   "#800080",
	}
}

// Base resolves the color for a mismatch or insertion symbol, falling back
// to Fallback for symbols outside the palette.
func (p Palette) Base(sym rune) Color {
	if c, ok := p.Bases[sym]; ok {
		return c
	}
	return p.Fallback
}

// RGBA parses the color's "#rrggbb" hex form. Malformed colors return an
// error; renderers typically substitute their palette's Fallback.
func (c Color) RGBA() (color.RGBA, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(string(c), "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("alignment: Color.RGBA: %q is not #rrggbb: %w", string(c), err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
