package alignment

import "fmt"

// BatchConfig holds optional inputs to NewBatch.
type BatchConfig struct {
	// Full keeps insertion columns in the layout, sizing the width to the
	// longest canonical sequence. The zero value truncates to reference
	// coordinates: insertion columns are dropped and the width is the
	// reference length.
	Full bool

	// Palette overrides DefaultPalette.
	Palette *Palette
}

// Batch is the layout of a sorted group of records against a shared target:
// a color matrix and a parallel text matrix of common width, the reference
// row first. These matrices are the whole contract handed to a renderer.
type Batch struct {
	// Records, sorted ascending by CountKey. Row i+1 of the matrices belongs
	// to Records[i].
	Records []*Record

	// Reference is the raw target sequence the reference row is built from
	// (taken from the first sorted record; targets are assumed shared).
	Reference string

	// Width is the common row width in columns.
	Width int

	// Truncate reports whether the layout is in reference coordinates.
	Truncate bool

	// ColorMatrix has one row per matrix row; ColorMatrix[0] is the
	// reference row. TextMatrix is parallel, holding display symbols.
	ColorMatrix [][]Color
	TextMatrix  [][]rune

	palette Palette
}

// NewBatch sorts records (the input slice is not mutated) and lays them out
// into color/text matrices beneath a reference row synthesized from the raw
// target, colored per base. Rows are right-padded to the common width with
// the palette's Blank color and spaces.
func NewBatch(records []*Record, cfg BatchConfig) (*Batch, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("alignment: NewBatch: %w", ErrEmptyBatch)
	}

	p := DefaultPalette()
	if cfg.Palette != nil {
		p = *cfg.Palette
	}
	truncate := !cfg.Full

	sorted := make([]*Record, len(records))
	copy(sorted, records)
	SortRecords(sorted)

	ref := []rune(sorted[0].Target())
	width := len(ref)
	if !truncate {
		for _, r := range sorted {
			if r.Len() > width {
				width = r.Len()
			}
		}
	}

	b := &Batch{
		Records:   sorted,
		Reference: sorted[0].Target(),
		Width:     width,
		Truncate:  truncate,
		palette:   p,
	}

	refColors := make([]Color, 0, width)
	refText := make([]rune, 0, width)
	for _, base := range ref {
		refColors = append(refColors, p.Base(base))
		refText = append(refText, base)
	}
	b.ColorMatrix = append(b.ColorMatrix, padColors(refColors, width, p.Blank))
	b.TextMatrix = append(b.TextMatrix, padText(refText, width))

	for _, r := range sorted {
		b.ColorMatrix = append(b.ColorMatrix, padColors(r.ColorRow(p, truncate), width, p.Blank))
		b.TextMatrix = append(b.TextMatrix, padText(r.SymbolRow(truncate), width))
	}
	return b, nil
}

// Palette returns the palette the batch was laid out with.
func (b *Batch) Palette() Palette { return b.palette }

// Rows is the matrix row count: the reference plus one row per record.
func (b *Batch) Rows() int { return 1 + len(b.Records) }

func padColors(row []Color, width int, fill Color) []Color {
	for len(row) < width {
		row = append(row, fill)
	}
	return row
}

func padText(row []rune, width int) []rune {
	for len(row) < width {
		row = append(row, ' ')
	}
	return row
}
