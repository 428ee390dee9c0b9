package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/codalotl/seqviz/alignment"
	"github.com/codalotl/seqviz/internal/simplelogger"
)

// Image renders a batch as a raster: a grid of filled color cells with the
// display symbol drawn in each, and insertion-run badges overlaid on
// truncated batches the way the reference plot draws them (a marker at the
// run's reference coordinate carrying the run length).
type Image struct {
	// CellWidth and CellHeight are the cell size in pixels. Zero values
	// default to 14x20, enough for the builtin 7x13 face.
	CellWidth  int
	CellHeight int
}

func (im Image) cell() (int, int) {
	cw, ch := im.CellWidth, im.CellHeight
	if cw <= 0 {
		cw = 14
	}
	if ch <= 0 {
		ch = 20
	}
	return cw, ch
}

// Render draws the batch into a new RGBA image of b.Width x Rows cells.
func (im Image) Render(b *alignment.Batch) *image.RGBA {
	cw, ch := im.cell()
	p := b.Palette()
	img := image.NewRGBA(image.Rect(0, 0, b.Width*cw, b.Rows()*ch))
	simplelogger.Log("render: image: %dx%d px (%d rows x %d cols)", img.Rect.Dx(), img.Rect.Dy(), b.Rows(), b.Width)

	for i, row := range b.ColorMatrix {
		for j, c := range row {
			rect := image.Rect(j*cw, i*ch, (j+1)*cw, (i+1)*ch)
			draw.Draw(img, rect, image.NewUniform(rgba(c, p)), image.Point{}, draw.Src)
		}
	}
	for i, row := range b.TextMatrix {
		for j, r := range row {
			if r == ' ' {
				continue
			}
			drawGlyph(img, j*cw, i*ch, cw, ch, string(r), color.Black)
		}
	}

	if b.Truncate {
		marker := rgba(p.Marker, p)
		for i, rec := range b.Records {
			for _, run := range rec.InsertionRuns() {
				im.drawBadge(img, run, i+1, marker)
			}
		}
	}
	return img
}

// WritePNG renders the batch and encodes it as PNG.
func (im Image) WritePNG(w io.Writer, b *alignment.Batch) error {
	if err := png.Encode(w, im.Render(b)); err != nil {
		return fmt.Errorf("render: WritePNG: %w", err)
	}
	return nil
}

// drawBadge overlays one insertion-run marker: a filled box straddling the
// boundary before run.Pos on the record's row, with the run length in white.
func (im Image) drawBadge(img *image.RGBA, run alignment.InsertionRun, row int, marker color.RGBA) {
	cw, ch := im.cell()
	cx := run.Pos*cw - cw/2
	if cx < 0 {
		cx = 0
	}
	if limit := img.Rect.Dx() - cw; cx > limit {
		cx = limit
	}
	rect := image.Rect(cx, row*ch+2, cx+cw, (row+1)*ch-2)
	draw.Draw(img, rect, image.NewUniform(marker), image.Point{}, draw.Src)
	drawGlyph(img, cx, row*ch, cw, ch, fmt.Sprintf("%d", run.Len), color.White)
}

func drawGlyph(img *image.RGBA, x, y, cw, ch int, s string, col color.Color) {
	face := basicfont.Face7x13
	w := font.MeasureString(face, s).Ceil()
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot: fixed.P(
			x+(cw-w)/2,
			y+(ch+face.Ascent-face.Descent)/2,
		),
	}
	d.DrawString(s)
}

// rgba resolves a palette color to RGBA, substituting the palette's Fallback
// (and finally gray) for malformed values.
func rgba(c alignment.Color, p alignment.Palette) color.RGBA {
	if v, err := c.RGBA(); err == nil {
		return v
	}
	if v, err := p.Fallback.RGBA(); err == nil {
		return v
	}
	return color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
}
