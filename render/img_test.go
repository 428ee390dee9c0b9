package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/codalotl/seqviz/alignment"
)

func singleRecordBatch(t *testing.T, target, query, alnTarget, alnQuery string, cfg alignment.BatchConfig) *alignment.Batch {
	t.Helper()
	rec, err := alignment.NewRecord(target, query,
		alignment.RecordConfig{Pair: &alignment.AlignedPair{Target: alnTarget, Query: alnQuery}})
	require.NoError(t, err)
	b, err := alignment.NewBatch([]*alignment.Record{rec}, cfg)
	require.NoError(t, err)
	return b
}

func TestImage_DimensionsAndCellColors(t *testing.T) {
	b := singleRecordBatch(t, "AT", "AT", "AT", "AT", alignment.BatchConfig{})
	p := b.Palette()

	img := Image{}.Render(b)

	// 2 columns x 2 rows of 14x20 cells.
	require.Equal(t, 28, img.Rect.Dx())
	require.Equal(t, 40, img.Rect.Dy())

	wantA, err := p.Bases['A'].RGBA()
	require.NoError(t, err)
	wantT, err := p.Bases['T'].RGBA()
	require.NoError(t, err)
	wantCovered, err := p.Covered.RGBA()
	require.NoError(t, err)

	// Reference row cells carry the per-base colors; the record row is a
	// match, so it is covered. Corners avoid the drawn glyphs.
	require.Equal(t, wantA, img.RGBAAt(1, 1))
	require.Equal(t, wantT, img.RGBAAt(15, 1))
	require.Equal(t, wantCovered, img.RGBAAt(1, 21))
}

func TestImage_CustomCellSize(t *testing.T) {
	b := singleRecordBatch(t, "AT", "AT", "AT", "AT", alignment.BatchConfig{})
	img := Image{CellWidth: 8, CellHeight: 10}.Render(b)

	require.Equal(t, 16, img.Rect.Dx())
	require.Equal(t, 20, img.Rect.Dy())
}

func TestImage_InsertionBadge(t *testing.T) {
	b := singleRecordBatch(t, "AAAA", "AAAAA", "AAAA-", "AAAAA", alignment.BatchConfig{})
	p := b.Palette()

	img := Image{}.Render(b)
	wantMarker, err := p.Marker.RGBA()
	require.NoError(t, err)

	// The run sits at reference position 4, the right edge: the badge box is
	// clamped inside the image on the record's row.
	require.Equal(t, wantMarker, img.RGBAAt(43, 24))
}

func TestImage_WritePNG(t *testing.T) {
	b := singleRecordBatch(t, "AT", "AT", "AT", "AT", alignment.BatchConfig{})

	var buf bytes.Buffer
	require.NoError(t, Image{}.WritePNG(&buf, b))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, 28, decoded.Bounds().Dx())
	require.Equal(t, 40, decoded.Bounds().Dy())
}

func TestImage_MalformedColorFallsBack(t *testing.T) {
	p := alignment.DefaultPalette()
	p.Bases['A'] = "not-a-color"

	rec, err := alignment.NewRecord("A", "A",
		alignment.RecordConfig{Pair: &alignment.AlignedPair{Target: "A", Query: "A"}})
	require.NoError(t, err)
	b, err := alignment.NewBatch([]*alignment.Record{rec}, alignment.BatchConfig{Palette: &p})
	require.NoError(t, err)

	img := Image{}.Render(b)
	wantFallback, err := p.Fallback.RGBA()
	require.NoError(t, err)
	require.Equal(t, wantFallback, img.RGBAAt(1, 1))
}
