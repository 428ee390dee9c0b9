package alignment

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBatch_Truncated(t *testing.T) {
	p := DefaultPalette()
	one := pairRecord(t, "AAATAAA", "AAAGAAA", "AAATAAA", "AAAGAAA")
	two := pairRecord(t, "AAATAAA", "AAATAAA", "AAATAAA", "AAATAAA")

	b, err := NewBatch([]*Record{one, two}, BatchConfig{})
	require.NoError(t, err)

	require.True(t, b.Truncate)
	require.Equal(t, 7, b.Width)
	require.Equal(t, 3, b.Rows())
	require.Equal(t, "AAATAAA", b.Reference)

	// The perfect match sorts ahead of the single mismatch.
	require.Equal(t, []*Record{two, one}, b.Records)

	// Reference row: per-base colors, raw target text.
	require.Equal(t, "AAATAAA", string(b.TextMatrix[0]))
	require.Equal(t, []Color{
		p.Bases['A'], p.Bases['A'], p.Bases['A'], p.Bases['T'], p.Bases['A'], p.Bases['A'], p.Bases['A'],
	}, b.ColorMatrix[0])

	// Record rows follow sorted order.
	require.Equal(t, "AAATAAA", string(b.TextMatrix[1]))
	require.Equal(t, "AAAGAAA", string(b.TextMatrix[2]))
	require.Equal(t, p.Bases['G'], b.ColorMatrix[2][3])
	require.Equal(t, p.Covered, b.ColorMatrix[2][0])

	for i := range b.ColorMatrix {
		require.Len(t, b.ColorMatrix[i], b.Width)
		require.Len(t, b.TextMatrix[i], b.Width)
	}
}

func TestNewBatch_FullModeWidthAndPadding(t *testing.T) {
	p := DefaultPalette()
	inserted := pairRecord(t, "AAAA", "AAAAA", "AAAA-", "AAAAA")

	b, err := NewBatch([]*Record{inserted}, BatchConfig{Full: true})
	require.NoError(t, err)

	require.False(t, b.Truncate)
	require.Equal(t, 5, b.Width)

	// Reference is 4 long, padded with blank/space.
	require.Equal(t, "AAAA ", string(b.TextMatrix[0]))
	require.Equal(t, p.Blank, b.ColorMatrix[0][4])

	// Full mode keeps the insertion column, colored per base.
	require.Equal(t, "AAAAA", string(b.TextMatrix[1]))
	require.Equal(t, p.Bases['A'], b.ColorMatrix[1][4])
}

func TestNewBatch_TruncatedDropsInsertionColumns(t *testing.T) {
	inserted := pairRecord(t, "AAAA", "AAAAA", "AAAA-", "AAAAA")

	b, err := NewBatch([]*Record{inserted}, BatchConfig{})
	require.NoError(t, err)

	require.Equal(t, 4, b.Width)
	require.Equal(t, "AAAA", string(b.TextMatrix[1]))
}

func TestNewBatch_Empty(t *testing.T) {
	_, err := NewBatch(nil, BatchConfig{})
	require.ErrorIs(t, err, ErrEmptyBatch)
}

func TestNewBatch_CustomPalette(t *testing.T) {
	p := DefaultPalette()
	p.Bases['A'] = "#101010"

	rec := pairRecord(t, "A", "A", "A", "A")
	b, err := NewBatch([]*Record{rec}, BatchConfig{Palette: &p})
	require.NoError(t, err)

	require.Equal(t, Color("#101010"), b.ColorMatrix[0][0])
	require.Equal(t, p, b.Palette())
}

func TestNewBatch_DoesNotMutateInput(t *testing.T) {
	one := pairRecord(t, "AAAA", "AAAT", "AAAA", "AAAT")
	two := pairRecord(t, "AAAA", "AAAA", "AAAA", "AAAA")

	in := []*Record{one, two}
	_, err := NewBatch(in, BatchConfig{})
	require.NoError(t, err)

	require.Equal(t, []*Record{one, two}, in)
}
