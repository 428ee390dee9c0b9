package alignment

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// GapAligner is the default Aligner. It derives a gapped pair from a
// character-level diff of the two sequences, with cleanup that coalesces
// edits into maximal runs. That keeps each insertion and deletion run
// contiguous (the equivalent of a gap-open cost above the gap-extend cost),
// which is the shape the indel merge step expects.
type GapAligner struct{}

// Align computes an AlignedPair for target and query. The returned halves
// always have equal length, and stripping gaps from them reproduces the
// inputs. Align never fails; the error is part of the Aligner contract.
func (GapAligner) Align(target, query string) (AlignedPair, error) {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(target, query, false)
	diffs = dmp.DiffCleanupMerge(diffs)

	var tb, qb strings.Builder
	for _, d := range diffs {
		n := len([]rune(d.Text))
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			tb.WriteString(d.Text)
			qb.WriteString(d.Text)
		case diffmatchpatch.DiffDelete:
			// Present in the target only: the query side gaps.
			tb.WriteString(d.Text)
			qb.WriteString(strings.Repeat(string(Gap), n))
		case diffmatchpatch.DiffInsert:
			// Present in the query only: the target side gaps.
			tb.WriteString(strings.Repeat(string(Gap), n))
			qb.WriteString(d.Text)
		}
	}
	return AlignedPair{Target: tb.String(), Query: qb.String()}, nil
}
