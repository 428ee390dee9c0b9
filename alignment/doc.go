// Package alignment builds render-ready visual diffs of query sequences
// against a reference (target) sequence.
//
// Representation: a Record holds one aligned query. Its canonical form is a
// pair of parallel sequences — display symbols and per-column EditOps — plus
// derived counts. Each column has an Op:
//   - OpMatch: target and query agree
//   - OpMismatch: the query substitutes a base
//   - OpInsert: query-only content (the target side is a gap)
//   - OpDelete: target-only content (the query side is a gap)
//
// Invariants:
//   - symbols and edits always have the same length, at most the raw
//     alignment length
//   - insertions + deletions + mutations + matches == number of columns
//   - no insertion run is directly adjacent to a deletion run
//
// Canonicalization: aligners whose gap-open cost exceeds their gap-extend
// cost keep indel runs contiguous, which tends to leave an insertion run
// butted against a deletion run where a substitution actually happened. The
// construction merges the overlap of every such pair into a mismatch run, so
// the rendered diff shows one coherent substitution. A script with no such
// adjacency passes through unchanged.
//
// Getting a record: use NewRecord with a precomputed AlignedPair, or let the
// configured Aligner (GapAligner by default) compute one:
//
//	rec, err := alignment.NewRecord("AAATAAA", "AAAGAAA", alignment.RecordConfig{})
//
// Views: ColorRow and SymbolRow produce per-column display rows, either in
// full coordinates or truncated to reference coordinates (insertion columns
// dropped); InsertionRuns reports where the dropped runs belong. NewBatch
// sorts a group of records (SortRecords order: fewest insertions, then
// mutations, then deletions) and assembles the color/text matrices a
// renderer consumes; see the render package for two such renderers.
package alignment
