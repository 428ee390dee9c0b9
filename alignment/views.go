package alignment

// InsertionRun marks one maximal run of canonical insertion columns. Pos is
// expressed in truncated (reference) coordinates: the run's start offset by
// the insertion columns consumed before it, so a renderer can place one
// collapsed marker of Len columns at the right reference position.
type InsertionRun struct {
	Pos int
	Len int
}

// ColorRow maps each canonical column to a display color: mismatches and
// insertions to their base color, matches to Covered, deletions to Blank.
// With truncate set, insertion columns are dropped so the row lives in
// reference coordinates.
func (r *Record) ColorRow(p Palette, truncate bool) []Color {
	row := make([]Color, 0, len(r.edits))
	for i, op := range r.edits {
		switch op {
		case OpInsert:
			if truncate {
				continue
			}
			row = append(row, p.Base(r.symbols[i]))
		case OpMismatch:
			row = append(row, p.Base(r.symbols[i]))
		case OpMatch:
			row = append(row, p.Covered)
		case OpDelete:
			row = append(row, p.Blank)
		}
	}
	return row
}

// SymbolRow returns the canonical display symbols, filtered by the same rule
// as ColorRow: with truncate set, insertion columns are dropped.
func (r *Record) SymbolRow(truncate bool) []rune {
	if !truncate {
		return r.Symbols()
	}
	row := make([]rune, 0, len(r.symbols))
	for i, op := range r.edits {
		if op == OpInsert {
			continue
		}
		row = append(row, r.symbols[i])
	}
	return row
}

// InsertionRuns lists the record's maximal insertion runs in truncated
// coordinates, in column order.
func (r *Record) InsertionRuns() []InsertionRun {
	var runs []InsertionRun
	consumed := 0
	for _, b := range blockRuns(r.edits) {
		if b.op != OpInsert {
			continue
		}
		runs = append(runs, InsertionRun{Pos: b.start - consumed, Len: b.len()})
		consumed += b.len()
	}
	return runs
}
