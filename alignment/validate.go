package alignment

import "fmt"

// validate checks the Record invariants and returns an error on the first
// violation. Construction upholds these; validate exists so tests can assert
// them directly.
func (r *Record) validate() error {
	if len(r.symbols) != len(r.edits) {
		return fmt.Errorf("symbols/edits length mismatch: %d vs %d", len(r.symbols), len(r.edits))
	}

	var ins, del, mut, match int
	for i, op := range r.edits {
		switch op {
		case OpInsert:
			ins++
		case OpDelete:
			del++
			if r.symbols[i] != ' ' {
				return fmt.Errorf("edits[%d]: OpDelete requires a blank symbol, got %q", i, r.symbols[i])
			}
		case OpMismatch:
			mut++
		case OpMatch:
			match++
		default:
			return fmt.Errorf("edits[%d]: unknown op %d", i, op)
		}
	}
	if ins != r.insertions || del != r.deletions || mut != r.mutations {
		return fmt.Errorf("counts disagree with edits: stored (%d,%d,%d), tallied (%d,%d,%d)",
			r.insertions, r.mutations, r.deletions, ins, mut, del)
	}
	if ins+del+mut+match != len(r.edits) {
		return fmt.Errorf("counts do not sum to length %d", len(r.edits))
	}

	runs := blockRuns(r.edits)
	for i := 1; i < len(runs); i++ {
		a, b := runs[i-1].op, runs[i].op
		if (a == OpInsert && b == OpDelete) || (a == OpDelete && b == OpInsert) {
			return fmt.Errorf("runs[%d..%d]: insertion run adjacent to deletion run survived merging", i-1, i)
		}
	}
	return nil
}
