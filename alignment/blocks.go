package alignment

// block is one maximal run of identical edit ops: columns [start, end).
type block struct {
	start, end int
	op         EditOp
}

func (b block) len() int { return b.end - b.start }

// blockRuns partitions edits into maximal runs, in column order.
func blockRuns(edits []EditOp) []block {
	if len(edits) == 0 {
		return nil
	}
	var runs []block
	cur := block{start: 0, op: edits[0]}
	for i, op := range edits {
		if op != cur.op {
			cur.end = i
			runs = append(runs, cur)
			cur = block{start: i, op: op}
		}
	}
	cur.end = len(edits)
	return append(runs, cur)
}

// mergeIndelCollisions canonicalizes an edit script: wherever an insertion
// run is directly adjacent to a deletion run (an artifact of gap-open cost
// exceeding gap-extend cost), the overlapping span of the two runs becomes a
// mismatch run. The symbols for the merged span come from the insertion side,
// since deletion columns carry blanks.
//
// The scan is a pure left-to-right fold over the block list, holding one
// pending block. For a collision of lengths p (pending) and c (current) with
// overlap m = min(p, c): the non-overlapping head of the pending run is
// emitted with its original op, the m overlapping columns are emitted as
// OpMismatch, and the unconsumed tail of the current run becomes the new
// pending block. Runs of three or more alternating indel blocks are resolved
// strictly pairwise, so the result for long alternations depends on scan
// order; aligners with contiguous-gap bias do not produce such scripts.
//
// Column order is never changed, and a script with no indel adjacency is
// returned as-is, so the fold is idempotent.
func mergeIndelCollisions(symbols []rune, edits []EditOp) ([]rune, []EditOp) {
	runs := blockRuns(edits)
	outSyms := make([]rune, 0, len(symbols))
	outOps := make([]EditOp, 0, len(edits))

	emit := func(start, end int, op EditOp) {
		for i := start; i < end; i++ {
			outSyms = append(outSyms, symbols[i])
			outOps = append(outOps, op)
		}
	}

	if len(runs) == 0 {
		return outSyms, outOps
	}
	pending := runs[0]
	for _, cur := range runs[1:] {
		collision := (pending.op == OpInsert && cur.op == OpDelete) ||
			(pending.op == OpDelete && cur.op == OpInsert)
		if !collision {
			emit(pending.start, pending.end, pending.op)
			pending = cur
			continue
		}

		m := pending.len()
		if cur.len() < m {
			m = cur.len()
		}

		// Head of the pending run that the overlap does not reach.
		emit(pending.start, pending.end-m, pending.op)

		// Overlap becomes mismatches, sourced from the insertion run.
		for i := 0; i < m; i++ {
			var sym rune
			if pending.op == OpInsert {
				sym = symbols[pending.end-m+i]
			} else {
				sym = symbols[cur.start+i]
			}
			outSyms = append(outSyms, sym)
			outOps = append(outOps, OpMismatch)
		}

		// Whatever the overlap left of the current run stays pending; if the
		// runs cancelled exactly this is empty and the next run takes over.
		pending = block{start: cur.start + m, end: cur.end, op: cur.op}
	}
	emit(pending.start, pending.end, pending.op)

	return outSyms, outOps
}
