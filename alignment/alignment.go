package alignment

import (
	"errors"
	"fmt"
	"strings"
)

// EditOp classifies one column of an alignment.
type EditOp int

// Per-column edit operations, from the target's point of view.
const (
	OpMatch    EditOp = iota // target and query agree
	OpMismatch               // query substitutes a different base
	OpInsert                 // query contributes a base the target lacks
	OpDelete                 // target contributes a base the query lacks
)

// Gap is the placeholder symbol marking an alignment column where one side
// contributes no base.
const Gap = '-'

// Sentinel errors returned by record and batch construction. They are always
// wrapped with call-site context; test with errors.Is.
var (
	ErrUnequalLength = errors.New("aligned pair halves have unequal length")
	ErrEmptyBatch    = errors.New("batch has no records")
	ErrAlphabet      = errors.New("symbol outside the configured alphabet")
)

// AlignedPair is a pairwise alignment: two equal-length strings over the
// sequence alphabet plus Gap. Target holds the reference side, Query the
// read side.
type AlignedPair struct {
	Target string
	Query  string
}

// Aligner produces an optimal AlignedPair for a raw target/query. The merge
// step assumes the aligner keeps indel runs contiguous (a gap-open cost above
// the gap-extend cost); GapAligner has that property.
type Aligner interface {
	Align(target, query string) (AlignedPair, error)
}

// RecordConfig holds optional inputs to NewRecord.
type RecordConfig struct {
	// Pair supplies a precomputed alignment. When nil, NewRecord asks
	// Aligner for one.
	Pair *AlignedPair

	// Aligner computes the alignment when Pair is nil. Nil means GapAligner.
	Aligner Aligner

	// Alphabet, when non-empty, enables strict symbol checking: every
	// non-gap symbol of the inputs must appear in it.
	Alphabet string
}

// Record is an immutable view of one query aligned against a target. Its
// symbol and edit sequences are canonical: adjacent insertion/deletion runs
// produced by gap-penalty bias have been merged into mismatch runs.
//
// Invariants:
//   - len(symbols) == len(edits) <= len of the raw aligned pair
//   - insertions + deletions + mutations + matches == len(edits)
//   - no insertion run is directly adjacent to a deletion run
type Record struct {
	target string
	query  string
	pair   AlignedPair

	symbols []rune
	edits   []EditOp

	insertions int
	deletions  int
	mutations  int
}

// NewRecord builds a Record from raw target/query sequences. If cfg.Pair is
// nil the alignment is requested from cfg.Aligner (GapAligner by default).
// The raw pair is encoded into per-column symbols and edit ops, then
// normalized by merging indel collisions.
//
// Construction is atomic: on any error no Record is produced.
func NewRecord(target, query string, cfg RecordConfig) (*Record, error) {
	if cfg.Alphabet != "" {
		if err := checkAlphabet(target, cfg.Alphabet); err != nil {
			return nil, fmt.Errorf("alignment: NewRecord: target: %w", err)
		}
		if err := checkAlphabet(query, cfg.Alphabet); err != nil {
			return nil, fmt.Errorf("alignment: NewRecord: query: %w", err)
		}
	}

	var pair AlignedPair
	if cfg.Pair != nil {
		pair = *cfg.Pair
	} else {
		al := cfg.Aligner
		if al == nil {
			al = GapAligner{}
		}
		p, err := al.Align(target, query)
		if err != nil {
			return nil, fmt.Errorf("alignment: NewRecord: align: %w", err)
		}
		pair = p
	}

	tr := []rune(pair.Target)
	qr := []rune(pair.Query)
	if len(tr) != len(qr) {
		return nil, fmt.Errorf("alignment: NewRecord: %w (target %d, query %d)", ErrUnequalLength, len(tr), len(qr))
	}
	if cfg.Alphabet != "" {
		if err := checkAlphabet(strings.ReplaceAll(pair.Target, string(Gap), ""), cfg.Alphabet); err != nil {
			return nil, fmt.Errorf("alignment: NewRecord: aligned target: %w", err)
		}
		if err := checkAlphabet(strings.ReplaceAll(pair.Query, string(Gap), ""), cfg.Alphabet); err != nil {
			return nil, fmt.Errorf("alignment: NewRecord: aligned query: %w", err)
		}
	}

	symbols, edits := encodeColumns(tr, qr)
	symbols, edits = mergeIndelCollisions(symbols, edits)

	r := &Record{
		target:  target,
		query:   query,
		pair:    pair,
		symbols: symbols,
		edits:   edits,
	}
	for _, op := range edits {
		switch op {
		case OpInsert:
			r.insertions++
		case OpDelete:
			r.deletions++
		case OpMismatch:
			r.mutations++
		}
	}
	return r, nil
}

// encodeColumns classifies each column of an aligned pair and picks its
// display symbol: the query base for mismatches and insertions, the shared
// base for matches, and a blank for deletions.
func encodeColumns(target, query []rune) ([]rune, []EditOp) {
	symbols := make([]rune, len(target))
	edits := make([]EditOp, len(target))
	for i := range target {
		switch {
		case target[i] == query[i]:
			symbols[i] = target[i]
			edits[i] = OpMatch
		case target[i] == Gap:
			symbols[i] = query[i]
			edits[i] = OpInsert
		case query[i] == Gap:
			symbols[i] = ' '
			edits[i] = OpDelete
		default:
			symbols[i] = query[i]
			edits[i] = OpMismatch
		}
	}
	return symbols, edits
}

func checkAlphabet(s, alphabet string) error {
	for _, r := range s {
		if r != Gap && !strings.ContainsRune(alphabet, r) {
			return fmt.Errorf("%w: %q", ErrAlphabet, r)
		}
	}
	return nil
}

// Target returns the raw (ungapped) target sequence.
func (r *Record) Target() string { return r.target }

// Query returns the raw (ungapped) query sequence.
func (r *Record) Query() string { return r.query }

// Pair returns the raw aligned pair the record was built from.
func (r *Record) Pair() AlignedPair { return r.pair }

// Symbols returns a copy of the canonical display-symbol sequence.
func (r *Record) Symbols() []rune {
	out := make([]rune, len(r.symbols))
	copy(out, r.symbols)
	return out
}

// Edits returns a copy of the canonical edit-op sequence.
func (r *Record) Edits() []EditOp {
	out := make([]EditOp, len(r.edits))
	copy(out, r.edits)
	return out
}

// Len is the canonical alignment length (columns after merging).
func (r *Record) Len() int { return len(r.edits) }

// Insertions is the number of canonical insertion columns.
func (r *Record) Insertions() int { return r.insertions }

// Deletions is the number of canonical deletion columns.
func (r *Record) Deletions() int { return r.deletions }

// Mutations is the number of canonical mismatch columns.
func (r *Record) Mutations() int { return r.mutations }

// Matches is the number of canonical match columns.
func (r *Record) Matches() int {
	return len(r.edits) - r.insertions - r.deletions - r.mutations
}

var editLetters = map[EditOp]rune{
	OpMatch:    ' ',
	OpMismatch: 'M',
	OpInsert:   'I',
	OpDelete:   'D',
}

// String renders the record for debugging: the raw target, the canonical
// query symbols, and one letter per edit op (space/M/I/D).
func (r *Record) String() string {
	var edits strings.Builder
	for _, op := range r.edits {
		edits.WriteRune(editLetters[op])
	}
	return "Target: " + r.target + "\n Query: " + string(r.symbols) + "\n Edits: " + edits.String()
}
