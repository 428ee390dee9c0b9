package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/codalotl/seqviz/alignment"
	"github.com/codalotl/seqviz/internal/simplelogger"
)

// Terminal renders a batch as styled text for a terminal: one line per
// matrix row, one styled cell per column, an optional title line first.
//
// In truncated batches the insertion columns are collapsed out of the grid,
// so each record line is annotated on the right with one "+<len>@<pos>"
// marker per insertion run, in reference coordinates.
type Terminal struct {
	// Title, when non-empty, becomes a "<Title> | Alignments: N" heading.
	Title string

	// Color enables ANSI styling of cells and markers. Without it the
	// output is the bare text matrix plus markers.
	Color bool

	// MaxWidth clamps the rendered grid to at most that many terminal
	// columns, marking clipped lines with '…'. Zero means no clamp; see
	// DetectWidth.
	MaxWidth int
}

// Render returns the batch as a newline-joined string. The output is for
// human eyes, not parsing.
func (t Terminal) Render(b *alignment.Batch) string {
	p := b.Palette()
	simplelogger.Log("render: terminal: %d rows x %d cols (truncate=%v color=%v)", b.Rows(), b.Width, b.Truncate, t.Color)

	heading := fmt.Sprintf("Alignments: %d", len(b.Records))
	if t.Title != "" {
		heading = t.Title + " | " + heading
	}
	if t.Color {
		heading = lipgloss.NewStyle().Bold(true).Render(heading)
	}
	lines := []string{heading}

	// Cells are square-ish: every cell is padded to the widest symbol so
	// rows stay aligned even with wide runes in the alphabet.
	cellWidth := 1
	for _, row := range b.TextMatrix {
		for _, r := range row {
			if w := runewidth.RuneWidth(r); w > cellWidth {
				cellWidth = w
			}
		}
	}

	cols := b.Width
	clipped := false
	if t.MaxWidth > 0 && cols*cellWidth > t.MaxWidth {
		cols = (t.MaxWidth - 1) / cellWidth
		if cols < 0 {
			cols = 0
		}
		clipped = true
	}

	styles := map[alignment.Color]lipgloss.Style{}
	styleFor := func(c alignment.Color) lipgloss.Style {
		s, ok := styles[c]
		if !ok {
			s = lipgloss.NewStyle().Background(lipgloss.Color(string(c))).Foreground(lipgloss.Color("#000000"))
			styles[c] = s
		}
		return s
	}

	for i, row := range b.TextMatrix {
		var sb strings.Builder
		for j := 0; j < cols && j < len(row); j++ {
			cell := runewidth.FillRight(string(row[j]), cellWidth)
			if t.Color {
				cell = styleFor(b.ColorMatrix[i][j]).Render(cell)
			}
			sb.WriteString(cell)
		}
		if clipped {
			sb.WriteString("…")
		}
		if b.Truncate && i > 0 {
			sb.WriteString(markers(b.Records[i-1], p, t.Color))
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}

// markers formats a record's collapsed insertion runs, or "" when it has
// none.
func markers(r *alignment.Record, p alignment.Palette, color bool) string {
	runs := r.InsertionRuns()
	if len(runs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(runs))
	for _, run := range runs {
		parts = append(parts, fmt.Sprintf("+%d@%d", run.Len, run.Pos))
	}
	s := strings.Join(parts, " ")
	if color {
		s = lipgloss.NewStyle().
			Background(lipgloss.Color(string(p.Marker))).
			Foreground(lipgloss.Color("#ffffff")).
			Render(s)
	}
	return "  " + s
}

// DetectWidth reports the column width of the attached terminal, or 0 when
// stdout is not a terminal. Feed it to Terminal.MaxWidth to fit the output.
func DetectWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return w
}
