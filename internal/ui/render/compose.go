package render

import (
	"cmp"
	"slices"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Layer is a block of pre-rendered lines placed on a canvas at (X, Y).
// X and Y may be negative or past the canvas edge; Compose clips them.
type Layer struct {
	X, Y  int
	Width int
	Lines []string
}

// Block normalizes s into exactly height lines of exactly width cells.
// Longer lines are cut, shorter ones padded.
func Block(s string, width, height int) []string {
	lines := strings.Split(s, "\n")
	out := make([]string, height)
	for i := range height {
		if i >= len(lines) {
			out[i] = EmptyLine(width)
			continue
		}
		out[i] = fit(ansi.Truncate(lines[i], width, ""), width)
	}
	return out
}

// Compose flattens layers onto a width x height canvas of spaces. Where two
// layers overlap on a row, the one with the smaller X keeps the cells.
func Compose(width, height int, layers []Layer) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	sorted := slices.Clone(layers)
	slices.SortStableFunc(sorted, func(a, b Layer) int {
		return cmp.Compare(a.X, b.X)
	})

	rows := make([]string, height)
	for y := range height {
		var b strings.Builder
		col := 0
		for _, l := range sorted {
			ly := y - l.Y
			if ly < 0 || ly >= len(l.Lines) {
				continue
			}
			start := max(l.X, col, 0)
			end := min(l.X+l.Width, width)
			if end <= start {
				continue
			}
			b.WriteString(strings.Repeat(" ", start-col))
			b.WriteString(fit(ansi.Cut(l.Lines[ly], start-l.X, end-l.X), end-start))
			col = end
		}
		b.WriteString(strings.Repeat(" ", width-col))
		rows[y] = b.String()
	}
	return strings.Join(rows, "\n")
}

// fit pads s with spaces up to width cells. Cutting through a wide
// character can leave a line one cell short.
func fit(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
