package hint

import "github.com/iw2rmb/hintline/internal/grapheme"

// backupLine is the original text of a row an overlay replaced.
type backupLine struct {
	row  int
	text string
}

// target pairs a hint with the row it is drawn on.
type target struct {
	row  int
	hint string
}

// layout places hints on the rows directly above at. The rows that exist in
// the buffer take hints in order, so the first hints always draw and any left
// over are dropped. Targets come back in ascending row order.
func layout(hints []string, at Cursor, rowCount int) []target {
	row0 := at.Row()
	n := len(hints)
	out := make([]target, 0, n)
	for row := row0 - n; row < row0; row++ {
		if row < 0 || row >= rowCount {
			continue
		}
		out = append(out, target{row: row, hint: hints[len(out)]})
	}
	return out
}

// hintWidth is the column count of the widest hint.
func hintWidth(hints []string) int {
	width := 0
	for _, h := range hints {
		width = max(width, grapheme.Count(h))
	}
	return width
}

// renderLine splices hint into line at col. The hint is padded to width plus
// one trailing space and replaces columns [col, col+width+1) of the line.
// Past column 0 it gains a leading space and starts one column earlier.
func renderLine(line, hint string, width, col int, cfg Config) string {
	col = max(col, 0)
	text := grapheme.PadRight(hint, width) + " "
	start := col
	end := col + width + 1
	if col > 0 {
		text = " " + text
		start--
	}

	prefix := grapheme.Head(line, start)
	if cfg.SanitizePrefix {
		prefix = sanitize(prefix, cfg.SanitizeChars)
	}
	return prefix + cfg.Decorate(text) + grapheme.Tail(line, end)
}
