package buffer

import (
	"strings"

	"github.com/iw2rmb/hintline/internal/grapheme"
)

// InsertText inserts text at the cursor and moves the cursor past it. Text
// may contain '\n', which splits the cursor line.
func (b *Buffer) InsertText(s string) {
	s = strings.ReplaceAll(s, "\r", "")
	if s == "" {
		return
	}

	at := b.cursor
	line := b.lines[at.Row]
	prefix := grapheme.Head(line, at.Col)
	suffix := grapheme.Tail(line, at.Col)

	parts := strings.Split(s, "\n")
	repl := make([]string, 0, len(parts))
	if len(parts) == 1 {
		repl = append(repl, prefix+parts[0]+suffix)
		b.cursor = Pos{Row: at.Row, Col: at.Col + grapheme.Count(parts[0])}
	} else {
		repl = append(repl, prefix+parts[0])
		repl = append(repl, parts[1:len(parts)-1]...)
		last := parts[len(parts)-1]
		repl = append(repl, last+suffix)
		b.cursor = Pos{Row: at.Row + len(parts) - 1, Col: grapheme.Count(last)}
	}

	b.spliceRows(at.Row, at.Row+1, repl)
	b.recordChange(Change{Kind: ChangeInsert, At: at, After: s})
}

// InsertRune inserts a single rune at the cursor.
func (b *Buffer) InsertRune(r rune) {
	b.InsertText(string(r))
}

// DeleteBackward applies backspace semantics: it removes the grapheme before
// the cursor, or joins the cursor line with the previous one at column 0.
func (b *Buffer) DeleteBackward() {
	row, col := b.cursor.Row, b.cursor.Col
	if row == 0 && col == 0 {
		return
	}

	if col > 0 {
		line := b.lines[row]
		deleted := grapheme.Slice(line, col-1, col)
		b.lines[row] = grapheme.Head(line, col-1) + grapheme.Tail(line, col)
		b.cursor = Pos{Row: row, Col: col - 1}
		b.recordChange(Change{Kind: ChangeDelete, At: b.cursor, Before: deleted})
		return
	}

	// Join with previous line (delete the newline).
	prev := b.lines[row-1]
	joined := prev + b.lines[row]
	b.cursor = Pos{Row: row - 1, Col: grapheme.Count(prev)}
	b.spliceRows(row-1, row+1, []string{joined})
	b.recordChange(Change{Kind: ChangeDelete, At: b.cursor, Before: "\n"})
}

func (b *Buffer) spliceRows(from, to int, repl []string) {
	out := make([]string, 0, len(b.lines)-(to-from)+len(repl))
	out = append(out, b.lines[:from]...)
	out = append(out, repl...)
	out = append(out, b.lines[to:]...)
	b.lines = out
}
