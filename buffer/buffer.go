package buffer

import (
	"strings"

	"github.com/iw2rmb/hintline/internal/grapheme"
)

type Options struct {
	// ID is the stable identity hosts use as a registry key.
	ID int

	ChangeLimit int // default: 1000
}

// Buffer is an ordered, mutable sequence of text lines plus a cursor.
type Buffer struct {
	id      int
	lines   []string
	version uint64
	edits   int

	cursor Pos

	opt     Options
	changes []Change
}

func New(text string, opt Options) *Buffer {
	if opt.ChangeLimit == 0 {
		opt.ChangeLimit = 1000
	}
	return &Buffer{
		id:    opt.ID,
		lines: splitLines(text),
		opt:   opt,
	}
}

// NewMarked builds a Buffer from text containing a single "|" cursor marker.
// The marker is removed and the cursor placed where it stood. Without a
// marker the cursor stays at (0, 0).
func NewMarked(text string, opt Options) *Buffer {
	clean, pos, _ := CutMarker(text)
	b := New(clean, opt)
	b.cursor = b.clampPos(pos)
	return b
}

// CutMarker removes the first "|" from text and reports its position.
func CutMarker(text string) (string, Pos, bool) {
	before, after, ok := strings.Cut(text, "|")
	if !ok {
		return text, Pos{}, false
	}
	row := strings.Count(before, "\n")
	lineStart := strings.LastIndexByte(before, '\n') + 1
	return before + after, Pos{Row: row, Col: grapheme.Count(before[lineStart:])}, true
}

func (b *Buffer) ID() int { return b.id }

func (b *Buffer) Len() int { return len(b.lines) }

// Line returns the text of row, or "" when row is out of range.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return b.lines[row]
}

// Lines returns a copy of every line.
func (b *Buffer) Lines() []string {
	return append([]string(nil), b.lines...)
}

// SetLine replaces the text of row. Out of range rows are ignored. Each
// accepted call counts as one edit, even when text is unchanged.
func (b *Buffer) SetLine(row int, text string) {
	if row < 0 || row >= len(b.lines) {
		return
	}
	text = sanitizeLine(text)
	before := b.lines[row]
	b.lines[row] = text
	b.recordChange(Change{
		Kind:   ChangeSetLine,
		At:     Pos{Row: row},
		Before: before,
		After:  text,
	})
}

func (b *Buffer) Text() string {
	return strings.Join(b.lines, "\n")
}

func (b *Buffer) Version() uint64 { return b.version }

// Edits returns the number of mutations applied so far.
func (b *Buffer) Edits() int { return b.edits }

func (b *Buffer) Cursor() Pos { return b.cursor }

// SetCursor clamps p into the document and moves the cursor there. Cursor
// moves do not count as edits.
func (b *Buffer) SetCursor(p Pos) {
	b.cursor = b.clampPos(p)
}

func (b *Buffer) lineLen(row int) int {
	return grapheme.Count(b.Line(row))
}

func (b *Buffer) clampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.lineLen)
}

func splitLines(text string) []string {
	return strings.Split(text, "\n")
}

// sanitizeLine keeps a single line single: line breaks are dropped.
func sanitizeLine(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	s = strings.ReplaceAll(s, "\r", "")
	return strings.ReplaceAll(s, "\n", "")
}
