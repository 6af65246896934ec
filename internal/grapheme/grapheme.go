// Package grapheme does column arithmetic on grapheme clusters.
//
// Every column in hintline (buffer cursor, hint width, splice points) counts
// grapheme clusters, so "é" is one column.
package grapheme

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// offset returns the byte offset of column col in text, clamped to
// [0, len(text)].
func offset(text string, col int) int {
	if col <= 0 || text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	idx := 0
	for g.Next() {
		if idx == col {
			from, _ := g.Positions()
			return from
		}
		idx++
	}
	return len(text)
}

// Slice returns the columns [start, end) of text. Out of range bounds are
// clamped, so a slice past the end is empty.
func Slice(text string, start, end int) string {
	if end <= start {
		return ""
	}
	from := offset(text, start)
	to := offset(text, end)
	if to <= from {
		return ""
	}
	return text[from:to]
}

// Head returns the first n columns of text, or all of it when shorter.
func Head(text string, n int) string {
	return text[:offset(text, n)]
}

// Tail returns text from column n onward, or "" when text is shorter.
func Tail(text string, n int) string {
	return text[offset(text, n):]
}

// PadRight appends spaces until text is width columns wide.
func PadRight(text string, width int) string {
	n := width - Count(text)
	if n <= 0 {
		return text
	}
	return text + strings.Repeat(" ", n)
}
