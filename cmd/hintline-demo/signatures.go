package main

import (
	"strings"
	"unicode"

	"github.com/iw2rmb/hintline/internal/grapheme"
)

// signatures maps a call name to its overloads, one hint line each.
var signatures = map[string][]string{
	"addCrew":    {"String name, Job job", "Crew crew"},
	"setName":    {"String name"},
	"Printf":     {"format string, a ...any"},
	"Println":    {"a ...any"},
	"NewManager": {"buf Lines, cfg Config"},
	"Show":       {"hints []string, at Cursor"},
}

// hintsAt returns the signature hints for the innermost unclosed call left of
// col on line.
func hintsAt(line string, col int) []string {
	name, ok := callAt(line, col)
	if !ok {
		return nil
	}
	return signatures[name]
}

// callAt finds the name of the innermost call whose "(" is still open at col.
func callAt(line string, col int) (string, bool) {
	prefix := grapheme.Head(line, col)
	depth := 0
	for i := len(prefix) - 1; i >= 0; i-- {
		switch prefix[i] {
		case ')':
			depth++
		case '(':
			if depth > 0 {
				depth--
				continue
			}
			name := identBefore(prefix[:i])
			return name, name != ""
		}
	}
	return "", false
}

func identBefore(s string) string {
	start := strings.LastIndexFunc(s, func(r rune) bool {
		return r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return s[start+1:]
}
