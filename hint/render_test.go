package hint

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLayout(t *testing.T) {
	cases := []struct {
		name     string
		hints    []string
		at       Cursor
		rowCount int
		want     []target
	}{
		{
			name:     "all rows exist",
			hints:    []string{"a", "b"},
			at:       Cursor{Line: 3},
			rowCount: 3,
			want:     []target{{row: 0, hint: "a"}, {row: 1, hint: "b"}},
		},
		{
			name:     "top rows missing",
			hints:    []string{"a", "b", "c"},
			at:       Cursor{Line: 2},
			rowCount: 3,
			want:     []target{{row: 0, hint: "a"}},
		},
		{
			name:     "cursor on first line",
			hints:    []string{"a"},
			at:       Cursor{Line: 1},
			rowCount: 1,
			want:     []target{},
		},
		{
			name:     "cursor past end",
			hints:    []string{"a", "b", "c"},
			at:       Cursor{Line: 4},
			rowCount: 2,
			want:     []target{{row: 0, hint: "a"}, {row: 1, hint: "b"}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := layout(tc.hints, tc.at, tc.rowCount)
			if diff := cmp.Diff(tc.want, got, cmp.AllowUnexported(target{})); diff != "" {
				t.Fatalf("layout mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHintWidth(t *testing.T) {
	if got := hintWidth(nil); got != 0 {
		t.Fatalf("width=%d, want 0", got)
	}
	if got := hintWidth([]string{"ab", "ñandú", "c"}); got != 5 {
		t.Fatalf("width=%d, want 5", got)
	}
}

func TestRenderLine(t *testing.T) {
	braces := Config{Decorate: Format("{%s}")}
	cases := []struct {
		name  string
		line  string
		hint  string
		width int
		col   int
		cfg   Config
		want  string
	}{
		{name: "column zero", line: "abcdef", hint: "ab", width: 2, col: 0, cfg: braces, want: "{ab }def"},
		{name: "leading pad", line: "bars", hint: "biz, baz", width: 8, col: 4, cfg: braces, want: "bar{ biz, baz }"},
		{name: "right pad", line: "0123456789ABCDEF", hint: "a", width: 3, col: 2, cfg: braces, want: "0{ a   }6789ABCDEF"},
		{name: "plain", line: "0123456789", hint: "a", width: 1, col: 2, cfg: Config{Decorate: Plain}, want: "0 a 456789"},
		{name: "grapheme columns", line: "ééééééé", hint: "x", width: 1, col: 2, cfg: braces, want: "é{ x }ééé"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := renderLine(tc.line, tc.hint, tc.width, tc.col, tc.cfg); got != tc.want {
				t.Fatalf("renderLine=%q, want %q", got, tc.want)
			}
		})
	}
}
