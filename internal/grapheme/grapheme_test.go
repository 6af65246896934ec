package grapheme

import "testing"

const mixed = "a" + "é" + "👨‍👩‍👧‍👦" + "b"

func TestSplitAndCount_MultiRuneGraphemes(t *testing.T) {
	got := Split(mixed)
	if len(got) != 4 {
		t.Fatalf("split len=%d, want %d", len(got), 4)
	}
	if got[1] != "é" {
		t.Fatalf("split[1]=%q, want %q", got[1], "é")
	}
	if c := Count(mixed); c != 4 {
		t.Fatalf("count=%d, want %d", c, 4)
	}
	if c := Count(""); c != 0 {
		t.Fatalf("count of empty=%d, want 0", c)
	}
}

func TestSlice_GraphemeSafe(t *testing.T) {
	if got, want := Slice(mixed, 1, 3), "é👨‍👩‍👧‍👦"; got != want {
		t.Fatalf("slice=%q, want %q", got, want)
	}
	if got := Slice(mixed, 5, 6); got != "" {
		t.Fatalf("slice past end=%q, want empty", got)
	}
	if got := Slice(mixed, 3, 1); got != "" {
		t.Fatalf("reversed slice=%q, want empty", got)
	}
	if got, want := Slice(mixed, -2, 1), "a"; got != want {
		t.Fatalf("slice from negative=%q, want %q", got, want)
	}
}

func TestHeadTail(t *testing.T) {
	cases := []struct {
		text string
		n    int
		head string
		tail string
	}{
		{text: "bars", n: 3, head: "bar", tail: "s"},
		{text: "bars", n: 0, head: "", tail: "bars"},
		{text: "bars", n: -1, head: "", tail: "bars"},
		{text: "bars", n: 4, head: "bars", tail: ""},
		{text: "bars", n: 99, head: "bars", tail: ""},
		{text: mixed, n: 2, head: "aé", tail: "👨‍👩‍👧‍👦b"},
		{text: "", n: 3, head: "", tail: ""},
	}
	for _, tc := range cases {
		if got := Head(tc.text, tc.n); got != tc.head {
			t.Fatalf("Head(%q, %d)=%q, want %q", tc.text, tc.n, got, tc.head)
		}
		if got := Tail(tc.text, tc.n); got != tc.tail {
			t.Fatalf("Tail(%q, %d)=%q, want %q", tc.text, tc.n, got, tc.tail)
		}
	}
}

func TestPadRight(t *testing.T) {
	if got, want := PadRight("ab", 4), "ab  "; got != want {
		t.Fatalf("pad=%q, want %q", got, want)
	}
	if got, want := PadRight("abcd", 2), "abcd"; got != want {
		t.Fatalf("pad wider text=%q, want %q", got, want)
	}
	if got, want := PadRight("é", 2), "é "; got != want {
		t.Fatalf("pad combining=%q, want %q", got, want)
	}
}
