package buffer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuffer_LastChange_Initial(t *testing.T) {
	b := New("a", Options{})
	if _, ok := b.LastChange(); ok {
		t.Fatalf("expected no initial change")
	}

	b.DeleteBackward() // no-op at BOF
	if _, ok := b.LastChange(); ok {
		t.Fatalf("expected no change after no-op mutation")
	}
}

func TestBuffer_Changes_RecordsEveryMutation(t *testing.T) {
	b := NewMarked("ab|\ncd", Options{})
	b.SetLine(1, "CD")
	b.InsertText("X")
	b.DeleteBackward()

	want := []Change{
		{Kind: ChangeSetLine, At: Pos{Row: 1}, Before: "cd", After: "CD", VersionBefore: 0, VersionAfter: 1},
		{Kind: ChangeInsert, At: Pos{Row: 0, Col: 2}, After: "X", VersionBefore: 1, VersionAfter: 2},
		{Kind: ChangeDelete, At: Pos{Row: 0, Col: 2}, Before: "X", VersionBefore: 2, VersionAfter: 3},
	}
	if diff := cmp.Diff(want, b.Changes()); diff != "" {
		t.Fatalf("changes mismatch (-want +got):\n%s", diff)
	}

	last, ok := b.LastChange()
	if !ok {
		t.Fatalf("expected last change")
	}
	if got, want := last.Kind, ChangeDelete; got != want {
		t.Fatalf("kind=%v, want %v", got, want)
	}
}

func TestBuffer_Changes_RespectsLimit(t *testing.T) {
	b := New("a", Options{ChangeLimit: 2})
	for _, s := range []string{"b", "c", "d"} {
		b.SetLine(0, s)
	}
	changes := b.Changes()
	if got := len(changes); got != 2 {
		t.Fatalf("changes=%d, want 2", got)
	}
	if got, want := changes[0].After, "c"; got != want {
		t.Fatalf("oldest retained=%q, want %q", got, want)
	}
	if got := b.Edits(); got != 3 {
		t.Fatalf("edits=%d, want 3", got)
	}
}

func TestBuffer_ResetChanges(t *testing.T) {
	b := New("a", Options{})
	b.SetLine(0, "b")
	b.ResetChanges()
	if got := b.Edits(); got != 0 {
		t.Fatalf("edits=%d, want 0", got)
	}
	if _, ok := b.LastChange(); ok {
		t.Fatalf("expected empty log")
	}
	if got := b.Version(); got != 1 {
		t.Fatalf("version=%d, want 1 (reset keeps version)", got)
	}
}

func TestChangeKind_String(t *testing.T) {
	cases := map[ChangeKind]string{
		ChangeSetLine:  "set-line",
		ChangeInsert:   "insert",
		ChangeDelete:   "delete",
		ChangeKind(42): "unknown",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Fatalf("String(%d)=%q, want %q", k, got, want)
		}
	}
}
