package buffer

// ChangeKind identifies the mutation that produced a Change.
type ChangeKind uint8

const (
	ChangeSetLine ChangeKind = iota
	ChangeInsert
	ChangeDelete
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeSetLine:
		return "set-line"
	case ChangeInsert:
		return "insert"
	case ChangeDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Change describes one mutation.
//
// For ChangeSetLine, At.Row is the replaced row and Before/After are the whole
// line. For ChangeInsert and ChangeDelete, At is where the edit started and
// Before/After hold the removed and inserted text.
type Change struct {
	Kind          ChangeKind
	At            Pos
	Before        string
	After         string
	VersionBefore uint64
	VersionAfter  uint64
}

// LastChange returns the most recent mutation.
func (b *Buffer) LastChange() (Change, bool) {
	if len(b.changes) == 0 {
		return Change{}, false
	}
	return b.changes[len(b.changes)-1], true
}

// Changes returns the retained mutation log, oldest first.
func (b *Buffer) Changes() []Change {
	return append([]Change(nil), b.changes...)
}

// ResetChanges drops the mutation log and zeroes the edit counter.
func (b *Buffer) ResetChanges() {
	b.changes = nil
	b.edits = 0
}

func (b *Buffer) recordChange(c Change) {
	c.VersionBefore = b.version
	b.version++
	b.edits++
	c.VersionAfter = b.version

	limit := b.opt.ChangeLimit
	if limit <= 0 {
		return
	}
	b.changes = append(b.changes, c)
	if len(b.changes) > limit {
		b.changes = b.changes[len(b.changes)-limit:]
	}
}
