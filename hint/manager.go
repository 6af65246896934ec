package hint

import (
	"log/slog"
	"slices"
)

// Manager owns the hint overlay of one buffer.
//
// At any time it is Hidden (nothing shown), Visible (hints drawn, originals
// backed up) or Ducked (hints parked by Duck, buffer clean). Every method is a
// no-op when called from a state it does not apply to.
type Manager struct {
	buf Lines
	cfg Config

	hints  []string
	anchor Cursor
	backup []backupLine

	ducked       []string
	duckedAnchor Cursor
}

// NewManager returns a Hidden manager drawing into buf.
func NewManager(buf Lines, cfg Config) *Manager {
	return &Manager{
		buf: buf,
		cfg: normalizeConfig(cfg),
	}
}

// Show draws hints above the cursor line at, replacing any hints currently
// shown. Showing the same hints at the same cursor again does nothing, so
// hosts may call Show on every keystroke. Empty hints just hide.
func (m *Manager) Show(hints []string, at Cursor) {
	if len(hints) == 0 {
		hints = nil
	}
	if m.anchor == at && slices.Equal(m.hints, hints) {
		return
	}

	m.Hide()
	if hints == nil {
		return
	}
	m.hints = slices.Clone(hints)
	m.anchor = at
	m.ducked, m.duckedAnchor = nil, Cursor{}

	targets := layout(m.hints, at, m.buf.Len())
	width := hintWidth(m.hints)
	m.backup = make([]backupLine, 0, len(targets))
	for _, t := range targets {
		m.backup = append(m.backup, backupLine{row: t.row, text: m.buf.Line(t.row)})
	}
	for i, t := range targets {
		m.buf.SetLine(t.row, renderLine(m.backup[i].text, t.hint, width, at.Col, m.cfg))
	}

	m.cfg.Logger.Debug("hints shown",
		slog.String("at", at.String()),
		slog.Int("rows", len(targets)),
		slog.Int("dropped", len(m.hints)-len(targets)),
		slog.Int("width", width),
	)
}

// Hide restores every overwritten row and forgets the shown hints. It writes
// nothing when no hints are shown.
func (m *Manager) Hide() {
	if m.hints == nil {
		return
	}
	for _, b := range m.backup {
		m.buf.SetLine(b.row, b.text)
	}
	m.cfg.Logger.Debug("hints hidden",
		slog.String("at", m.anchor.String()),
		slog.Int("rows", len(m.backup)),
	)

	m.hints = nil
	m.anchor = Cursor{}
	m.backup = nil
}

// Duck hides the visible hints but keeps them for Unduck. It does nothing
// when no hints are visible, leaving earlier ducked hints in place.
func (m *Manager) Duck() {
	if m.hints == nil {
		return
	}
	m.ducked, m.duckedAnchor = m.hints, m.anchor
	m.Hide()
	m.cfg.Logger.Debug("hints ducked", slog.String("at", m.duckedAnchor.String()))
}

// Unduck shows the hints parked by Duck again, at the cursor they were shown
// at, and clears them. It does nothing when nothing is ducked.
func (m *Manager) Unduck() {
	if m.ducked == nil {
		return
	}
	hints, at := m.ducked, m.duckedAnchor
	m.ducked, m.duckedAnchor = nil, Cursor{}
	m.cfg.Logger.Debug("hints unducked", slog.String("at", at.String()))
	m.Show(hints, at)
}

// Visible returns a copy of the shown hints and the cursor they were shown
// at. ok is false when nothing is shown.
func (m *Manager) Visible() (hints []string, at Cursor, ok bool) {
	if m.hints == nil {
		return nil, Cursor{}, false
	}
	return slices.Clone(m.hints), m.anchor, true
}

// Ducked reports whether Duck parked hints that Unduck would restore.
func (m *Manager) Ducked() bool { return m.ducked != nil }

// Rows returns the rows currently overwritten by hints, ascending. Hosts
// saving the buffer can swap these rows back for their original text with
// Original.
func (m *Manager) Rows() []int {
	rows := make([]int, 0, len(m.backup))
	for _, b := range m.backup {
		rows = append(rows, b.row)
	}
	return rows
}

// Original returns the text row had before the overlay replaced it. ok is
// false when row is not overwritten.
func (m *Manager) Original(row int) (string, bool) {
	for _, b := range m.backup {
		if b.row == row {
			return b.text, true
		}
	}
	return "", false
}
