package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/hintline/buffer"
	"github.com/iw2rmb/hintline/hint"
	"github.com/iw2rmb/hintline/internal/grapheme"
)

const demoText = `Type inside a call to see its signature above the cursor.
Known calls: addCrew, setName, Printf, Println, Show, NewManager.
Esc dismisses the hint, Ctrl+S saves, Ctrl+Q quits.

Ship serenity = new Ship();
serenity.setName("Serenity").setType("Firefly");
serenity.addCrew(`

type model struct {
	buf   *buffer.Buffer
	hints *hint.Registry
	style style

	// dismissed is the cursor Esc was pressed at; hints stay off until the
	// cursor moves.
	dismissed    hint.Cursor
	hasDismissed bool

	saved  string
	status string
	height int
}

func newModel(text string, reg *hint.Registry) model {
	b := buffer.New(text, buffer.Options{ID: 1})
	last := b.Len() - 1
	b.SetCursor(buffer.Pos{Row: last, Col: grapheme.Count(b.Line(last))})

	m := model{buf: b, hints: reg, style: defaultStyle()}
	m.refresh()
	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "ctrl+q":
			m.hints.CleanupAll()
			return m, tea.Quit
		case "ctrl+s":
			m.save()
			return m, nil
		case "esc":
			m.manager().Hide()
			m.dismissed, m.hasDismissed = m.cursor(), true
			return m, nil
		}

		// Edits and moves must see the document, not the overlay.
		m.manager().Duck()
		handleKey(m.buf, msg)
		m.refresh()
	}
	return m, nil
}

func (m model) manager() *hint.Manager {
	return m.hints.ForBuffer(m.buf)
}

func (m model) cursor() hint.Cursor {
	p := m.buf.Cursor()
	return hint.Cursor{Line: p.Row + 1, Col: p.Col}
}

// refresh looks up hints for the cursor while the document is still clean,
// puts ducked hints back and then shows the new ones. Show replaces the
// unducked overlay only when the hints or the cursor changed.
func (m *model) refresh() {
	at := m.cursor()
	if m.hasDismissed && at == m.dismissed {
		return
	}
	m.hasDismissed = false

	hints := hintsAt(m.buf.Line(at.Row()), at.Col)
	mgr := m.manager()
	mgr.Unduck()
	mgr.Show(hints, at)
}

// save captures the document without the overlay.
func (m *model) save() {
	mgr := m.manager()
	mgr.Duck()
	m.saved = m.buf.Text()
	mgr.Unduck()
	m.status = fmt.Sprintf("saved %d lines, %d bytes", m.buf.Len(), len(m.saved))
}

func handleKey(b *buffer.Buffer, msg tea.KeyMsg) {
	switch msg.String() {
	case "left":
		b.Move(buffer.DirLeft)
	case "right":
		b.Move(buffer.DirRight)
	case "up":
		b.Move(buffer.DirUp)
	case "down":
		b.Move(buffer.DirDown)
	case "home":
		b.Move(buffer.DirHome)
	case "end":
		b.Move(buffer.DirEnd)
	case "backspace":
		b.DeleteBackward()
	case "enter":
		b.InsertText("\n")
	case "tab":
		b.InsertText("    ")
	default:
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
			for _, r := range msg.Runes {
				b.InsertRune(r)
			}
		}
	}
}

func (m model) View() string {
	var sb strings.Builder
	cursor := m.buf.Cursor()
	numWidth := len(fmt.Sprint(m.buf.Len()))

	for row := 0; row < m.buf.Len(); row++ {
		if m.height > 1 && row >= m.height-1 {
			break
		}
		sb.WriteString(m.style.LineNum.Render(fmt.Sprintf("%*d ", numWidth, row+1)))
		if row == cursor.Row {
			sb.WriteString(m.renderCursorLine(m.buf.Line(row), cursor.Col))
		} else {
			sb.WriteString(m.renderLine(m.buf.Line(row)))
		}
		sb.WriteByte('\n')
	}

	status := m.status
	if status == "" {
		status = fmt.Sprintf("%d:%d", cursor.Row+1, cursor.Col)
	}
	sb.WriteString(m.style.Status.Render(status))
	return sb.String()
}

// renderLine styles overlay segments and drops their markers.
func (m model) renderLine(line string) string {
	var sb strings.Builder
	for line != "" {
		before, rest, ok := strings.Cut(line, overlayOpen)
		if !ok {
			break
		}
		inside, after, ok := strings.Cut(rest, overlayClose)
		if !ok {
			break
		}
		sb.WriteString(m.style.Text.Render(before))
		sb.WriteString(m.style.Overlay.Render(inside))
		line = after
	}
	sb.WriteString(m.style.Text.Render(line))
	return sb.String()
}

func (m model) renderCursorLine(line string, col int) string {
	clusters := grapheme.Split(line)
	if col >= len(clusters) {
		return m.style.Text.Render(line) + m.style.Cursor.Render(" ")
	}
	return m.style.Text.Render(grapheme.Head(line, col)) +
		m.style.Cursor.Render(clusters[col]) +
		m.style.Text.Render(grapheme.Tail(line, col+1))
}
