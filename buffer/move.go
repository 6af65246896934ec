package buffer

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start
	DirEnd  // line end
)

// Move moves the cursor one grapheme or one row in dir. Left at column 0
// wraps to the end of the previous row and right at the end of a row wraps to
// the next one. Vertical moves keep the column, clamped to the target row.
func (b *Buffer) Move(dir MoveDir) {
	p := b.cursor
	switch dir {
	case DirLeft:
		if p.Col > 0 {
			p.Col--
		} else if p.Row > 0 {
			p.Row--
			p.Col = b.lineLen(p.Row)
		}
	case DirRight:
		if p.Col < b.lineLen(p.Row) {
			p.Col++
		} else if p.Row < len(b.lines)-1 {
			p.Row++
			p.Col = 0
		}
	case DirUp:
		p.Row--
	case DirDown:
		p.Row++
	case DirHome:
		p.Col = 0
	case DirEnd:
		p.Col = b.lineLen(p.Row)
	}
	if p.Row < 0 {
		return
	}
	b.SetCursor(p)
}
