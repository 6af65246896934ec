package hint

import "fmt"

// Cursor is a host cursor position. Line is 1-based, as editors report it;
// Col is a 0-based grapheme column.
type Cursor struct {
	Line int
	Col  int
}

// Row returns the 0-based buffer row of the cursor line.
func (c Cursor) Row() int { return c.Line - 1 }

func (c Cursor) String() string {
	return fmt.Sprintf("%d:%d", c.Line, c.Col)
}
