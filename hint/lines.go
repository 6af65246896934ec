package hint

// Lines is the part of a host buffer the overlay engine touches. Rows are
// 0-based. Every SetLine call is one observable mutation.
type Lines interface {
	Len() int
	Line(row int) string
	SetLine(row int, text string)
}

// Buffer is a Lines with a stable identity, used as the Registry key.
type Buffer interface {
	Lines
	ID() int
}
