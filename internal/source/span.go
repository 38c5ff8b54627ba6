package source

import (
	"fmt"
)

// Location is a zero-based position in a source file.
type Location struct {
	Line uint32
	Col  uint32
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Col)
}

// Span describes how far a region extends from its starting Location.
// LineDelta counts the line breaks the region crosses. Width counts the
// columns covered on the region's final line; when LineDelta is zero it
// is measured from the starting column.
type Span struct {
	LineDelta uint32
	Width     uint32
}

// Single returns a span confined to the starting line.
func Single(width uint32) Span {
	return Span{Width: width}
}

// Between measures the span from one location up to another.
// A degenerate range collapses to a single-column span.
func Between(from, to Location) Span {
	if to.Line > from.Line {
		return Span{LineDelta: to.Line - from.Line, Width: to.Col}
	}
	if to.Line == from.Line && to.Col > from.Col {
		return Span{Width: to.Col - from.Col}
	}
	return Span{Width: 1}
}

// OneLine reports whether the span stays on its starting line.
func (s Span) OneLine() bool {
	return s.LineDelta == 0
}

func (s Span) String() string {
	if s.OneLine() {
		return fmt.Sprintf("+%d", s.Width)
	}
	return fmt.Sprintf("+%d:%d", s.LineDelta, s.Width)
}
