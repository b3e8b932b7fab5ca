package natrix

import "fmt"

// Span is a half-open byte range into a Source's text, the unit every
// diagnostic and AST node position is expressed in.
//
// Grounded on the teacher's Range (range.go): "takes as little as
// possible to represent a position within the input."
type Span struct {
	Start, End int
}

func NewSpan(start, end int) Span {
	return Span{Start: start, End: end}
}

func (s Span) String() string {
	if s.Start == s.End {
		return fmt.Sprintf("%d", s.Start)
	}
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// Location is a Span resolved against a Source's line index: 1-based
// line, 1-based column.
type Location struct {
	Line, Column int
}

// Locate resolves pos against src, as used by the default diagnostic
// handler (spec.md §4.5): "Position is derived from
// source.line_number(start) and start - line_start(line) + 1".
func Locate(src *Source, pos int) Location {
	line := src.LineNumber(pos)
	col := pos - src.LineStart(line) + 1
	return Location{Line: line, Column: col}
}
