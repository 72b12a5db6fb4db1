package silver

import "fmt"

// Span is a half-open interval [Start, End) of absolute character offsets
// into the source unit being lexed. Offsets count runes, not bytes, so a
// span's length equals the number of characters it covers regardless of
// UTF-8 encoding width. Structural tokens (INDENT, DEDENT) carry zero-length
// spans anchored at the start of the line that produced them.
type Span struct {
	Start int
	End   int
}

// NewSpan returns the span [start, end).
func NewSpan(start, end int) Span {
	return Span{Start: start, End: end}
}

// Len returns the number of characters the span covers.
func (s Span) Len() int { return s.End - s.Start }

func (s Span) String() string {
	return fmt.Sprintf("[%d..%d)", s.Start, s.End)
}
