package silver

// Cursor is a single-pass reader over a source unit's character sequence
// with one rune of lookahead. Offsets count characters from the unit's
// base offset, so a lexer constructed with a nonzero base produces spans in
// a project-wide coordinate space (see SourceMap).
type Cursor struct {
	src  []rune
	i    int
	base int
}

// NewCursor wraps src with offsets starting at zero.
func NewCursor(src string) *Cursor { return NewCursorAt(src, 0) }

// NewCursorAt wraps src with offsets starting at base.
func NewCursorAt(src string, base int) *Cursor {
	return &Cursor{src: []rune(src), base: base}
}

// Pos returns the absolute character offset of the next unread rune.
func (c *Cursor) Pos() int { return c.base + c.i }

// Peek returns the next rune without consuming it.
func (c *Cursor) Peek() (rune, bool) {
	if c.i >= len(c.src) {
		return 0, false
	}
	return c.src[c.i], true
}

// Next consumes and returns the next rune.
func (c *Cursor) Next() (rune, bool) {
	if c.i >= len(c.src) {
		return 0, false
	}
	r := c.src[c.i]
	c.i++
	return r, true
}

// TakeWhile consumes the longest run of runes satisfying pred and returns
// it. The first rune failing pred is left unconsumed.
func (c *Cursor) TakeWhile(pred func(rune) bool) string {
	start := c.i
	for c.i < len(c.src) && pred(c.src[c.i]) {
		c.i++
	}
	return string(c.src[start:c.i])
}

// SkipSpaces consumes a run of space characters at the current position and
// returns the count consumed. Only ' ' is skipped; tabs are left in place
// and never count toward indentation.
func (c *Cursor) SkipSpaces() int {
	n := 0
	for c.i < len(c.src) && c.src[c.i] == ' ' {
		c.i++
		n++
	}
	return n
}

// Last returns the final rune of the underlying source, if any.
func (c *Cursor) Last() (rune, bool) {
	if len(c.src) == 0 {
		return 0, false
	}
	return c.src[len(c.src)-1], true
}
