package silver

import "strings"

// Rule is a pluggable scanner consulted before the built-in dispatch. The
// lexer calls each registered rule in order with the current rune still
// unconsumed. A rule either declines by returning ok == false, in which
// case it must not have consumed anything, or commits by consuming the rune
// (and any followers) through the lexer's Cursor and returning the token
// type and raw text. The first committing rule wins.
type Rule func(lx *Lexer, ch rune) (tt TokenType, text string, ok bool)

// Option configures a Lexer at construction time.
type Option func(*Lexer)

// WithRule appends r to the lexer's rule list. Rules run in registration
// order, ahead of the default dispatch.
func WithRule(r Rule) Option {
	return func(lx *Lexer) { lx.rules = append(lx.rules, r) }
}

// StringRule scans double-quoted string literals with backslash escapes.
// It is not registered by default; pass WithRule(StringRule) to enable it.
// An unterminated literal (end of line or end of input before the closing
// quote) commits to UNKNOWN covering everything consumed, leaving the
// newline for the regular scanner.
func StringRule(lx *Lexer, ch rune) (TokenType, string, bool) {
	if ch != '"' {
		return 0, "", false
	}
	var b strings.Builder
	open, _ := lx.Cursor().Next()
	b.WriteRune(open)
	for {
		r, ok := lx.Cursor().Peek()
		if !ok || r == '\n' {
			return UNKNOWN, b.String(), true
		}
		lx.Cursor().Next()
		b.WriteRune(r)
		switch r {
		case '\\':
			if esc, ok := lx.Cursor().Next(); ok {
				b.WriteRune(esc)
			}
		case '"':
			return STRING, b.String(), true
		}
	}
}
