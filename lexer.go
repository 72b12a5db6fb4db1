// Package silver implements the lexical front end of the Silver language:
// an indentation-aware scanner that turns source text into a stream of
// spanned tokens, with synthetic INDENT/DEDENT tokens encoding block
// structure the way the language's whitespace rules demand.
package silver

// Lexer scans one in-memory source unit into tokens. It is a pull-based
// producer: each call to Next yields exactly one token. Structural tokens
// produced in bulk (several DEDENTs at once, the synthetic closing NEWLINE)
// wait in a FIFO queue and are drained before any new scanning happens.
//
// A Lexer is single-use and single-threaded: construct one per source unit,
// pull until EOF, then discard. Restarting means constructing a new one.
type Lexer struct {
	cursor *Cursor
	rules  []Rule

	indents      []int   // open indentation widths; indents[0] is always 0
	queue        []Token // structural tokens awaiting delivery
	lineStart    bool    // true immediately after a newline or at unit start
	lineStartPos int     // offset of the current line's first character

	closed bool // end-of-input tokens have been enqueued
	endPos int  // offset the stream closed at; EOF tokens carry it
}

// NewLexer creates a lexer over src with spans starting at offset zero.
func NewLexer(src string, opts ...Option) *Lexer {
	return NewLexerAt(src, 0, opts...)
}

// NewLexerAt creates a lexer over src whose spans start at base, so that a
// registry lexing many units can keep all spans in one coordinate space.
func NewLexerAt(src string, base int, opts ...Option) *Lexer {
	lx := &Lexer{
		cursor:       NewCursorAt(src, base),
		indents:      []int{0},
		lineStart:    true,
		lineStartPos: base,
		endPos:       base,
	}
	for _, opt := range opts {
		opt(lx)
	}
	return lx
}

// Cursor exposes the lexer's cursor so registered rules can consume input.
func (lx *Lexer) Cursor() *Cursor { return lx.cursor }

// Next returns the next token. The pending queue is drained first; then, at
// a line start, leading spaces decide whether the line opens or closes
// blocks; otherwise the scanner produces one content token. After the final
// real token the stream is closed (missing trailing NEWLINE synthesized,
// one DEDENT per open level) and EOF is returned from then on.
//
// The only error condition is an inconsistent dedent: a line whose width
// matches no open level and is smaller than the innermost one. That returns
// an *IndentError; the lexer stays usable and the offending line is then
// scanned as content with no structural tokens.
func (lx *Lexer) Next() (Token, error) {
	if len(lx.queue) > 0 {
		return lx.popQueue(), nil
	}

	width := lx.cursor.SkipSpaces()

	if lx.lineStart {
		// One decision per logical line: the flag is cleared in every
		// branch so delivering queued DEDENTs never re-measures the line.
		lx.lineStart = false
		top := lx.indents[len(lx.indents)-1]
		switch {
		case width > top:
			lx.indents = append(lx.indents, width)
			return Token{Type: INDENT, Span: NewSpan(lx.lineStartPos, lx.lineStartPos)}, nil
		case width < top:
			if !lx.hasIndent(width) {
				return Token{}, &IndentError{Width: width, Offset: lx.lineStartPos}
			}
			for lx.indents[len(lx.indents)-1] > width {
				lx.indents = lx.indents[:len(lx.indents)-1]
				lx.queue = append(lx.queue, Token{Type: DEDENT, Span: NewSpan(lx.lineStartPos, lx.lineStartPos)})
			}
			return lx.popQueue(), nil
		}
	}

	return lx.scan()
}

// Scan pulls the whole stream and returns all tokens, EOF included, or the
// first error encountered.
func (lx *Lexer) Scan() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens, nil
		}
	}
}

func (lx *Lexer) popQueue() Token {
	tok := lx.queue[0]
	lx.queue = lx.queue[1:]
	return tok
}

func (lx *Lexer) hasIndent(width int) bool {
	for _, w := range lx.indents {
		if w == width {
			return true
		}
	}
	return false
}

// scan produces one content token from the cursor, or closes the stream
// when no character remains.
func (lx *Lexer) scan() (Token, error) {
	ch, ok := lx.cursor.Peek()
	if !ok {
		return lx.close()
	}

	// Registered rules run ahead of the default dispatch. A rule that
	// declines must not have consumed anything.
	for _, rule := range lx.rules {
		start := lx.cursor.Pos()
		if tt, text, ok := rule(lx, ch); ok {
			return Token{Type: tt, Text: text, Span: NewSpan(start, lx.cursor.Pos())}, nil
		}
	}

	start := lx.cursor.Pos()
	lx.cursor.Next()

	switch {
	case ch == '#':
		text := "#" + lx.cursor.TakeWhile(func(r rune) bool { return r != '\n' })
		return lx.emit(COMMENT, text, start), nil
	case isIdentStart(ch):
		text := string(ch) + lx.cursor.TakeWhile(isIdentBody)
		return lx.emit(IDENT, text, start), nil
	case isDigit(ch):
		text := string(ch) + lx.cursor.TakeWhile(isDigit)
		return lx.emit(INTEGER, text, start), nil
	case ch == '\n':
		lx.lineStart = true
		lx.lineStartPos = lx.cursor.Pos()
		return lx.emit(NEWLINE, "\n", start), nil
	}

	if tt, text, ok := lx.scanOperator(ch); ok {
		return lx.emit(tt, text, start), nil
	}

	return lx.emit(UNKNOWN, string(ch), start), nil
}

func (lx *Lexer) emit(tt TokenType, text string, start int) Token {
	return Token{Type: tt, Text: text, Span: NewSpan(start, lx.cursor.Pos())}
}

// scanOperator matches punctuation and operator families, longest spelling
// first, with ch already consumed. It consumes up to two more runes.
func (lx *Lexer) scanOperator(ch rune) (TokenType, string, bool) {
	switch ch {
	case '(':
		return LPAREN, "(", true
	case ')':
		return RPAREN, ")", true
	case '[':
		return LBRACKET, "[", true
	case ']':
		return RBRACKET, "]", true
	case '{':
		return LBRACE, "{", true
	case '}':
		return RBRACE, "}", true
	case ':':
		return COLON, ":", true
	case ';':
		return SEMI, ";", true
	case '.':
		return DOT, ".", true
	case ',':
		return COMMA, ",", true
	case '~':
		return TILDE, "~", true
	case '@':
		return AT, "@", true
	case '+':
		if lx.eat('=') {
			return PLUS_EQ, "+=", true
		}
		return PLUS, "+", true
	case '-':
		if lx.eat('>') {
			return ARROW, "->", true
		}
		if lx.eat('=') {
			return MINUS_EQ, "-=", true
		}
		return MINUS, "-", true
	case '*':
		if lx.eat('*') {
			if lx.eat('=') {
				return STAR_STAR_EQ, "**=", true
			}
			return STAR_STAR, "**", true
		}
		if lx.eat('=') {
			return STAR_EQ, "*=", true
		}
		return STAR, "*", true
	case '/':
		if lx.eat('=') {
			return SLASH_EQ, "/=", true
		}
		return SLASH, "/", true
	case '%':
		if lx.eat('=') {
			return PERCENT_EQ, "%=", true
		}
		return PERCENT, "%", true
	case '^':
		if lx.eat('=') {
			return CARET_EQ, "^=", true
		}
		return CARET, "^", true
	case '&':
		if lx.eat('=') {
			return AMPER_EQ, "&=", true
		}
		return AMPER, "&", true
	case '|':
		if lx.eat('=') {
			return PIPE_EQ, "|=", true
		}
		return PIPE, "|", true
	case '=':
		if lx.eat('=') {
			return EQ, "==", true
		}
		return ASSIGN, "=", true
	case '!':
		if lx.eat('=') {
			return NEQ, "!=", true
		}
		return BANG, "!", true
	case '<':
		if lx.eat('=') {
			return LESS_EQ, "<=", true
		}
		if lx.eat('<') {
			if lx.eat('=') {
				return LSHIFT_EQ, "<<=", true
			}
			return LSHIFT, "<<", true
		}
		return LESS, "<", true
	case '>':
		if lx.eat('=') {
			return GREATER_EQ, ">=", true
		}
		if lx.eat('>') {
			if lx.eat('=') {
				return RSHIFT_EQ, ">>=", true
			}
			return RSHIFT, ">>", true
		}
		return GREATER, ">", true
	}
	return 0, "", false
}

// eat consumes the next rune when it equals want.
func (lx *Lexer) eat(want rune) bool {
	if r, ok := lx.cursor.Peek(); ok && r == want {
		lx.cursor.Next()
		return true
	}
	return false
}

// close finishes the stream exactly once: a synthetic NEWLINE when the
// source did not end with one (empty input excepted), then one DEDENT per
// open indentation level, so every INDENT ever emitted has its match.
// Afterwards every call yields EOF.
func (lx *Lexer) close() (Token, error) {
	if !lx.closed {
		lx.closed = true
		end := lx.cursor.Pos()
		lx.endPos = end
		if last, ok := lx.cursor.Last(); ok && last != '\n' {
			lx.queue = append(lx.queue, Token{Type: NEWLINE, Text: "\n", Span: NewSpan(end, end+1)})
			lx.endPos = end + 1
		}
		for len(lx.indents) > 1 {
			lx.indents = lx.indents[:len(lx.indents)-1]
			lx.queue = append(lx.queue, Token{Type: DEDENT, Span: NewSpan(lx.endPos, lx.endPos)})
		}
		if len(lx.queue) > 0 {
			return lx.popQueue(), nil
		}
	}
	return Token{Type: EOF, Span: NewSpan(lx.endPos, lx.endPos)}, nil
}

func isIdentStart(r rune) bool {
	return r == '_' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

func isIdentBody(r rune) bool { return isIdentStart(r) || isDigit(r) }

func isDigit(r rune) bool { return '0' <= r && r <= '9' }
