package silver

import "fmt"

// TokenType represents the kind of token.
type TokenType int

const (
	// Special
	EOF TokenType = iota
	UNKNOWN

	// Literals, identifiers, comments
	COMMENT
	IDENT
	INTEGER
	STRING

	// Structure
	NEWLINE
	INDENT
	DEDENT

	// Punctuation
	LPAREN   // "("
	RPAREN   // ")"
	LBRACKET // "["
	RBRACKET // "]"
	LBRACE   // "{"
	RBRACE   // "}"
	COLON    // ":"
	SEMI     // ";"
	DOT      // "."
	COMMA    // ","

	// Single-character operators
	PLUS    // "+"
	MINUS   // "-"
	STAR    // "*"
	SLASH   // "/"
	PERCENT // "%"
	CARET   // "^"
	AMPER   // "&"
	PIPE    // "|"
	TILDE   // "~"
	ASSIGN  // "="
	LESS    // "<"
	GREATER // ">"
	BANG    // "!"
	AT      // "@"

	// Two-character operators
	ARROW      // "->"
	EQ         // "=="
	NEQ        // "!="
	LESS_EQ    // "<="
	GREATER_EQ // ">="
	LSHIFT     // "<<"
	RSHIFT     // ">>"
	STAR_STAR  // "**"

	// Compound assignment
	PLUS_EQ      // "+="
	MINUS_EQ     // "-="
	STAR_EQ      // "*="
	SLASH_EQ     // "/="
	PERCENT_EQ   // "%="
	AMPER_EQ     // "&="
	PIPE_EQ      // "|="
	CARET_EQ     // "^="
	LSHIFT_EQ    // "<<="
	RSHIFT_EQ    // ">>="
	STAR_STAR_EQ // "**="
)

// Token is a lexical token with its raw text and source span.
type Token struct {
	Type TokenType
	Text string // raw matched text; empty for EOF, INDENT and DEDENT
	Span Span
}

var tokenNames = map[TokenType]string{
	EOF:          "EOF",
	UNKNOWN:      "UNKNOWN",
	COMMENT:      "COMMENT",
	IDENT:        "IDENT",
	INTEGER:      "INTEGER",
	STRING:       "STRING",
	NEWLINE:      "NEWLINE",
	INDENT:       "INDENT",
	DEDENT:       "DEDENT",
	LPAREN:       "LPAREN",
	RPAREN:       "RPAREN",
	LBRACKET:     "LBRACKET",
	RBRACKET:     "RBRACKET",
	LBRACE:       "LBRACE",
	RBRACE:       "RBRACE",
	COLON:        "COLON",
	SEMI:         "SEMI",
	DOT:          "DOT",
	COMMA:        "COMMA",
	PLUS:         "PLUS",
	MINUS:        "MINUS",
	STAR:         "STAR",
	SLASH:        "SLASH",
	PERCENT:      "PERCENT",
	CARET:        "CARET",
	AMPER:        "AMPER",
	PIPE:         "PIPE",
	TILDE:        "TILDE",
	ASSIGN:       "ASSIGN",
	LESS:         "LESS",
	GREATER:      "GREATER",
	BANG:         "BANG",
	AT:           "AT",
	ARROW:        "ARROW",
	EQ:           "EQ",
	NEQ:          "NEQ",
	LESS_EQ:      "LESS_EQ",
	GREATER_EQ:   "GREATER_EQ",
	LSHIFT:       "LSHIFT",
	RSHIFT:       "RSHIFT",
	STAR_STAR:    "STAR_STAR",
	PLUS_EQ:      "PLUS_EQ",
	MINUS_EQ:     "MINUS_EQ",
	STAR_EQ:      "STAR_EQ",
	SLASH_EQ:     "SLASH_EQ",
	PERCENT_EQ:   "PERCENT_EQ",
	AMPER_EQ:     "AMPER_EQ",
	PIPE_EQ:      "PIPE_EQ",
	CARET_EQ:     "CARET_EQ",
	LSHIFT_EQ:    "LSHIFT_EQ",
	RSHIFT_EQ:    "RSHIFT_EQ",
	STAR_STAR_EQ: "STAR_STAR_EQ",
}

// String returns the ALLCAPS name of the token type.
func (tt TokenType) String() string {
	if name, ok := tokenNames[tt]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}
