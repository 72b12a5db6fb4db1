package silver

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

/* ---------- globals & tiny helpers ---------- */

var EnableColor = false // REPL-only; tests can leave this false

var (
	styleStructural = lipgloss.NewStyle().Faint(true)
	styleLiteral    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	styleOperator   = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	styleComment    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleUnknown    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	stylePlain      = lipgloss.NewStyle()
)

func styleFor(tt TokenType) lipgloss.Style {
	switch tt {
	case NEWLINE, INDENT, DEDENT, EOF:
		return styleStructural
	case INTEGER, STRING:
		return styleLiteral
	case COMMENT:
		return styleComment
	case UNKNOWN:
		return styleUnknown
	case IDENT:
		return stylePlain
	default:
		return styleOperator
	}
}

func paint(s string, style lipgloss.Style) string {
	if !EnableColor {
		return s
	}
	return style.Render(s)
}

/* ---------- human-readable token formatting ---------- */

// FormatToken renders one token as a fixed-width line:
//
//	   0..3    IDENT        "let"
//
// Structural tokens have no text column. Colors apply only when
// EnableColor is set.
func FormatToken(t Token) string {
	line := fmt.Sprintf("%4d..%-4d %-12s", t.Span.Start, t.Span.End, t.Type.String())
	if t.Text != "" {
		line += " " + strconv.Quote(t.Text)
	}
	return paint(line, styleFor(t.Type))
}

// FormatTokens renders a token slice one per line.
func FormatTokens(tokens []Token) string {
	lines := make([]string, 0, len(tokens))
	for _, t := range tokens {
		lines = append(lines, FormatToken(t))
	}
	return strings.Join(lines, "\n")
}

/* ---------- NDJSON token records ---------- */

// tokenJSON is the record shape emitted by `silver lex --json`.
type tokenJSON struct {
	Type  string `json:"type"`
	Text  string `json:"text,omitempty"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Len   int    `json:"len"`
}

// MarshalToken renders one token as a single-line JSON object.
func MarshalToken(t Token) ([]byte, error) {
	return json.Marshal(tokenJSON{
		Type:  t.Type.String(),
		Text:  t.Text,
		Start: t.Span.Start,
		End:   t.Span.End,
		Len:   t.Span.Len(),
	})
}
