package silver

import (
	"strings"
	"testing"
)

func Test_Printer_FormatToken_WithText(t *testing.T) {
	tok := Token{Type: IDENT, Text: "let", Span: NewSpan(0, 3)}
	want := `   0..3    IDENT        "let"`
	if got := FormatToken(tok); got != want {
		t.Fatalf("\nwant %q\ngot  %q", want, got)
	}
}

func Test_Printer_FormatToken_Structural(t *testing.T) {
	tok := Token{Type: INDENT, Span: NewSpan(5, 5)}
	got := strings.TrimRight(FormatToken(tok), " ")
	want := "   5..5    INDENT"
	if got != want {
		t.Fatalf("\nwant %q\ngot  %q", want, got)
	}
}

func Test_Printer_FormatToken_QuotesControlChars(t *testing.T) {
	tok := Token{Type: NEWLINE, Text: "\n", Span: NewSpan(3, 4)}
	got := FormatToken(tok)
	if !strings.HasSuffix(got, `"\n"`) {
		t.Fatalf("newline text not escaped: %q", got)
	}
}

func Test_Printer_FormatTokens_OneLinePerToken(t *testing.T) {
	got := FormatTokens(toks(t, "a b"))
	lines := strings.Split(got, "\n")
	// IDENT, IDENT, NEWLINE, EOF.
	if len(lines) != 4 {
		t.Fatalf("want 4 lines, got %d:\n%s", len(lines), got)
	}
}

func Test_Printer_MarshalToken(t *testing.T) {
	tok := Token{Type: IDENT, Text: "let", Span: NewSpan(0, 3)}
	b, err := MarshalToken(tok)
	if err != nil {
		t.Fatalf("MarshalToken: %v", err)
	}
	want := `{"type":"IDENT","text":"let","start":0,"end":3,"len":3}`
	if string(b) != want {
		t.Fatalf("\nwant %s\ngot  %s", want, b)
	}
}

func Test_Printer_MarshalToken_OmitsEmptyText(t *testing.T) {
	tok := Token{Type: DEDENT, Span: NewSpan(8, 8)}
	b, err := MarshalToken(tok)
	if err != nil {
		t.Fatalf("MarshalToken: %v", err)
	}
	want := `{"type":"DEDENT","start":8,"end":8,"len":0}`
	if string(b) != want {
		t.Fatalf("\nwant %s\ngot  %s", want, b)
	}
}
