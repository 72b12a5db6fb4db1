package silver

import (
	"errors"
	"strings"
	"testing"
)

func mustContain(t *testing.T, s, sub string) {
	t.Helper()
	if !strings.Contains(s, sub) {
		t.Fatalf("missing %q in:\n%s", sub, s)
	}
}

func Test_Errors_IndentError_Message(t *testing.T) {
	err := &IndentError{Width: 2, Offset: 12}
	want := "inconsistent dedent: width 2 matches no open indentation level"
	if err.Error() != want {
		t.Fatalf("want %q, got %q", want, err.Error())
	}
}

func Test_Errors_WrapWithSource_Snippet(t *testing.T) {
	src := "if a:\n    b\n  c\nd"
	_, err := NewLexer(src).Scan()
	if err == nil {
		t.Fatalf("want an indentation error")
	}
	msg := WrapErrorWithSource(err, src).Error()
	mustContain(t, msg, "LEXICAL ERROR at 3:1: inconsistent dedent")
	mustContain(t, msg, "   2 |     b")
	mustContain(t, msg, "   3 |   c")
	mustContain(t, msg, "     | ^")
	mustContain(t, msg, "   4 | d")
}

func Test_Errors_WrapWithName_Header(t *testing.T) {
	src := "a:\n    b\n  c"
	_, err := NewLexer(src).Scan()
	msg := WrapErrorWithName(err, "demo.sil", src).Error()
	mustContain(t, msg, "LEXICAL ERROR in demo.sil at 3:1:")
}

func Test_Errors_WrapLeavesOtherErrorsUntouched(t *testing.T) {
	sentinel := errors.New("boom")
	if got := WrapErrorWithSource(sentinel, "src"); got != sentinel {
		t.Fatalf("non-lexical error was rewritten: %v", got)
	}
}

func Test_Errors_LineCol(t *testing.T) {
	src := "ab\ncde\nf"
	cases := []struct {
		off, line, col int
	}{
		{0, 1, 1},
		{1, 1, 2},
		{2, 1, 3},
		{3, 2, 1},
		{6, 2, 4},
		{7, 3, 1},
		{8, 3, 2},
		{99, 3, 2}, // past the end clamps to one past the final rune
	}
	for _, c := range cases {
		line, col := LineCol(src, c.off)
		if line != c.line || col != c.col {
			t.Fatalf("offset %d: want %d:%d, got %d:%d", c.off, c.line, c.col, line, col)
		}
	}
}
