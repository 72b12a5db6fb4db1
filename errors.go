// errors.go: lexical error values and caret-snippet rendering
//
// What this file does
// -------------------
// This module defines the one error class the lexer can return, and turns
// it into a readable, Python-style snippet with a caret pointing at the
// offending column. The primary entry point is `WrapErrorWithSource`, which
// recognizes `*IndentError` (from lexer.go), formats it, and returns a new
// `error` that contains a multi-line snippet:
//
//	LEXICAL ERROR at 3:1: inconsistent dedent: width 2 matches no open indentation level
//
//	   2 |     b
//	   3 |   c
//	     | ^
//	   4 | d
//
// The snippet includes up to one line of context before and after the error,
// numbers the lines, and places a caret under the 1-based column.
//
// Behavior guarantees
// -------------------
//   - If `err` is an `*IndentError`, the returned error's message is a fully
//     formatted, plain-text snippet (no ANSI colors).
//   - If `err` is anything else, it is returned unchanged.
//   - Line/column are treated as 1-based. If out of range, they are clamped
//     so the caret can be rendered safely. Empty/short sources are handled.
package silver

import (
	"errors"
	"fmt"
	"strings"
)

/* ===========================
   PUBLIC API
   =========================== */

// IndentError reports a line whose indentation width matches no currently
// open level and is smaller than the innermost one. It is recoverable: the
// caller can report it and keep pulling tokens.
type IndentError struct {
	Width  int // measured leading-space count of the offending line
	Offset int // absolute character offset of the line's first character
}

func (e *IndentError) Error() string {
	return fmt.Sprintf("inconsistent dedent: width %d matches no open indentation level", e.Width)
}

// WrapErrorWithSource returns an error augmented with a caret-annotated
// snippet of the provided source. It recognizes indentation errors and
// leaves other errors untouched.
func WrapErrorWithSource(err error, src string) error {
	// Fall back to a name-less header (won't show "in <src>").
	return WrapErrorWithName(err, "", src)
}

// WrapErrorWithName is WrapErrorWithSource with a source name ("stdin", a
// file path) included in the header line.
func WrapErrorWithName(err error, srcName, src string) error {
	var ie *IndentError
	if !errors.As(err, &ie) {
		return err
	}
	line, col := lineColAt(src, ie.Offset)
	return fmt.Errorf("%s", prettyErrorStringLabeled(src, "LEXICAL ERROR", srcName, line, col, ie.Error()))
}

// LineCol converts an absolute character offset into 1-based line and
// column coordinates within src. Offsets past the end report the position
// one past the final character.
func LineCol(src string, offset int) (line, col int) {
	return lineColAt(src, offset)
}

//// END_OF_PUBLIC

/* ===========================
   PRIVATE: helpers & rendering
   =========================== */

func lineColAt(src string, offset int) (line, col int) {
	line, col = 1, 1
	count := 0
	for _, r := range src {
		if count >= offset {
			break
		}
		count++
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

// prettyErrorStringLabeled builds a Python-like snippet with a header and a
// caret. It shows at most one previous and one next line when available.
// Coordinates are treated as 1-based and clamped to the source bounds.
func prettyErrorStringLabeled(src, header, name string, line, col int, msg string) string {
	lines := strings.Split(src, "\n")
	if line < 1 {
		line = 1
	}
	if col < 1 {
		col = 1
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	if line > len(lines) {
		line = len(lines)
	}
	lineTxt := lines[line-1]

	var b strings.Builder
	if name != "" {
		fmt.Fprintf(&b, "%s in %s at %d:%d: %s\n\n", header, name, line, col, msg)
	} else {
		fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", header, line, col, msg)
	}
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lineTxt)
	caretPad := col - 1
	if caretPad < 0 {
		caretPad = 0
	}
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", caretPad))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
