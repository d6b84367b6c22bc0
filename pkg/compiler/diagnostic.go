package compiler

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// LineCol returns the 1-based line and column of byte offset off in src.
// Columns count runes, not bytes.
func LineCol(src string, off int) (line, col int) {
	off = max(0, min(off, len(src)))
	starts := lineStarts(src)
	i := sort.Search(len(starts), func(i int) bool { return starts[i] > off }) - 1
	return i + 1, utf8.RuneCountInString(src[starts[i]:off]) + 1
}

// lineStarts returns the byte offset of the first character of every line.
func lineStarts(src string) []int {
	starts := []int{0}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// FormatDiagnostic renders err against src for display to a user:
//
//	main.c:1:7: error: expected RPAREN, got EOF ("") at 0..0
//	  |> int f(
//	  |>       ^
//
// Errors without a Span are rendered on a single line.
func FormatDiagnostic(name, src string, err error) string {
	var spanned Spanned
	if !errors.As(err, &spanned) {
		return fmt.Sprintf("%s: error: %v\n", name, err)
	}

	span := spanned.ErrSpan()
	// The end-of-stream sentinel sits at offset 0; point at the end instead.
	var unexpected *UnexpectedTokenError
	if errors.As(err, &unexpected) && unexpected.Token.Type == EOF {
		span = Span{Start: len(src), End: len(src)}
	}
	span.Start = max(0, min(span.Start, len(src)))
	span.End = max(span.Start, min(span.End, len(src)))

	line, col := LineCol(src, span.Start)
	starts := lineStarts(src)
	lineStart := starts[line-1]
	lineEnd := len(src)
	if line < len(starts) {
		lineEnd = starts[line] - 1
	}
	text := src[lineStart:lineEnd]

	// Keep tabs in the caret prefix so the caret lines up with the text.
	var pad strings.Builder
	for _, r := range src[lineStart:span.Start] {
		if r == '\t' {
			pad.WriteByte('\t')
		} else {
			pad.WriteByte(' ')
		}
	}
	width := 1
	if span.End > span.Start {
		width = max(1, utf8.RuneCountInString(src[span.Start:min(span.End, lineEnd)]))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s:%d:%d: error: %v\n", name, line, col, err)
	fmt.Fprintf(&b, "  |> %s\n", text)
	fmt.Fprintf(&b, "  |> %s%s\n", pad.String(), strings.Repeat("^", width))
	return b.String()
}
