package compiler

import "fmt"

// Span is a half-open byte range [Start, End) into the source buffer.
type Span struct {
	Start int
	End   int
}

// Join returns a span from the start of s to the end of other.
func (s Span) Join(other Span) Span {
	return Span{Start: s.Start, End: other.End}
}

// Len returns the byte length of the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Text returns the slice of src covered by the span, or "" if the span
// does not fit inside src.
func (s Span) Text(src string) string {
	if s.Start < 0 || s.End > len(src) || s.Start > s.End {
		return ""
	}
	return src[s.Start:s.End]
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// TokenType identifies the category of a lexed token.
type TokenType int

const (
	EOF TokenType = iota // sentinel: end of input

	IDENTIFIER // names, including type names

	// Keywords
	RETURN // "return", matched case-insensitively

	// Paired delimiters
	LPAREN // (
	RPAREN // )
	LBRACE // {
	RBRACE // }

	// Punctuation
	SEMICOLON // ;
	COMMA     // ,

	// Literals
	INT_LIT   // 42
	FLOAT_LIT // 4.2
	BOOL_LIT  // false (and, for now, bool)

	ILLEGAL // character with no token rule
)

var tokenNames = [...]string{
	EOF:        "EOF",
	IDENTIFIER: "IDENTIFIER",
	RETURN:     "RETURN",
	LPAREN:     "LPAREN",
	RPAREN:     "RPAREN",
	LBRACE:     "LBRACE",
	RBRACE:     "RBRACE",
	SEMICOLON:  "SEMICOLON",
	COMMA:      "COMMA",
	INT_LIT:    "INT_LIT",
	FLOAT_LIT:  "FLOAT_LIT",
	BOOL_LIT:   "BOOL_LIT",
	ILLEGAL:    "ILLEGAL",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Token is a single lexical unit produced by the Lexer. It carries no text of
// its own; the lexeme is recovered from the source through Span.
//
// The zero Token is the end-of-stream sentinel: EOF with an empty span at 0.
type Token struct {
	Type TokenType
	Span Span
}

// Text returns the lexeme of t within src.
func (t Token) Text(src string) string {
	return t.Span.Text(src)
}

func (t Token) String() string {
	return fmt.Sprintf("%-10s %s", t.Type, t.Span)
}
