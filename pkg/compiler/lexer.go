package compiler

import (
	"strings"
	"unicode/utf8"
)

// keywords lists the reserved words. Matching is case-insensitive.
var keywords = []struct {
	word string
	tt   TokenType
}{
	{"return", RETURN},
}

// boolLexemes are classified as BOOL_LIT before the keyword lookup.
// "bool" is a type name; it lands here because it shares the rule with
// "false". The parser compensates in type position.
var boolLexemes = map[string]bool{
	"false": true,
	"bool":  true,
}

// Lexer holds all mutable state for a single scanning pass over src.
// Tokens are produced on demand by Next; the cursor never moves backwards.
type Lexer struct {
	src   string
	pos   int // byte offset of the next unread character
	start int // byte offset where the current token began
}

// NewLexer returns a Lexer positioned at the start of src.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src}
}

// peek returns the byte at the current position without advancing.
func (l *Lexer) peek() byte {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n'
}

func (l *Lexer) advanceWhile(cond func(byte) bool) {
	for l.pos < len(l.src) && cond(l.src[l.pos]) {
		l.pos++
	}
}

func (l *Lexer) token(tt TokenType) Token {
	return Token{Type: tt, Span: Span{Start: l.start, End: l.pos}}
}

// scanWord classifies a letter/underscore run.
func (l *Lexer) scanWord() Token {
	l.advanceWhile(isLetter)
	lexeme := l.src[l.start:l.pos]
	if boolLexemes[lexeme] {
		return l.token(BOOL_LIT)
	}
	for _, kw := range keywords {
		if strings.EqualFold(lexeme, kw.word) {
			return l.token(kw.tt)
		}
	}
	return l.token(IDENTIFIER)
}

// scanNumber collects a digit run and an optional '.' fraction.
func (l *Lexer) scanNumber() Token {
	l.advanceWhile(isDigit)
	if l.peek() != '.' {
		return l.token(INT_LIT)
	}
	l.pos++ // '.'
	l.advanceWhile(isDigit)
	return l.token(FLOAT_LIT)
}

// Next skips whitespace and returns the next Token. At end of input it
// returns an EOF token, and keeps doing so on further calls.
func (l *Lexer) Next() (Token, error) {
	l.advanceWhile(isSpace)
	l.start = l.pos

	if l.pos >= len(l.src) {
		return l.token(EOF), nil
	}

	ch := l.src[l.pos]
	switch {
	case isLetter(ch):
		return l.scanWord(), nil
	case isDigit(ch):
		return l.scanNumber(), nil
	}

	l.pos++
	switch ch {
	case '(':
		return l.token(LPAREN), nil
	case ')':
		return l.token(RPAREN), nil
	case '{':
		return l.token(LBRACE), nil
	case '}':
		return l.token(RBRACE), nil
	case ';':
		return l.token(SEMICOLON), nil
	case ',':
		return l.token(COMMA), nil
	}

	// Report the whole rune, not just its first byte.
	r, size := utf8.DecodeRuneInString(l.src[l.start:])
	l.pos = l.start + size
	tok := l.token(ILLEGAL)
	return tok, &LexError{Char: r, Span: tok.Span}
}

// Lex tokenises src and returns every token before end of input. The EOF
// token itself is not included; parsers see it as the sentinel past the end.
// It returns a non-nil error, and no tokens, on the first illegal character.
func Lex(src string) ([]Token, error) {
	l := NewLexer(src)
	var tokens []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		if tok.Type == EOF {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}
