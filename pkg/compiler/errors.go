package compiler

import "fmt"

// Spanned is implemented by every error the compiler produces so drivers can
// point at the offending source text.
type Spanned interface {
	error
	ErrSpan() Span
}

// LexError reports a character that starts no token.
type LexError struct {
	Char rune
	Span Span
}

func (e *LexError) Error() string {
	return fmt.Sprintf("unexpected character %q at %s", e.Char, e.Span)
}

func (e *LexError) ErrSpan() Span { return e.Span }

// UnexpectedTokenError reports a token that does not fit the grammar at the
// current position. Expected is EOF when several kinds would have been valid.
type UnexpectedTokenError struct {
	Lexeme   string
	Token    Token
	Expected TokenType
}

func (e *UnexpectedTokenError) Error() string {
	if e.Expected == EOF {
		return fmt.Sprintf("unexpected %s (%q) at %s", e.Token.Type, e.Lexeme, e.Token.Span)
	}
	return fmt.Sprintf("expected %s, got %s (%q) at %s", e.Expected, e.Token.Type, e.Lexeme, e.Token.Span)
}

func (e *UnexpectedTokenError) ErrSpan() Span { return e.Token.Span }

// NumericError reports literal text that does not fit its target type.
type NumericError struct {
	Lexeme string
	Span   Span
	Err    error
}

func (e *NumericError) Error() string {
	return fmt.Sprintf("invalid numeric literal %q at %s: %v", e.Lexeme, e.Span, e.Err)
}

func (e *NumericError) Unwrap() error { return e.Err }

func (e *NumericError) ErrSpan() Span { return e.Span }

// UnknownTypeError reports a type name outside the primitive table.
type UnknownTypeError struct {
	Name string
	Span Span
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown type name %q at %s", e.Name, e.Span)
}

func (e *UnknownTypeError) ErrSpan() Span { return e.Span }

// UnsupportedError reports a construct that parses but that the pipeline
// cannot yet translate.
type UnsupportedError struct {
	Construct string
	Span      Span
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported %s at %s", e.Construct, e.Span)
}

func (e *UnsupportedError) ErrSpan() Span { return e.Span }
