// Package compiler provides the lexer, parser, and code generator for a small
// C subset, emitting assembly text with one labelled block per function.
//
// Pipeline: C source → Lex → Parse → Generate → assembly text
//
// The package does no I/O. Every stage returns its first error as one of the
// typed errors in errors.go, all of which carry a Span into the source.
package compiler
