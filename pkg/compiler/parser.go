package compiler

import "strconv"

// Parser consumes the flat token slice produced by the Lexer and builds an AST.
//
// Grammar (LL(1), no backtracking):
//
//	program     = declaration* EOF
//	declaration = function
//	function    = type IDENTIFIER "(" params? ")" block
//	params      = parameter ("," parameter)* ","?
//	parameter   = "void" IDENTIFIER | type IDENTIFIER
//	block       = "{" statement* "}"
//	statement   = returnStmt
//	returnStmt  = "return" expression? ";"
//	expression  = primary
//	primary     = literal | IDENTIFIER
//	literal     = INT_LIT | FLOAT_LIT | BOOL_LIT
//	type        = IDENTIFIER   (one of void int float double char bool)
//
// Parsing stops at the first error; no partial Program is returned.
type Parser struct {
	src    string
	tokens []Token
	pos    int
}

func NewParser(tokens []Token, src string) *Parser {
	return &Parser{src: src, tokens: tokens}
}

// Parse builds a Program from tokens lexed out of src.
func Parse(tokens []Token, src string) (*Program, error) {
	return NewParser(tokens, src).ParseProgram()
}

// peek returns the current token without consuming it, or the EOF sentinel
// past the end of the slice.
func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return Token{}
	}
	return p.tokens[p.pos]
}

// advance consumes and returns the current token.
func (p *Parser) advance() Token {
	tok := p.peek()
	p.pos++
	return tok
}

func (p *Parser) text(tok Token) string {
	return tok.Text(p.src)
}

func (p *Parser) unexpected(tok Token, expected TokenType) error {
	return &UnexpectedTokenError{Lexeme: p.text(tok), Token: tok, Expected: expected}
}

// expect consumes the current token if it matches tt, otherwise returns an error.
func (p *Parser) expect(tt TokenType) (Token, error) {
	tok := p.advance()
	if tok.Type != tt {
		return tok, p.unexpected(tok, tt)
	}
	return tok, nil
}

// startsType reports whether tok can begin a type. "bool" is lexed as a
// BOOL_LIT, so it is accepted here alongside identifiers.
func (p *Parser) startsType(tok Token) bool {
	return tok.Type == IDENTIFIER || tok.Type == BOOL_LIT && p.text(tok) == "bool"
}

// ParseProgram parses declarations until the token stream is exhausted.
func (p *Parser) ParseProgram() (*Program, error) {
	prog := &Program{}
	for p.peek().Type != EOF {
		decl, err := p.parseDecl()
		if err != nil {
			return nil, err
		}
		prog.Decls = append(prog.Decls, decl)
	}
	return prog, nil
}

func (p *Parser) parseDecl() (Decl, error) {
	tok := p.peek()
	if !p.startsType(tok) {
		return nil, p.unexpected(tok, IDENTIFIER)
	}
	return p.parseFunction()
}

func (p *Parser) parseFunction() (*Function, error) {
	start := p.peek().Span

	retType, err := p.parseType()
	if err != nil {
		return nil, err
	}
	name, err := p.parseIdent()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(LPAREN); err != nil {
		return nil, err
	}
	var params []Parameter
	for p.peek().Type != RPAREN {
		param, err := p.parseParameter()
		if err != nil {
			return nil, err
		}
		params = append(params, param)

		if p.peek().Type == COMMA {
			p.advance()
		}
	}
	if _, err := p.expect(RPAREN); err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &Function{
		ReturnType: retType,
		Name:       name,
		Params:     params,
		Body:       body,
		Span:       start.Join(body.Span),
	}, nil
}

// parseParameter handles "void x" explicitly so the Void primitive is kept
// even if the general type path changes.
func (p *Parser) parseParameter() (Parameter, error) {
	start := p.peek()

	var ty Type
	if start.Type == IDENTIFIER && p.text(start) == "void" {
		p.advance()
		ty = PrimitiveType{Kind: Void, Span: start.Span}
	} else {
		t, err := p.parseType()
		if err != nil {
			return Parameter{}, err
		}
		ty = t
	}

	name, err := p.parseIdent()
	if err != nil {
		return Parameter{}, err
	}
	return Parameter{Type: ty, Name: name, Span: start.Span.Join(name.Span)}, nil
}

func (p *Parser) parseType() (Type, error) {
	tok := p.advance()
	if !p.startsType(tok) {
		return nil, p.unexpected(tok, IDENTIFIER)
	}
	name := p.text(tok)
	kind, ok := lookupPrimitive(name)
	if !ok {
		return nil, &UnknownTypeError{Name: name, Span: tok.Span}
	}
	return PrimitiveType{Kind: kind, Span: tok.Span}, nil
}

func (p *Parser) parseIdent() (Ident, error) {
	tok, err := p.expect(IDENTIFIER)
	if err != nil {
		return Ident{}, err
	}
	return Ident{Name: p.text(tok), Span: tok.Span}, nil
}

func (p *Parser) parseBlock() (*Block, error) {
	open, err := p.expect(LBRACE)
	if err != nil {
		return nil, err
	}

	var stmts []Stmt
	for p.peek().Type != RBRACE {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}

	closing, err := p.expect(RBRACE)
	if err != nil {
		return nil, err
	}
	return &Block{Stmts: stmts, Span: open.Span.Join(closing.Span)}, nil
}

func (p *Parser) parseStatement() (Stmt, error) {
	tok := p.peek()
	switch tok.Type {
	case RETURN:
		return p.parseReturn()
	default:
		return nil, p.unexpected(tok, RETURN)
	}
}

func (p *Parser) parseReturn() (*ReturnStmt, error) {
	kw, err := p.expect(RETURN)
	if err != nil {
		return nil, err
	}

	var value Expr
	if p.peek().Type != SEMICOLON {
		value, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}

	semi, err := p.expect(SEMICOLON)
	if err != nil {
		return nil, err
	}
	return &ReturnStmt{Value: value, Span: kw.Span.Join(semi.Span)}, nil
}

// parseExpression is the entry point for expression parsing.
func (p *Parser) parseExpression() (Expr, error) {
	return p.parsePrimary(false)
}

func (p *Parser) parsePrimary(wide bool) (Expr, error) {
	tok := p.peek()
	switch tok.Type {
	case INT_LIT, FLOAT_LIT, BOOL_LIT:
		lit, err := p.parseLiteral(wide)
		if err != nil {
			return nil, err
		}
		return &PrimaryExpr{Value: lit}, nil
	case IDENTIFIER:
		ident, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		return &PrimaryExpr{Value: ident}, nil
	default:
		return nil, p.unexpected(tok, EOF)
	}
}

// parseLiteral converts the current literal token. Float literals become
// FloatValue, or DoubleValue when wide is set. There is no 64-bit integer
// literal yet.
func (p *Parser) parseLiteral(wide bool) (Literal, error) {
	tok := p.advance()
	text := p.text(tok)

	switch tok.Type {
	case INT_LIT:
		if wide {
			return Literal{}, &UnsupportedError{Construct: "64-bit integer literal", Span: tok.Span}
		}
		n, err := strconv.ParseInt(text, 10, 32)
		if err != nil {
			return Literal{}, &NumericError{Lexeme: text, Span: tok.Span, Err: err}
		}
		return Literal{Value: IntValue(n), Span: tok.Span}, nil

	case FLOAT_LIT:
		if wide {
			f, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return Literal{}, &NumericError{Lexeme: text, Span: tok.Span, Err: err}
			}
			return Literal{Value: DoubleValue(f), Span: tok.Span}, nil
		}
		f, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return Literal{}, &NumericError{Lexeme: text, Span: tok.Span, Err: err}
		}
		return Literal{Value: FloatValue(f), Span: tok.Span}, nil

	case BOOL_LIT:
		if text != "false" {
			return Literal{}, p.unexpected(tok, EOF)
		}
		return Literal{Value: BoolValue(false), Span: tok.Span}, nil
	}

	return Literal{}, p.unexpected(tok, EOF)
}
