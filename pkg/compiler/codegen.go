package compiler

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
)

// returnReg is the register a function leaves its result in.
const returnReg = "w0"

// CodeGen walks an AST and emits assembly text. It keeps no state between
// calls, so one value may serve any number of programs.
type CodeGen struct{}

func newCodeGen() *CodeGen {
	return &CodeGen{}
}

func (cg *CodeGen) genProgram(prog *Program) (string, error) {
	decls := make([]string, len(prog.Decls))
	for i, d := range prog.Decls {
		text, err := cg.genDecl(d)
		if err != nil {
			return "", err
		}
		decls[i] = text
	}
	return strings.Join(decls, "\n"), nil
}

func (cg *CodeGen) genDecl(d Decl) (string, error) {
	switch n := d.(type) {
	case *Function:
		return cg.genFunction(n)
	default:
		return "", &UnsupportedError{Construct: fmt.Sprintf("declaration %T", d), Span: d.Pos()}
	}
}

func (cg *CodeGen) genFunction(f *Function) (string, error) {
	body, err := cg.genBlock(f.Body)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	fmt.Fprintf(&out, "\t.globl _%s\n\n", f.Name.Name)
	fmt.Fprintf(&out, "_%s:\n", f.Name.Name)
	out.WriteString(body)
	out.WriteByte('\n')
	return out.String(), nil
}

func (cg *CodeGen) genBlock(b *Block) (string, error) {
	stmts := make([]string, len(b.Stmts))
	for i, s := range b.Stmts {
		text, err := cg.genStmt(s)
		if err != nil {
			return "", err
		}
		stmts[i] = text
	}
	return strings.Join(stmts, "\n"), nil
}

func (cg *CodeGen) genStmt(s Stmt) (string, error) {
	switch n := s.(type) {
	case *ReturnStmt:
		if n.Value == nil {
			return "\tret", nil
		}
		operand, err := cg.genExpr(n.Value)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("\tmov\t%s, %s\n\tret", returnReg, operand), nil
	default:
		return "", &UnsupportedError{Construct: fmt.Sprintf("statement %T", s), Span: s.Pos()}
	}
}

// genExpr returns the operand text for e.
func (cg *CodeGen) genExpr(e Expr) (string, error) {
	switch n := e.(type) {
	case *PrimaryExpr:
		return cg.genPrimary(n.Value)
	default:
		return "", &UnsupportedError{Construct: fmt.Sprintf("expression %T", e), Span: e.Pos()}
	}
}

func (cg *CodeGen) genPrimary(p Primary) (string, error) {
	switch n := p.(type) {
	case Literal:
		return cg.genLiteral(n)
	case Ident:
		return "", &UnsupportedError{Construct: fmt.Sprintf("reference to %q", n.Name), Span: n.Span}
	default:
		return "", &UnsupportedError{Construct: fmt.Sprintf("primary %T", p), Span: p.Pos()}
	}
}

func (cg *CodeGen) genLiteral(l Literal) (string, error) {
	switch v := l.Value.(type) {
	case IntValue:
		return fmt.Sprintf("#%d", int32(v)), nil
	case FloatValue, DoubleValue, CharValue, BoolValue:
		return "", &UnsupportedError{Construct: l.Value.primitive().String() + " literal", Span: l.Span}
	default:
		return "", &UnsupportedError{Construct: fmt.Sprintf("literal %T", l.Value), Span: l.Span}
	}
}

// Generate emits the program's declarations in source order, separated by
// blank lines.
func Generate(prog *Program) (string, error) {
	return newCodeGen().genProgram(prog)
}

// GenerateConcurrent is Generate with declarations translated on up to
// workers goroutines (workers <= 0 means no limit). Output and the reported
// error are the same as Generate's: results are slotted by declaration index
// and the error of the earliest failing declaration wins.
func GenerateConcurrent(ctx context.Context, prog *Program, workers int) (string, error) {
	cg := newCodeGen()
	decls := make([]string, len(prog.Decls))
	errs := make([]error, len(prog.Decls))

	var g errgroup.Group
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, d := range prog.Decls {
		i, d := i, d
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			decls[i], errs[i] = cg.genDecl(d)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}
	for _, err := range errs {
		if err != nil {
			return "", err
		}
	}
	return strings.Join(decls, "\n"), nil
}
