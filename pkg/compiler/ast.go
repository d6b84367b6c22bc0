package compiler

import (
	"fmt"
	"strings"
)

// The AST is a strict tree built bottom-up by the parser and never modified
// afterwards. Sum types are sealed interfaces; consumers switch over every
// variant and report an UnsupportedError from the default arm.

//  Program and declarations

// Program is the root of the AST. Decls keeps source order.
type Program struct {
	Decls []Decl
}

func (p *Program) String() string {
	parts := make([]string, len(p.Decls))
	for i, d := range p.Decls {
		parts[i] = d.String()
	}
	return strings.Join(parts, "\n")
}

// Decl is implemented by every top-level declaration.
type Decl interface {
	declNode()
	Pos() Span
	String() string
}

// Function is a function definition.
//
//	int add(int a, int b) { return 0; }
//	^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^  Span
type Function struct {
	ReturnType Type
	Name       Ident
	Params     []Parameter
	Body       *Block
	Span       Span
}

func (*Function) declNode()   {}
func (f *Function) Pos() Span { return f.Span }
func (f *Function) String() string {
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.String()
	}
	return fmt.Sprintf("Function(%s %s(%s) %s)", f.ReturnType, f.Name, strings.Join(params, ", "), f.Body)
}

// Parameter is one entry of a function's parameter list.
// For "void x" Type is the Void primitive.
type Parameter struct {
	Type Type
	Name Ident
	Span Span
}

func (p Parameter) String() string { return fmt.Sprintf("%s %s", p.Type, p.Name) }

// Block is a brace-delimited statement list; Span includes both braces.
type Block struct {
	Stmts []Stmt
	Span  Span
}

func (b *Block) String() string {
	parts := make([]string, len(b.Stmts))
	for i, s := range b.Stmts {
		parts[i] = s.String()
	}
	return fmt.Sprintf("Block%v", parts)
}

//  Statement nodes

// Stmt is implemented by every statement node.
type Stmt interface {
	stmtNode()
	Pos() Span
	String() string
}

// ReturnStmt is "return;" (Value == nil) or "return expr;".
type ReturnStmt struct {
	Value Expr
	Span  Span
}

func (*ReturnStmt) stmtNode()   {}
func (r *ReturnStmt) Pos() Span { return r.Span }
func (r *ReturnStmt) String() string {
	if r.Value == nil {
		return "Return"
	}
	return fmt.Sprintf("Return(%s)", r.Value)
}

//  Expression nodes

// Expr is implemented by every node that produces a value.
type Expr interface {
	exprNode()
	Pos() Span
	String() string
}

// PrimaryExpr wraps a literal or a name reference.
type PrimaryExpr struct {
	Value Primary
}

func (*PrimaryExpr) exprNode()        {}
func (e *PrimaryExpr) Pos() Span      { return e.Value.Pos() }
func (e *PrimaryExpr) String() string { return e.Value.String() }

// Primary is implemented by Literal and Ident.
type Primary interface {
	primaryNode()
	Pos() Span
	String() string
}

// Ident is a name with its location. Two Idents are Equal when their names
// match, wherever they appear.
type Ident struct {
	Name string
	Span Span
}

func (Ident) primaryNode()     {}
func (i Ident) Pos() Span      { return i.Span }
func (i Ident) String() string { return i.Name }

// Equal reports whether i and other name the same thing, ignoring spans.
func (i Ident) Equal(other Ident) bool { return i.Name == other.Name }

// Literal is a constant whose text was converted at parse time.
//
//	return 10;
//	       ^^  Literal{Value: IntValue(10)}
type Literal struct {
	Value LiteralValue
	Span  Span
}

func (Literal) primaryNode()     {}
func (l Literal) Pos() Span      { return l.Span }
func (l Literal) String() string { return l.Value.String() }

// Equal reports whether l and other hold the same value, ignoring spans.
func (l Literal) Equal(other Literal) bool { return l.Value == other.Value }

// Type returns the primitive type of the literal, located at the literal.
func (l Literal) Type() PrimitiveType {
	return PrimitiveType{Kind: l.Value.primitive(), Span: l.Span}
}

// LiteralValue is the converted value of a literal.
type LiteralValue interface {
	primitive() Primitive
	String() string
}

type (
	IntValue    int32
	FloatValue  float32
	DoubleValue float64
	CharValue   rune
	BoolValue   bool
)

func (IntValue) primitive() Primitive    { return Int }
func (FloatValue) primitive() Primitive  { return Float }
func (DoubleValue) primitive() Primitive { return Double }
func (CharValue) primitive() Primitive   { return Char }
func (BoolValue) primitive() Primitive   { return Bool }

func (v IntValue) String() string    { return fmt.Sprintf("%d", int32(v)) }
func (v FloatValue) String() string  { return fmt.Sprintf("%gf", float32(v)) }
func (v DoubleValue) String() string { return fmt.Sprintf("%g", float64(v)) }
func (v CharValue) String() string   { return fmt.Sprintf("%q", rune(v)) }
func (v BoolValue) String() string   { return fmt.Sprintf("%t", bool(v)) }

//  Types

// Type is implemented by every type node.
type Type interface {
	typeNode()
	Pos() Span
	String() string
}

// Primitive enumerates the built-in scalar types.
type Primitive int

const (
	Void Primitive = iota
	Int
	Float
	Double
	Char
	Bool
)

var primitiveNames = [...]string{
	Void:   "void",
	Int:    "int",
	Float:  "float",
	Double: "double",
	Char:   "char",
	Bool:   "bool",
}

func (p Primitive) String() string {
	if int(p) >= 0 && int(p) < len(primitiveNames) {
		return primitiveNames[p]
	}
	return fmt.Sprintf("Primitive(%d)", int(p))
}

// lookupPrimitive resolves a type name against the primitive table.
func lookupPrimitive(name string) (Primitive, bool) {
	for p, n := range primitiveNames {
		if n == name {
			return Primitive(p), true
		}
	}
	return 0, false
}

// PrimitiveType is a use of a built-in type in the source.
type PrimitiveType struct {
	Kind Primitive
	Span Span
}

func (PrimitiveType) typeNode()        {}
func (t PrimitiveType) Pos() Span      { return t.Span }
func (t PrimitiveType) String() string { return t.Kind.String() }

// Equal reports whether t and other are the same primitive, ignoring spans.
func (t PrimitiveType) Equal(other PrimitiveType) bool { return t.Kind == other.Kind }
