// Package ast defines the Zero abstract syntax tree. Every node is a
// concrete struct implementing Expr or Stmt; dispatch is by type switch,
// not by virtual method tables, so the tree stays flat and easy to walk.
package ast

import "github.com/LetsZero/zero-compiler/internal/source"

// Expr is implemented by every expression node.
type Expr interface {
	exprNode()
	ExprSpan() source.Span
}

// BinaryOp enumerates the binary operators the parser can produce.
type BinaryOp uint8

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpEq
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
)

func (op BinaryOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpEq:
		return "=="
	case OpNe:
		return "!="
	case OpLt:
		return "<"
	case OpLe:
		return "<="
	case OpGt:
		return ">"
	case OpGe:
		return ">="
	default:
		return "?"
	}
}

// IsComparison reports whether op produces a boolean-as-int result rather
// than a numerically-promoted arithmetic result.
func (op BinaryOp) IsComparison() bool {
	switch op {
	case OpEq, OpNe, OpLt, OpLe, OpGt, OpGe:
		return true
	default:
		return false
	}
}

// UnaryOp enumerates the unary operators the parser can produce.
type UnaryOp uint8

const (
	OpNeg UnaryOp = iota
	OpNot
)

func (op UnaryOp) String() string {
	if op == OpNot {
		return "!"
	}
	return "-"
}

// Identifier is a bare name reference.
type Identifier struct {
	Name string
	Span source.Span
}

func (*Identifier) exprNode()                     {}
func (e *Identifier) ExprSpan() source.Span        { return e.Span }

// IntLiteral is an integer constant.
type IntLiteral struct {
	Value int64
	Span  source.Span
}

func (*IntLiteral) exprNode()              {}
func (e *IntLiteral) ExprSpan() source.Span { return e.Span }

// FloatLiteral is a floating-point constant.
type FloatLiteral struct {
	Value float64
	Span  source.Span
}

func (*FloatLiteral) exprNode()               {}
func (e *FloatLiteral) ExprSpan() source.Span  { return e.Span }

// StringLiteral is a string constant. It is typed Unknown by the semantic
// analyzer since the language has no first-class string type.
type StringLiteral struct {
	Value string
	Span  source.Span
}

func (*StringLiteral) exprNode()              {}
func (e *StringLiteral) ExprSpan() source.Span { return e.Span }

// Binary is a binary operator expression.
type Binary struct {
	Op    BinaryOp
	Lhs   Expr
	Rhs   Expr
	Span  source.Span
}

func (*Binary) exprNode()              {}
func (e *Binary) ExprSpan() source.Span { return e.Span }

// Unary is a prefix unary operator expression.
type Unary struct {
	Op      UnaryOp
	Operand Expr
	Span    source.Span
}

func (*Unary) exprNode()              {}
func (e *Unary) ExprSpan() source.Span { return e.Span }

// Call is a function-call expression. The callee is referenced by name
// only (no first-class function values exist).
type Call struct {
	Callee string
	Args   []Expr
	Span   source.Span
}

func (*Call) exprNode()              {}
func (e *Call) ExprSpan() source.Span { return e.Span }

// Group is a parenthesized expression, kept distinct from its inner
// expression so the printer and diagnostics can report the original span.
type Group struct {
	Inner Expr
	Span  source.Span
}

func (*Group) exprNode()              {}
func (e *Group) ExprSpan() source.Span { return e.Span }
