package sema

import (
	"strconv"

	"github.com/LetsZero/zero-compiler/internal/ast"
	"github.com/LetsZero/zero-compiler/internal/diag"
	"github.com/LetsZero/zero-compiler/internal/types"
)

// typeOf computes expr's static type, accumulating any diagnostics along
// the way. It never returns early on error - an ill-typed subexpression
// resolves to types.Unknown and checking continues outward.
func (c *checker) typeOf(expr ast.Expr) types.Kind {
	switch e := expr.(type) {
	case *ast.Identifier:
		if k, ok := c.lookup(e.Name); ok {
			return k
		}
		c.report(diag.SemUndefinedVariable, e.Span, "undefined variable '"+e.Name+"'")
		return types.Unknown
	case *ast.IntLiteral:
		return types.Int
	case *ast.FloatLiteral:
		return types.Float
	case *ast.StringLiteral:
		return types.Unknown
	case *ast.Binary:
		lhs := c.typeOf(e.Lhs)
		rhs := c.typeOf(e.Rhs)
		return types.BinaryResult(lhs, rhs)
	case *ast.Unary:
		return c.typeOf(e.Operand)
	case *ast.Call:
		return c.typeOfCall(e)
	case *ast.Group:
		return c.typeOf(e.Inner)
	default:
		return types.Unknown
	}
}

func (c *checker) typeOfCall(call *ast.Call) types.Kind {
	sig, ok := c.sigs[call.Callee]
	if !ok {
		c.report(diag.SemUndefinedFunction, call.Span, "undefined function '"+call.Callee+"'")
		for _, a := range call.Args {
			c.typeOf(a)
		}
		return types.Unknown
	}
	if len(call.Args) != len(sig.ParamTypes) {
		c.report(diag.SemWrongArgCount, call.Span,
			call.Callee+" expects "+strconv.Itoa(len(sig.ParamTypes))+" argument(s), got "+strconv.Itoa(len(call.Args)))
	}
	for i, a := range call.Args {
		argType := c.typeOf(a)
		if i >= len(sig.ParamTypes) {
			continue
		}
		if !types.Compatible(sig.ParamTypes[i], argType) {
			c.report(diag.SemTypeMismatch, a.ExprSpan(),
				"argument "+strconv.Itoa(i+1)+" to '"+call.Callee+"': expected "+sig.ParamTypes[i].String()+", got "+argType.String())
		}
	}
	return sig.ReturnType
}
