package sema

import (
	"github.com/LetsZero/zero-compiler/internal/ast"
	"github.com/LetsZero/zero-compiler/internal/diag"
	"github.com/LetsZero/zero-compiler/internal/types"
)

func (c *checker) checkStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.Let:
		c.checkLet(s)
	case *ast.Return:
		c.checkReturn(s)
	case *ast.ExprStmt:
		c.typeOf(s.Expr)
	case *ast.If:
		c.checkIf(s)
	case *ast.While:
		c.checkWhile(s)
	case *ast.Block:
		c.pushScope()
		c.checkStmts(s.Stmts)
		c.popScope()
	}
}

func (c *checker) checkLet(s *ast.Let) {
	initType := c.typeOf(s.Init)
	declType := initType
	if s.Type != "" {
		annotated := types.FromTypeName(s.Type)
		if !types.Compatible(annotated, initType) {
			c.report(diag.SemTypeMismatch, s.Init.ExprSpan(),
				"cannot assign "+initType.String()+" to '"+s.Name+"' of type "+annotated.String())
		}
		declType = annotated
	}
	c.declare(s.Name, declType, s.Span)
}

func (c *checker) checkReturn(s *ast.Return) {
	valType := types.Void
	if s.Value != nil {
		valType = c.typeOf(s.Value)
	}
	if c.currentReturn != types.Unknown && !types.Compatible(c.currentReturn, valType) {
		c.report(diag.SemReturnTypeMismatch, s.Span,
			"return type mismatch: expected "+c.currentReturn.String()+", got "+valType.String())
	}
}

func (c *checker) checkIf(s *ast.If) {
	c.typeOf(s.Cond)
	c.pushScope()
	c.checkStmts(s.Then)
	c.popScope()
	if s.Else != nil {
		c.pushScope()
		c.checkStmts(s.Else)
		c.popScope()
	}
}

func (c *checker) checkWhile(s *ast.While) {
	c.typeOf(s.Cond)
	c.pushScope()
	c.checkStmts(s.Body)
	c.popScope()
}
