package sema

import (
	"github.com/LetsZero/zero-compiler/internal/ast"
	"github.com/LetsZero/zero-compiler/internal/types"
)

// checkFunc type-checks one function body in a fresh scope stack seeded
// with its parameters.
func (c *checker) checkFunc(fn *ast.FnDecl) {
	sig := c.sigs[fn.Name]
	c.scopes = []map[string]types.Kind{make(map[string]types.Kind)}
	c.currentReturn = types.FromTypeName(fn.ReturnType)

	for i, p := range fn.Params {
		pt := types.Unknown
		if i < len(sig.ParamTypes) {
			pt = sig.ParamTypes[i]
		}
		c.declare(p.Name, pt, p.Span)
	}

	c.checkStmts(fn.Body)
	c.scopes = nil
}

// checkStmts visits each statement in order without opening a new scope
// of its own; callers open scopes around block-like bodies.
func (c *checker) checkStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		c.checkStmt(s)
	}
}
