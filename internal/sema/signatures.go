package sema

import (
	"github.com/LetsZero/zero-compiler/internal/ast"
	"github.com/LetsZero/zero-compiler/internal/diag"
	"github.com/LetsZero/zero-compiler/internal/types"
)

// collectSignatures populates c.sigs with every function's
// {name, param_types, return_type}, in a single flat (non-scoped)
// namespace. A later function reusing an earlier name is a
// DuplicateDefinition; the first declaration wins and is kept.
func (c *checker) collectSignatures(prog *ast.Program) {
	for _, fn := range prog.Funcs {
		if _, exists := c.sigs[fn.Name]; exists {
			c.report(diag.SemDuplicateDefinition, fn.Span, "redefinition of function '"+fn.Name+"'")
			continue
		}
		paramTypes := make([]types.Kind, len(fn.Params))
		for i, p := range fn.Params {
			paramTypes[i] = types.FromTypeName(p.Type)
		}
		c.sigs[fn.Name] = types.FnSignature{
			Name:       fn.Name,
			ParamTypes: paramTypes,
			ReturnType: types.FromTypeName(fn.ReturnType),
		}
	}
}
