// Package lower translates a semantically validated AST into an SSA
// ir.Module, including the control-flow block templates for if/while.
package lower

import (
	"github.com/LetsZero/zero-compiler/internal/ast"
	"github.com/LetsZero/zero-compiler/internal/ir"
	"github.com/LetsZero/zero-compiler/internal/types"
)

// Lower builds an ir.Module from prog, using the function signatures
// sema.Check already collected.
func Lower(prog *ast.Program, sigs map[string]types.FnSignature) *ir.Module {
	mod := &ir.Module{}
	for _, fn := range prog.Funcs {
		mod.Funcs = append(mod.Funcs, lowerFunc(fn, sigs))
	}
	return mod
}

// builder holds per-function lowering state: the function under
// construction, the current insertion point, and a flat symbol table
// mapping source names to their most recent SSA binding. The table is
// reset at the start of every function.
type builder struct {
	fn      *ir.Func
	current *ir.Block
	sigs    map[string]types.FnSignature
	vars    map[string]ir.Value
}

func (b *builder) setInsertPoint(blk *ir.Block) {
	b.current = blk
}

func (b *builder) emit(in ir.Instr) {
	b.current.Instrs = append(b.current.Instrs, in)
}

func lowerFunc(fn *ast.FnDecl, sigs map[string]types.FnSignature) *ir.Func {
	sig := sigs[fn.Name]
	irFn := ir.NewFunc(fn.Name, sig.ParamTypes, sig.ReturnType)
	b := &builder{fn: irFn, sigs: sigs, vars: make(map[string]ir.Value)}

	entry := irFn.NewBlock("entry")
	b.setInsertPoint(entry)

	// Parameters are materialized with fresh SSA ids here rather than
	// left as an interpreter convention: CALL stores the caller's
	// argument vector into these ids before the callee's entry block
	// runs (see Interp.call in package interp).
	for i, p := range fn.Params {
		pt := types.Unknown
		if i < len(sig.ParamTypes) {
			pt = sig.ParamTypes[i]
		}
		v := b.fn.NewValue(pt)
		b.vars[p.Name] = v
		irFn.ParamValues = append(irFn.ParamValues, v)
	}

	b.lowerStmts(fn.Body)

	if !b.current.Terminated() {
		b.emit(ir.Instr{Op: ir.RET})
	}
	return irFn
}
