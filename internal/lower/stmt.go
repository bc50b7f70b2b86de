package lower

import (
	"github.com/LetsZero/zero-compiler/internal/ast"
	"github.com/LetsZero/zero-compiler/internal/ir"
)

func (b *builder) lowerStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		b.lowerStmt(s)
	}
}

func (b *builder) lowerStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.Let:
		// No alloca is emitted for plain locals: the IR is pure SSA and
		// the symbol table simply rebinds the name to its init value.
		b.vars[s.Name] = b.lowerExpr(s.Init)
	case *ast.Return:
		var operands []ir.Value
		if s.Value != nil {
			operands = []ir.Value{b.lowerExpr(s.Value)}
		}
		b.emit(ir.Instr{Op: ir.RET, Operands: operands})
	case *ast.ExprStmt:
		b.lowerExpr(s.Expr)
	case *ast.If:
		b.lowerIf(s)
	case *ast.While:
		b.lowerWhile(s)
	case *ast.Block:
		b.lowerStmts(s.Stmts)
	}
}

// lowerIf implements the block template from the control-flow lowering
// design: a cond_br into if.then/if.else (if.else collapses into if.end
// when there is no else branch), both arms rejoining at if.end.
func (b *builder) lowerIf(s *ast.If) {
	cond := b.lowerExpr(s.Cond)

	thenBlk := b.fn.NewBlock("if.then")
	var elseBlk *ir.Block
	if s.Else != nil {
		elseBlk = b.fn.NewBlock("if.else")
	}
	endBlk := b.fn.NewBlock("if.end")

	elseTarget := endBlk
	if elseBlk != nil {
		elseTarget = elseBlk
	}

	b.emit(ir.Instr{Op: ir.COND_BR, Operands: []ir.Value{cond}, TargetBlock: thenBlk.ID, ElseBlock: elseTarget.ID})

	b.setInsertPoint(thenBlk)
	b.lowerStmts(s.Then)
	if !b.current.Terminated() {
		b.emit(ir.Instr{Op: ir.BR, TargetBlock: endBlk.ID})
	}

	if elseBlk != nil {
		b.setInsertPoint(elseBlk)
		b.lowerStmts(s.Else)
		if !b.current.Terminated() {
			b.emit(ir.Instr{Op: ir.BR, TargetBlock: endBlk.ID})
		}
	}

	b.setInsertPoint(endBlk)
}

// lowerWhile implements the pre-tested-loop block template: an
// unconditional jump into while.cond, a cond_br out to while.body or
// while.end, and the body branching back to while.cond.
func (b *builder) lowerWhile(s *ast.While) {
	condBlk := b.fn.NewBlock("while.cond")
	bodyBlk := b.fn.NewBlock("while.body")
	endBlk := b.fn.NewBlock("while.end")

	b.emit(ir.Instr{Op: ir.BR, TargetBlock: condBlk.ID})

	b.setInsertPoint(condBlk)
	cond := b.lowerExpr(s.Cond)
	b.emit(ir.Instr{Op: ir.COND_BR, Operands: []ir.Value{cond}, TargetBlock: bodyBlk.ID, ElseBlock: endBlk.ID})

	b.setInsertPoint(bodyBlk)
	b.lowerStmts(s.Body)
	if !b.current.Terminated() {
		b.emit(ir.Instr{Op: ir.BR, TargetBlock: condBlk.ID})
	}

	b.setInsertPoint(endBlk)
}
