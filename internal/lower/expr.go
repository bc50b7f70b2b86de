package lower

import (
	"github.com/LetsZero/zero-compiler/internal/ast"
	"github.com/LetsZero/zero-compiler/internal/ir"
	"github.com/LetsZero/zero-compiler/internal/types"
)

// lowerExpr is a pure tree walk producing the Value an expression
// evaluates to, emitting whatever instructions are needed into the
// builder's current block along the way.
func (b *builder) lowerExpr(expr ast.Expr) ir.Value {
	switch e := expr.(type) {
	case *ast.Identifier:
		if v, ok := b.vars[e.Name]; ok {
			return v
		}
		return ir.InvalidValue
	case *ast.IntLiteral:
		v := b.fn.NewValue(types.Int)
		b.emit(ir.Instr{Op: ir.CONST_INT, Result: v, ImmInt: e.Value})
		return v
	case *ast.FloatLiteral:
		v := b.fn.NewValue(types.Float)
		b.emit(ir.Instr{Op: ir.CONST_FLOAT, Result: v, ImmFloat: e.Value})
		return v
	case *ast.StringLiteral:
		v := b.fn.NewValue(types.Unknown)
		b.emit(ir.Instr{Op: ir.CONST_STR, Result: v, ImmStr: e.Value})
		return v
	case *ast.Binary:
		return b.lowerBinary(e)
	case *ast.Unary:
		return b.lowerUnary(e)
	case *ast.Call:
		return b.lowerCall(e)
	case *ast.Group:
		return b.lowerExpr(e.Inner)
	default:
		return ir.InvalidValue
	}
}

func binaryOpcode(op ast.BinaryOp) ir.Opcode {
	switch op {
	case ast.OpAdd:
		return ir.ADD
	case ast.OpSub:
		return ir.SUB
	case ast.OpMul:
		return ir.MUL
	case ast.OpDiv:
		return ir.DIV
	case ast.OpEq:
		return ir.CMP_EQ
	case ast.OpNe:
		return ir.CMP_NE
	case ast.OpLt:
		return ir.CMP_LT
	case ast.OpLe:
		return ir.CMP_LE
	case ast.OpGt:
		return ir.CMP_GT
	case ast.OpGe:
		return ir.CMP_GE
	default:
		return ir.NOP
	}
}

func (b *builder) lowerBinary(e *ast.Binary) ir.Value {
	lhs := b.lowerExpr(e.Lhs)
	rhs := b.lowerExpr(e.Rhs)
	resultType := types.Int
	if !e.Op.IsComparison() {
		resultType = types.BinaryResult(lhs.Type, rhs.Type)
	}
	v := b.fn.NewValue(resultType)
	b.emit(ir.Instr{Op: binaryOpcode(e.Op), Result: v, Operands: []ir.Value{lhs, rhs}})
	return v
}

func (b *builder) lowerUnary(e *ast.Unary) ir.Value {
	operand := b.lowerExpr(e.Operand)
	if e.Op == ast.OpNot {
		// NOT is reserved: the core has no boolean type, so '!' is
		// parsed but not evaluated as a distinct opcode.
		return operand
	}
	v := b.fn.NewValue(operand.Type)
	b.emit(ir.Instr{Op: ir.NEG, Result: v, Operands: []ir.Value{operand}})
	return v
}

func (b *builder) lowerCall(e *ast.Call) ir.Value {
	args := make([]ir.Value, len(e.Args))
	for i, a := range e.Args {
		args[i] = b.lowerExpr(a)
	}
	// The callee's actual return type is resolved dynamically by the
	// interpreter; lowering always assumes Void here.
	v := b.fn.NewValue(types.Void)
	b.emit(ir.Instr{Op: ir.CALL, Result: v, Operands: args, Callee: e.Callee})
	return v
}
