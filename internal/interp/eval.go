package interp

import "github.com/LetsZero/zero-compiler/internal/ir"

// evalNonTerminator dispatches every opcode that isn't RET/BR/COND_BR
// (those are handled directly in step, since they affect frame control
// flow rather than producing a value).
func (in *Interp) evalNonTerminator(frame *Frame, instr ir.Instr) {
	switch instr.Op {
	case ir.CONST_INT:
		frame.set(instr.Result, RuntimeValue{Kind: KindInt, Int: instr.ImmInt})
	case ir.CONST_FLOAT:
		frame.set(instr.Result, RuntimeValue{Kind: KindFloat, Float: instr.ImmFloat})
	case ir.CONST_STR:
		frame.set(instr.Result, RuntimeValue{Kind: KindStr, Str: instr.ImmStr})
	case ir.ADD, ir.SUB, ir.MUL, ir.DIV:
		frame.set(instr.Result, in.evalArith(frame, instr))
	case ir.NEG:
		frame.set(instr.Result, evalNeg(frame.get(instr.Operands[0])))
	case ir.CMP_EQ, ir.CMP_NE, ir.CMP_LT, ir.CMP_LE, ir.CMP_GT, ir.CMP_GE:
		frame.set(instr.Result, evalCmp(instr.Op, frame.get(instr.Operands[0]), frame.get(instr.Operands[1])))
	case ir.CALL:
		frame.set(instr.Result, in.evalCall(frame, instr))
	case ir.LOAD:
		if len(instr.Operands) > 0 {
			frame.set(instr.Result, frame.get(instr.Operands[0]))
		}
	case ir.STORE, ir.ALLOCA, ir.NOP:
		// placeholder: no mutable-local support yet
	case ir.TENSOR_ALLOC, ir.TENSOR_ADD, ir.TENSOR_SUB, ir.TENSOR_MUL, ir.TENSOR_MATMUL, ir.TENSOR_RELU:
		frame.set(instr.Result, NullPtr)
	}
}

// evalArith promotes to float when either operand is float; integer
// division by zero coerces to 0 rather than trapping, while float
// division follows IEEE-754 (±Inf or NaN).
func (in *Interp) evalArith(frame *Frame, instr ir.Instr) RuntimeValue {
	lhs := frame.get(instr.Operands[0])
	rhs := frame.get(instr.Operands[1])
	useFloat := lhs.Kind == KindFloat || rhs.Kind == KindFloat

	if useFloat {
		l, r := lhs.ToFloat(), rhs.ToFloat()
		var result float64
		switch instr.Op {
		case ir.ADD:
			result = l + r
		case ir.SUB:
			result = l - r
		case ir.MUL:
			result = l * r
		case ir.DIV:
			result = l / r
		}
		return RuntimeValue{Kind: KindFloat, Float: result}
	}

	l, r := lhs.ToInt(), rhs.ToInt()
	var result int64
	switch instr.Op {
	case ir.ADD:
		result = l + r
	case ir.SUB:
		result = l - r
	case ir.MUL:
		result = l * r
	case ir.DIV:
		if r == 0 {
			result = 0
		} else {
			result = l / r
		}
	}
	return RuntimeValue{Kind: KindInt, Int: result}
}

func evalNeg(v RuntimeValue) RuntimeValue {
	if v.Kind == KindFloat {
		return RuntimeValue{Kind: KindFloat, Float: -v.Float}
	}
	return RuntimeValue{Kind: KindInt, Int: -v.ToInt()}
}

func evalCmp(op ir.Opcode, lhs, rhs RuntimeValue) RuntimeValue {
	l, r := lhs.ToInt(), rhs.ToInt()
	var result bool
	switch op {
	case ir.CMP_EQ:
		result = l == r
	case ir.CMP_NE:
		result = l != r
	case ir.CMP_LT:
		result = l < r
	case ir.CMP_LE:
		result = l <= r
	case ir.CMP_GT:
		result = l > r
	case ir.CMP_GE:
		result = l >= r
	}
	if result {
		return RuntimeValue{Kind: KindInt, Int: 1}
	}
	return RuntimeValue{Kind: KindInt, Int: 0}
}

// evalCall materializes the operand vector and dispatches to an
// external function if one is registered under this name, otherwise to
// an internal (IR-defined) function. An unresolved callee evaluates to
// Void rather than failing the whole run.
func (in *Interp) evalCall(frame *Frame, instr ir.Instr) RuntimeValue {
	args := make([]RuntimeValue, len(instr.Operands))
	for i, op := range instr.Operands {
		args[i] = frame.get(op)
	}
	if fn, ok := in.extern.Lookup(instr.Callee); ok {
		return fn(args)
	}
	if callee := in.mod.GetFunction(instr.Callee); callee != nil {
		return in.call(callee, args)
	}
	return Void
}
