package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// Print renders m in the stable text format used by golden-file tests:
//
//	fn @name(t0, t1, ...) -> ret {
//	bbN_label:
//	  %id = opcode ... operands
//	  ...
//	}
func Print(m *Module) string {
	var sb strings.Builder
	for i, fn := range m.Funcs {
		if i > 0 {
			sb.WriteString("\n")
		}
		printFunc(&sb, fn)
	}
	return sb.String()
}

func printFunc(sb *strings.Builder, fn *Func) {
	params := make([]string, len(fn.ParamTypes))
	for i, t := range fn.ParamTypes {
		params[i] = t.String()
	}
	fmt.Fprintf(sb, "fn @%s(%s) -> %s {\n", fn.Name, strings.Join(params, ", "), fn.ReturnType.String())
	for _, b := range fn.Blocks {
		fmt.Fprintf(sb, "bb%d_%s:\n", b.ID, b.Label)
		for _, instr := range b.Instrs {
			sb.WriteString("  ")
			sb.WriteString(printInstr(instr))
			sb.WriteString("\n")
		}
	}
	sb.WriteString("}\n")
}

func printInstr(in Instr) string {
	switch in.Op {
	case CONST_INT:
		return fmt.Sprintf("%s = %s %d", printValue(in.Result), in.Op, in.ImmInt)
	case CONST_FLOAT:
		return fmt.Sprintf("%s = %s %s", printValue(in.Result), in.Op, strconv.FormatFloat(in.ImmFloat, 'g', -1, 64))
	case CONST_STR:
		return fmt.Sprintf("%s = %s %q", printValue(in.Result), in.Op, in.ImmStr)
	case CALL:
		return fmt.Sprintf("%s = %s @%s(%s)", printValue(in.Result), in.Op, in.Callee, printOperands(in.Operands))
	case RET:
		if len(in.Operands) == 0 {
			return in.Op.String()
		}
		return fmt.Sprintf("%s %s", in.Op, printValue(in.Operands[0]))
	case BR:
		return fmt.Sprintf("%s bb%d", in.Op, in.TargetBlock)
	case COND_BR:
		return fmt.Sprintf("%s %s, bb%d, bb%d", in.Op, printValue(in.Operands[0]), in.TargetBlock, in.ElseBlock)
	case STORE, ALLOCA:
		return fmt.Sprintf("%s %s", in.Op, printOperands(in.Operands))
	default:
		if in.Result.Valid() {
			return fmt.Sprintf("%s = %s %s", printValue(in.Result), in.Op, printOperands(in.Operands))
		}
		return fmt.Sprintf("%s %s", in.Op, printOperands(in.Operands))
	}
}

func printValue(v Value) string {
	return fmt.Sprintf("%%%d", v.ID)
}

func printOperands(vs []Value) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = printValue(v)
	}
	return strings.Join(parts, ", ")
}
