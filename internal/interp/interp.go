package interp

import (
	"github.com/LetsZero/zero-compiler/internal/ir"
)

// Interp executes a single ir.Module. It borrows the module for the
// duration of Run and never mutates it.
type Interp struct {
	mod      *ir.Module
	extern   *Registry
	frames   []*Frame
}

// New creates an interpreter over mod using extern for external function
// dispatch. extern may be nil, in which case every CALL resolves
// internally or not at all.
func New(mod *ir.Module, extern *Registry) *Interp {
	if extern == nil {
		extern = NewRegistry()
	}
	return &Interp{mod: mod, extern: extern}
}

// Run executes entryFn with no arguments and returns the RuntimeValue it
// returned (Void if it returned nothing); ExitCode turns that value into
// a process exit code. The bool is false only when entryFn does not
// exist, the one fatal failure the interpreter itself recognizes.
func (in *Interp) Run(entryFn string) (RuntimeValue, bool) {
	fn := in.mod.GetFunction(entryFn)
	if fn == nil {
		return Void, false
	}
	return in.call(fn, nil), true
}

// call pushes a frame for fn, binds args into its materialized
// parameter values, and drives the execution loop until the frame
// returns.
func (in *Interp) call(fn *ir.Func, args []RuntimeValue) RuntimeValue {
	frame := newFrame(fn)
	for i, pv := range fn.ParamValues {
		if i < len(args) {
			frame.set(pv, args[i])
		}
	}
	in.frames = append(in.frames, frame)
	defer func() { in.frames = in.frames[:len(in.frames)-1] }()

	for !frame.Returned {
		blk := frame.currentBlock()
		if blk == nil {
			// Blocks exhausted without a terminator: synthesized void
			// return (Exhausted state in the documented state machine).
			return Void
		}
		if frame.InstrIdx >= len(blk.Instrs) {
			// Defensive fallthrough to the next block; well-formed
			// lowering never relies on this.
			frame.BlockIdx++
			frame.InstrIdx = 0
			continue
		}
		instr := blk.Instrs[frame.InstrIdx]
		in.step(frame, instr)
	}
	return frame.Result
}

// step executes one instruction against frame, advancing its cursor
// according to the documented state machine (Running/Branching/
// Returning transitions; Exhausted is handled in call's loop above).
func (in *Interp) step(frame *Frame, instr ir.Instr) {
	switch instr.Op {
	case ir.RET:
		if len(instr.Operands) > 0 {
			frame.Result = frame.get(instr.Operands[0])
		} else {
			frame.Result = Void
		}
		frame.Returned = true
		return
	case ir.BR:
		frame.BlockIdx = int(instr.TargetBlock)
		frame.InstrIdx = 0
		return
	case ir.COND_BR:
		cond := frame.get(instr.Operands[0])
		if cond.ToInt() != 0 {
			frame.BlockIdx = int(instr.TargetBlock)
		} else {
			frame.BlockIdx = int(instr.ElseBlock)
		}
		frame.InstrIdx = 0
		return
	}

	in.evalNonTerminator(frame, instr)
	frame.InstrIdx++
}
