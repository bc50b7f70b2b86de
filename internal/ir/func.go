package ir

import "github.com/LetsZero/zero-compiler/internal/types"

// Func is one lowered function: its signature plus a CFG of basic blocks.
// Block index 0 is always the entry block. Value and block ids are
// allocated monotonically per function so that every id names exactly
// one SSA definition.
type Func struct {
	Name       string
	ParamTypes []types.Kind
	ReturnType types.Kind

	// ParamValues holds the SSA value id lowering materialized for each
	// parameter, in declaration order. CALL uses this to bind the
	// caller's argument vector into the callee's frame before running
	// its entry block.
	ParamValues []Value

	Blocks []*Block

	nextValueID uint32
	nextBlockID uint32
}

// NewFunc creates an empty function with the given signature and no
// blocks. Callers append at least one block (the entry block) before
// lowering instructions into it.
func NewFunc(name string, paramTypes []types.Kind, returnType types.Kind) *Func {
	return &Func{Name: name, ParamTypes: paramTypes, ReturnType: returnType, nextValueID: 1}
}

// NewValue allocates a fresh SSA value of the given type.
func (f *Func) NewValue(t types.Kind) Value {
	v := Value{ID: f.nextValueID, Type: t}
	f.nextValueID++
	return v
}

// NewBlock allocates and appends a new basic block, returning it.
func (f *Func) NewBlock(label string) *Block {
	b := &Block{ID: f.nextBlockID, Label: label}
	f.nextBlockID++
	f.Blocks = append(f.Blocks, b)
	return b
}

// Block returns the block with the given id, or nil if out of range.
func (f *Func) Block(id uint32) *Block {
	if int(id) >= len(f.Blocks) {
		return nil
	}
	return f.Blocks[id]
}
