package ir

// Opcode enumerates the fixed instruction set the lowering stage emits
// and the interpreter evaluates. Tensor opcodes are reserved: no parser
// or lowering path emits them, and the interpreter evaluates them to a
// null placeholder (tensor execution is a Non-goal of this prototype).
type Opcode uint8

const (
	NOP Opcode = iota
	CONST_INT
	CONST_FLOAT
	CONST_STR
	ADD
	SUB
	MUL
	DIV
	NEG
	CMP_EQ
	CMP_NE
	CMP_LT
	CMP_LE
	CMP_GT
	CMP_GE
	CALL
	RET
	BR
	COND_BR
	ALLOCA
	LOAD
	STORE
	TENSOR_ALLOC
	TENSOR_ADD
	TENSOR_SUB
	TENSOR_MUL
	TENSOR_MATMUL
	TENSOR_RELU
)

var opcodeNames = map[Opcode]string{
	NOP:           "nop",
	CONST_INT:     "const.int",
	CONST_FLOAT:   "const.float",
	CONST_STR:     "const.str",
	ADD:           "add",
	SUB:           "sub",
	MUL:           "mul",
	DIV:           "div",
	NEG:           "neg",
	CMP_EQ:        "cmp.eq",
	CMP_NE:        "cmp.ne",
	CMP_LT:        "cmp.lt",
	CMP_LE:        "cmp.le",
	CMP_GT:        "cmp.gt",
	CMP_GE:        "cmp.ge",
	CALL:          "call",
	RET:           "ret",
	BR:            "br",
	COND_BR:       "cond_br",
	ALLOCA:        "alloca",
	LOAD:          "load",
	STORE:         "store",
	TENSOR_ALLOC:  "tensor.alloc",
	TENSOR_ADD:    "tensor.add",
	TENSOR_SUB:    "tensor.sub",
	TENSOR_MUL:    "tensor.mul",
	TENSOR_MATMUL: "tensor.matmul",
	TENSOR_RELU:   "tensor.relu",
}

func (op Opcode) String() string {
	if n, ok := opcodeNames[op]; ok {
		return n
	}
	return "?"
}

// IsTerminator reports whether op ends a basic block.
func (op Opcode) IsTerminator() bool {
	return op == RET || op == BR || op == COND_BR
}
