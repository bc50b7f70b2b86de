package diag

// Code namespaces diagnostics by the pipeline stage that raised them, the
// same way the corpus this project is built against splits Lex*/Syn* codes
// into disjoint numeric bands.
type Code uint16

const (
	// UnknownCode is the zero value; no diagnostic should use it.
	UnknownCode Code = 0

	// Lexical diagnostics (1000s).
	LexUnexpectedCharacter Code = 1001

	// Syntax diagnostics (2000s).
	SynUnexpectedToken   Code = 2001
	SynExpectIdentifier  Code = 2002
	SynExpectToken       Code = 2003
	SynUnexpectedTopLevel Code = 2004

	// Semantic diagnostics (3000s).
	SemUndefinedVariable    Code = 3001
	SemUndefinedFunction    Code = 3002
	SemWrongArgCount        Code = 3003
	SemTypeMismatch         Code = 3004
	SemReturnTypeMismatch   Code = 3005
	SemDuplicateDefinition  Code = 3006

	// IR / interpreter diagnostics (4000s).
	IREntryNotFound Code = 4001
)

var names = map[Code]string{
	LexUnexpectedCharacter: "LexUnexpectedCharacter",
	SynUnexpectedToken:     "SynUnexpectedToken",
	SynExpectIdentifier:    "SynExpectIdentifier",
	SynExpectToken:         "SynExpectToken",
	SynUnexpectedTopLevel:  "SynUnexpectedTopLevel",
	SemUndefinedVariable:   "UNDEFINED_VARIABLE",
	SemUndefinedFunction:   "UNDEFINED_FUNCTION",
	SemWrongArgCount:       "WRONG_ARG_COUNT",
	SemTypeMismatch:        "TYPE_MISMATCH",
	SemReturnTypeMismatch:  "RETURN_TYPE_MISMATCH",
	SemDuplicateDefinition: "DUPLICATE_DEFINITION",
	IREntryNotFound:        "ENTRY_NOT_FOUND",
}

func (c Code) String() string {
	if n, ok := names[c]; ok {
		return n
	}
	return "UNKNOWN"
}
