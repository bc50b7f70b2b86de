// Package types defines the small value-type lattice shared by the
// semantic analyzer, the IR, and the interpreter.
package types

// Kind tags a value's static type.
type Kind uint8

const (
	// Unknown represents an unresolved or erroneous type. It is the
	// absorbing element in compatibility checks: Unknown is compatible
	// with every other type.
	Unknown Kind = iota
	Int
	Float
	Void
	Tensor
	Function
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Float:
		return "float"
	case Void:
		return "void"
	case Tensor:
		return "tensor"
	case Function:
		return "function"
	default:
		return "unknown"
	}
}

// FromTypeName resolves a type annotation's raw spelling (as parsed from
// source) to a Kind. Unrecognized spellings (including plain identifiers,
// which would name a user struct type in a fuller language) resolve to
// Unknown rather than being rejected outright, matching the parser's
// 'type := int | float | void | tensor | IDENT' grammar.
func FromTypeName(name string) Kind {
	switch name {
	case "int":
		return Int
	case "float":
		return Float
	case "void":
		return Void
	case "tensor":
		return Tensor
	case "":
		return Unknown
	default:
		return Unknown
	}
}

// IsNumeric reports whether k is Int or Float.
func (k Kind) IsNumeric() bool {
	return k == Int || k == Float
}

// Compatible reports whether a value of type have may be used where want is
// expected. Unknown is compatible with anything in either position.
func Compatible(want, have Kind) bool {
	if want == Unknown || have == Unknown {
		return true
	}
	return want == have
}

// BinaryResult computes the result type of a binary arithmetic expression
// given its operand types:
//   - if either operand is Unknown, the other operand's type wins
//   - if both are the same type, that type is the result
//   - if both are numeric and at least one is Float, the result is Float
//     (numeric promotion)
//   - otherwise the result is Unknown
func BinaryResult(lhs, rhs Kind) Kind {
	if lhs == Unknown {
		return rhs
	}
	if rhs == Unknown {
		return lhs
	}
	if lhs == rhs {
		return lhs
	}
	if lhs.IsNumeric() && rhs.IsNumeric() {
		return Float
	}
	return Unknown
}

// FnSignature records a function's parameter and return types, collected
// in the semantic analyzer's signature-collection pass and consulted by
// both the checker and the lowering stage.
type FnSignature struct {
	Name       string
	ParamTypes []Kind
	ReturnType Kind
}
