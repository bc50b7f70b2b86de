// Package ir defines the SSA intermediate representation: values,
// opcodes, basic blocks, functions, and the module that collects them.
package ir

import "github.com/LetsZero/zero-compiler/internal/types"

// Value is a reference to an SSA definition. ID 0 is the reserved
// "invalid" value.
type Value struct {
	ID   uint32
	Type types.Kind
}

// InvalidValue is returned wherever lowering cannot produce a real
// binding, e.g. an unresolved identifier.
var InvalidValue = Value{ID: 0, Type: types.Unknown}

// Valid reports whether v refers to a real SSA definition.
func (v Value) Valid() bool { return v.ID != 0 }
