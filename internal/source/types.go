// Package source owns loaded source text and resolves byte offsets to
// human-readable line/column positions.
package source

// ID uniquely identifies a loaded source file within a Manager.
type ID uint32

// InvalidID is the sentinel returned when a source could not be loaded.
const InvalidID ID = ^ID(0)

// Valid reports whether id refers to a real, loaded source.
func (id ID) Valid() bool { return id != InvalidID }

// LineCol is a 1-indexed human-readable position within a file.
type LineCol struct {
	Line uint32
	Col  uint32
}
