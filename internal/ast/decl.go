package ast

import "github.com/LetsZero/zero-compiler/internal/source"

// Param is a single function parameter. Type is "" when the source left
// it unannotated.
type Param struct {
	Name string
	Type string
	Span source.Span
}

// FnDecl is a top-level function declaration.
type FnDecl struct {
	Name       string
	Params     []Param
	ReturnType string // "" when no '-> type' was written
	Body       []Stmt
	Span       source.Span
}

// UseDecl is a top-level 'use' import. The language has no module system
// (spec Non-goal), so UseDecl is parsed and retained for source fidelity
// but carries no semantic weight beyond that.
type UseDecl struct {
	Path string
	Span source.Span
}

// Program is the root of the AST: an ordered list of top-level
// declarations parsed from one source file.
type Program struct {
	Funcs []*FnDecl
	Uses  []*UseDecl
}

// FindFunc returns the first function named name, or nil.
func (p *Program) FindFunc(name string) *FnDecl {
	for _, f := range p.Funcs {
		if f.Name == name {
			return f
		}
	}
	return nil
}
