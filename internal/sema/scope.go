package sema

import (
	"github.com/LetsZero/zero-compiler/internal/diag"
	"github.com/LetsZero/zero-compiler/internal/source"
	"github.com/LetsZero/zero-compiler/internal/types"
)

// pushScope opens a new innermost scope.
func (c *checker) pushScope() {
	c.scopes = append(c.scopes, make(map[string]types.Kind))
}

// popScope closes the innermost scope.
func (c *checker) popScope() {
	c.scopes = c.scopes[:len(c.scopes)-1]
}

// declare binds name to kind in the current (innermost) scope. It reports
// DuplicateDefinition and leaves the existing binding untouched if name is
// already declared in that same scope.
func (c *checker) declare(name string, kind types.Kind, span source.Span) {
	top := c.scopes[len(c.scopes)-1]
	if _, exists := top[name]; exists {
		c.report(diag.SemDuplicateDefinition, span, "redefinition of '"+name+"'")
		return
	}
	top[name] = kind
}

// lookup searches scopes innermost-outward for name, returning its type
// and whether it was found.
func (c *checker) lookup(name string) (types.Kind, bool) {
	for i := len(c.scopes) - 1; i >= 0; i-- {
		if k, ok := c.scopes[i][name]; ok {
			return k, true
		}
	}
	return types.Unknown, false
}
