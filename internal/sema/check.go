// Package sema implements scoped name resolution, function signature
// collection, and type-checking with numeric promotion over a parsed
// Program.
package sema

import (
	"github.com/LetsZero/zero-compiler/internal/ast"
	"github.com/LetsZero/zero-compiler/internal/diag"
	"github.com/LetsZero/zero-compiler/internal/source"
	"github.com/LetsZero/zero-compiler/internal/types"
)

// Options configure a semantic pass over a program.
type Options struct {
	Reporter diag.Reporter
}

// Result stores the artefacts a successful (or partially successful) pass
// leaves behind for the lowering stage to consume.
type Result struct {
	// Signatures holds every collected function signature, keyed by name.
	// Lowering looks up each function's own parameter and return types
	// here instead of re-deriving them.
	Signatures map[string]types.FnSignature
	HadError   bool
}

// Check runs both analysis passes over prog and reports every diagnostic
// it finds to opts.Reporter (which may be nil). It never aborts early:
// every function is signature-collected and every body is checked
// regardless of earlier errors.
func Check(prog *ast.Program, opts Options) Result {
	c := &checker{
		reporter: opts.Reporter,
		sigs:     make(map[string]types.FnSignature),
	}
	c.collectSignatures(prog)
	for _, fn := range prog.Funcs {
		c.checkFunc(fn)
	}
	return Result{Signatures: c.sigs, HadError: c.hadError}
}

type checker struct {
	reporter diag.Reporter
	sigs     map[string]types.FnSignature
	scopes   []map[string]types.Kind
	hadError bool
	// currentReturn is the enclosing function's declared return type, or
	// types.Unknown if it declared none (enables lenient return checking).
	currentReturn types.Kind
}

func (c *checker) report(code diag.Code, span source.Span, msg string) {
	c.hadError = true
	if c.reporter == nil {
		return
	}
	c.reporter.Report(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     code,
		Message:  msg,
		Primary:  span,
	})
}
