// Package driver wires the five core stages (source, lexer, parser,
// sema, lowering) into the single sequential pipeline the CLI drives:
// load -> parse -> check -> lower -> (interpret | dump).
package driver

import (
	"github.com/LetsZero/zero-compiler/internal/ast"
	"github.com/LetsZero/zero-compiler/internal/diag"
	"github.com/LetsZero/zero-compiler/internal/ir"
	"github.com/LetsZero/zero-compiler/internal/lexer"
	"github.com/LetsZero/zero-compiler/internal/lower"
	"github.com/LetsZero/zero-compiler/internal/parser"
	"github.com/LetsZero/zero-compiler/internal/sema"
	"github.com/LetsZero/zero-compiler/internal/source"
)

// Result carries every artifact a pipeline run produced, however far it
// got before stopping on an error.
type Result struct {
	Manager *source.Manager
	FileID  source.ID
	Program *ast.Program
	Sema    sema.Result
	Module  *ir.Module
	Bag     *diag.Bag
}

// Options configures a pipeline run.
type Options struct {
	MaxDiagnostics int
	// StopAfterLower is not consulted by Compile: Compile always stops
	// after lowering and never executes, which is all --dump-ir and
	// --dump-ast need.
	StopAfterLower bool
}

// Compile runs the pipeline up through lowering (or earlier, if an
// earlier stage reports an error). The driver inspects HadErrors after
// each stage and aborts before the next one runs, exactly as the
// propagation policy requires.
func Compile(path string, opts Options) (*Result, error) {
	maxDiag := opts.MaxDiagnostics
	if maxDiag <= 0 {
		maxDiag = 100
	}
	bag := diag.NewBag(maxDiag)
	res := &Result{Bag: bag}

	mgr := source.NewManager()
	fileID := mgr.Load(path)
	res.Manager = mgr
	res.FileID = fileID
	if !fileID.Valid() {
		return res, errLoadFailed(path)
	}

	lx := lexer.New(mgr.Get(fileID), bag)
	p := parser.New(lx, bag)
	prog := p.ParseProgram()
	res.Program = prog
	if p.HadError() || bag.HasErrors() {
		bag.Sort()
		return res, nil
	}

	semaRes := sema.Check(prog, sema.Options{Reporter: bag})
	res.Sema = semaRes
	if semaRes.HadError || bag.HasErrors() {
		bag.Sort()
		return res, nil
	}

	res.Module = lower.Lower(prog, semaRes.Signatures)
	bag.Sort()
	return res, nil
}
