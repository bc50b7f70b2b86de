package sema

import (
	"testing"

	"github.com/LetsZero/zero-compiler/internal/diag"
	"github.com/LetsZero/zero-compiler/internal/lexer"
	"github.com/LetsZero/zero-compiler/internal/parser"
	"github.com/LetsZero/zero-compiler/internal/source"
	"github.com/LetsZero/zero-compiler/internal/types"
)

func checkSrc(t *testing.T, src string) (Result, *diag.Bag) {
	t.Helper()
	m := source.NewManager()
	id := m.LoadString("<test>", src)
	bag := diag.NewBag(0)
	lx := lexer.New(m.Get(id), bag)
	p := parser.New(lx, bag)
	prog := p.ParseProgram()
	if p.HadError() {
		t.Fatalf("unexpected parse error for %q", src)
	}
	res := Check(prog, Options{Reporter: bag})
	return res, bag
}

func hasCode(bag *diag.Bag, code diag.Code) bool {
	for _, d := range bag.Items() {
		if d.Code == code {
			return true
		}
	}
	return false
}

func TestCheckValidProgramHasNoErrors(t *testing.T) {
	res, bag := checkSrc(t, `fn add(a: int, b: int) -> int { return a + b; }`)
	if res.HadError || bag.HasErrors() {
		t.Fatalf("unexpected errors: %+v", bag.Items())
	}
	sig, ok := res.Signatures["add"]
	if !ok {
		t.Fatalf("signature for 'add' not collected")
	}
	if sig.ReturnType != types.Int || len(sig.ParamTypes) != 2 {
		t.Errorf("sig = %+v", sig)
	}
}

func TestCheckUndefinedVariable(t *testing.T) {
	_, bag := checkSrc(t, `fn f() { return y; }`)
	if !hasCode(bag, diag.SemUndefinedVariable) {
		t.Errorf("expected UNDEFINED_VARIABLE, got %+v", bag.Items())
	}
}

func TestCheckUndefinedFunction(t *testing.T) {
	_, bag := checkSrc(t, `fn f() { return missing(1); }`)
	if !hasCode(bag, diag.SemUndefinedFunction) {
		t.Errorf("expected UNDEFINED_FUNCTION, got %+v", bag.Items())
	}
}

func TestCheckWrongArgCount(t *testing.T) {
	_, bag := checkSrc(t, `
fn add(a: int, b: int) -> int { return a + b; }
fn f() { return add(1); }`)
	if !hasCode(bag, diag.SemWrongArgCount) {
		t.Errorf("expected WRONG_ARG_COUNT, got %+v", bag.Items())
	}
}

func TestCheckDuplicateFunctionDefinition(t *testing.T) {
	_, bag := checkSrc(t, `
fn f() { return 1; }
fn f() { return 2; }`)
	if !hasCode(bag, diag.SemDuplicateDefinition) {
		t.Errorf("expected DUPLICATE_DEFINITION, got %+v", bag.Items())
	}
}

func TestCheckDuplicateLocalDefinition(t *testing.T) {
	_, bag := checkSrc(t, `fn main() { let x = 1; let x = 2; }`)
	if !hasCode(bag, diag.SemDuplicateDefinition) {
		t.Errorf("expected DUPLICATE_DEFINITION, got %+v", bag.Items())
	}
}

func TestCheckReturnOfUnknownTypeIsNotAMismatch(t *testing.T) {
	_, bag := checkSrc(t, `fn f() -> int { return "oops"; }`)
	// String literals type as Unknown, which is compatible with
	// everything, so this must NOT produce a mismatch.
	if hasCode(bag, diag.SemReturnTypeMismatch) {
		t.Errorf("Unknown should be compatible with int, got %+v", bag.Items())
	}
}

func TestCheckNumericPromotionInBinary(t *testing.T) {
	res, bag := checkSrc(t, `fn f(a: int, b: float) -> float { return a + b; }`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %+v", bag.Items())
	}
	if res.Signatures["f"].ReturnType != types.Float {
		t.Errorf("sig = %+v", res.Signatures["f"])
	}
}

func TestCheckBlockScopingAllowsShadowAfterScopeExit(t *testing.T) {
	_, bag := checkSrc(t, `
fn f() {
	if 1 {
		let x = 1;
	} else {
		let x = 2;
	}
}`)
	if hasCode(bag, diag.SemDuplicateDefinition) {
		t.Errorf("then/else scopes must be independent, got %+v", bag.Items())
	}
}

func TestCheckWhileBodyHasOwnScope(t *testing.T) {
	_, bag := checkSrc(t, `
fn f() {
	let x = 1;
	while x < 10 {
		let x = 2;
	}
}`)
	if hasCode(bag, diag.SemDuplicateDefinition) {
		t.Errorf("while body must shadow in its own scope, got %+v", bag.Items())
	}
}
