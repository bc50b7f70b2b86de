package interp

import (
	"testing"

	"github.com/LetsZero/zero-compiler/internal/diag"
	"github.com/LetsZero/zero-compiler/internal/lexer"
	"github.com/LetsZero/zero-compiler/internal/lower"
	"github.com/LetsZero/zero-compiler/internal/parser"
	"github.com/LetsZero/zero-compiler/internal/sema"
	"github.com/LetsZero/zero-compiler/internal/source"
)

func runSrc(t *testing.T, src string) (RuntimeValue, bool) {
	t.Helper()
	m := source.NewManager()
	id := m.LoadString("<test>", src)
	bag := diag.NewBag(0)
	lx := lexer.New(m.Get(id), bag)
	p := parser.New(lx, bag)
	prog := p.ParseProgram()
	if p.HadError() {
		t.Fatalf("unexpected parse error for %q: %+v", src, bag.Items())
	}
	res := sema.Check(prog, sema.Options{Reporter: bag})
	if res.HadError {
		t.Fatalf("unexpected sema error for %q: %+v", src, bag.Items())
	}
	mod := lower.Lower(prog, res.Signatures)
	in := New(mod, nil)
	return in.Run("main")
}

func TestScenario1ReturnConstant(t *testing.T) {
	v, ok := runSrc(t, `fn main() { return 42; }`)
	if !ok || ExitCode(v) != 42 {
		t.Fatalf("got (%v, %v), want exit 42", v, ok)
	}
}

func TestScenario2PrecedenceRespectedAtRuntime(t *testing.T) {
	v, ok := runSrc(t, `fn main() { return 1 + 2 * 3; }`)
	if !ok || ExitCode(v) != 7 {
		t.Fatalf("got (%v, %v), want exit 7", v, ok)
	}
}

func TestScenario3LetBinding(t *testing.T) {
	v, ok := runSrc(t, `fn main() { let x = 10; return x; }`)
	if !ok || ExitCode(v) != 10 {
		t.Fatalf("got (%v, %v), want exit 10", v, ok)
	}
}

func TestScenario4IfElseTruthy(t *testing.T) {
	v, ok := runSrc(t, `fn main() { if 1 { return 5; } else { return 9; } }`)
	if !ok || ExitCode(v) != 5 {
		t.Fatalf("got (%v, %v), want exit 5", v, ok)
	}
}

func TestScenario5ParameterBindingAcrossCall(t *testing.T) {
	v, ok := runSrc(t, `fn foo(a, b) { return a + b; } fn main() { return foo(3, 4); }`)
	if !ok || ExitCode(v) != 7 {
		t.Fatalf("got (%v, %v), want exit 7 - parameters must bind across the call", v, ok)
	}
}

func TestScenario8WhileLoopSkippedWhenConditionFalsy(t *testing.T) {
	v, ok := runSrc(t, `fn main() { while 0 { return 1; } return 2; }`)
	if !ok || ExitCode(v) != 2 {
		t.Fatalf("got (%v, %v), want exit 2", v, ok)
	}
}

func TestDivisionByZeroCoercesToZero(t *testing.T) {
	v, ok := runSrc(t, `fn main() { return 5 / 0; }`)
	if !ok || ExitCode(v) != 0 {
		t.Fatalf("got (%v, %v), want exit 0 (no trap)", v, ok)
	}
}

func TestFloatPromotionInArithmetic(t *testing.T) {
	v, ok := runSrc(t, `fn main() -> float { return 1 + 2.5; }`)
	if !ok || v.Kind != KindFloat || v.Float != 3.5 {
		t.Fatalf("got (%+v, %v), want float 3.5", v, ok)
	}
}

func TestMissingEntryFunctionIsFatal(t *testing.T) {
	m := source.NewManager()
	id := m.LoadString("<test>", `fn notMain() { return 1; }`)
	bag := diag.NewBag(0)
	lx := lexer.New(m.Get(id), bag)
	p := parser.New(lx, bag)
	prog := p.ParseProgram()
	res := sema.Check(prog, sema.Options{Reporter: bag})
	mod := lower.Lower(prog, res.Signatures)
	in := New(mod, nil)
	_, ok := in.Run("main")
	if ok {
		t.Fatal("expected Run to report a missing entry function")
	}
}

func TestExternFunctionRegistration(t *testing.T) {
	m := source.NewManager()
	id := m.LoadString("<test>", `fn main() { return double(21); }`)
	bag := diag.NewBag(0)
	lx := lexer.New(m.Get(id), bag)
	p := parser.New(lx, bag)
	prog := p.ParseProgram()
	res := sema.Check(prog, sema.Options{Reporter: bag})
	mod := lower.Lower(prog, res.Signatures)

	reg := NewRegistry()
	reg.Register("double", func(args []RuntimeValue) RuntimeValue {
		return RuntimeValue{Kind: KindInt, Int: args[0].ToInt() * 2}
	})
	in := New(mod, reg)
	v, ok := in.Run("main")
	if !ok || ExitCode(v) != 42 {
		t.Fatalf("got (%v, %v), want exit 42", v, ok)
	}
}
