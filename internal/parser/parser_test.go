package parser

import (
	"testing"

	"github.com/LetsZero/zero-compiler/internal/ast"
	"github.com/LetsZero/zero-compiler/internal/diag"
	"github.com/LetsZero/zero-compiler/internal/lexer"
	"github.com/LetsZero/zero-compiler/internal/source"
)

func parseSrc(t *testing.T, src string) (*ast.Program, *Parser) {
	t.Helper()
	m := source.NewManager()
	id := m.LoadString("<test>", src)
	bag := diag.NewBag(0)
	lx := lexer.New(m.Get(id), bag)
	p := New(lx, bag)
	return p.ParseProgram(), p
}

func TestParseSimpleFunction(t *testing.T) {
	prog, p := parseSrc(t, `fn main() -> int { return 42; }`)
	if p.HadError() {
		t.Fatalf("unexpected parse error")
	}
	if len(prog.Funcs) != 1 {
		t.Fatalf("got %d funcs, want 1", len(prog.Funcs))
	}
	fn := prog.Funcs[0]
	if fn.Name != "main" || fn.ReturnType != "int" {
		t.Errorf("fn = %+v", fn)
	}
	if len(fn.Body) != 1 {
		t.Fatalf("got %d stmts, want 1", len(fn.Body))
	}
	ret, ok := fn.Body[0].(*ast.Return)
	if !ok {
		t.Fatalf("body[0] = %T, want *ast.Return", fn.Body[0])
	}
	lit, ok := ret.Value.(*ast.IntLiteral)
	if !ok || lit.Value != 42 {
		t.Errorf("return value = %+v", ret.Value)
	}
}

func TestParseAdditiveVsMultiplicativePrecedence(t *testing.T) {
	prog, p := parseSrc(t, `fn f() { return a + b * c; }`)
	if p.HadError() {
		t.Fatalf("unexpected parse error")
	}
	ret := prog.Funcs[0].Body[0].(*ast.Return)
	top, ok := ret.Value.(*ast.Binary)
	if !ok || top.Op != ast.OpAdd {
		t.Fatalf("top = %+v, want Binary(OpAdd)", ret.Value)
	}
	if _, ok := top.Lhs.(*ast.Identifier); !ok {
		t.Errorf("lhs = %T, want Identifier", top.Lhs)
	}
	rhs, ok := top.Rhs.(*ast.Binary)
	if !ok || rhs.Op != ast.OpMul {
		t.Fatalf("rhs = %+v, want Binary(OpMul)", top.Rhs)
	}
}

func TestParseGroupingOverridesPrecedence(t *testing.T) {
	prog, p := parseSrc(t, `fn f() { return (a + b) * c; }`)
	if p.HadError() {
		t.Fatalf("unexpected parse error")
	}
	ret := prog.Funcs[0].Body[0].(*ast.Return)
	top, ok := ret.Value.(*ast.Binary)
	if !ok || top.Op != ast.OpMul {
		t.Fatalf("top = %+v, want Binary(OpMul)", ret.Value)
	}
	group, ok := top.Lhs.(*ast.Group)
	if !ok {
		t.Fatalf("lhs = %T, want Group", top.Lhs)
	}
	if inner, ok := group.Inner.(*ast.Binary); !ok || inner.Op != ast.OpAdd {
		t.Errorf("group.Inner = %+v, want Binary(OpAdd)", group.Inner)
	}
}

func TestParseComparisonAndEqualityLevels(t *testing.T) {
	prog, p := parseSrc(t, `fn f() { return a < b == c; }`)
	if p.HadError() {
		t.Fatalf("unexpected parse error")
	}
	ret := prog.Funcs[0].Body[0].(*ast.Return)
	top, ok := ret.Value.(*ast.Binary)
	if !ok || top.Op != ast.OpEq {
		t.Fatalf("top = %+v, want Binary(OpEq)", ret.Value)
	}
	if lhs, ok := top.Lhs.(*ast.Binary); !ok || lhs.Op != ast.OpLt {
		t.Errorf("lhs = %+v, want Binary(OpLt)", top.Lhs)
	}
}

func TestParseUnaryIsRightAssociative(t *testing.T) {
	prog, p := parseSrc(t, `fn f() { return - - a; }`)
	if p.HadError() {
		t.Fatalf("unexpected parse error")
	}
	ret := prog.Funcs[0].Body[0].(*ast.Return)
	outer, ok := ret.Value.(*ast.Unary)
	if !ok || outer.Op != ast.OpNeg {
		t.Fatalf("outer = %+v, want Unary(OpNeg)", ret.Value)
	}
	inner, ok := outer.Operand.(*ast.Unary)
	if !ok || inner.Op != ast.OpNeg {
		t.Fatalf("inner = %+v, want Unary(OpNeg)", outer.Operand)
	}
	if _, ok := inner.Operand.(*ast.Identifier); !ok {
		t.Errorf("innermost = %T, want Identifier", inner.Operand)
	}
}

func TestParseCallWithArgs(t *testing.T) {
	prog, p := parseSrc(t, `fn f() { return foo(1, 2); }`)
	if p.HadError() {
		t.Fatalf("unexpected parse error")
	}
	ret := prog.Funcs[0].Body[0].(*ast.Return)
	call, ok := ret.Value.(*ast.Call)
	if !ok {
		t.Fatalf("value = %T, want Call", ret.Value)
	}
	if call.Callee != "foo" || len(call.Args) != 2 {
		t.Fatalf("call = %+v", call)
	}
}

func TestParseCallWithKeywordArgLabelsDiscarded(t *testing.T) {
	prog, p := parseSrc(t, `fn f() { return foo(a = 1, b = 2); }`)
	if p.HadError() {
		t.Fatalf("unexpected parse error")
	}
	ret := prog.Funcs[0].Body[0].(*ast.Return)
	call, ok := ret.Value.(*ast.Call)
	if !ok {
		t.Fatalf("value = %T, want Call", ret.Value)
	}
	if len(call.Args) != 2 {
		t.Fatalf("got %d args, want 2", len(call.Args))
	}
	first, ok := call.Args[0].(*ast.IntLiteral)
	if !ok || first.Value != 1 {
		t.Errorf("args[0] = %+v, want IntLiteral(1) - label must be discarded", call.Args[0])
	}
}

func TestParseIfElse(t *testing.T) {
	prog, p := parseSrc(t, `
fn f() {
	if a < b {
		return 1;
	} else {
		return 2;
	}
}`)
	if p.HadError() {
		t.Fatalf("unexpected parse error")
	}
	ifStmt, ok := prog.Funcs[0].Body[0].(*ast.If)
	if !ok {
		t.Fatalf("body[0] = %T, want *ast.If", prog.Funcs[0].Body[0])
	}
	if len(ifStmt.Then) != 1 || len(ifStmt.Else) != 1 {
		t.Errorf("if = %+v", ifStmt)
	}
}

func TestParseWhileLoop(t *testing.T) {
	prog, p := parseSrc(t, `
fn f() {
	while a < b {
		let x = 1;
	}
}`)
	if p.HadError() {
		t.Fatalf("unexpected parse error")
	}
	wh, ok := prog.Funcs[0].Body[0].(*ast.While)
	if !ok {
		t.Fatalf("body[0] = %T, want *ast.While", prog.Funcs[0].Body[0])
	}
	if len(wh.Body) != 1 {
		t.Errorf("while body = %+v", wh.Body)
	}
}

func TestParsePanicModeRecoversAndReportsOnce(t *testing.T) {
	m := source.NewManager()
	id := m.LoadString("<test>", "fn f() { let ; let x = 1; }\nfn g() { return 1; }")
	bag := diag.NewBag(0)
	lx := lexer.New(m.Get(id), bag)
	p := New(lx, bag)
	prog := p.ParseProgram()
	if !p.HadError() {
		t.Fatalf("expected a parse error")
	}
	if bag.Len() != 1 {
		t.Errorf("got %d diagnostics, want exactly 1 (panic mode suppresses cascades): %+v", bag.Len(), bag.Items())
	}
	found := false
	for _, fn := range prog.Funcs {
		if fn.Name == "g" {
			found = true
		}
	}
	if !found {
		t.Errorf("recovery failed: function 'g' after the malformed statement was not parsed, funcs = %+v", prog.Funcs)
	}
}

func TestParseTopLevelRecoverySkipsGarbage(t *testing.T) {
	prog, p := parseSrc(t, "***\nfn ok() { return 0; }")
	if !p.HadError() {
		t.Fatalf("expected a parse error for the garbage top-level tokens")
	}
	if len(prog.Funcs) != 1 || prog.Funcs[0].Name != "ok" {
		t.Fatalf("funcs = %+v, want just 'ok' recovered", prog.Funcs)
	}
}
