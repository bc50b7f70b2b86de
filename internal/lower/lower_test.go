package lower

import (
	"strings"
	"testing"

	"github.com/LetsZero/zero-compiler/internal/diag"
	"github.com/LetsZero/zero-compiler/internal/ir"
	"github.com/LetsZero/zero-compiler/internal/lexer"
	"github.com/LetsZero/zero-compiler/internal/parser"
	"github.com/LetsZero/zero-compiler/internal/sema"
	"github.com/LetsZero/zero-compiler/internal/source"
)

func lowerSrc(t *testing.T, src string) *ir.Module {
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
	return Lower(prog, res.Signatures)
}

func TestLowerConstantReturn(t *testing.T) {
	mod := lowerSrc(t, `fn main() -> int { return 42; }`)
	fn := mod.GetFunction("main")
	if fn == nil {
		t.Fatal("function 'main' not found")
	}
	if len(fn.Blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(fn.Blocks))
	}
	instrs := fn.Blocks[0].Instrs
	if len(instrs) != 2 {
		t.Fatalf("got %d instrs, want 2 (const, ret): %+v", len(instrs), instrs)
	}
	if instrs[0].Op != ir.CONST_INT || instrs[0].ImmInt != 42 {
		t.Errorf("instrs[0] = %+v", instrs[0])
	}
	if instrs[1].Op != ir.RET {
		t.Errorf("instrs[1] = %+v", instrs[1])
	}
}

func TestLowerParametersGetFreshSSAIds(t *testing.T) {
	mod := lowerSrc(t, `fn add(a: int, b: int) -> int { return a + b; }`)
	fn := mod.GetFunction("add")
	if len(fn.ParamValues) != 2 {
		t.Fatalf("got %d param values, want 2", len(fn.ParamValues))
	}
	if fn.ParamValues[0].ID == fn.ParamValues[1].ID {
		t.Errorf("parameters must get distinct SSA ids: %+v", fn.ParamValues)
	}
}

func TestLowerImplicitVoidReturn(t *testing.T) {
	mod := lowerSrc(t, `fn f() { let x = 1; }`)
	fn := mod.GetFunction("f")
	last := fn.Blocks[len(fn.Blocks)-1]
	if !last.Terminated() {
		t.Fatalf("expected an implicit RET to terminate the final block: %+v", last.Instrs)
	}
	term := last.Instrs[len(last.Instrs)-1]
	if term.Op != ir.RET || len(term.Operands) != 0 {
		t.Errorf("terminator = %+v, want bare void RET", term)
	}
}

func TestLowerIfElseBlockTemplate(t *testing.T) {
	mod := lowerSrc(t, `
fn f(a: int) -> int {
	if a < 0 {
		return 1;
	} else {
		return 2;
	}
}`)
	fn := mod.GetFunction("f")
	var labels []string
	for _, b := range fn.Blocks {
		labels = append(labels, b.Label)
	}
	want := []string{"entry", "if.then", "if.else", "if.end"}
	if len(labels) != len(want) {
		t.Fatalf("blocks = %v, want %v", labels, want)
	}
	for i, w := range want {
		if labels[i] != w {
			t.Errorf("blocks[%d] = %s, want %s", i, labels[i], w)
		}
	}
	entry := fn.Blocks[0]
	last := entry.Instrs[len(entry.Instrs)-1]
	if last.Op != ir.COND_BR {
		t.Fatalf("entry terminator = %+v, want COND_BR", last)
	}
}

func TestLowerIfWithoutElseCollapsesElseIntoEnd(t *testing.T) {
	mod := lowerSrc(t, `
fn f(a: int) {
	if a < 0 {
		let x = 1;
	}
}`)
	fn := mod.GetFunction("f")
	entry := fn.Blocks[0]
	condBr := entry.Instrs[len(entry.Instrs)-1]
	if condBr.Op != ir.COND_BR {
		t.Fatalf("entry terminator = %+v, want COND_BR", condBr)
	}
	endBlk := fn.Block(condBr.ElseBlock)
	if endBlk == nil || endBlk.Label != "if.end" {
		t.Errorf("else-target block = %+v, want if.end", endBlk)
	}
}

func TestLowerWhileLoopBlockTemplate(t *testing.T) {
	mod := lowerSrc(t, `
fn f(n: int) {
	while n < 10 {
		let x = 1;
	}
}`)
	fn := mod.GetFunction("f")
	var labels []string
	for _, b := range fn.Blocks {
		labels = append(labels, b.Label)
	}
	want := []string{"entry", "while.cond", "while.body", "while.end"}
	if len(labels) != len(want) {
		t.Fatalf("blocks = %v, want %v", labels, want)
	}
	for i, w := range want {
		if labels[i] != w {
			t.Errorf("blocks[%d] = %s, want %s", i, labels[i], w)
		}
	}
}

func TestPrintGoldenFormatContainsExpectedShapes(t *testing.T) {
	mod := lowerSrc(t, `fn add(a: int, b: int) -> int { return a + b; }`)
	out := ir.Print(mod)
	for _, want := range []string{"fn @add(", "bb0_entry:", "= add %", "ret %"} {
		if !strings.Contains(out, want) {
			t.Errorf("printed IR missing %q:\n%s", want, out)
		}
	}
}
