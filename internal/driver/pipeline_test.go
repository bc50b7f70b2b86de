package driver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/LetsZero/zero-compiler/internal/interp"
)

func writeSrc(t *testing.T, src string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "main.zero")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("write temp source: %v", err)
	}
	return path
}

func TestCompileAndRunEndToEnd(t *testing.T) {
	path := writeSrc(t, `fn foo(a, b) { return a + b; } fn main() { return foo(3, 4); }`)

	res, err := Compile(path, Options{})
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", res.Bag.Items())
	}

	v, ok := interp.New(res.Module, nil).Run("main")
	if !ok || interp.ExitCode(v) != 7 {
		t.Fatalf("got (%v, %v), want exit 7", v, ok)
	}
}

func TestCompileStopsAfterParseErrors(t *testing.T) {
	path := writeSrc(t, `fn main() { let ; }`)

	res, err := Compile(path, Options{})
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}
	if !res.Bag.HasErrors() {
		t.Fatal("expected parse diagnostics")
	}
	if res.Module != nil {
		t.Fatal("lowering should not run after a parse error")
	}
}

func TestCompileStopsAfterSemaErrors(t *testing.T) {
	path := writeSrc(t, `fn main() { return undefinedVar; }`)

	res, err := Compile(path, Options{})
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}
	if !res.Bag.HasErrors() {
		t.Fatal("expected a semantic diagnostic for the undefined variable")
	}
	if res.Module != nil {
		t.Fatal("lowering should not run after a semantic error")
	}
}

func TestCompileMissingFileReturnsLoadError(t *testing.T) {
	_, err := Compile(filepath.Join(t.TempDir(), "nope.zero"), Options{})
	if err == nil {
		t.Fatal("expected a load error for a missing file")
	}
	if _, ok := err.(*LoadError); !ok {
		t.Fatalf("got %T, want *LoadError", err)
	}
}

func TestCompileRespectsMaxDiagnostics(t *testing.T) {
	path := writeSrc(t, `fn main() { return a + b + c + d; }`)

	res, err := Compile(path, Options{MaxDiagnostics: 1})
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}
	if res.Bag.Len() != 1 {
		t.Fatalf("got %d diagnostics, want capped at 1", res.Bag.Len())
	}
}
