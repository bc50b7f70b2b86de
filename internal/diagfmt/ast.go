package diagfmt

import (
	"fmt"
	"io"

	"github.com/LetsZero/zero-compiler/internal/ast"
)

// DumpAST prints an indented box-drawing tree of prog, the same shape
// the teacher's pretty-printer uses for its own AST, adapted to Zero's
// flat interface+struct node set.
func DumpAST(w io.Writer, prog *ast.Program) {
	fmt.Fprintln(w, "Program")
	for _, u := range prog.Uses {
		fmt.Fprintf(w, "├─ Use %q\n", u.Path)
	}
	for i, fn := range prog.Funcs {
		last := i == len(prog.Funcs)-1
		branch, cont := "├─ ", "│  "
		if last {
			branch, cont = "└─ ", "   "
		}
		fmt.Fprintf(w, "%sFn %s(%s) -> %s\n", branch, fn.Name, paramList(fn.Params), orVoid(fn.ReturnType))
		dumpStmts(w, fn.Body, cont)
	}
}

func paramList(params []ast.Param) string {
	s := ""
	for i, p := range params {
		if i > 0 {
			s += ", "
		}
		s += p.Name
		if p.Type != "" {
			s += ": " + p.Type
		}
	}
	return s
}

func orVoid(t string) string {
	if t == "" {
		return "void"
	}
	return t
}

func dumpStmts(w io.Writer, stmts []ast.Stmt, prefix string) {
	for i, s := range stmts {
		last := i == len(stmts)-1
		branch, cont := prefix+"├─ ", prefix+"│  "
		if last {
			branch, cont = prefix+"└─ ", prefix+"   "
		}
		dumpStmt(w, s, branch, cont)
	}
}

func dumpStmt(w io.Writer, stmt ast.Stmt, branch, cont string) {
	switch s := stmt.(type) {
	case *ast.Let:
		fmt.Fprintf(w, "%sLet %s\n", branch, s.Name)
		dumpExpr(w, s.Init, cont+"└─ ")
	case *ast.Return:
		fmt.Fprintf(w, "%sReturn\n", branch)
		if s.Value != nil {
			dumpExpr(w, s.Value, cont+"└─ ")
		}
	case *ast.ExprStmt:
		fmt.Fprintf(w, "%sExprStmt\n", branch)
		dumpExpr(w, s.Expr, cont+"└─ ")
	case *ast.If:
		fmt.Fprintf(w, "%sIf\n", branch)
		dumpStmts(w, s.Then, cont)
		if s.Else != nil {
			fmt.Fprintf(w, "%sElse\n", cont)
			dumpStmts(w, s.Else, cont)
		}
	case *ast.While:
		fmt.Fprintf(w, "%sWhile\n", branch)
		dumpStmts(w, s.Body, cont)
	case *ast.Block:
		fmt.Fprintf(w, "%sBlock\n", branch)
		dumpStmts(w, s.Stmts, cont)
	}
}

func dumpExpr(w io.Writer, expr ast.Expr, prefix string) {
	switch e := expr.(type) {
	case *ast.Identifier:
		fmt.Fprintf(w, "%sIdentifier(%s)\n", prefix, e.Name)
	case *ast.IntLiteral:
		fmt.Fprintf(w, "%sIntLiteral(%d)\n", prefix, e.Value)
	case *ast.FloatLiteral:
		fmt.Fprintf(w, "%sFloatLiteral(%g)\n", prefix, e.Value)
	case *ast.StringLiteral:
		fmt.Fprintf(w, "%sStringLiteral(%q)\n", prefix, e.Value)
	case *ast.Binary:
		fmt.Fprintf(w, "%sBinary(%s)\n", prefix, e.Op)
		dumpExpr(w, e.Lhs, prefix+"  ")
		dumpExpr(w, e.Rhs, prefix+"  ")
	case *ast.Unary:
		fmt.Fprintf(w, "%sUnary(%s)\n", prefix, e.Op)
		dumpExpr(w, e.Operand, prefix+"  ")
	case *ast.Call:
		fmt.Fprintf(w, "%sCall(%s)\n", prefix, e.Callee)
		for _, a := range e.Args {
			dumpExpr(w, a, prefix+"  ")
		}
	case *ast.Group:
		fmt.Fprintf(w, "%sGroup\n", prefix)
		dumpExpr(w, e.Inner, prefix+"  ")
	}
}
