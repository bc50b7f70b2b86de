// Package parser implements a recursive-descent, operator-precedence
// parser for Zero source text, with panic-mode error recovery.
package parser

import (
	"github.com/LetsZero/zero-compiler/internal/ast"
	"github.com/LetsZero/zero-compiler/internal/diag"
	"github.com/LetsZero/zero-compiler/internal/lexer"
	"github.com/LetsZero/zero-compiler/internal/source"
	"github.com/LetsZero/zero-compiler/internal/token"
)

// Parser holds all state needed to parse a single file: the token stream
// (via the lexer's own one-token lookahead) plus the two panic-mode flags
// used for error recovery.
type Parser struct {
	lx        *lexer.Lexer
	reporter  diag.Reporter
	hadError  bool
	panicMode bool
	prevKind  token.Kind
	pushed    *token.Token
}

// New creates a Parser reading tokens from lx, reporting diagnostics to
// reporter (which may be nil).
func New(lx *lexer.Lexer, reporter diag.Reporter) *Parser {
	return &Parser{lx: lx, reporter: reporter}
}

// HadError reports whether any parse error was emitted.
func (p *Parser) HadError() bool { return p.hadError }

// ParseProgram parses a whole file: { use_decl | fn_decl } EOF.
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{}
	p.skipNewlines()
	for !p.at(token.EOF) {
		switch p.peek().Kind {
		case token.KwUse:
			if u := p.parseUseDecl(); u != nil {
				prog.Uses = append(prog.Uses, u)
			}
		case token.KwFn:
			if f := p.parseFnDecl(); f != nil {
				prog.Funcs = append(prog.Funcs, f)
			}
		default:
			p.errorAt(p.peek().Span, "expected 'use' or 'fn' declaration, got "+p.peek().Kind.String())
			p.synchronize()
		}
		p.skipNewlines()
	}
	return prog
}

// ---- token stream helpers ----

func (p *Parser) peek() token.Token {
	if p.pushed != nil {
		return *p.pushed
	}
	return p.lx.Peek()
}

func (p *Parser) at(k token.Kind) bool { return p.peek().Kind == k }

// advance consumes and returns the current token, preferring a token
// previously returned via pushBack over the lexer's own stream.
func (p *Parser) advance() token.Token {
	if p.pushed != nil {
		t := *p.pushed
		p.pushed = nil
		p.prevKind = t.Kind
		return t
	}
	t := p.lx.Next()
	p.prevKind = t.Kind
	return t
}

// pushBack re-queues a single token so the next peek()/advance() sees it
// again before consulting the lexer. Used by call-argument parsing to get
// a second token of lookahead beyond what the lexer itself offers.
func (p *Parser) pushBack(t token.Token) {
	p.pushed = &t
}

// skipNewlines consumes any run of NEWLINE tokens; the parser treats
// newlines as insignificant everywhere except as an optional statement
// terminator, so callers skip them liberally around braces and between
// statements.
func (p *Parser) skipNewlines() {
	for p.at(token.NEWLINE) {
		p.advance()
	}
}

// expect consumes the current token if it has kind k, reporting an error
// otherwise. Returns the consumed (or current, on failure) token and
// whether it matched.
func (p *Parser) expect(k token.Kind, what string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	p.errorAt(p.peek().Span, "expected "+what+", got "+p.peek().Kind.String())
	return p.peek(), false
}

// eatStmtTerminator consumes an optional trailing ';' or NEWLINE after a
// statement, per the grammar's '';''?' productions.
func (p *Parser) eatStmtTerminator() {
	if p.at(token.Semicolon) || p.at(token.NEWLINE) {
		p.advance()
	}
}

// ---- error recovery ----

func (p *Parser) errorAt(span source.Span, msg string) {
	p.hadError = true
	if p.panicMode {
		return
	}
	p.panicMode = true
	if p.reporter != nil {
		p.reporter.Report(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.SynUnexpectedToken,
			Message:  msg,
			Primary:  span,
		})
	}
}

// synchronize skips tokens until the previously consumed token was a
// statement terminator, or the current token starts a new statement/item,
// clearing panic mode so subsequent errors are reported again.
func (p *Parser) synchronize() {
	p.panicMode = false
	for !p.at(token.EOF) {
		if p.prevKind == token.Semicolon || p.prevKind == token.NEWLINE {
			return
		}
		switch p.peek().Kind {
		case token.KwFn, token.KwLet, token.KwIf, token.KwWhile, token.KwReturn, token.KwUse:
			return
		}
		p.advance()
	}
}
