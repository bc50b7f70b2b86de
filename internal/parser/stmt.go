package parser

import (
	"github.com/LetsZero/zero-compiler/internal/ast"
	"github.com/LetsZero/zero-compiler/internal/token"
)

// parseStmtsUntil parses statements (skipping NEWLINEs between and before
// them) until the current token is closer or EOF.
func (p *Parser) parseStmtsUntil(closer token.Kind) []ast.Stmt {
	var stmts []ast.Stmt
	p.skipNewlines()
	for !p.at(closer) && !p.at(token.EOF) {
		s := p.parseStmt()
		if s != nil {
			stmts = append(stmts, s)
		} else {
			p.synchronize()
		}
		p.skipNewlines()
	}
	return stmts
}

// parseStmt dispatches on the leading token: let_stmt | return_stmt |
// if_stmt | while_stmt | block | expr_stmt.
func (p *Parser) parseStmt() ast.Stmt {
	switch p.peek().Kind {
	case token.KwLet:
		return p.parseLetStmt()
	case token.KwReturn:
		return p.parseReturnStmt()
	case token.KwIf:
		return p.parseIfStmt()
	case token.KwWhile:
		return p.parseWhileStmt()
	case token.LBrace:
		return p.parseBlockStmt()
	default:
		return p.parseExprStmt()
	}
}

// parseLetStmt parses 'let' IDENT (':' type)? '=' expr ';'?
func (p *Parser) parseLetStmt() ast.Stmt {
	start := p.peek().Span
	p.advance() // 'let'

	nameTok, ok := p.expect(token.Ident, "variable name after 'let'")
	if !ok {
		return nil
	}

	typeName := ""
	if p.at(token.Colon) {
		p.advance()
		typeName = p.parseType()
	}

	if _, ok := p.expect(token.Assign, "'=' in let binding"); !ok {
		return nil
	}
	init := p.parseExpr()
	if init == nil {
		return nil
	}
	end := init.ExprSpan()
	p.eatStmtTerminator()
	return &ast.Let{Name: nameTok.Text, Type: typeName, Init: init, Span: start.Merge(end)}
}

// parseReturnStmt parses 'return' expr? ';'?
func (p *Parser) parseReturnStmt() ast.Stmt {
	start := p.peek().Span
	p.advance() // 'return'

	var value ast.Expr
	end := start
	if !p.at(token.Semicolon) && !p.at(token.NEWLINE) && !p.at(token.RBrace) && !p.at(token.EOF) {
		value = p.parseExpr()
		if value == nil {
			return nil
		}
		end = value.ExprSpan()
	}
	p.eatStmtTerminator()
	return &ast.Return{Value: value, Span: start.Merge(end)}
}

// parseIfStmt parses 'if' expr '{' stmt* '}' ( 'else' '{' stmt* '}' )?
func (p *Parser) parseIfStmt() ast.Stmt {
	start := p.peek().Span
	p.advance() // 'if'

	cond := p.parseExpr()
	if cond == nil {
		return nil
	}
	p.skipNewlines()
	if _, ok := p.expect(token.LBrace, "'{' to start if-body"); !ok {
		return nil
	}
	then := p.parseStmtsUntil(token.RBrace)
	end := p.peek().Span
	if _, ok := p.expect(token.RBrace, "'}' to close if-body"); !ok {
		return nil
	}

	var elseBranch []ast.Stmt
	p.skipNewlines()
	if p.at(token.KwElse) {
		p.advance()
		p.skipNewlines()
		if _, ok := p.expect(token.LBrace, "'{' to start else-body"); !ok {
			return nil
		}
		elseBranch = p.parseStmtsUntil(token.RBrace)
		end = p.peek().Span
		if _, ok := p.expect(token.RBrace, "'}' to close else-body"); !ok {
			return nil
		}
	}

	return &ast.If{Cond: cond, Then: then, Else: elseBranch, Span: start.Merge(end)}
}

// parseWhileStmt parses 'while' expr '{' stmt* '}'
func (p *Parser) parseWhileStmt() ast.Stmt {
	start := p.peek().Span
	p.advance() // 'while'

	cond := p.parseExpr()
	if cond == nil {
		return nil
	}
	p.skipNewlines()
	if _, ok := p.expect(token.LBrace, "'{' to start while-body"); !ok {
		return nil
	}
	body := p.parseStmtsUntil(token.RBrace)
	end := p.peek().Span
	if _, ok := p.expect(token.RBrace, "'}' to close while-body"); !ok {
		return nil
	}
	return &ast.While{Cond: cond, Body: body, Span: start.Merge(end)}
}

// parseBlockStmt parses a standalone '{' stmt* '}' block statement.
func (p *Parser) parseBlockStmt() ast.Stmt {
	start := p.peek().Span
	p.advance() // '{'
	stmts := p.parseStmtsUntil(token.RBrace)
	end := p.peek().Span
	if _, ok := p.expect(token.RBrace, "'}' to close block"); !ok {
		return nil
	}
	return &ast.Block{Stmts: stmts, Span: start.Merge(end)}
}

// parseExprStmt parses expr ';'?
func (p *Parser) parseExprStmt() ast.Stmt {
	expr := p.parseExpr()
	if expr == nil {
		return nil
	}
	span := expr.ExprSpan()
	p.eatStmtTerminator()
	return &ast.ExprStmt{Expr: expr, Span: span}
}
