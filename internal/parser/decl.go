package parser

import (
	"github.com/LetsZero/zero-compiler/internal/ast"
	"github.com/LetsZero/zero-compiler/internal/token"
)

// parseUseDecl parses 'use' IDENT — kept for source fidelity (the
// language has no module system), so the path is stored verbatim and
// never resolved. Only a single identifier is accepted as the path;
// '::'-separated paths are not parsed.
func (p *Parser) parseUseDecl() *ast.UseDecl {
	start := p.peek().Span
	p.advance() // 'use'
	path := ""
	if id, ok := p.expect(token.Ident, "module path after 'use'"); ok {
		path = id.Text
	} else {
		p.synchronize()
		return nil
	}
	end := p.peek().Span
	p.eatStmtTerminator()
	return &ast.UseDecl{Path: path, Span: start.Merge(end)}
}

// parseFnDecl parses 'fn' IDENT '(' params? ')' ('->' type)? '{' stmt* '}'.
func (p *Parser) parseFnDecl() *ast.FnDecl {
	start := p.peek().Span
	p.advance() // 'fn'

	nameTok, ok := p.expect(token.Ident, "function name")
	if !ok {
		p.synchronize()
		return nil
	}

	if _, ok := p.expect(token.LParen, "'(' after function name"); !ok {
		p.synchronize()
		return nil
	}
	params := p.parseParams()
	if _, ok := p.expect(token.RParen, "')' after parameters"); !ok {
		p.synchronize()
		return nil
	}

	returnType := ""
	if p.at(token.Arrow) {
		p.advance()
		returnType = p.parseType()
	}

	p.skipNewlines()
	if _, ok := p.expect(token.LBrace, "'{' to start function body"); !ok {
		p.synchronize()
		return nil
	}
	body := p.parseStmtsUntil(token.RBrace)
	end := p.peek().Span
	if _, ok := p.expect(token.RBrace, "'}' to close function body"); !ok {
		p.synchronize()
		return nil
	}

	return &ast.FnDecl{
		Name:       nameTok.Text,
		Params:     params,
		ReturnType: returnType,
		Body:       body,
		Span:       start.Merge(end),
	}
}

// parseParams parses: param { ',' param }
func (p *Parser) parseParams() []ast.Param {
	var params []ast.Param
	if p.at(token.RParen) {
		return params
	}
	for {
		nameTok, ok := p.expect(token.Ident, "parameter name")
		if !ok {
			return params
		}
		typeName := ""
		if p.at(token.Colon) {
			p.advance()
			typeName = p.parseType()
		}
		params = append(params, ast.Param{Name: nameTok.Text, Type: typeName, Span: nameTok.Span})
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	return params
}

// parseType parses: 'int' | 'float' | 'void' | 'tensor' | IDENT
// All five spellings lex as an identifier; the distinction between the
// four builtin spellings and a user-defined name is made later by
// types.FromTypeName.
func (p *Parser) parseType() string {
	if p.at(token.Ident) {
		return p.advance().Text
	}
	p.errorAt(p.peek().Span, "expected type name, got "+p.peek().Kind.String())
	return ""
}
