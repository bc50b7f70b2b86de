package parser

import (
	"strconv"

	"github.com/LetsZero/zero-compiler/internal/ast"
	"github.com/LetsZero/zero-compiler/internal/token"
)

// parseExpr is the entry point for expression parsing: lowest precedence
// is equality.
func (p *Parser) parseExpr() ast.Expr {
	return p.parseEquality()
}

// parseEquality: comparison ( ('==' | '!=') comparison )*
func (p *Parser) parseEquality() ast.Expr {
	left := p.parseComparison()
	for left != nil && (p.at(token.EqEq) || p.at(token.BangEq)) {
		opTok := p.advance()
		right := p.parseComparison()
		if right == nil {
			return nil
		}
		left = &ast.Binary{Op: binaryOpFor(opTok.Kind), Lhs: left, Rhs: right, Span: left.ExprSpan().Merge(right.ExprSpan())}
	}
	return left
}

// parseComparison: additive ( ('<' | '>' | '<=' | '>=') additive )*
func (p *Parser) parseComparison() ast.Expr {
	left := p.parseAdditive()
	for left != nil && (p.at(token.Lt) || p.at(token.Gt) || p.at(token.LtEq) || p.at(token.GtEq)) {
		opTok := p.advance()
		right := p.parseAdditive()
		if right == nil {
			return nil
		}
		left = &ast.Binary{Op: binaryOpFor(opTok.Kind), Lhs: left, Rhs: right, Span: left.ExprSpan().Merge(right.ExprSpan())}
	}
	return left
}

// parseAdditive: multiplicative ( ('+' | '-') multiplicative )*
func (p *Parser) parseAdditive() ast.Expr {
	left := p.parseMultiplicative()
	for left != nil && (p.at(token.Plus) || p.at(token.Minus)) {
		opTok := p.advance()
		right := p.parseMultiplicative()
		if right == nil {
			return nil
		}
		left = &ast.Binary{Op: binaryOpFor(opTok.Kind), Lhs: left, Rhs: right, Span: left.ExprSpan().Merge(right.ExprSpan())}
	}
	return left
}

// parseMultiplicative: unary ( ('*' | '/') unary )*
func (p *Parser) parseMultiplicative() ast.Expr {
	left := p.parseUnary()
	for left != nil && (p.at(token.Star) || p.at(token.Slash)) {
		opTok := p.advance()
		right := p.parseUnary()
		if right == nil {
			return nil
		}
		left = &ast.Binary{Op: binaryOpFor(opTok.Kind), Lhs: left, Rhs: right, Span: left.ExprSpan().Merge(right.ExprSpan())}
	}
	return left
}

// parseUnary: ('-' | '!') unary | call
// Right-associative by construction: a leading '-'/'!' recurses into
// parseUnary again before falling through to primary/call parsing.
func (p *Parser) parseUnary() ast.Expr {
	if p.at(token.Minus) || p.at(token.Bang) {
		opTok := p.advance()
		operand := p.parseUnary()
		if operand == nil {
			return nil
		}
		op := ast.OpNeg
		if opTok.Kind == token.Bang {
			op = ast.OpNot
		}
		return &ast.Unary{Op: op, Operand: operand, Span: opTok.Span.Merge(operand.ExprSpan())}
	}
	return p.parseCall()
}

// parseCall parses a primary expression, turning it into a Call if an
// Identifier is immediately followed by '('.
func (p *Parser) parseCall() ast.Expr {
	expr := p.parsePrimary()
	if expr == nil {
		return nil
	}
	ident, isIdent := expr.(*ast.Identifier)
	if isIdent && p.at(token.LParen) {
		return p.finishCall(ident)
	}
	return expr
}

// finishCall parses '(' args? ')' for a call whose callee name has already
// been consumed as ident.
func (p *Parser) finishCall(ident *ast.Identifier) ast.Expr {
	p.advance() // '('
	var args []ast.Expr
	if !p.at(token.RParen) {
		for {
			// Keyword-argument syntax: IDENT '=' is consumed and the
			// label discarded before parsing the argument expression.
			// This matches documented source behavior exactly - the
			// label is never preserved anywhere.
			if p.at(token.Ident) && p.isKeywordArgLookahead() {
				p.advance() // label
				p.advance() // '='
			}
			arg := p.parseExpr()
			if arg == nil {
				return nil
			}
			args = append(args, arg)
			if p.at(token.Comma) {
				p.advance()
				continue
			}
			break
		}
	}
	end := p.peek().Span
	if _, ok := p.expect(token.RParen, "')' to close call arguments"); !ok {
		return nil
	}
	return &ast.Call{Callee: ident.Name, Args: args, Span: ident.Span.Merge(end)}
}

// isKeywordArgLookahead reports whether the next two tokens are IDENT '='.
// The lexer only offers one token of lookahead, so to see a second token
// ahead the identifier is consumed speculatively and restored via the
// parser's own pushBack buffer.
func (p *Parser) isKeywordArgLookahead() bool {
	identTok := p.advance()
	isEq := p.at(token.Assign)
	p.pushBack(identTok)
	return isEq
}

// parsePrimary parses the highest-precedence forms: literals, identifiers,
// and parenthesized groups.
func (p *Parser) parsePrimary() ast.Expr {
	tok := p.peek()
	switch tok.Kind {
	case token.IntLit:
		p.advance()
		v, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			v = 0
		}
		return &ast.IntLiteral{Value: v, Span: tok.Span}
	case token.FloatLit:
		p.advance()
		v, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			v = 0
		}
		return &ast.FloatLiteral{Value: v, Span: tok.Span}
	case token.StringLit:
		p.advance()
		return &ast.StringLiteral{Value: unquote(tok.Text), Span: tok.Span}
	case token.Ident:
		p.advance()
		return &ast.Identifier{Name: tok.Text, Span: tok.Span}
	case token.LParen:
		p.advance()
		inner := p.parseExpr()
		if inner == nil {
			return nil
		}
		end := p.peek().Span
		if _, ok := p.expect(token.RParen, "')' to close grouped expression"); !ok {
			return nil
		}
		return &ast.Group{Inner: inner, Span: tok.Span.Merge(end)}
	default:
		p.errorAt(tok.Span, "expected expression, got "+tok.Kind.String())
		return nil
	}
}

func binaryOpFor(k token.Kind) ast.BinaryOp {
	switch k {
	case token.Plus:
		return ast.OpAdd
	case token.Minus:
		return ast.OpSub
	case token.Star:
		return ast.OpMul
	case token.Slash:
		return ast.OpDiv
	case token.EqEq:
		return ast.OpEq
	case token.BangEq:
		return ast.OpNe
	case token.Lt:
		return ast.OpLt
	case token.LtEq:
		return ast.OpLe
	case token.Gt:
		return ast.OpGt
	case token.GtEq:
		return ast.OpGe
	default:
		return ast.OpAdd
	}
}

// unquote strips the surrounding '"' from a scanned string literal's raw
// text and resolves '\\' escapes. Malformed escapes pass through verbatim.
func unquote(raw string) string {
	if len(raw) < 2 {
		return ""
	}
	body := raw[1 : len(raw)-1]
	out := make([]byte, 0, len(body))
	for i := 0; i < len(body); i++ {
		if body[i] == '\\' && i+1 < len(body) {
			i++
			switch body[i] {
			case 'n':
				out = append(out, '\n')
			case 't':
				out = append(out, '\t')
			case '"':
				out = append(out, '"')
			case '\\':
				out = append(out, '\\')
			default:
				out = append(out, '\\', body[i])
			}
			continue
		}
		out = append(out, body[i])
	}
	return string(out)
}
