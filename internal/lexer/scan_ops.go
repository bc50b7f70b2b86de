package lexer

import "github.com/LetsZero/zero-compiler/internal/token"

// scanOperatorOrPunct scans a single- or two-byte operator/delimiter. The
// two-byte forms (-> == != <= >=) are recognized via a one-byte lookahead
// before falling back to the corresponding single-byte token.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cur.mark()
	emit := func(k token.Kind) token.Token {
		span := lx.cur.spanFrom(start)
		return token.Token{Kind: k, Span: span, Text: string(lx.file.Content[span.Start:span.End])}
	}

	ch := lx.cur.bump()
	switch ch {
	case '+':
		return emit(token.Plus)
	case '*':
		return emit(token.Star)
	case '/':
		return emit(token.Slash)
	case '-':
		if lx.cur.peek() == '>' {
			lx.cur.bump()
			return emit(token.Arrow)
		}
		return emit(token.Minus)
	case '=':
		if lx.cur.peek() == '=' {
			lx.cur.bump()
			return emit(token.EqEq)
		}
		return emit(token.Assign)
	case '!':
		if lx.cur.peek() == '=' {
			lx.cur.bump()
			return emit(token.BangEq)
		}
		return emit(token.Bang)
	case '<':
		if lx.cur.peek() == '=' {
			lx.cur.bump()
			return emit(token.LtEq)
		}
		return emit(token.Lt)
	case '>':
		if lx.cur.peek() == '=' {
			lx.cur.bump()
			return emit(token.GtEq)
		}
		return emit(token.Gt)
	case '(':
		return emit(token.LParen)
	case ')':
		return emit(token.RParen)
	case '{':
		return emit(token.LBrace)
	case '}':
		return emit(token.RBrace)
	case '[':
		return emit(token.LBracket)
	case ']':
		return emit(token.RBracket)
	case ',':
		return emit(token.Comma)
	case ':':
		return emit(token.Colon)
	case ';':
		return emit(token.Semicolon)
	default:
		span := lx.cur.spanFrom(start)
		lx.report(span, "unexpected character")
		return token.Token{Kind: token.Invalid, Span: span, Text: string(lx.file.Content[span.Start:span.End])}
	}
}
