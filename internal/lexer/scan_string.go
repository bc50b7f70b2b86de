package lexer

import "github.com/LetsZero/zero-compiler/internal/token"

// scanString scans from an opening '"' to the matching closing '"'. An
// unterminated string reports a LexUnexpectedCharacter diagnostic and
// returns an Invalid token covering everything up to EOF; the next scan
// then yields EOF.
func (lx *Lexer) scanString() token.Token {
	start := lx.cur.mark()
	lx.cur.bump() // opening quote
	for !lx.cur.atEnd() && lx.cur.peek() != '"' {
		if lx.cur.peek() == '\\' {
			lx.cur.bump()
			if !lx.cur.atEnd() {
				lx.cur.bump()
			}
			continue
		}
		lx.cur.bump()
	}
	if lx.cur.peek() == '"' {
		lx.cur.bump()
		span := lx.cur.spanFrom(start)
		return token.Token{Kind: token.StringLit, Span: span, Text: string(lx.file.Content[span.Start:span.End])}
	}
	span := lx.cur.spanFrom(start)
	lx.report(span, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: span, Text: string(lx.file.Content[span.Start:span.End])}
}
