package lexer

import "github.com/LetsZero/zero-compiler/internal/token"

// scanNumber scans an integer literal, or a float literal if a '.' followed
// by a digit appears before the run of digits ends. No numeric suffixes or
// alternate bases are supported; that matches the language's Type tag set
// (Int, Float) exactly.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cur.mark()
	kind := token.IntLit

	for isDigit(lx.cur.peek()) {
		lx.cur.bump()
	}

	if lx.cur.peek() == '.' && isDigit(lx.cur.peekAt(1)) {
		kind = token.FloatLit
		lx.cur.bump() // '.'
		for isDigit(lx.cur.peek()) {
			lx.cur.bump()
		}
	}

	span := lx.cur.spanFrom(start)
	return token.Token{Kind: kind, Span: span, Text: string(lx.file.Content[span.Start:span.End])}
}
