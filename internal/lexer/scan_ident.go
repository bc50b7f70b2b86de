package lexer

import "github.com/LetsZero/zero-compiler/internal/token"

// scanIdentOrKeyword scans a maximal run of identifier bytes, then checks
// the result against the keyword table. Keyword recognition is a plain map
// lookup rather than a length+tail switch, since Go's map dispatch already
// compiles to the same kind of jump table a hand-written switch would.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cur.mark()
	lx.cur.bump() // first byte already classified as isAlpha by the caller
	for isAlphaNum(lx.cur.peek()) {
		lx.cur.bump()
	}
	span := lx.cur.spanFrom(start)
	text := string(lx.file.Content[span.Start:span.End])
	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: span, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: span, Text: text}
}
