// Package lexer tokenizes Zero source text, preserving a Span into the
// owning source.File on every token it emits.
package lexer

import (
	"github.com/LetsZero/zero-compiler/internal/diag"
	"github.com/LetsZero/zero-compiler/internal/source"
	"github.com/LetsZero/zero-compiler/internal/token"
)

// Lexer scans a single source.File with one-token lookahead.
type Lexer struct {
	file     *source.File
	cur      cursor
	reporter diag.Reporter
	look     *token.Token
}

// New creates a Lexer over file. reporter may be nil, in which case lexical
// errors are silently coerced into ERROR tokens with no diagnostic emitted.
func New(file *source.File, reporter diag.Reporter) *Lexer {
	return &Lexer{file: file, cur: newCursor(file), reporter: reporter}
}

// AtEnd reports whether the scan cursor has reached the end of the file
// and no lookahead token is buffered.
func (lx *Lexer) AtEnd() bool {
	return lx.look == nil && lx.cur.atEnd()
}

// Next consumes and returns the next token, including NEWLINE and EOF.
// Calling Next after EOF has been returned keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		t := *lx.look
		lx.look = nil
		return t
	}
	return lx.scan()
}

// Peek returns the next token without consuming it. The peeked token is
// cached and returned by the following call to Next.
func (lx *Lexer) Peek() token.Token {
	if lx.look == nil {
		t := lx.scan()
		lx.look = &t
	}
	return *lx.look
}

func (lx *Lexer) scan() token.Token {
	lx.skipInsignificantWhitespaceAndComments()

	if lx.cur.atEnd() {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
	}

	ch := lx.cur.peek()
	switch {
	case ch == '\n':
		start := lx.cur.mark()
		lx.cur.bump()
		span := lx.cur.spanFrom(start)
		return token.Token{Kind: token.NEWLINE, Span: span, Text: "\n"}
	case isAlpha(ch):
		return lx.scanIdentOrKeyword()
	case isDigit(ch):
		return lx.scanNumber()
	case ch == '"':
		return lx.scanString()
	default:
		return lx.scanOperatorOrPunct()
	}
}

// skipInsignificantWhitespaceAndComments consumes spaces, tabs, carriage
// returns, and '//' line comments. Newlines are left for scan to emit as
// NEWLINE tokens, since they are significant to the parser.
func (lx *Lexer) skipInsignificantWhitespaceAndComments() {
	for {
		switch lx.cur.peek() {
		case ' ', '\t', '\r':
			lx.cur.bump()
		case '/':
			if lx.cur.peekAt(1) == '/' {
				for !lx.cur.atEnd() && lx.cur.peek() != '\n' {
					lx.cur.bump()
				}
				continue
			}
			return
		default:
			return
		}
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cur.off, End: lx.cur.off}
}

func (lx *Lexer) report(span source.Span, msg string) {
	if lx.reporter == nil {
		return
	}
	lx.reporter.Report(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.LexUnexpectedCharacter,
		Message:  msg,
		Primary:  span,
	})
}
