package token

import "github.com/LetsZero/zero-compiler/internal/source"

// Token is a single lexeme together with its source location. Text is a
// copy of the bytes Span covers in the owning source.File, so it stays
// valid independently of the source.Manager.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsLiteral reports whether the token is an int/float/string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StringLit:
		return true
	default:
		return false
	}
}
