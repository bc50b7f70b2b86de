package diag

import "github.com/LetsZero/zero-compiler/internal/source"

// Note is a secondary annotation attached to a Diagnostic, e.g. "first
// defined here" alongside a DUPLICATE_DEFINITION error.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is a single compiler message tied to a source location.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}

// Reporter receives diagnostics as they are produced. Every core stage
// (lexer, parser, semantic analyzer) accepts one instead of returning a Go
// error, so that it can keep accumulating diagnostics after the first one.
type Reporter interface {
	Report(d Diagnostic)
}
