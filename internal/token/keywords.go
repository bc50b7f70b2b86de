package token

// keywords maps the reserved-word spellings to their Kind. Used by the
// lexer after it has scanned an identifier-shaped run of bytes.
var keywords = map[string]Kind{
	"fn":     KwFn,
	"let":    KwLet,
	"return": KwReturn,
	"if":     KwIf,
	"else":   KwElse,
	"while":  KwWhile,
	"use":    KwUse,
}

// LookupKeyword reports whether ident names a reserved word and, if so,
// its Kind.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
