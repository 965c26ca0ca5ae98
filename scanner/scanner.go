/*
Package scanner defines an interface for scanners feeding Modula-2 parsers.

A scanner turns source text into terminal symbols of package symbol. Which
symbols a scanner produces for a given input depends on the capabilities
active for the compilation session, e.g. "0x1F" is an integer literal only if
prefix literals are enabled.

An implementation based on lexmachine lives in sub-package `lexmach`.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"

	"github.com/npillmayer/m2gram"
	"github.com/npillmayer/m2gram/symbol"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'm2gram.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("m2gram.scanner")
}

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() m2gram.Token
	SetErrorHandler(func(error))
}

// LogError is the default error reporting function for scanners.
func LogError(e error) {
	tracer().Errorf("scanner error: %v", e)
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used by the lexmachine
// scanner.
type DefaultToken struct {
	sym    symbol.Symbol
	lexeme string
	Val    interface{}
	span   m2gram.Span
	Line   int // line of the first character, starting at 1
	Column int // column of the first character, starting at 1
}

var _ m2gram.Token = DefaultToken{}

// MakeDefaultToken creates a token for a symbol.
func MakeDefaultToken(sym symbol.Symbol, lexeme string, span m2gram.Span) DefaultToken {
	return DefaultToken{
		sym:    sym,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) Symbol() symbol.Symbol {
	return t.sym
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() m2gram.Span {
	return t.span
}

func (t DefaultToken) String() string {
	if t.sym == symbol.EOF {
		return t.sym.String()
	}
	return fmt.Sprintf("%s %q %d:%d", t.sym, t.lexeme, t.Line, t.Column)
}
