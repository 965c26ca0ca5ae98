package m2gram

import (
	"fmt"

	"github.com/npillmayer/m2gram/symbol"
)

// --- A general purpose interface for tokens --------------------------------

// Token represents an input token. Tokens are produced by a scanner and reflect
// terminals of the Modula-2 grammar.
//
// An example would be a token for a real number:
//
//    Symbol  = symbol.REAL   // terminal class of this token
//    Lexeme  = "3.1416"      // lexeme how it appeared in the input stream
//    Value   = nil           // conversion is up to the consumer
//    Span    = 67…73         // occured from position 67 in the input stream
//
type Token interface {
	Symbol() symbol.Symbol
	Lexeme() string
	Value() interface{}
	Span() Span
}

// TokenRetriever is a type for getting tokens at an input position.
type TokenRetriever func(uint64) Token

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a length of input token run. A span
// denotes a start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend returns the smallest span covering both s and other.
func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
