/*
Package tokenset implements immutable sets of terminal symbols.

Token sets are the currency of predictive parsing: FIRST and FOLLOW sets of
grammar productions, sets of expected symbols for error messages, and
resynchronization sets for error recovery. All of them are built once, when
the grammar tables are constructed, and are read-only thereafter.

A Set stores ⌈symbol.Count / 64⌉ words plus a cached element count. There is
no exported operation modifying a set in place; every operation producing a
set returns a new one.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tokenset

import (
	"fmt"
	"iter"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/npillmayer/m2gram/symbol"
)

// WordCount is the number of 64-bit words a set occupies.
const WordCount = (symbol.Count + 63) / 64

// Set is an immutable set of terminal symbols. The zero value is the empty set.
type Set struct {
	bits  *bitset.BitSet
	count int
}

func newBits() *bitset.BitSet {
	return bitset.New(uint(symbol.Count))
}

// New creates a set containing exactly the given symbols. Duplicates are
// allowed. New panics if a symbol is outside the terminal alphabet; sets are
// created from constant symbol lists during table construction, where this
// is a programming error.
func New(syms ...symbol.Symbol) Set {
	b := newBits()
	for _, s := range syms {
		if !s.IsValid() {
			panic(fmt.Sprintf("tokenset.New: symbol %d is not in the terminal alphabet", int(s)))
		}
		b.Set(uint(s))
	}
	return Set{bits: b, count: int(b.Count())}
}

// Union returns the union of all the given sets. The union of no sets is the
// empty set.
func Union(sets ...Set) Set {
	b := newBits()
	for _, s := range sets {
		if s.bits != nil {
			b.InPlaceUnion(s.bits)
		}
	}
	return Set{bits: b, count: int(b.Count())}
}

// With returns a new set containing the symbols of s plus syms.
func (s Set) With(syms ...symbol.Symbol) Set {
	return Union(s, New(syms...))
}

// Contains is true if sym is an element of s. Symbols outside the alphabet
// are never contained.
func (s Set) Contains(sym symbol.Symbol) bool {
	if s.bits == nil || !sym.IsValid() {
		return false
	}
	return s.bits.Test(uint(sym))
}

// IsSubsetOf is true if every element of s is an element of other.
func (s Set) IsSubsetOf(other Set) bool {
	if s.count == 0 {
		return true
	}
	if other.bits == nil {
		return false
	}
	return other.bits.IsSuperSet(s.bits)
}

// IsDisjointFrom is true if s and other have no element in common.
func (s Set) IsDisjointFrom(other Set) bool {
	if s.count == 0 || other.count == 0 {
		return true
	}
	return s.bits.IntersectionCardinality(other.bits) == 0
}

// Equal is true if s and other contain the same symbols.
func (s Set) Equal(other Set) bool {
	return s.count == other.count && s.IsSubsetOf(other)
}

// Len returns the number of elements of s.
func (s Set) Len() int {
	return s.count
}

// IsEmpty is true for the empty set.
func (s Set) IsEmpty() bool {
	return s.count == 0
}

// Elements returns the elements of s in ascending order. The sequence may be
// iterated more than once.
func (s Set) Elements() iter.Seq[symbol.Symbol] {
	return func(yield func(symbol.Symbol) bool) {
		if s.bits == nil {
			return
		}
		for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
			if !yield(symbol.Symbol(i)) {
				return
			}
		}
	}
}

// Slice returns the elements of s in ascending order.
func (s Set) Slice() []symbol.Symbol {
	syms := make([]symbol.Symbol, 0, s.count)
	for sym := range s.Elements() {
		syms = append(syms, sym)
	}
	return syms
}

// Words returns the packed representation of s, least significant word first.
func (s Set) Words() [WordCount]uint64 {
	var w [WordCount]uint64
	for sym := range s.Elements() {
		w[sym/64] |= 1 << (uint(sym) % 64)
	}
	return w
}

// --- Rendering -------------------------------------------------------------

// String returns the labels of all elements, e.g. "{BEGIN, identifier, ';'}".
func (s Set) String() string {
	var b strings.Builder
	b.WriteString("{")
	first := true
	for sym := range s.Elements() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(sym.String())
	}
	b.WriteString("}")
	return b.String()
}

// Lexemes returns, for each element, its canonical lexeme or, if it has none,
// its label. This is the format used in "expected …" diagnostics.
func (s Set) Lexemes() []string {
	lx := make([]string, 0, s.count)
	for sym := range s.Elements() {
		if l := sym.Lexeme(); l != "" {
			lx = append(lx, l)
		} else {
			lx = append(lx, sym.String())
		}
	}
	return lx
}

// GoString dumps s as a literal of its words and cached count.
func (s Set) GoString() string {
	w := s.Words()
	parts := make([]string, len(w))
	for i, x := range w {
		parts[i] = fmt.Sprintf("0x%016x", x)
	}
	return fmt.Sprintf("tokenset.Set{words: [%s], count: %d}", strings.Join(parts, ", "), s.count)
}

// GoSource renders s as a Go expression calling New with the symbol constants.
func (s Set) GoSource() string {
	names := make([]string, 0, s.count)
	for sym := range s.Elements() {
		names = append(names, "symbol."+sym.GoName())
	}
	return "tokenset.New(" + strings.Join(names, ", ") + ")"
}
