/*
Package enum provides helpers for the closed, contiguous enumerations used
throughout m2gram: symbols, capabilities, productions and node kinds.

Sub-ranges of an enumeration are modelled as half-open intervals, so that
classification is a range comparison rather than a per-value tag. Names of
enumeration values are kept in an ordered, case-insensitive index.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package enum

import (
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"golang.org/x/exp/constraints"
)

// Range is a half-open interval [From, To) of an enumeration.
type Range[T constraints.Integer] struct {
	From, To T
}

// Span creates a range from the first to the last value, both inclusive.
func Span[T constraints.Integer](first, last T) Range[T] {
	return Range[T]{From: first, To: last + 1}
}

// Contains is true if x lies within r.
func (r Range[T]) Contains(x T) bool {
	return x >= r.From && x < r.To
}

// Len returns the number of values in r.
func (r Range[T]) Len() int {
	if r.To <= r.From {
		return 0
	}
	return int(r.To - r.From)
}

// Disjoint is true if r and other do not share a value.
func (r Range[T]) Disjoint(other Range[T]) bool {
	return r.To <= other.From || other.To <= r.From
}

// --- Name index ------------------------------------------------------------

type entry[T any] struct {
	name  string
	value T
}

// Index maps names of enumeration values to the values. Lookup is
// case-insensitive, iteration is in lexical order of the names.
type Index[T constraints.Integer] struct {
	names *treemap.Map
}

// NewIndex creates an index for values 0…count-1, named by label.
func NewIndex[T constraints.Integer](count T, label func(T) string) *Index[T] {
	ix := &Index[T]{names: treemap.NewWithStringComparator()}
	for v := T(0); v < count; v++ {
		ix.Add(label(v), v)
	}
	return ix
}

// Add enters an additional name (e.g., a synonym) for value v.
func (ix *Index[T]) Add(name string, v T) {
	ix.names.Put(strings.ToLower(name), entry[T]{name: name, value: v})
}

// Lookup finds a value by name.
func (ix *Index[T]) Lookup(name string) (T, bool) {
	e, found := ix.names.Get(strings.ToLower(strings.TrimSpace(name)))
	if !found {
		return 0, false
	}
	return e.(entry[T]).value, true
}

// Names returns all names of the index in lexical order.
func (ix *Index[T]) Names() []string {
	vals := ix.names.Values()
	names := make([]string, len(vals))
	for i, e := range vals {
		names[i] = e.(entry[T]).name
	}
	return names
}

// Size returns the number of names in the index.
func (ix *Index[T]) Size() int {
	return ix.names.Size()
}
