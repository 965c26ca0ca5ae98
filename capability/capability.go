/*
Package capability models the syntax features distinguishing the supported
Modula-2 dialects.

A Capability is a single optional syntax feature, e.g. octal literals or
variant records. Each Dialect has a set of capabilities which are on by
default, and a set of capabilities a user may toggle. A Configuration holds the
capabilities active for one compilation session and enforces the constraints
between capabilities whenever one of them is changed.

Parsers never branch on the dialect; they ask the configuration whether a
feature is enabled.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package capability

import (
	"fmt"
	"iter"
	"math/bits"
	"strings"

	"github.com/npillmayer/m2gram/internal/enum"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'm2gram.capability'.
func tracer() tracing.Trace {
	return tracing.Select("m2gram.capability")
}

// Capability is an optional syntax feature.
type Capability int

const (
	Synonyms             Capability = iota // '&' for AND, '~' for NOT, '<>' for '#'
	LineComments                           // comments from '!' to end of line
	PrefixLiterals                         // 0x1F, 0u1F, 0b101
	SuffixLiterals                         // 1FH, 1FC
	OctalLiterals                          // 17B, 17C
	LowlineIdentifiers                     // '_' and '$' within identifiers
	EscapeTabAndNewline                    // \t and \n within quoted literals
	BackslashSetDiffOp                     // '\' as set difference operator
	PostfixIncAndDec                       // i++ and i-- statements
	IntraCommentPragmas                    // (*$ … *) pragmas
	IsoPragmaDelimiters                    // <* … *> pragmas
	ConstParameters                        // CONST formal parameters
	AdditionalTypes                        // LONGCARD, OCTET and friends
	UnifiedConversion                      // CONV() instead of type transfer
	ExplicitCast                           // CAST() pseudo function
	Coroutines                             // NEWPROCESS, TRANSFER, IOTRANSFER
	VariantRecords                         // CASE within RECORD
	ExtensibleRecords                      // RECORD ( BaseType ) …
	IndeterminateRecords                   // records with a trailing open array
	UnqualifiedImport                      // FROM M IMPORT x
	LocalModules                           // MODULE within a block
	WithStatement                          // WITH designator DO
	ToDoStatement                          // TO DO … END

	capabilityCount // sentinel
)

// Count is the number of capabilities.
const Count = int(capabilityCount)

var capabilityNames = [...]string{
	Synonyms:             "Synonyms",
	LineComments:         "LineComments",
	PrefixLiterals:       "PrefixLiterals",
	SuffixLiterals:       "SuffixLiterals",
	OctalLiterals:        "OctalLiterals",
	LowlineIdentifiers:   "LowlineIdentifiers",
	EscapeTabAndNewline:  "EscapeTabAndNewline",
	BackslashSetDiffOp:   "BackslashSetDiffOp",
	PostfixIncAndDec:     "PostfixIncAndDec",
	IntraCommentPragmas:  "IntraCommentPragmas",
	IsoPragmaDelimiters:  "IsoPragmaDelimiters",
	ConstParameters:      "ConstParameters",
	AdditionalTypes:      "AdditionalTypes",
	UnifiedConversion:    "UnifiedConversion",
	ExplicitCast:         "ExplicitCast",
	Coroutines:           "Coroutines",
	VariantRecords:       "VariantRecords",
	ExtensibleRecords:    "ExtensibleRecords",
	IndeterminateRecords: "IndeterminateRecords",
	UnqualifiedImport:    "UnqualifiedImport",
	LocalModules:         "LocalModules",
	WithStatement:        "WithStatement",
	ToDoStatement:        "ToDoStatement",
}

var all = enum.Range[Capability]{From: 0, To: capabilityCount}

// IsValid is true for every defined capability.
func (c Capability) IsValid() bool {
	return all.Contains(c)
}

func (c Capability) String() string {
	if !c.IsValid() {
		return fmt.Sprintf("<invalid capability %d>", int(c))
	}
	return capabilityNames[c]
}

// OptionName returns the kebab-case spelling of c as used for command-line
// options, e.g. "octal-literals".
func (c Capability) OptionName() string {
	name := c.String()
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('-')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

var names = func() *enum.Index[Capability] {
	ix := enum.NewIndex(capabilityCount, Capability.String)
	for c := Capability(0); c < capabilityCount; c++ {
		ix.Add(c.OptionName(), c)
	}
	return ix
}()

// Parse finds a capability by name, either in CamelCase ("OctalLiterals") or
// in option spelling ("octal-literals"). Case is ignored.
func Parse(name string) (Capability, bool) {
	return names.Lookup(name)
}

// --- Capability sets -------------------------------------------------------

// Set is a set of capabilities. Sets are values; all operations return a new
// set.
type Set uint64

// Of creates a set from a list of capabilities. Invalid capabilities are
// ignored.
func Of(caps ...Capability) Set {
	var s Set
	for _, c := range caps {
		s = s.With(c)
	}
	return s
}

// AllCapabilities is the set of every defined capability.
const AllCapabilities = Set(1<<capabilityCount - 1)

// Contains is true if c is an element of s.
func (s Set) Contains(c Capability) bool {
	return c.IsValid() && s&(1<<uint(c)) != 0
}

// With returns s plus c.
func (s Set) With(c Capability) Set {
	if !c.IsValid() {
		return s
	}
	return s | 1<<uint(c)
}

// Without returns s minus c.
func (s Set) Without(c Capability) Set {
	if !c.IsValid() {
		return s
	}
	return s &^ (1 << uint(c))
}

// Union returns the union of s and other.
func (s Set) Union(other Set) Set {
	return s | other
}

// Minus returns the elements of s not in other.
func (s Set) Minus(other Set) Set {
	return s &^ other
}

// IsSubsetOf is true if every element of s is in other.
func (s Set) IsSubsetOf(other Set) bool {
	return s&other == s
}

// Len returns the number of elements of s.
func (s Set) Len() int {
	return bits.OnesCount64(uint64(s))
}

// Elements returns the elements of s in ascending order.
func (s Set) Elements() iter.Seq[Capability] {
	return func(yield func(Capability) bool) {
		for c := Capability(0); c < capabilityCount; c++ {
			if s.Contains(c) && !yield(c) {
				return
			}
		}
	}
}

func (s Set) String() string {
	var b strings.Builder
	b.WriteString("{")
	first := true
	for c := range s.Elements() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(c.String())
	}
	b.WriteString("}")
	return b.String()
}
