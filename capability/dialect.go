package capability

import (
	"fmt"

	"github.com/npillmayer/m2gram/internal/enum"
)

// Dialect is one of the supported language revisions.
type Dialect int

const (
	PIM3     Dialect = iota // Programming in Modula-2, 3rd edition
	PIM4                    // Programming in Modula-2, 4th edition
	Extended                // PIM4 with extensions and without legacy features

	dialectCount // sentinel
)

// DialectCount is the number of dialects.
const DialectCount = int(dialectCount)

var dialectNames = [...]string{PIM3: "PIM3", PIM4: "PIM4", Extended: "Extended"}

// IsValid is true for every supported dialect.
func (d Dialect) IsValid() bool {
	return d >= 0 && d < dialectCount
}

func (d Dialect) String() string {
	if !d.IsValid() {
		return fmt.Sprintf("<invalid dialect %d>", int(d))
	}
	return dialectNames[d]
}

var dialectIndex = enum.NewIndex(dialectCount, Dialect.String)

// ParseDialect finds a dialect by name, ignoring case.
func ParseDialect(name string) (Dialect, bool) {
	return dialectIndex.Lookup(name)
}

// DialectNames returns the names of all dialects in lexical order.
func DialectNames() []string {
	return dialectIndex.Names()
}

type dialectProfile struct {
	defaults Set // capabilities active unless overridden
	mutable  Set // capabilities a user may toggle
}

// Capabilities shared by the two PIM editions.
var (
	pimDefaults = Of(Synonyms, SuffixLiterals, OctalLiterals, ExplicitCast,
		Coroutines, VariantRecords, UnqualifiedImport, LocalModules, WithStatement)
	pimMutable = Of(Synonyms, PrefixLiterals, SuffixLiterals, OctalLiterals,
		LowlineIdentifiers, EscapeTabAndNewline, IntraCommentPragmas,
		IsoPragmaDelimiters, VariantRecords, LocalModules, WithStatement,
		ToDoStatement)
)

var profiles = [...]dialectProfile{
	PIM3: {
		defaults: pimDefaults,
		mutable:  pimMutable,
	},
	PIM4: {
		defaults: pimDefaults,
		mutable:  pimMutable.With(PostfixIncAndDec).With(Coroutines),
	},
	Extended: {
		defaults: Of(LineComments, PrefixLiterals, LowlineIdentifiers,
			EscapeTabAndNewline, BackslashSetDiffOp, PostfixIncAndDec,
			IsoPragmaDelimiters, ConstParameters, AdditionalTypes,
			UnifiedConversion, ExplicitCast, ExtensibleRecords,
			IndeterminateRecords, ToDoStatement),
		mutable: Of(Synonyms, LineComments, PrefixLiterals, SuffixLiterals,
			OctalLiterals, LowlineIdentifiers, EscapeTabAndNewline,
			IntraCommentPragmas, IsoPragmaDelimiters, Coroutines, VariantRecords,
			ExtensibleRecords, IndeterminateRecords, UnqualifiedImport,
			LocalModules, WithStatement, ToDoStatement),
	},
}

// Capabilities returns the capabilities active by default for dialect d.
func Capabilities(d Dialect) Set {
	if !d.IsValid() {
		return 0
	}
	return profiles[d].defaults
}

// Mutable returns the capabilities a user may toggle for dialect d.
func Mutable(d Dialect) Set {
	if !d.IsValid() {
		return 0
	}
	return profiles[d].mutable
}

// IsDefault is true if c is active by default for dialect d.
func IsDefault(d Dialect, c Capability) bool {
	return Capabilities(d).Contains(c)
}

// IsMutable is true if c may be toggled for dialect d.
func IsMutable(d Dialect, c Capability) bool {
	return Mutable(d).Contains(c)
}
