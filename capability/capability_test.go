package capability

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAlgebra(t *testing.T) {
	s := Of(Synonyms, WithStatement, Synonyms)
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains(WithStatement))
	assert.False(t, s.Contains(Coroutines))
	assert.False(t, s.Contains(Capability(-1)))
	assert.Equal(t, s, s.With(Capability(Count)))
	assert.True(t, s.IsSubsetOf(AllCapabilities))
	assert.Equal(t, Of(Synonyms), s.Minus(Of(WithStatement)))
	assert.Equal(t, "{Synonyms, WithStatement}", s.String())
	assert.Equal(t, Count, AllCapabilities.Len())
}

func TestNames(t *testing.T) {
	assert.Equal(t, "octal-literals", OctalLiterals.OptionName())
	assert.Equal(t, "to-do-statement", ToDoStatement.OptionName())
	for c := Capability(0); c < capabilityCount; c++ {
		p, ok := Parse(c.String())
		assert.True(t, ok)
		assert.Equal(t, c, p)
		p, ok = Parse(c.OptionName())
		assert.True(t, ok)
		assert.Equal(t, c, p)
	}
	d, ok := ParseDialect("pim4")
	assert.True(t, ok)
	assert.Equal(t, PIM4, d)
	_, ok = ParseDialect("Oberon")
	assert.False(t, ok)
}

// fixed lists, per dialect, the capabilities a user may never toggle. It is
// maintained independently of the dialect profiles.
var fixed = map[Dialect]Set{
	PIM3: Of(LineComments, BackslashSetDiffOp, PostfixIncAndDec, ConstParameters,
		AdditionalTypes, UnifiedConversion, ExplicitCast, Coroutines,
		ExtensibleRecords, IndeterminateRecords, UnqualifiedImport),
	PIM4: Of(LineComments, BackslashSetDiffOp, ConstParameters, AdditionalTypes,
		UnifiedConversion, ExplicitCast, ExtensibleRecords, IndeterminateRecords,
		UnqualifiedImport),
	Extended: Of(BackslashSetDiffOp, PostfixIncAndDec, ConstParameters,
		AdditionalTypes, UnifiedConversion, ExplicitCast),
}

func TestDialectProfiles(t *testing.T) {
	for d := Dialect(0); d < dialectCount; d++ {
		assert.True(t, Capabilities(d).IsSubsetOf(AllCapabilities), d.String())
		assert.True(t, Consistent(Capabilities(d)), "defaults of %s violate constraints", d)
		for c := range Mutable(d).Elements() {
			assert.False(t, fixed[d].Contains(c), "%s is mutable and fixed for %s", c, d)
		}
		assert.Equal(t, AllCapabilities, Mutable(d).Union(fixed[d]), d.String())
	}
	assert.True(t, IsDefault(PIM3, SuffixLiterals))
	assert.True(t, IsDefault(PIM3, ExplicitCast))
	assert.True(t, IsDefault(PIM3, UnqualifiedImport))
	assert.True(t, IsDefault(PIM3, WithStatement))
	assert.False(t, IsDefault(Extended, UnqualifiedImport))
	assert.True(t, IsMutable(Extended, LocalModules))
	assert.Equal(t, Set(0), Capabilities(Dialect(17)))
}

func TestImmutable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "m2gram.capability")
	defer teardown()
	//
	cfg := ForDialect(PIM3)
	err := cfg.Set(ConstParameters, true)
	assert.True(t, errors.Is(err, ErrImmutable))
	assert.False(t, cfg.IsEnabled(ConstParameters))
	assert.True(t, errors.Is(cfg.Set(Capability(99), true), ErrImmutable))
}

func TestDuplicateAssignment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "m2gram.capability")
	defer teardown()
	//
	cfg := ForDialect(PIM4)
	require.NoError(t, cfg.Set(WithStatement, false))
	err := cfg.Set(WithStatement, true)
	assert.True(t, errors.Is(err, ErrDuplicateAssignment))
	assert.False(t, cfg.IsEnabled(WithStatement))
	assert.True(t, cfg.Assigned().Contains(WithStatement))
}

func TestOctalRequiresSuffix(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "m2gram.capability")
	defer teardown()
	//
	cfg := ForDialect(PIM3)
	require.NoError(t, cfg.Set(OctalLiterals, true))
	assert.True(t, cfg.IsEnabled(OctalLiterals))
	//
	cfg = ForDialect(PIM3)
	require.NoError(t, cfg.Set(SuffixLiterals, false))
	assert.False(t, cfg.IsEnabled(OctalLiterals), "octal literals depend on suffix literals")
	before := cfg.Active()
	err := cfg.Set(OctalLiterals, true)
	assert.True(t, errors.Is(err, ErrUnmetDependency))
	assert.Equal(t, before, cfg.Active())
	assert.False(t, cfg.Assigned().Contains(OctalLiterals), "failed set must not count as assignment")
}

func TestPrefixAndSuffixExcludeEachOther(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "m2gram.capability")
	defer teardown()
	//
	cfg := ForDialect(PIM3)
	require.True(t, cfg.IsEnabled(SuffixLiterals))
	require.NoError(t, cfg.Set(PrefixLiterals, true))
	assert.True(t, cfg.IsEnabled(PrefixLiterals))
	assert.False(t, cfg.IsEnabled(SuffixLiterals))
	require.NoError(t, cfg.Set(SuffixLiterals, true))
	assert.True(t, cfg.IsEnabled(SuffixLiterals))
	assert.False(t, cfg.IsEnabled(PrefixLiterals))
	assert.True(t, Consistent(cfg.Active()))
}

func TestLocalModulesRequireUnqualifiedImport(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "m2gram.capability")
	defer teardown()
	//
	assert.NoError(t, ForDialect(PIM4).Set(LocalModules, true))
	cfg := ForDialect(Extended)
	err := cfg.Set(LocalModules, true)
	assert.True(t, errors.Is(err, ErrUnmetDependency))
	assert.False(t, cfg.IsEnabled(LocalModules))
	// after enabling the prerequisite it works
	require.NoError(t, cfg.Set(UnqualifiedImport, true))
	assert.NoError(t, cfg.Set(LocalModules, true))
	// switching the prerequisite off again is refused as a duplicate
	assert.True(t, errors.Is(cfg.Set(UnqualifiedImport, false), ErrDuplicateAssignment))
}

func TestVariantRecordsExcludeRecordExtensions(t *testing.T) {
	cfg := ForDialect(Extended)
	require.True(t, cfg.IsEnabled(ExtensibleRecords))
	require.NoError(t, cfg.Set(VariantRecords, true))
	assert.False(t, cfg.IsEnabled(ExtensibleRecords))
	assert.False(t, cfg.IsEnabled(IndeterminateRecords))
	require.NoError(t, cfg.Set(IndeterminateRecords, true))
	assert.False(t, cfg.IsEnabled(VariantRecords))
	assert.False(t, cfg.IsEnabled(ExtensibleRecords))
}

func TestPragmaDelimitersExcludeEachOther(t *testing.T) {
	cfg := ForDialect(Extended)
	require.NoError(t, cfg.Set(IntraCommentPragmas, true))
	assert.False(t, cfg.IsEnabled(IsoPragmaDelimiters))
}

func TestCascadeKeepsConstraints(t *testing.T) {
	cfg := ForDialect(PIM4)
	require.NoError(t, cfg.Set(PrefixLiterals, true))
	assert.False(t, cfg.IsEnabled(OctalLiterals))
	assert.True(t, Consistent(cfg.Active()))
}

func TestCloneIsIndependent(t *testing.T) {
	a := ForDialect(PIM4)
	b := a.Clone()
	require.NoError(t, b.Set(Synonyms, false))
	assert.True(t, a.IsEnabled(Synonyms))
	assert.False(t, b.IsEnabled(Synonyms))
	assert.NotEqual(t, a.Digest(), b.Digest())
	assert.Equal(t, a.Digest(), ForDialect(PIM4).Digest())
	assert.NotEmpty(t, a.Digest())
}

func TestImplicitChangesRespectFixedCapabilities(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "m2gram.capability")
	defer teardown()
	//
	cfg := ForDialect(PIM4)
	cfg.mutable = cfg.mutable.Without(OctalLiterals)
	before := cfg.Active()
	err := cfg.Set(SuffixLiterals, false) // would cascade to OctalLiterals
	assert.True(t, errors.Is(err, ErrImmutable))
	assert.Equal(t, before, cfg.Active())
	assert.False(t, cfg.Assigned().Contains(SuffixLiterals))
	//
	cfg = ForDialect(PIM4)
	cfg.mutable = cfg.mutable.Without(SuffixLiterals)
	before = cfg.Active()
	err = cfg.Set(PrefixLiterals, true) // would switch off SuffixLiterals
	assert.True(t, errors.Is(err, ErrImmutable))
	assert.Equal(t, before, cfg.Active())
	assert.False(t, cfg.IsEnabled(PrefixLiterals))
	require.NoError(t, cfg.Set(LowlineIdentifiers, true))
}

func TestPrerequisite(t *testing.T) {
	p, ok := LocalModules.Prerequisite()
	assert.True(t, ok)
	assert.Equal(t, UnqualifiedImport, p)
	p, ok = OctalLiterals.Prerequisite()
	assert.True(t, ok)
	assert.Equal(t, SuffixLiterals, p)
	_, ok = WithStatement.Prerequisite()
	assert.False(t, ok)
}
