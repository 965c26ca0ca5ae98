package grammar

import (
	"math/rand"
	"strings"
	"sync"
	"testing"

	"github.com/npillmayer/m2gram/capability"
	"github.com/npillmayer/m2gram/symbol"
	"github.com/npillmayer/m2gram/tokenset"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capSet makes a plain capability set usable for slot selection.
type capSet capability.Set

func (s capSet) IsEnabled(c capability.Capability) bool {
	return capability.Set(s).Contains(c)
}

func randomCaps(rnd *rand.Rand) capSet {
	return capSet(capability.Set(rnd.Uint64()) & capability.AllCapabilities)
}

func TestTableIsComplete(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "m2gram.grammar")
	defer teardown()
	//
	tab := Modula2()
	require.NoError(t, tab.Validate())
	assert.Len(t, tab.first, ProductionCount+AlternateOffset)
	assert.Same(t, tab, Modula2())
}

func TestOptionDependentRanges(t *testing.T) {
	assert.Equal(t, 5, AlternateOffset)
	assert.Equal(t, ProductionCount-1, int(FieldList), "option dependent productions must be last")
	assert.True(t, constParamDependent.Disjoint(variantRecordDependent))
	for p := Production(0); p < productionCount; p++ {
		dep := IsConstParamDependent(p) || IsVariantRecordDependent(p)
		assert.Equal(t, dep, IsOptionDependent(p), p.String())
	}
	assert.True(t, IsConstParamDependent(FormalParamSection))
	assert.True(t, IsVariantRecordDependent(FieldList))
	assert.False(t, IsOptionDependent(FormalType))
	assert.False(t, IsOptionDependent(Production(-1)))
	assert.False(t, IsOptionDependent(productionCount))
}

func TestConstParamProductionsUseAlternate(t *testing.T) {
	tab := Modula2()
	cfgs := []Capabilities{nil, capSet(0), capSet(capability.AllCapabilities)}
	for d := capability.Dialect(0); d < capability.Dialect(capability.DialectCount); d++ {
		cfgs = append(cfgs, capability.ForDialect(d))
	}
	for p := FormalTypeList; p <= FormalParamSection; p++ {
		for _, caps := range cfgs {
			assert.Equal(t, Alternate, FirstSlot(p, caps))
			assert.Equal(t, Alternate, FollowSlot(p, caps))
			assert.True(t, tab.First(p, caps).Equal(tab.FirstAt(p, Alternate)), p.String())
			assert.True(t, tab.Follow(p, caps).Equal(tab.FollowAt(p, Alternate)), p.String())
			assert.True(t, tab.First(p, caps).Contains(symbol.CONST), p.String())
		}
		assert.False(t, tab.FirstAt(p, Primary).Contains(symbol.CONST), p.String())
	}
}

func TestOtherProductionsAreDialectIndependent(t *testing.T) {
	tab := Modula2()
	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		c1, c2 := randomCaps(rnd), randomCaps(rnd)
		for p := Production(0); p < productionCount; p++ {
			if IsOptionDependent(p) {
				continue
			}
			assert.True(t, tab.First(p, c1).Equal(tab.First(p, c2)), "FIRST(%s)", p)
			assert.True(t, tab.Follow(p, c1).Equal(tab.Follow(p, c2)), "FOLLOW(%s)", p)
		}
	}
}

func TestVariantRecordSlotsAreOpposite(t *testing.T) {
	on := capSet(capability.Of(capability.VariantRecords))
	off := capSet(0)
	for p := FieldListSequence; p <= FieldList; p++ {
		for _, caps := range []Capabilities{on, off, nil} {
			assert.NotEqual(t, FirstSlot(p, caps), FollowSlot(p, caps), p.String())
		}
		assert.Equal(t, Alternate, FirstSlot(p, on))
		assert.Equal(t, Primary, FollowSlot(p, on))
		assert.Equal(t, Primary, FirstSlot(p, off))
		assert.Equal(t, Alternate, FollowSlot(p, off))
	}
}

func TestFieldListUnderVariantRecords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "m2gram.grammar")
	defer teardown()
	//
	tab := Modula2()
	pim := capability.ForDialect(capability.PIM4)
	ext := capability.ForDialect(capability.Extended)
	require.True(t, pim.IsEnabled(capability.VariantRecords))
	require.False(t, ext.IsEnabled(capability.VariantRecords))
	//
	assert.True(t, tab.First(FieldList, pim).Contains(symbol.CASE))
	assert.True(t, tab.Follow(FieldList, pim).Contains(symbol.BAR))
	assert.False(t, tab.First(FieldList, ext).Contains(symbol.CASE))
	assert.False(t, tab.Follow(FieldList, ext).Contains(symbol.BAR))
	assert.True(t, tab.Follow(FieldListSequence, ext).Equal(tokenset.New(symbol.END)))
	// switching the capability on changes the answer for the same session
	require.NoError(t, ext.Set(capability.VariantRecords, true))
	assert.True(t, tab.First(FieldList, ext).Contains(symbol.CASE))
}

func TestExpressionSets(t *testing.T) {
	tab := Modula2()
	first := tab.First(Expression, nil)
	assert.True(t, tab.First(Factor, nil).IsSubsetOf(first))
	assert.True(t, first.Contains(symbol.MINUS))
	assert.False(t, tab.First(Term, nil).Contains(symbol.MINUS))
	// FOLLOW grows from expression down to factor
	chain := []Production{Expression, SimpleExpression, Term, Factor, Designator, Selector}
	for i := 1; i < len(chain); i++ {
		assert.True(t, tab.Follow(chain[i-1], nil).IsSubsetOf(tab.Follow(chain[i], nil)),
			"FOLLOW(%s) ⊆ FOLLOW(%s)", chain[i-1], chain[i])
	}
	assert.True(t, tab.First(Statement, nil).IsDisjointFrom(tab.Follow(Statement, nil)))
}

func TestProductionNames(t *testing.T) {
	for p := Production(0); p < productionCount; p++ {
		q, ok := ParseProduction(p.String())
		require.True(t, ok, p.String())
		assert.Equal(t, p, q)
	}
	p, ok := ParseProduction("FieldList")
	assert.True(t, ok)
	assert.Equal(t, FieldList, p)
	assert.Len(t, ProductionNames(), ProductionCount)
	assert.True(t, strings.HasPrefix(Production(999).String(), "<invalid"))
	assert.Panics(t, func() { Modula2().First(Production(999), nil) })
}

func TestConcurrentReaders(t *testing.T) {
	var wg sync.WaitGroup
	tables := make([]*Table, 8)
	for i := range tables {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tables[i] = Modula2()
			_ = tables[i].Follow(FieldList, capSet(0))
		}(i)
	}
	wg.Wait()
	for _, tab := range tables {
		assert.Same(t, tables[0], tab)
	}
}

func TestTableAsHTML(t *testing.T) {
	var b strings.Builder
	require.NoError(t, TableAsHTML(Modula2(), capability.ForDialect(capability.PIM3), &b))
	out := b.String()
	assert.Contains(t, out, "<td>fieldList <i>(alternate/primary)</i></td>")
	assert.Contains(t, out, "&#39;;&#39;")
}
