package grammar

import (
	"errors"
	"fmt"
	"sync"

	"github.com/npillmayer/m2gram/capability"
	"github.com/npillmayer/m2gram/tokenset"
)

// Capabilities is the view of a configuration the table needs for slot
// selection. *capability.Configuration implements it.
type Capabilities interface {
	IsEnabled(capability.Capability) bool
}

// Slot selects one of the two FIRST/FOLLOW pairs of a production.
type Slot int

const (
	Primary Slot = iota
	Alternate
)

func (s Slot) String() string {
	if s == Alternate {
		return "alternate"
	}
	return "primary"
}

func variantRecords(caps Capabilities) bool {
	return caps != nil && caps.IsEnabled(capability.VariantRecords)
}

// FirstSlot selects the slot holding FIRST(p) under caps. A nil caps is
// treated as a configuration with every capability disabled.
func FirstSlot(p Production, caps Capabilities) Slot {
	switch {
	case IsConstParamDependent(p):
		return Alternate
	case IsVariantRecordDependent(p) && variantRecords(caps):
		return Alternate
	}
	return Primary
}

// FollowSlot selects the slot holding FOLLOW(p) under caps. For productions
// depending on variant records the condition is the inverse of FirstSlot's.
func FollowSlot(p Production, caps Capabilities) Slot {
	switch {
	case IsConstParamDependent(p):
		return Alternate
	case IsVariantRecordDependent(p) && !variantRecords(caps):
		return Alternate
	}
	return Primary
}

// index computes the storage position of slot s of production p.
func index(p Production, s Slot) int {
	if s == Alternate && IsOptionDependent(p) {
		return int(p) + AlternateOffset
	}
	return int(p)
}

// Table holds FIRST and FOLLOW sets for every production, with alternate
// slots for the option dependent ones.
type Table struct {
	first  []tokenset.Set
	follow []tokenset.Set
}

func newTable() *Table {
	size := ProductionCount + AlternateOffset
	return &Table{
		first:  make([]tokenset.Set, size),
		follow: make([]tokenset.Set, size),
	}
}

// First returns FIRST(p) under the capabilities caps.
// It panics if p is not a valid production.
func (t *Table) First(p Production, caps Capabilities) tokenset.Set {
	mustBeValid(p)
	return t.first[index(p, FirstSlot(p, caps))]
}

// Follow returns FOLLOW(p) under the capabilities caps.
// It panics if p is not a valid production.
func (t *Table) Follow(p Production, caps Capabilities) tokenset.Set {
	mustBeValid(p)
	return t.follow[index(p, FollowSlot(p, caps))]
}

// FirstAt returns the FIRST set stored in slot s of p. For productions without
// alternates both slots are the same.
func (t *Table) FirstAt(p Production, s Slot) tokenset.Set {
	mustBeValid(p)
	return t.first[index(p, s)]
}

// FollowAt returns the FOLLOW set stored in slot s of p.
func (t *Table) FollowAt(p Production, s Slot) tokenset.Set {
	mustBeValid(p)
	return t.follow[index(p, s)]
}

func mustBeValid(p Production) {
	if !p.IsValid() {
		panic(fmt.Sprintf("grammar: production %d out of range", int(p)))
	}
}

// Validate checks that every slot of the table is populated.
func (t *Table) Validate() error {
	var errs []error
	check := func(p Production, s Slot) {
		i := index(p, s)
		if t.first[i].IsEmpty() {
			errs = append(errs, fmt.Errorf("FIRST(%s) has no %s set", p, s))
		}
		if t.follow[i].IsEmpty() {
			errs = append(errs, fmt.Errorf("FOLLOW(%s) has no %s set", p, s))
		}
	}
	for p := Production(0); p < productionCount; p++ {
		check(p, Primary)
		if IsOptionDependent(p) {
			check(p, Alternate)
		}
	}
	return errors.Join(errs...)
}

// --- Building --------------------------------------------------------------

// builder fills a table, refusing to fill a slot twice.
type builder struct {
	t    *Table
	done []bool
}

func (b *builder) put(p Production, s Slot, first, follow tokenset.Set) {
	i := index(p, s)
	if b.done[i] {
		panic(fmt.Sprintf("grammar: %s slot of %s defined twice", s, p))
	}
	b.done[i] = true
	b.t.first[i], b.t.follow[i] = first, follow
}

// rule defines the sets of a production without alternates.
func (b *builder) rule(p Production, first, follow tokenset.Set) {
	if IsOptionDependent(p) {
		panic(fmt.Sprintf("grammar: %s needs alternate sets", p))
	}
	b.put(p, Primary, first, follow)
}

// alternates defines both pairs of an option dependent production.
func (b *builder) alternates(p Production, first, follow, altFirst, altFollow tokenset.Set) {
	if !IsOptionDependent(p) {
		panic(fmt.Sprintf("grammar: %s has no alternate sets", p))
	}
	b.put(p, Primary, first, follow)
	b.put(p, Alternate, altFirst, altFollow)
}

var (
	modula2     *Table
	modula2Once sync.Once
)

// Modula2 returns the table for the Modula-2 grammar. The table is built on
// first use.
func Modula2() *Table {
	modula2Once.Do(func() {
		b := &builder{t: newTable(), done: make([]bool, ProductionCount+AlternateOffset)}
		defineModula2(b)
		if err := b.t.Validate(); err != nil {
			panic(fmt.Sprintf("grammar: inconsistent Modula-2 table: %v", err))
		}
		tracer().Debugf("built Modula-2 FIRST/FOLLOW table with %d slots", len(b.t.first))
		modula2 = b.t
	})
	return modula2
}
