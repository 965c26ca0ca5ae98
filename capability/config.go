package capability

import (
	"errors"
	"fmt"

	"github.com/cnf/structhash"
)

// Errors returned by Configuration.Set. They are wrapped with context; use
// errors.Is to test for them.
var (
	ErrImmutable           = errors.New("capability is fixed for this dialect")
	ErrDuplicateAssignment = errors.New("capability has already been set")
	ErrUnmetDependency     = errors.New("capability requires another capability")
)

// exclusion: enabling one of a pair disables the other one.
type exclusion struct {
	a, b Capability
}

var exclusions = [...]exclusion{
	{PrefixLiterals, SuffixLiterals},
	{IsoPragmaDelimiters, IntraCommentPragmas},
	{VariantRecords, ExtensibleRecords},
	{VariantRecords, IndeterminateRecords},
}

// dependency: cap may only be enabled while requires is enabled.
type dependency struct {
	cap, requires Capability
}

var dependencies = [...]dependency{
	{OctalLiterals, SuffixLiterals},
	{LocalModules, UnqualifiedImport},
}

// Prerequisite returns the capability c requires, if any.
func (c Capability) Prerequisite() (Capability, bool) {
	for _, dep := range dependencies {
		if dep.cap == c {
			return dep.requires, true
		}
	}
	return c, false
}

// Configuration is the set of capabilities active for a compilation session.
// It is created from a dialect and changed only through Set, which keeps the
// constraints between capabilities intact.
//
// A Configuration must not be changed concurrently. Parallel sessions should
// each own a configuration, see Clone.
type Configuration struct {
	dialect  Dialect
	active   Set
	mutable  Set
	assigned Set // capabilities explicitly set during this session
}

// ForDialect creates a configuration seeded with the defaults of dialect d.
// For an invalid dialect, the configuration is empty and nothing is mutable.
func ForDialect(d Dialect) *Configuration {
	cfg := &Configuration{
		dialect: d,
		active:  Capabilities(d),
		mutable: Mutable(d),
	}
	tracer().Debugf("configuration for %s: %v", d, cfg.active)
	return cfg
}

// Dialect returns the dialect the configuration was created for.
func (cfg *Configuration) Dialect() Dialect {
	return cfg.dialect
}

// IsEnabled is true if capability c is currently active.
func (cfg *Configuration) IsEnabled(c Capability) bool {
	return cfg.active.Contains(c)
}

// Active returns the set of active capabilities.
func (cfg *Configuration) Active() Set {
	return cfg.active
}

// Assigned returns the set of capabilities explicitly set so far.
func (cfg *Configuration) Assigned() Set {
	return cfg.assigned
}

// Clone returns an independent copy of cfg.
func (cfg *Configuration) Clone() *Configuration {
	c := *cfg
	return &c
}

// Set enables or disables capability c.
//
// Set fails with ErrImmutable if c is fixed for the dialect, and with
// ErrDuplicateAssignment if c has already been set during this session.
// Enabling a capability switches off its mutually exclusive partners.
// Enabling a capability whose prerequisite is inactive fails with
// ErrUnmetDependency. Switching off a prerequisite switches off the
// capabilities depending on it.
//
// Set either succeeds completely or leaves the configuration unchanged.
func (cfg *Configuration) Set(c Capability, on bool) error {
	if !c.IsValid() {
		return fmt.Errorf("%w: %v", ErrImmutable, c)
	}
	if !cfg.mutable.Contains(c) {
		return fmt.Errorf("%w: %s (dialect %s)", ErrImmutable, c, cfg.dialect)
	}
	if cfg.assigned.Contains(c) {
		return fmt.Errorf("%w: %s", ErrDuplicateAssignment, c)
	}
	next, err := cfg.apply(c, on)
	if err != nil {
		tracer().Debugf("rejected %s=%v: %v", c, on, err)
		return err
	}
	if changed := (next ^ cfg.active).Without(c); changed != 0 {
		tracer().Debugf("setting %s=%v also changes %v", c, on, changed)
	}
	cfg.active = next
	cfg.assigned = cfg.assigned.With(c)
	return nil
}

// apply computes the active set resulting from setting c, without touching cfg.
func (cfg *Configuration) apply(c Capability, on bool) (Set, error) {
	next := cfg.active
	if !on {
		next = next.Without(c)
	} else {
		for _, dep := range dependencies {
			if dep.cap == c && !next.Contains(dep.requires) {
				return cfg.active, fmt.Errorf("%w: %s requires %s", ErrUnmetDependency, c, dep.requires)
			}
		}
		next = next.With(c)
		for _, x := range exclusions {
			switch c {
			case x.a:
				next = next.Without(x.b)
			case x.b:
				next = next.Without(x.a)
			}
		}
	}
	next = cascade(next)
	// implicit changes may not touch capabilities fixed for the dialect
	for x := range (next ^ cfg.active).Without(c).Elements() {
		if !cfg.mutable.Contains(x) {
			return cfg.active, fmt.Errorf("%w: setting %s would change %s (dialect %s)",
				ErrImmutable, c, x, cfg.dialect)
		}
	}
	return next, nil
}

// cascade switches off every capability whose prerequisite is inactive.
func cascade(s Set) Set {
	for changed := true; changed; {
		changed = false
		for _, dep := range dependencies {
			if s.Contains(dep.cap) && !s.Contains(dep.requires) {
				s = s.Without(dep.cap)
				changed = true
			}
		}
	}
	return s
}

// Consistent is true if s satisfies all constraints between capabilities.
func Consistent(s Set) bool {
	for _, x := range exclusions {
		if s.Contains(x.a) && s.Contains(x.b) {
			return false
		}
	}
	for _, dep := range dependencies {
		if s.Contains(dep.cap) && !s.Contains(dep.requires) {
			return false
		}
	}
	return true
}

// Digest returns a stable hash of the dialect and the active capabilities.
// Two configurations with equal digests accept the same syntax.
func (cfg *Configuration) Digest() string {
	active := make([]string, 0, cfg.active.Len())
	for c := range cfg.active.Elements() {
		active = append(active, c.String())
	}
	h, err := structhash.Hash(struct {
		Dialect      string
		Capabilities []string
	}{cfg.dialect.String(), active}, 1)
	if err != nil { // cannot happen for plain strings
		tracer().Errorf("cannot hash configuration: %v", err)
		return ""
	}
	return h
}

func (cfg *Configuration) String() string {
	return fmt.Sprintf("%s%v", cfg.dialect, cfg.active)
}
