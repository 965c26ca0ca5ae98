/*
Package grammar holds the FIRST and FOLLOW sets of the Modula-2 grammar.

A single recursive-descent parser serves all dialects by asking the table for
the lookahead sets of a production under the capabilities currently active,
instead of branching on the dialect:

    tab := grammar.Modula2()
    if tab.First(grammar.FieldList, cfg).Contains(tok.Symbol()) {
        …
    }

Most productions have a single pair of FIRST/FOLLOW sets. Productions depending
on a capability have a second, alternate pair. Which pair is consulted is
decided by FirstSlot and FollowSlot, pure functions of the production and the
configuration:

    production range            FIRST               FOLLOW
    const parameter dependent   Alternate           Alternate
    variant record dependent    Alternate if VR on  Alternate if VR off
    all others                  Primary             Primary

Note the inverted condition for FOLLOW in the variant record range. The table
data is laid out accordingly: for these productions the primary FOLLOW set is
the one for variant records enabled.

The table is built once and is immutable thereafter; it may be shared between
parsers running concurrently.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'm2gram.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("m2gram.grammar")
}
