/*
Package m2gram is the grammar core of a multi-dialect Modula-2 front end.

A single recursive-descent parser serves three language revisions (PIM3, PIM4
and an extended dialect). Instead of branching on the dialect, the parser asks
the tables of this module:

■ symbol: Package symbol defines the terminal alphabet produced by the scanner.

■ tokenset: Package tokenset implements immutable bitsets over terminal symbols,
used as FIRST and FOLLOW sets.

■ capability: Package capability models syntax features, their per-dialect
defaults and the session configuration which enforces feature constraints.

■ grammar: Package grammar holds the FIRST/FOLLOW table with dialect dependent
alternates.

■ ast: Package ast defines node kinds and the shape table every syntax tree
node has to satisfy.

■ scanner: Package scanner defines the tokenizer interface; package
scanner/lexmach implements it with a lexer configured by capabilities.

■ options: Package options loads dialect and capability selections from files,
environment and flags. Command m2gram uses it to inspect the tables.

The base package contains data types which are used by scanners and parsers
consuming these tables.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package m2gram
