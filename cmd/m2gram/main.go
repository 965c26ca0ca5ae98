/*
Command m2gram inspects the grammar tables of the Modula-2 front end.

Usage:

    m2gram caps                       capabilities of the selected configuration
    m2gram first  <production>        FIRST set under the active capabilities
    m2gram follow <production>        FOLLOW set under the active capabilities
    m2gram table [--html file]        all FIRST and FOLLOW sets
    m2gram shape  <node kind>         legal subnodes of a syntax tree node
    m2gram scan [-e text] [file]      tokens of a source file
    m2gram repl                       interactive mode

The configuration is selected by --dialect and one flag per capability, e.g.
--octal-literals=false. See package options for configuration files and
environment variables.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
)

// tracer traces with key 'm2gram.cmd'.
func tracer() tracing.Trace {
	return tracing.Select("m2gram.cmd")
}

func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	if err := newRootCmd().Execute(); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
