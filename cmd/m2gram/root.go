package main

import (
	"github.com/npillmayer/m2gram/capability"
	"github.com/npillmayer/m2gram/options"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// traceKeys lists the tracers of all packages; --trace sets all of them.
var traceKeys = []string{
	"m2gram.capability",
	"m2gram.grammar",
	"m2gram.ast",
	"m2gram.scanner",
	"m2gram.options",
	"m2gram.cmd",
}

// session is the configuration selected for this invocation. Commands read
// it, the REPL may change it.
var session *capability.Configuration

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "m2gram",
		Short: "Inspect the grammar tables of the Modula-2 front end",
		Long: `m2gram shows the FIRST/FOLLOW sets, node shapes and tokens of the
Modula-2 front end, as seen under a dialect and a selection of capabilities.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			opts, err := options.Load("", cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			setTraceLevel(opts.Trace)
			cfg, err := options.Apply(opts)
			if cfg == nil {
				return err
			}
			reportOptionErrors(err)
			session = cfg
			tracer().Infof("configuration is %v", session)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	options.RegisterFlags(root.PersistentFlags())
	_ = root.RegisterFlagCompletionFunc("dialect", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return capability.DialectNames(), cobra.ShellCompDirectiveNoFileComp
	})
	root.AddCommand(
		newCapsCmd(),
		newFirstCmd(),
		newFollowCmd(),
		newTableCmd(),
		newShapeCmd(),
		newScanCmd(),
		newReplCmd(),
	)
	return root
}

func setTraceLevel(level string) {
	l := tracing.TraceLevelFromString(level)
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(l)
	}
}

// reportOptionErrors prints every rejected option. Rejected options do not
// stop the command.
func reportOptionErrors(err error) {
	if err == nil {
		return
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			pterm.Warning.Println(e.Error())
		}
		return
	}
	pterm.Warning.Println(err.Error())
}
