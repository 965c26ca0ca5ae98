package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/m2gram/ast"
	"github.com/npillmayer/m2gram/capability"
	"github.com/npillmayer/m2gram/grammar"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Inspect tables interactively",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return repl(session)
		},
	}
}

var replHelp = `Commands:
  first <production>       FIRST set
  follow <production>      FOLLOW set
  shape <node kind>        legal subnodes
  set <capability> on|off  change a capability
  caps                     list capabilities
  scan <text>              show tokens
  quit`

func listNames(names func() []string) func(string) []string {
	return func(string) []string {
		return names()
	}
}

func optionNames() []string {
	names := make([]string, 0, capability.Count)
	for c := capability.Capability(0); c < capability.Capability(capability.Count); c++ {
		names = append(names, c.OptionName())
	}
	return names
}

var completer = readline.NewPrefixCompleter(
	readline.PcItem("first", readline.PcItemDynamic(listNames(grammar.ProductionNames))),
	readline.PcItem("follow", readline.PcItemDynamic(listNames(grammar.ProductionNames))),
	readline.PcItem("shape", readline.PcItemDynamic(listNames(ast.KindNames))),
	readline.PcItem("set", readline.PcItemDynamic(listNames(optionNames),
		readline.PcItem("on"), readline.PcItem("off"))),
	readline.PcItem("caps"),
	readline.PcItem("scan"),
	readline.PcItem("help"),
	readline.PcItem("quit"),
)

// repl works on a copy of cfg; `set` does not change the session.
func repl(cfg *capability.Configuration) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "m2gram> ",
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()
	cfg = cfg.Clone()
	pterm.Info.Println("Welcome to m2gram, dialect " + cfg.Dialect().String())
	pterm.Info.Println("Quit with <ctrl>D")
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if line == "" {
				break
			}
			continue
		} else if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "quit" {
			break
		}
		if err := execute(line, cfg); err != nil {
			pterm.Error.Println(err.Error())
		}
	}
	pterm.Info.Println("Good bye!")
	return nil
}

func execute(line string, cfg *capability.Configuration) error {
	cmd, rest, _ := strings.Cut(line, " ")
	args := strings.Fields(rest)
	tracer().Debugf("command %q %v", cmd, args)
	need := func(n int) error {
		if len(args) != n {
			return fmt.Errorf("%s needs %d argument(s)", cmd, n)
		}
		return nil
	}
	switch cmd {
	case "first", "follow":
		if err := need(1); err != nil {
			return err
		}
		return showSet(strings.ToUpper(cmd), args[0], cfg)
	case "shape":
		if err := need(1); err != nil {
			return err
		}
		return showShape(args[0])
	case "set":
		if err := need(2); err != nil {
			return err
		}
		c, ok := capability.Parse(args[0])
		if !ok {
			return fmt.Errorf("unknown capability %q", args[0])
		}
		switch args[1] {
		case "on", "true":
			return cfg.Set(c, true)
		case "off", "false":
			return cfg.Set(c, false)
		}
		return fmt.Errorf("set %s: expected on or off, got %q", args[0], args[1])
	case "caps":
		return showCapabilities(cfg)
	case "scan":
		return showTokens([]byte(rest), cfg)
	case "help":
		pterm.Println(replHelp)
		return nil
	}
	return fmt.Errorf("unknown command %q, try help", cmd)
}
