package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/m2gram/ast"
	"github.com/npillmayer/m2gram/capability"
	"github.com/npillmayer/m2gram/grammar"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newCapsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "caps",
		Short: "List the capabilities of the selected configuration",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return showCapabilities(session)
		},
	}
}

func showCapabilities(cfg *capability.Configuration) error {
	mark := func(b bool) string {
		if b {
			return "✓"
		}
		return ""
	}
	data := pterm.TableData{{"capability", "option", "active", "default", "mutable", "set"}}
	for c := capability.Capability(0); c < capability.Capability(capability.Count); c++ {
		d := cfg.Dialect()
		data = append(data, []string{
			c.String(), c.OptionName(),
			mark(cfg.IsEnabled(c)),
			mark(capability.IsDefault(d, c)),
			mark(capability.IsMutable(d, c)),
			mark(cfg.Assigned().Contains(c)),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	pterm.Info.Println(fmt.Sprintf("dialect %s, digest %s", cfg.Dialect(), cfg.Digest()))
	return nil
}

func completeProductions(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return grammar.ProductionNames(), cobra.ShellCompDirectiveNoFileComp
}

func newFirstCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "first <production>",
		Short:             "Show the FIRST set of a production",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeProductions,
		RunE: func(_ *cobra.Command, args []string) error {
			return showSet("FIRST", args[0], session)
		},
	}
}

func newFollowCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "follow <production>",
		Short:             "Show the FOLLOW set of a production",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeProductions,
		RunE: func(_ *cobra.Command, args []string) error {
			return showSet("FOLLOW", args[0], session)
		},
	}
}

func showSet(which, name string, cfg *capability.Configuration) error {
	p, ok := grammar.ParseProduction(name)
	if !ok {
		return fmt.Errorf("unknown production %q", name)
	}
	tab := grammar.Modula2()
	var (
		set  fmt.Stringer
		slot grammar.Slot
	)
	if which == "FIRST" {
		set, slot = tab.First(p, cfg), grammar.FirstSlot(p, cfg)
	} else {
		set, slot = tab.Follow(p, cfg), grammar.FollowSlot(p, cfg)
	}
	label := fmt.Sprintf("%s(%s)", which, p)
	if grammar.IsOptionDependent(p) {
		label += " [" + slot.String() + "]"
	}
	pterm.Info.Println(label + " = " + set.String())
	return nil
}

func newTableCmd() *cobra.Command {
	var htmlFile string
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Show FIRST and FOLLOW sets of all productions",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			tab := grammar.Modula2()
			if htmlFile != "" {
				f, err := os.Create(htmlFile)
				if err != nil {
					return err
				}
				defer f.Close()
				return grammar.TableAsHTML(tab, session, f)
			}
			data := pterm.TableData{{"production", "FIRST", "FOLLOW"}}
			for _, name := range grammar.ProductionNames() {
				p, _ := grammar.ParseProduction(name)
				data = append(data, []string{name, tab.First(p, session).String(), tab.Follow(p, session).String()})
			}
			pterm.DefaultTable.WithHasHeader().WithData(data).Render()
			return nil
		},
	}
	cmd.Flags().StringVar(&htmlFile, "html", "", "write the table to an HTML file")
	return cmd
}

func newShapeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shape <node kind>",
		Short: "Show the legal subnodes of a node kind",
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return ast.KindNames(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(_ *cobra.Command, args []string) error {
			return showShape(args[0])
		},
	}
}

func showShape(label string) error {
	k, ok := ast.ParseKind(label)
	if !ok {
		return fmt.Errorf("unknown node kind %q", label)
	}
	ll := pterm.LeveledList{{Level: 0, Text: k.String()}}
	switch {
	case ast.IsTerminal(k):
		ll = append(ll, pterm.LeveledListItem{Level: 1, Text: "terminal, carries a value"})
	case ast.IsListKind(k):
		ll = append(ll, pterm.LeveledListItem{Level: 1, Text: "elements: " + kindList(ast.LegalChildren(k, 0))})
	default:
		n, _ := ast.Arity(k)
		if n == 0 {
			ll = append(ll, pterm.LeveledListItem{Level: 1, Text: "no subnodes"})
		}
		for i := 0; i < n; i++ {
			ll = append(ll, pterm.LeveledListItem{
				Level: 1,
				Text:  strconv.Itoa(i) + ": " + kindList(ast.LegalChildren(k, i)),
			})
		}
	}
	pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(ll)).Render()
	return nil
}

func kindList(kinds []ast.NodeKind) string {
	labels := make([]string, len(kinds))
	for i, k := range kinds {
		labels[i] = k.String()
	}
	return strings.Join(labels, " | ")
}
