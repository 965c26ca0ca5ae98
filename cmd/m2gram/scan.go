package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/npillmayer/m2gram/capability"
	"github.com/npillmayer/m2gram/scanner"
	"github.com/npillmayer/m2gram/scanner/lexmach"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newScanCmd() *cobra.Command {
	var text string
	cmd := &cobra.Command{
		Use:   "scan [file]",
		Short: "Show the tokens of a source file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			var input []byte
			switch {
			case text != "" && len(args) > 0:
				return errors.New("give either a file or --expr, not both")
			case text != "":
				input = []byte(text)
			case len(args) == 1:
				var err error
				if input, err = os.ReadFile(args[0]); err != nil {
					return err
				}
			default:
				return errors.New("nothing to scan")
			}
			return showTokens(input, session)
		},
	}
	cmd.Flags().StringVarP(&text, "expr", "e", "", "scan this text instead of a file")
	return cmd
}

func showTokens(input []byte, cfg *capability.Configuration) error {
	lx, err := lexmach.ForConfiguration(cfg)
	if err != nil {
		return err
	}
	sc, err := lx.Scanner(input)
	if err != nil {
		return err
	}
	sc.SetErrorHandler(func(e error) {
		pterm.Error.Println(e.Error())
	})
	data := pterm.TableData{{"position", "symbol", "lexeme", "span"}}
	for _, t := range sc.Tokens() {
		pos := ""
		if dt, ok := t.(scanner.DefaultToken); ok {
			pos = fmt.Sprintf("%d:%d", dt.Line, dt.Column)
		}
		span := t.Span()
		data = append(data, []string{
			pos, t.Symbol().String(), t.Lexeme(),
			fmt.Sprintf("%d…%d", span[0], span[1]),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	if n := sc.ErrorCount(); n > 0 {
		return fmt.Errorf("%d scanner error(s)", n)
	}
	return nil
}
