package lexmach

import (
	"errors"
	"fmt"

	"github.com/npillmayer/m2gram"
	"github.com/npillmayer/m2gram/scanner"
	"github.com/npillmayer/m2gram/symbol"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lx *Lexer) Scanner(input []byte) (*LMScanner, error) {
	s, err := lx.lexer.Scanner(input)
	if err != nil {
		return nil, err
	}
	return &LMScanner{scanner: s, Error: scanner.LogError, end: uint64(len(input))}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	Error   func(error)
	end     uint64
	errors  int
}

var _ scanner.Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = scanner.LogError
		return
	}
	lms.Error = h
}

// ErrorCount returns the number of errors reported so far.
func (lms *LMScanner) ErrorCount() int {
	return lms.errors
}

// NextToken is part of the Tokenizer interface. Illegal characters are
// reported to the error handler and skipped. After the end of input has been
// reached, NextToken returns EOF tokens.
func (lms *LMScanner) NextToken() m2gram.Token {
	tok, err, eof := lms.scanner.Next()
	for err != nil && !eof {
		lms.errors++
		var ui *machines.UnconsumedInput
		if errors.As(err, &ui) {
			lms.Error(fmt.Errorf("%w %q at %d:%d", ErrIllegalCharacter,
				lms.scanner.Text[ui.StartTC:ui.StartTC+1], ui.StartLine, ui.StartColumn))
			lms.scanner.TC = max(ui.FailTC, ui.StartTC+1)
		} else {
			lms.Error(err)
		}
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		return scanner.MakeDefaultToken(symbol.EOF, "", m2gram.Span{lms.end, lms.end})
	}
	token := tok.(*lexmachine.Token)
	lexeme, _ := token.Value.(string) // actions store the full lexeme as value
	t := scanner.MakeDefaultToken(
		symbol.Symbol(token.Type),
		lexeme,
		m2gram.Span{uint64(token.TC), uint64(token.TC + len(lexeme))},
	)
	t.Line, t.Column = token.StartLine, token.StartColumn
	tracer().Debugf("token %v", t)
	return t
}

// Tokens scans the complete input and returns all tokens up to, but not
// including, EOF.
func (lms *LMScanner) Tokens() []m2gram.Token {
	var toks []m2gram.Token
	for t := lms.NextToken(); t.Symbol() != symbol.EOF; t = lms.NextToken() {
		toks = append(toks, t)
	}
	return toks
}
