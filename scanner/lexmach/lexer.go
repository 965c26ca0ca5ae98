package lexmach

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/npillmayer/m2gram/capability"
	"github.com/npillmayer/m2gram/symbol"
	"github.com/npillmayer/schuko/tracing"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'm2gram.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("m2gram.scanner")
}

// Errors reported to a scanner's error handler.
var (
	ErrUnterminatedComment = errors.New("comment not terminated")
	ErrUnterminatedPragma  = errors.New("pragma not terminated")
	ErrIllegalCharacter    = errors.New("illegal character")
)

// Capabilities is the view of a configuration a lexer needs.
// *capability.Configuration implements it.
type Capabilities interface {
	IsEnabled(capability.Capability) bool
}

// lexical lists the capabilities which influence scanning.
var lexical = capability.Of(
	capability.Synonyms,
	capability.LineComments,
	capability.PrefixLiterals,
	capability.SuffixLiterals,
	capability.OctalLiterals,
	capability.LowlineIdentifiers,
	capability.EscapeTabAndNewline,
	capability.BackslashSetDiffOp,
	capability.PostfixIncAndDec,
	capability.IntraCommentPragmas,
	capability.IsoPragmaDelimiters,
)

// Lexer is a compiled lexmachine DFA for one combination of lexical
// capabilities.
type Lexer struct {
	lexer *lexmachine.Lexer
	caps  capability.Set
}

var lexers sync.Map // capability.Set -> *Lexer

// ForConfiguration returns a lexer recognizing the tokens of the active
// capabilities of caps. Lexers are compiled on first request and cached.
//
// ForConfiguration will return an error if compiling the DFA failed.
func ForConfiguration(caps Capabilities) (*Lexer, error) {
	var active capability.Set
	for c := range lexical.Elements() {
		if caps != nil && caps.IsEnabled(c) {
			active = active.With(c)
		}
	}
	if lx, ok := lexers.Load(active); ok {
		return lx.(*Lexer), nil
	}
	lx, err := compile(active)
	if err != nil {
		return nil, err
	}
	actual, _ := lexers.LoadOrStore(active, lx)
	return actual.(*Lexer), nil
}

// Capabilities returns the lexical capabilities the lexer was built for.
func (lx *Lexer) Capabilities() capability.Set {
	return lx.caps
}

func compile(caps capability.Set) (*Lexer, error) {
	lexer := lexmachine.NewLexer()
	define(lexer, caps)
	if err := lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	tracer().Debugf("compiled lexer for %v", caps)
	return &Lexer{lexer: lexer, caps: caps}, nil
}

// define adds the patterns for caps to lexer. If two patterns match input of
// the same length, the one added first wins. Malformed literal patterns are
// therefore added after the well-formed ones.
func define(lexer *lexmachine.Lexer, caps capability.Set) {
	on := caps.Contains
	add := func(pattern string, sym symbol.Symbol) {
		lexer.Add([]byte(pattern), MakeToken(sym))
	}

	lexer.Add([]byte(`( |\t|\n|\r)+`), Skip)
	lexer.Add([]byte(`\(\*`), comment(on(capability.IntraCommentPragmas)))
	if on(capability.LineComments) {
		lexer.Add([]byte(`\![^\n]*`), Skip)
	}
	if on(capability.IsoPragmaDelimiters) {
		lexer.Add([]byte(`<\*`), isoPragma)
	}

	for s := symbol.AND; s <= symbol.WITH; s++ {
		add(s.Lexeme(), s)
	}
	if on(capability.LowlineIdentifiers) {
		add(`[a-zA-Z]([a-zA-Z0-9]|_|\$)*`, symbol.IDENT)
	} else {
		add(`[a-zA-Z][a-zA-Z0-9]*`, symbol.IDENT)
	}

	// number literals
	add(`[0-9]+`, symbol.INTEGER)
	add(`[0-9]+\.[0-9]+(E(\+|\-)?[0-9]+)?`, symbol.REAL)
	if on(capability.SuffixLiterals) {
		add(`[0-9][0-9A-F]*H`, symbol.INTEGER)
	}
	if on(capability.OctalLiterals) {
		add(`[0-7]+B`, symbol.INTEGER)
		add(`[0-7]+C`, symbol.CHAR)
	}
	if on(capability.PrefixLiterals) {
		add(`0x[0-9A-F]+`, symbol.INTEGER)
		add(`0b[01]+`, symbol.INTEGER)
		add(`0u[0-9A-F]+`, symbol.CHAR)
	}

	// quoted literals
	if on(capability.EscapeTabAndNewline) {
		add(`"([^"\\\n]|\\(n|t|\\))*"`, symbol.STRING)
		add(`'([^'\\\n]|\\(n|t|\\))*'`, symbol.STRING)
	} else {
		add(`"[^"\n]*"`, symbol.STRING)
		add(`'[^'\n]*'`, symbol.STRING)
	}

	// malformed literals; character codes before integers, as both match
	// the same input
	if on(capability.OctalLiterals) {
		add(`[0-9]([0-9a-zA-Z]|_)*C`, symbol.BAD_CHAR)
	}
	if on(capability.PrefixLiterals) {
		add(`0u([0-9a-zA-Z]|_)*`, symbol.BAD_CHAR)
	}
	add(`[0-9]([0-9a-zA-Z]|_)*`, symbol.BAD_INTEGER)
	add(`[0-9]+\.[0-9]+E(\+|\-)?`, symbol.BAD_REAL)
	add(`"[^"\n]*"?`, symbol.BAD_STRING)
	add(`'[^'\n]*'?`, symbol.BAD_STRING)

	for s := symbol.PLUS; s <= symbol.MINUSMINUS; s++ {
		switch s {
		case symbol.BACKSLASH:
			if !on(capability.BackslashSetDiffOp) {
				continue
			}
		case symbol.PLUSPLUS, symbol.MINUSMINUS:
			if !on(capability.PostfixIncAndDec) {
				continue
			}
		}
		add(literal(s.Lexeme()), s)
	}
	if on(capability.Synonyms) {
		add(literal("&"), symbol.AND)
		add(literal("~"), symbol.NOT)
		add(literal("<>"), symbol.NOTEQUAL)
	}
}

// literal escapes every character of lit for use in a lexmachine pattern.
func literal(lit string) string {
	return "\\" + strings.Join(strings.Split(lit, ""), "\\")
}

// --- Actions ---------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(sym symbol.Symbol) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(sym), string(m.Bytes), m), nil
	}
}

// comment skips a possibly nested comment. The opening delimiter has already
// been matched. With pragmas enabled, a comment starting with '$' is returned
// as a PRAGMA token.
func comment(pragmas bool) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		isPragma := pragmas && s.TC < len(s.Text) && s.Text[s.TC] == '$'
		depth := 1
		for tc := s.TC; tc+1 < len(s.Text); tc++ {
			switch {
			case s.Text[tc] == '(' && s.Text[tc+1] == '*':
				depth++
				tc++
			case s.Text[tc] == '*' && s.Text[tc+1] == ')':
				depth--
				tc++
				if depth == 0 {
					s.TC = tc + 1
					if isPragma {
						return s.Token(int(symbol.PRAGMA), string(s.Text[m.TC:s.TC]), m), nil
					}
					return nil, nil
				}
			}
		}
		s.TC = len(s.Text)
		return nil, fmt.Errorf("%w: starting at %d:%d", ErrUnterminatedComment, m.StartLine, m.StartColumn)
	}
}

// isoPragma scans a pragma delimited by <* and *>.
func isoPragma(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	for tc := s.TC; tc+1 < len(s.Text); tc++ {
		if s.Text[tc] == '*' && s.Text[tc+1] == '>' {
			s.TC = tc + 2
			return s.Token(int(symbol.PRAGMA), string(s.Text[m.TC:s.TC]), m), nil
		}
	}
	s.TC = len(s.Text)
	return nil, fmt.Errorf("%w: starting at %d:%d", ErrUnterminatedPragma, m.StartLine, m.StartColumn)
}
