/*
Package symbol defines the terminal alphabet of the Modula-2 grammar.

Symbols are a closed enumeration, contiguous from 0, so a symbol may be used
directly as a bit position in a token set. The alphabet is ordered in
sub-ranges:

    reserved words     AND … WITH
    identifier         IDENT
    literals           INTEGER … STRING
    malformed literals BAD_INTEGER … BAD_STRING
    pragma             PRAGMA
    punctuation        PLUS … MINUSMINUS
    end of input       EOF

The alphabet is the union of all three dialects. Which of the symbols a
scanner will actually produce depends on the active capabilities.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package symbol

import (
	"fmt"

	"github.com/npillmayer/m2gram/internal/enum"
)

// Symbol is a terminal symbol class, as produced by a scanner.
type Symbol int

//nolint:revive,stylecheck // all-caps names mirror the reserved words
const (
	// reserved words
	AND Symbol = iota
	ARRAY
	BEGIN
	BY
	CASE
	CONST
	DEFINITION
	DIV
	DO
	ELSE
	ELSIF
	END
	EXIT
	EXPORT
	FOR
	FROM
	IF
	IMPLEMENTATION
	IMPORT
	IN
	LOOP
	MOD
	MODULE
	NOT
	OF
	OR
	POINTER
	PROCEDURE
	QUALIFIED
	RECORD
	REPEAT
	RETURN
	SET
	THEN
	TO
	TYPE
	UNTIL
	VAR
	WHILE
	WITH

	IDENT // identifier

	// literals
	INTEGER
	REAL
	CHAR
	STRING

	// malformed literals
	BAD_INTEGER
	BAD_REAL
	BAD_CHAR
	BAD_STRING

	PRAGMA

	// punctuation
	PLUS       // +
	MINUS      // -
	EQUAL      // =
	NOTEQUAL   // # or <>
	LESS       // <
	LESSEQ     // <=
	GREATER    // >
	GREATEREQ  // >=
	ASTERISK   // *
	SOLIDUS    // /
	BACKSLASH  // \
	ASSIGN     // :=
	COMMA      // ,
	PERIOD     // .
	SEMICOLON  // ;
	COLON      // :
	RANGE      // ..
	DEREF      // ^
	BAR        // |
	LPAREN     // (
	RPAREN     // )
	LBRACKET   // [
	RBRACKET   // ]
	LBRACE     // {
	RBRACE     // }
	PLUSPLUS   // ++
	MINUSMINUS // --

	EOF

	symbolCount // sentinel
)

// Count is the size of the terminal alphabet.
const Count = int(symbolCount)

// Sub-ranges of the alphabet.
var (
	reservedWords = enum.Span(AND, WITH)
	literals      = enum.Span(INTEGER, STRING)
	malformed     = enum.Span(BAD_INTEGER, BAD_STRING)
	punctuation   = enum.Span(PLUS, MINUSMINUS)
	all           = enum.Range[Symbol]{From: 0, To: symbolCount}
)

// IsValid is true for every symbol of the alphabet.
func (s Symbol) IsValid() bool {
	return all.Contains(s)
}

// IsReservedWord is true for reserved words.
func (s Symbol) IsReservedWord() bool {
	return reservedWords.Contains(s)
}

// IsLiteral is true for well-formed literal symbols.
func (s Symbol) IsLiteral() bool {
	return literals.Contains(s)
}

// IsMalformedLiteral is true for literal symbols flagged by the scanner as malformed.
func (s Symbol) IsMalformedLiteral() bool {
	return malformed.Contains(s)
}

// IsPunctuation is true for operators and delimiters.
func (s Symbol) IsPunctuation() bool {
	return punctuation.Contains(s)
}

var punctLexemes = [...]string{
	PLUS - PLUS:       "+",
	MINUS - PLUS:      "-",
	EQUAL - PLUS:      "=",
	NOTEQUAL - PLUS:   "#",
	LESS - PLUS:       "<",
	LESSEQ - PLUS:     "<=",
	GREATER - PLUS:    ">",
	GREATEREQ - PLUS:  ">=",
	ASTERISK - PLUS:   "*",
	SOLIDUS - PLUS:    "/",
	BACKSLASH - PLUS:  "\\",
	ASSIGN - PLUS:     ":=",
	COMMA - PLUS:      ",",
	PERIOD - PLUS:     ".",
	SEMICOLON - PLUS:  ";",
	COLON - PLUS:      ":",
	RANGE - PLUS:      "..",
	DEREF - PLUS:      "^",
	BAR - PLUS:        "|",
	LPAREN - PLUS:     "(",
	RPAREN - PLUS:     ")",
	LBRACKET - PLUS:   "[",
	RBRACKET - PLUS:   "]",
	LBRACE - PLUS:     "{",
	RBRACE - PLUS:     "}",
	PLUSPLUS - PLUS:   "++",
	MINUSMINUS - PLUS: "--",
}

var reservedWordLexemes = [...]string{
	"AND", "ARRAY", "BEGIN", "BY", "CASE", "CONST", "DEFINITION", "DIV", "DO",
	"ELSE", "ELSIF", "END", "EXIT", "EXPORT", "FOR", "FROM", "IF",
	"IMPLEMENTATION", "IMPORT", "IN", "LOOP", "MOD", "MODULE", "NOT", "OF", "OR",
	"POINTER", "PROCEDURE", "QUALIFIED", "RECORD", "REPEAT", "RETURN", "SET",
	"THEN", "TO", "TYPE", "UNTIL", "VAR", "WHILE", "WITH",
}

var otherLabels = map[Symbol]string{
	IDENT:       "identifier",
	INTEGER:     "integer literal",
	REAL:        "real literal",
	CHAR:        "character code literal",
	STRING:      "string literal",
	BAD_INTEGER: "malformed integer literal",
	BAD_REAL:    "malformed real literal",
	BAD_CHAR:    "malformed character code literal",
	BAD_STRING:  "malformed string literal",
	PRAGMA:      "pragma",
	EOF:         "end of file",
}

// Lexeme returns the canonical spelling of reserved words and punctuation.
// For all other symbols it returns the empty string.
func (s Symbol) Lexeme() string {
	switch {
	case s.IsReservedWord():
		return reservedWordLexemes[s]
	case s.IsPunctuation():
		return punctLexemes[s-PLUS]
	}
	return ""
}

// String returns a human-readable label for diagnostics.
func (s Symbol) String() string {
	switch {
	case s.IsReservedWord():
		return reservedWordLexemes[s]
	case s.IsPunctuation():
		return "'" + punctLexemes[s-PLUS] + "'"
	case s.IsValid():
		return otherLabels[s]
	}
	return fmt.Sprintf("<invalid symbol %d>", int(s))
}

// GoName returns the name of the constant for s, as used in Go source.
func (s Symbol) GoName() string {
	if s.IsReservedWord() {
		return reservedWordLexemes[s]
	}
	return goNames[s]
}

var goNames = map[Symbol]string{
	IDENT: "IDENT", INTEGER: "INTEGER", REAL: "REAL", CHAR: "CHAR", STRING: "STRING",
	BAD_INTEGER: "BAD_INTEGER", BAD_REAL: "BAD_REAL", BAD_CHAR: "BAD_CHAR",
	BAD_STRING: "BAD_STRING", PRAGMA: "PRAGMA", PLUS: "PLUS", MINUS: "MINUS",
	EQUAL: "EQUAL", NOTEQUAL: "NOTEQUAL", LESS: "LESS", LESSEQ: "LESSEQ",
	GREATER: "GREATER", GREATEREQ: "GREATEREQ", ASTERISK: "ASTERISK",
	SOLIDUS: "SOLIDUS", BACKSLASH: "BACKSLASH", ASSIGN: "ASSIGN", COMMA: "COMMA",
	PERIOD: "PERIOD", SEMICOLON: "SEMICOLON", COLON: "COLON", RANGE: "RANGE",
	DEREF: "DEREF", BAR: "BAR", LPAREN: "LPAREN", RPAREN: "RPAREN",
	LBRACKET: "LBRACKET", RBRACKET: "RBRACKET", LBRACE: "LBRACE", RBRACE: "RBRACE",
	PLUSPLUS: "PLUSPLUS", MINUSMINUS: "MINUSMINUS", EOF: "EOF",
}

// --- Lookup ----------------------------------------------------------------

var names = func() *enum.Index[Symbol] {
	ix := enum.NewIndex(symbolCount, Symbol.GoName)
	for s := PLUS; s <= MINUSMINUS; s++ {
		ix.Add(s.Lexeme(), s)
	}
	ix.Add("<>", NOTEQUAL)
	return ix
}()

// Lookup finds a symbol by its Go name ("IDENT", "SEMICOLON") or, for
// punctuation, by its lexeme (";"). Lookup is case-insensitive.
func Lookup(name string) (Symbol, bool) {
	return names.Lookup(name)
}

// Names returns all names accepted by Lookup, in lexical order.
func Names() []string {
	return names.Names()
}

var keywords = func() map[string]Symbol {
	m := make(map[string]Symbol, reservedWords.Len())
	for s := reservedWords.From; s < reservedWords.To; s++ {
		m[reservedWordLexemes[s]] = s
	}
	return m
}()

// ReservedWord returns the reserved word spelled as ident, if any. Reserved
// words are case-sensitive in Modula-2.
func ReservedWord(ident string) (Symbol, bool) {
	s, ok := keywords[ident]
	return s, ok
}
