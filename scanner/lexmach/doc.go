/*
Package lexmach provides a Modula-2 scanner built with the lexmachine scanner
generator.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

The set of regular expressions handed to lexmachine is derived from a
capability configuration: prefix or suffix number literals, octal literals,
line comments, pragma delimiters, lowlines in identifiers, synonyms and the
extended operators are only recognized if the respective capability is
enabled. Literals not conforming to the active literal styles are reported as
malformed literal symbols, leaving the diagnostic to the parser.

	cfg := capability.ForDialect(capability.PIM4)
	lexer, err := lexmach.ForConfiguration(cfg)
	if err != nil {
		// do error handling
	}

Compiled lexers are cached per distinct set of active capabilities and may be
shared by concurrent scanners. A scanner is instantiated for each concrete
input and implements the scanner.Tokenizer interface.

	scan, err := lexer.Scanner([]byte("MODULE Hello; END Hello."))
	for tok := scan.NextToken(); tok.Symbol() != symbol.EOF; tok = scan.NextToken() {
		…
	}

Comments of the form (* … *) may be nested. If intra-comment pragmas are
enabled, a comment starting with (*$ is delivered as a PRAGMA token.

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach
