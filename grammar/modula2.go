package grammar

import (
	"github.com/npillmayer/m2gram/symbol"
	"github.com/npillmayer/m2gram/tokenset"
)

// defineModula2 enters the FIRST and FOLLOW sets of all productions.
//
// The sets cover the union of all dialects. Syntax gated by a capability
// without an alternate slot (e.g. TO DO, '++') is accepted by the table and
// must be checked by the parser against the configuration.
func defineModula2(b *builder) {
	set, union := tokenset.New, tokenset.Union

	var (
		firstFactor = set(symbol.INTEGER, symbol.REAL, symbol.CHAR, symbol.STRING,
			symbol.IDENT, symbol.LBRACE, symbol.LPAREN, symbol.NOT)
		firstExpr = firstFactor.With(symbol.PLUS, symbol.MINUS)
		firstType = set(symbol.IDENT, symbol.LBRACKET, symbol.LPAREN, symbol.SET,
			symbol.ARRAY, symbol.RECORD, symbol.POINTER, symbol.PROCEDURE)
		firstDecl = set(symbol.CONST, symbol.TYPE, symbol.VAR, symbol.PROCEDURE,
			symbol.MODULE)
		firstStmt = set(symbol.IDENT, symbol.IF, symbol.CASE, symbol.WHILE,
			symbol.REPEAT, symbol.LOOP, symbol.FOR, symbol.WITH, symbol.EXIT,
			symbol.RETURN, symbol.TO)

		endOfModule     = set(symbol.EOF)
		followDecl      = firstDecl.With(symbol.BEGIN, symbol.END)
		followImport    = followDecl.With(symbol.FROM, symbol.IMPORT, symbol.EXPORT)
		followType      = set(symbol.SEMICOLON, symbol.END, symbol.BAR, symbol.ELSE)
		followCountable = followType.With(symbol.COMMA, symbol.OF)
		followQualident = union(followCountable, set(symbol.LBRACKET, symbol.RPAREN))
		followStmtSeq   = set(symbol.END, symbol.ELSE, symbol.ELSIF, symbol.UNTIL, symbol.BAR)
		followStmt      = followStmtSeq.With(symbol.SEMICOLON)
		followExpr      = union(followStmt, set(symbol.RANGE, symbol.RBRACKET,
			symbol.COMMA, symbol.COLON, symbol.THEN, symbol.DO, symbol.TO, symbol.BY,
			symbol.OF, symbol.RPAREN, symbol.RBRACE))
		followSimpleExpr = followExpr.With(symbol.EQUAL, symbol.NOTEQUAL,
			symbol.LESS, symbol.LESSEQ, symbol.GREATER, symbol.GREATEREQ, symbol.IN)
		followTerm   = followSimpleExpr.With(symbol.PLUS, symbol.MINUS, symbol.OR)
		followFactor = followTerm.With(symbol.ASTERISK, symbol.SOLIDUS, symbol.DIV,
			symbol.MOD, symbol.AND, symbol.BACKSLASH)
		followDesignator = followFactor.With(symbol.ASSIGN, symbol.LPAREN,
			symbol.PLUSPLUS, symbol.MINUSMINUS)
		followSelector = followDesignator.With(symbol.PERIOD, symbol.LBRACKET,
			symbol.DEREF)
		endOfCase = set(symbol.BAR, symbol.ELSE, symbol.END)
	)

	// compilation units
	b.rule(CompilationUnit, set(symbol.DEFINITION, symbol.IMPLEMENTATION, symbol.MODULE), endOfModule)
	b.rule(DefinitionModule, set(symbol.DEFINITION), endOfModule)
	b.rule(ImplementationModule, set(symbol.IMPLEMENTATION), endOfModule)
	b.rule(ProgramModule, set(symbol.MODULE), endOfModule)
	b.rule(Import, set(symbol.FROM, symbol.IMPORT), followImport)
	b.rule(QualifiedImport, set(symbol.IMPORT), followImport)
	b.rule(UnqualifiedImport, set(symbol.FROM), followImport)
	b.rule(IdentList, set(symbol.IDENT), set(symbol.SEMICOLON, symbol.COLON, symbol.RPAREN))
	b.rule(Definition, set(symbol.CONST, symbol.TYPE, symbol.VAR, symbol.PROCEDURE),
		set(symbol.CONST, symbol.TYPE, symbol.VAR, symbol.PROCEDURE, symbol.END))
	b.rule(ConstDefinition, set(symbol.IDENT), set(symbol.SEMICOLON))
	b.rule(TypeDefinition, set(symbol.IDENT), set(symbol.SEMICOLON))

	// types
	b.rule(Type, firstType, followType)
	b.rule(DerivedOrSubrangeType, set(symbol.IDENT, symbol.LBRACKET), followType)
	b.rule(Qualident, set(symbol.IDENT), followQualident)
	b.rule(Range, set(symbol.LBRACKET), followCountable)
	b.rule(EnumType, set(symbol.LPAREN), followCountable)
	b.rule(SetType, set(symbol.SET), followType)
	b.rule(CountableType, set(symbol.LBRACKET, symbol.LPAREN, symbol.IDENT), followCountable)
	b.rule(ArrayType, set(symbol.ARRAY), followType)
	b.rule(RecordType, set(symbol.RECORD), followType)
	b.rule(VariantFieldList, set(symbol.CASE), followType)
	b.rule(Variant, firstExpr, endOfCase)
	b.rule(CaseLabelList, firstExpr, set(symbol.COLON))
	b.rule(CaseLabels, firstExpr, set(symbol.COMMA, symbol.COLON))
	b.rule(PointerType, set(symbol.POINTER), followType)
	b.rule(ProcedureType, set(symbol.PROCEDURE), followType)
	b.rule(FormalType, set(symbol.ARRAY, symbol.IDENT),
		set(symbol.COMMA, symbol.SEMICOLON, symbol.RPAREN))

	// declarations
	b.rule(VariableDeclaration, set(symbol.IDENT), set(symbol.SEMICOLON))
	b.rule(ProcedureHeader, set(symbol.PROCEDURE), set(symbol.SEMICOLON))
	b.rule(FormalParams, set(symbol.LPAREN), set(symbol.COLON, symbol.SEMICOLON))
	b.rule(Block, followDecl, set(symbol.IDENT))
	b.rule(Declaration, firstDecl, followDecl)
	b.rule(ProcedureDeclaration, set(symbol.PROCEDURE), set(symbol.SEMICOLON))
	b.rule(LocalModule, set(symbol.MODULE), set(symbol.SEMICOLON))
	b.rule(Export, set(symbol.EXPORT), followDecl.With(symbol.FROM, symbol.IMPORT))
	b.rule(Priority, set(symbol.LBRACKET), set(symbol.SEMICOLON))

	// statements
	b.rule(StatementSequence, firstStmt, followStmtSeq)
	b.rule(Statement, firstStmt, followStmt)
	b.rule(AssignmentOrProcCall, set(symbol.IDENT), followStmt)
	b.rule(ActualParams, set(symbol.LPAREN), followFactor)
	b.rule(IfStatement, set(symbol.IF), followStmt)
	b.rule(CaseStatement, set(symbol.CASE), followStmt)
	b.rule(Case, firstExpr, endOfCase)
	b.rule(WhileStatement, set(symbol.WHILE), followStmt)
	b.rule(RepeatStatement, set(symbol.REPEAT), followStmt)
	b.rule(LoopStatement, set(symbol.LOOP), followStmt)
	b.rule(ForStatement, set(symbol.FOR), followStmt)
	b.rule(WithStatement, set(symbol.WITH), followStmt)
	b.rule(ExitStatement, set(symbol.EXIT), followStmt)
	b.rule(ReturnStatement, set(symbol.RETURN), followStmt)
	b.rule(ToDoStatement, set(symbol.TO), followStmt)

	// expressions
	b.rule(ConstExpression, firstExpr, set(symbol.SEMICOLON, symbol.RANGE,
		symbol.RBRACKET, symbol.COMMA, symbol.COLON, symbol.RPAREN))
	b.rule(Expression, firstExpr, followExpr)
	b.rule(SimpleExpression, firstExpr, followSimpleExpr)
	b.rule(Term, firstFactor, followTerm)
	b.rule(Factor, firstFactor, followFactor)
	b.rule(Designator, set(symbol.IDENT), followDesignator)
	b.rule(Selector, set(symbol.PERIOD, symbol.LBRACKET, symbol.DEREF), followSelector)
	b.rule(ExpressionList, firstExpr, set(symbol.RPAREN, symbol.RBRACKET))
	b.rule(SetValue, set(symbol.LBRACE), followFactor)

	// formal parameters: the alternate sets admit CONST parameters
	var (
		firstFormal      = set(symbol.VAR, symbol.ARRAY, symbol.IDENT)
		firstConstFormal = firstFormal.With(symbol.CONST)
	)
	b.alternates(FormalTypeList,
		firstFormal, set(symbol.RPAREN),
		firstConstFormal, set(symbol.RPAREN))
	b.alternates(AttributedFormalType,
		firstFormal, set(symbol.COMMA, symbol.RPAREN),
		firstConstFormal, set(symbol.COMMA, symbol.RPAREN))
	b.alternates(FormalParamSection,
		set(symbol.VAR, symbol.IDENT), set(symbol.SEMICOLON, symbol.RPAREN),
		set(symbol.VAR, symbol.CONST, symbol.IDENT), set(symbol.SEMICOLON, symbol.RPAREN))

	// record fields: primary FIRST is without variant records, primary FOLLOW
	// is with variant records
	var (
		firstFields        = set(symbol.IDENT)
		firstVariantFields = firstFields.With(symbol.CASE)
	)
	b.alternates(FieldListSequence,
		firstFields, set(symbol.END, symbol.BAR, symbol.ELSE),
		firstVariantFields, set(symbol.END))
	b.alternates(FieldList,
		firstFields, set(symbol.SEMICOLON, symbol.END, symbol.BAR, symbol.ELSE),
		firstVariantFields, set(symbol.SEMICOLON, symbol.END))
}
