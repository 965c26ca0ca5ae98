package grammar

import (
	"fmt"

	"github.com/npillmayer/m2gram/internal/enum"
)

// Production identifies a non-terminal of the Modula-2 grammar.
//
// The option dependent productions are located at the end of the enumeration,
// in two contiguous ranges: first those depending on const parameters, then
// those depending on variant records.
type Production int

const (
	CompilationUnit Production = iota
	DefinitionModule
	ImplementationModule
	ProgramModule
	Import
	QualifiedImport
	UnqualifiedImport
	IdentList
	Definition
	ConstDefinition
	TypeDefinition
	Type
	DerivedOrSubrangeType
	Qualident
	Range
	EnumType
	SetType
	CountableType
	ArrayType
	RecordType
	VariantFieldList
	Variant
	CaseLabelList
	CaseLabels
	PointerType
	ProcedureType
	FormalType
	VariableDeclaration
	ProcedureHeader
	FormalParams
	Block
	Declaration
	ProcedureDeclaration
	LocalModule
	Export
	Priority
	StatementSequence
	Statement
	AssignmentOrProcCall
	ActualParams
	IfStatement
	CaseStatement
	Case
	WhileStatement
	RepeatStatement
	LoopStatement
	ForStatement
	WithStatement
	ExitStatement
	ReturnStatement
	ToDoStatement
	ConstExpression
	Expression
	SimpleExpression
	Term
	Factor
	Designator
	Selector
	ExpressionList
	SetValue

	// const parameter dependent
	FormalTypeList
	AttributedFormalType
	FormalParamSection

	// variant record dependent
	FieldListSequence
	FieldList

	productionCount // sentinel
)

// ProductionCount is the number of productions.
const ProductionCount = int(productionCount)

var (
	allProductions         = enum.Range[Production]{From: 0, To: productionCount}
	constParamDependent    = enum.Span(FormalTypeList, FormalParamSection)
	variantRecordDependent = enum.Span(FieldListSequence, FieldList)
	optionDependent        = enum.Span(constParamDependent.From, variantRecordDependent.To-1)
)

// AlternateOffset is the distance between the primary and the alternate table
// slot of an option dependent production.
const AlternateOffset = int(FieldList-FormalTypeList) + 1

// IsValid is true for every production of the grammar.
func (p Production) IsValid() bool {
	return allProductions.Contains(p)
}

// IsOptionDependent is true if p has alternate FIRST and FOLLOW sets.
func IsOptionDependent(p Production) bool {
	return optionDependent.Contains(p)
}

// IsConstParamDependent is true if p's sets depend on const parameters.
func IsConstParamDependent(p Production) bool {
	return constParamDependent.Contains(p)
}

// IsVariantRecordDependent is true if p's sets depend on variant records.
func IsVariantRecordDependent(p Production) bool {
	return variantRecordDependent.Contains(p)
}

var productionNames = [...]string{
	CompilationUnit:       "compilationUnit",
	DefinitionModule:      "definitionModule",
	ImplementationModule:  "implementationModule",
	ProgramModule:         "programModule",
	Import:                "import",
	QualifiedImport:       "qualifiedImport",
	UnqualifiedImport:     "unqualifiedImport",
	IdentList:             "identList",
	Definition:            "definition",
	ConstDefinition:       "constDefinition",
	TypeDefinition:        "typeDefinition",
	Type:                  "type",
	DerivedOrSubrangeType: "derivedOrSubrangeType",
	Qualident:             "qualident",
	Range:                 "range",
	EnumType:              "enumType",
	SetType:               "setType",
	CountableType:         "countableType",
	ArrayType:             "arrayType",
	RecordType:            "recordType",
	VariantFieldList:      "variantFieldList",
	Variant:               "variant",
	CaseLabelList:         "caseLabelList",
	CaseLabels:            "caseLabels",
	PointerType:           "pointerType",
	ProcedureType:         "procedureType",
	FormalType:            "formalType",
	VariableDeclaration:   "variableDeclaration",
	ProcedureHeader:       "procedureHeader",
	FormalParams:          "formalParams",
	Block:                 "block",
	Declaration:           "declaration",
	ProcedureDeclaration:  "procedureDeclaration",
	LocalModule:           "localModule",
	Export:                "export",
	Priority:              "priority",
	StatementSequence:     "statementSequence",
	Statement:             "statement",
	AssignmentOrProcCall:  "assignmentOrProcCall",
	ActualParams:          "actualParams",
	IfStatement:           "ifStatement",
	CaseStatement:         "caseStatement",
	Case:                  "case",
	WhileStatement:        "whileStatement",
	RepeatStatement:       "repeatStatement",
	LoopStatement:         "loopStatement",
	ForStatement:          "forStatement",
	WithStatement:         "withStatement",
	ExitStatement:         "exitStatement",
	ReturnStatement:       "returnStatement",
	ToDoStatement:         "toDoStatement",
	ConstExpression:       "constExpression",
	Expression:            "expression",
	SimpleExpression:      "simpleExpression",
	Term:                  "term",
	Factor:                "factor",
	Designator:            "designator",
	Selector:              "selector",
	ExpressionList:        "expressionList",
	SetValue:              "setValue",
	FormalTypeList:        "formalTypeList",
	AttributedFormalType:  "attributedFormalType",
	FormalParamSection:    "formalParamSection",
	FieldListSequence:     "fieldListSequence",
	FieldList:             "fieldList",
}

// String returns the name of p as written in the grammar.
func (p Production) String() string {
	if !p.IsValid() {
		return fmt.Sprintf("<invalid production %d>", int(p))
	}
	return productionNames[p]
}

var productionIndex = enum.NewIndex(productionCount, Production.String)

// ParseProduction finds a production by name, ignoring case.
func ParseProduction(name string) (Production, bool) {
	return productionIndex.Lookup(name)
}

// ProductionNames returns the names of all productions in lexical order.
func ProductionNames() []string {
	return productionIndex.Names()
}
