/*
Package ast defines the node kinds of Modula-2 syntax trees and the shapes
nodes of each kind may take.

Node kinds are a closed enumeration in three contiguous ranges:

    nonterminal   Empty … SetVal       fixed number of subnodes
    list          ImpList … TaskList   any number of subnodes
    terminal      Ident … QuotedVal    no subnodes, carries a value

For every non-terminal kind the shape table lists the kinds legal at each
subnode index; every element of a list kind has to be of one of the list's
element kinds. The shape table is a second grammar, one for trees: a parser
builds nodes only through NewBranch, NewList and NewTerminal, which refuse to
create a node violating its shape.

Optional parts of a construct are represented by a subnode of kind Empty.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ast

import (
	"fmt"

	"github.com/npillmayer/m2gram/internal/enum"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'm2gram.ast'.
func tracer() tracing.Trace {
	return tracing.Select("m2gram.ast")
}

// NodeKind tags what a syntax tree node represents.
type NodeKind int

const (
	// non-terminal kinds
	Empty NodeKind = iota
	DefMod
	ImpMod
	ProgMod
	Block
	Import
	UnqImp
	ConstDef
	TypeDef
	VarDecl
	ProcDecl
	ProcDef
	ModDecl
	Export
	QualExp
	Subrange
	EnumType
	SetType
	ArrayType
	RecordType
	FieldList
	VFieldList
	Variant
	PointerType
	ProcType
	FParams
	VarParams
	ConstParams
	OpenArray
	VarFormal
	ConstFormal
	Assign
	PCall
	Increment
	Decrement
	Return
	Exit
	IfStmt
	Elsif
	CaseStmt
	Case
	Range
	WhileStmt
	RepeatStmt
	LoopStmt
	ForStmt
	WithStmt
	ToDo
	Desig
	Field
	Index
	Deref
	Eq
	Neq
	Lt
	LtEq
	Gt
	GtEq
	In
	Plus
	Minus
	Or
	Asterisk
	Solidus
	Div
	Mod
	And
	SetDiff
	Neg
	Not
	FCall
	SetVal

	// list kinds
	ImpList
	DefList
	DeclList
	IdentList
	IndexList
	FieldListSeq
	VariantList
	ClabelList
	FParamList
	FTypeList
	StmtSeq
	ElsifSeq
	CaseList
	SelectorList
	ArgList
	ExprList
	ElemList
	TaskList

	// terminal kinds
	Ident
	Qualident
	IntVal
	RealVal
	ChrVal
	QuotedVal

	kindCount // sentinel
)

// KindCount is the number of node kinds.
const KindCount = int(kindCount)

var (
	allKinds     = enum.Range[NodeKind]{From: 0, To: kindCount}
	nonterminals = enum.Span(Empty, SetVal)
	lists        = enum.Span(ImpList, TaskList)
	terminals    = enum.Span(Ident, QuotedVal)
)

// IsValidKind is true for every defined node kind.
func IsValidKind(k NodeKind) bool {
	return allKinds.Contains(k)
}

// IsNonterminal is true for kinds with a fixed number of subnodes.
func IsNonterminal(k NodeKind) bool {
	return nonterminals.Contains(k)
}

// IsListKind is true for kinds with any number of subnodes of uniform kind.
func IsListKind(k NodeKind) bool {
	return lists.Contains(k)
}

// IsTerminal is true for kinds without subnodes, carrying a value.
func IsTerminal(k NodeKind) bool {
	return terminals.Contains(k)
}

var kindLabels = [...]string{
	Empty: "EMPTY", DefMod: "DEFMOD", ImpMod: "IMPMOD", ProgMod: "PROGMOD",
	Block: "BLOCK", Import: "IMPORT", UnqImp: "UNQIMP", ConstDef: "CONSTDEF",
	TypeDef: "TYPEDEF", VarDecl: "VARDECL", ProcDecl: "PROCDECL",
	ProcDef: "PROCDEF", ModDecl: "MODDECL", Export: "EXPORT", QualExp: "QUALEXP",
	Subrange: "SUBR", EnumType: "ENUM", SetType: "SET", ArrayType: "ARRAY",
	RecordType: "RECORD", FieldList: "FIELDLIST", VFieldList: "VFLIST",
	Variant: "VARIANT", PointerType: "POINTER", ProcType: "PROCTYPE",
	FParams: "FPARAMS", VarParams: "VARPARAMS", ConstParams: "CONSTPARAMS",
	OpenArray: "OPENARRAY", VarFormal: "VARFORMAL", ConstFormal: "CONSTFORMAL",
	Assign: "ASSIGN", PCall: "PCALL", Increment: "INCR", Decrement: "DECR",
	Return: "RETURN", Exit: "EXIT", IfStmt: "IF", Elsif: "ELSIF",
	CaseStmt: "SWITCH", Case: "CASE", Range: "RANGE", WhileStmt: "WHILE",
	RepeatStmt: "REPEAT", LoopStmt: "LOOP", ForStmt: "FOR", WithStmt: "WITH",
	ToDo: "TODO", Desig: "DESIG", Field: "FIELD", Index: "INDEX", Deref: "DEREF",
	Eq: "EQ", Neq: "NEQ", Lt: "LT", LtEq: "LTEQ", Gt: "GT", GtEq: "GTEQ",
	In: "IN", Plus: "PLUS", Minus: "MINUS", Or: "OR", Asterisk: "ASTERISK",
	Solidus: "SOLIDUS", Div: "DIV", Mod: "MOD", And: "AND", SetDiff: "SETDIFF",
	Neg: "NEG", Not: "NOT", FCall: "FCALL", SetVal: "SETVAL",
	ImpList: "IMPLIST", DefList: "DEFLIST", DeclList: "DECLLIST",
	IdentList: "IDENTLIST", IndexList: "INDEXLIST", FieldListSeq: "FIELDLISTSEQ",
	VariantList: "VARIANTLIST", ClabelList: "CLABELLIST",
	FParamList: "FPARAMLIST", FTypeList: "FTYPELIST", StmtSeq: "STMTSEQ",
	ElsifSeq: "ELSIFSEQ", CaseList: "CASELIST", SelectorList: "SELECTORLIST",
	ArgList: "ARGS", ExprList: "EXPRLIST", ElemList: "ELEMLIST",
	TaskList: "TASKLIST", Ident: "IDENT", Qualident: "QUALIDENT",
	IntVal: "INTVAL", RealVal: "REALVAL", ChrVal: "CHRVAL", QuotedVal: "QUOTEDVAL",
}

// String returns the label of k as used in tree dumps.
func (k NodeKind) String() string {
	if !IsValidKind(k) {
		return fmt.Sprintf("<invalid node kind %d>", int(k))
	}
	return kindLabels[k]
}

var kindIndex = enum.NewIndex(kindCount, NodeKind.String)

// ParseKind finds a node kind by its label, ignoring case.
func ParseKind(label string) (NodeKind, bool) {
	return kindIndex.Lookup(label)
}

// KindNames returns the labels of all node kinds in lexical order.
func KindNames() []string {
	return kindIndex.Names()
}
