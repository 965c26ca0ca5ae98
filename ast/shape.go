package ast

import (
	"fmt"
	"sync"

	"github.com/bits-and-blooms/bitset"
)

// kindSet is a read-only set of node kinds.
type kindSet struct {
	bits *bitset.BitSet
}

func kinds(ks ...NodeKind) kindSet {
	b := bitset.New(uint(kindCount))
	for _, k := range ks {
		if !IsValidKind(k) {
			panic(fmt.Sprintf("ast: node kind %d out of range", int(k)))
		}
		b.Set(uint(k))
	}
	return kindSet{bits: b}
}

func (s kindSet) union(others ...kindSet) kindSet {
	b := s.bits.Clone()
	for _, o := range others {
		b.InPlaceUnion(o.bits)
	}
	return kindSet{bits: b}
}

// optional returns s plus Empty.
func (s kindSet) optional() kindSet {
	return s.union(kinds(Empty))
}

func (s kindSet) contains(k NodeKind) bool {
	return s.bits != nil && IsValidKind(k) && s.bits.Test(uint(k))
}

func (s kindSet) slice() []NodeKind {
	if s.bits == nil {
		return nil
	}
	ks := make([]NodeKind, 0, s.bits.Count())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		ks = append(ks, NodeKind(i))
	}
	return ks
}

// shape describes the legal subnodes of one node kind. For non-terminals,
// children holds one kind set per subnode index. For lists, elements holds the
// kinds of all elements.
type shape struct {
	children []kindSet
	elements kindSet
}

var (
	shapes     [kindCount]shape
	shapesOnce sync.Once
)

func shapeOf(k NodeKind) *shape {
	shapesOnce.Do(defineShapes)
	return &shapes[k]
}

// defineShapes enters the shapes of all node kinds.
func defineShapes() {
	var (
		literals   = kinds(IntVal, RealVal, ChrVal, QuotedVal)
		binaryOps  = kinds(Eq, Neq, Lt, LtEq, Gt, GtEq, In, Plus, Minus, Or, Asterisk, Solidus, Div, Mod, And, SetDiff)
		expression = binaryOps.union(literals, kinds(Neg, Not, FCall, SetVal, Desig))
		typeIdent  = kinds(Ident, Qualident)
		countable  = typeIdent.union(kinds(Subrange, EnumType))
		types      = countable.union(kinds(SetType, ArrayType, RecordType, PointerType, ProcType))
		formalType = typeIdent.union(kinds(OpenArray))
		statement  = kinds(Assign, PCall, Increment, Decrement, Return, Exit, IfStmt,
			CaseStmt, WhileStmt, RepeatStmt, LoopStmt, ForStmt, WithStmt, ToDo)
		stmtSeq      = kinds(StmtSeq)
		fieldListSeq = kinds(FieldListSeq)
	)
	branch := func(k NodeKind, children ...kindSet) {
		if !IsNonterminal(k) {
			panic(fmt.Sprintf("ast: %s is not a non-terminal kind", k))
		}
		shapes[k].children = children
	}
	list := func(k NodeKind, elements kindSet) {
		if !IsListKind(k) {
			panic(fmt.Sprintf("ast: %s is not a list kind", k))
		}
		shapes[k].elements = elements
	}

	branch(Empty)
	// modules
	branch(DefMod, kinds(Ident), kinds(ImpList), kinds(DefList))
	branch(ImpMod, kinds(Ident), expression.optional(), kinds(ImpList), kinds(Block))
	branch(ProgMod, kinds(Ident), expression.optional(), kinds(ImpList), kinds(Block))
	branch(Block, kinds(DeclList), stmtSeq.optional())
	branch(Import, kinds(IdentList))
	branch(UnqImp, kinds(Ident), kinds(IdentList))
	// declarations
	branch(ConstDef, kinds(Ident), expression)
	branch(TypeDef, kinds(Ident), types.optional())
	branch(VarDecl, kinds(IdentList), types)
	branch(ProcDecl, kinds(ProcDef), kinds(Block))
	branch(ProcDef, kinds(Ident), kinds(FParamList), typeIdent.optional())
	branch(ModDecl, kinds(Ident), expression.optional(), kinds(ImpList),
		kinds(Export, QualExp).optional(), kinds(Block))
	branch(Export, kinds(IdentList))
	branch(QualExp, kinds(IdentList))
	// types
	branch(Subrange, typeIdent.optional(), expression, expression)
	branch(EnumType, kinds(IdentList))
	branch(SetType, countable)
	branch(ArrayType, kinds(IndexList), types)
	branch(RecordType, typeIdent.optional(), fieldListSeq)
	branch(FieldList, kinds(IdentList), types)
	branch(VFieldList, kinds(Ident).optional(), typeIdent, kinds(VariantList), fieldListSeq.optional())
	branch(Variant, kinds(ClabelList), fieldListSeq)
	branch(PointerType, types)
	branch(ProcType, kinds(FTypeList), typeIdent.optional())
	// formal parameters
	branch(FParams, kinds(IdentList), formalType)
	branch(VarParams, kinds(IdentList), formalType)
	branch(ConstParams, kinds(IdentList), formalType)
	branch(OpenArray, typeIdent)
	branch(VarFormal, formalType)
	branch(ConstFormal, formalType)
	// statements
	branch(Assign, kinds(Desig), expression)
	branch(PCall, kinds(Desig), kinds(ArgList))
	branch(Increment, kinds(Desig))
	branch(Decrement, kinds(Desig))
	branch(Return, expression.optional())
	branch(Exit)
	branch(IfStmt, expression, stmtSeq, kinds(ElsifSeq), stmtSeq.optional())
	branch(Elsif, expression, stmtSeq)
	branch(CaseStmt, expression, kinds(CaseList), stmtSeq.optional())
	branch(Case, kinds(ClabelList), stmtSeq)
	branch(Range, expression, expression)
	branch(WhileStmt, expression, stmtSeq)
	branch(RepeatStmt, stmtSeq, expression)
	branch(LoopStmt, stmtSeq)
	branch(ForStmt, kinds(Ident), expression, expression, expression.optional(), stmtSeq)
	branch(WithStmt, kinds(Desig), stmtSeq)
	branch(ToDo, kinds(ExprList).optional(), kinds(TaskList))
	// designators and expressions
	branch(Desig, typeIdent, kinds(SelectorList))
	branch(Field, kinds(Ident))
	branch(Index, kinds(ExprList))
	branch(Deref)
	for _, op := range binaryOps.slice() {
		branch(op, expression, expression)
	}
	branch(Neg, expression)
	branch(Not, expression)
	branch(FCall, kinds(Desig), kinds(ArgList))
	branch(SetVal, typeIdent.optional(), kinds(ElemList))

	list(ImpList, kinds(Import, UnqImp))
	list(DefList, kinds(ConstDef, TypeDef, VarDecl, ProcDef))
	list(DeclList, kinds(ConstDef, TypeDef, VarDecl, ProcDecl, ModDecl))
	list(IdentList, kinds(Ident))
	list(IndexList, countable)
	list(FieldListSeq, kinds(FieldList, VFieldList))
	list(VariantList, kinds(Variant))
	list(ClabelList, expression.union(kinds(Range)))
	list(FParamList, kinds(FParams, VarParams, ConstParams))
	list(FTypeList, formalType.union(kinds(VarFormal, ConstFormal)))
	list(StmtSeq, statement)
	list(ElsifSeq, kinds(Elsif))
	list(CaseList, kinds(Case))
	list(SelectorList, kinds(Field, Index, Deref))
	list(ArgList, expression)
	list(ExprList, expression)
	list(ElemList, expression.union(kinds(Range)))
	list(TaskList, kinds(QuotedVal))

	tracer().Debugf("defined shapes of %d node kinds", kindCount)
}

// Arity returns the number of subnodes of a non-terminal kind. For list
// kinds and terminal kinds, it returns false.
func Arity(k NodeKind) (int, bool) {
	if !IsNonterminal(k) {
		return 0, false
	}
	return len(shapeOf(k).children), true
}

// IsLegalArity is true if a node of kind k may have n subnodes: exactly the
// arity for non-terminals, any n ≥ 0 for lists, and 0 for terminals.
func IsLegalArity(k NodeKind, n int) bool {
	switch {
	case IsNonterminal(k):
		return n == len(shapeOf(k).children)
	case IsListKind(k):
		return n >= 0
	case IsTerminal(k):
		return n == 0
	}
	return false
}

// IsLegalChild is true if a node of kind child may be the subnode at position
// index of a node of kind parent. All elements of a list share the same set
// of legal kinds.
func IsLegalChild(parent, child NodeKind, index int) bool {
	if index < 0 || !IsValidKind(child) {
		return false
	}
	switch {
	case IsNonterminal(parent):
		ch := shapeOf(parent).children
		return index < len(ch) && ch[index].contains(child)
	case IsListKind(parent):
		return shapeOf(parent).elements.contains(child)
	}
	return false
}

// LegalChildren returns the kinds legal at position index of parent, in
// ascending order.
func LegalChildren(parent NodeKind, index int) []NodeKind {
	if index < 0 {
		return nil
	}
	switch {
	case IsNonterminal(parent):
		ch := shapeOf(parent).children
		if index < len(ch) {
			return ch[index].slice()
		}
	case IsListKind(parent):
		return shapeOf(parent).elements.slice()
	}
	return nil
}
