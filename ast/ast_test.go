package ast

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindRanges(t *testing.T) {
	for k := NodeKind(0); k < kindCount; k++ {
		n := 0
		for _, in := range []bool{IsNonterminal(k), IsListKind(k), IsTerminal(k)} {
			if in {
				n++
			}
		}
		assert.Equal(t, 1, n, "%s must be in exactly one range", k)
	}
	assert.False(t, IsValidKind(NodeKind(-1)))
	assert.False(t, IsValidKind(kindCount))
	assert.False(t, IsTerminal(kindCount))
}

func TestKindLabels(t *testing.T) {
	for k := NodeKind(0); k < kindCount; k++ {
		p, ok := ParseKind(k.String())
		require.True(t, ok, k.String())
		assert.Equal(t, k, p)
	}
	assert.Len(t, KindNames(), KindCount)
	k, ok := ParseKind("assign")
	assert.True(t, ok)
	assert.Equal(t, Assign, k)
}

func TestEveryNonterminalHasAShape(t *testing.T) {
	for k := nonterminals.From; k < nonterminals.To; k++ {
		n, ok := Arity(k)
		require.True(t, ok)
		for i := 0; i < n; i++ {
			assert.NotEmpty(t, LegalChildren(k, i), "%s has no legal child at %d", k, i)
		}
	}
	for k := lists.From; k < lists.To; k++ {
		assert.NotEmpty(t, LegalChildren(k, 0), "list %s has no element kinds", k)
	}
	_, ok := Arity(StmtSeq)
	assert.False(t, ok)
}

func TestAssignmentShape(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "m2gram.ast")
	defer teardown()
	//
	assert.True(t, IsLegalChild(Assign, Desig, 0))
	assert.False(t, IsLegalChild(Assign, WhileStmt, 0))
	assert.False(t, IsLegalChild(Assign, Assign, 0))
	assert.True(t, IsLegalChild(Assign, Plus, 1))
	assert.False(t, IsLegalChild(Assign, Desig, 2))
	assert.False(t, IsLegalChild(Assign, Desig, -1))
	assert.True(t, IsLegalArity(Assign, 2))
	assert.False(t, IsLegalArity(Assign, 3))
}

func TestArity(t *testing.T) {
	assert.True(t, IsLegalArity(StmtSeq, 0))
	assert.True(t, IsLegalArity(StmtSeq, 17))
	assert.False(t, IsLegalArity(StmtSeq, -1))
	assert.True(t, IsLegalArity(Ident, 0))
	assert.False(t, IsLegalArity(Ident, 1))
	assert.True(t, IsLegalArity(Exit, 0))
	assert.True(t, IsLegalArity(ForStmt, 5))
	assert.False(t, IsLegalArity(NodeKind(500), 0))
}

func TestListElements(t *testing.T) {
	assert.True(t, IsLegalChild(StmtSeq, IfStmt, 0))
	assert.True(t, IsLegalChild(StmtSeq, IfStmt, 42))
	assert.False(t, IsLegalChild(StmtSeq, Plus, 0))
	assert.True(t, IsLegalChild(ClabelList, Range, 3))
	assert.False(t, IsLegalChild(Ident, Ident, 0))
	assert.Equal(t, []NodeKind{Field, Index, Deref}, LegalChildren(SelectorList, 5))
}

func TestOptionalParts(t *testing.T) {
	assert.True(t, IsLegalChild(Return, Empty, 0))
	assert.True(t, IsLegalChild(IfStmt, Empty, 3))
	assert.False(t, IsLegalChild(IfStmt, Empty, 0))
	assert.True(t, IsLegalChild(TypeDef, Empty, 1), "opaque types in definition modules")
}

func mustTerminal(t *testing.T, k NodeKind, v string) *Node {
	n, err := NewTerminal(k, v)
	require.NoError(t, err)
	return n
}

func designator(t *testing.T, name string) *Node {
	sel, err := NewList(SelectorList)
	require.NoError(t, err)
	d, err := NewBranch(Desig, mustTerminal(t, Ident, name), sel)
	require.NoError(t, err)
	return d
}

func TestBuildAssignment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "m2gram.ast")
	defer teardown()
	//
	x := designator(t, "x")
	one := mustTerminal(t, IntVal, "1")
	sum, err := NewBranch(Plus, designator(t, "y"), one)
	require.NoError(t, err)
	asgn, err := NewBranch(Assign, x, sum)
	require.NoError(t, err)
	assert.Equal(t, "(ASSIGN (DESIG (IDENT x) (SELECTORLIST)) (PLUS (DESIG (IDENT y) (SELECTORLIST)) (INTVAL 1)))",
		asgn.String())
	seq, err := NewList(StmtSeq, asgn)
	require.NoError(t, err)
	require.NoError(t, seq.Append(asgn))
	assert.Equal(t, 2, seq.SubnodeCount())
	var got []NodeKind
	for _, sub := range asgn.Subnodes() {
		got = append(got, sub.Kind())
	}
	if diff := cmp.Diff([]NodeKind{Desig, Plus}, got); diff != "" {
		t.Errorf("subnode kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestRefusedNodes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "m2gram.ast")
	defer teardown()
	//
	x := designator(t, "x")
	_, err := NewBranch(Assign, x)
	assert.True(t, errors.Is(err, ErrIllegalArity))
	//
	exit, err := NewBranch(Exit)
	require.NoError(t, err)
	_, err = NewBranch(Assign, exit, mustTerminal(t, IntVal, "1"))
	require.Error(t, err)
	var serr *ShapeError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, Assign, serr.Kind)
	assert.Equal(t, Exit, serr.Child)
	assert.Equal(t, 0, serr.Index)
	assert.True(t, errors.Is(err, ErrIllegalChild))
	//
	_, err = NewBranch(Empty, mustTerminal(t, Ident, "x"))
	assert.True(t, errors.Is(err, ErrIllegalArity))
	e, err := NewBranch(Empty)
	require.NoError(t, err)
	assert.Same(t, EmptyNode(), e)
	//
	_, err = NewBranch(Assign, x, nil)
	assert.True(t, errors.Is(err, ErrIllegalChild))
	_, err = NewList(Assign)
	assert.True(t, errors.Is(err, ErrInvalidKind))
	_, err = NewTerminal(StmtSeq, "")
	assert.True(t, errors.Is(err, ErrInvalidKind))
	seq, _ := NewList(StmtSeq)
	assert.True(t, errors.Is(seq.Append(x), ErrIllegalChild))
	assert.Equal(t, 0, seq.SubnodeCount())
}

func TestReplaceSubnode(t *testing.T) {
	ret, err := NewBranch(Return, EmptyNode())
	require.NoError(t, err)
	require.NoError(t, ret.ReplaceSubnode(0, mustTerminal(t, IntVal, "0")))
	assert.Equal(t, IntVal, ret.Subnode(0).Kind())
	err = ret.ReplaceSubnode(0, mustTerminal(t, Ident, "x"))
	assert.True(t, errors.Is(err, ErrIllegalChild))
	assert.Equal(t, IntVal, ret.Subnode(0).Kind(), "refused replacement must not modify the node")
	assert.True(t, errors.Is(ret.ReplaceSubnode(1, EmptyNode()), ErrIllegalArity))
	assert.Nil(t, ret.Subnode(1))
}
