package ast

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// Errors wrapped by ShapeError.
var (
	ErrInvalidKind  = errors.New("invalid node kind")
	ErrIllegalArity = errors.New("illegal number of subnodes")
	ErrIllegalChild = errors.New("illegal subnode kind")
)

// ShapeError reports a node which does not conform to the shape of its kind.
type ShapeError struct {
	Kind  NodeKind // kind of the refused node
	Child NodeKind // kind of the offending subnode, if any
	Index int      // position of the offending subnode, or -1
	Count int      // number of subnodes given
	Err   error    // one of ErrInvalidKind, ErrIllegalArity, ErrIllegalChild
}

func (e *ShapeError) Error() string {
	switch {
	case errors.Is(e.Err, ErrIllegalChild):
		return fmt.Sprintf("%s node: %v %s at index %d", e.Kind, e.Err, e.Child, e.Index)
	case errors.Is(e.Err, ErrIllegalArity):
		return fmt.Sprintf("%s node: %v (%d)", e.Kind, e.Err, e.Count)
	}
	return fmt.Sprintf("%s: %v for this constructor", e.Kind, e.Err)
}

func (e *ShapeError) Unwrap() error {
	return e.Err
}

// Node is a node of a syntax tree. Nodes are created by NewBranch, NewList
// and NewTerminal, which validate them against the shape of their kind.
// Once created, a node changes only through ReplaceSubnode and Append, which
// validate as well.
type Node struct {
	kind     NodeKind
	value    string
	subnodes []*Node
}

var empty = &Node{kind: Empty}

// EmptyNode returns the node of kind Empty standing in for an omitted part.
func EmptyNode() *Node {
	return empty
}

// NewBranch creates a non-terminal node of kind k with the given subnodes.
func NewBranch(k NodeKind, subnodes ...*Node) (*Node, error) {
	if !IsNonterminal(k) {
		return nil, refuse(&ShapeError{Kind: k, Index: -1, Count: len(subnodes), Err: ErrInvalidKind})
	}
	if k == Empty {
		if !IsLegalArity(Empty, len(subnodes)) {
			return nil, refuse(&ShapeError{Kind: k, Index: -1, Count: len(subnodes), Err: ErrIllegalArity})
		}
		return empty, nil
	}
	return newNode(k, subnodes)
}

// NewList creates a list node of kind k with the given elements.
func NewList(k NodeKind, elements ...*Node) (*Node, error) {
	if !IsListKind(k) {
		return nil, refuse(&ShapeError{Kind: k, Index: -1, Count: len(elements), Err: ErrInvalidKind})
	}
	return newNode(k, elements)
}

// NewTerminal creates a terminal node of kind k carrying value.
func NewTerminal(k NodeKind, value string) (*Node, error) {
	if !IsTerminal(k) {
		return nil, refuse(&ShapeError{Kind: k, Index: -1, Err: ErrInvalidKind})
	}
	return &Node{kind: k, value: value}, nil
}

func newNode(k NodeKind, subnodes []*Node) (*Node, error) {
	if !IsLegalArity(k, len(subnodes)) {
		return nil, refuse(&ShapeError{Kind: k, Index: -1, Count: len(subnodes), Err: ErrIllegalArity})
	}
	for i, sub := range subnodes {
		if err := checkChild(k, sub, i, len(subnodes)); err != nil {
			return nil, err
		}
	}
	n := &Node{kind: k, subnodes: make([]*Node, len(subnodes))}
	copy(n.subnodes, subnodes)
	return n, nil
}

func checkChild(k NodeKind, sub *Node, i, count int) error {
	child := NodeKind(-1)
	if sub != nil {
		child = sub.kind
	}
	if !IsLegalChild(k, child, i) {
		return refuse(&ShapeError{Kind: k, Child: child, Index: i, Count: count, Err: ErrIllegalChild})
	}
	return nil
}

func refuse(err *ShapeError) error {
	tracer().Debugf("refusing node: %v", err)
	return err
}

// Kind returns the kind of n.
func (n *Node) Kind() NodeKind {
	return n.kind
}

// Value returns the value of a terminal node, and "" for all other nodes.
func (n *Node) Value() string {
	return n.value
}

// SubnodeCount returns the number of subnodes of n.
func (n *Node) SubnodeCount() int {
	return len(n.subnodes)
}

// Subnode returns the subnode at position i, or nil if there is none.
func (n *Node) Subnode(i int) *Node {
	if i < 0 || i >= len(n.subnodes) {
		return nil
	}
	return n.subnodes[i]
}

// Subnodes iterates over the subnodes of n.
func (n *Node) Subnodes() iter.Seq2[int, *Node] {
	return func(yield func(int, *Node) bool) {
		for i, sub := range n.subnodes {
			if !yield(i, sub) {
				return
			}
		}
	}
}

// ReplaceSubnode replaces the subnode at position i by sub. If sub is not
// legal at this position, n remains unchanged.
func (n *Node) ReplaceSubnode(i int, sub *Node) error {
	if i < 0 || i >= len(n.subnodes) {
		return refuse(&ShapeError{Kind: n.kind, Index: i, Count: len(n.subnodes), Err: ErrIllegalArity})
	}
	if err := checkChild(n.kind, sub, i, len(n.subnodes)); err != nil {
		return err
	}
	n.subnodes[i] = sub
	return nil
}

// Append adds an element to a list node.
func (n *Node) Append(sub *Node) error {
	if !IsListKind(n.kind) {
		return refuse(&ShapeError{Kind: n.kind, Index: -1, Count: len(n.subnodes) + 1, Err: ErrIllegalArity})
	}
	if err := checkChild(n.kind, sub, len(n.subnodes), len(n.subnodes)+1); err != nil {
		return err
	}
	n.subnodes = append(n.subnodes, sub)
	return nil
}

// String renders the tree rooted at n as an S-expression, e.g.
// (ASSIGN (DESIG (IDENT x) (SELECTORLIST)) (INTVAL 1)).
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n *Node) write(b *strings.Builder) {
	b.WriteByte('(')
	b.WriteString(n.kind.String())
	if IsTerminal(n.kind) {
		b.WriteByte(' ')
		b.WriteString(n.value)
	}
	for _, sub := range n.subnodes {
		b.WriteByte(' ')
		sub.write(b)
	}
	b.WriteByte(')')
}
