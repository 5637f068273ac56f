// Package combinator implements the regex combinator surface:
// algebraic constructors that build a tree of immutable nodes, each
// of which knows how to lower itself into a freshly allocated
// nfa.Model by structural recursion (Thompson construction).
//
// This is the combinator tree's whole public surface. There is no
// parse-error pathway here; every combinator is a total function. A
// textual producer (package syntax) builds these trees from regex
// source and is the only place parse errors live.
package combinator

import (
	"github.com/MaxXSoft/reX/charset"
	"github.com/MaxXSoft/reX/nfa"
)

// Node is a combinator tree node. The concrete kinds form a closed
// sum type: Nil, symbol, concat, alternation and kleene are the
// primitives; everything else (Word, KleenePlus, Optional) is
// defined in terms of those.
type Node interface {
	// Lower returns a freshly allocated NFAModel for this node. Every
	// call allocates independent nodes and never mutates or shares
	// state with a previous call, including a previous call on the
	// very same Node value. That is what makes calling Lower twice on
	// one sub-tree a correct way to obtain two independent copies,
	// which KleenePlus relies on: the two copies must never share
	// nodes.
	Lower() *nfa.Model

	// And, Or, Star, Plus and Opt give the tree a fluent construction
	// API, the idiomatic Go stand-in for operator overloading on a
	// combinator facade.
	And(Node) Node
	Or(Node) Node
	Star() Node
	Plus() Node
	Opt() Node
}

// fluent gives every concrete Node kind the methods above for free;
// each concrete kind embeds it and only implements Lower.
type fluent struct{ self Node }

func (f fluent) And(rhs Node) Node { return Concat(f.self, rhs) }
func (f fluent) Or(rhs Node) Node  { return Alt(f.self, rhs) }
func (f fluent) Star() Node        { return Kleene(f.self) }
func (f fluent) Plus() Node        { return KleenePlus(f.self) }
func (f fluent) Opt() Node         { return Optional(f.self) }

// nilNode is the Nil primitive: one node, an empty entry edge into
// it, accepting only the empty string.
type nilNode struct{ fluent }

// Nil returns the combinator accepting only the empty string.
func Nil() Node {
	n := &nilNode{}
	n.fluent.self = n
	return n
}

func (n *nilNode) Lower() *nfa.Model {
	m := nfa.NewModel()
	s := m.AddNode()
	m.Entry = nfa.Edge{Epsilon: true, To: s}
	m.Tail = s
	return m
}

// symbolNode is the Symbol(s) primitive: one node, an entry edge
// carrying s into it.
type symbolNode struct {
	fluent
	sym charset.Symbol
}

// Sym returns the combinator accepting exactly the characters s
// accepts.
func Sym(s charset.Symbol) Node {
	n := &symbolNode{sym: s}
	n.fluent.self = n
	return n
}

func (n *symbolNode) Lower() *nfa.Model {
	m := nfa.NewModel()
	s := m.AddNode()
	m.Entry = nfa.Edge{Symbol: n.sym, To: s}
	m.Symbols[n.sym.Bits()] = n.sym
	m.Tail = s
	return m
}

// Range returns the combinator accepting c with lo <= c <= hi.
// Range(a,b) = Symbol(charset.Range(a,b)); the validity check
// (lo <= hi) happens inside charset.Range and panics at construction.
func Range(lo, hi byte) Node { return Sym(charset.Range(lo, hi)) }

// Pred returns the combinator accepting exactly the bytes f reports
// true for. An f that accepts nothing is legal: the resulting model
// simply accepts no string.
func Pred(f func(byte) bool) Node { return Sym(charset.Predicate(f)) }

// Word builds Symbol(Char(c)) for every byte of s and left-folds
// them with Concat. An empty word yields Nil.
func Word(s string) Node {
	if len(s) == 0 {
		return Nil()
	}
	var n Node = Sym(charset.Char(s[0]))
	for i := 1; i < len(s); i++ {
		n = Concat(n, Sym(charset.Char(s[i])))
	}
	return n
}
