// Package nfa implements an NFA data model of nodes with out-edges,
// placed in an arena and addressed by index so that the cycles Kleene
// closure requires never need weak references or pointer cleanup.
// Ownership is by value: a Model owns its whole node arena, and
// combinator lowering (package combinator) always returns a freshly
// allocated Model, never mutates one it was handed.
package nfa

import "github.com/MaxXSoft/reX/charset"

// StateID indexes into a Model's Nodes arena.
type StateID int

// Edge is an immutable pair of (symbol-or-empty, tail node). Epsilon
// is true for empty transitions; when it is, Symbol is the zero
// Symbol and must not be consulted.
type Edge struct {
	Epsilon bool
	Symbol  charset.Symbol
	To      StateID
}

// Node owns an ordered list of outgoing edges. Nodes form a directed
// multigraph that may contain cycles.
type Node struct {
	Edges []Edge
}

// Model is (entry edge, tail node, symbol set): the entry edge's
// target is the model's initial node, Tail is the unique accepting
// node, and Symbols collects every distinct symbol (by semantic
// membership, via CharSet as map key) appearing on a non-empty edge.
type Model struct {
	Nodes   []Node
	Entry   Edge
	Tail    StateID
	Symbols map[charset.CharSet]charset.Symbol
}

// NewModel returns an empty model ready to have nodes added to it.
func NewModel() *Model {
	return &Model{Symbols: make(map[charset.CharSet]charset.Symbol)}
}

// AddNode allocates a fresh node in the arena and returns its id.
func (m *Model) AddNode() StateID {
	m.Nodes = append(m.Nodes, Node{})
	return StateID(len(m.Nodes) - 1)
}

// AddEpsilon adds an empty edge from -> to.
func (m *Model) AddEpsilon(from, to StateID) {
	m.Nodes[from].Edges = append(m.Nodes[from].Edges, Edge{Epsilon: true, To: to})
}

// AddSymbol adds a symbol edge from -> to and records sym in the
// model's symbol set.
func (m *Model) AddSymbol(from StateID, sym charset.Symbol, to StateID) {
	m.Nodes[from].Edges = append(m.Nodes[from].Edges, Edge{Symbol: sym, To: to})
	m.Symbols[sym.Bits()] = sym
}

// AddEdgeLike appends a copy of e, retargeted to `to`, as an outgoing
// edge of from. It splices a captured Entry edge (which never itself
// lives in any node's edge list) into a new source node, without
// caring whether that edge is epsilon or carries a symbol.
func (m *Model) AddEdgeLike(from StateID, e Edge, to StateID) {
	e.To = to
	m.Nodes[from].Edges = append(m.Nodes[from].Edges, e)
	if !e.Epsilon {
		m.Symbols[e.Symbol.Bits()] = e.Symbol
	}
}

// Absorb appends sub's entire node arena onto m's, remapping every
// edge target by the offset at which sub's nodes landed, and merges
// sub's symbol set into m's. It returns that offset so the caller can
// translate any StateID it was holding into sub (such as sub.Entry.To
// or sub.Tail) into m's id space. Absorb never mutates sub.
func (m *Model) Absorb(sub *Model) StateID {
	offset := StateID(len(m.Nodes))
	for _, n := range sub.Nodes {
		edges := make([]Edge, len(n.Edges))
		for i, e := range n.Edges {
			e.To += offset
			edges[i] = e
		}
		m.Nodes = append(m.Nodes, Node{Edges: edges})
	}
	for bits, sym := range sub.Symbols {
		m.Symbols[bits] = sym
	}
	return offset
}

// SymbolList returns the model's distinct symbols sorted by their
// bit pattern, so every consumer that needs "the NFA's symbols in
// some order" sees the same reproducible order.
func (m *Model) SymbolList() []charset.Symbol {
	out := make([]charset.Symbol, 0, len(m.Symbols))
	for _, sym := range m.Symbols {
		out = append(out, sym)
	}
	sortSymbols(out)
	return out
}

func sortSymbols(syms []charset.Symbol) {
	for i := 1; i < len(syms); i++ {
		for j := i; j > 0 && symLess(syms[j], syms[j-1]); j-- {
			syms[j], syms[j-1] = syms[j-1], syms[j]
		}
	}
}

func symLess(a, b charset.Symbol) bool {
	ab, bb := a.Bits(), b.Bits()
	for i := 0; i < 4; i++ {
		if ab[i] != bb[i] {
			return ab[i] < bb[i]
		}
	}
	return false
}
