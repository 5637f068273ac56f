package combinator

import "github.com/MaxXSoft/reX/nfa"

type concatNode struct {
	fluent
	l, r Node
}

// Concat returns the combinator accepting the concatenation of l's
// and r's languages.
//
// There are two equally valid ways to wire L.tail to R's sub-graph:
// merge L.tail and R.entry's target into one node, or interpose a
// fresh empty edge between them. This implementation takes a third,
// simpler option that is language-equivalent to both: it copies R's
// entry edge (preserving whatever symbol-or-epsilon it carries) onto
// L.tail, retargeted at R's entry target. R's entry edge never lived
// in any node's edge list to begin with; it is only ever the
// model-level "how do I get into this sub-graph" pointer, so copying
// it adds one edge and never needs to rewrite an existing one, even
// when other edges (such as a Kleene body's back edge) also target
// R's entry target.
func Concat(l, r Node) Node {
	n := &concatNode{l: l, r: r}
	n.fluent.self = n
	return n
}

func (n *concatNode) Lower() *nfa.Model {
	lm := n.l.Lower()
	rm := n.r.Lower()

	m := nfa.NewModel()
	loff := m.Absorb(lm)
	roff := m.Absorb(rm)

	m.Entry = nfa.Edge{Epsilon: lm.Entry.Epsilon, Symbol: lm.Entry.Symbol, To: lm.Entry.To + loff}
	m.AddEdgeLike(lm.Tail+loff, rm.Entry, rm.Entry.To+roff)
	m.Tail = rm.Tail + roff
	return m
}
