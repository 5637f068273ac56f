package combinator

import "github.com/MaxXSoft/reX/nfa"

type altNode struct {
	fluent
	l, r Node
}

// Alt returns the combinator accepting the union of l's and r's
// languages.
//
// This is a direct, unoptimized Thompson construction: a fresh branch
// node carries copies of l's and r's entry edges, and a fresh join
// node is what both tails feed into by epsilon. An optimization that
// factors a common first symbol out of overlapping branches is
// deliberately skipped here, since it would only complicate this
// lowering without changing the language accepted: subset
// construction's equivalence-class atoms already absorb whatever
// determinism cost that factoring would otherwise be paying for.
func Alt(l, r Node) Node {
	n := &altNode{l: l, r: r}
	n.fluent.self = n
	return n
}

func (n *altNode) Lower() *nfa.Model {
	lm := n.l.Lower()
	rm := n.r.Lower()

	m := nfa.NewModel()
	loff := m.Absorb(lm)
	roff := m.Absorb(rm)

	branch := m.AddNode()
	join := m.AddNode()

	m.AddEdgeLike(branch, lm.Entry, lm.Entry.To+loff)
	m.AddEdgeLike(branch, rm.Entry, rm.Entry.To+roff)
	m.AddEpsilon(lm.Tail+loff, join)
	m.AddEpsilon(rm.Tail+roff, join)

	m.Entry = nfa.Edge{Epsilon: true, To: branch}
	m.Tail = join
	return m
}
