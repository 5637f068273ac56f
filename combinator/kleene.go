package combinator

import "github.com/MaxXSoft/reX/nfa"

type kleeneNode struct {
	fluent
	x Node
}

// Kleene returns the combinator accepting zero or more repetitions
// of x's language.
func Kleene(x Node) Node {
	n := &kleeneNode{x: x}
	n.fluent.self = n
	return n
}

func (n *kleeneNode) Lower() *nfa.Model {
	xm := n.x.Lower()

	m := nfa.NewModel()
	off := m.Absorb(xm)

	t := m.AddNode()
	m.AddEdgeLike(t, xm.Entry, xm.Entry.To+off) // loop the body in
	m.AddEpsilon(xm.Tail+off, t)                // and back out

	m.Entry = nfa.Edge{Epsilon: true, To: t}
	m.Tail = t
	return m
}

// KleenePlus returns the combinator accepting one or more
// repetitions of x's language: Concat(x, Kleene(x)).
//
// The body must be lowered twice, independently, rather than sharing
// one sub-graph between the concatenated copy and the starred copy;
// otherwise a match could loop back through a node that a different
// repetition already consumed a different path through. Calling
// Lower() twice on the same Node value (once here via Concat's l,
// once inside Kleene via its own x) already allocates two disjoint
// nfa.Models, since every Lower implementation in this package
// allocates fresh state, so no explicit clone step is needed.
func KleenePlus(x Node) Node { return Concat(x, Kleene(x)) }

// Optional returns the combinator accepting x's language or the
// empty string: Alt(x, Nil()).
func Optional(x Node) Node { return Alt(x, Nil()) }
