// Package dot renders NFA and DFA models as Graphviz DOT text, for
// visual debugging. Format is informal: one node per state
// (doublecircle for accepting), one edge per transition, "ε" for
// empty transitions, and a synthetic _start point node marking the
// initial state.
package dot

import (
	"fmt"
	"io"

	"github.com/MaxXSoft/reX/dfa"
	"github.com/MaxXSoft/reX/nfa"
)

// WriteNFA prints m's Graphviz representation to w.
func WriteNFA(w io.Writer, m *nfa.Model) {
	fmt.Fprintln(w, "digraph NFA {")
	fmt.Fprintln(w, "    rankdir=LR;")

	for id, n := range m.Nodes {
		shape := "circle"
		if nfa.StateID(id) == m.Tail {
			shape = "doublecircle"
		}
		fmt.Fprintf(w, "    n%d [shape=%s];\n", id, shape)
		for _, e := range n.Edges {
			fmt.Fprintf(w, "    n%d -> n%d [label=%q];\n", id, e.To, edgeLabel(e))
		}
	}
	if m.Entry.Epsilon {
		fmt.Fprintf(w, "    _start [shape=point]; _start -> n%d;\n", m.Entry.To)
	} else {
		fmt.Fprintf(w, "    _start [shape=point]; _start -> n%d [label=%q];\n", m.Entry.To, edgeLabel(m.Entry))
	}
	fmt.Fprintln(w, "}")
}

func edgeLabel(e nfa.Edge) string {
	if e.Epsilon {
		return "ε"
	}
	return e.Symbol.String()
}

// WriteDFA prints d's Graphviz representation to w.
func WriteDFA(w io.Writer, d *dfa.Model) {
	fmt.Fprintln(w, "digraph DFA {")
	fmt.Fprintln(w, "    rankdir=LR;")

	for id, s := range d.States {
		shape := "circle"
		if s.Final {
			shape = "doublecircle"
		}
		fmt.Fprintf(w, "    q%d [shape=%s];\n", id, shape)
		for _, e := range s.Edges {
			fmt.Fprintf(w, "    q%d -> q%d [label=%q];\n", id, e.To, e.Symbol.String())
		}
	}
	fmt.Fprintf(w, "    _start [shape=point]; _start -> q%d;\n", d.Initial)
	fmt.Fprintln(w, "}")
}
