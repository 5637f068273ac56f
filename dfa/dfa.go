// Package dfa implements subset construction, partition-refinement
// minimization, and a recognizer over the NFA models package
// combinator's lowering produces. A Model is always deterministic: at
// most one outgoing edge of any state accepts a given character.
package dfa

import (
	"sort"

	"github.com/MaxXSoft/reX/charset"
	"github.com/MaxXSoft/reX/nfa"
)

// StateID indexes into a Model's States arena.
type StateID int

// Edge is a (symbol, target) transition. Unlike nfa.Edge there is no
// Epsilon variant: a deterministic model never needs one.
type Edge struct {
	Symbol charset.Symbol
	To     StateID
}

// State owns an ordered list of outgoing edges plus a dense 256-wide
// dispatch table, so every Test call is O(1) per character rather
// than a linear scan over Edges. table[c] is -1 when no edge accepts
// c. The table is always built eagerly as part of constructing the
// State, never on first use, so a *Model handed to multiple
// goroutines for read-only recognition needs no synchronization.
type State struct {
	Edges []Edge
	Final bool
	table [256]int32
}

func (s *State) buildTable() {
	for i := range s.table {
		s.table[i] = -1
	}
	for i, e := range s.Edges {
		for c := 0; c <= 255; c++ {
			if e.Symbol.Test(byte(c)) {
				s.table[c] = int32(i)
			}
		}
	}
}

// next returns the index into s.Edges of the edge accepting c, or -1
// if none accepts it.
func (s *State) next(c byte) int32 {
	return s.table[c]
}

// Model is a deterministic finite automaton: states plus the initial
// state and the set of symbols appearing on some edge.
type Model struct {
	States  []State
	Initial StateID
	Symbols map[charset.CharSet]charset.Symbol
}

// Test runs the recognizer: starting at Initial, consume input one
// character at a time, following the unique edge (if any) that
// accepts it; reject as soon as no edge matches. Accept iff the state
// reached after consuming all of input is final.
func Test(d *Model, input string) bool {
	s := d.Initial
	for i := 0; i < len(input); i++ {
		idx := d.States[s].next(input[i])
		if idx < 0 {
			return false
		}
		s = d.States[s].Edges[idx].To
	}
	return d.States[s].Final
}

// FromNFA runs subset construction over m, producing a deterministic
// model. m is normalized in place first (see nfa.Model.Normalize) so
// its entry edge is always epsilon. Nil, Alt and Kleene lowerings
// already return an epsilon entry; a symbol node (Sym, Range, Pred),
// a non-empty Word, and any Concat whose left operand starts with a
// symbol do not, and get a fresh entry node here.
func FromNFA(m *nfa.Model) *Model {
	m.Normalize()

	atoms := charset.Partition(symbolBits(m))

	q0 := nfa.EpsilonClosure(m, []nfa.StateID{m.Entry.To})

	d := &Model{Symbols: make(map[charset.CharSet]charset.Symbol)}
	index := map[string]StateID{}

	alloc := func(set nfa.StateSet) StateID {
		id := StateID(len(d.States))
		d.States = append(d.States, State{Final: nfa.HasTail(m, set)})
		index[set.Key()] = id
		return id
	}

	d.Initial = alloc(q0)
	worklist := []nfa.StateSet{q0}

	for len(worklist) > 0 {
		set := worklist[0]
		worklist = worklist[1:]
		from := index[set.Key()]

		for _, atom := range atoms {
			rep, ok := representative(atom)
			if !ok {
				continue
			}
			moved := nfa.Move(m, set, rep)
			if len(moved) == 0 {
				continue
			}
			closure := nfa.EpsilonClosure(m, moved)

			to, seen := index[closure.Key()]
			if !seen {
				to = alloc(closure)
				worklist = append(worklist, closure)
			}

			sym := charset.Set(atom)
			d.States[from].Edges = append(d.States[from].Edges, Edge{Symbol: sym, To: to})
			d.Symbols[atom] = sym
		}
	}

	for i := range d.States {
		d.States[i].buildTable()
	}
	return d
}

// symbolBits collects every distinct symbol's materialized bit
// pattern out of m's symbol set, for handing to charset.Partition.
func symbolBits(m *nfa.Model) []charset.CharSet {
	out := make([]charset.CharSet, 0, len(m.Symbols))
	for bits := range m.Symbols {
		out = append(out, bits)
	}
	return out
}

// representative returns some member of bits and true, or false if
// bits is empty. Used to drive nfa.Move with one concrete character
// standing in for a whole equivalence-class atom, since every
// character in an atom reaches exactly the same NFA states.
func representative(bits charset.CharSet) (byte, bool) {
	members := bits.Members()
	if len(members) == 0 {
		return 0, false
	}
	return members[0], true
}

// symbolList returns m's symbols sorted by bit pattern, mirroring
// nfa.Model.SymbolList's reproducible ordering contract.
func symbolList(m *Model) []charset.Symbol {
	out := make([]charset.Symbol, 0, len(m.Symbols))
	for _, sym := range m.Symbols {
		out = append(out, sym)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Bits(), out[j].Bits()
		for k := 0; k < 4; k++ {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return false
	})
	return out
}
