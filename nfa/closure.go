package nfa

import (
	"sort"
	"strconv"
	"strings"
)

// StateSet is a node-set as subset construction (package dfa) sees
// it: always kept sorted and deduplicated, so two StateSets denote
// the same set of NFA states iff their Members slices are
// element-wise equal. That lets Key build an exact content key
// rather than a lossy hash, which would risk two distinct state sets
// being treated as identical on a collision: a key built from the
// literal sorted member sequence sidesteps the question entirely,
// since equality-as-identity falls directly out of Go's string
// equality on the key, over a sparse id list rather than a dense word
// array, which suits the open-ended number of NFA states better.
type StateSet struct {
	Members []StateID
}

// NewStateSet builds a sorted, deduplicated StateSet from ids.
func NewStateSet(ids ...StateID) StateSet {
	set := StateSet{Members: append([]StateID(nil), ids...)}
	set.normalize()
	return set
}

func (s *StateSet) normalize() {
	sort.Slice(s.Members, func(i, j int) bool { return s.Members[i] < s.Members[j] })
	out := s.Members[:0]
	var prev StateID = -1
	first := true
	for _, id := range s.Members {
		if first || id != prev {
			out = append(out, id)
			prev = id
			first = false
		}
	}
	s.Members = out
}

// Has reports whether id is a member.
func (s StateSet) Has(id StateID) bool {
	i := sort.Search(len(s.Members), func(i int) bool { return s.Members[i] >= id })
	return i < len(s.Members) && s.Members[i] == id
}

// Key returns a content-addressed identity key: equal StateSets
// always produce equal keys, and unequal StateSets never collide
// because the key is the literal sorted member sequence, not a digest
// of it.
func (s StateSet) Key() string {
	var b strings.Builder
	for i, id := range s.Members {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(id)))
	}
	return b.String()
}

// Empty reports whether the set has no members.
func (s StateSet) Empty() bool { return len(s.Members) == 0 }

// EpsilonClosure returns the least StateSet containing every id in
// start and closed under empty transitions. Implemented as an
// explicit-stack DFS with a visited set, so cycles (required for
// Kleene closure) terminate correctly.
func EpsilonClosure(m *Model, start []StateID) StateSet {
	visited := make(map[StateID]bool, len(start)*2)
	stack := append([]StateID(nil), start...)
	for _, id := range start {
		visited[id] = true
	}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range m.Nodes[id].Edges {
			if e.Epsilon && !visited[e.To] {
				visited[e.To] = true
				stack = append(stack, e.To)
			}
		}
	}
	ids := make([]StateID, 0, len(visited))
	for id := range visited {
		ids = append(ids, id)
	}
	return NewStateSet(ids...)
}

// Move returns the set of nodes reachable from some member of set by
// a single non-epsilon edge whose symbol accepts c. It takes a
// representative character rather than an exact symbol so it can be
// driven by the disjoint equivalence-class atoms package dfa computes
// instead of the NFA's raw, possibly overlapping symbols. When every
// symbol happens to be pairwise disjoint already, this coincides with
// moving on an exact symbol, since "symbol equals c" and "symbol
// accepts c" agree in that case.
func Move(m *Model, set StateSet, c byte) []StateID {
	var out []StateID
	for _, id := range set.Members {
		for _, e := range m.Nodes[id].Edges {
			if !e.Epsilon && e.Symbol.Test(c) {
				out = append(out, e.To)
			}
		}
	}
	return out
}

// HasTail reports whether the model's accepting node is a member of
// set, which subset construction uses to decide whether a DFA state
// built from set should be final.
func HasTail(m *Model, set StateSet) bool { return set.Has(m.Tail) }

// Normalize rewrites m in place so its Entry edge is always epsilon:
// if the existing entry edge carries a symbol, a fresh node and empty
// entry edge are prepended so the entry is always empty.
func (m *Model) Normalize() {
	if m.Entry.Epsilon {
		return
	}
	fresh := m.AddNode()
	oldEntry := m.Entry
	m.Nodes[fresh].Edges = append(m.Nodes[fresh].Edges, oldEntry)
	m.Entry = Edge{Epsilon: true, To: fresh}
}
