package dfa

import (
	"testing"

	"github.com/MaxXSoft/reX/combinator"
)

func build(t *testing.T, n combinator.Node) *Model {
	t.Helper()
	return FromNFA(n.Lower())
}

func TestDeterminismEveryStateAtMostOneEdgePerChar(t *testing.T) {
	d := build(t, combinator.Word("ab").Or(combinator.Word("ac")))
	for _, s := range d.States {
		for c := 0; c <= 255; c++ {
			hits := 0
			for _, e := range s.Edges {
				if e.Symbol.Test(byte(c)) {
					hits++
				}
			}
			if hits > 1 {
				t.Fatalf("character %d matches %d edges, want at most 1", c, hits)
			}
		}
	}
}

func TestWordRecognition(t *testing.T) {
	d := build(t, combinator.Word("ab").Or(combinator.Word("ac")))
	cases := map[string]bool{"ab": true, "ac": true, "a": false, "": false, "abc": false, "ad": false}
	for in, want := range cases {
		if got := Test(d, in); got != want {
			t.Errorf("Test(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestKleeneStarRecognition(t *testing.T) {
	d := build(t, combinator.Word("a").Star())
	cases := map[string]bool{"": true, "a": true, "aaaa": true, "b": false, "aab": false}
	for in, want := range cases {
		if got := Test(d, in); got != want {
			t.Errorf("Test(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestOverlappingRangesStayDeterministic(t *testing.T) {
	// 'a'-'m' and 'h'-'z' overlap on 'h'-'m'; subset construction must
	// still route every character through a unique edge.
	tree := combinator.Range('a', 'm').Or(combinator.Range('h', 'z'))
	d := build(t, tree)
	for c := byte('a'); c <= 'z'; c++ {
		hits := 0
		for _, e := range d.States[d.Initial].Edges {
			if e.Symbol.Test(c) {
				hits++
			}
		}
		if hits != 1 {
			t.Fatalf("char %q matched %d edges from initial state, want 1", c, hits)
		}
	}
}

func TestEmptyPredicateAcceptsNothing(t *testing.T) {
	d := build(t, combinator.Pred(func(byte) bool { return false }))
	if Test(d, "") {
		t.Error("empty predicate model should reject empty string (needs one transition, has none)")
	}
	if Test(d, "x") {
		t.Error("empty predicate model should reject any non-empty string")
	}
}
