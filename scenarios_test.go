package rex

import (
	"os"
	"testing"

	"gopkg.in/yaml.v2"

	"github.com/MaxXSoft/reX/combinator"
	"github.com/MaxXSoft/reX/dfa"
	"github.com/MaxXSoft/reX/nfa"
)

type scenario struct {
	Name   string   `yaml:"name"`
	Accept []string `yaml:"accept"`
	Reject []string `yaml:"reject"`
}

func loadScenarios(t *testing.T) []scenario {
	t.Helper()
	bs, err := os.ReadFile("testdata/scenarios.yaml")
	if err != nil {
		t.Fatalf("reading testdata/scenarios.yaml: %v", err)
	}
	var out []scenario
	if err := yaml.Unmarshal(bs, &out); err != nil {
		t.Fatalf("parsing testdata/scenarios.yaml: %v", err)
	}
	return out
}

// trees mirrors the seven concrete scenarios verbatim, built with the
// combinator surface directly so this test exercises build/nfa_to_dfa/
// minimize exactly as a caller would, independent of package syntax.
func trees() map[string]combinator.Node {
	W, R, Alt, Concat := combinator.Word, combinator.Range, combinator.Alt, combinator.Concat
	return map[string]combinator.Node{
		"word_literal":          W("abc"),
		"alt_of_words":          Alt(W("a"), W("b")),
		"kleene_star_of_word":   W("a").Star(),
		"plus_of_alt_then_word": Concat(Alt(W("a"), W("b")).Plus(), W("c")),
		"range_plus":            R('0', '9').Plus(),
		"alt_with_shared_prefix": Alt(W("ab"), W("ac")),
		"optional_then_word":    Concat(W("a").Opt(), W("b")),
	}
}

// simulateNFA mirrors dfa.FromNFA's closure walk without going
// through subset construction, so each scenario's three acceptance
// checks (NFA, DFA, minimized DFA) are genuinely independent
// implementations of the same recognition question.
func simulateNFA(m *nfa.Model, input string) bool {
	m.Normalize()
	cur := nfa.EpsilonClosure(m, []nfa.StateID{m.Entry.To})
	for i := 0; i < len(input); i++ {
		next := nfa.Move(m, cur, input[i])
		if len(next) == 0 {
			return false
		}
		cur = nfa.EpsilonClosure(m, next)
	}
	return nfa.HasTail(m, cur)
}

func TestScenarios(t *testing.T) {
	all := trees()
	for _, sc := range loadScenarios(t) {
		sc := sc
		t.Run(sc.Name, func(t *testing.T) {
			tree, ok := all[sc.Name]
			if !ok {
				t.Fatalf("no combinator tree registered for scenario %q", sc.Name)
			}

			nfaModel := tree.Lower()
			dfaModel := dfa.FromNFA(tree.Lower())
			minModel := dfa.Minimize(dfa.FromNFA(tree.Lower()))

			if len(minModel.States) > len(dfaModel.States) {
				t.Errorf("minimized DFA has %d states, more than the %d the raw DFA has",
					len(minModel.States), len(dfaModel.States))
			}

			check := func(input string, want bool) {
				if got := simulateNFA(nfaModel, input); got != want {
					t.Errorf("NFA simulation(%q) = %v, want %v", input, got, want)
				}
				if got := dfa.Test(dfaModel, input); got != want {
					t.Errorf("DFA Test(%q) = %v, want %v", input, got, want)
				}
				if got := dfa.Test(minModel, input); got != want {
					t.Errorf("minimized DFA Test(%q) = %v, want %v", input, got, want)
				}
			}
			for _, in := range sc.Accept {
				check(in, true)
			}
			for _, in := range sc.Reject {
				check(in, false)
			}
		})
	}
}
