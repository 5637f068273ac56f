package syntax

import (
	"testing"

	"github.com/MaxXSoft/reX/dfa"
)

func compile(t *testing.T, pattern string) *dfa.Model {
	t.Helper()
	n, err := Parse(pattern)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", pattern, err)
	}
	return dfa.FromNFA(n.Lower())
}

func TestLiteralConcat(t *testing.T) {
	d := compile(t, "abc")
	cases := map[string]bool{"abc": true, "ab": false, "abcd": false, "": false}
	for in, want := range cases {
		if got := dfa.Test(d, in); got != want {
			t.Errorf("Test(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestAlternation(t *testing.T) {
	d := compile(t, "cat|dog")
	cases := map[string]bool{"cat": true, "dog": true, "cow": false, "": false}
	for in, want := range cases {
		if got := dfa.Test(d, in); got != want {
			t.Errorf("Test(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestRepetitionOperators(t *testing.T) {
	d := compile(t, "ab*c")
	cases := map[string]bool{"ac": true, "abc": true, "abbbc": true, "bc": false, "a": false}
	for in, want := range cases {
		if got := dfa.Test(d, in); got != want {
			t.Errorf("Test(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestGrouping(t *testing.T) {
	d := compile(t, "(ab)+")
	cases := map[string]bool{"ab": true, "abab": true, "ababab": true, "a": false, "": false}
	for in, want := range cases {
		if got := dfa.Test(d, in); got != want {
			t.Errorf("Test(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestCharClass(t *testing.T) {
	d := compile(t, "[a-cx]+")
	cases := map[string]bool{"a": true, "abc": true, "x": true, "ax": true, "d": false, "": false}
	for in, want := range cases {
		if got := dfa.Test(d, in); got != want {
			t.Errorf("Test(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNegatedCharClass(t *testing.T) {
	d := compile(t, "[^0-9]+")
	cases := map[string]bool{"abc": true, "a1": false, "123": false, "": false}
	for in, want := range cases {
		if got := dfa.Test(d, in); got != want {
			t.Errorf("Test(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestEscapedMetacharacter(t *testing.T) {
	d := compile(t, `a\*b`)
	cases := map[string]bool{"a*b": true, "ab": false, "aab": false}
	for in, want := range cases {
		if got := dfa.Test(d, in); got != want {
			t.Errorf("Test(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestEmptyConcatBetweenAlternatives(t *testing.T) {
	d := compile(t, "a|")
	cases := map[string]bool{"a": true, "": true, "aa": false}
	for in, want := range cases {
		if got := dfa.Test(d, in); got != want {
			t.Errorf("Test(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestUnmatchedParenIsSyntaxError(t *testing.T) {
	_, err := Parse("(ab")
	if err == nil {
		t.Fatal("expected a syntax error for an unmatched '('")
	}
	if _, ok := err.(*SyntaxError); !ok {
		t.Fatalf("expected *SyntaxError, got %T", err)
	}
}

func TestUnmatchedBracketIsSyntaxError(t *testing.T) {
	_, err := Parse("[abc")
	if err == nil {
		t.Fatal("expected a syntax error for an unmatched '['")
	}
}

func TestDanglingDashIsSyntaxError(t *testing.T) {
	_, err := Parse("[a-]")
	if err == nil {
		t.Fatal("expected a syntax error for a dangling '-' in a character class")
	}
}

func TestTrailingBackslashIsSyntaxError(t *testing.T) {
	_, err := Parse(`a\`)
	if err == nil {
		t.Fatal("expected a syntax error for a trailing backslash")
	}
}

func TestBackwardsRangeIsSyntaxError(t *testing.T) {
	_, err := Parse("[z-a]")
	if err == nil {
		t.Fatal("expected a syntax error for a backwards character class range")
	}
	se, ok := err.(*SyntaxError)
	if !ok {
		t.Fatalf("expected *SyntaxError, got %T", err)
	}
	if se.Offset == 0 {
		t.Error("expected a non-zero byte offset for the backwards range")
	}
}
