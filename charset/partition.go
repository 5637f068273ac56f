package charset

// Partition computes the finest disjoint refinement ("equivalence
// classes" or "atoms") of a collection of CharSets: every input set
// is exactly the union of some subset of the returned atoms, and the
// returned atoms are pairwise disjoint. Every byte that is a member
// of none of the inputs is simply absent from every atom.
//
// Subset construction (package dfa) needs this so that overlapping
// NFA symbols (e.g. a Range and an overlapping Char both reachable
// from one epsilon-closure) never produce two DFA edges that both
// accept the same character.
//
// Atoms are returned in a fixed, input-order-independent order (by
// ascending CharSet word value) so callers get a reproducible
// iteration order for free; package dfa's subset construction walks
// the atoms in this order, which fixes the order in which it numbers
// states and emits edges.
func Partition(sets []CharSet) []CharSet {
	atoms := []CharSet{}
	for _, s := range sets {
		if s.Empty() {
			continue
		}
		rest := s
		var next []CharSet
		for _, a := range atoms {
			in := a.Intersect(rest)
			out := a.Minus(rest)
			if !in.Empty() {
				next = append(next, in)
			}
			if !out.Empty() {
				next = append(next, out)
			}
			rest = rest.Minus(a)
		}
		if !rest.Empty() {
			next = append(next, rest)
		}
		atoms = next
	}
	sortSets(atoms)
	return atoms
}

// sortSets sorts CharSets into a fixed, content-determined order
// (lexicographic on the four words), insertion-sort style since the
// input is always small (bounded by the number of distinct symbols
// in one NFA).
func sortSets(sets []CharSet) {
	for i := 1; i < len(sets); i++ {
		for j := i; j > 0 && less(sets[j], sets[j-1]); j-- {
			sets[j], sets[j-1] = sets[j-1], sets[j]
		}
	}
}

func less(a, b CharSet) bool {
	for i := 0; i < 4; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
