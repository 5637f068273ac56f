package dfa

import "github.com/MaxXSoft/reX/charset"

// Minimize collapses d into the language-equivalent DFA with the
// fewest states, by Moore-style signature refinement: states start
// partitioned by finality, then repeatedly split a block whenever two
// of its members disagree on which block their δ(s, σ) lands in, for
// some σ in a fixed symbol order. Repeat until a full pass splits
// nothing.
//
// Symbols are matched with Symbol.Equal, which compares materialized
// membership sets, so two edges whose symbols were built by different
// constructors but accept the same characters count as the same σ.
func Minimize(d *Model) *Model {
	if len(d.States) == 0 {
		return d
	}

	syms := symbolList(d)
	block := make([]int, len(d.States))
	for i, s := range d.States {
		if s.Final {
			block[i] = 1
		}
	}
	numBlocks := 2
	if allSame(block) {
		numBlocks = 1
	}

	for {
		sig := make([]string, len(d.States))
		for i := range d.States {
			sig[i] = signature(d, block, i, syms)
		}
		newBlock, n := relabel(sig)
		if n == numBlocks {
			block = newBlock
			break
		}
		block, numBlocks = newBlock, n
	}

	return rebuild(d, block, numBlocks)
}

// signature encodes, for state i, which block each δ(i, σ) lands in
// (or a sentinel if σ has no outgoing edge), plus i's own block so
// that states in different blocks never collapse into the same
// signature purely by having identical transitions.
func signature(d *Model, block []int, i int, syms []charset.Symbol) string {
	b := make([]byte, 0, 5*(len(syms)+1))
	b = appendInt(b, block[i])
	for _, sym := range syms {
		target := -1
		for _, e := range d.States[i].Edges {
			if e.Symbol.Equal(sym) {
				target = block[e.To]
				break
			}
		}
		b = appendInt(b, target)
	}
	return string(b)
}

func appendInt(b []byte, v int) []byte {
	return append(b, byte(v>>24), byte(v>>16), byte(v>>8), byte(v), 0)
}

// relabel assigns a dense block id, in first-appearance order, to
// every distinct signature, and reports how many distinct blocks
// resulted.
func relabel(sig []string) ([]int, int) {
	ids := make(map[string]int, len(sig))
	block := make([]int, len(sig))
	next := 0
	for i, s := range sig {
		id, ok := ids[s]
		if !ok {
			id = next
			ids[s] = id
			next++
		}
		block[i] = id
	}
	return block, next
}

func allSame(block []int) bool {
	for _, b := range block {
		if b != block[0] {
			return false
		}
	}
	return true
}

// rebuild allocates one fresh state per block, using the first member
// of each block (in original state-id order) as its representative,
// and wires fresh edges by mapping every representative's target
// through block.
func rebuild(d *Model, block []int, numBlocks int) *Model {
	rep := make([]int, numBlocks)
	for i := range rep {
		rep[i] = -1
	}
	for i := range d.States {
		b := block[i]
		if rep[b] == -1 {
			rep[b] = i
		}
	}

	out := &Model{
		States:  make([]State, numBlocks),
		Initial: StateID(block[int(d.Initial)]),
		Symbols: make(map[charset.CharSet]charset.Symbol),
	}
	for b := 0; b < numBlocks; b++ {
		r := rep[b]
		out.States[b].Final = d.States[r].Final
		for _, e := range d.States[r].Edges {
			to := StateID(block[int(e.To)])
			out.States[b].Edges = append(out.States[b].Edges, Edge{Symbol: e.Symbol, To: to})
			out.Symbols[e.Symbol.Bits()] = e.Symbol
		}
		out.States[b].buildTable()
	}
	return out
}
