package syntax

import (
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/MaxXSoft/reX/charset"
	"github.com/MaxXSoft/reX/combinator"
)

// Grammar (left to right):
//
//	Pattern     = Alternation .
//	Alternation = Concat ( '|' Concat )* .
//	Concat      = Repeat* .
//	Repeat      = Atom ( '*' | '+' | '?' )? .
//	Atom        = '(' Alternation ')' | Class | Escape | Char .
//	Class       = '[' '^'? ClassItem+ ']' .
//	ClassItem   = Char ('-' Char)? .
type grammar struct {
	Alt *Alternation `parser:"@@"`
}

type Alternation struct {
	Concats []*Concat `parser:"@@ ('|' @@)*"`
}

type Concat struct {
	Repeats []*Repeat `parser:"@@*"`
}

type Repeat struct {
	Atom *Atom  `parser:"@@"`
	Op   string `parser:"@('*' | '+' | '?')?"`
}

type Atom struct {
	Pos    lexer.Position
	Group  *Alternation `parser:"  '(' @@ ')'"`
	Class  *Class       `parser:"| @@"`
	Escape string       `parser:"| @Escape"`
	Char   string       `parser:"| @Char"`
}

type Class struct {
	Negate bool         `parser:"'[' @'^'?"`
	Items  []*ClassItem `parser:"@@+ ']'"`
}

type ClassItem struct {
	Pos lexer.Position
	Lo  string `parser:"@Char"`
	Hi  string `parser:"('-' @Char)?"`
}

func (a *Alternation) lower() (combinator.Node, error) {
	n, err := a.Concats[0].lower()
	if err != nil {
		return nil, err
	}
	for _, c := range a.Concats[1:] {
		rhs, err := c.lower()
		if err != nil {
			return nil, err
		}
		n = combinator.Alt(n, rhs)
	}
	return n, nil
}

func (c *Concat) lower() (combinator.Node, error) {
	if len(c.Repeats) == 0 {
		return combinator.Nil(), nil
	}
	n, err := c.Repeats[0].lower()
	if err != nil {
		return nil, err
	}
	for _, r := range c.Repeats[1:] {
		rhs, err := r.lower()
		if err != nil {
			return nil, err
		}
		n = combinator.Concat(n, rhs)
	}
	return n, nil
}

func (r *Repeat) lower() (combinator.Node, error) {
	n, err := r.Atom.lower()
	if err != nil {
		return nil, err
	}
	switch r.Op {
	case "*":
		return n.Star(), nil
	case "+":
		return n.Plus(), nil
	case "?":
		return n.Opt(), nil
	default:
		return n, nil
	}
}

func (a *Atom) lower() (combinator.Node, error) {
	switch {
	case a.Group != nil:
		return a.Group.lower()
	case a.Class != nil:
		return a.Class.lower()
	case a.Escape != "":
		return combinator.Sym(charset.Char(a.Escape[len(a.Escape)-1])), nil
	default:
		return combinator.Sym(charset.Char(a.Char[0])), nil
	}
}

func (c *Class) lower() (combinator.Node, error) {
	var bits charset.CharSet
	for _, item := range c.Items {
		lo := item.Lo[0]
		if item.Hi != "" {
			hi := item.Hi[0]
			if lo > hi {
				return nil, &SyntaxError{
					Offset: item.Pos.Offset,
					Msg:    "character class range is backwards (lo > hi)",
				}
			}
			bits = bits.Union(charset.FromRange(lo, hi))
		} else {
			bits.Insert(lo)
		}
	}
	if c.Negate {
		bits = bits.Complement()
	}
	return combinator.Sym(charset.Set(bits)), nil
}
