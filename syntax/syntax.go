// Package syntax compiles regex source text into a combinator tree.
// It is the one place in the repository where malformed input is an
// expected, recoverable outcome rather than a programmer error: every
// other package's constructors panic on misuse, but Parse always
// returns a *SyntaxError instead.
package syntax

import (
	"fmt"

	"github.com/alecthomas/participle/v2"

	"github.com/MaxXSoft/reX/combinator"
)

var parser = participle.MustBuild[grammar](participle.Lexer(regexLexer))

// SyntaxError reports where in a pattern string parsing failed.
// Offset is a byte position into the original pattern.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("regex syntax error at byte %d: %s", e.Offset, e.Msg)
}

// Parse compiles pattern into a combinator tree ready for Lower.
func Parse(pattern string) (combinator.Node, error) {
	g, err := parser.ParseString("", pattern)
	if err != nil {
		return nil, toSyntaxError(err)
	}
	return g.Alt.lower()
}

func toSyntaxError(err error) error {
	if perr, ok := err.(participle.Error); ok {
		return &SyntaxError{Offset: perr.Position().Offset, Msg: perr.Message()}
	}
	return &SyntaxError{Offset: 0, Msg: err.Error()}
}
