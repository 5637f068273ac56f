package syntax

import "github.com/alecthomas/participle/v2/lexer"

// regexLexer tokenizes one byte-worth of meaning at a time: every
// metacharacter gets its own named rule, and the fallback rule grabs
// exactly one rune so two adjacent literal characters are never
// merged into a single token the way participle's default
// scanner-based lexer would merge, say, two consecutive letters into
// one Ident. Rule order matters: lexer.MustSimple tries rules
// top-to-bottom, so Escape (which starts with the same backslash that
// would otherwise be a bare, illegal metacharacter) must come first,
// and Char's pattern excludes a lone backslash so a trailing `\` with
// nothing after it falls through every rule and is reported as an
// unexpected token rather than silently taken as a literal.
var regexLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Escape", Pattern: `(?s)\\.`},
	{Name: "LBracket", Pattern: `\[`},
	{Name: "RBracket", Pattern: `\]`},
	{Name: "Caret", Pattern: `\^`},
	{Name: "Dash", Pattern: `-`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	{Name: "Pipe", Pattern: `\|`},
	{Name: "Star", Pattern: `\*`},
	{Name: "Plus", Pattern: `\+`},
	{Name: "Question", Pattern: `\?`},
	{Name: "Char", Pattern: `(?s)[^\\]`},
})
