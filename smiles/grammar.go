package smiles

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// line is a dot-separated list of disconnected chains.
type line struct {
	Chains []*chain `@@ ( "." @@ )*`
}

type chain struct {
	Head  *atomToken `@@`
	Links []*link    `@@*`
}

// link follows an atom: a branch, a ring closure label or the next atom,
// the last two optionally prefixed by a bond symbol.
type link struct {
	Branch *branch    `  "(" @@ ")"`
	Bond   string     `| ( @Bond?`
	Ring   string     `    ( @Ring`
	Atom   *atomToken `    | @@ ) )`
}

type branch struct {
	Bond  string `@Bond?`
	Chain *chain `@@`
}

type atomToken struct {
	Organic string `  @Organic`
	Bracket string `| @Bracket`
}

var lineLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Bracket", Pattern: `\[[^\]]*\]`},
	{Name: "Organic", Pattern: `Cl|Br|[BCNOPSFI]|[bcnops]`},
	{Name: "Ring", Pattern: `%[0-9]{2}|[0-9]`},
	{Name: "Bond", Pattern: `[-=#$:~/\\]`},
	{Name: "Punct", Pattern: `[().]`},
})

var parseLine = participle.MustBuild[line](
	participle.Lexer(lineLexer),
)

// bracketAtom is the content of [...]: isotope, symbol, chirality,
// hydrogen count, charge and atom class. Isotope, chirality and class are
// accepted and dropped.
type bracketAtom struct {
	Isotope   *int    `"[" @Int?`
	Symbol    string  `@Symbol`
	Chiral    string  `@Chiral?`
	Hydrogens *hcount `@@?`
	Charge    string  `@Charge?`
	Class     *int    `( ":" @Int )? "]"`
}

type hcount struct {
	Count *int `"H" @Int?`
}

var bracketLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Symbol", Pattern: `[A-Z][a-z]?|se|as|te|[bcnops]`},
	{Name: "Chiral", Pattern: `@@?`},
	{Name: "Charge", Pattern: `[-+][0-9]+|\++|-+`},
	{Name: "Punct", Pattern: `[\[\]:]`},
})

var parseBracket = participle.MustBuild[bracketAtom](
	participle.Lexer(bracketLexer),
)
