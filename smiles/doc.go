// Package smiles reads and writes the subset of SMILES line notation needed
// to feed molecules to ring perception and aromaticity normalization.
//
// Supported:
//
//   - organic-subset atoms B C N O P S F Cl Br I and aromatic b c n o p s;
//   - bracket atoms [isotope? symbol chirality? H count? charge? class?],
//     aromatic se, as, te only inside brackets;
//   - bonds - = # : and '~' for special (coordination) bonds; / and \ are
//     read as single;
//   - branches, ring closures 0-9 and %nn, '.' fragments.
//
// Parse builds a core.Molecule with ids in order of appearance. Format is
// deterministic for a given molecule and Parse(Format(m)) reproduces the
// elements, charges, bonds and hydrogen counts of m.
//
// The grammar is declared as participle struct tags (grammar.go). Bracket
// contents are lexed separately, since the same letters mean different
// things inside and outside brackets.
package smiles
