// Package aromatic converts molecules between the Kekulé form (explicit
// alternating single/double ring bonds) and the Thiele form (one unified
// aromatic bond order), and validates aromatic ring systems.
//
// Operations:
//
//	Thiele(m, opts...)          - aromatize in place; reports whether any ring changed.
//	Kekule(m, opts...)          - kekulize in place; reports whether any aromatic ring was found.
//	EnumerateKekule(m, opts...) - lazy sequence of every Kekulé form, as independent clones.
//	CheckThiele(m, fast)        - validate without mutation.
//
// Thiele works directly on the SSSR: a ring of four to seven atoms is
// benzene-like when every atom is sp2 B, C, N, O, P or S, and pyrrole-like
// when exactly one atom is sp3 and that atom can donate a lone pair.
// Hückel's rule is not applied.
//
// Kekule classifies every atom of the aromatic skeleton before searching:
//
//	fixed   - zero ring double bonds (exocyclic double bond, NH, O, S, ...)
//	pyrrole - zero or one (ambiguous hydrogen count, anions, boron)
//	plain   - exactly one
//
// and then runs an iterative backtracking walk per connected skeleton
// component. The walk keeps an explicit stack of branches so enumeration
// can stop and resume between forms; components are combined lazily.
//
// Before classification a fixed table of repair rules (FixRules) rewrites
// charge-separated encodings such as aromatic N-oxides and metal-organic
// complexes.
//
// Determinism: ring order follows the SSSR, atoms are visited in ascending
// id order, and forms are enumerated in a stable order for a given input.
//
// Concurrency: functions never share state across calls. A molecule must
// not be mutated by anyone else while a conversion or enumeration runs.
package aromatic
