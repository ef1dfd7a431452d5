// Package query matches small atom/bond patterns against a core.Molecule.
//
// A Query is a labeled graph: every query atom carries an AtomQuery
// constraint and every query bond a set of allowed bond orders.
// FindMappings enumerates every injective mapping of query atoms onto
// molecule atoms such that
//
//   - each mapped molecule atom satisfies its AtomQuery, and
//   - each query bond maps onto a molecule bond with an allowed order.
//
// Matching is not induced: extra molecule bonds between mapped atoms are
// ignored. Automorphic mappings are all reported.
//
// AtomQuery semantics: empty slices match anything; Charge and Radical are
// always compared (zero values mean neutral, closed shell).
//
// Options:
//
//   - WithinAtoms(ids...)  restricts candidate molecule atoms.
//
// Complexity: backtracking, worst case exponential in the query size;
// query atoms are visited in breadth-first order so that every atom after
// the first of its component is only tried against neighbors of an
// already mapped atom.
package query
