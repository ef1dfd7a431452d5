// Package core provides the Molecule container consumed by ring perception
// and aromaticity normalization: atoms keyed by positive integer ids, bonds
// stored as values in mirrored neighbor maps, and a handful of derived
// per-atom properties.
//
// Model:
//
//   - Atom{Element, Charge, Radical}: atomic number, formal charge, radical flag.
//   - BondOrder: Single(1), Double(2), Triple(3), Aromatic(4), Special(8).
//     Special bonds describe coordination/dative links and are invisible to
//     ring perception (Connectivity, SSSR, RingsCount).
//   - Implicit hydrogen count per atom: known or unknown. Unknown arises for
//     heteroatoms with two aromatic bonds, where the count cannot be derived
//     from bond orders alone (pyrrole vs pyridine).
//   - Hybridization tag per atom: HybridSP3(1), HybridSP2(2), HybridSP(3),
//     HybridAromatic(4).
//
// Bond storage:
//
//	bonds[n][m] == bonds[m][n]   // always, for every bond
//
// AddBond, DeleteBond and SetBondOrder are the only writers and always touch
// both directions. AddBond/DeleteBond recompute hybridization and implicit
// hydrogens of both endpoints; SetBondOrder is a raw write used by batch
// algorithms that recompute afterwards.
//
// Derived caches (SSSR, ring sizes per atom, connected components) are
// built lazily and dropped by FlushCache. Structural mutators flush on their
// own; raw setters (SetBondOrder, SetCharge, ...) leave that to the caller.
//
// Determinism:
//
//	Atoms(), Neighbors() and Components() return ids in ascending order.
//
// Concurrency:
//
//	A Molecule is not safe for concurrent mutation. One conversion in
//	flight per molecule; clone before handing a molecule to another
//	goroutine.
//
// Errors:
//
//	ErrAtomNotFound   - an operation referenced a missing atom.
//	ErrBondNotFound   - an operation referenced a missing bond.
//	ErrBondExists     - AddBond on an already bonded pair.
//	ErrLoopNotAllowed - AddBond(n, n).
//	ErrBadBondOrder   - order outside {1, 2, 3, 4, 8}.
//	ErrDuplicateAtom  - AddAtomWithID with an id already in use.
//	ErrBadAtomID      - AddAtomWithID with a non-positive id.
//	ErrUnknownElement - atomic number outside the periodic table.
package core
