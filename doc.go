// Package thiele is an in-memory toolkit for ring perception and
// aromaticity of molecular graphs: it finds the smallest set of smallest
// rings, turns Kekulé structures into aromatic (Thiele) form and back, and
// enumerates every Kekulé form of an aromatic system.
//
// What is inside?
//
//	• Molecular graph: atoms with element, charge, radical and implicit
//	  hydrogens; bonds with order single, double, triple, aromatic or special
//	• Ring perception: SSSR over plain adjacency, cached per molecule
//	• Aromaticity: Thiele aromatization with quinone, tautomer and
//	  metal-organic repairs; Kekulization and lazy Kekulé enumeration
//	• Substructure queries: the fix-up rules behind the aromatic package
//	• SMILES: a reader and writer for the organic and bracket subsets
//	• Fixtures: deterministic rings, acenes and cages for tests and benchmarks
//
// Layout:
//
//	periodic/    element symbols, numbers and default valences
//	core/        Molecule, atoms, bonds, hydrogens, connectivity and rings
//	sssr/        smallest set of smallest rings over an adjacency map
//	query/       pattern molecules and subgraph mappings
//	aromatic/    Thiele, Kekule, EnumerateKekule and CheckThiele
//	smiles/      Parse and Format
//	builder/     molecule fixtures (Cycle, Polyacene, PlatonicSolid, …)
//	cmd/thiele   command line front end
//
// Quick ASCII example:
//
//	  C=C            c:c
//	 /   \          /   \
//	C     C   <->  c     c
//	 \\  //         \   /
//	  C-C            c:c
//
// benzene in one Kekulé form and in aromatic form.
//
//	go get github.com/katalvlaran/thiele
package thiele
