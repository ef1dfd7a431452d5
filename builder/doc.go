// Package builder assembles deterministic molecule fixtures for ring
// perception and aromaticity tests, examples and benchmarks.
//
// The package offers:
//
//   - BuildMolecule(bopts, cons...): one orchestrator that resolves options
//     and runs constructors in order on a fresh core.Molecule.
//   - Topology constructors, each appending a new fragment:
//     – Cycle(n):            n-membered ring.
//     – Path(n):             open chain.
//     – Polyacene(n):        n linearly fused six-membered rings.
//     – PlatonicSolid(name): cubane-like cages (Tetrahedron … Icosahedron).
//   - Editing constructors:
//     – Substitute(z, p):    random replacement of ring CH atoms by z.
//   - Options:
//     – WithElement(z):      element of added atoms (default carbon).
//     – WithBondOrder(o), WithAromatic(): order of added bonds (default single).
//     – WithKekule():        alternating single/double bonds.
//     – WithSeed(s), WithRand(r): RNG for stochastic constructors.
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors return sentinel errors (ErrTooFewAtoms, ErrInvalidProbability,
//     ErrNeedRandSource, ErrOptionViolation, ErrConstructFailed) wrapped with
//     method context; they never panic.
//   - Equal inputs, options and seeds give identical molecules, atom ids included.
package builder
