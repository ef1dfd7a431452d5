// SPDX-License-Identifier: MIT
// Package: thiele/builder
//
// variants_platonic.go - canonical data for Platonic solid cages.
//
// Determinism:
//   • Edge sets are listed with U < V in a fixed order; atoms are emitted in
//     index order, so atom ids are offset+index+1.

package builder

// PlatonicName enumerates the five Platonic solids.
type PlatonicName int

// String returns the solid name, or "Unknown".
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Dodecahedron:
		return "Dodecahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

// Enum values (stable ordering).
const (
	Tetrahedron  PlatonicName = iota // V=4,  E=6,  degree 3
	Cube                             // V=8,  E=12, degree 3
	Octahedron                       // V=6,  E=12, degree 4
	Dodecahedron                     // V=20, E=30, degree 3
	Icosahedron                      // V=12, E=30, degree 5
)

// link is one cage edge between atom indices U < V.
type link struct{ U, V int }

// platonicSizes maps each solid to its atom count.
var platonicSizes = map[PlatonicName]int{
	Tetrahedron:  4,
	Cube:         8,
	Octahedron:   6,
	Dodecahedron: 20,
	Icosahedron:  12,
}

// platonicEdgeSets maps each PlatonicName to its canonical shell edge list.
// Each edge is an unordered link{U,V}.
var platonicEdgeSets = map[PlatonicName][]link{
	// -------------------------------------------------------------------------
	// Tetrahedron: complete graph K4 on vertices 0..3.
	// -------------------------------------------------------------------------
	Tetrahedron: {
		{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 3},
		{U: 1, V: 2}, {U: 1, V: 3},
		{U: 2, V: 3},
	},

	// -------------------------------------------------------------------------
	// Cube: two 4-cycles (bottom/top faces) + 4 vertical edges.
	//
	// Layout:
	//   Bottom face: 0-1-2-3-0
	//   Top face:    4-5-6-7-4
	//   Verticals:   0-4, 1-5, 2-6, 3-7
	// -------------------------------------------------------------------------
	Cube: {
		// bottom cycle
		{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 0},
		// verticals
		{U: 0, V: 4}, {U: 1, V: 5}, {U: 2, V: 6}, {U: 3, V: 7},
		// top cycle
		{U: 4, V: 5}, {U: 4, V: 7}, {U: 5, V: 6}, {U: 6, V: 7},
	},

	// -------------------------------------------------------------------------
	// Octahedron: 6 vertices, 12 edges; degree 4 at each vertex.
	//
	// Layout (one of standard labelings): vertices {0,1} are "poles",
	// equatorial ring {2,3,4,5}. Each pole connects to all equator vertices;
	// equator connects as two opposite pairs to maintain degree 4.
	// -------------------------------------------------------------------------
	Octahedron: {
		{U: 0, V: 2}, {U: 0, V: 3}, {U: 0, V: 4}, {U: 0, V: 5},
		{U: 1, V: 2}, {U: 1, V: 3}, {U: 1, V: 4}, {U: 1, V: 5},
		{U: 2, V: 4}, {U: 2, V: 5}, {U: 3, V: 4}, {U: 3, V: 5},
	},

	// -------------------------------------------------------------------------
	// Dodecahedron: 20 vertices, 30 edges; 3-regular (each vertex degree 3).
	//
	// Canonical construction used here:
	//   • Top pentagon:    0-1-2-3-4-0
	//   • Bottom pentagon: 5-6-7-8-9-5
	//   • Middle ring:     10-11-12-13-14-15-16-17-18-19-10  (10-cycle)
	//   • Spokes:
	//       Top    0→10, 1→12, 2→14, 3→16, 4→18   (even middle indices)
	//       Bottom 5→11, 6→13, 7→15, 8→17, 9→19   (odd  middle indices)
	//
	// This yields the standard dodecahedral graph (isomorphic to the dual of the
	// icosahedron), with deterministic labeling and pre-sorted edges.
	// -------------------------------------------------------------------------
	Dodecahedron: {
		// top pentagon
		{U: 0, V: 1}, {U: 0, V: 4}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4},
		// bottom pentagon
		{U: 5, V: 6}, {U: 5, V: 9}, {U: 6, V: 7}, {U: 7, V: 8}, {U: 8, V: 9},
		// middle ring (10-cycle; store with U<V and lexicographic order)
		{U: 10, V: 11}, {U: 10, V: 19}, {U: 11, V: 12}, {U: 12, V: 13}, {U: 13, V: 14},
		{U: 14, V: 15}, {U: 15, V: 16}, {U: 16, V: 17}, {U: 17, V: 18}, {U: 18, V: 19},
		// spokes to top (even middle indices)
		{U: 0, V: 10}, {U: 1, V: 12}, {U: 2, V: 14}, {U: 3, V: 16}, {U: 4, V: 18},
		// spokes to bottom (odd middle indices)
		{U: 5, V: 11}, {U: 6, V: 13}, {U: 7, V: 15}, {U: 8, V: 17}, {U: 9, V: 19},
	},

	// -------------------------------------------------------------------------
	// Icosahedron: 12 vertices, 30 edges; 5-regular (each vertex degree 5).
	//
	// Canonical construction used here (standard “two pentagon rings + poles”):
	//   • Top pole:    0
	//   • Top ring:    1-2-3-4-5-1
	//   • Bottom ring: 6-7-8-9-10-6
	//   • Bottom pole: 11
	//   • Edges:
	//       – Pole connections:   0 to {1..5}; 11 to {6..10}
	//       – Ring cycles:        (top) 1-2-3-4-5-1; (bottom) 6-7-8-9-10-6
	//       – Cross connections:  Ti connects to Bi and B(i+1 mod 5)
	//
	// This yields the classical icosahedral graph (dual to the dodecahedral graph),
	// with deterministic labeling and pre-sorted edges.
	// -------------------------------------------------------------------------
	Icosahedron: {
		// top pole to top ring
		{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 3}, {U: 0, V: 4}, {U: 0, V: 5},
		// top ring cycle
		{U: 1, V: 2}, {U: 1, V: 5}, {U: 2, V: 3}, {U: 3, V: 4}, {U: 4, V: 5},
		// cross (top→bottom)
		{U: 1, V: 6}, {U: 1, V: 7}, {U: 2, V: 7}, {U: 2, V: 8}, {U: 3, V: 8},
		{U: 3, V: 9}, {U: 4, V: 9}, {U: 4, V: 10}, {U: 5, V: 6}, {U: 5, V: 10},
		// bottom ring cycle
		{U: 6, V: 7}, {U: 6, V: 10}, {U: 7, V: 8}, {U: 8, V: 9}, {U: 9, V: 10},
		// bottom pole to bottom ring
		{U: 6, V: 11}, {U: 7, V: 11}, {U: 8, V: 11}, {U: 9, V: 11}, {U: 10, V: 11},
	},
}
