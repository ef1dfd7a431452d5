package core_test

import (
	"fmt"

	"github.com/katalvlaran/thiele/core"
	"github.com/katalvlaran/thiele/periodic"
)

// ExampleMolecule builds cyclohexene and inspects derived properties.
func ExampleMolecule() {
	m := core.NewMolecule()
	for i := 1; i <= 6; i++ {
		_ = m.AddAtomWithID(i, core.Atom{Element: periodic.C})
	}
	for i := 1; i <= 6; i++ {
		order := core.Single
		if i == 1 {
			order = core.Double
		}
		_ = m.AddBond(i, i%6+1, order)
	}

	h1, _ := m.Hydrogens(1)
	h3, _ := m.Hydrogens(3)
	rings, _ := m.SSSR()
	fmt.Println("hydrogens:", h1, h3)
	fmt.Println("sp2:", m.Hybridization(1) == core.HybridSP2)
	fmt.Println("rings:", rings)
	// Output:
	// hydrogens: 1 2
	// sp2: true
	// rings: [[1 2 3 4 5 6]]
}
