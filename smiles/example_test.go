package smiles_test

import (
	"fmt"

	"github.com/katalvlaran/thiele/aromatic"
	"github.com/katalvlaran/thiele/smiles"
)

// ExampleParse aromatizes a Kekulé SMILES and writes it back.
func ExampleParse() {
	m, err := smiles.Parse("C1=CC=CN1")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if _, err := aromatic.Thiele(m); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(smiles.Format(m))
	// Output:
	// c1ccc[nH]1
}
