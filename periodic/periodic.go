// Package periodic is a minimal element model: symbols, atomic numbers and
// the standard valences used to derive implicit hydrogen counts.
//
// Only the data needed by ring perception and aromaticity normalization is
// kept here. Valences of charged atoms follow the isoelectronic rule: an
// atom with charge q behaves like the element with atomic number Z-q of the
// same period (N+ like C, O+ like N, C- like N, B- like C).
package periodic

import "errors"

// ErrUnknownElement is returned for symbols or numbers outside the table.
var ErrUnknownElement = errors.New("periodic: unknown element")

// Atomic numbers referenced by name elsewhere in the module.
const (
	H  = 1
	B  = 5
	C  = 6
	N  = 7
	O  = 8
	F  = 9
	Si = 14
	P  = 15
	S  = 16
	Cl = 17
	Ti = 22
	V  = 23
	Cr = 24
	Mn = 25
	Fe = 26
	Co = 27
	Ni = 28
	Cu = 29
	Ge = 32
	As = 33
	Se = 34
	Br = 35
	Zr = 40
	Nb = 41
	Mo = 42
	Ru = 44
	Pd = 46
	Ag = 47
	Sn = 50
	Te = 52
	I  = 53
	Hf = 72
	W  = 74
	Re = 75
	Ir = 77
	Au = 79
)

// symbols is indexed by atomic number; index 0 is unused.
var symbols = [...]string{"",
	"H", "He",
	"Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
	"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr",
	"Rb", "Sr", "Y", "Zr", "Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd",
	"In", "Sn", "Sb", "Te", "I", "Xe",
	"Cs", "Ba", "La", "Ce", "Pr", "Nd", "Pm", "Sm", "Eu", "Gd", "Tb", "Dy",
	"Ho", "Er", "Tm", "Yb", "Lu", "Hf", "Ta", "W", "Re", "Os", "Ir", "Pt",
	"Au", "Hg", "Tl", "Pb", "Bi", "Po", "At", "Rn",
	"Fr", "Ra", "Ac", "Th", "Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf",
	"Es", "Fm", "Md", "No", "Lr", "Rf", "Db", "Sg", "Bh", "Hs", "Mt", "Ds",
	"Rg", "Cn", "Nh", "Fl", "Mc", "Lv", "Ts", "Og",
}

var numbers = func() map[string]int {
	out := make(map[string]int, len(symbols))
	for z, s := range symbols {
		if z > 0 {
			out[s] = z
		}
	}
	return out
}()

// valences lists the allowed valences of neutral main-group elements in
// ascending order. Elements missing here (metals, noble gases) never get
// implicit hydrogens.
var valences = map[int][]int{
	H:  {1},
	B:  {3},
	C:  {4},
	N:  {3, 5},
	O:  {2},
	F:  {1},
	Si: {4},
	P:  {3, 5},
	S:  {2, 4, 6},
	Cl: {1, 3, 5, 7},
	Ge: {4},
	As: {3, 5},
	Se: {2, 4, 6},
	Br: {1, 3, 5},
	Sn: {2, 4},
	Te: {2, 4, 6},
	I:  {1, 3, 5, 7},
}

// Symbol returns the element symbol for atomic number z.
func Symbol(z int) (string, error) {
	if z <= 0 || z >= len(symbols) {
		return "", ErrUnknownElement
	}
	return symbols[z], nil
}

// Number returns the atomic number for a case-sensitive symbol ("Cl", not "CL").
func Number(symbol string) (int, error) {
	z, ok := numbers[symbol]
	if !ok {
		return 0, ErrUnknownElement
	}
	return z, nil
}

// Valid reports whether z is a known atomic number.
func Valid(z int) bool {
	return z > 0 && z < len(symbols)
}

// Valences returns the allowed valences of an atom of element z with the
// given formal charge. Radicals consume one bonding position. The result
// is empty when the element has no valence rule for that state.
func Valences(z, charge int, radical bool) []int {
	vs, ok := valences[z-charge]
	if !ok || !samePeriod(z, z-charge) {
		return nil
	}
	out := make([]int, 0, len(vs))
	for _, v := range vs {
		if radical {
			v--
		}
		if v >= 0 {
			out = append(out, v)
		}
	}
	return out
}

// period boundaries: last atomic number of each period.
var periodEnds = [...]int{2, 10, 18, 36, 54, 86, 118}

func period(z int) int {
	for i, end := range periodEnds {
		if z <= end {
			return i + 1
		}
	}
	return 0
}

func samePeriod(a, b int) bool {
	return b > 0 && period(a) == period(b)
}
