package smiles

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/thiele/core"
	"github.com/katalvlaran/thiele/periodic"
)

var (
	organic = map[string]bool{
		"B": true, "C": true, "N": true, "O": true, "P": true, "S": true,
		"F": true, "Cl": true, "Br": true, "I": true,
		"b": true, "c": true, "n": true, "o": true, "p": true, "s": true,
	}
	lowercase = map[int]bool{
		periodic.B: true, periodic.C: true, periodic.N: true, periodic.O: true, periodic.P: true,
		periodic.S: true, periodic.As: true, periodic.Se: true, periodic.Te: true,
	}
	lonePair = map[string]bool{"n": true, "o": true, "p": true, "s": true}
)

// writer emits one molecule in two passes: a depth-first pass that fixes
// the spanning tree and ring closures, then a pass that prints it.
type writer struct {
	m        *core.Molecule
	lower    map[int]bool
	rank     map[int]int
	children map[int][]int
	closures map[int][]int
	labels   map[[2]int]int
	used     map[int]bool
	sb       strings.Builder
}

// Format writes m as a SMILES string. Atoms are visited depth first from
// the smallest id of every fragment, neighbors in ascending id order, so
// the output is stable for a given molecule. Ring atoms with an aromatic
// bond are written lowercase where SMILES allows it.
//
// Radical flags have no SMILES form and are not written.
func Format(m *core.Molecule) string {
	w := &writer{
		m:        m,
		lower:    make(map[int]bool),
		rank:     make(map[int]int),
		children: make(map[int][]int),
		closures: make(map[int][]int),
		labels:   make(map[[2]int]int),
		used:     make(map[int]bool),
	}
	for _, n := range m.Atoms() {
		if !lowercase[m.Element(n)] {
			continue
		}
		for _, o := range m.Bonds(n) {
			if o == core.Aromatic {
				w.lower[n] = true
				break
			}
		}
	}
	var roots []int
	for _, n := range m.Atoms() {
		if _, ok := w.rank[n]; !ok {
			roots = append(roots, n)
			w.visit(n, 0)
		}
	}
	for i, n := range roots {
		if i > 0 {
			w.sb.WriteByte('.')
		}
		w.write(n, 0)
	}
	return w.sb.String()
}

func (w *writer) visit(n, parent int) {
	w.rank[n] = len(w.rank)
	for _, x := range w.m.Neighbors(n) {
		if x == parent {
			continue
		}
		if r, seen := w.rank[x]; seen {
			if r < w.rank[n] {
				w.closures[x] = append(w.closures[x], n)
				w.closures[n] = append(w.closures[n], x)
			}
			continue
		}
		w.children[n] = append(w.children[n], x)
		w.visit(x, n)
	}
}

func (w *writer) write(n, parent int) {
	if parent != 0 {
		w.sb.WriteString(w.bond(parent, n))
	}
	w.sb.WriteString(w.atom(n))
	for _, x := range w.closures[n] {
		key := [2]int{min(n, x), max(n, x)}
		if l, open := w.labels[key]; open {
			w.sb.WriteString(w.bond(x, n))
			w.sb.WriteString(label(l))
			delete(w.labels, key)
			delete(w.used, l)
			continue
		}
		l := 1
		for w.used[l] {
			l++
		}
		w.used[l] = true
		w.labels[key] = l
		w.sb.WriteString(label(l))
	}
	kids := w.children[n]
	for i, x := range kids {
		if i < len(kids)-1 {
			w.sb.WriteByte('(')
			w.write(x, n)
			w.sb.WriteByte(')')
		} else {
			w.write(x, n)
		}
	}
}

func (w *writer) atom(n int) string {
	a, _ := w.m.Atom(n)
	sym, _ := periodic.Symbol(a.Element)
	if w.lower[n] {
		sym = strings.ToLower(sym)
	}
	h, known := w.m.Hydrogens(n)
	want, derivable := w.m.ExpectedHydrogens(n)
	if organic[sym] && a.Charge == 0 && !a.Radical {
		if known == derivable && h == want {
			return sym
		}
		// pyridine-like ring atoms keep no hydrogen
		if w.lower[n] && known && h == 0 && !derivable && lonePair[sym] && w.m.Degree(n) == 2 {
			return sym
		}
	}

	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(sym)
	if known && h > 0 {
		b.WriteByte('H')
		if h > 1 {
			b.WriteString(strconv.Itoa(h))
		}
	}
	switch {
	case a.Charge == 1:
		b.WriteByte('+')
	case a.Charge == -1:
		b.WriteByte('-')
	case a.Charge > 1:
		b.WriteString("+" + strconv.Itoa(a.Charge))
	case a.Charge < -1:
		b.WriteString(strconv.Itoa(a.Charge))
	}
	b.WriteByte(']')
	return b.String()
}

func (w *writer) bond(n, k int) string {
	o, _ := w.m.BondOrder(n, k)
	both := w.lower[n] && w.lower[k]
	switch o {
	case core.Single:
		if both {
			return "-"
		}
	case core.Double:
		return "="
	case core.Triple:
		return "#"
	case core.Aromatic:
		if !both {
			return ":"
		}
	case core.Special:
		return "~"
	}
	return ""
}

func label(l int) string {
	if l < 10 {
		return strconv.Itoa(l)
	}
	return "%" + strconv.Itoa(l)
}
