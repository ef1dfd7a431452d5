package sssr

import "math/big"

// span is a GF(2) cycle space spanned by accepted rings, each ring stored
// as a bitset of its bonds and reduced to echelon form by leading bit.
type span struct {
	bonds map[[2]int]int
	rows  map[int]*big.Int
}

func newSpan() *span {
	return &span{bonds: make(map[[2]int]int), rows: make(map[int]*big.Int)}
}

func (s *span) vector(r Ring) *big.Int {
	v := new(big.Int)
	for i, n := range r {
		m := r[(i+1)%len(r)]
		if m < n {
			n, m = m, n
		}
		bit, ok := s.bonds[[2]int{n, m}]
		if !ok {
			bit = len(s.bonds)
			s.bonds[[2]int{n, m}] = bit
		}
		v.SetBit(v, bit, v.Bit(bit)^1)
	}
	return v
}

// add inserts r and reports whether it was independent of the rings added
// before. Dependent rings leave the span untouched.
func (s *span) add(r Ring) bool {
	v := s.vector(r)
	for v.Sign() != 0 {
		lead := v.BitLen() - 1
		row, ok := s.rows[lead]
		if !ok {
			s.rows[lead] = v
			return true
		}
		v = new(big.Int).Xor(v, row)
	}
	return false
}
