package sssr

// Canonical returns the canonical form of a ring: rotated to start at the
// smallest atom id and oriented so that the second element is the smaller
// of its two ring neighbors. Any rotation or reflection of the same cycle
// maps to the same canonical ring. The input is not modified.
func Canonical(r Ring) Ring {
	if len(r) < 3 {
		return append(Ring(nil), r...)
	}
	ndx := 0
	for i, n := range r {
		if n < r[ndx] {
			ndx = i
		}
	}
	last := len(r) - 1
	switch {
	case ndx == 0:
		if r[last] < r[1] {
			return append(Ring{r[0]}, reversed(r[1:])...)
		}
		return append(Ring(nil), r...)
	case ndx == last:
		if r[0] > r[last-1] {
			return reversed(r)
		}
		return append(Ring{r[last]}, r[:last]...)
	case r[ndx+1] > r[ndx-1]:
		return append(reversed(r[:ndx+1]), reversed(r[ndx+1:])...)
	default:
		return append(append(Ring(nil), r[ndx:]...), r[:ndx]...)
	}
}

// scissors cuts the ring at the n-m link and returns the remaining path
// from n to m around the ring.
func scissors(r Ring, n, m int) Ring {
	ndx, mdx := index(r, n), index(r, m)
	last := len(r) - 1
	switch {
	case ndx == 0:
		if mdx == 1 {
			return append(Ring{n}, reversed(r[1:])...)
		}
		return append(Ring(nil), r...)
	case ndx == last:
		if mdx == 0 {
			return reversed(r)
		}
		return append(Ring{n}, r[:last]...)
	case ndx < mdx:
		return append(reversed(r[:ndx+1]), reversed(r[ndx+1:])...)
	default:
		return append(append(Ring(nil), r[ndx:]...), r[:ndx]...)
	}
}

// ringAdjacency maps each ring atom to its two ring neighbors.
func ringAdjacency(r Ring) map[int][]int {
	adj := make(map[int][]int, len(r))
	l := len(r)
	for i, n := range r {
		adj[n] = []int{r[(i-1+l)%l], r[(i+1)%l]}
	}
	return adj
}

// join closes a contour from a forward path and the interior of a second
// path running back to its start.
func join(head, tail Ring) Ring {
	out := append(Ring(nil), head...)
	if len(tail) > 2 {
		out = append(out, tail[1:len(tail)-1]...)
	}
	return out
}

func reversed(r []int) Ring {
	out := make(Ring, len(r))
	for i, n := range r {
		out[len(r)-1-i] = n
	}
	return out
}

func index(r Ring, n int) int {
	for i, x := range r {
		if x == n {
			return i
		}
	}
	return -1
}

func simple(r Ring) bool {
	seen := make(map[int]struct{}, len(r))
	for _, n := range r {
		if _, ok := seen[n]; ok {
			return false
		}
		seen[n] = struct{}{}
	}
	return true
}
