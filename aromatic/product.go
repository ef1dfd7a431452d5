package aromatic

import "iter"

// product lazily combines per-component forms into whole-molecule
// patches, last component varying fastest. Each component is pulled only
// as far as the combinations consumed so far require. With no components
// it yields a single empty patch.
func product(parts []iter.Seq2[[]bondPatch, error]) iter.Seq2[[]bondPatch, error] {
	return func(yield func([]bondPatch, error) bool) {
		if len(parts) == 0 {
			yield(nil, nil)
			return
		}
		src := make([]*cursor, len(parts))
		for i, p := range parts {
			src[i] = newCursor(p)
			defer src[i].stop()
		}
		idx := make([]int, len(parts))
		for _, c := range src {
			ok, err := c.at(0)
			if err != nil {
				yield(nil, err)
				return
			}
			if !ok {
				return
			}
		}
		for {
			var out []bondPatch
			for i, c := range src {
				out = append(out, c.cache[idx[i]]...)
			}
			if !yield(out, nil) {
				return
			}
			i := len(src) - 1
			for ; i >= 0; i-- {
				idx[i]++
				ok, err := src[i].at(idx[i])
				if err != nil {
					yield(nil, err)
					return
				}
				if ok {
					break
				}
				idx[i] = 0
			}
			if i < 0 {
				return
			}
		}
	}
}

// cursor memoizes the items already pulled from one sequence.
type cursor struct {
	next  func() ([]bondPatch, error, bool)
	stop  func()
	cache [][]bondPatch
	done  bool
}

func newCursor(seq iter.Seq2[[]bondPatch, error]) *cursor {
	next, stop := iter.Pull2(seq)
	return &cursor{next: next, stop: stop}
}

// at reports whether item k exists, pulling as needed.
func (c *cursor) at(k int) (bool, error) {
	for len(c.cache) <= k && !c.done {
		v, err, ok := c.next()
		switch {
		case !ok:
			c.done = true
		case err != nil:
			c.done = true
			return false, err
		default:
			c.cache = append(c.cache, v)
		}
	}
	return k < len(c.cache), nil
}
