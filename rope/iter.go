package rope

import "iter"

// Iter returns a range-over-func iterator yielding the rope's text one
// node buffer at a time, in order. It's a read-only view over the
// level-0 chain, not a stable cursor: its validity does not extend
// across a mutating call, so a delete or insert in the middle of
// iteration can yield stale or skipped text. Callers that need to edit
// while iterating should finish the loop first.
func (r *Rope) Iter() iter.Seq[string] {
	return func(yield func(string) bool) {
		for n := r.head[0].next; n != nil; n = n.levels[0].next {
			if !yield(string(n.bytes())) {
				return
			}
		}
	}
}
