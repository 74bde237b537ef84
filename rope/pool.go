package rope

// nodePoolCapacity bounds how many spliced-out nodes a Rope keeps ready
// for reuse. This is an ambient optimization, not an observable
// behavior: a Rope with pooling disabled (nodePoolCapacity == 0) would
// produce byte-identical traversals, just with more garbage.
const nodePoolCapacity = 32

// getNode returns a node with the given height, preferring one from the
// free list over a fresh allocation.
func (r *Rope) getNode(height int) *node {
	if n := len(r.pool); n > 0 {
		last := r.pool[n-1]
		r.pool = r.pool[:n-1]
		if len(last.levels) != height {
			last.levels = make([]forwardEntry, height)
		} else {
			var zero forwardEntry
			for i := range last.levels {
				last.levels[i] = zero
			}
		}
		return last
	}
	return newNode(height)
}

// putNode returns a spliced-out node to the free list for reuse. The
// node must not be referenced from the rope any more.
func (r *Rope) putNode(n *node) {
	if len(r.pool) >= nodePoolCapacity {
		return
	}
	n.reset()
	r.pool = append(r.pool, n)
}
