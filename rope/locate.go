package rope

// path is the predecessor/consumed-offset pair the locator produces for
// every active level, plus how many of those levels are meaningful.
// It's a fixed-size value (not a slice) so locate can live on the stack
// instead of allocating a descent path on every call.
type path struct {
	pred     [MaxHeight]*node // nil means the head slot is the predecessor
	consumed [MaxHeight]int
	height   int
}

// locate finds, for every level 0..H-1, the predecessor of character
// index pos and the character offset within that predecessor's span at
// which pos falls, by descending level by level and advancing across
// each level's forward pointers until the target position is pinned
// down.
//
// pos must already be clamped to [0, r.chars] by the caller.
func (r *Rope) locate(pos int) path {
	var p path
	p.height = r.height

	var e *node
	remaining := pos

	for level := r.height - 1; level >= 0; level-- {
		for {
			var entry forwardEntry
			if e == nil {
				entry = r.head[level]
			} else {
				entry = e.levels[level]
			}

			// Advance only while strictly past this entry's span:
			// equal lands us on this entry's predecessor, so an
			// insertion at a boundary goes into the earlier node.
			if remaining > entry.skip {
				remaining -= entry.skip
				e = entry.next
				continue
			}
			break
		}

		p.pred[level] = e
		p.consumed[level] = remaining
	}

	return p
}

// byteOffset converts the locator's level-0 result into a byte offset
// inside pred[0]'s buffer. Returns 0 for a nil predecessor (the head
// slot), since there is nothing to offset into.
func (p path) byteOffset() int {
	if p.pred[0] == nil {
		return 0
	}
	return byteOffsetForChars(p.pred[0].bytes(), p.consumed[0])
}
