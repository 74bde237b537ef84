package rope

// Delete removes the n characters starting at character index pos,
// clamping both to the rope's current bounds. Deleting past the end of
// the rope, or calling Delete on an empty rope, is a no-op rather than a
// panic — unlike Insert's UTF-8 precondition, there is no way to pass
// Delete a malformed argument.
func (r *Rope) Delete(pos, n int) {
	if n <= 0 || r.chars == 0 {
		return
	}
	if pos < 0 {
		pos = 0
	}
	if pos >= r.chars {
		return
	}
	if pos+n > r.chars {
		n = r.chars - pos
	}

	p := r.locate(pos)

	cur := p.pred[0]
	if cur == nil {
		cur = r.head[0].next
	}
	consumed := p.consumed[0]

	for n > 0 && cur != nil {
		available := cur.chars - consumed

		if n < available {
			r.deleteWithinNode(p, cur, consumed, n)
			return
		}

		removed := available
		if consumed > 0 {
			r.truncateNodeTail(p, cur, consumed)
		} else {
			r.spliceNode(&p, cur)
		}
		n -= removed

		if p.pred[0] == nil {
			cur = r.head[0].next
		} else {
			cur = p.pred[0].levels[0].next
		}
		consumed = 0
	}
}

// deleteWithinNode removes the count characters starting at offset
// inside n, without n losing its place in the skip list. n survives,
// shorter.
func (r *Rope) deleteWithinNode(p path, n *node, offset, count int) {
	buf := n.bytes()
	start := byteOffsetForChars(buf, offset)
	end := byteOffsetForChars(buf, offset+count)
	removedBytes := end - start

	copy(n.buf[start:n.used-removedBytes], n.buf[end:n.used])
	n.used -= removedBytes
	n.chars -= count

	r.adjustNodeSkip(p, n, -count)

	r.chars -= count
	r.bytes -= removedBytes
}

// truncateNodeTail drops n's content from keepChars onward, keeping the
// prefix n already holds before the deletion point. n survives as the
// predecessor of whatever comes next; nothing about its position in the
// skip list changes.
func (r *Rope) truncateNodeTail(p path, n *node, keepChars int) {
	keepBytes := byteOffsetForChars(n.bytes(), keepChars)
	removedChars := n.chars - keepChars
	removedBytes := n.used - keepBytes

	n.used = keepBytes
	n.chars = keepChars

	r.adjustNodeSkip(p, n, -removedChars)

	r.chars -= removedChars
	r.bytes -= removedBytes
}

// spliceNode removes n entirely from every level it participates in,
// rewriting each level's real predecessor (p.pred[l], or the head slot)
// to point past n while folding n's skip-chars, minus n's own
// characters, into the predecessor's. Levels above n's height only need their spanning
// entry's count reduced, since n was never structurally part of those
// chains.
//
// p.pred itself is left untouched: the predecessor's identity at every
// level is unaffected by splicing out one of its successors, so the
// same p keeps working across repeated calls as Delete walks forward
// removing whole nodes.
func (r *Rope) spliceNode(p *path, n *node) {
	h := n.height()

	for l := 0; l < h && l < p.height; l++ {
		var pred *forwardEntry
		if p.pred[l] == nil {
			pred = &r.head[l]
		} else {
			pred = &p.pred[l].levels[l]
		}
		skip := pred.skip
		pred.next = n.levels[l].next
		pred.skip = skip + n.levels[l].skip - n.chars
	}
	for l := h; l < p.height; l++ {
		if p.pred[l] == nil {
			r.head[l].skip -= n.chars
		} else {
			p.pred[l].levels[l].skip -= n.chars
		}
	}

	r.chars -= n.chars
	r.bytes -= n.used

	for r.height > 0 && r.head[r.height-1].next == nil {
		r.height--
	}
	p.height = r.height

	r.putNode(n)
}
