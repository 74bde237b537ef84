package rope

// Insert inserts s into r so that its first codepoint appears at
// character index min(pos, r.CharCount()). Empty s is a no-op. s must
// be valid UTF-8 — this is a precondition, not a recoverable error:
// invalid input panics before any mutation happens, so a recovering
// caller observes r unchanged.
func (r *Rope) Insert(pos int, s string) {
	if len(s) == 0 {
		return
	}
	if !validUTF8(s) {
		panic("rope: Insert: invalid UTF-8")
	}

	if pos < 0 {
		pos = 0
	}
	if pos > r.chars {
		pos = r.chars
	}

	p := r.locate(pos)
	offsetBytes := p.byteOffset()
	pred0 := p.pred[0]

	data := []byte(s)

	if pred0 != nil && pred0.used+len(data) <= NodeCapacity {
		r.insertFastPath(pred0, offsetBytes, data, p)
		return
	}

	r.insertSlowPath(p, pos, offsetBytes, data)
}

// insertFastPath handles the common case: the target node has room, so
// the new bytes are memmoved into place in that one node. Node count and
// heights are unchanged; only byte/char counts and skip-chars along the
// path grow.
func (r *Rope) insertFastPath(n *node, offsetBytes int, data []byte, p path) {
	tail := n.used - offsetBytes
	if tail > 0 {
		copy(n.buf[offsetBytes+len(data):n.used+len(data)], n.buf[offsetBytes:n.used])
	}
	copy(n.buf[offsetBytes:offsetBytes+len(data)], data)
	n.used += len(data)

	added := countChars(data)
	n.chars += added

	r.adjustNodeSkip(p, n, added)

	r.chars += added
	r.bytes += len(data)
}

// insertSlowPath handles the case where the target node has no room:
// detach any provisional suffix from the target node, chunk the new
// text into pieces no larger than NodeCapacity, thread each piece in as
// a new node, then re-insert the detached suffix as one final piece.
func (r *Rope) insertSlowPath(p path, pos, offsetBytes int, data []byte) {
	var suffix []byte
	suffixChars := 0

	if pred0 := p.pred[0]; pred0 != nil && offsetBytes < pred0.used {
		suffix = append([]byte(nil), pred0.buf[offsetBytes:pred0.used]...)
		suffixChars = countChars(suffix)

		pred0.used = offsetBytes
		pred0.chars -= suffixChars

		if suffixChars > 0 {
			r.adjustNodeSkip(p, pred0, -suffixChars)
			r.chars -= suffixChars
			r.bytes -= len(suffix)
		}
	}

	curPos := pos
	offset := 0
	for offset < len(data) {
		pieceLen := 0
		for offset+pieceLen < len(data) {
			cs := codepointSize(data[offset+pieceLen])
			if pieceLen+cs > NodeCapacity {
				break
			}
			pieceLen += cs
		}

		piece := data[offset : offset+pieceLen]
		r.insertNewNodeAt(&p, curPos, piece)
		curPos += countChars(piece)
		offset += pieceLen
	}

	if len(suffix) > 0 {
		r.insertNewNodeAt(&p, curPos, suffix)
	}
}

// insertNewNodeAt allocates a node of random height, threads it into
// every level up to that height, grows the rope's head vector if the
// height exceeds H, and bumps skip-chars on levels the new node doesn't
// reach. p is updated in place so a following call (another chunk, or
// the re-inserted suffix) threads in after this node.
func (r *Rope) insertNewNodeAt(p *path, pos int, piece []byte) {
	pieceChars := countChars(piece)

	hNew := r.heightSource.Height()
	if hNew > MaxHeight {
		hNew = MaxHeight
	}

	newNode := r.getNode(hNew)
	newNode.appendBytes(piece)

	H := r.height
	if hNew > H {
		r.ensureHeadCapacity(hNew)
		r.height = hNew
	}

	for l := 0; l < hNew; l++ {
		if l < H {
			var prevNext *node
			var prevSkip int
			if p.pred[l] == nil {
				prevNext, prevSkip = r.head[l].next, r.head[l].skip
			} else {
				prevNext, prevSkip = p.pred[l].levels[l].next, p.pred[l].levels[l].skip
			}

			newNode.levels[l] = forwardEntry{next: prevNext, skip: pieceChars + prevSkip - p.consumed[l]}

			if p.pred[l] == nil {
				r.head[l] = forwardEntry{next: newNode, skip: p.consumed[l]}
			} else {
				p.pred[l].levels[l] = forwardEntry{next: newNode, skip: p.consumed[l]}
			}
		} else {
			// Growing a level that didn't exist before this node.
			r.head[l] = forwardEntry{next: newNode, skip: pos}
			newNode.levels[l] = forwardEntry{next: nil, skip: r.chars - pos + pieceChars}
		}

		p.pred[l] = newNode
		p.consumed[l] = pieceChars
	}

	for l := hNew; l < H; l++ {
		if p.pred[l] == nil {
			r.head[l].skip += pieceChars
		} else {
			p.pred[l].levels[l].skip += pieceChars
		}
		p.consumed[l] += pieceChars
	}

	p.height = r.height
	r.chars += pieceChars
	r.bytes += len(piece)
}
