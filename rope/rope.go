package rope

import "strings"

// Rope is a character-indexed skip list over UTF-8 text. The zero value
// is not usable; construct one with New or NewFromString.
//
// A Rope is not safe for concurrent use.
type Rope struct {
	chars  int // C
	bytes  int // B
	height int // H: max node height currently alive, or 0 when empty

	head []forwardEntry // head vector; len(head) >= height always (I6)
	pool []*node        // spliced-out nodes awaiting reuse

	heightSource HeightSource
}

// New creates an empty rope using the package's default height source.
func New() *Rope {
	return &Rope{
		head:         make([]forwardEntry, initialHeadCap),
		heightSource: DefaultHeightSource,
	}
}

// NewWithHeightSource creates an empty rope drawing node heights from hs.
// Tests use this to pin deterministic skip-list shapes.
func NewWithHeightSource(hs HeightSource) *Rope {
	r := New()
	r.heightSource = hs
	return r
}

// NewFromString creates a rope containing s. s must be valid UTF-8;
// invalid input is a contract violation and panics.
func NewFromString(s string) *Rope {
	r := New()
	r.Insert(0, s)
	return r
}

// CharCount returns the number of Unicode codepoints in the rope. O(1).
func (r *Rope) CharCount() int {
	return r.chars
}

// ByteCount returns the number of UTF-8 bytes the rope's text occupies. O(1).
func (r *Rope) ByteCount() int {
	return r.bytes
}

// String returns the rope's text as a single allocated string, in O(B).
// Use sparingly on very large ropes.
func (r *Rope) String() string {
	var sb strings.Builder
	sb.Grow(r.bytes)
	for n := r.head[0].next; n != nil; n = n.levels[0].next {
		sb.Write(n.bytes())
	}
	return sb.String()
}

// Bytes returns the rope's text as a freshly allocated byte slice. O(B).
func (r *Rope) Bytes() []byte {
	out := make([]byte, 0, r.bytes)
	for n := r.head[0].next; n != nil; n = n.levels[0].next {
		out = append(out, n.bytes()...)
	}
	return out
}

// CString returns the rope's text as a freshly allocated byte slice with
// a trailing NUL, for callers that need a C-style terminated buffer.
func (r *Rope) CString() []byte {
	out := make([]byte, 0, r.bytes+1)
	for n := r.head[0].next; n != nil; n = n.levels[0].next {
		out = append(out, n.bytes()...)
	}
	return append(out, 0)
}

// ensureHeadCapacity grows the head vector, by doubling, so it can hold
// at least h active levels. The head vector never shrinks.
func (r *Rope) ensureHeadCapacity(h int) {
	if len(r.head) >= h {
		return
	}
	newCap := len(r.head)
	if newCap == 0 {
		newCap = initialHeadCap
	}
	for newCap < h {
		newCap *= 2
	}
	grown := make([]forwardEntry, newCap)
	copy(grown, r.head)
	r.head = grown
}
