package rope

import (
	"testing"

	"pgregory.net/rapid"
)

// rapidHeightSource draws node heights from the same rapid.T driving the
// state machine below, so a failing case shrinks to a minimal rope shape
// along with a minimal edit sequence, instead of depending on
// math/rand/v2's global state.
type rapidHeightSource struct {
	t *rapid.T
}

func (s *rapidHeightSource) Height() int {
	return rapid.IntRange(1, 8).Draw(s.t, "height")
}

// ropeModel checks a *Rope against a []rune oracle under random
// insert/delete actions, verifying that content and structural
// invariants agree with the oracle after every step.
type ropeModel struct {
	r     *Rope
	hs    *rapidHeightSource
	chars []rune
}

func (m *ropeModel) Init(t *rapid.T) {
	m.hs = &rapidHeightSource{t: t}
	m.r = NewWithHeightSource(m.hs)
	m.chars = nil
}

func (m *ropeModel) InsertCharAt(t *rapid.T) {
	m.hs.t = t
	ch := rapid.Rune().Draw(t, "ch")
	pos := rapid.IntRange(0, len(m.chars)).Draw(t, "pos")

	m.r.Insert(pos, string(ch))

	m.chars = append(m.chars[:pos:pos], append([]rune{ch}, m.chars[pos:]...)...)
}

func (m *ropeModel) DeleteCharAt(t *rapid.T) {
	m.hs.t = t
	if len(m.chars) == 0 {
		t.Skip("empty rope")
	}
	pos := rapid.IntRange(0, len(m.chars)-1).Draw(t, "pos")

	m.r.Delete(pos, 1)

	m.chars = append(m.chars[:pos], m.chars[pos+1:]...)
}

func (m *ropeModel) InsertStringAt(t *rapid.T) {
	m.hs.t = t
	s := rapid.StringN(0, 12, -1).Draw(t, "s")
	pos := rapid.IntRange(0, len(m.chars)).Draw(t, "pos")

	m.r.Insert(pos, s)

	inserted := []rune(s)
	m.chars = append(m.chars[:pos:pos], append(inserted, m.chars[pos:]...)...)
}

func (m *ropeModel) DeleteRange(t *rapid.T) {
	m.hs.t = t
	if len(m.chars) == 0 {
		t.Skip("empty rope")
	}
	pos := rapid.IntRange(0, len(m.chars)-1).Draw(t, "pos")
	n := rapid.IntRange(0, len(m.chars)-pos).Draw(t, "n")

	m.r.Delete(pos, n)

	m.chars = append(m.chars[:pos], m.chars[pos+n:]...)
}

func (m *ropeModel) Check(t *rapid.T) {
	want := string(m.chars)
	got := m.r.String()
	if got != want {
		t.Fatalf("content mismatch: want %q, got %q", want, got)
	}
	if m.r.CharCount() != len(m.chars) {
		t.Fatalf("CharCount() = %d, want %d", m.r.CharCount(), len(m.chars))
	}
	checkInvariants(rapidTB{t}, m.r)
}

// rapidTB adapts *rapid.T to checkInvariants' invariantTB interface, so
// the same invariant checker serves both the table tests and this
// property test.
type rapidTB struct {
	t *rapid.T
}

func (r rapidTB) Helper() {}
func (r rapidTB) Errorf(format string, args ...any) {
	r.t.Errorf(format, args...)
}

func TestRopeProperty(t *testing.T) {
	rapid.Check(t, rapid.Run[*ropeModel]())
}
