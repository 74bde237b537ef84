package rope

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes a line-per-node structural rendering of the skip list to
// w: each level's forward pointer ('+' with its skip-chars count, '*'
// for a level with no successor) followed by the node's own text,
// quoted and truncated for readability. It exists for debugging and
// tests, not for production diagnostics, so it takes an io.Writer
// rather than going through package log.
func (r *Rope) Dump(w io.Writer) {
	fmt.Fprintf(w, "> rope chars=%d bytes=%d height=%d\n", r.chars, r.bytes, r.height)

	const pipePart = "|     "
	const blankPart = "      "

	renderHeight := r.height

	fmt.Fprintln(w, "- head")
	for i := 0; i < r.height; i++ {
		key := "+"
		if r.head[i].next == nil {
			key = "*"
			if i < renderHeight {
				renderHeight = i
			}
		}
		fmt.Fprintf(w, "  %s%-5d\n", key, r.head[i].skip)
	}

	n := r.head[0].next
	for n != nil {
		var lines []string
		for range renderHeight {
			lines = append(lines, pipePart)
		}
		fmt.Fprintf(w, "  %s\n", strings.Join(lines, ""))

		var parts []string
		for _, l := range n.levels {
			key := "+"
			if l.next == nil {
				key = "*"
			}
			parts = append(parts, fmt.Sprintf("%s%-5d", key, l.skip))
		}
		for j := len(n.levels); j < r.height; j++ {
			part := pipePart
			if j >= renderHeight {
				part = blankPart
			}
			parts = append(parts, part)
		}
		parts = append(parts, quoteNodeText(n))

		fmt.Fprintf(w, "- %s\n", strings.Join(parts, ""))

		n = n.levels[0].next
	}
}

// quoteNodeText renders a node's text for Dump, truncated so a dump of
// a large rope stays readable.
func quoteNodeText(n *node) string {
	const maxShown = 40
	s := string(n.bytes())
	if len(s) > maxShown {
		s = s[:maxShown] + "…"
	}
	return fmt.Sprintf("chars=%d %q", n.chars, s)
}
