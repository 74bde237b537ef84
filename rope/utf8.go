package rope

import "unicode/utf8"

// codepointSize classifies a UTF-8 lead byte into its codepoint length.
// Modern UTF-8 only produces 1-4 byte sequences, but the 5- and 6-byte
// lead-byte ranges from the classical (pre-2003) encoding are still
// classified rather than rejected, matching the tolerant table this
// package's algorithms were ported from. The core never produces these
// forms itself, and Insert and NewFromString reject input containing
// them (validUTF8 fails), so they never reach a node's buffer.
func codepointSize(lead byte) int {
	switch {
	case lead <= 0x7f:
		return 1
	case lead <= 0xdf:
		return 2
	case lead <= 0xef:
		return 3
	case lead <= 0xf7:
		return 4
	case lead <= 0xfb:
		return 5
	case lead <= 0xfd:
		return 6
	default:
		// 0xfe/0xff are not valid UTF-8 lead bytes under any scheme.
		// Treat as a single byte so callers scanning byte-by-byte still
		// make progress instead of looping forever.
		return 1
	}
}

// countChars returns the number of codepoints in b, as delimited by
// UTF-8 lead-byte boundaries. b is assumed to already be valid (or at
// least lead-byte-consistent); this does not perform full UTF-8
// validation.
func countChars(b []byte) int {
	n := 0
	for i := 0; i < len(b); {
		i += codepointSize(b[i])
		n++
	}
	return n
}

// byteOffsetForChars returns the byte offset of the nth character
// boundary within b (0 <= n <= number of characters in b).
func byteOffsetForChars(b []byte, n int) int {
	off := 0
	for i := 0; i < n && off < len(b); i++ {
		off += codepointSize(b[off])
	}
	return off
}

// validUTF8 reports whether s is valid UTF-8. Insert and NewFromString
// use this at the contract boundary: malformed input is a precondition
// violation, not silently tolerated.
func validUTF8(s string) bool {
	return utf8.ValidString(s)
}
