// Package rope implements a mutable, character-indexed skip list for
// UTF-8 text.
//
// A Rope stores text across small fixed-capacity nodes linked by a
// probabilistic multi-level skip list. Unlike an ordinary skip list keyed
// by comparison, each forward pointer here also carries a skip distance
// measured in Unicode codepoints, which turns the structure into a
// positional index: locating the node holding character N costs O(log N)
// expected pointer chases instead of O(N).
//
// Basic usage:
//
//	r := rope.NewFromString("hello world")
//	r.Insert(5, ",")    // "hello, world"
//	r.Delete(0, 7)       // "world"
//	s := r.String()      // "world"
//
// A Rope is not safe for concurrent use. Every mutating method assumes
// exclusive access; readers and writers must not overlap without external
// synchronization. "Character" means a single Unicode codepoint as
// delimited by UTF-8 lead-byte classification — there is no
// grapheme-cluster or word-boundary awareness.
package rope
