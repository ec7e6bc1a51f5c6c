package tinystr

import (
	"github.com/vsperson/tinystr/internal/cesu8"
	"github.com/vsperson/tinystr/internal/strhash"
)

// Concat returns a String holding a's bytes followed by b's. An empty
// operand short-circuits to a Ref of the other operand; otherwise the
// result is a fresh ContainerHeapChunks value.
//
// This mirrors the original engine's concatenation routine, including
// its one accepted invariant violation (spec.md §4.8, §9): the result is
// never canonicalized against the magic tables or re-derived as
// ContainerUint32/ContainerHeapNumber even when its bytes match one of
// those forms exactly. Unlike the original, which rolls the hash forward
// from a's cached hash via a bespoke hash_combine primitive designed to
// agree bit-for-bit with hashing the concatenated bytes from scratch,
// this hashes the combined buffer directly with strhash.Sum: xxhash's Go
// API has no way to resume a finished digest, so a from-scratch hash is
// the only way to keep invariant 3 (a cached hash always matches the
// hash of the string's logical bytes) holding for concatenation results
// too, letting them compare equal against a canonical string with the
// same content.
func (e *Engine) Concat(a, b *String) *String {
	if e.isEmpty(a) {
		return e.Ref(b)
	}
	if e.isEmpty(b) {
		return e.Ref(a)
	}

	aBytes := e.Bytes(a)
	bBytes := e.Bytes(b)
	newSize := len(aBytes) + len(bBytes)

	e.assertf(e.cfg.MaxConcatenationLength == 0 || newSize <= e.cfg.MaxConcatenationLength,
		"concatenation size %d exceeds configured maximum %d", newSize, e.cfg.MaxConcatenationLength)

	combined := e.chunks.Alloc(newSize)
	n := copy(combined, aBytes)
	copy(combined[n:], bBytes)

	s := e.allocDescriptor()
	s.refs = 1
	s.container = ContainerHeapChunks
	s.hash = strhash.Sum(combined)
	s.chunk = &heapChunk{size: len(combined), length: cesu8.Len(combined), bytes: combined}
	return s
}

// isEmpty reports whether s is the canonical empty string. Every empty
// string canonicalizes to the built-in magic string with id 0 (spec
// invariant 1), so this never needs to materialize s.
func (e *Engine) isEmpty(s *String) bool {
	return s.container == ContainerMagic && s.common == 0
}
