// Package tinystr implements the polymorphic string value used by a small
// embedded script engine: a compact, reference-counted, tagged descriptor
// whose storage strategy is chosen per value rather than fixed at compile
// time.
//
// # Overview
//
// A dynamic language whose primary composite value is a string (property
// keys, identifiers, numeric-string conversions, array indices,
// concatenations) needs to represent arbitrarily many logical strings
// under a tight memory budget while still supporting exact-semantics
// equality, hashing, lexical comparison, substring/trim, and code-unit
// indexing over a variable-width encoding. Rather than a single
// heap-backed string type, String picks one of six storage strategies per
// value:
//
//   - an interned literal-table entry (source-program string literals)
//   - a well-known constant string id (built-in or application-extended)
//   - a 32-bit unsigned integer packed directly into the descriptor
//   - a heap-allocated variable-width byte chunk
//   - a heap-allocated out-of-range floating-point number
//
// # Basic usage
//
//	eng := tinystr.NewEngine(config.Default(), nil)
//	s := eng.NewFromBytes([]byte("length")) // canonicalizes to a magic string
//	n := eng.NewFromUint32(42)              // packs into the descriptor itself
//	cat := eng.Concat(s, n)                 // heap chunk, not canonicalized
//	eng.Deref(s)
//	eng.Deref(n)
//	eng.Deref(cat)
//
// # What this package does not do
//
// String values are immutable once constructed: there is no in-place
// mutation, no locale-aware collation, no Unicode normalization, and no
// persistence across process runs. The engine is single-threaded;
// descriptors carry no synchronization.
package tinystr
