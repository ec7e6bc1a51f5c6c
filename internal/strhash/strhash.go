// Package strhash provides the core's hash(bytes) primitive over
// github.com/cespare/xxhash/v2.
package strhash

import "github.com/cespare/xxhash/v2"

// Sum hashes a byte slice to the engine's cached-hash width. Every
// String's cached hash, regardless of which constructor built it, is
// this function applied to its logical bytes — concat.go deliberately
// does not take the original engine's hash_combine shortcut, since
// xxhash's Go API cannot resume a finished digest the way that shortcut
// requires.
func Sum(b []byte) uint64 {
	return xxhash.Sum64(b)
}
