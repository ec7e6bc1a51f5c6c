// Package magictab holds the two magic-string tables the core
// canonicalizes against: a fixed, built-in table (property names and
// other well-known identifiers the engine itself needs) and an extended
// table an embedding application populates at startup.
package magictab

import "github.com/vsperson/tinystr/internal/cesu8"

// LengthLimit is an upper bound on every built-in entry's byte-size (the
// longest, "configurable", is 12 bytes), so a caller-supplied recognition
// limit (config.Config.MagicLengthLimit) at or above it never hides a
// built-in entry. Extended entries are not bounded by it. Recognition's
// actual cutoff is a parameter, not this constant — embeddings may bound
// it tighter or looser than the table's own longest entry.
const LengthLimit = 16

// entry is one row of a magic table: the raw bytes plus their
// precomputed code-unit length (ecma-spec §9, the length-caching
// supplement) so repeated Length() calls never re-walk the bytes.
type entry struct {
	bytes  []byte
	length int
}

func newEntry(s string) entry {
	b := []byte(s)
	return entry{bytes: b, length: cesu8.Len(b)}
}

// builtinTable is populated in ascending id order. Id 0 is the empty
// string, matching the original engine's LIT_MAGIC_STRING__EMPTY.
var builtinTable = buildBuiltin()

var builtinIndex = buildBuiltinIndex()

func buildBuiltin() []entry {
	names := []string{
		"", "length", "undefined", "null", "true", "false", "NaN", "Infinity",
		"name", "message", "prototype", "constructor", "toString", "valueOf",
		"arguments", "caller", "callee", "apply", "call", "bind", "this",
		"get", "set", "value", "writable", "enumerable", "configurable",
		"0", "1", "2", "3",
	}
	out := make([]entry, len(names))
	for i, n := range names {
		out[i] = newEntry(n)
	}
	return out
}

func buildBuiltinIndex() map[string]uint16 {
	idx := make(map[string]uint16, len(builtinTable))
	for i, e := range builtinTable {
		idx[string(e.bytes)] = uint16(i)
	}
	return idx
}

// BuiltinCount returns the number of built-in magic strings.
func BuiltinCount() int { return len(builtinTable) }

// BuiltinBytes returns the raw bytes of built-in magic string id.
func BuiltinBytes(id uint16) []byte { return builtinTable[id].bytes }

// BuiltinSize returns the byte-size of built-in magic string id.
func BuiltinSize(id uint16) int { return len(builtinTable[id].bytes) }

// BuiltinLength returns the code-unit length of built-in magic string id.
func BuiltinLength(id uint16) int { return builtinTable[id].length }

// LookupBuiltin returns the id of the built-in magic string equal to b,
// if any. b longer than limit is rejected without hashing or scanning it
// (spec.md §4.11's fast-reject rule); callers pass
// config.Config.MagicLengthLimit here.
func LookupBuiltin(b []byte, limit int) (uint16, bool) {
	if len(b) > limit {
		return 0, false
	}
	id, ok := builtinIndex[string(b)]
	return id, ok
}
