package tinystr

import "github.com/vsperson/tinystr/internal/cesu8"

// Less reports whether a sorts strictly before b under the same
// code-unit-wise relational order ECMAScript's `<` operator uses on
// strings. Both operands are materialized to compare; callers on a hot
// sort path should prefer caching Bytes(s) themselves rather than
// calling Less repeatedly (spec.md §4.6).
func (e *Engine) Less(a, b *String) bool {
	if a == b {
		return false
	}
	return cesu8.Less(e.Bytes(a), e.Bytes(b))
}
