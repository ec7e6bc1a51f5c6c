package magictab

import "github.com/vsperson/tinystr/internal/cesu8"

// Extended is the user-populated magic string table: the embedding
// application registers additional well-known identifiers (e.g.
// application-specific property names) once at startup, and the core
// canonicalizes matching strings against it exactly as it does the
// built-in table.
type Extended struct {
	entries []entry
	index   map[string]uint16
}

// NewExtended returns an empty extended table.
func NewExtended() *Extended {
	return &Extended{index: make(map[string]uint16)}
}

// Register adds s to the table and returns its id. Registering the same
// bytes twice returns the existing id rather than duplicating the entry.
func (e *Extended) Register(s []byte) uint16 {
	if id, ok := e.index[string(s)]; ok {
		return id
	}
	id := uint16(len(e.entries))
	e.entries = append(e.entries, entry{bytes: append([]byte(nil), s...), length: cesu8.Len(s)})
	e.index[string(s)] = id
	return id
}

// Count returns the number of registered extended magic strings.
func (e *Extended) Count() int { return len(e.entries) }

// Bytes returns the raw bytes of extended magic string id.
func (e *Extended) Bytes(id uint16) []byte { return e.entries[id].bytes }

// Size returns the byte-size of extended magic string id.
func (e *Extended) Size(id uint16) int { return len(e.entries[id].bytes) }

// Length returns the code-unit length of extended magic string id.
func (e *Extended) Length(id uint16) int { return e.entries[id].length }

// Lookup returns the id of the extended magic string equal to b, if any.
// b longer than limit is rejected without scanning it; callers pass
// config.Config.MagicLengthLimit here.
func (e *Extended) Lookup(b []byte, limit int) (uint16, bool) {
	if len(b) > limit {
		return 0, false
	}
	id, ok := e.index[string(b)]
	return id, ok
}
