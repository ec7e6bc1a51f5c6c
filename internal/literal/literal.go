// Package literal is the interned literal table: the read-only store of
// source-program string literals the core's LIT_TABLE variant points
// into. Each entry is tagged the way the original literal storage format
// is: a literal is either raw charset bytes, or itself a reference to a
// built-in or extended magic string (the source program used a literal
// whose text happens to equal one of those well-known strings).
//
// Handles stand in for the original's 16-bit compressed pointer; the
// spec's design notes call this substitution out explicitly as safe when
// memory budget allows it, which a Go process always has relative to the
// embedded target this format was designed for.
package literal

import (
	"github.com/vsperson/tinystr/internal/cesu8"
	"github.com/vsperson/tinystr/internal/strhash"
)

// Kind tags what a literal table entry actually holds.
type Kind uint8

const (
	KindCharset Kind = iota
	KindMagicRef
	KindMagicExRef
)

// Literal is one entry of the table.
type Literal struct {
	kind    Kind
	bytes   []byte // charset payload; nil for magic references
	hash    uint64 // cached hash; charset only
	length  int    // code-unit length; charset only
	magicID uint16 // valid for MagicRef/MagicExRef
}

func (l Literal) Kind() Kind        { return l.kind }
func (l Literal) Bytes() []byte     { return l.bytes }
func (l Literal) Size() int         { return len(l.bytes) }
func (l Literal) Length() int       { return l.length }
func (l Literal) Hash() uint64      { return l.hash }
func (l Literal) MagicID() uint16   { return l.magicID }
func (l Literal) IsCharset() bool   { return l.kind == KindCharset }
func (l Literal) IsMagicRef() bool  { return l.kind == KindMagicRef }
func (l Literal) IsMagicExRef() bool {
	return l.kind == KindMagicExRef
}

// Handle is a compressed-pointer stand-in: an index into a Store.
type Handle uint32

// Store is the literal table. Entries are append-only once interned,
// mirroring the source program's literal pool being built once at parse
// time and never mutated afterward.
type Store struct {
	entries []Literal
}

// NewStore returns an empty literal store.
func NewStore() *Store {
	return &Store{}
}

// InternCharset adds a raw charset literal and returns its handle.
// Interning bytes already held as a charset entry returns that entry's
// handle, so equal text always shares one handle.
func (s *Store) InternCharset(b []byte) Handle {
	for i, l := range s.entries {
		if l.kind == KindCharset && string(l.bytes) == string(b) {
			return Handle(i)
		}
	}
	cp := append([]byte(nil), b...)
	s.entries = append(s.entries, Literal{
		kind:   KindCharset,
		bytes:  cp,
		hash:   strhash.Sum(cp),
		length: cesu8.Len(cp),
	})
	return Handle(len(s.entries) - 1)
}

// InternMagicRef adds a literal that is itself a built-in magic string
// reference and returns its handle.
func (s *Store) InternMagicRef(id uint16) Handle {
	s.entries = append(s.entries, Literal{kind: KindMagicRef, magicID: id})
	return Handle(len(s.entries) - 1)
}

// InternMagicExRef adds a literal that is itself an extended magic string
// reference and returns its handle.
func (s *Store) InternMagicExRef(id uint16) Handle {
	s.entries = append(s.entries, Literal{kind: KindMagicExRef, magicID: id})
	return Handle(len(s.entries) - 1)
}

// Get decompresses a handle back to its literal.
func (s *Store) Get(h Handle) Literal {
	return s.entries[h]
}
