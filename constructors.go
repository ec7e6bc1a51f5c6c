package tinystr

import (
	"github.com/vsperson/tinystr/internal/cesu8"
	"github.com/vsperson/tinystr/internal/literal"
	"github.com/vsperson/tinystr/internal/magictab"
	"github.com/vsperson/tinystr/internal/numfmt"
	"github.com/vsperson/tinystr/internal/strhash"
)

// NewFromBytes builds a String from CESU-8 encoded bytes, canonicalizing
// against the magic tables before falling back to a heap chunk (spec.md
// §3.2 invariant 1, §4.2). b must be valid CESU-8; violating that is a
// precondition error.
func (e *Engine) NewFromBytes(b []byte) *String {
	e.assertf(b != nil || len(b) == 0, "nil byte slice with nonzero length")
	e.assertf(cesu8.Valid(b), "invalid CESU-8 input to NewFromBytes")

	if id, ok := magictab.LookupBuiltin(b, e.cfg.MagicLengthLimit); ok {
		return e.newMagic(id)
	}
	if id, ok := e.extended.Lookup(b, e.cfg.MagicLengthLimit); ok {
		return e.newMagicEx(id)
	}

	s := e.allocDescriptor()
	s.refs = 1
	s.container = ContainerHeapChunks
	s.hash = strhash.Sum(b)

	cp := e.chunks.Alloc(len(b))
	copy(cp, b)
	s.chunk = &heapChunk{size: len(b), length: cesu8.Len(cp), bytes: cp}
	return s
}

// NewFromCodeUnit builds a single-code-unit String.
func (e *Engine) NewFromCodeUnit(cu uint16) *String {
	var buf [cesu8.MaxBytesPerUnit]byte
	b := cesu8.Encode(buf[:0], cu)
	return e.NewFromBytes(b)
}

// NewFromUint32 packs n's decimal form directly into the descriptor
// (ContainerUint32), avoiding a heap allocation entirely.
func (e *Engine) NewFromUint32(n uint32) *String {
	s := e.allocDescriptor()
	s.refs = 1
	s.container = ContainerUint32
	s.common = uint64(n)
	s.hash = strhash.Sum([]byte(numfmt.FormatUint32(n)))
	return s
}

// NewFromNumber builds a String from a floating-point number. Numbers
// that round-trip exactly through uint32 canonicalize to ContainerUint32
// (spec invariant 2); numbers whose canonical decimal form matches a
// magic string canonicalize to that magic variant; everything else gets
// a heap-allocated number cell.
func (e *Engine) NewFromNumber(num float64) *String {
	asUint32 := numfmt.NumberToUint32(num)
	if !numfmt.IsNaN(num) && num == numfmt.Uint32ToNumber(asUint32) {
		return e.NewFromUint32(asUint32)
	}

	decimal := numfmt.FormatNumber(num)
	decimalBytes := []byte(decimal)

	if id, ok := magictab.LookupBuiltin(decimalBytes, e.cfg.MagicLengthLimit); ok {
		return e.newMagic(id)
	}
	if id, ok := e.extended.Lookup(decimalBytes, e.cfg.MagicLengthLimit); ok {
		return e.newMagicEx(id)
	}

	s := e.allocDescriptor()
	s.refs = 1
	s.container = ContainerHeapNumber
	s.hash = strhash.Sum(decimalBytes)
	s.number = e.numbers.Alloc(num)
	return s
}

// NewFromLiteralHandle builds a String referencing an already-interned
// literal-table entry, decoding it the way the original's
// ecma_init_ecma_string_from_lit_cp does: a literal that is itself a
// magic-string reference canonicalizes to that magic variant rather than
// staying ContainerLitTable.
func (e *Engine) NewFromLiteralHandle(h literal.Handle) *String {
	lit := e.literals.Get(h)
	switch lit.Kind() {
	case literal.KindMagicRef:
		return e.newMagic(lit.MagicID())
	case literal.KindMagicExRef:
		return e.newMagicEx(lit.MagicID())
	default:
		s := e.allocDescriptor()
		s.refs = 1
		s.container = ContainerLitTable
		s.hash = lit.Hash()
		s.common = uint64(h)
		return s
	}
}

// newMagic builds a ContainerMagic String for built-in magic string id.
func (e *Engine) newMagic(id uint16) *String {
	s := e.allocDescriptor()
	s.refs = 1
	s.container = ContainerMagic
	s.hash = strhash.Sum(magictab.BuiltinBytes(id))
	s.common = uint64(id)
	return s
}

// newMagicEx builds a ContainerMagicEx String for extended magic string id.
func (e *Engine) newMagicEx(id uint16) *String {
	s := e.allocDescriptor()
	s.refs = 1
	s.container = ContainerMagicEx
	s.hash = strhash.Sum(e.extended.Bytes(id))
	s.common = uint64(id)
	return s
}

// NewMagicString returns the String for built-in magic string id.
func (e *Engine) NewMagicString(id uint16) *String {
	e.assertf(int(id) < magictab.BuiltinCount(), "magic string id %d out of range", id)
	return e.newMagic(id)
}

// NewExtendedMagicString returns the String for extended magic string id.
func (e *Engine) NewExtendedMagicString(id uint16) *String {
	e.assertf(int(id) < e.extended.Count(), "extended magic string id %d out of range", id)
	return e.newMagicEx(id)
}

// Empty returns the empty string, the magic string with id 0.
func (e *Engine) Empty() *String {
	return e.newMagic(0)
}
