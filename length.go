package tinystr

import (
	"github.com/vsperson/tinystr/internal/cesu8"
	"github.com/vsperson/tinystr/internal/literal"
	"github.com/vsperson/tinystr/internal/magictab"
	"github.com/vsperson/tinystr/internal/numfmt"
)

// Len returns s's length in UTF-16 code units — what ECMAScript's
// String.prototype.length reports, not a byte count (spec.md §4.4).
func (e *Engine) Len(s *String) int {
	switch s.container {
	case ContainerLitTable:
		return e.literals.Get(literal.Handle(s.common)).Length()
	case ContainerMagic:
		return magictab.BuiltinLength(uint16(s.common))
	case ContainerMagicEx:
		return e.extended.Length(uint16(s.common))
	case ContainerUint32:
		return numfmt.DigitLength(uint32(s.common))
	case ContainerHeapNumber:
		// The decimal form is pure ASCII, so code-unit count equals byte
		// count.
		return len(numfmt.FormatNumber(*s.number))
	default:
		return s.chunk.length
	}
}

// CharAt returns the code unit at the given code-unit index. index must
// satisfy 0 <= index < Len(s); violating that is a precondition error.
// Every container is materialized with Bytes first: the numeric
// containers (uint32, HEAP_NUMBER) then index their ASCII digits
// directly; everything else walks the CESU-8 encoding.
func (e *Engine) CharAt(s *String, index int) uint16 {
	e.assertf(index >= 0 && index < e.Len(s), "CharAt index %d out of range [0,%d)", index, e.Len(s))

	if s.container == ContainerUint32 || s.container == ContainerHeapNumber {
		digits := e.Bytes(s)
		return uint16(digits[index])
	}

	b := e.Bytes(s)
	pos := 0
	for i := 0; ; i++ {
		cu, width := cesu8.Decode(b[pos:])
		if i == index {
			return cu
		}
		pos += width
	}
}
