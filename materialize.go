package tinystr

import (
	"github.com/vsperson/tinystr/internal/literal"
	"github.com/vsperson/tinystr/internal/magictab"
	"github.com/vsperson/tinystr/internal/numfmt"
)

// Size returns s's logical byte length (its CESU-8 encoding's length),
// O(1) for every container except HEAP_NUMBER, whose decimal form is
// recomputed on demand (spec.md §4.4).
func (e *Engine) Size(s *String) int {
	switch s.container {
	case ContainerLitTable:
		return e.literals.Get(literal.Handle(s.common)).Size()
	case ContainerMagic:
		return magictab.BuiltinSize(uint16(s.common))
	case ContainerMagicEx:
		return e.extended.Size(uint16(s.common))
	case ContainerUint32:
		return numfmt.DigitLength(uint32(s.common))
	case ContainerHeapNumber:
		return len(numfmt.FormatNumber(*s.number))
	default:
		return s.chunk.size
	}
}

// WriteTo copies s's CESU-8 bytes into dst, returning the number of
// bytes written. If dst is too small, it writes nothing and returns the
// negated number of bytes s requires, so a caller can retry with a
// correctly sized buffer (spec.md §4.4, §7).
func (e *Engine) WriteTo(s *String, dst []byte) int {
	need := e.Size(s)
	if len(dst) < need {
		return -need
	}

	switch s.container {
	case ContainerLitTable:
		copy(dst, e.literals.Get(literal.Handle(s.common)).Bytes())
	case ContainerMagic:
		copy(dst, magictab.BuiltinBytes(uint16(s.common)))
	case ContainerMagicEx:
		copy(dst, e.extended.Bytes(uint16(s.common)))
	case ContainerUint32:
		copy(dst, numfmt.FormatUint32(uint32(s.common)))
	case ContainerHeapNumber:
		copy(dst, numfmt.FormatNumber(*s.number))
	default:
		copy(dst, s.chunk.bytes)
	}
	return need
}

// Bytes allocates and returns s's CESU-8 encoding. Prefer WriteTo when a
// reusable buffer is available.
func (e *Engine) Bytes(s *String) []byte {
	b := make([]byte, e.Size(s))
	e.WriteTo(s, b)
	return b
}
