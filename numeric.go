package tinystr

import "github.com/vsperson/tinystr/internal/numfmt"

// ToNumber converts s to its Number value (spec.md §4.7).
// ContainerUint32 and ContainerHeapNumber read their cached numeric
// payload directly; an empty string gives 0; everything else parses the
// materialized bytes with numfmt.ParseNumber (strconv.ParseFloat syntax
// plus "NaN", "Infinity", "+Infinity" and "-Infinity"), giving NaN for
// anything it cannot parse. Surrounding whitespace is not stripped, so
// text such as " 12" gives NaN.
func (e *Engine) ToNumber(s *String) float64 {
	switch s.container {
	case ContainerUint32:
		return numfmt.Uint32ToNumber(uint32(s.common))
	case ContainerHeapNumber:
		return *s.number
	default:
		if e.Size(s) == 0 {
			return numfmt.CanonicalZero()
		}
		return numfmt.ParseNumber(string(e.Bytes(s)))
	}
}

// maxValidArrayIndex is the one uint32 value excluded from being a valid
// array index (2^32 - 1), matching the ECMAScript array-index upper
// bound.
const maxValidArrayIndex = 1<<32 - 1

// GetArrayIndex reports whether s's logical text is the canonical
// decimal rendering of a valid array index, and if so, the index
// itself. ContainerUint32 reads its payload directly; every other
// container round-trips through ToNumber → ToUint32 → re-stringify and
// requires an exact byte match, rejecting leading zeros, fractional
// text, and anything that isn't s's own canonical form (spec.md §4.7,
// invariant: array-index detection ties to the uint32 canonical form).
func (e *Engine) GetArrayIndex(s *String) (uint32, bool) {
	var index uint32
	ok := true

	if s.container == ContainerUint32 {
		index = uint32(s.common)
	} else {
		index = numfmt.NumberToUint32(e.ToNumber(s))
		candidate := e.NewFromUint32(index)
		ok = e.Equal(s, candidate)
		e.Deref(candidate)
	}

	return index, ok && index != maxValidArrayIndex
}
