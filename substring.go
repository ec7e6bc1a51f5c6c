package tinystr

import (
	"github.com/vsperson/tinystr/internal/cesu8"
	"github.com/vsperson/tinystr/internal/charclass"
)

// Substring returns the code-unit range [start, end) of s as a new
// string, canonicalizing through NewFromBytes. start and end are
// code-unit positions with 0 <= start <= end <= Len(s); start >= end
// (including start == end) yields the empty string (spec.md §4.9).
func (e *Engine) Substring(s *String, start, end int) *String {
	length := e.Len(s)
	e.assertf(start >= 0 && start <= length, "Substring start %d out of range [0,%d]", start, length)
	e.assertf(end >= 0 && end <= length, "Substring end %d out of range [0,%d]", end, length)

	if start >= end {
		return e.Empty()
	}

	b := e.Bytes(s)

	startByte := 0
	for i := 0; i < start; i++ {
		_, width := cesu8.Decode(b[startByte:])
		startByte += width
	}

	endByte := startByte
	for i := start; i < end; i++ {
		_, width := cesu8.Decode(b[endByte:])
		endByte += width
	}

	return e.NewFromBytes(b[startByte:endByte])
}

// Trim strips leading and trailing WhiteSpace/LineTerminator code units
// from s, returning the empty string if nothing survives (spec.md
// §4.9).
func (e *Engine) Trim(s *String) *String {
	b := e.Bytes(s)
	if len(b) == 0 {
		return e.Empty()
	}

	start := 0
	for start < len(b) {
		cu, width := cesu8.Decode(b[start:])
		if !charclass.IsWhiteSpace(cu) && !charclass.IsLineTerminator(cu) {
			break
		}
		start += width
	}

	end := len(b)
	for end > start {
		cu, width := cesu8.DecodePrev(b, end)
		if !charclass.IsWhiteSpace(cu) && !charclass.IsLineTerminator(cu) {
			break
		}
		end -= width
	}

	if end <= start {
		return e.Empty()
	}
	return e.NewFromBytes(b[start:end])
}
