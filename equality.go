package tinystr

// Equal reports whether a and b denote the same logical string. It
// mirrors the original engine's ecma_compare_ecma_strings: a hash-gated
// fast path first, then a variant-aware slow path that only falls back
// to a full byte comparison when the two descriptors use different
// containers (spec.md §4.5, invariant 3).
func (e *Engine) Equal(a, b *String) bool {
	if a == b {
		return true
	}
	if a.hash != b.hash {
		return false
	}

	if a.container == b.container {
		switch a.container {
		case ContainerLitTable, ContainerMagic, ContainerMagicEx, ContainerUint32:
			// Canonicalization (spec invariant 1) guarantees two
			// descriptors with identical bytes land on the same id/handle
			// in these containers, so the payload words alone decide it.
			return a.common == b.common

		case ContainerHeapNumber:
			return numbersEqual(*a.number, *b.number)

		default: // ContainerHeapChunks
			return chunksEqual(a.chunk, b.chunk)
		}
	}

	// Different containers but identical hash: one is very likely a
	// non-canonicalized heap value (e.g. the product of Concat) whose
	// bytes happen to match a canonical form. Compare byte-for-byte.
	if e.Size(a) != e.Size(b) {
		return false
	}
	return bytesEqual(e.Bytes(a), e.Bytes(b))
}

func numbersEqual(x, y float64) bool {
	// IEEE equality of the two stored numbers. NaN never reaches a
	// HEAP_NUMBER descriptor: NewFromNumber formats it as "NaN", which
	// canonicalizes to that built-in magic string, so no NaN case is
	// needed here.
	return x == y
}

func chunksEqual(a, b *heapChunk) bool {
	if a.length != b.length || a.size != b.size {
		return false
	}
	return bytesEqual(a.bytes, b.bytes)
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
