package tinystr

import "github.com/vsperson/tinystr/internal/elog"

// Ref acquires a reference to s: same descriptor with refs incremented,
// or — on the overflow path — a deep copy with refs reset to 1, leaving
// s's own refcount untouched (spec.md §4.3).
func (e *Engine) Ref(s *String) *String {
	s.refs++
	if s.refs != 0 {
		return s
	}

	// refs wrapped to zero: restore the saturation value, then give the
	// engine's GC escape hatch a chance to drop other holders before
	// resorting to a copy.
	s.refs--
	cycle := elog.NewGCCycle()
	e.log.RefcountOverflow(cycle, s.container.String())

	before := s.refs
	e.gc.InvalidateCaches()
	e.gc.RunGC()

	if s.refs != before {
		// GC freed at least one other holder; safe to bump again.
		s.refs++
		e.log.RefcountOverflowResolved(cycle, false)
		return s
	}

	e.log.RefcountOverflowResolved(cycle, true)
	return e.deepCopy(s)
}

// Deref releases a reference to s, freeing its payload and descriptor
// once refs reaches zero.
func (e *Engine) Deref(s *String) {
	e.assertf(s.refs != 0, "Deref of a string with refs already zero")

	s.refs--
	if s.refs != 0 {
		return
	}

	switch s.container {
	case ContainerHeapChunks:
		e.chunks.Free(s.chunk.size)
		s.chunk = nil
	case ContainerHeapNumber:
		e.numbers.Free(s.number)
		s.number = nil
	}

	e.freeDescriptor(s)
}

// AssertStackString enforces spec invariant 7: a descriptor built for a
// transient, stack-local comparison must never be passed to Ref/Deref.
// It is a debug-only check (assert.go) and does nothing when Config.Debug
// is false.
func (e *Engine) AssertStackString(s *String) {
	e.assertf(s.refs == 1, "stack string has refs=%d, want 1", s.refs)
	e.assertf(
		s.container == ContainerLitTable ||
			s.container == ContainerMagic ||
			s.container == ContainerMagicEx ||
			s.container == ContainerUint32,
		"stack string has non-stack-safe container %s", s.container,
	)
}

// deepCopy clones s into a fresh descriptor with refs=1. HEAP_NUMBER is
// re-canonicalized through NewFromNumber, matching the original's copy
// routine. HEAP_CHUNKS allocates a new chunk and — unlike the original
// source, whose copy routine stores the new chunk's size/length but then
// re-points the new descriptor at the *old* chunk pointer (spec.md §9,
// documented as a bug) — correctly points the copy at the chunk it just
// allocated.
func (e *Engine) deepCopy(s *String) *String {
	switch s.container {
	case ContainerHeapNumber:
		return e.NewFromNumber(*s.number)

	case ContainerHeapChunks:
		cp := e.allocDescriptor()
		*cp = *s
		cp.refs = 1
		newBytes := e.chunks.Alloc(s.chunk.size)
		copy(newBytes, s.chunk.bytes)
		cp.chunk = &heapChunk{size: s.chunk.size, length: s.chunk.length, bytes: newBytes}
		return cp

	default: // ContainerLitTable, ContainerMagic, ContainerMagicEx, ContainerUint32
		cp := e.allocDescriptor()
		*cp = *s
		cp.refs = 1
		return cp
	}
}
