// Package pool stands in for the block allocator and number-cell pool the
// spec treats as external collaborators (spec.md §6): alloc(size)/free for
// heap chunks, and alloc_number()/free_number() for the number cells
// backing HEAP_NUMBER strings. sync.Pool is the idiomatic Go substitute
// for the embedded target's small-object pool; no retrieved example repo
// carries a bespoke allocator this core could import instead.
package pool

import "sync"

// ChunkAllocator hands out byte slices for heap-chunk payloads and tracks
// outstanding bytes so callers (stats.go's logging) can report pool
// pressure the way the original's GC-escape-hatch logging does.
type ChunkAllocator struct {
	mu          sync.Mutex
	outstanding int64
}

// Alloc returns a zeroed byte slice of the requested size.
func (a *ChunkAllocator) Alloc(size int) []byte {
	a.mu.Lock()
	a.outstanding += int64(size)
	a.mu.Unlock()
	return make([]byte, size)
}

// Free releases a slice previously returned by Alloc. The spec requires
// the exact size be passed back on free; Go needs no such bookkeeping to
// reclaim the memory, but we still account for it to keep Outstanding
// meaningful.
func (a *ChunkAllocator) Free(size int) {
	a.mu.Lock()
	a.outstanding -= int64(size)
	a.mu.Unlock()
}

// Outstanding returns the number of bytes currently allocated and not yet
// freed.
func (a *ChunkAllocator) Outstanding() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.outstanding
}

// NumberPool recycles the number cells backing HEAP_NUMBER strings.
type NumberPool struct {
	mu          sync.Mutex
	outstanding int64
	pool        sync.Pool
}

// NewNumberPool returns a ready-to-use number cell pool.
func NewNumberPool() *NumberPool {
	return &NumberPool{pool: sync.Pool{New: func() any { return new(float64) }}}
}

// Alloc returns a number cell, possibly recycled.
func (p *NumberPool) Alloc(v float64) *float64 {
	cell := p.pool.Get().(*float64)
	*cell = v
	p.mu.Lock()
	p.outstanding += 8
	p.mu.Unlock()
	return cell
}

// Free returns a number cell to the pool.
func (p *NumberPool) Free(cell *float64) {
	p.mu.Lock()
	p.outstanding -= 8
	p.mu.Unlock()
	p.pool.Put(cell)
}

// Outstanding returns the number of bytes currently live in cells handed
// out by Alloc and not yet returned via Free.
func (p *NumberPool) Outstanding() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.outstanding
}
