package tinystr

// GCHook is the external escape hatch refcount overflow triggers
// (spec.md §4.3, §9): "invalidate all property-lookup caches and run a
// full GC pass". It is the one seam into the engine's wider world — the
// property-lookup cache and the garbage collector — this package never
// needs to know more about than "invalidate, then collect".
type GCHook interface {
	// InvalidateCaches drops every cached property lookup that might
	// hold a reference to the string about to be overflow-checked.
	InvalidateCaches()
	// RunGC performs a full collection pass, potentially releasing
	// references to the descriptor whose refcount just overflowed.
	RunGC()
}

// NoopGCHook is the default GCHook: it does nothing, so refcount overflow
// always takes the deep-copy branch. Design note §9 recommends exactly
// this for embeddings with no manual GC hook to call.
type NoopGCHook struct{}

func (NoopGCHook) InvalidateCaches() {}
func (NoopGCHook) RunGC()            {}
