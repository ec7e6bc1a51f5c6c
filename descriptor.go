package tinystr

// Container selects which of the six storage strategies a String uses.
type Container uint8

const (
	// ContainerLitTable points into the engine's literal table.
	ContainerLitTable Container = iota
	// ContainerMagic names a built-in well-known constant string.
	ContainerMagic
	// ContainerMagicEx names an application-extended constant string.
	ContainerMagicEx
	// ContainerUint32 packs the decimal form of a uint32 in the descriptor.
	ContainerUint32
	// ContainerHeapNumber points at a separately allocated float64 whose
	// canonical decimal form is the logical string.
	ContainerHeapNumber
	// ContainerHeapChunks points at a heap-allocated variable-width byte
	// chunk: non-canonical text that matched no magic entry.
	ContainerHeapChunks
)

func (c Container) String() string {
	switch c {
	case ContainerLitTable:
		return "LitTable"
	case ContainerMagic:
		return "Magic"
	case ContainerMagicEx:
		return "MagicEx"
	case ContainerUint32:
		return "Uint32"
	case ContainerHeapNumber:
		return "HeapNumber"
	case ContainerHeapChunks:
		return "HeapChunks"
	default:
		return "Container(?)"
	}
}

// heapChunk is a heap-allocated variable-width byte buffer: the payload
// for ContainerHeapChunks. size and length mirror the original engine's
// ecma_string_heap_header_t (byte-size, code-unit-length) invariant: size
// always equals len(bytes), and length always equals the codec's
// code-unit count of bytes.
type heapChunk struct {
	size   int
	length int
	bytes  []byte
}

// String is the polymorphic string value descriptor. Every reachable
// String has refs > 0 (spec invariant 4); its fields are interpreted
// according to container:
//
//   - ContainerLitTable, ContainerMagic, ContainerMagicEx, ContainerUint32
//     use common, the descriptor's single opaque payload word.
//   - ContainerHeapNumber uses number.
//   - ContainerHeapChunks uses chunk.
//
// Fast-path equality (equality.go) compares container, then whichever of
// common/number/chunk that container uses — the Go rendering of the
// original's single "payload as one word" comparison (design note (b):
// a tag-discriminated sum with a per-tag bitwise-equality predicate,
// since Go has no C-style union to overlay the four non-heap variants
// onto the two heap pointers).
type String struct {
	refs      uint32
	hash      uint64
	container Container

	common uint64 // lit handle / magic id / magic-ex id / uint32 value
	number *float64
	chunk  *heapChunk
}

// Container reports s's storage variant.
func (s *String) Container() Container {
	return s.container
}

// Hash returns s's cached hash. Spec invariant 3: this always equals the
// hash that would be computed from s's logical bytes.
func (s *String) Hash() uint64 {
	return s.hash
}

// Refs reports s's current reference count, mostly useful for tests and
// diagnostics.
func (s *String) Refs() uint32 {
	return s.refs
}
