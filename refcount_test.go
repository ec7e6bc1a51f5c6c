package tinystr

import (
	"testing"

	"github.com/vsperson/tinystr/config"
)

type countingGCHook struct {
	invalidated int
	ran         int
	onRun       func()
}

func (h *countingGCHook) InvalidateCaches() { h.invalidated++ }
func (h *countingGCHook) RunGC() {
	h.ran++
	if h.onRun != nil {
		h.onRun()
	}
}

func TestRefIncrementsAndDerefFrees(t *testing.T) {
	e := newTestEngine(t)
	s := e.NewFromBytes([]byte("a reasonably long heap-backed string"))

	if s.Refs() != 1 {
		t.Fatalf("refs = %d, want 1", s.Refs())
	}

	same := e.Ref(s)
	if same != s {
		t.Fatalf("Ref returned a different descriptor without overflow")
	}
	if s.Refs() != 2 {
		t.Fatalf("refs = %d, want 2", s.Refs())
	}

	e.Deref(s)
	if s.Refs() != 1 {
		t.Fatalf("refs = %d, want 1 after one Deref", s.Refs())
	}
	e.Deref(s)
}

func TestRefOverflowDeepCopiesWhenGCFreesNothing(t *testing.T) {
	hook := &countingGCHook{}
	cfg := config.Default()
	e := NewEngine(cfg, hook)

	s := e.NewFromBytes([]byte("overflow target"))
	s.refs = 1<<32 - 1 // one increment from wrapping to zero

	cp := e.Ref(s)

	if cp == s {
		t.Fatalf("expected a deep copy, got the same descriptor back")
	}
	if s.refs != 1<<32-1 {
		t.Fatalf("original refs = %d, want unchanged at max", s.refs)
	}
	if cp.Refs() != 1 {
		t.Fatalf("copy refs = %d, want 1", cp.Refs())
	}
	if hook.invalidated != 1 || hook.ran != 1 {
		t.Fatalf("gc hook called invalidated=%d ran=%d, want 1,1", hook.invalidated, hook.ran)
	}
	if !e.Equal(s, cp) {
		t.Fatalf("deep copy should be equal in content to the original")
	}
}

func TestRefOverflowReusesDescriptorWhenGCFreesHolders(t *testing.T) {
	hook := &countingGCHook{}
	cfg := config.Default()
	e := NewEngine(cfg, hook)

	s := e.NewFromBytes([]byte("overflow target that gc rescues"))
	s.refs = 1<<32 - 1

	hook.onRun = func() {
		s.refs = 5 // simulate other holders being released during GC
	}

	same := e.Ref(s)
	if same != s {
		t.Fatalf("expected the same descriptor back, GC freed other holders")
	}
	if s.refs != 6 {
		t.Fatalf("refs = %d, want 6 (5 + the bump after GC)", s.refs)
	}
}

func TestDeepCopyHeapChunksUsesFreshChunk(t *testing.T) {
	e := newTestEngine(t)
	s := e.NewFromBytes([]byte("a string long enough to stay a heap chunk"))

	cp := e.deepCopy(s)
	defer e.Deref(cp)

	if cp.chunk == s.chunk {
		t.Fatalf("deep copy shares the original's chunk pointer")
	}
	if !e.Equal(s, cp) {
		t.Fatalf("deep copy must be content-equal to the original")
	}
	e.Deref(s)
	if got := string(e.Bytes(cp)); got != "a string long enough to stay a heap chunk" {
		t.Fatalf("copy bytes = %q", got)
	}
}
