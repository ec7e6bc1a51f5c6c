package magictab

import "testing"

func TestLookupBuiltinFindsKnownEntry(t *testing.T) {
	id, ok := LookupBuiltin([]byte("length"), LengthLimit)
	if !ok {
		t.Fatalf("expected \"length\" to be a built-in magic string")
	}
	if string(BuiltinBytes(id)) != "length" {
		t.Fatalf("BuiltinBytes(%d) = %q, want length", id, BuiltinBytes(id))
	}
}

func TestLookupBuiltinMissesUnknownEntry(t *testing.T) {
	if _, ok := LookupBuiltin([]byte("definitely not a magic string"), LengthLimit); ok {
		t.Fatalf("expected no match for arbitrary text")
	}
}

func TestLookupBuiltinRejectsOverLimit(t *testing.T) {
	long := make([]byte, 5)
	for i := range long {
		long[i] = 'a'
	}
	if _, ok := LookupBuiltin(long, 4); ok {
		t.Fatalf("expected strings over the caller-supplied limit to never match")
	}
}

func TestBuiltinIDZeroIsEmptyString(t *testing.T) {
	if BuiltinSize(0) != 0 {
		t.Fatalf("builtin id 0 should be the empty string")
	}
}

func TestExtendedRegisterDedupes(t *testing.T) {
	ext := NewExtended()
	id1 := ext.Register([]byte("customKey"))
	id2 := ext.Register([]byte("customKey"))
	if id1 != id2 {
		t.Fatalf("registering the same bytes twice should return the same id")
	}
	if ext.Count() != 1 {
		t.Fatalf("Count = %d, want 1", ext.Count())
	}
}

func TestExtendedLookupAndLength(t *testing.T) {
	ext := NewExtended()
	id := ext.Register([]byte("héllo"))

	gotID, ok := ext.Lookup([]byte("héllo"), LengthLimit)
	if !ok || gotID != id {
		t.Fatalf("Lookup = (%d, %t), want (%d, true)", gotID, ok, id)
	}
	if ext.Length(id) != 5 {
		t.Fatalf("Length = %d, want 5 code units", ext.Length(id))
	}
}
