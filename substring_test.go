package tinystr

import (
	"testing"

	"github.com/vsperson/tinystr/internal/cesu8"
)

// astralCodeUnits returns "aé🙂b" as the sequence of UTF-16 code units
// CESU-8 encodes independently: 'a', 'é', the high surrogate, the low
// surrogate of U+1F642, and 'b' — five units, since CESU-8 (unlike
// plain UTF-8) never folds an astral character's surrogate pair back
// into one unit.
func astralCodeUnits() []uint16 {
	return []uint16{'a', 0x00E9, 0xD83D, 0xDE42, 'b'}
}

func TestSubstringCrossesSurrogatePairBoundary(t *testing.T) {
	e := newTestEngine(t)

	var buf []byte
	for _, cu := range astralCodeUnits() {
		buf = cesu8.Encode(buf, cu)
	}
	s := e.NewFromBytes(buf)
	defer e.Deref(s)

	if got := e.Len(s); got != 5 {
		t.Fatalf("Len(s) = %d, want 5 code units (a, é, high surrogate, low surrogate, b)", got)
	}

	sub := e.Substring(s, 1, 4)
	defer e.Deref(sub)

	var want []byte
	want = cesu8.Encode(want, 0x00E9)
	want = cesu8.Encode(want, 0xD83D)
	want = cesu8.Encode(want, 0xDE42)

	if got := e.Bytes(sub); string(got) != string(want) {
		t.Fatalf("Substring(1,4) bytes = %q, want %q (\"é🙂\")", got, want)
	}
	if got := e.Len(sub); got != 3 {
		t.Fatalf("Substring(1,4) code-unit length = %d, want 3", got)
	}
}

func TestSubstringMiddleRange(t *testing.T) {
	e := newTestEngine(t)
	s := e.NewFromBytes([]byte("hello world"))
	defer e.Deref(s)

	sub := e.Substring(s, 6, 11)
	defer e.Deref(sub)

	if got := string(e.Bytes(sub)); got != "world" {
		t.Fatalf("Substring(6,11) = %q, want world", got)
	}
}

func TestSubstringStartEqualsEndIsEmpty(t *testing.T) {
	e := newTestEngine(t)
	s := e.NewFromBytes([]byte("hello"))
	defer e.Deref(s)

	sub := e.Substring(s, 2, 2)
	defer e.Deref(sub)

	if e.Len(sub) != 0 {
		t.Fatalf("Substring(2,2) should be empty, got length %d", e.Len(sub))
	}
}

func TestSubstringStartAfterEndIsEmpty(t *testing.T) {
	e := newTestEngine(t)
	s := e.NewFromBytes([]byte("hello"))
	defer e.Deref(s)

	sub := e.Substring(s, 4, 1)
	defer e.Deref(sub)

	if e.Len(sub) != 0 {
		t.Fatalf("Substring with start>end should be empty")
	}
}

func TestSubstringFullRangeCanonicalizes(t *testing.T) {
	e := newTestEngine(t)
	s := e.NewFromBytes([]byte("length"))
	defer e.Deref(s)

	sub := e.Substring(s, 0, e.Len(s))
	defer e.Deref(sub)

	if sub.Container() != ContainerMagic {
		t.Fatalf("Substring spanning the whole string should canonicalize like any NewFromBytes")
	}
}

func TestTrimStripsLeadingAndTrailingWhitespace(t *testing.T) {
	e := newTestEngine(t)
	s := e.NewFromBytes([]byte("  \t hello world \n "))
	defer e.Deref(s)

	trimmed := e.Trim(s)
	defer e.Deref(trimmed)

	if got := string(e.Bytes(trimmed)); got != "hello world" {
		t.Fatalf("Trim = %q, want %q", got, "hello world")
	}
}

func TestTrimAllWhitespaceIsEmpty(t *testing.T) {
	e := newTestEngine(t)
	s := e.NewFromBytes([]byte("   \t\n  "))
	defer e.Deref(s)

	trimmed := e.Trim(s)
	defer e.Deref(trimmed)

	if e.Len(trimmed) != 0 {
		t.Fatalf("Trim of all-whitespace should be empty, got length %d", e.Len(trimmed))
	}
}

func TestTrimNoWhitespaceIsUnchanged(t *testing.T) {
	e := newTestEngine(t)
	s := e.NewFromBytes([]byte("clean"))
	defer e.Deref(s)

	trimmed := e.Trim(s)
	defer e.Deref(trimmed)

	if got := string(e.Bytes(trimmed)); got != "clean" {
		t.Fatalf("Trim = %q, want clean", got)
	}
}
