package charclass

import "testing"

func TestIsWhiteSpace(t *testing.T) {
	for _, cu := range []uint16{' ', '\t', '\v', '\f', 0xA0, 0xFEFF} {
		if !IsWhiteSpace(cu) {
			t.Fatalf("%#x should be WhiteSpace", cu)
		}
	}
	if IsWhiteSpace('a') {
		t.Fatalf("'a' should not be WhiteSpace")
	}
}

func TestIsLineTerminator(t *testing.T) {
	for _, cu := range []uint16{'\n', '\r', 0x2028, 0x2029} {
		if !IsLineTerminator(cu) {
			t.Fatalf("%#x should be a LineTerminator", cu)
		}
	}
	if IsLineTerminator(' ') {
		t.Fatalf("space should not be a LineTerminator")
	}
}
