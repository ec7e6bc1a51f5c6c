package cesu8

import "testing"

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, cu := range []uint16{0x41, 0x7FF, 0x800, 0xFFFF, 0xD83D} {
		var buf [MaxBytesPerUnit]byte
		enc := Encode(buf[:0], cu)
		got, width := Decode(enc)
		if got != cu {
			t.Fatalf("Decode(Encode(%#x)) = %#x", cu, got)
		}
		if width != len(enc) {
			t.Fatalf("width = %d, want %d", width, len(enc))
		}
	}
}

func TestLenCountsCodeUnitsNotBytes(t *testing.T) {
	b := []byte("héllo") // 'é' encodes to 2 bytes, 1 code unit
	if got := Len(b); got != 5 {
		t.Fatalf("Len = %d, want 5", got)
	}
}

func TestValidRejectsTruncatedSequence(t *testing.T) {
	b := []byte{0xE0, 0x80} // claims width 3, only 2 bytes present
	if Valid(b) {
		t.Fatalf("expected Valid to reject a truncated sequence")
	}
}

func TestValidAcceptsASCII(t *testing.T) {
	if !Valid([]byte("plain ascii text")) {
		t.Fatalf("expected Valid to accept plain ASCII")
	}
}

func TestDecodePrevMatchesForwardDecode(t *testing.T) {
	b := []byte("héllo")
	pos := len(b)
	var units []uint16
	for pos > 0 {
		cu, width := DecodePrev(b, pos)
		units = append([]uint16{cu}, units...)
		pos -= width
	}
	want := []uint16{'h', 0xe9, 'l', 'l', 'o'}
	if len(units) != len(want) {
		t.Fatalf("got %d units, want %d", len(units), len(want))
	}
	for i := range want {
		if units[i] != want[i] {
			t.Fatalf("unit %d = %#x, want %#x", i, units[i], want[i])
		}
	}
}

func TestLessOrdersByByteValue(t *testing.T) {
	if !Less([]byte("abc"), []byte("abd")) {
		t.Fatalf("expected abc < abd")
	}
	if !Less([]byte("ab"), []byte("abc")) {
		t.Fatalf("expected a prefix to sort first")
	}
	if Less([]byte("abc"), []byte("abc")) {
		t.Fatalf("a string must not be Less than itself")
	}
}
