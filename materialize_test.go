package tinystr

import "testing"

func TestWriteToTooSmallReturnsNegativeSize(t *testing.T) {
	e := newTestEngine(t)
	s := e.NewFromBytes([]byte("needs more room"))
	defer e.Deref(s)

	want := e.Size(s)
	got := e.WriteTo(s, make([]byte, want-1))
	if got != -want {
		t.Fatalf("WriteTo with undersized buffer = %d, want %d", got, -want)
	}
}

func TestWriteToExactSize(t *testing.T) {
	e := newTestEngine(t)
	s := e.NewFromBytes([]byte("exact fit"))
	defer e.Deref(s)

	buf := make([]byte, e.Size(s))
	n := e.WriteTo(s, buf)
	if n != len(buf) {
		t.Fatalf("WriteTo = %d, want %d", n, len(buf))
	}
	if string(buf) != "exact fit" {
		t.Fatalf("buf = %q", buf)
	}
}

func TestBytesRoundTripsEveryContainer(t *testing.T) {
	e := newTestEngine(t)

	cases := []struct {
		name string
		s    *String
		want string
	}{
		{"magic", e.NewMagicString(1), "length"},
		{"uint32", e.NewFromUint32(123), "123"},
		{"number", e.NewFromNumber(1.5), "1.5"},
		{"heapchunk", e.NewFromBytes([]byte("not canonical at all")), "not canonical at all"},
	}

	for _, tc := range cases {
		if got := string(e.Bytes(tc.s)); got != tc.want {
			t.Errorf("%s: Bytes = %q, want %q", tc.name, got, tc.want)
		}
		e.Deref(tc.s)
	}
}
