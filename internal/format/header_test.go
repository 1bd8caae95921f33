package format

import (
	"errors"
	"testing"
)

func TestHeaderRoundTrip(t *testing.T) {
	b := make([]byte, 64)
	want := Header{Used: true, Order: 11, Length: 2000, Next: 0x7f00_dead_beef}
	PutHeader(b, want)

	if b[0] != 'b' || b[1] != 'm' {
		t.Fatalf("signature not written: %x", b[:2])
	}
	got, err := ParseHeader(b)
	if err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}
	if got != want {
		t.Fatalf("header mismatch: got %+v want %+v", got, want)
	}
	if got.Capacity() != 2048 || got.Payload() != 2048-HeaderSize {
		t.Fatalf("unexpected capacity/payload: %d/%d", got.Capacity(), got.Payload())
	}
}

func TestHeaderFreeFlag(t *testing.T) {
	b := make([]byte, HeaderSize)
	PutHeader(b, Header{Order: 4})
	if b[FlagsOffset] != 0 {
		t.Fatalf("free header should have zero flags, got %#x", b[FlagsOffset])
	}
	h, err := ParseHeader(b)
	if err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}
	if h.Used {
		t.Fatalf("expected free header")
	}
}

func TestPutNext(t *testing.T) {
	b := make([]byte, HeaderSize)
	PutHeader(b, Header{Order: 5, Next: 1})
	PutNext(b, 0x1000)
	h, err := ParseHeader(b)
	if err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}
	if h.Next != 0x1000 || h.Order != 5 {
		t.Fatalf("PutNext clobbered header: %+v", h)
	}
}

func TestParseHeaderErrors(t *testing.T) {
	if _, err := ParseHeader(make([]byte, HeaderSize-1)); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}

	zero := make([]byte, HeaderSize)
	if _, err := ParseHeader(zero); !errors.Is(err, ErrSignatureMismatch) {
		t.Fatalf("expected ErrSignatureMismatch, got %v", err)
	}

	b := make([]byte, HeaderSize)
	PutHeader(b, Header{Order: 3})
	b[OrderOffset] = MaxOrder + 1
	if _, err := ParseHeader(b); !errors.Is(err, ErrBadOrder) {
		t.Fatalf("expected ErrBadOrder, got %v", err)
	}
}

func TestClearHeader(t *testing.T) {
	b := make([]byte, HeaderSize+4)
	PutHeader(b, Header{Used: true, Order: 7, Length: 9})
	b[HeaderSize] = 0xAA
	ClearHeader(b)
	if _, err := ParseHeader(b); !errors.Is(err, ErrSignatureMismatch) {
		t.Fatalf("cleared header should not parse, got %v", err)
	}
	if b[HeaderSize] != 0xAA {
		t.Fatalf("ClearHeader touched payload")
	}
}
