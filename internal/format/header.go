package format

import (
	"fmt"

	"github.com/joshuapare/buddykit/internal/buf"
)

// Header is the decoded form of a block header.
type Header struct {
	Used   bool   // True while the block is handed out
	Order  int    // Capacity exponent; the block spans 2^Order bytes
	Length uint32 // Bytes the caller asked for (0 while free)
	Next   uint64 // Absolute address of the next header in the registry, 0 = end
}

// Capacity returns the total block size including the header.
func (h Header) Capacity() int {
	return 1 << h.Order
}

// Payload returns the number of bytes available to a caller.
func (h Header) Payload() int {
	return h.Capacity() - HeaderSize
}

// ParseHeader decodes the header at the start of b.
func ParseHeader(b []byte) (Header, error) {
	if !buf.Has(b, 0, HeaderSize) {
		return Header{}, fmt.Errorf("header: %w", ErrTruncated)
	}
	if b[SignatureOffset] != BlockSignature[0] || b[SignatureOffset+1] != BlockSignature[1] {
		return Header{}, fmt.Errorf("header: %w", ErrSignatureMismatch)
	}
	order := int(b[OrderOffset])
	if order > MaxOrder {
		return Header{}, fmt.Errorf("header: %w (%d)", ErrBadOrder, order)
	}
	return Header{
		Used:   b[FlagsOffset]&FlagUsed != 0,
		Order:  order,
		Length: ReadU32(b, LengthOffset),
		Next:   ReadU64(b, LinkOffset),
	}, nil
}

// PutHeader encodes h at the start of b. The caller guarantees that b holds
// at least HeaderSize bytes.
func PutHeader(b []byte, h Header) {
	copy(b[SignatureOffset:SignatureOffset+SignatureSize], BlockSignature)
	var flags byte
	if h.Used {
		flags |= FlagUsed
	}
	b[FlagsOffset] = flags
	b[OrderOffset] = byte(h.Order)
	PutU32(b, LengthOffset, h.Length)
	PutU64(b, LinkOffset, h.Next)
}

// PutNext rewrites only the link field.
func PutNext(b []byte, next uint64) {
	PutU64(b, LinkOffset, next)
}

// ClearHeader wipes a header that no longer denotes a block, so a stale
// signature cannot be mistaken for a live one.
func ClearHeader(b []byte) {
	clear(b[:HeaderSize])
}
