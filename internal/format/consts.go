// Package format houses the low-level layout of buddy block headers. Headers
// live in the first bytes of every block inside an arena and are read and
// written in place, so the codec here is allocation-free and independent of
// the allocator that drives it.
package format

var (
	// BlockSignature is the two-byte tag at the start of every block header.
	// Layout:
	//   0x00  'b' 'm'
	BlockSignature = []byte{'b', 'm'}
)

const (
	// HeaderSize is the size of a block header. A block of order k has a
	// payload capacity of 2^k - HeaderSize bytes.
	HeaderSize = 0x10

	// SignatureSize is the length of BlockSignature.
	SignatureSize = 2

	// Block header field offsets (relative to the header start).
	//
	//	Offset  Size  Description
	//	0x00    2     Signature 'bm'
	//	0x02    1     Flags (bit 0 = used)
	//	0x03    1     Order
	//	0x04    4     Requested payload length, 0 while free
	//	0x08    8     Link: absolute address of the next header, 0 = end
	SignatureOffset = 0x00
	FlagsOffset     = 0x02
	OrderOffset     = 0x03
	LengthOffset    = 0x04
	LinkOffset      = 0x08

	// FlagUsed marks a block as handed out to a caller.
	FlagUsed = 0x01

	// MaxOrder is the largest order a header can describe. Requested
	// lengths are stored as uint32, so arenas stay below 2GB.
	MaxOrder = 30
)
