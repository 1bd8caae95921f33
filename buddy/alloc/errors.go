package alloc

import "errors"

var (
	// ErrInvalidSize indicates a request below 1 byte or above the payload of a whole arena.
	ErrInvalidSize = errors.New("alloc: invalid size")

	// ErrArenaExhausted indicates the arena source could not supply another region.
	ErrArenaExhausted = errors.New("alloc: arena exhausted")

	// ErrUnknownPointer indicates a pointer that does not address a tracked block.
	ErrUnknownPointer = errors.New("alloc: unknown pointer")

	// ErrDoubleFree indicates an attempt to free a block that is already free.
	ErrDoubleFree = errors.New("alloc: double free")

	// ErrClosed indicates use of an allocator after Close.
	ErrClosed = errors.New("alloc: allocator closed")

	// ErrBadConfig indicates an invalid Config.
	ErrBadConfig = errors.New("alloc: bad config")
)

// ErrCorrupt indicates that Verify found the registry and the block headers out of agreement.
var ErrCorrupt = errors.New("alloc: corrupt registry")
