// Package alloc implements a binary buddy allocator over OS-mapped arenas.
//
// # Overview
//
// Memory is obtained from an arena.Source in regions of exactly 2^MaxOrder
// bytes. Each region starts life as a single free block and is split in
// halves on demand until a block of the smallest sufficient order remains.
// Freed blocks merge with their buddy (the other half of the parent they
// were split from) until the buddy is busy or the whole arena is free again,
// at which point the region is handed back to the OS.
//
// # Allocator Interface
//
//   - Alloc(n): hand out n bytes; returns the payload address and a slice
//   - Free(p): return a block; rejects unknown pointers and double frees
//   - Realloc(p, n): grow, shrink or keep a block
//   - SetPolicy(BestFit | FirstFit): placement for later allocations
//   - Dump(): snapshot of every block plus aggregate totals
//
// # Usage Example
//
//	a, err := alloc.New(nil) // DefaultConfig: 16B minimum block, 4KB arenas
//	if err != nil {
//	    return err
//	}
//	defer a.Close()
//
//	p, buf, err := a.Alloc(2000)
//	if err != nil {
//	    return err
//	}
//	copy(buf, payload)
//
//	p, buf, err = a.Realloc(p, 3000)
//	...
//	err = a.Free(p)
//
// # Block Layout
//
// Every block begins with a 16-byte header (see internal/format) holding the
// used flag, the order, the length the caller asked for and the address of
// the next block in the registry. A block of order k therefore offers
// 2^k - 16 payload bytes:
//
//	Order  Block   Payload
//	  5     32B      16B
//	  8    256B     240B
//	 11      2KB   2032B
//	 12      4KB   4080B   (default arena: largest request)
//
// # Registry
//
// All blocks of all arenas are threaded into one singly-linked list through
// their headers. Placement scans that list:
//
//   - BestFit: smallest sufficient order, earliest block on ties
//   - FirstFit: first sufficient block in list order
//
// New arenas are appended to the tail, and a block produced by a split is
// linked directly after its parent.
//
// # Buddy Alignment
//
// A block of order k always starts at an arena offset whose low k bits are
// zero, so its buddy is found at offset XOR 2^k without touching the list.
//
// # Errors
//
// Every failed call leaves the allocator exactly as it was and logs a
// warning through Config.Logger. Errors wrap the sentinels in errors.go.
//
// # Thread Safety
//
// Allocator instances are not thread-safe. Callers must synchronize access
// externally.
package alloc
