package alloc

import (
	"fmt"
	"strings"
)

// Ptr is the address of a payload handed out by Alloc or Realloc.
type Ptr uintptr

// Nil is the zero Ptr. Realloc(Nil, n) allocates and Free(Nil) does nothing.
const Nil Ptr = 0

// String implements fmt.Stringer.
func (p Ptr) String() string {
	return fmt.Sprintf("0x%x", uintptr(p))
}

// Policy selects which free block an allocation is carved from.
type Policy uint8

const (
	// BestFit picks the free block with the smallest sufficient order.
	BestFit Policy = iota
	// FirstFit picks the first sufficient free block in registry order.
	FirstFit
)

// String implements fmt.Stringer.
func (p Policy) String() string {
	switch p {
	case BestFit:
		return "best-fit"
	case FirstFit:
		return "first-fit"
	default:
		return fmt.Sprintf("Policy(%d)", uint8(p))
	}
}

// ParsePolicy accepts "best", "best-fit", "first" and "first-fit" in any case.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "best", "best-fit", "bestfit":
		return BestFit, nil
	case "first", "first-fit", "firstfit":
		return FirstFit, nil
	}
	return BestFit, fmt.Errorf("%w: unknown policy %q", ErrBadConfig, s)
}

func (p Policy) valid() bool {
	return p == BestFit || p == FirstFit
}
