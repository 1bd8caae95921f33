package arena

import "errors"

var (
	// ErrExhausted indicates a Source refused to hand out another region.
	ErrExhausted = errors.New("arena: source exhausted")

	// ErrBadRegion indicates a region whose size does not match the arena order.
	ErrBadRegion = errors.New("arena: region size mismatch")
)
