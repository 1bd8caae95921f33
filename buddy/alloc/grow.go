package alloc

import (
	"fmt"

	"github.com/joshuapare/buddykit/buddy/arena"
	"github.com/joshuapare/buddykit/internal/format"
)

// grow maps a new arena and appends it to the registry as one free block
// of MaxOrder. On failure the registry is unchanged.
func (a *Allocator) grow() (block, error) {
	size := a.cfg.ArenaSize()
	data, err := a.src.Map(size)
	if err != nil {
		return block{}, fmt.Errorf("%w: %w", ErrArenaExhausted, err)
	}
	ar, err := arena.New(data, a.cfg.MaxOrder)
	if err != nil {
		_ = a.src.Unmap(data)
		return block{}, fmt.Errorf("%w: %w", ErrArenaExhausted, err)
	}

	a.arenas.Insert(ar)
	ar.Track(0)
	b := block{ar: ar, off: 0, hdr: format.Header{Order: a.cfg.MaxOrder}}
	a.appendBlock(&b)

	a.stats.GrowCalls++
	a.stats.GrowBytes += size
	a.log.Debug("arena mapped", "arena", ar.String(), "arenas", a.arenas.Len())

	if a.onGrow != nil {
		a.onGrow(ar)
	}
	return b, nil
}

// release returns a fully reclaimed arena to its source. b must be the
// arena's only block. When the source refuses, the arena stays registered
// as a free MaxOrder block.
func (a *Allocator) release(b block) {
	a.stats.ReleaseCalls++
	if err := a.src.Unmap(b.ar.Bytes()); err != nil {
		a.stats.ReleaseErrors++
		a.log.Warn("arena release failed", "arena", b.ar.String(), "error", err)
		return
	}
	a.unlink(b)
	b.ar.Untrack(b.off)
	a.arenas.Remove(b.ar)
	a.log.Debug("arena released", "base", b.ar.Base(), "arenas", a.arenas.Len())
}
