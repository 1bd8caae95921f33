package alloc

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joshuapare/buddykit/buddy/arena"
	"github.com/joshuapare/buddykit/internal/format"
)

const (
	// DefaultMinOrder is the smallest block order (16 bytes).
	DefaultMinOrder = 4

	// DefaultMaxOrder is the arena order (4KB, one page on most systems).
	DefaultMaxOrder = 12
)

// Runtime debug flag for allocation logging - controlled by BUDDY_LOG_ALLOC env var.
var logAlloc = os.Getenv("BUDDY_LOG_ALLOC") != ""

// Config controls allocator geometry and behavior.
type Config struct {
	// MinOrder is log2 of the smallest block the splitter will produce.
	// 2^MinOrder must hold at least a block header.
	// Default: 4 (16 bytes)
	MinOrder int

	// MaxOrder is log2 of the arena size. Requests above 2^MaxOrder - 16
	// bytes always fail.
	// Default: 12 (4096 bytes)
	MaxOrder int

	// Policy is the initial placement policy.
	// Default: BestFit
	Policy Policy

	// Source supplies arena regions.
	// Default: arena.MmapSource{}
	Source arena.Source

	// Logger receives diagnostics (warnings for rejected calls, debug
	// messages for arena growth and release).
	// Default: discarded, or text on stderr when BUDDY_LOG_ALLOC is set
	Logger *slog.Logger
}

// DefaultConfig returns the geometry of the classic 4KB-arena allocator.
func DefaultConfig() Config {
	return Config{
		MinOrder: DefaultMinOrder,
		MaxOrder: DefaultMaxOrder,
		Policy:   BestFit,
	}
}

// Validate checks the geometry and policy.
func (c Config) Validate() error {
	if c.MinOrder < 0 || 1<<c.MinOrder < format.HeaderSize {
		return fmt.Errorf("%w: min order %d cannot hold a %d-byte header",
			ErrBadConfig, c.MinOrder, format.HeaderSize)
	}
	if c.MaxOrder <= c.MinOrder {
		return fmt.Errorf("%w: max order %d must exceed min order %d",
			ErrBadConfig, c.MaxOrder, c.MinOrder)
	}
	if c.MaxOrder > format.MaxOrder {
		return fmt.Errorf("%w: max order %d exceeds %d", ErrBadConfig, c.MaxOrder, format.MaxOrder)
	}
	if !c.Policy.valid() {
		return fmt.Errorf("%w: %v", ErrBadConfig, c.Policy)
	}
	return nil
}

// ArenaSize returns 2^MaxOrder.
func (c Config) ArenaSize() int {
	return 1 << c.MaxOrder
}

// PayloadCap returns the largest request the configuration can satisfy.
func (c Config) PayloadCap() int {
	return c.ArenaSize() - format.HeaderSize
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	if logAlloc {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.DiscardHandler)
}
