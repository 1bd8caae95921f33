package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/buddykit/buddy/alloc"
)

func init() {
	rootCmd.AddCommand(newSizesCmd())
}

func newSizesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sizes",
		Short: "Print block sizes and payload capacity per order",
		Long: `The sizes command lists every block order the allocator can produce
with its total size and the largest request it serves.

Example:
  bmctl sizes
  bmctl sizes --max-order 16 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSizes()
		},
	}
	return cmd
}

// sizeClass is one row of the order table.
type sizeClass struct {
	Order   int `json:"order"`
	Block   int `json:"block"`
	Payload int `json:"payload"`
	MinReq  int `json:"min_request"`
}

func sizeClasses(cfg alloc.Config) []sizeClass {
	var out []sizeClass
	lo := 1
	for k := cfg.MinOrder; k <= cfg.MaxOrder; k++ {
		payload := alloc.PayloadOf(k)
		if payload < 1 {
			continue // header only
		}
		out = append(out, sizeClass{Order: k, Block: 1 << k, Payload: payload, MinReq: lo})
		lo = payload + 1
	}
	return out
}

func runSizes() error {
	cfg, err := allocConfig(Scenario{})
	if err != nil {
		return err
	}
	classes := sizeClasses(cfg)

	if jsonOut {
		return printJSON(classes)
	}

	printInfo("%5s %10s %10s  %s\n", "order", "block", "payload", "requests")
	for _, c := range classes {
		printInfo("%5d %10d %10d  %d..%d\n", c.Order, c.Block, c.Payload, c.MinReq, c.Payload)
	}
	printVerbose("\nArena: %d bytes, header: %d bytes\n", cfg.ArenaSize(), cfg.ArenaSize()-cfg.PayloadCap())
	return nil
}
