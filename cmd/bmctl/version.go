package main

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/joshuapare/buddykit/buddy/alloc"
	"github.com/joshuapare/buddykit/internal/format"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// versionInfo is the build plus the allocator geometry this binary defaults to.
type versionInfo struct {
	Version    string `json:"version"`
	Commit     string `json:"commit"`
	Built      string `json:"built"`
	Platform   string `json:"platform"`
	HeaderSize int    `json:"header_size"`
	MinBlock   int    `json:"min_block"`
	ArenaSize  int    `json:"arena_size"`
	PayloadCap int    `json:"payload_cap"`
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information and default allocator geometry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersion()
		},
	}
}

func buildInfo() versionInfo {
	cfg := alloc.DefaultConfig()
	return versionInfo{
		Version:    version,
		Commit:     commit,
		Built:      date,
		Platform:   runtime.GOOS + "/" + runtime.GOARCH,
		HeaderSize: format.HeaderSize,
		MinBlock:   1 << cfg.MinOrder,
		ArenaSize:  cfg.ArenaSize(),
		PayloadCap: cfg.PayloadCap(),
	}
}

func runVersion() error {
	info := buildInfo()
	if jsonOut {
		return printJSON(info)
	}
	printInfo("bmctl %s\n", info.Version)
	printInfo("  commit: %s\n", info.Commit)
	printInfo("  built: %s (%s)\n", info.Built, info.Platform)
	printInfo("  geometry: %dB header, %dB min block, %dB arena, %dB max request\n",
		info.HeaderSize, info.MinBlock, info.ArenaSize, info.PayloadCap)
	return nil
}
