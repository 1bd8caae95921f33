package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/buddykit/buddy/alloc"
	"github.com/joshuapare/buddykit/cmd/bmctl/logger"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	jsonOut    bool
	policyFlag string
	minOrder   int
	maxOrder   int
)

var rootCmd = &cobra.Command{
	Use:   "bmctl",
	Short: "Drive and inspect a buddy-block allocator",
	Long: `bmctl runs allocation scenarios against a binary buddy allocator backed
by anonymous mmap arenas and prints the block list and memory totals after
every step.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		return logger.Init(logger.Options{Enabled: !quiet, Level: level, Output: os.Stderr})
	},
	SilenceUsage: true,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output and debug logging")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&policyFlag, "policy", "", "Placement policy: best or first (overrides scenario)")
	rootCmd.PersistentFlags().IntVar(&minOrder, "min-order", 0, "log2 of the smallest block (overrides scenario)")
	rootCmd.PersistentFlags().IntVar(&maxOrder, "max-order", 0, "log2 of the arena size (overrides scenario)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// allocConfig merges scenario settings with the global flags. Flags win.
func allocConfig(sc Scenario) (alloc.Config, error) {
	cfg := alloc.DefaultConfig()
	if sc.MinOrder != 0 {
		cfg.MinOrder = sc.MinOrder
	}
	if sc.MaxOrder != 0 {
		cfg.MaxOrder = sc.MaxOrder
	}
	policy := sc.Policy
	if policyFlag != "" {
		policy = policyFlag
	}
	if policy != "" {
		p, err := alloc.ParsePolicy(policy)
		if err != nil {
			return cfg, err
		}
		cfg.Policy = p
	}
	if minOrder != 0 {
		cfg.MinOrder = minOrder
	}
	if maxOrder != 0 {
		cfg.MaxOrder = maxOrder
	}
	cfg.Logger = logger.L
	return cfg, cfg.Validate()
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
