package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/buddykit/buddy/alloc"
	"github.com/joshuapare/buddykit/buddy/printer"
	"github.com/joshuapare/buddykit/cmd/bmctl/logger"
)

var (
	runStrict    bool
	runShowASCII bool
	runFinalOnly bool
)

func init() {
	rootCmd.AddCommand(newRunCmd())
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [scenario.toml]",
		Short: "Execute an allocation scenario and print the block list after each step",
		Long: `The run command executes the steps of a TOML scenario against a fresh
allocator. Without a file it runs the built-in driver: alloc 2000, 2500 and
4081 bytes, then free p1, p1-5 and p2.

Failed steps are reported and the run continues, unless --strict is set.

Example:
  bmctl run
  bmctl run --policy first scenario.toml
  bmctl run --json --final scenario.toml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(args)
		},
	}
	cmd.Flags().BoolVar(&runStrict, "strict", false, "Stop at the first failing step")
	cmd.Flags().BoolVar(&runShowASCII, "ascii", false, "Show lead bytes as characters")
	cmd.Flags().BoolVar(&runFinalOnly, "final", false, "Print only the final state")
	return cmd
}

func runRun(args []string) error {
	sc := driverScenario()
	if len(args) == 1 {
		printVerbose("Loading scenario: %s\n", args[0])
		var err error
		if sc, err = loadScenario(args[0]); err != nil {
			return err
		}
	}

	cfg, err := allocConfig(sc)
	if err != nil {
		return err
	}
	a, err := alloc.New(&cfg)
	if err != nil {
		return fmt.Errorf("failed to create allocator: %w", err)
	}
	defer a.Close()

	r := newRunner(a)
	failed := 0
	for i, step := range sc.Steps {
		res := r.exec(step)
		if res.Err != nil {
			failed++
			logger.Warn("step failed", "step", i+1, "op", step.Op, "error", res.Err)
		}
		if !runFinalOnly {
			if err := r.report(i+1, step, res); err != nil {
				return err
			}
		}
		if res.Err != nil && runStrict {
			return fmt.Errorf("step %d (%s): %w", i+1, step, res.Err)
		}
	}
	if runFinalOnly {
		if err := r.report(len(sc.Steps), Step{Op: opDump}, stepResult{}); err != nil {
			return err
		}
	}

	st := a.Stats()
	printVerbose("\n%d steps, %d failed, %d arenas mapped, %d released\n",
		len(sc.Steps), failed, st.GrowCalls, st.ReleaseCalls-st.ReleaseErrors)
	return nil
}

// stepResult is what one step produced.
type stepResult struct {
	Ptr alloc.Ptr
	Err error
}

// runner executes steps and keeps the named pointers.
type runner struct {
	a    *alloc.Allocator
	ptrs map[string]alloc.Ptr
}

func newRunner(a *alloc.Allocator) *runner {
	return &runner{a: a, ptrs: make(map[string]alloc.Ptr)}
}

var errUnboundName = errors.New("unbound pointer name")

func (r *runner) target(s Step) (alloc.Ptr, error) {
	p, ok := r.ptrs[s.Target]
	if !ok {
		return alloc.Nil, fmt.Errorf("%w %q", errUnboundName, s.Target)
	}
	return p + alloc.Ptr(s.Offset), nil
}

func (r *runner) exec(s Step) stepResult {
	switch s.Op {
	case opAlloc:
		p, _, err := r.a.Alloc(s.Size)
		if err != nil {
			return stepResult{Err: err}
		}
		r.ptrs[s.Name] = p
		return stepResult{Ptr: p}

	case opFree:
		p, err := r.target(s)
		if err != nil {
			return stepResult{Err: err}
		}
		return stepResult{Ptr: p, Err: r.a.Free(p)}

	case opRealloc:
		p, err := r.target(s)
		if err != nil {
			return stepResult{Err: err}
		}
		np, _, err := r.a.Realloc(p, s.Size)
		if err != nil {
			return stepResult{Err: err}
		}
		r.ptrs[s.name()] = np
		return stepResult{Ptr: np}

	case opPolicy:
		p, err := alloc.ParsePolicy(s.Policy)
		if err != nil {
			return stepResult{Err: err}
		}
		return stepResult{Err: r.a.SetPolicy(p)}

	case opDump:
		return stepResult{}

	default:
		return stepResult{Err: fmt.Errorf("unknown op %q", s.Op)}
	}
}

// jsonStep is the JSON form of one step's outcome.
type jsonStep struct {
	Step   int          `json:"step"`
	Call   string       `json:"call"`
	Ptr    string       `json:"ptr,omitempty"`
	Error  string       `json:"error,omitempty"`
	Report alloc.Report `json:"report"`
}

func (r *runner) report(n int, s Step, res stepResult) error {
	rep := r.a.Dump()

	if jsonOut {
		out := jsonStep{Step: n, Call: s.String(), Report: rep}
		if res.Ptr != alloc.Nil {
			out.Ptr = res.Ptr.String()
		}
		if res.Err != nil {
			out.Error = res.Err.Error()
		}
		return printJSON(out)
	}

	if quiet {
		return nil
	}
	switch {
	case res.Err != nil:
		printInfo("\n[%d] %s: %v\n", n, s, res.Err)
	case res.Ptr != alloc.Nil:
		printInfo("\n[%d] %s -> %v\n", n, s, res.Ptr)
	default:
		printInfo("\n[%d] %s\n", n, s)
	}

	opts := printer.DefaultOptions()
	opts.ShowASCII = runShowASCII
	return printer.Fprint(os.Stdout, rep, opts)
}
