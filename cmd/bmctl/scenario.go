package main

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// Step operations.
const (
	opAlloc   = "alloc"
	opFree    = "free"
	opRealloc = "realloc"
	opPolicy  = "policy"
	opDump    = "dump"
)

// Scenario is a scripted sequence of allocator calls, usually read from TOML:
//
//	policy = "best"
//	max_order = 12
//
//	[[step]]
//	op = "alloc"
//	name = "p1"
//	size = 2000
//
//	[[step]]
//	op = "free"
//	target = "p1"
//	offset = -5
type Scenario struct {
	Policy   string `toml:"policy"`
	MinOrder int    `toml:"min_order"`
	MaxOrder int    `toml:"max_order"`
	Steps    []Step `toml:"step"`
}

// Step is one allocator call.
type Step struct {
	Op     string `toml:"op"`
	Name   string `toml:"name"`   // Binds the returned pointer (alloc, realloc)
	Size   int    `toml:"size"`   // Requested bytes (alloc, realloc)
	Target string `toml:"target"` // Pointer to operate on (free, realloc)
	Offset int    `toml:"offset"` // Added to the target pointer, for bogus-pointer tests
	Policy string `toml:"policy"` // New placement policy (policy)
}

// String renders the step the way the run log shows it.
func (s Step) String() string {
	target := s.Target
	if s.Offset != 0 {
		target = fmt.Sprintf("%s%+d", s.Target, s.Offset)
	}
	switch s.Op {
	case opAlloc:
		return fmt.Sprintf("%s = alloc(%d)", s.Name, s.Size)
	case opFree:
		return fmt.Sprintf("free(%s)", target)
	case opRealloc:
		return fmt.Sprintf("%s = realloc(%s, %d)", s.name(), target, s.Size)
	case opPolicy:
		return fmt.Sprintf("policy(%s)", s.Policy)
	default:
		return s.Op + "()"
	}
}

// name is the binding a realloc result is stored under.
func (s Step) name() string {
	if s.Name != "" {
		return s.Name
	}
	return s.Target
}

// validate checks that a step carries the fields its op needs.
func (s Step) validate() error {
	switch s.Op {
	case opAlloc:
		if s.Name == "" {
			return errors.New("alloc needs a name")
		}
	case opFree:
		if s.Target == "" {
			return errors.New("free needs a target")
		}
	case opRealloc:
		if s.Target == "" {
			return errors.New("realloc needs a target")
		}
	case opPolicy:
		if s.Policy == "" {
			return errors.New("policy needs a policy")
		}
	case opDump:
	default:
		return fmt.Errorf("unknown op %q", s.Op)
	}
	return nil
}

// Validate checks every step.
func (sc Scenario) Validate() error {
	for i, s := range sc.Steps {
		if err := s.validate(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

// loadScenario reads a TOML scenario. Unknown keys are rejected so typos do
// not silently skip steps.
func loadScenario(path string) (Scenario, error) {
	var sc Scenario
	md, err := toml.DecodeFile(path, &sc)
	if err != nil {
		return Scenario{}, fmt.Errorf("failed to read scenario: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return Scenario{}, fmt.Errorf("unknown scenario keys: %s", strings.Join(keys, ", "))
	}
	if err := sc.Validate(); err != nil {
		return Scenario{}, err
	}
	return sc, nil
}

// driverScenario is the classic driver: three requests around the 4KB arena
// limit, then frees including one of a pointer that was never handed out.
func driverScenario() Scenario {
	return Scenario{
		Steps: []Step{
			{Op: opAlloc, Name: "p1", Size: 2000},
			{Op: opAlloc, Name: "p2", Size: 2500},
			{Op: opAlloc, Name: "p3", Size: 4081},
			{Op: opFree, Target: "p1"},
			{Op: opFree, Target: "p1", Offset: -5},
			{Op: opFree, Target: "p2"},
		},
	}
}
