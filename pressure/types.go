package pressure

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by Solo and Duo.
var (
	// ErrNilInput indicates a nil graph or distance matrix.
	ErrNilInput = errors.New("pressure: graph and distance matrix are required")

	// ErrDimensionMismatch indicates the distance matrix was not built for the graph.
	ErrDimensionMismatch = errors.New("pressure: distance matrix does not match graph")

	// ErrUnknownStart indicates the start valve is not in the graph.
	ErrUnknownStart = errors.New("pressure: unknown start valve")

	// ErrInvalidBudget indicates a time budget that is not positive.
	ErrInvalidBudget = errors.New("pressure: time budget must be positive")

	// ErrInvalidWorkers indicates a worker count below one.
	ErrInvalidWorkers = errors.New("pressure: worker count must be at least 1")

	// ErrUnknownStrategy indicates a Strategy value outside the defined set.
	ErrUnknownStrategy = errors.New("pressure: unknown strategy")

	// ErrTooManyValves indicates more positive-flow valves than the closed-set mask holds.
	ErrTooManyValves = errors.New("pressure: too many positive-flow valves")
)

const (
	// DefaultStart is the conventional entry valve.
	DefaultStart = "AA"

	// DefaultSoloBudget is the single-agent time budget in minutes.
	DefaultSoloBudget = 30

	// DefaultDuoBudget is the dual-agent budget: four minutes go to teaching the second agent.
	DefaultDuoBudget = 26

	// maxTargets is the width of the closed-set mask.
	maxTargets = 64
)

// Strategy selects how the dual-agent search avoids repeated work.
type Strategy int

const (
	// PathDedup skips branches whose pair of opening orders (in either agent order)
	// was already enqueued.
	PathDedup Strategy = iota

	// StateDedup keeps one best release per canonical (closed set, positions, clocks) key.
	StateDedup

	// SubsetDP combines the best single-agent release of two disjoint opened sets.
	SubsetDP
)

// BestFirst labels a Solo result produced by the plain best-first search, which
// needs no deduplication. It is a result label only; options reject it.
const BestFirst Strategy = -1

var strategyNames = [...]string{
	PathDedup:  "path",
	StateDedup: "state",
	SubsetDP:   "subset",
}

// String returns the short name used in configuration ("path", "state", "subset").
func (s Strategy) String() string {
	if s == BestFirst {
		return "best-first"
	}
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}

	return strategyNames[s]
}

// valid reports whether s is one of the defined strategies.
func (s Strategy) valid() bool { return s >= 0 && int(s) < len(strategyNames) }

// ParseStrategy maps a short name back to its Strategy. Matching is case-insensitive.
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range strategyNames {
		if n == name {
			return Strategy(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Options configures a search.
//
// Start    – ID of the valve both agents start from.
// Budget   – minutes available; must be > 0.
// Workers  – number of independent searches the root branches are split across; ≥ 1.
// Strategy – dual-agent deduplication scheme. Solo honours only SubsetDP; any other
// value runs the plain best-first search.
type Options struct {
	Start    string
	Budget   int
	Workers  int
	Strategy Strategy
}

// Option represents a functional option for configuring Solo and Duo.
type Option func(*Options)

// Start sets the starting valve ID.
func Start(id string) Option {
	return func(o *Options) { o.Start = id }
}

// WithBudget sets the time budget in minutes. Non-positive values are rejected
// by Solo/Duo with ErrInvalidBudget.
func WithBudget(minutes int) Option {
	return func(o *Options) { o.Budget = minutes }
}

// WithWorkers sets how many independent searches share the root branches.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithStrategy selects the deduplication strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// DefaultOptions returns Options for the given budget with
// Start=DefaultStart, Workers=1 and Strategy=PathDedup.
func DefaultOptions(budget int) Options {
	return Options{
		Start:    DefaultStart,
		Budget:   budget,
		Workers:  1,
		Strategy: PathDedup,
	}
}

// Stats counts search work. Counters from parallel workers are summed.
type Stats struct {
	Expanded     int // states taken off a frontier (or routes walked, for SubsetDP)
	Enqueued     int // states pushed onto a frontier
	Deduplicated int // branches or states dropped as already seen or dominated
	Terminal     int // states with no admissible branch (opened sets, for SubsetDP)
}

// add accumulates o into s.
func (s *Stats) add(o Stats) {
	s.Expanded += o.Expanded
	s.Enqueued += o.Enqueued
	s.Deduplicated += o.Deduplicated
	s.Terminal += o.Terminal
}

// Result is the outcome of Solo or Duo.
type Result struct {
	// Released is the maximum total pressure released.
	Released int

	// Strategy names the search that ran: BestFirst for a plain Solo search,
	// otherwise the configured strategy. Workers is the parallelism actually used.
	Strategy Strategy
	Workers  int

	// Stats describes the work done.
	Stats Stats
}
