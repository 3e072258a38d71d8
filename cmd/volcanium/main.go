// Command volcanium reads a valve network and prints the most pressure one
// agent (solo) and two agents (duo) can release.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/volcanium/distance"
	"github.com/katalvlaran/volcanium/internal/config"
	"github.com/katalvlaran/volcanium/internal/log"
	"github.com/katalvlaran/volcanium/internal/metrics"
	"github.com/katalvlaran/volcanium/pressure"
	"github.com/katalvlaran/volcanium/valve"
)

// errUsage marks a bad command line; the flag package has already printed why.
var errUsage = errors.New("volcanium: invalid arguments")

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// flags holds the command line; empty or zero values leave the config untouched.
type flags struct {
	config   string
	input    string
	part     string
	strategy string
	workers  int
}

func parseFlags(args []string, errW io.Writer) (flags, bool, error) {
	var f flags
	fs := flag.NewFlagSet("volcanium", flag.ContinueOnError)
	fs.SetOutput(errW)
	fs.Usage = func() {
		fmt.Fprint(errW, `Usage:
  volcanium [options]

Options:
`)
		fs.PrintDefaults()
	}
	fs.StringVar(&f.config, "config", os.Getenv("VOLCANIUM_CONFIG"), "Path to a YAML configuration file.")
	fs.StringVar(&f.input, "input", "", "Path to the valve list (overrides config).")
	fs.StringVar(&f.part, "part", "both", "Which search to run: solo, duo or both.")
	fs.StringVar(&f.strategy, "strategy", "", "Dual-agent strategy: path, state or subset (overrides config).")
	fs.IntVar(&f.workers, "workers", 0, "Parallel searches per solve (overrides config).")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return f, true, nil
		}
		return f, false, fmt.Errorf("%w: %v", errUsage, err)
	}
	switch f.part {
	case "solo", "duo", "both":
	default:
		return f, false, fmt.Errorf("%w: -part %q", errUsage, f.part)
	}
	if fs.NArg() > 0 {
		return f, false, fmt.Errorf("%w: unexpected argument %q", errUsage, fs.Arg(0))
	}

	return f, false, nil
}

// run is main without the exit: results go to out, logs to errW.
func run(out, errW io.Writer, args []string) error {
	f, exit, err := parseFlags(args, errW)
	if err != nil || exit {
		return err
	}

	cfg, err := config.Read(f.config)
	if err != nil {
		return err
	}
	if f.input != "" {
		cfg.Input = f.input
	}
	if f.strategy != "" {
		cfg.Duo.Strategy = f.strategy
	}
	if f.workers != 0 {
		cfg.Workers = f.workers
	}
	// Flags win over file and environment, so validation waits until they are applied.
	if err = cfg.Validate(); err != nil {
		return err
	}

	logger := log.New(cfg, errW).With().Str("run_id", uuid.NewString()).Logger()

	g, dist, err := load(cfg.Input)
	if err != nil {
		return err
	}
	logger.Info().Str("input", cfg.Input).Int("valves", g.Len()).Int("targets", len(g.PositiveFlow())).Msg("network loaded")

	rec := metrics.NewRecorder()
	common := []pressure.Option{pressure.Start(cfg.Start), pressure.WithWorkers(cfg.Workers)}
	type job struct {
		part  string
		solve func(*valve.Graph, *distance.Matrix, ...pressure.Option) (pressure.Result, error)
		opts  []pressure.Option
	}
	var jobs []job
	if f.part != "duo" {
		jobs = append(jobs, job{"solo", pressure.Solo, append([]pressure.Option{pressure.WithBudget(cfg.Solo.Budget)}, common...)})
	}
	if f.part != "solo" {
		jobs = append(jobs, job{"duo", pressure.Duo, append([]pressure.Option{
			pressure.WithBudget(cfg.Duo.Budget),
			pressure.WithStrategy(cfg.Strategy()),
		}, common...)})
	}

	for _, j := range jobs {
		start := time.Now()
		res, err := j.solve(g, dist, j.opts...)
		if err != nil {
			return fmt.Errorf("%s: %w", j.part, err)
		}
		elapsed := time.Since(start)
		rec.Observe(j.part, res, elapsed)
		logger.Info().
			Str("part", j.part).
			Stringer("strategy", res.Strategy).
			Int("workers", res.Workers).
			Int("released", res.Released).
			Int("expanded", res.Stats.Expanded).
			Int("deduplicated", res.Stats.Deduplicated).
			Dur("elapsed", elapsed).
			Msg("solved")
		fmt.Fprintf(out, "%s: %d\n", j.part, res.Released)
	}

	if cfg.Metrics.Textfile != "" {
		if err = rec.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			return fmt.Errorf("metrics: %w", err)
		}
		logger.Debug().Str("path", cfg.Metrics.Textfile).Msg("metrics written")
	}

	return nil
}

// load parses the valve list at path and builds its distance matrix.
func load(path string) (*valve.Graph, *distance.Matrix, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer fh.Close()

	g, err := valve.ParseGraph(fh)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	dist, err := distance.Build(g)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, dist, nil
}
