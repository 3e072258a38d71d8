package pressure

import (
	"math/bits"

	"github.com/katalvlaran/volcanium/distance"
	"github.com/katalvlaran/volcanium/valve"
)

// soloState is one node of the single-agent search. Values are never mutated
// after creation; branching copies.
type soloState struct {
	at       int    // node index: a slot, or problem.home
	elapsed  int    // minutes used
	released int    // pressure released so far
	closed   uint64 // slots still closed
}

func (s soloState) yield() int { return s.released }

// Solo returns the most pressure one agent can release.
//
// Defaults: Start=DefaultStart, Budget=DefaultSoloBudget, Workers=1.
// With Strategy=SubsetDP the subset table is used; any other strategy runs the
// best-first search.
//
// Errors: see prepare (all returned before searching).
func Solo(g *valve.Graph, dist *distance.Matrix, opts ...Option) (Result, error) {
	cfg, p, err := prepare(g, dist, DefaultSoloBudget, opts)
	if err != nil {
		return Result{}, err
	}
	res := Result{Strategy: BestFirst, Workers: cfg.Workers}

	if cfg.Strategy == SubsetDP {
		table := p.subsets()
		res.Released = table.bestSingle()
		res.Strategy = SubsetDP
		res.Stats = table.stats
		res.Workers = 1

		return res, nil
	}

	root := soloState{at: p.home, closed: p.all}
	if cfg.Workers == 1 {
		res.Released, res.Stats = p.soloSearch(root)

		return res, nil
	}

	// Expand the root here and hand each branch to its own search.
	var stats Stats
	seeds := p.soloBranches(root, nil)
	stats.Expanded++
	stats.Enqueued += len(seeds)
	if len(seeds) == 0 {
		stats.Terminal++
		res.Stats = stats

		return res, nil
	}
	released, wstats, err := fanOut(cfg.Workers, seeds, p.soloSearch)
	if err != nil {
		return Result{}, err
	}
	stats.add(wstats)
	res.Released, res.Stats = released, stats

	return res, nil
}

// soloBranches appends to out every admissible opening from s.
func (p *problem) soloBranches(s soloState, out []soloState) []soloState {
	var (
		slot        int
		gain, spent int
		ok          bool
	)
	for rest := s.closed; rest != 0; rest &= rest - 1 {
		slot = bits.TrailingZeros64(rest)
		if gain, spent, ok = p.open(s.at, s.elapsed, slot); !ok {
			continue
		}
		out = append(out, soloState{
			at:       slot,
			elapsed:  s.elapsed + spent,
			released: s.released + gain,
			closed:   s.closed &^ (1 << slot),
		})
	}

	return out
}

// soloSearch runs best-first from seed until the frontier drains and returns
// the best terminal release.
func (p *problem) soloSearch(seed soloState) (int, Stats) {
	var (
		stats    Stats
		best     int
		fr       frontier[soloState]
		branches []soloState
	)
	fr.push(seed)
	for fr.Len() > 0 {
		s := fr.pop()
		stats.Expanded++

		branches = p.soloBranches(s, branches[:0])
		if len(branches) == 0 {
			stats.Terminal++
			if s.released > best {
				best = s.released
			}
			continue
		}
		for _, b := range branches {
			fr.push(b)
		}
		stats.Enqueued += len(branches)
	}

	return best, stats
}
