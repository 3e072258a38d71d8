package pressure

import (
	"math/bits"

	"github.com/katalvlaran/volcanium/distance"
	"github.com/katalvlaran/volcanium/valve"
)

// duoState is one node of the dual-agent search. Each agent has its own
// position and clock; the closed set and the release total are shared.
type duoState struct {
	at       [2]int
	elapsed  [2]int
	released int
	closed   uint64
	path     [2]string // opening order per agent, one byte per slot; PathDedup only
}

func (s duoState) yield() int { return s.released }

// Duo returns the most pressure two agents can release together, both starting
// at the same valve with the same budget and never opening the same valve twice.
//
// Defaults: Start=DefaultStart, Budget=DefaultDuoBudget, Workers=1,
// Strategy=PathDedup.
func Duo(g *valve.Graph, dist *distance.Matrix, opts ...Option) (Result, error) {
	cfg, p, err := prepare(g, dist, DefaultDuoBudget, opts)
	if err != nil {
		return Result{}, err
	}
	res := Result{Strategy: cfg.Strategy, Workers: cfg.Workers}

	if cfg.Strategy == SubsetDP {
		table := p.subsets()
		res.Released = table.bestPair()
		res.Stats = table.stats
		res.Workers = 1

		return res, nil
	}

	root := duoState{at: [2]int{p.home, p.home}, closed: p.all}
	seen := newDedup(cfg.Strategy, root)
	if cfg.Workers == 1 {
		res.Released, res.Stats = p.duoSearch(root, seen)

		return res, nil
	}

	var stats Stats
	seeds := p.duoBranches(root, seen, nil, &stats)
	stats.Expanded++
	stats.Enqueued += len(seeds)
	if len(seeds) == 0 {
		stats.Terminal++
		res.Stats = stats

		return res, nil
	}
	// seen is only read from here on; every worker gets its own copy.
	released, wstats, err := fanOut(cfg.Workers, seeds, func(s duoState) (int, Stats) {
		return p.duoSearch(s, seen.clone())
	})
	if err != nil {
		return Result{}, err
	}
	stats.add(wstats)
	res.Released, res.Stats = released, stats

	return res, nil
}

// duoBranches appends to out every admissible opening by either agent that the
// dedup policy lets through. Agent 0's branches come first, then agent 1's.
func (p *problem) duoBranches(s duoState, seen dedup, out []duoState, stats *Stats) []duoState {
	var (
		agent, slot int
		gain, spent int
		ok          bool
		next        duoState
	)
	track := seen.tracksPaths()
	for agent = 0; agent < 2; agent++ {
		for rest := s.closed; rest != 0; rest &= rest - 1 {
			slot = bits.TrailingZeros64(rest)
			if gain, spent, ok = p.open(s.at[agent], s.elapsed[agent], slot); !ok {
				continue
			}
			next = s
			next.at[agent] = slot
			next.elapsed[agent] += spent
			next.released += gain
			next.closed &^= 1 << slot
			if track {
				next.path[agent] = s.path[agent] + string(byte(slot))
			}
			if !seen.admit(next) {
				stats.Deduplicated++
				continue
			}
			out = append(out, next)
		}
	}

	return out
}

// duoSearch runs best-first from seed with the given dedup state until the
// frontier drains and returns the best terminal release.
func (p *problem) duoSearch(seed duoState, seen dedup) (int, Stats) {
	var (
		stats    Stats
		best     int
		fr       frontier[duoState]
		branches []duoState
	)
	fr.push(seed)
	for fr.Len() > 0 {
		s := fr.pop()
		if seen.stale(s) {
			stats.Deduplicated++
			continue
		}
		stats.Expanded++

		branches = p.duoBranches(s, seen, branches[:0], &stats)
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
