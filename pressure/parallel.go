package pressure

import "golang.org/x/sync/errgroup"

// fanOut runs search once per seed with at most workers searches in flight and
// merges the results: maximum release, summed stats.
//
// Every search call must own all of its mutable state; seeds are values and the
// problem is read-only, so the only shared memory is the per-seed result slot.
func fanOut[S any](workers int, seeds []S, search func(S) (int, Stats)) (int, Stats, error) {
	released := make([]int, len(seeds))
	stats := make([]Stats, len(seeds))

	var eg errgroup.Group
	eg.SetLimit(workers)
	for i := range seeds {
		i := i
		eg.Go(func() error {
			released[i], stats[i] = search(seeds[i])
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, Stats{}, err
	}

	var (
		best  int
		total Stats
	)
	for i := range seeds {
		if released[i] > best {
			best = released[i]
		}
		total.add(stats[i])
	}

	return best, total, nil
}
