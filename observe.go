package wfc

// Observe finds the minimum-entropy cell among cells with |domain| > 1,
// picks one uniformly at random among ties, then picks one of its
// remaining patterns uniformly at random and collapses the cell to it.
//
// Returns the linear index of the just-collapsed cell and true, or
// (0, false) if every cell is already collapsed (|domain| == 1).
//
// The two random draws below are the only two points where the loop
// consults the randomness source.
func Observe(grid *EntropyGrid, rng Rand) (int, bool) {
	min := -1
	for i := 0; i < grid.Len(); i++ {
		size := grid.Get(i).Size()
		if size > 1 && (min == -1 || size < min) {
			min = size
		}
	}
	if min == -1 {
		return 0, false
	}

	candidates := make([]int, 0, grid.Len())
	for i := 0; i < grid.Len(); i++ {
		if grid.Get(i).Size() == min {
			candidates = append(candidates, i)
		}
	}

	idx := candidates[rng.IntN(len(candidates))]
	domain := grid.Get(idx)
	patterns := domain.Patterns()
	chosen := patterns[rng.IntN(len(patterns))]

	domain.collapseTo(chosen)
	grid.Set(idx, domain)

	return idx, true
}
