package wfc

// EntropyGrid is a Grid[Domain]: the per-cell sets of still-possible
// pattern ids that observe() and propagate() mutate monotonically until
// every cell is collapsed or a contradiction is raised.
type EntropyGrid struct {
	Grid[Domain]
}

// NewEntropyGrid creates a width x height grid where every cell's domain
// is initialised to the full pattern set.
func NewEntropyGrid(width, height, numPatterns int) EntropyGrid {
	full := fullDomain(numPatterns)
	return EntropyGrid{
		Grid: NewGrid(width, height, func(x, y int) Domain {
			return full.clone()
		}),
	}
}

// AllCollapsed reports whether every cell in the grid holds exactly one
// pattern, the termination condition for the observe/propagate loop.
func (g *EntropyGrid) AllCollapsed() bool {
	for i := 0; i < g.Len(); i++ {
		if !g.Get(i).Collapsed() {
			return false
		}
	}
	return true
}
