package wfc

import "github.com/kelindar/bitmap"

// Propagate starts from the just-collapsed cell startIdx and shrinks
// neighbouring domains to a locally arc-consistent fixed point using a
// work-stack, or reports a contradiction.
//
// A candidate pattern q survives at a neighbour iff at least one pattern p
// still in the source cell's domain supports q in the direction from
// source to neighbour. A neighbour is re-queued whenever its domain
// strictly shrinks, not only when it collapses to a singleton, since a
// 5->3 shrink can still invalidate options at the neighbour's own
// neighbours.
func Propagate(grid *EntropyGrid, constraints *Constraints, startIdx int) error {
	stack := make([]int, 0, grid.Len())
	onStack := make(map[int]bool, grid.Len())

	stack = append(stack, startIdx)
	onStack[startIdx] = true

	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		onStack[i] = false

		source := grid.Get(i)

		for _, nb := range grid.Neighbors(i) {
			mask := unionSupport(constraints, source, nb.Direction)

			neighbor := grid.Get(nb.Index)
			shrank := neighbor.and(mask)
			if neighbor.Empty() {
				x, y := grid.Pos(nb.Index)
				return &ContradictionError{X: x, Y: y}
			}
			if shrank {
				grid.Set(nb.Index, neighbor)
				if !onStack[nb.Index] {
					stack = append(stack, nb.Index)
					onStack[nb.Index] = true
				}
			}
		}
	}

	return nil
}

// unionSupport returns the bitmap of every pattern supported in direction
// d by at least one pattern still in source: the per-pattern support mask
// unioned over the source cell's current domain.
func unionSupport(constraints *Constraints, source Domain, d Direction) bitmap.Bitmap {
	var mask bitmap.Bitmap
	mask.Grow(uint32(constraints.NumPatterns() - 1))
	for _, p := range source.Patterns() {
		mask.Or(constraints.Support(p, d))
	}
	return mask
}
