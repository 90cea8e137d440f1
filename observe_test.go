package wfc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObserveReturnsFalseWhenAllCollapsed(t *testing.T) {
	g := NewEntropyGrid(2, 2, 1) // single-pattern domains start collapsed
	_, ok := Observe(&g, zeroRand{})
	assert.False(t, ok)
}

func TestObservePicksMinimumEntropyCell(t *testing.T) {
	g := NewEntropyGrid(3, 1, 3)
	// Shrink cell 1 to two patterns so it is the unique minimum.
	g.Set(1, fullDomain(2))

	idx, ok := Observe(&g, zeroRand{})
	assert.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.True(t, g.Get(1).Collapsed())
}

func TestObserveCollapsesToAPatternFromTheDomain(t *testing.T) {
	g := NewEntropyGrid(1, 1, 4)
	rng := &sequenceRand{draws: []int{0, 2}}
	idx, ok := Observe(&g, rng)
	assert.True(t, ok)
	assert.Equal(t, 0, idx)
	assert.Equal(t, 2, g.Get(0).Only())
}

func TestObserveLeavesOtherCellsUntouched(t *testing.T) {
	g := NewEntropyGrid(2, 1, 3)
	Observe(&g, zeroRand{})
	// Exactly one of the two cells collapsed; the grid is not uniform.
	collapsedCount := 0
	for i := 0; i < g.Len(); i++ {
		if g.Get(i).Collapsed() {
			collapsedCount++
		}
	}
	assert.Equal(t, 1, collapsedCount)
}
