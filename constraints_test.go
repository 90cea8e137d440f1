package wfc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstraintSymmetry(t *testing.T) {
	// C(a,b,d) == C(b,a,opposite(d)) for every triple: adjacency in one
	// direction and adjacency in the reverse direction are the same fact
	// seen from either pattern's side.
	img := checkerImage(6, 6, Color{R: 1}, Color{R: 2})
	patterns, err := ExtractPatterns(img, 2)
	assert.NoError(t, err)

	c := BuildConstraints(patterns)
	for a := 0; a < len(patterns); a++ {
		for b := 0; b < len(patterns); b++ {
			for _, d := range directions {
				assert.Equal(t,
					c.Allowed(a, b, d),
					c.Allowed(b, a, d.Opposite()),
					"a=%d b=%d d=%v", a, b, d)
			}
		}
	}
}

func TestReflexiveAdjacency(t *testing.T) {
	// A pattern with uniform content is always compatible with itself in
	// every direction, since its strips are equal to themselves. This does
	// not hold in general for non-uniform patterns (a checkerboard tile's
	// Up strip and Down strip differ), only for this degenerate case.
	img := solidImage(5, 5, Color{R: 9})
	patterns, err := ExtractPatterns(img, 2)
	assert.NoError(t, err)

	c := BuildConstraints(patterns)
	for i, p := range patterns {
		for _, d := range directions {
			assert.True(t, c.Allowed(i, i, d), "pattern %d direction %v", p.ID, d)
		}
	}
}

func TestDegenerateK1AllPairsAllowed(t *testing.T) {
	img := solidImage(2, 2, Color{})
	img.Set(1, 0, Color{R: 255})

	patterns, err := ExtractPatterns(img, 1)
	assert.NoError(t, err)
	assert.Len(t, patterns, 2)

	c := BuildConstraints(patterns)
	for a := range patterns {
		for b := range patterns {
			for _, d := range directions {
				assert.True(t, c.Allowed(a, b, d))
			}
		}
	}
}

func TestUniformInputConstraintsFull(t *testing.T) {
	// A uniform exemplar yields a single pattern compatible with itself in
	// every direction: the constraints table is trivially full.
	img := solidImage(3, 3, Color{})
	patterns, err := ExtractPatterns(img, 2)
	assert.NoError(t, err)
	assert.Len(t, patterns, 1)

	c := BuildConstraints(patterns)
	for _, d := range directions {
		assert.True(t, c.Allowed(0, 0, d))
	}
}
