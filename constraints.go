package wfc

import "github.com/kelindar/bitmap"

// Constraints is the adjacency table C(a,b,d): whether pattern b may sit
// in direction d from pattern a. It is represented as one support mask
// per (pattern, direction): support[p*4+d] is the
// bitmap of every pattern id that may sit in direction d from p. This
// gives O(1) lookup by (a,b,d) via Contains, and O(1)-amortised access to
// "everything compatible in direction d with any pattern in this domain"
// via a union of masks, exactly what the propagator needs.
type Constraints struct {
	numPatterns int
	support     []bitmap.Bitmap // len numPatterns*4
}

// BuildConstraints computes, for every ordered pattern pair (a,b) and each
// direction d, whether b may be placed immediately in direction d from a.
// Complexity: O(P * 4) side extractions plus O(P^2 * 4) strip comparisons.
func BuildConstraints(patterns []Pattern) *Constraints {
	p := len(patterns)
	c := &Constraints{numPatterns: p, support: make([]bitmap.Bitmap, p*4)}
	if p == 0 {
		return c
	}
	for i := range c.support {
		c.support[i].Grow(uint32(p - 1))
	}

	// Precompute each pattern's four side strips once rather than
	// recomputing them on every pairwise comparison.
	sides := make([][4][]Color, p)
	for i, pat := range patterns {
		for _, d := range directions {
			sides[i][d] = pat.getSide(d)
		}
	}

	for a := 0; a < p; a++ {
		for b := 0; b < p; b++ {
			for _, d := range directions {
				if equalPixels(sides[a][d], sides[b][d.Opposite()]) {
					c.support[a*4+int(d)].Set(uint32(b))
				}
			}
		}
	}
	return c
}

// NumPatterns returns P, the size of the pattern set the table was built from.
func (c *Constraints) NumPatterns() int {
	return c.numPatterns
}

// Allowed reports C(a,b,d): whether pattern b may sit in direction d from a.
func (c *Constraints) Allowed(a, b int, d Direction) bool {
	return c.support[a*4+int(d)].Contains(uint32(b))
}

// Support returns the bitmap of every pattern allowed in direction d from p.
func (c *Constraints) Support(p int, d Direction) bitmap.Bitmap {
	return c.support[p*4+int(d)]
}
