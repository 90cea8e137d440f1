package wfc

import "github.com/kelindar/bitmap"

// Domain is the set of pattern ids still possible at one output cell,
// represented as a fixed-width bitset indexed by pattern id: domain
// shrink becomes a bitwise AND against a precomputed support mask, size
// becomes a popcount, and contradiction detection becomes a zero-test.
// sparse.go already depends on github.com/kelindar/bitmap for its own
// occupancy grids; here it plays the same role one level up, as the WFC
// possibility set.
type Domain struct {
	bits bitmap.Bitmap
}

// fullDomain returns a Domain containing every pattern id in [0, numPatterns).
func fullDomain(numPatterns int) Domain {
	var d Domain
	if numPatterns == 0 {
		return d
	}
	d.bits.Grow(uint32(numPatterns - 1))
	for id := 0; id < numPatterns; id++ {
		d.bits.Set(uint32(id))
	}
	return d
}

// Size returns |D|, the entropy of the cell this domain belongs to.
func (d Domain) Size() int {
	return d.bits.Count()
}

// Contains reports whether pattern id is still possible.
func (d Domain) Contains(id int) bool {
	return d.bits.Contains(uint32(id))
}

// Empty reports a contradiction: the domain has been reduced to nothing.
func (d Domain) Empty() bool {
	return d.bits.Count() == 0
}

// Collapsed reports whether exactly one pattern remains.
func (d Domain) Collapsed() bool {
	return d.bits.Count() == 1
}

// Patterns returns the sorted list of pattern ids still in the domain.
func (d Domain) Patterns() []int {
	out := make([]int, 0, d.bits.Count())
	d.bits.Range(func(x uint32) {
		out = append(out, int(x))
	})
	return out
}

// Only returns the sole remaining pattern id; callers must only call this
// on a Collapsed domain.
func (d Domain) Only() int {
	id, ok := d.bits.Min()
	if !ok {
		panic("wfc: Only called on an empty domain")
	}
	return int(id)
}

// collapseTo reduces the domain to the single pattern id.
func (d *Domain) collapseTo(id int) {
	var next bitmap.Bitmap
	next.Grow(uint32(id))
	next.Set(uint32(id))
	d.bits = next
}

// and intersects the domain in place with mask, returning whether the
// domain shrank (its popcount strictly decreased).
func (d *Domain) and(mask bitmap.Bitmap) (shrank bool) {
	before := d.bits.Count()
	d.bits.And(mask)
	return d.bits.Count() < before
}

// clone returns an independent copy of the domain.
func (d Domain) clone() Domain {
	var out Domain
	out.bits = d.bits.Clone(nil)
	return out
}
