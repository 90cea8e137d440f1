package wfc

// Pattern is an identified KxK tile of colors sampled from the exemplar.
//
// Pixels are stored row-major over local coordinates (dx, dy) with dx the
// major (outer) axis: pixel (dx, dy) lives at index dx*Size + dy, where dx
// is the row offset (image y) and dy the column offset (image x). Every
// piece of code that slices a side (getSide below) or samples the
// exemplar (extract.go) agrees on this layout; picking one convention and
// holding it everywhere is what keeps getSide and overlap meaningful.
type Pattern struct {
	ID     int
	Size   int
	Pixels []Color
}

// at returns the color at local coordinate (dx, dy).
func (p Pattern) at(dx, dy int) Color {
	return p.Pixels[dx*p.Size+dy]
}

// First returns the pattern's pixel at local coordinate (0,0), the single
// color the renderer writes to the output raster.
func (p Pattern) First() Color {
	return p.Pixels[0]
}

// equalPixels reports whether two patterns sample identical colors; used
// by the extractor to deduplicate by content rather than by identity.
func equalPixels(a, b []Color) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// getSide returns the (K-1)*K (or K*(K-1)) overlap strip of p that faces
// direction d. Two patterns a, b are compatible in direction d iff
// a.getSide(d) == b.getSide(d.Opposite()).
//
//   - Up:    rows dx in [0, K-1), all columns     -- the strip of p that
//     would sit under a pattern placed Up of p.
//   - Down:  rows dx in [1, K), all columns
//   - Left:  all rows,            columns dy in [0, K-1)
//   - Right: all rows,            columns dy in [1, K)
//
// Degenerate K=1: every side is empty, so every pattern is compatible with
// every other pattern in every direction.
func (p Pattern) getSide(d Direction) []Color {
	k := p.Size
	if k <= 1 {
		return nil
	}

	switch d {
	case Up:
		side := make([]Color, 0, (k-1)*k)
		for dx := 0; dx < k-1; dx++ {
			for dy := 0; dy < k; dy++ {
				side = append(side, p.at(dx, dy))
			}
		}
		return side
	case Down:
		side := make([]Color, 0, (k-1)*k)
		for dx := 1; dx < k; dx++ {
			for dy := 0; dy < k; dy++ {
				side = append(side, p.at(dx, dy))
			}
		}
		return side
	case Left:
		side := make([]Color, 0, k*(k-1))
		for dx := 0; dx < k; dx++ {
			for dy := 0; dy < k-1; dy++ {
				side = append(side, p.at(dx, dy))
			}
		}
		return side
	case Right:
		side := make([]Color, 0, k*(k-1))
		for dx := 0; dx < k; dx++ {
			for dy := 1; dy < k; dy++ {
				side = append(side, p.at(dx, dy))
			}
		}
		return side
	default:
		panic("wfc: invalid direction")
	}
}

// overlap is the classic overlapping-WFC adjacency test: a and b may sit
// adjacent with b in direction d from a iff the strip of a facing d equals
// the matching strip of b facing the opposite direction.
func overlap(a, b Pattern, d Direction) bool {
	return equalPixels(a.getSide(d), b.getSide(d.Opposite()))
}
