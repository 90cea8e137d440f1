package wfc

import (
	"iter"

	"github.com/kelindar/bitmap"
)

// SSI2 and Sparse2 are not part of the WFC core; synthetic.go uses them to
// scatter well-spaced accent flecks onto a synthetic exemplar so
// ExtractPatterns finds more than one pattern in it.
//
// SSI2 generates a 2D hard-core pattern as a streaming iterator: Simple
// Sequential Inhibition on a unit lattice with up to two jittered candidates
// per integer cell in the rectangle [-r1, +r1] x [-r2, +r2]. A candidate is
// accepted only if its squared distance to all accepted samples is >= 1.0.
// Cells are visited in expanding square rings, center-out. Deterministic
// for a given seed.
func SSI2(seed uint32, r1, r2 int) iter.Seq[[2]float32] {
	return func(yield func([2]float32) bool) {
		if r1 <= 0 || r2 <= 0 {
			return
		}

		// 2D spatial grid using bitmap: each bit tracks if a cell contains a point.
		// Grid resolution: 0.5 units per cell (since minDist = 1.0).
		gridW := r1*4 + 10 // extra padding for jitter
		gridH := r2*4 + 10
		var grid bitmap.Bitmap
		totalCells := uint32(gridW * gridH)
		grid.Grow(totalCells - 1)
		gridOffsetX := gridW / 2
		gridOffsetY := gridH / 2
		const cellSize = 0.5

		coordToIndex := func(gx, gy int) uint32 {
			return uint32(gy*gridW + gx)
		}

		isValid := func(x, y float32) bool {
			gx := int(x/cellSize) + gridOffsetX
			gy := int(y/cellSize) + gridOffsetY
			for dy := -2; dy <= 2; dy++ {
				for dx := -2; dx <= 2; dx++ {
					nx, ny := gx+dx, gy+dy
					if nx >= 0 && nx < gridW && ny >= 0 && ny < gridH {
						idx := coordToIndex(nx, ny)
						if grid.Contains(idx) {
							return false
						}
					}
				}
			}
			return true
		}

		markOccupied := func(x, y float32) {
			gx := int(x/cellSize) + gridOffsetX
			gy := int(y/cellSize) + gridOffsetY
			if gx >= 0 && gx < gridW && gy >= 0 && gy < gridH {
				grid.Set(coordToIndex(gx, gy))
			}
		}

		tryCell := func(ix, iy int) bool {
			for t := 0; t < 2; t++ {
				h := xxhash64(uint64(int64(ix))*0x9e3779b97f4a7c15^uint64(int64(iy))*0xc2b2ae3d27d4eb4f, uint64(seed)^uint64(t))
				x := float32(ix) + (jitter(seed, h) - 0.5)
				y := float32(iy) + (jitter(seed^1, h) - 0.5)

				if isValid(x, y) {
					markOccupied(x, y)
					return !yield([2]float32{x, y})
				}
			}
			return false
		}

		if tryCell(0, 0) {
			return
		}
		maxR := r1
		if r2 > maxR {
			maxR = r2
		}
		for r := 1; r <= maxR; r++ {
			ixMin, ixMax := -r, r
			if ixMin < -r1 {
				ixMin = -r1
			}
			if ixMax > r1 {
				ixMax = r1
			}

			if -r >= -r2 && -r <= r2 {
				for ix := ixMin; ix <= ixMax; ix++ {
					if tryCell(ix, -r) {
						return
					}
				}
			}
			if r >= -r2 && r <= r2 {
				for ix := ixMin; ix <= ixMax; ix++ {
					if tryCell(ix, r) {
						return
					}
				}
			}

			iyMin, iyMax := -r+1, r-1
			if iyMin < -r2 {
				iyMin = -r2
			}
			if iyMax > r2 {
				iyMax = r2
			}

			if -r >= -r1 && -r <= r1 {
				for iy := iyMin; iy <= iyMax; iy++ {
					if tryCell(-r, iy) {
						return
					}
				}
			}
			if r >= -r1 && r <= r1 {
				for iy := iyMin; iy <= iyMax; iy++ {
					if tryCell(r, iy) {
						return
					}
				}
			}
		}
	}
}

// Sparse2 emits integer (x, y) positions with at least gap units between
// any two, streamed in a center-out order across the rectangle
// [0, w) x [0, h). Empty sequence if w <= 0, h <= 0, or gap <= 0.
func Sparse2(seed uint32, w, h, gap int) iter.Seq[[2]int] {
	return func(yield func([2]int) bool) {
		if w <= 0 || h <= 0 || gap <= 0 {
			return
		}

		r1 := ceilDiv(w, 2*gap)
		r2 := ceilDiv(h, 2*gap)
		centerX := float32(w) / 2
		centerY := float32(h) / 2
		gapF := float32(gap)

		for pt := range SSI2(seed, r1, r2) {
			ix := int(pt[0]*gapF + centerX)
			iy := int(pt[1]*gapF + centerY)
			if ix < 0 || ix >= w || iy < 0 || iy >= h {
				continue
			}
			if !yield([2]int{ix, iy}) {
				return
			}
		}
	}
}

// jitter returns a deterministic value in [0, 1) derived from (seed, h),
// used to offset a lattice cell's candidate point.
func jitter(seed uint32, h uint64) float32 {
	hash := xxhash64(h, uint64(seed))
	return float32(hash>>32) / float32(1<<32)
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
