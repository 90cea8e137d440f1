package wfc

import "image"

// Render maps each cell's singleton pattern to a single output pixel,
// writing pattern.First() (the pattern's local (0,0) sample) to the
// matching output coordinate. Callers must only invoke this once
// grid.AllCollapsed() is true.
func Render(grid *EntropyGrid, patterns []Pattern) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, grid.Width, grid.Height))
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			domain := grid.At(x, y)
			pat := patterns[domain.Only()]
			out.Set(x, y, pat.First())
		}
	}
	return out
}
