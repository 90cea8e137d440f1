package wfc

import "image"

// ExtractPatterns builds the dense pattern set found in img under a KxK
// kernel, toroidally wrapping at the edges. Patterns are deduplicated by
// pixel content; ids are assigned in first-seen order and index the
// contiguous range [0, P).
//
// The outer loop runs over image height, the inner loop over image width,
// matching the convention get_side and render.go both assume.
func ExtractPatterns(img image.Image, size int) ([]Pattern, error) {
	bounds := img.Bounds()
	iw, ih := bounds.Dx(), bounds.Dy()

	// Toroidal wrap means a kernel can legitimately exceed one axis (a
	// 1-tall exemplar with K=2 wraps its single row onto itself); it is
	// only rejected once it exceeds both, i.e. the larger of the two
	// dimensions.
	maxDim := iw
	if ih > maxDim {
		maxDim = ih
	}
	if size < 1 || size > maxDim {
		return nil, &KernelSizeError{Size: size, ImageWidth: iw, ImageHeight: ih}
	}

	seen := make(map[string]int, ih*iw)
	patterns := make([]Pattern, 0, ih*iw)

	for y0 := 0; y0 < ih; y0++ {
		for x0 := 0; x0 < iw; x0++ {
			pixels := make([]Color, size*size)
			// dx is the row offset (image y) and dy the column offset
			// (image x), so getSide's Up/Down strips face the same way as
			// the output grid's Up/Down neighbours.
			for dx := 0; dx < size; dx++ {
				sy := (y0 + dx) % ih
				for dy := 0; dy < size; dy++ {
					sx := (x0 + dy) % iw
					c := img.At(bounds.Min.X+sx, bounds.Min.Y+sy)
					pixels[dx*size+dy] = ColorOf(c)
				}
			}

			key := patternKey(pixels)
			if _, ok := seen[key]; ok {
				continue
			}
			id := len(patterns)
			seen[key] = id
			patterns = append(patterns, Pattern{ID: id, Size: size, Pixels: pixels})
		}
	}

	if len(patterns) == 0 {
		return nil, ErrEmptyPatternSet
	}
	return patterns, nil
}

// patternKey derives a map key from pixel content so identical tiles hash
// and compare equal regardless of where they were sampled from.
func patternKey(pixels []Color) string {
	buf := make([]byte, len(pixels)*3)
	for i, c := range pixels {
		buf[i*3] = c.R
		buf[i*3+1] = c.G
		buf[i*3+2] = c.B
	}
	return string(buf)
}
