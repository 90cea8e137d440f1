package wfc

import "image"

// palette is a small ramp of terrain-like colors; bucket below maps a
// normalised noise value onto one of these.
var palette = []Color{
	{R: 41, G: 128, B: 185},  // deep water
	{R: 52, G: 152, B: 219},  // shallow water
	{R: 255, G: 234, B: 167}, // sand
	{R: 184, G: 233, B: 148}, // grass
	{R: 120, G: 224, B: 143}, // forest
}

var accent = Color{R: 236, G: 240, B: 241} // snow/foam flecks

// SyntheticExemplar builds a small procedurally generated RGB exemplar:
// a base terrain ramp from fractal Brownian motion, speckled with
// well-spaced accent flecks. It exists so the benchmark harness (and
// callers exploring the library) can run the WFC pipeline end-to-end
// without needing an input texture on hand; the CLI always decodes a
// texture file instead. ExtractPatterns needs local variety to find more
// than the trivial one-pattern case, which a flat gradient alone would
// not provide.
func SyntheticExemplar(width, height int, seed uint32) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	fbm := NewFBM(seed)

	const (
		octaves    = 4
		lacunarity = float32(2.0)
		gain       = float32(0.5)
		frequency  = float32(0.08)
	)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			n := fbm.Eval(octaves, lacunarity, gain, frequency*float32(x), frequency*float32(y))
			v := (1 + n) / 2 // normalise to [0,1]
			img.Set(x, y, bucket(v))
		}
	}

	gap := (width + height) / 12
	if gap < 2 {
		gap = 2
	}
	for pt := range Sparse2(seed, width, height, gap) {
		img.Set(pt[0], pt[1], accent)
	}

	return img
}

// bucket maps a normalised noise value in [0,1] onto the palette ramp.
func bucket(v float32) Color {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	idx := int(v * float32(len(palette)))
	if idx >= len(palette) {
		idx = len(palette) - 1
	}
	return palette[idx]
}
