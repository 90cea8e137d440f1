package wfc

import "image/color"

// Color is an 8-bit RGB sample. Equality is component-wise, which is what
// pattern deduplication and the overlap predicate rely on.
type Color struct {
	R, G, B uint8
}

// ColorOf converts a standard library color into a Color, discarding alpha.
func ColorOf(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// RGBA implements color.Color so a Color can be written directly into an
// image.Image via Set.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = 0xffff
	return
}
