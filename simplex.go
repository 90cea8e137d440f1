package wfc

import "math/rand"

// Simplex noise and its fractal-Brownian-motion wrapper are not part of
// the WFC core, which never samples continuous noise directly; they exist
// here to drive synthetic.go's synthetic exemplar generator, so a caller
// with no input texture on hand can still run the pipeline. Each Simplex
// owns its own permutation/gradient tables so two generators with
// different seeds never interfere.
const (
	f2 = 0.36602542 // float32(0.5 * (math.Sqrt(3) - 1))
	g2 = 0.21132487 // float32((3 - math.Sqrt(3)) / 6)
)

// Simplex is a 2D simplex noise generator with its own permutation table.
type Simplex struct {
	perm  [512]uint8
	grad2 [512][2]float32
}

// FBM layers several octaves of Simplex noise into fractal Brownian motion.
type FBM struct {
	simplex *Simplex
}

// NewSimplex creates a new Simplex noise generator with the given seed.
func NewSimplex(seed uint32) *Simplex {
	s := &Simplex{}
	s.initWithSeed(seed)
	return s
}

// NewFBM creates a new FBM generator with the given seed.
func NewFBM(seed uint32) *FBM {
	return &FBM{simplex: NewSimplex(seed)}
}

// initWithSeed initializes the generator with a seeded permutation table.
func (s *Simplex) initWithSeed(seed uint32) {
	rng := rand.New(rand.NewSource(int64(seed)))

	for i := 0; i < 256; i++ {
		s.perm[i] = uint8(i)
	}
	for i := 255; i > 0; i-- {
		j := rng.Intn(i + 1)
		s.perm[i], s.perm[j] = s.perm[j], s.perm[i]
	}
	for i := 0; i < 256; i++ {
		s.perm[i+256] = s.perm[i]
	}

	var g2d = [12]uint16{
		0x0101, 0xff01, 0x01ff, 0xffff, // diagonal gradients
		0x0100, 0xff00, 0x0100, 0xff00, // horizontal gradients
		0x0001, 0x00ff, 0x0001, 0x00ff, // vertical gradients
	}

	for i := 0; i < 512; i++ {
		idx := g2d[s.perm[i&255]%12]
		gx := int8(idx >> 8)
		gy := int8(idx)
		s.grad2[i] = [2]float32{float32(gx), float32(gy)}
	}
}

// Eval evaluates 2D simplex noise at (x, y), roughly in [-1, 1].
func (s *Simplex) Eval(x, y float32) float32 {
	// Skew the input space to determine which simplex cell we're in.
	sk := (x + y) * f2
	i := floor(x + sk)
	j := floor(y + sk)

	// Unskew the cell origin back to (x,y) space.
	t := float32(i+j) * g2
	x0 := x - (float32(i) - t)
	y0 := y - (float32(j) - t)

	// The 2D simplex shape is an equilateral triangle; pick which half.
	i1, j1 := float32(0), float32(1) // upper triangle
	if x0 > y0 {
		i1, j1 = 1, 0 // lower triangle
	}

	x1 := x0 - i1 + g2
	y1 := y0 - j1 + g2

	const g = 2*g2 - 1
	x2 := x0 + g
	y2 := y0 + g

	pp := s.perm[j&255:]
	gg := s.grad2[i&255:]
	p0 := int(pp[0])
	p1 := int(pp[int(j1)])
	p2 := int(pp[1])
	g0 := gg[p0]
	g1 := gg[int(i1)+p1]
	g2v := gg[1+p2]

	n := float32(0.0)
	if t := 0.5 - x0*x0 - y0*y0; t > 0 {
		n += pow4(t) * (g0[0]*x0 + g0[1]*y0)
	}
	if t := 0.5 - x1*x1 - y1*y1; t > 0 {
		n += pow4(t) * (g1[0]*x1 + g1[1]*y1)
	}
	if t := 0.5 - x2*x2 - y2*y2; t > 0 {
		n += pow4(t) * (g2v[0]*x2 + g2v[1]*y2)
	}

	return 70.0 * n
}

// Eval evaluates fractal Brownian motion: octaves layers of Simplex noise
// at increasing frequency (scaled by lacunarity each octave) and
// decreasing amplitude (scaled by gain each octave), normalised to stay
// roughly within [-1, 1].
func (f *FBM) Eval(octaves int, lacunarity, gain, x, y float32) float32 {
	if octaves <= 0 {
		return 0
	}

	var sum, amp, freq, totalAmp float32 = 0, 1, 1, 0
	for o := 0; o < octaves; o++ {
		sum += amp * f.simplex.Eval(x*freq, y*freq)
		totalAmp += amp
		freq *= lacunarity
		amp *= gain
	}
	if totalAmp > 0 {
		return sum / totalAmp
	}
	return 0
}

// pow4 raises v to the 4th power.
func pow4(v float32) float32 {
	v *= v
	return v * v
}

// floor floors a float32 to an int.
func floor(x float32) int {
	v := int(x)
	if x < float32(v) {
		return v - 1
	}
	return v
}
