package grid

import "github.com/aquilax/go-perlin"

// Sampler produces a scalar value for a 2D sample point. The viewer
// treats the noise source as opaque; anything deterministic per seed
// works.
type Sampler interface {
	At(x, y float64) float64
}

// Perlin tuning. Alpha/beta are the weight and harmonic scaling of the
// summed octaves.
const (
	perlinAlpha   = 2.0
	perlinBeta    = 2.0
	perlinOctaves = 3
)

type perlinSampler struct {
	p *perlin.Perlin
}

// NewPerlin returns a Perlin noise sampler for the given seed.
func NewPerlin(seed int64) Sampler {
	return perlinSampler{p: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed)}
}

func (s perlinSampler) At(x, y float64) float64 {
	return s.p.Noise2D(x, y)
}

// FillNoise populates every cell from the sampler. Coordinates are
// normalized by the grid dimensions and scaled by freq, so the same
// sampler and frequency always reproduce the same map.
func (g *Grid) FillNoise(s Sampler, freq float64) {
	for y := 0; y < g.h; y++ {
		ny := float64(y) / float64(g.h) * freq
		for x := 0; x < g.w; x++ {
			nx := float64(x) / float64(g.w) * freq
			g.data[y*g.w+x] = s.At(nx, ny)
		}
	}
}
