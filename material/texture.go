package material

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/crystal-galaxy/device"
	"github.com/lixenwraith/crystal-galaxy/parameter"
	"github.com/lixenwraith/crystal-galaxy/vmath"
)

// Texture is a square RGBA grid sampled by the renderer for facet tinting
type Texture struct {
	Resolution int
	Pix        []uint8 // RGBA, Resolution*Resolution*4
	Fallback   bool
}

// At samples the texture at normalized coordinates u,v in [0,1],
// clamped. Returns 8-bit RGB
func (t *Texture) At(u, v float64) (r, g, b uint8) {
	if t == nil || t.Resolution == 0 || len(t.Pix) == 0 {
		return 128, 128, 128
	}
	x := int(clamp01(u) * float64(t.Resolution-1))
	y := int(clamp01(v) * float64(t.Resolution-1))
	i := (y*t.Resolution + x) * 4
	return t.Pix[i], t.Pix[i+1], t.Pix[i+2]
}

// Dispose releases the pixel buffer. Idempotent
func (t *Texture) Dispose() {
	t.Pix = nil
	t.Resolution = 0
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Procedural builds the stable per-track fallback texture: a radial hue
// gradient with speckle noise, keyed off the track seed so fallback art
// is deterministic and visually distinguishable per track
func Procedural(seed uint64, tier device.TextureTier) *Texture {
	res := tier.Resolution
	if res <= 0 {
		res = parameter.TextureResolutionLow
	}
	if tier.Compress {
		res /= 2
		if res < 8 {
			res = 8
		}
	}

	rng := vmath.NewLCG(seed ^ parameter.SeedSaltTexture)
	baseHue := rng.Float() * 360
	hueDrift := rng.Range(20, 70)

	tex := &Texture{
		Resolution: res,
		Pix:        make([]uint8, res*res*4),
		Fallback:   true,
	}

	center := float64(res-1) / 2
	maxDist := math.Sqrt(2) * center
	for y := 0; y < res; y++ {
		for x := 0; x < res; x++ {
			dx := float64(x) - center
			dy := float64(y) - center
			d := math.Sqrt(dx*dx+dy*dy) / maxDist

			hue := math.Mod(baseHue+hueDrift*d, 360)
			val := parameter.FallbackValueCenter +
				(parameter.FallbackValueEdge-parameter.FallbackValueCenter)*d

			if tier.Dither && rng.Float() < parameter.SpeckleDensity {
				val += parameter.SpeckleLightness * rng.Range(-1, 1)
				val = clamp01(val)
			}

			c := colorful.Hsv(hue, parameter.FallbackSaturation, val)
			r, g, b := c.RGB255()

			i := (y*res + x) * 4
			tex.Pix[i] = r
			tex.Pix[i+1] = g
			tex.Pix[i+2] = b
			tex.Pix[i+3] = 255
		}
	}
	return tex
}
