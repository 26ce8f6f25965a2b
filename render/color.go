package render

import "github.com/lucasb-eyer/go-colorful"

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (dst RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return dst
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(dst.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(dst.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(dst.B)*inv),
	}
}

// Add performs additive blend with clamping
func (dst RGB) Add(src RGB) RGB {
	return RGB{
		R: uint8(min(int(dst.R)+int(src.R), 255)),
		G: uint8(min(int(dst.G)+int(src.G), 255)),
		B: uint8(min(int(dst.B)+int(src.B), 255)),
	}
}

// Scale multiplies all channels by k, clamped
func (c RGB) Scale(k float64) RGB {
	return RGB{clampChan(float64(c.R) * k), clampChan(float64(c.G) * k), clampChan(float64(c.B) * k)}
}

// Desaturate pulls the color toward gray by amount in [0,1] and dims it
// by dim in [0,1]. The depth-of-field pass applies it to out-of-focus
// cells
func (c RGB) Desaturate(amount, dim float64) RGB {
	h, s, v := colorful.Color{
		R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255,
	}.Hsv()

	out := colorful.Hsv(h, s*(1-amount), v*(1-dim))
	r, g, b := out.RGB255()
	return RGB{r, g, b}
}

// Quantize256 maps the color onto the xterm 6x6x6 cube for terminals
// without truecolor
func (c RGB) Quantize256() RGB {
	return RGB{quantChan(c.R), quantChan(c.G), quantChan(c.B)}
}

// quantChan snaps a channel to the nearest of the six xterm cube levels
func quantChan(v uint8) uint8 {
	levels := [6]uint8{0, 95, 135, 175, 215, 255}
	best := levels[0]
	bestDist := 256
	for _, l := range levels {
		d := int(v) - int(l)
		if d < 0 {
			d = -d
		}
		if d < bestDist {
			bestDist = d
			best = l
		}
	}
	return best
}

func clampChan(v float64) uint8 {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return uint8(v)
}
