package render

import (
	"math"

	"github.com/lixenwraith/crystal-galaxy/material"
	"github.com/lixenwraith/crystal-galaxy/parameter"
	"github.com/lixenwraith/crystal-galaxy/vmath"
)

// shadeContext holds the precomputed view-space lighting: one fixed key
// light plus the Blinn-Phong half vector toward the eye at -Z
type shadeContext struct {
	light vmath.Vec3F
	half  vmath.Vec3F
}

func newShadeContext() shadeContext {
	// Stored direction points surface→light
	light := vmath.V3FNormalize(vmath.Vec3F{
		X: -parameter.LightDirX,
		Y: -parameter.LightDirY,
		Z: -parameter.LightDirZ,
	})
	return shadeContext{
		light: light,
		half:  vmath.V3FNormalize(vmath.V3FAdd(light, vmath.Vec3F{Z: -1})),
	}
}

// facet shades one crystal facet: flat diffuse always, specular
// highlight and rim only for the full shader material. Unavailable
// tracks are dimmed. nView is the camera-facing facet normal in view
// space
func (s shadeContext) facet(mat material.Material, nView vmath.Vec3F, base RGB, available bool) RGB {
	diff := vmath.V3FDot(nView, s.light)
	if diff < 0 {
		diff = 0
	}
	c := base.Scale(mat.Ambient + parameter.FlatDiffuse*diff)

	if mat.State == material.StateShaderActive {
		spec := vmath.V3FDot(nView, s.half)
		if spec < 0 {
			spec = 0
		}
		spec = math.Pow(spec, mat.SpecPower)
		c = c.Add(RGB{255, 255, 255}.Scale(spec))

		rim := mat.RimStrength * (1 - math.Abs(nView.Z))
		c = c.Add(base.Scale(rim))
	}

	if !available {
		c = c.Scale(parameter.UnavailableDim)
	}
	return c
}

// facetUV maps the undeformed facet normal onto texture coordinates so
// cover art wraps stably around the body
func facetUV(n vmath.Vec3F) (u, v float64) {
	u = math.Atan2(n.Z, n.X)/(2*math.Pi) + 0.5
	v = n.Y*0.5 + 0.5
	return u, v
}
