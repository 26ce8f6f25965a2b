package parameter

import "time"

// Texture loading and procedural fallback art
const (
	// TextureLoadTimeout bounds async cover loads. Loads that lose the
	// race resolve to the procedural fallback; the late result is
	// discarded, never swapped in afterwards
	TextureLoadTimeout = 3 * time.Second

	// SpeckleDensity is the fraction of fallback texture cells receiving
	// a noise speckle
	SpeckleDensity = 0.08

	// SpeckleLightness is the lightness delta applied to speckled cells
	SpeckleLightness = 0.25

	// FallbackSaturation / FallbackValueCenter shape the radial HSV
	// gradient of fallback art
	FallbackSaturation  = 0.65
	FallbackValueCenter = 0.95
	FallbackValueEdge   = 0.35
)

// Shading program defaults
const (
	// ShaderSpecPower is the Blinn-Phong specular exponent for the
	// crystal facet program
	ShaderSpecPower = 16.0

	// ShaderRimStrength scales the rim highlight at grazing facets
	ShaderRimStrength = 0.45

	// ShaderAmbient is the base light floor so no facet renders black
	ShaderAmbient = 0.18

	// FlatDiffuse is the single diffuse weight of the fallback-flat
	// program
	FlatDiffuse = 0.8

	// UnavailableDim multiplies shading output for unavailable tracks
	UnavailableDim = 0.45
)
