package render

import "github.com/lixenwraith/crystal-galaxy/parameter"

// DepthOfField is the focus post stage the camera controller drives
// through its FocusEffect interface: while enabled, cells away from the
// focus depth lose saturation and brightness along a fixed ramp
type DepthOfField struct {
	enabled bool
	focusZ  float64
}

func NewDepthOfField() *DepthOfField {
	return &DepthOfField{}
}

// EnableDepthOfField arms the effect at the focused body's view depth
func (d *DepthOfField) EnableDepthOfField(focusDistance float64) {
	d.enabled = true
	d.focusZ = focusDistance
}

// DisableDepthOfField disarms the effect
func (d *DepthOfField) DisableDepthOfField() {
	d.enabled = false
}

// Enabled reports whether the effect is active
func (d *DepthOfField) Enabled() bool { return d.enabled }

// apply washes out one color by its depth distance from the focus plane
func (d *DepthOfField) apply(c RGB, depth float64) RGB {
	if !d.enabled {
		return c
	}
	delta := depth - d.focusZ
	if delta < 0 {
		delta = -delta
	}
	f := delta / parameter.DOFRampDistance
	if f > 1 {
		f = 1
	}
	if f == 0 {
		return c
	}
	return c.Desaturate(f*parameter.DOFDesaturateMax, f*parameter.DOFDimMax)
}
