package parameter

// Projection
const (
	// RenderFocalLength is the perspective focal length in world units
	RenderFocalLength = 14.0

	// RenderCellAspect compensates terminal cells being twice as tall as
	// wide; X is stretched by this factor
	RenderCellAspect = 2.0

	// RenderViewScale converts view-space units to cell rows, as a
	// fraction of the viewport height
	RenderViewScale = 0.13

	// RenderNearClip floors the perspective divisor
	RenderNearClip = 0.5

	// HUDRows reserves terminal rows below the viewport
	HUDRows = 2
)

// Lighting, matching the shipped facet program defaults
const (
	LightDirX = -0.35
	LightDirY = -0.55
	LightDirZ = 0.75
)

// Pulse animation
const (
	// PulseAmplitude scales vertex displacement along the normal
	PulseAmplitude = 0.06

	// PulseBaseRate is the phase advance in radians per second at the
	// reference BPM
	PulseBaseRate = 2.0
)

// Depth of field
const (
	// DOFRampDistance is the depth delta over which out-of-focus bodies
	// reach full desaturation
	DOFRampDistance = 12.0

	// DOFDesaturateMax caps the saturation loss of out-of-focus bodies
	DOFDesaturateMax = 0.8

	// DOFDimMax caps the brightness loss of out-of-focus bodies
	DOFDimMax = 0.35
)
