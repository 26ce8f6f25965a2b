package parameter

// Genre-ring layout
const (
	// RingBaseRadius places the innermost (largest) genre ring
	RingBaseRadius = 8.0

	// RingSpacing separates consecutive genre rings
	RingSpacing = 5.0

	// RingEllipseRatio squashes rings along Z for a galaxy-disc look
	RingEllipseRatio = 0.8

	// RingVerticalSpread bounds the seeded Y scatter per body
	RingVerticalSpread = 1.5

	// RingAngleJitter bounds the seeded angular scatter (radians)
	RingAngleJitter = 0.25

	// RingPopularityOffset scales the popularity-driven radial offset;
	// popular tracks drift toward the ring's inner edge
	RingPopularityOffset = 2.0

	// SeedSaltLayout decorrelates placement jitter from geometry passes
	SeedSaltLayout uint64 = 0xA11C_E5ED_0000_0005
)
