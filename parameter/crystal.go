package parameter

// Procedural crystal generation
const (
	// ComplexityPopularityWeight and ComplexityDurationWeight blend track
	// popularity and duration into the within-tier detail factor.
	// The 0.7/0.3 split is policy, not physics; keep tunable
	ComplexityPopularityWeight = 0.7
	ComplexityDurationWeight   = 0.3

	// ComplexityDurationCapSeconds saturates the duration factor; tracks
	// past seven minutes add no further detail
	ComplexityDurationCapSeconds = 420

	// SharpnessSpikeExponent shapes the per-vertex spike distribution.
	// Squaring the uniform draw concentrates spikes on few vertices
	SharpnessSpikeExponent = 2

	// RoughnessJitterScale converts (roughness - 1) into a radial jitter
	// amplitude fraction
	RoughnessJitterScale = 0.08

	// FacetVariationScale is the amplitude of the second, genre-independent
	// jitter pass that keeps same-genre bodies distinct
	FacetVariationScale = 0.03

	// BPMReferenceRate is the BPM that maps to a 1.0 pulse multiplier
	BPMReferenceRate = 120.0

	// BPMMultiplierBase and BPMMultiplierSpread randomize the per-vertex
	// pulse rate: (bpm/reference) * (base + spread*rand)
	BPMMultiplierBase   = 0.8
	BPMMultiplierSpread = 0.4
)

// Seed-stream salts keep the generation passes statistically independent
// while still deriving from the single track seed
const (
	SeedSaltSharpness uint64 = 0x9E3779B97F4A7C15
	SeedSaltRoughness uint64 = 0xC2B2AE3D27D4EB4F
	SeedSaltFacet     uint64 = 0x165667B19E3779F9
	SeedSaltChannels  uint64 = 0x27D4EB2F165667C5
	SeedSaltTexture   uint64 = 0x85EBCA6B27D4EB2F
)
