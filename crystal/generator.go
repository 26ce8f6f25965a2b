package crystal

import (
	"fmt"
	"math"

	"github.com/lixenwraith/crystal-galaxy/device"
	"github.com/lixenwraith/crystal-galaxy/parameter"
	"github.com/lixenwraith/crystal-galaxy/track"
	"github.com/lixenwraith/crystal-galaxy/vmath"
)

// Result is the generated crystal body geometry. Never nil: failed
// generation yields the minimal safe solid with SafeFallback set
type Result struct {
	Mesh           *Mesh
	ShapeSeed      uint32
	Tier           device.Tier
	Profile        Profile
	BoundingRadius float64
	Complexity     float64 // Within-tier detail factor in [0,1]
	SafeFallback   bool
}

// Generator builds crystal bodies from track records.
//
// Generation is a pure function of (track identity, tier): the same
// record at the same tier reproduces byte-identical buffers, and the same
// record at a lower tier reproduces the same silhouette at lower facet
// count. OnFailure, when set, observes caught generation failures; the
// caller still receives a valid safe solid
type Generator struct {
	PopularityWeight float64
	DurationWeight   float64
	OnFailure        func(err error, rec track.Record)
}

// NewGenerator creates a generator with the default complexity blend
func NewGenerator() *Generator {
	return &Generator{
		PopularityWeight: parameter.ComplexityPopularityWeight,
		DurationWeight:   parameter.ComplexityDurationWeight,
	}
}

// Generate builds the crystal body for one track at the given tier.
// Panics inside mesh construction are caught here and converted into the
// minimal safe solid; the error surfaces through OnFailure only
func (g *Generator) Generate(rec track.Record, tier device.Tier) (res *Result) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("generate body for track %q: %v", rec.ID, r)
			if g.OnFailure != nil {
				g.OnFailure(err, rec)
			}
			res = g.SafeSolid(rec)
		}
	}()

	seed := Seed(rec)
	verts, indices := baseSolid(int(tier))
	profile := ProfileFor(rec.Genre)
	complexity := g.complexity(rec)
	detail := 0.5 + 0.5*complexity

	// Genre deformation: elongation along Y
	for i := range verts {
		verts[i].Y *= profile.Elongation
	}

	// Genre deformation: seeded spikes
	if profile.Sharpness > 1 {
		rng := vmath.NewLCG(seed ^ parameter.SeedSaltSharpness)
		for i := range verts {
			draw := math.Pow(rng.Float(), parameter.SharpnessSpikeExponent)
			spike := 1 + (profile.Sharpness-1)*draw*detail
			verts[i] = vmath.V3FScale(verts[i], spike)
		}
	}

	// Genre deformation: radial roughness jitter
	if profile.Roughness > 1 {
		rng := vmath.NewLCG(seed ^ parameter.SeedSaltRoughness)
		amp := (profile.Roughness - 1) * parameter.RoughnessJitterScale * detail
		for i := range verts {
			verts[i] = vmath.V3FScale(verts[i], 1+amp*rng.Range(-1, 1))
		}
	}

	// Facet variation: independent pass so equal shape factors still
	// produce distinct bodies per track
	{
		rng := vmath.NewLCG(seed ^ parameter.SeedSaltFacet)
		for i := range verts {
			verts[i] = vmath.V3FScale(verts[i], 1+parameter.FacetVariationScale*rng.Range(-1, 1))
		}
	}

	mesh, radius := buildMesh(verts, indices)
	attachChannels(mesh, rec, seed)

	return &Result{
		Mesh:           mesh,
		ShapeSeed:      ShapeSeed(rec),
		Tier:           tier,
		Profile:        profile,
		BoundingRadius: radius,
		Complexity:     complexity,
	}
}

// complexity blends popularity and duration into [0,1]
func (g *Generator) complexity(rec track.Record) float64 {
	wp, wd := g.PopularityWeight, g.DurationWeight
	if wp+wd <= 0 {
		wp, wd = parameter.ComplexityPopularityWeight, parameter.ComplexityDurationWeight
	}

	p := float64(rec.Popularity) / 100
	d := float64(rec.Duration) / parameter.ComplexityDurationCapSeconds
	if p > 1 {
		p = 1
	}
	if d > 1 {
		d = 1
	}
	return (wp*p + wd*d) / (wp + wd)
}

// buildMesh converts deformed vertices into the float32 buffers and
// recomputes normals post-deformation
func buildMesh(verts []vmath.Vec3F, indices []uint32) (*Mesh, float64) {
	m := &Mesh{
		Positions:    make([]float32, len(verts)*3),
		Normals:      make([]float32, len(verts)*3),
		Indices:      append([]uint32(nil), indices...),
		FacetNormals: make([]float32, len(indices)),
	}

	radius := 0.0
	for i, v := range verts {
		m.Positions[i*3] = float32(v.X)
		m.Positions[i*3+1] = float32(v.Y)
		m.Positions[i*3+2] = float32(v.Z)
		if mag := vmath.V3FMag(v); mag > radius {
			radius = mag
		}
	}

	// Flat facet normals plus accumulated vertex normals
	acc := make([]vmath.Vec3F, len(verts))
	for f := 0; f < len(indices); f += 3 {
		v0 := verts[indices[f]]
		v1 := verts[indices[f+1]]
		v2 := verts[indices[f+2]]
		n := vmath.V3FNormalize(vmath.V3FCross(vmath.V3FSub(v1, v0), vmath.V3FSub(v2, v0)))

		m.FacetNormals[f] = float32(n.X)
		m.FacetNormals[f+1] = float32(n.Y)
		m.FacetNormals[f+2] = float32(n.Z)

		acc[indices[f]] = vmath.V3FAdd(acc[indices[f]], n)
		acc[indices[f+1]] = vmath.V3FAdd(acc[indices[f+1]], n)
		acc[indices[f+2]] = vmath.V3FAdd(acc[indices[f+2]], n)
	}
	for i, n := range acc {
		nn := vmath.V3FNormalize(n)
		m.Normals[i*3] = float32(nn.X)
		m.Normals[i*3+1] = float32(nn.Y)
		m.Normals[i*3+2] = float32(nn.Z)
	}

	m.OriginalPositions = append([]float32(nil), m.Positions...)
	return m, radius
}

// attachChannels fills the per-vertex animation channels
func attachChannels(m *Mesh, rec track.Record, seed uint64) {
	count := m.VertexCount()
	m.PulsePhase = make([]float32, count)
	m.BPMMultiplier = make([]float32, count)

	rng := vmath.NewLCG(seed ^ parameter.SeedSaltChannels)
	for i := 0; i < count; i++ {
		m.PulsePhase[i] = float32(rng.Float() * 2 * math.Pi)
		if rec.BPM > 0 {
			m.BPMMultiplier[i] = float32(rec.BPM / parameter.BPMReferenceRate *
				(parameter.BPMMultiplierBase + parameter.BPMMultiplierSpread*rng.Float()))
		} else {
			m.BPMMultiplier[i] = 1.0
		}
	}
}

// SafeSolid is the guaranteed-valid fallback body: an undeformed
// octahedron with default channels. Used by the generation recovery
// boundary and by the fallback policy
func (g *Generator) SafeSolid(rec track.Record) *Result {
	verts, indices := octahedron()
	mesh, radius := buildMesh(verts, indices)

	count := mesh.VertexCount()
	mesh.PulsePhase = make([]float32, count)
	mesh.BPMMultiplier = make([]float32, count)
	for i := range mesh.BPMMultiplier {
		mesh.BPMMultiplier[i] = 1.0
	}

	return &Result{
		Mesh:           mesh,
		ShapeSeed:      ShapeSeed(rec),
		Tier:           device.TierUltraLow,
		Profile:        defaultProfile,
		BoundingRadius: radius,
		SafeFallback:   true,
	}
}
