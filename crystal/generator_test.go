package crystal

import (
	"testing"

	"github.com/lixenwraith/crystal-galaxy/device"
	"github.com/lixenwraith/crystal-galaxy/track"
)

func testRecord() track.Record {
	return track.Record{
		ID:         "abc",
		Title:      "Iron Sky",
		Artist:     "Testers",
		Album:      "Fixtures",
		Genre:      "metal",
		Duration:   240,
		Popularity: 90,
		Available:  true,
	}
}

// TestGenerateDeterminism verifies two generations of the same record and
// tier produce byte-identical buffers, including the custom channels
func TestGenerateDeterminism(t *testing.T) {
	g := NewGenerator()
	rec := testRecord()

	for tier := device.TierUltraLow; tier <= device.TierUltraHigh; tier++ {
		a := g.Generate(rec, tier)
		b := g.Generate(rec, tier)

		if a.SafeFallback || b.SafeFallback {
			t.Fatalf("tier %v: unexpected fallback", tier)
		}
		compareF32(t, tier, "positions", a.Mesh.Positions, b.Mesh.Positions)
		compareF32(t, tier, "normals", a.Mesh.Normals, b.Mesh.Normals)
		compareF32(t, tier, "facet normals", a.Mesh.FacetNormals, b.Mesh.FacetNormals)
		compareF32(t, tier, "pulse phase", a.Mesh.PulsePhase, b.Mesh.PulsePhase)
		compareF32(t, tier, "bpm multiplier", a.Mesh.BPMMultiplier, b.Mesh.BPMMultiplier)
		compareF32(t, tier, "original positions", a.Mesh.OriginalPositions, b.Mesh.OriginalPositions)
		if a.ShapeSeed != b.ShapeSeed {
			t.Errorf("tier %v: shape seeds differ", tier)
		}
	}
}

func compareF32(t *testing.T, tier device.Tier, name string, a, b []float32) {
	t.Helper()
	if len(a) != len(b) {
		t.Fatalf("tier %v: %s length %d != %d", tier, name, len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("tier %v: %s diverges at %d: %v != %v", tier, name, i, a[i], b[i])
		}
	}
}

// TestTierMonotonicity verifies vertex count strictly increases with tier
func TestTierMonotonicity(t *testing.T) {
	g := NewGenerator()
	rec := testRecord()

	prev := 0
	for tier := device.TierUltraLow; tier <= device.TierUltraHigh; tier++ {
		res := g.Generate(rec, tier)
		count := res.Mesh.VertexCount()
		if count <= prev {
			t.Errorf("tier %v: vertex count %d not above previous %d", tier, count, prev)
		}
		prev = count
	}
}

// TestTierVertexTable verifies the exact subdivision table:
// octahedron 6, icosahedron 12, then midpoint subdivision 42/162/642
func TestTierVertexTable(t *testing.T) {
	g := NewGenerator()
	rec := testRecord()

	want := map[device.Tier][2]int{
		device.TierUltraLow:  {6, 8},
		device.TierLow:       {12, 20},
		device.TierMedium:    {42, 80},
		device.TierHigh:      {162, 320},
		device.TierUltraHigh: {642, 1280},
	}
	for tier, counts := range want {
		res := g.Generate(rec, tier)
		if v := res.Mesh.VertexCount(); v != counts[0] {
			t.Errorf("tier %v: %d vertices, want %d", tier, v, counts[0])
		}
		if f := res.Mesh.FacetCount(); f != counts[1] {
			t.Errorf("tier %v: %d facets, want %d", tier, f, counts[1])
		}
	}
}

// TestMetalHighScenario pins the reference scenario: popular metal track
// at tier high gets the metal shape profile, the high-tier vertex count,
// and defaulted BPM multipliers when no BPM is supplied
func TestMetalHighScenario(t *testing.T) {
	g := NewGenerator()
	res := g.Generate(testRecord(), device.TierHigh)

	if res.Mesh.VertexCount() != 162 {
		t.Errorf("vertex count = %d, want 162", res.Mesh.VertexCount())
	}
	if res.Profile != genreProfiles["metal"] {
		t.Errorf("profile = %+v, want metal profile", res.Profile)
	}
	for i, m := range res.Mesh.BPMMultiplier {
		if m != 1.0 {
			t.Fatalf("bpm multiplier[%d] = %v, want 1.0 without BPM", i, m)
		}
	}
	if res.BoundingRadius <= 1.0 {
		t.Errorf("bounding radius %v not expanded by metal deformation", res.BoundingRadius)
	}
}

// TestBPMChannel verifies a supplied BPM scales the pulse multipliers
// within the documented band
func TestBPMChannel(t *testing.T) {
	g := NewGenerator()
	rec := testRecord()
	rec.BPM = 180

	res := g.Generate(rec, device.TierLow)
	base := rec.BPM / 120
	for i, m := range res.Mesh.BPMMultiplier {
		lo := float32(base * 0.8)
		hi := float32(base * 1.2)
		if m < lo || m > hi {
			t.Fatalf("bpm multiplier[%d] = %v outside [%v,%v]", i, m, lo, hi)
		}
	}
}

// TestFacetVariationDistinguishesTracks verifies two same-genre tracks
// never share geometry
func TestFacetVariationDistinguishesTracks(t *testing.T) {
	g := NewGenerator()
	a := testRecord()
	b := testRecord()
	b.ID = "xyz"
	b.Title = "Other"

	ra := g.Generate(a, device.TierMedium)
	rb := g.Generate(b, device.TierMedium)

	same := true
	for i := range ra.Mesh.Positions {
		if ra.Mesh.Positions[i] != rb.Mesh.Positions[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("distinct tracks produced identical geometry")
	}
}

// TestGenerateRecoversToSafeSolid verifies an impossible tier is caught
// at the generator boundary and yields the minimal safe solid plus one
// failure callback
func TestGenerateRecoversToSafeSolid(t *testing.T) {
	g := NewGenerator()
	var reported int
	g.OnFailure = func(err error, rec track.Record) {
		reported++
		if err == nil || rec.ID != "abc" {
			t.Error("failure callback missing context")
		}
	}

	res := g.Generate(testRecord(), device.Tier(99))
	if res == nil {
		t.Fatal("Generate returned nil")
	}
	if !res.SafeFallback {
		t.Error("expected safe fallback result")
	}
	if res.Mesh.VertexCount() != 6 {
		t.Errorf("safe solid has %d vertices, want 6", res.Mesh.VertexCount())
	}
	if reported != 1 {
		t.Errorf("failure reported %d times, want 1", reported)
	}
}

// TestOriginalPositionsSnapshot verifies the animation base equals the
// deformed positions at generation time
func TestOriginalPositionsSnapshot(t *testing.T) {
	g := NewGenerator()
	res := g.Generate(testRecord(), device.TierMedium)

	compareF32(t, device.TierMedium, "original positions", res.Mesh.Positions, res.Mesh.OriginalPositions)

	// And that it is a copy, not an alias
	res.Mesh.Positions[0] += 1
	if res.Mesh.Positions[0] == res.Mesh.OriginalPositions[0] {
		t.Error("OriginalPositions aliases Positions")
	}
}

// TestMeshDisposeIdempotent verifies disposal releases buffers and can run twice
func TestMeshDisposeIdempotent(t *testing.T) {
	g := NewGenerator()
	res := g.Generate(testRecord(), device.TierLow)

	res.Mesh.Dispose()
	res.Mesh.Dispose()
	if !res.Mesh.Disposed() || res.Mesh.VertexCount() != 0 {
		t.Error("mesh not fully disposed")
	}
}
