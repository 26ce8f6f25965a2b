package render

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/crystal-galaxy/camera"
	"github.com/lixenwraith/crystal-galaxy/crystal"
	"github.com/lixenwraith/crystal-galaxy/device"
	"github.com/lixenwraith/crystal-galaxy/material"
	"github.com/lixenwraith/crystal-galaxy/parameter"
	"github.com/lixenwraith/crystal-galaxy/scene"
	"github.com/lixenwraith/crystal-galaxy/track"
	"github.com/lixenwraith/crystal-galaxy/vmath"
)

func testPose() camera.Pose {
	return camera.Pose{Position: vmath.Vec3F{Z: -10}}
}

// TestProjectionCenterAndAspect verifies the look-at point lands on the
// viewport center and X offsets are stretched by the cell aspect
func TestProjectionCenterAndAspect(t *testing.T) {
	p := NewProjector(80, 24)
	b := basisFor(testPose())

	cx, cy, _, ok := p.project(b.toView(vmath.Vec3F{}))
	if !ok {
		t.Fatal("origin clipped")
	}
	if math.Abs(cx-40) > 1e-9 || math.Abs(cy-12) > 1e-9 {
		t.Errorf("origin projected to (%.2f, %.2f), want (40, 12)", cx, cy)
	}

	xx, _, _, _ := p.project(b.toView(vmath.Vec3F{X: 1}))
	_, yy, _, _ := p.project(b.toView(vmath.Vec3F{Y: 1}))
	dx := math.Abs(xx - 40)
	dy := math.Abs(yy - 12)
	if math.Abs(dx/dy-parameter.RenderCellAspect) > 1e-9 {
		t.Errorf("aspect ratio %.3f, want %.1f", dx/dy, parameter.RenderCellAspect)
	}
}

// TestNearClipRejectsBehindCamera verifies points behind the near plane
// do not project
func TestNearClipRejectsBehindCamera(t *testing.T) {
	p := NewProjector(80, 24)
	b := basisFor(testPose())

	if _, _, _, ok := p.project(b.toView(vmath.Vec3F{Z: -30})); ok {
		t.Error("point behind the camera projected")
	}
}

// TestQuantize256 verifies channels snap to the xterm cube levels
func TestQuantize256(t *testing.T) {
	cases := []struct {
		in   RGB
		want RGB
	}{
		{RGB{0, 0, 0}, RGB{0, 0, 0}},
		{RGB{96, 200, 255}, RGB{95, 215, 255}},
		{RGB{47, 115, 195}, RGB{0, 95, 175}},
	}
	for _, tc := range cases {
		if got := tc.in.Quantize256(); got != tc.want {
			t.Errorf("Quantize256(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

// TestDepthOfFieldRamp verifies in-focus cells pass through untouched
// and out-of-focus cells lose color spread
func TestDepthOfFieldRamp(t *testing.T) {
	dof := NewDepthOfField()
	c := RGB{200, 60, 40}

	if got := dof.apply(c, 25); got != c {
		t.Error("disabled effect modified the color")
	}

	dof.EnableDepthOfField(10)
	if got := dof.apply(c, 10); got != c {
		t.Error("in-focus cell was washed out")
	}

	far := dof.apply(c, 10+parameter.DOFRampDistance)
	if far == c {
		t.Fatal("out-of-focus cell unchanged")
	}
	if spread(far) >= spread(c) {
		t.Errorf("out-of-focus spread %d not below %d", spread(far), spread(c))
	}
}

func spread(c RGB) int {
	hi := max(int(c.R), max(int(c.G), int(c.B)))
	lo := min(int(c.R), min(int(c.G), int(c.B)))
	return hi - lo
}

// TestShadeUnavailableDim verifies unavailable tracks render strictly
// darker than available ones on the same facet
func TestShadeUnavailableDim(t *testing.T) {
	s := newShadeContext()
	mat := material.FlatFallback("crystal-facet")
	n := vmath.Vec3F{Z: -1}
	base := RGB{180, 180, 180}

	lit := s.facet(mat, n, base, true)
	dim := s.facet(mat, n, base, false)
	if int(dim.R) >= int(lit.R) || int(dim.G) >= int(lit.G) || int(dim.B) >= int(lit.B) {
		t.Errorf("unavailable %v not darker than available %v", dim, lit)
	}
}

// TestShaderHighlightBrightens verifies the active shader material adds
// specular energy over the flat fallback on a camera-facing facet
func TestShaderHighlightBrightens(t *testing.T) {
	s := newShadeContext()
	active, err := material.Compile("crystal-facet", material.DefaultProgramSource)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	flat := material.FlatFallback("crystal-facet")
	n := vmath.V3FNormalize(vmath.Vec3F{X: 0.3, Y: 0.4, Z: -1})
	base := RGB{100, 120, 160}

	a := s.facet(active, n, base, true)
	f := s.facet(flat, n, base, true)
	if int(a.R)+int(a.G)+int(a.B) <= int(f.R)+int(f.G)+int(f.B) {
		t.Errorf("shader facet %v not brighter than flat %v", a, f)
	}
}

// TestFrameAndPicking verifies a body renders cells around the viewport
// center and picking resolves the cell back to its track
func TestFrameAndPicking(t *testing.T) {
	gen := crystal.NewGenerator()
	rec := track.Record{ID: "t1", Title: "T", Artist: "A", Genre: "metal",
		Duration: 240, Popularity: 60, Available: true}
	body := &scene.Body{
		Track:    rec,
		Crystal:  gen.Generate(rec, device.TierLow),
		Material: material.FlatFallback("crystal-facet"),
	}
	bodies := []*scene.Body{body}

	r := NewRenderer(80, 26, true)
	r.Frame(bodies, testPose(), 0)

	filled := 0
	for y := 8; y < 18; y++ {
		for x := 30; x < 50; x++ {
			if r.Buf.At(x, y).Filled {
				filled++
			}
		}
	}
	if filled == 0 {
		t.Fatal("no cells rendered around the viewport center")
	}

	if got := r.BodyAt(40, 12, bodies, testPose()); got != "t1" {
		t.Errorf("center pick = %q, want t1", got)
	}
	if got := r.BodyAt(1, 1, bodies, testPose()); got != "" {
		t.Errorf("corner pick = %q, want empty", got)
	}
}

// TestPulseMovesVertices verifies the animation channels displace
// geometry between frames
func TestPulseMovesVertices(t *testing.T) {
	gen := crystal.NewGenerator()
	rec := track.Record{ID: "t2", Title: "P", Artist: "B", Genre: "electronic",
		Duration: 200, Popularity: 50, BPM: 128, Available: true}
	body := &scene.Body{
		Track:    rec,
		Crystal:  gen.Generate(rec, device.TierUltraLow),
		Material: material.FlatFallback("crystal-facet"),
	}

	// Close camera and large viewport so the 6% displacement spans cells
	pose := camera.Pose{Position: vmath.Vec3F{Z: -5}}
	r := NewRenderer(120, 40, true)

	seen := map[string]bool{}
	for _, ms := range []int{0, 300, 600, 900} {
		r.Frame([]*scene.Body{body}, pose, time.Duration(ms)*time.Millisecond)
		seen[snapshotFilled(r.Buf)] = true
	}
	if len(seen) < 2 {
		t.Error("pulse did not change the rendered frame across sample times")
	}
}

func snapshotFilled(b *Buffer) string {
	out := make([]byte, 0, b.W*b.H)
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			c := b.At(x, y)
			out = append(out, byte(c.BG.R), byte(c.BG.G), byte(c.BG.B))
		}
	}
	return string(out)
}

// TestHUDRows verifies the caption and hint rows land in the reserved
// band and the focus hint replaces the cycle hints
func TestHUDRows(t *testing.T) {
	buf := NewBuffer(60, 20)
	hud := NewHUD()

	rec := track.Record{ID: "x", Title: "Song", Artist: "Band", Genre: "jazz", Duration: 125}
	hud.Draw(buf, HUDState{Caption: Caption(rec), Mode: "orbit", PerfMode: true})

	if buf.At(1, 18).Rune != '♪' {
		t.Errorf("caption row starts with %q", buf.At(1, 18).Rune)
	}
	if buf.At(1, 19).Rune != 't' { // "tab:cycle ..."
		t.Errorf("hint row starts with %q", buf.At(1, 19).Rune)
	}

	buf.Clear()
	hud.Draw(buf, HUDState{Focused: true})
	if buf.At(1, 19).Rune != 'e' { // "esc:back ..."
		t.Errorf("focused hint row starts with %q", buf.At(1, 19).Rune)
	}
}
