package fallback

import (
	"errors"
	"testing"

	"github.com/lixenwraith/crystal-galaxy/device"
	"github.com/lixenwraith/crystal-galaxy/event"
	"github.com/lixenwraith/crystal-galaxy/material"
	"github.com/lixenwraith/crystal-galaxy/parameter"
	"github.com/lixenwraith/crystal-galaxy/track"
)

type stubProbe struct{ reading device.Reading }

func (s stubProbe) Read() device.Reading { return s.reading }

func newTestPolicy() (*Policy, *Registry, *device.Profiler, *event.Queue) {
	reg := NewRegistry()
	prof := device.NewProfiler(stubProbe{reading: device.Reading{
		TrueColor: true, Cells: 200 * 50, MemoryMB: 16384, Vendor: "kitty",
		Extensions: []string{"extended-palette", "mouse", "emulator-identified"},
	}})
	q := event.NewQueue()
	return NewPolicy(reg, prof, q), reg, prof, q
}

func policyRecord() track.Record {
	return track.Record{ID: "t1", Title: "T", Artist: "A", Genre: "pop", Duration: 120, Available: true}
}

// TestShaderFailureTotality verifies a failed compile yields a valid flat
// material and exactly one report
func TestShaderFailureTotality(t *testing.T) {
	p, reg, _, _ := newTestPolicy()

	m := p.ShaderFailure("compile", "bad source", errors.New("syntax"), "crystal-facet")
	if m.State != material.StateFallbackFlat {
		t.Errorf("state = %v, want fallback-flat", m.State)
	}
	reports := reg.Snapshot()
	if len(reports) != 1 {
		t.Fatalf("got %d reports, want 1", len(reports))
	}
	if reports[0].Kind != KindShaderCompile || !reports[0].FallbackApplied {
		t.Errorf("report = %+v", reports[0])
	}

	p.ShaderFailure("link", "src", errors.New("link fail"), "crystal-facet")
	if got := reg.Snapshot()[1].Kind; got != KindShaderLink {
		t.Errorf("link stage reported as %v", got)
	}
}

// TestTextureFailureTotality verifies the procedural fallback is stable
// per track and one report is appended per failure
func TestTextureFailureTotality(t *testing.T) {
	p, reg, _, _ := newTestPolicy()
	rec := policyRecord()

	a := p.TextureFailure("cover.png", errors.New("missing"), rec)
	b := p.TextureFailure("cover.png", errors.New("missing"), rec)
	if a == nil || b == nil {
		t.Fatal("nil fallback texture")
	}
	if !a.Fallback {
		t.Error("fallback texture not flagged")
	}
	if len(a.Pix) != len(b.Pix) {
		t.Fatal("fallback textures differ in size")
	}
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatal("fallback texture not stable per track")
		}
	}
	if reg.Len() != 2 {
		t.Errorf("got %d reports, want 2", reg.Len())
	}
}

// TestGeometryFailureTotality verifies a safe solid comes back with one
// medium report
func TestGeometryFailureTotality(t *testing.T) {
	p, reg, _, _ := newTestPolicy()

	res := p.GeometryFailure(errors.New("degenerate"), policyRecord())
	if res == nil || !res.SafeFallback || res.Mesh.VertexCount() == 0 {
		t.Fatalf("invalid fallback geometry: %+v", res)
	}
	reports := reg.Snapshot()
	if len(reports) != 1 || reports[0].Severity != SeverityMedium {
		t.Errorf("reports = %+v", reports)
	}
}

// TestPerformanceEscalation verifies two consecutive high warnings force
// performance mode exactly once, and a low sample resets the streak
func TestPerformanceEscalation(t *testing.T) {
	p, _, prof, q := newTestPolicy()

	p.PerformanceWarning("frame-ms", 50, 80) // High 1
	if prof.PerformanceForced() {
		t.Fatal("escalated after a single warning")
	}

	p.PerformanceWarning("frame-ms", 50, 20) // Below threshold resets
	p.PerformanceWarning("frame-ms", 50, 80) // High 1 again
	if prof.PerformanceForced() {
		t.Fatal("streak did not reset on low sample")
	}

	p.PerformanceWarning("frame-ms", 50, 90) // High 2: escalate
	if !prof.PerformanceForced() {
		t.Fatal("two consecutive high warnings did not escalate")
	}

	// Idempotent: further warnings do not re-emit the degraded event
	p.PerformanceWarning("frame-ms", 50, 90)
	p.PerformanceWarning("frame-ms", 50, 90)

	degraded := 0
	for _, ev := range q.Consume() {
		if ev.Type == event.TypePerformanceDegraded {
			degraded++
		}
	}
	if degraded != 1 {
		t.Errorf("degraded event emitted %d times, want 1", degraded)
	}
}

// TestContextLossCycle verifies loss forces performance mode, restoration
// arms exactly one shader retry
func TestContextLossCycle(t *testing.T) {
	p, reg, prof, _ := newTestPolicy()

	p.ContextLost()
	if !p.ContextIsLost() || !prof.PerformanceForced() {
		t.Fatal("context loss did not engage performance mode")
	}
	if p.ConsumeShaderRetry() {
		t.Error("shader retry armed while context lost")
	}

	p.ContextRestored()
	if p.ContextIsLost() {
		t.Error("context still lost after restore")
	}
	if !p.ConsumeShaderRetry() {
		t.Error("no shader retry after restore")
	}
	if p.ConsumeShaderRetry() {
		t.Error("shader retry allowed twice")
	}

	// Restore without loss is a no-op
	p.ContextRestored()
	if p.ConsumeShaderRetry() {
		t.Error("spurious restore armed a retry")
	}

	found := false
	for _, r := range reg.Snapshot() {
		if r.Kind == KindContextLost && r.Severity == SeverityCritical {
			found = true
		}
	}
	if !found {
		t.Error("context loss not reported as critical")
	}
}

// TestRegistryRingEviction verifies the ring keeps only the newest
// reports and Snapshot returns them oldest-first
func TestRegistryRingEviction(t *testing.T) {
	reg := NewRegistry()
	total := parameter.ErrorRingSize + 10
	for i := 0; i < total; i++ {
		reg.Append(Report{Kind: KindTextureLoad, Severity: SeverityLow, Message: string(rune('a' + i%26))})
	}

	got := reg.Snapshot()
	if len(got) != parameter.ErrorRingSize {
		t.Fatalf("retained %d, want %d", len(got), parameter.ErrorRingSize)
	}
	wantFirst := string(rune('a' + 10%26))
	if got[0].Message != wantFirst {
		t.Errorf("oldest retained = %q, want %q", got[0].Message, wantFirst)
	}
}

// TestNotificationGate verifies the callback fires at high severity and
// above only, and is a no-op when unset
func TestNotificationGate(t *testing.T) {
	reg := NewRegistry()
	reg.Append(Report{Kind: KindTextureLoad, Severity: SeverityHigh}) // No callback set: no panic

	var notified []Severity
	reg.SetNotify(func(r Report) { notified = append(notified, r.Severity) })

	reg.Append(Report{Kind: KindTextureLoad, Severity: SeverityLow})
	reg.Append(Report{Kind: KindShaderCompile, Severity: SeverityHigh})
	reg.Append(Report{Kind: KindContextLost, Severity: SeverityCritical})

	if len(notified) != 2 || notified[0] != SeverityHigh || notified[1] != SeverityCritical {
		t.Errorf("notified = %v", notified)
	}
}
