package fallback

import (
	"fmt"
	"sync"

	"github.com/lixenwraith/crystal-galaxy/crystal"
	"github.com/lixenwraith/crystal-galaxy/device"
	"github.com/lixenwraith/crystal-galaxy/event"
	"github.com/lixenwraith/crystal-galaxy/material"
	"github.com/lixenwraith/crystal-galaxy/parameter"
	"github.com/lixenwraith/crystal-galaxy/track"
)

// Policy maps failures to guaranteed-valid fallback artifacts.
//
// Every report method appends exactly one registry entry and returns a
// usable artifact; callers never receive nil. Two consecutive
// high-severity performance warnings force the profiler into performance
// mode for the rest of the session. Context loss is critical: it forces
// performance mode immediately and suspends shader materials until the
// context is restored, after which one shader retry is allowed
type Policy struct {
	registry *Registry
	profiler *device.Profiler
	queue    *event.Queue // Optional; nil drops notifications
	gen      *crystal.Generator

	mu          sync.Mutex
	threshold   int
	highStreak  int
	escalated   bool
	contextLost bool
	shaderRetry bool
}

func NewPolicy(registry *Registry, profiler *device.Profiler, queue *event.Queue) *Policy {
	return &Policy{
		registry:  registry,
		profiler:  profiler,
		queue:     queue,
		gen:       crystal.NewGenerator(),
		threshold: parameter.EscalationThreshold,
	}
}

// SetEscalationThreshold overrides how many consecutive high-severity
// performance warnings force performance mode. Non-positive keeps the
// default
func (p *Policy) SetEscalationThreshold(n int) {
	if n <= 0 {
		return
	}
	p.mu.Lock()
	p.threshold = n
	p.mu.Unlock()
}

// ShaderFailure converts a failed program compile/link into the flat
// material. Stage is "compile" or "link"
func (p *Policy) ShaderFailure(stage, source string, err error, kind string) material.Material {
	k := KindShaderCompile
	if stage == "link" {
		k = KindShaderLink
	}

	p.registry.Append(Report{
		Kind:            k,
		Severity:        SeverityHigh,
		Message:         fmt.Sprintf("%s of %s failed: %v (source %d bytes)", stage, kind, err, len(source)),
		FallbackApplied: true,
	})
	p.push(event.Event{Type: event.TypeFallbackApplied, Payload: &event.FallbackPayload{Kind: string(k)}})

	return material.FlatFallback(kind)
}

// TextureFailure converts a failed cover load into the stable procedural
// texture for that track
func (p *Policy) TextureFailure(ref string, err error, rec track.Record) *material.Texture {
	p.registry.Append(Report{
		Kind:            KindTextureLoad,
		Severity:        SeverityMedium,
		Message:         fmt.Sprintf("texture %s for track %q: %v", ref, rec.ID, err),
		FallbackApplied: true,
	})
	p.push(event.Event{Type: event.TypeFallbackApplied, Payload: &event.FallbackPayload{
		Kind:    string(KindTextureLoad),
		TrackID: rec.ID,
	}})

	return material.Procedural(crystal.Seed(rec), p.profiler.TextureTier())
}

// GeometryFailure converts a failed mesh build into the minimal safe solid
func (p *Policy) GeometryFailure(err error, rec track.Record) *crystal.Result {
	p.registry.Append(Report{
		Kind:            KindGeometry,
		Severity:        SeverityMedium,
		Message:         fmt.Sprintf("geometry for track %q: %v", rec.ID, err),
		FallbackApplied: true,
	})
	p.push(event.Event{Type: event.TypeFallbackApplied, Payload: &event.FallbackPayload{
		Kind:    string(KindGeometry),
		TrackID: rec.ID,
	}})

	return p.gen.SafeSolid(rec)
}

// AnimationFailure records a caught camera-flight failure. The controller
// restores input control itself; pose correctness is not guaranteed
func (p *Policy) AnimationFailure(err error) {
	p.registry.Append(Report{
		Kind:     KindAnimation,
		Severity: SeverityHigh,
		Message:  err.Error(),
	})
}

// PerformanceWarning records a breached frame-time metric. Breaches are
// high severity; a below-threshold sample resets the escalation streak
func (p *Policy) PerformanceWarning(metric string, threshold, value float64) {
	severity := SeverityLow
	if value >= threshold {
		severity = SeverityHigh
	}

	p.registry.Append(Report{
		Kind:     KindPerformance,
		Severity: severity,
		Message:  fmt.Sprintf("%s = %.2f (threshold %.2f)", metric, value, threshold),
	})

	p.mu.Lock()
	if severity >= SeverityHigh {
		p.highStreak++
	} else {
		p.highStreak = 0
	}
	shouldEscalate := p.highStreak >= p.threshold && !p.escalated
	if shouldEscalate {
		p.escalated = true
	}
	p.mu.Unlock()

	if shouldEscalate {
		p.profiler.ForcePerformanceMode()
		p.push(event.Event{Type: event.TypePerformanceDegraded})
	}
}

// ContextLost records a critical rendering-context loss and forces
// performance mode until restoration
func (p *Policy) ContextLost() {
	p.mu.Lock()
	p.contextLost = true
	p.shaderRetry = false
	p.mu.Unlock()

	p.registry.Append(Report{
		Kind:            KindContextLost,
		Severity:        SeverityCritical,
		Message:         "rendering context lost; performance mode engaged",
		FallbackApplied: true,
	})
	p.profiler.ForcePerformanceMode()
	p.push(event.Event{Type: event.TypeContextLost})
}

// ContextRestored clears the loss flag and arms a single shader retry
func (p *Policy) ContextRestored() {
	p.mu.Lock()
	restored := p.contextLost
	p.contextLost = false
	p.shaderRetry = restored
	p.mu.Unlock()

	if restored {
		p.push(event.Event{Type: event.TypeContextRestored})
	}
}

// ContextIsLost reports whether the context is currently lost
func (p *Policy) ContextIsLost() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.contextLost
}

// ConsumeShaderRetry returns true at most once after a context
// restoration, permitting a single shader recompile attempt
func (p *Policy) ConsumeShaderRetry() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.shaderRetry {
		return false
	}
	p.shaderRetry = false
	return true
}

func (p *Policy) push(ev event.Event) {
	if p.queue != nil {
		p.queue.Push(ev)
	}
}
