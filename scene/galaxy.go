package scene

import (
	"time"

	"github.com/lixenwraith/crystal-galaxy/crystal"
	"github.com/lixenwraith/crystal-galaxy/device"
	"github.com/lixenwraith/crystal-galaxy/event"
	"github.com/lixenwraith/crystal-galaxy/fallback"
	"github.com/lixenwraith/crystal-galaxy/material"
	"github.com/lixenwraith/crystal-galaxy/track"
	"github.com/lixenwraith/crystal-galaxy/vmath"
)

// Positioner supplies world placements for tracks. The layout pass
// implements it; the galaxy never computes positions itself
type Positioner interface {
	Position(rec track.Record) vmath.Vec3F
}

// Galaxy owns the visible crystal bodies: building them through the
// generator and fallback policy, swapping async cover textures in at
// frame start, regenerating on degradation, and tearing down cleanly.
//
// All methods except the spawned cover loads run on the frame loop
// goroutine. Loads hand their results back through the event queue
type Galaxy struct {
	gen        *crystal.Generator
	policy     *fallback.Policy
	profiler   *device.Profiler
	queue      *event.Queue
	positioner Positioner
	spawn      func(fn func())

	coverTimeout time.Duration

	bodies   map[string]*Body
	order    []string
	hovered  string
	disposed bool
}

func NewGalaxy(profiler *device.Profiler, policy *fallback.Policy, queue *event.Queue, positioner Positioner) *Galaxy {
	gen := crystal.NewGenerator()
	// Generate recovers internally; the policy call here records the
	// report, its returned artifact is redundant and dropped
	gen.OnFailure = func(err error, rec track.Record) {
		policy.GeometryFailure(err, rec)
	}

	return &Galaxy{
		gen:        gen,
		policy:     policy,
		profiler:   profiler,
		queue:      queue,
		positioner: positioner,
		spawn:      func(fn func()) { go fn() },
		bodies:     make(map[string]*Body),
	}
}

// SetSpawner replaces the goroutine launcher, letting the app root wrap
// cover loads in the crash handler
func (g *Galaxy) SetSpawner(spawn func(fn func())) {
	g.spawn = spawn
}

// SetComplexityWeights overrides the generator's popularity/duration
// blend. Both non-positive keeps the defaults
func (g *Galaxy) SetComplexityWeights(popularity, duration float64) {
	if popularity <= 0 && duration <= 0 {
		return
	}
	g.gen.PopularityWeight = popularity
	g.gen.DurationWeight = duration
}

// SetCoverTimeout overrides the async cover load deadline. Non-positive
// keeps the default
func (g *Galaxy) SetCoverTimeout(d time.Duration) {
	g.coverTimeout = d
}

// Sync reconciles the galaxy against the visible track set: new tracks
// get bodies, tracks leaving the set are disposed, placements refresh
func (g *Galaxy) Sync(tracks []track.Record) {
	if g.disposed {
		return
	}

	keep := make(map[string]bool, len(tracks))
	g.order = g.order[:0]
	for _, rec := range tracks {
		if keep[rec.ID] {
			continue
		}
		keep[rec.ID] = true
		g.order = append(g.order, rec.ID)

		if b, ok := g.bodies[rec.ID]; ok {
			b.Position = g.positioner.Position(rec)
			continue
		}
		g.bodies[rec.ID] = g.buildBody(rec)
	}

	for id, b := range g.bodies {
		if !keep[id] {
			b.Dispose()
			delete(g.bodies, id)
			if g.hovered == id {
				g.hovered = ""
			}
		}
	}
}

func (g *Galaxy) buildBody(rec track.Record) *Body {
	res := g.gen.Generate(rec, g.profiler.GeometryTier())

	mat, err := material.Compile("crystal-facet", material.DefaultProgramSource)
	if err != nil {
		mat = g.policy.ShaderFailure("compile", material.DefaultProgramSource, err, "crystal-facet")
	}

	b := &Body{
		Track:    rec,
		Position: g.positioner.Position(rec),
		Crystal:  res,
		Material: mat,
	}

	// Procedural art fills in immediately; the real cover replaces it if
	// the async load wins its timeout race
	texTier := g.profiler.TextureTier()
	b.SetTexture(material.Procedural(crystal.Seed(rec), texTier))
	if rec.CoverPath != "" && rec.Available {
		g.spawn(func() { g.loadCover(rec, texTier) })
	}
	return b
}

// loadCover runs off the frame loop. Success posts the texture through
// the queue for the frame-start swap; failure reports and keeps the
// procedural art already in place
func (g *Galaxy) loadCover(rec track.Record, tier device.TextureTier) {
	loader := material.NewLoader(tier)
	if g.coverTimeout > 0 {
		loader.Timeout = g.coverTimeout
	}
	tex, err := loader.Load(rec.CoverPath)
	if err != nil {
		fb := g.policy.TextureFailure(rec.CoverPath, err, rec)
		fb.Dispose()
		return
	}
	g.queue.Push(event.Event{Type: event.TypeTextureLoaded, Payload: &event.TexturePayload{
		TrackID: rec.ID,
		Texture: tex,
	}})
}

// ApplyTexture installs a finished cover load at frame start. Loads for
// bodies that left the set are disposed and discarded
func (g *Galaxy) ApplyTexture(trackID string, tex *material.Texture) {
	b, ok := g.bodies[trackID]
	if !ok || g.disposed {
		tex.Dispose()
		return
	}
	b.SetTexture(tex)
}

// Hover marks the body under the pointer, emitting one event per change
func (g *Galaxy) Hover(trackID string) {
	if g.disposed || trackID == g.hovered {
		return
	}
	g.hovered = trackID
	if _, ok := g.bodies[trackID]; ok {
		g.queue.Push(event.Event{Type: event.TypeBodyHovered, Payload: &event.BodyPayload{TrackID: trackID}})
	}
}

// Select emits the selection event for an existing body
func (g *Galaxy) Select(trackID string) {
	if g.disposed {
		return
	}
	if _, ok := g.bodies[trackID]; ok {
		g.queue.Push(event.Event{Type: event.TypeBodySelected, Payload: &event.BodyPayload{TrackID: trackID}})
	}
}

// Body returns the body for a track, nil when absent
func (g *Galaxy) Body(trackID string) *Body {
	return g.bodies[trackID]
}

// Bodies returns the bodies in the stable sync order
func (g *Galaxy) Bodies() []*Body {
	out := make([]*Body, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.bodies[id])
	}
	return out
}

// Cycle returns the track after current in sync order, wrapping around.
// An unknown or empty current yields the first body
func (g *Galaxy) Cycle(current string) string {
	if len(g.order) == 0 {
		return ""
	}
	for i, id := range g.order {
		if id == current {
			return g.order[(i+1)%len(g.order)]
		}
	}
	return g.order[0]
}

// Len returns the number of live bodies
func (g *Galaxy) Len() int { return len(g.bodies) }

// Degrade regenerates every body at the current effective tier. Called
// after a performance degradation; determinism preserves each body's
// silhouette at the reduced facet count
func (g *Galaxy) Degrade() {
	if g.disposed {
		return
	}
	tier := g.profiler.GeometryTier()
	for _, b := range g.bodies {
		old := b.Crystal
		b.Crystal = g.gen.Generate(b.Track, tier)
		if old != nil && old.Mesh != nil {
			old.Mesh.Dispose()
		}
	}
}

// RetryShaders recompiles body materials once after a context
// restoration armed the retry. No-op otherwise
func (g *Galaxy) RetryShaders() {
	if g.disposed || !g.policy.ConsumeShaderRetry() {
		return
	}
	for _, b := range g.bodies {
		mat, err := material.Compile(b.Material.Kind, material.DefaultProgramSource)
		if err != nil {
			mat = g.policy.ShaderFailure("compile", material.DefaultProgramSource, err, b.Material.Kind)
		}
		b.Material = mat
	}
}

// Dispose releases every body and rejects further use. Idempotent
func (g *Galaxy) Dispose() {
	if g.disposed {
		return
	}
	g.disposed = true
	for id, b := range g.bodies {
		b.Dispose()
		delete(g.bodies, id)
	}
	g.order = nil
}
