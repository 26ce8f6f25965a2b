package render

import (
	"math"
	"sort"
	"time"

	"github.com/lixenwraith/crystal-galaxy/camera"
	"github.com/lixenwraith/crystal-galaxy/parameter"
	"github.com/lixenwraith/crystal-galaxy/scene"
	"github.com/lixenwraith/crystal-galaxy/vmath"
)

// Renderer composes galaxy frames: pulsed vertices, perspective
// projection, painter's-sorted flat-shaded facets, then the
// depth-of-field and color-depth passes over the finished cells
type Renderer struct {
	Buf *Buffer

	proj      Projector
	trueColor bool
	dof       *DepthOfField
	shade     shadeContext
}

func NewRenderer(w, h int, trueColor bool) *Renderer {
	view := h - parameter.HUDRows
	if view < 1 {
		view = 1
	}
	return &Renderer{
		Buf:       NewBuffer(w, h),
		proj:      NewProjector(w, view),
		trueColor: trueColor,
		dof:       NewDepthOfField(),
		shade:     newShadeContext(),
	}
}

// DOF exposes the focus effect for the camera controller to drive
func (r *Renderer) DOF() *DepthOfField { return r.dof }

// Resize adapts to a new terminal size
func (r *Renderer) Resize(w, h int) {
	view := h - parameter.HUDRows
	if view < 1 {
		view = 1
	}
	r.Buf.Resize(w, h)
	r.proj = NewProjector(w, view)
}

// facetJob is one projected facet awaiting the painter's pass
type facetJob struct {
	x0, y0 float64
	x1, y1 float64
	x2, y2 float64
	depth  float64
	color  RGB
}

// Frame renders the bodies for the given camera pose and elapsed game
// time into the buffer. The caller draws the HUD and flushes
func (r *Renderer) Frame(bodies []*scene.Body, pose camera.Pose, elapsed time.Duration) {
	r.Buf.Clear()
	b := basisFor(pose)
	t := elapsed.Seconds()

	var jobs []facetJob
	for _, body := range bodies {
		jobs = r.appendBody(jobs, body, b, t)
	}

	// Painter's algorithm: far facets first, near overwrite
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].depth > jobs[j].depth })
	for i := range jobs {
		r.rasterize(&jobs[i])
	}

	r.postProcess()
}

func (r *Renderer) appendBody(jobs []facetJob, body *scene.Body, b basis, t float64) []facetJob {
	mesh := body.Crystal.Mesh
	if mesh == nil || mesh.Disposed() {
		return jobs
	}

	// Pulse each vertex radially on its animation channels, then move
	// into camera space
	count := mesh.VertexCount()
	view := make([]vmath.Vec3F, count)
	for i := 0; i < count; i++ {
		s := 1 + parameter.PulseAmplitude*
			math.Sin(float64(mesh.PulsePhase[i])+t*parameter.PulseBaseRate*float64(mesh.BPMMultiplier[i]))
		world := vmath.V3FAdd(body.Position, vmath.Vec3F{
			X: float64(mesh.OriginalPositions[i*3]) * s,
			Y: float64(mesh.OriginalPositions[i*3+1]) * s,
			Z: float64(mesh.OriginalPositions[i*3+2]) * s,
		})
		view[i] = b.toView(world)
	}

	for f := 0; f+2 < len(mesh.Indices); f += 3 {
		v0 := view[mesh.Indices[f]]
		v1 := view[mesh.Indices[f+1]]
		v2 := view[mesh.Indices[f+2]]

		centroid := vmath.V3FScale(vmath.V3FAdd(vmath.V3FAdd(v0, v1), v2), 1.0/3.0)
		n := vmath.V3FNormalize(vmath.V3FCross(vmath.V3FSub(v1, v0), vmath.V3FSub(v2, v0)))
		// Orient the normal toward the camera; occlusion is the
		// painter's sort's job
		if vmath.V3FDot(n, centroid) > 0 {
			n = vmath.V3FScale(n, -1)
		}

		x0, y0, _, ok0 := r.proj.project(v0)
		x1, y1, _, ok1 := r.proj.project(v1)
		x2, y2, _, ok2 := r.proj.project(v2)
		if !ok0 || !ok1 || !ok2 {
			continue
		}

		u, v := facetUV(vmath.Vec3F{
			X: float64(mesh.FacetNormals[f]),
			Y: float64(mesh.FacetNormals[f+1]),
			Z: float64(mesh.FacetNormals[f+2]),
		})
		tr, tg, tb := body.Texture().At(u, v)

		jobs = append(jobs, facetJob{
			x0: x0, y0: y0, x1: x1, y1: y1, x2: x2, y2: y2,
			depth: centroid.Z,
			color: r.shade.facet(body.Material, n, RGB{tr, tg, tb}, body.Track.Available),
		})
	}
	return jobs
}

// rasterize fills the facet's cells by barycentric point-in-triangle
// tests over its bounding box
func (r *Renderer) rasterize(j *facetJob) {
	minX := int(math.Floor(min3(j.x0, j.x1, j.x2)))
	maxX := int(math.Ceil(max3(j.x0, j.x1, j.x2)))
	minY := int(math.Floor(min3(j.y0, j.y1, j.y2)))
	maxY := int(math.Ceil(max3(j.y0, j.y1, j.y2)))

	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX >= r.proj.W {
		maxX = r.proj.W - 1
	}
	if maxY >= r.proj.H {
		maxY = r.proj.H - 1
	}

	area := edge(j.x0, j.y0, j.x1, j.y1, j.x2, j.y2)
	if math.Abs(area) < 1e-9 {
		// Degenerate in screen space; still paint the nearest cell so
		// tiny distant facets stay visible
		r.Buf.Set(int((j.x0+j.x1+j.x2)/3), int((j.y0+j.y1+j.y2)/3), ' ', RGB{}, j.color, j.depth)
		return
	}

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px := float64(x) + 0.5
			py := float64(y) + 0.5
			w0 := edge(j.x1, j.y1, j.x2, j.y2, px, py) / area
			w1 := edge(j.x2, j.y2, j.x0, j.y0, px, py) / area
			w2 := edge(j.x0, j.y0, j.x1, j.y1, px, py) / area
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			r.Buf.Set(x, y, ' ', RGB{}, j.color, j.depth)
		}
	}
}

// postProcess applies depth of field and color-depth quantization to
// the composed cells
func (r *Renderer) postProcess() {
	for y := 0; y < r.proj.H; y++ {
		for x := 0; x < r.proj.W; x++ {
			c := r.Buf.At(x, y)
			if !c.Filled {
				continue
			}
			bg := r.dof.apply(c.BG, c.Depth)
			if !r.trueColor {
				bg = bg.Quantize256()
			}
			if bg != c.BG {
				r.Buf.Set(x, y, c.Rune, c.FG, bg, c.Depth)
			}
		}
	}
}

// BodyAt picks the body whose projected disc covers the cell, nearest
// first. Empty when the cell is open space
func (r *Renderer) BodyAt(x, y int, bodies []*scene.Body, pose camera.Pose) string {
	b := basisFor(pose)

	bestID := ""
	bestZ := math.Inf(1)
	for _, body := range bodies {
		view := b.toView(body.WorldPosition())
		cx, cy, invZ, ok := r.proj.project(view)
		if !ok || view.Z >= bestZ {
			continue
		}
		rad := r.proj.radiusCells(body.BodyRadius(), invZ)
		if rad < 0.5 {
			rad = 0.5
		}
		dx := (float64(x) + 0.5 - cx) / (rad * parameter.RenderCellAspect)
		dy := (float64(y) + 0.5 - cy) / rad
		if dx*dx+dy*dy <= 1 {
			bestID = body.TrackID()
			bestZ = view.Z
		}
	}
	return bestID
}

func edge(ax, ay, bx, by, px, py float64) float64 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

func min3(a, b, c float64) float64 { return math.Min(a, math.Min(b, c)) }
func max3(a, b, c float64) float64 { return math.Max(a, math.Max(b, c)) }
