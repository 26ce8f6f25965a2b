package render

import (
	"github.com/lixenwraith/crystal-galaxy/camera"
	"github.com/lixenwraith/crystal-galaxy/parameter"
	"github.com/lixenwraith/crystal-galaxy/vmath"
)

// Projector maps world positions through the camera pose onto the cell
// grid with a focal-length perspective model. X is stretched by the cell
// aspect so spheres stay round on 1:2 terminal cells
type Projector struct {
	W, H  int // Viewport cells, HUD excluded
	Focal float64
}

func NewProjector(w, h int) Projector {
	return Projector{W: w, H: h, Focal: parameter.RenderFocalLength}
}

// basis is the camera-space frame: +X right, +Y up, +Z into the scene
type basis struct {
	origin  vmath.Vec3F
	right   vmath.Vec3F
	up      vmath.Vec3F
	forward vmath.Vec3F
}

func basisFor(pose camera.Pose) basis {
	forward := vmath.V3FNormalize(vmath.V3FSub(pose.LookAt, pose.Position))
	if forward == (vmath.Vec3F{}) {
		forward = vmath.Vec3F{Z: 1}
	}

	right := vmath.V3FCross(forward, vmath.Vec3F{Y: 1})
	if vmath.V3FMagSq(right) < 1e-12 {
		// Looking along world Y; any horizontal right works
		right = vmath.Vec3F{X: 1}
	} else {
		right = vmath.V3FNormalize(right)
	}

	return basis{
		origin:  pose.Position,
		right:   right,
		up:      vmath.V3FCross(right, forward),
		forward: forward,
	}
}

// toView transforms a world point into camera space
func (b basis) toView(world vmath.Vec3F) vmath.Vec3F {
	rel := vmath.V3FSub(world, b.origin)
	return vmath.Vec3F{
		X: vmath.V3FDot(rel, b.right),
		Y: vmath.V3FDot(rel, b.up),
		Z: vmath.V3FDot(rel, b.forward),
	}
}

// project maps a camera-space point to cell coordinates. ok is false for
// points behind the near clip
func (p Projector) project(view vmath.Vec3F) (cx, cy, invZ float64, ok bool) {
	denom := view.Z + p.Focal
	if denom < parameter.RenderNearClip {
		return 0, 0, 0, false
	}
	invZ = p.Focal / denom

	scale := float64(p.H) * parameter.RenderViewScale
	cx = float64(p.W)/2 + view.X*invZ*scale*parameter.RenderCellAspect
	cy = float64(p.H)/2 - view.Y*invZ*scale
	return cx, cy, invZ, true
}

// radiusCells returns the projected radius of a sphere in cell rows
func (p Projector) radiusCells(r, invZ float64) float64 {
	return r * invZ * float64(p.H) * parameter.RenderViewScale
}
