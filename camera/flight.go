package camera

import (
	"time"

	"github.com/lixenwraith/crystal-galaxy/vmath"
)

// flight is one in-progress camera animation: a quadratic Bézier arc for
// the eye, a straight lerp for the look-at point, both driven by the same
// eased time fraction. The terminal frame snaps to the exact destination
// pose so accumulated float error never leaks into the parked camera
type flight struct {
	from     Pose
	to       Pose
	ctrl     vmath.Vec3F
	duration time.Duration
	elapsed  time.Duration
	ease     vmath.EaseFunc
	done     chan error
}

// newFlight arcs from one pose to another over duration. The control
// point sits above the midpoint of the straight flight line
func newFlight(from, to Pose, arcHeight float64, duration time.Duration, ease vmath.EaseFunc) *flight {
	mid := vmath.V3FLerp(from.Position, to.Position, 0.5)
	return &flight{
		from:     from,
		to:       to,
		ctrl:     vmath.V3FAdd(mid, vmath.Vec3F{Y: arcHeight}),
		duration: duration,
		ease:     ease,
		done:     make(chan error, 1),
	}
}

// advance steps the flight by dt and returns the pose for this frame.
// finished is true exactly once, on the frame the destination is reached
func (f *flight) advance(dt time.Duration) (pose Pose, finished bool) {
	f.elapsed += dt
	if f.elapsed >= f.duration || f.duration <= 0 {
		return f.to, true
	}

	t := f.ease(float64(f.elapsed) / float64(f.duration))
	return Pose{
		Position: vmath.QuadBezier(f.from.Position, f.ctrl, f.to.Position, t),
		LookAt:   vmath.V3FLerp(f.from.LookAt, f.to.LookAt, t),
	}, false
}
