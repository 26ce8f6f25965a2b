package camera

import (
	"math"

	"github.com/lixenwraith/crystal-galaxy/vmath"
)

// Pose is a camera placement: eye position plus look-at point
type Pose struct {
	Position vmath.Vec3F
	LookAt   vmath.Vec3F
}

// ApproxEqual reports whether two poses coincide within eps on every
// component. Used to verify the saved pose was restored after a return
// flight
func (p Pose) ApproxEqual(other Pose, eps float64) bool {
	return math.Abs(p.Position.X-other.Position.X) <= eps &&
		math.Abs(p.Position.Y-other.Position.Y) <= eps &&
		math.Abs(p.Position.Z-other.Position.Z) <= eps &&
		math.Abs(p.LookAt.X-other.LookAt.X) <= eps &&
		math.Abs(p.LookAt.Y-other.LookAt.Y) <= eps &&
		math.Abs(p.LookAt.Z-other.LookAt.Z) <= eps
}
