package camera

import (
	"math"
	"time"

	"github.com/lixenwraith/crystal-galaxy/parameter"
	"github.com/lixenwraith/crystal-galaxy/vmath"
)

// Mode selects how user input steers the idle camera
type Mode int

const (
	// ModeOrbit applies damped direct control toward target angles
	ModeOrbit Mode = iota
	// ModeFreeLook accumulates angular velocity that decays each frame
	ModeFreeLook
)

func (m Mode) String() string {
	if m == ModeFreeLook {
		return "free-look"
	}
	return "orbit"
}

// rig holds the spherical camera state around the galaxy origin. Both
// input modes drive the same yaw/pitch/distance; they differ only in how
// user gestures translate into motion
type rig struct {
	yaw      float64
	pitch    float64
	distance float64

	// Orbit mode targets, approached with damping
	targetYaw      float64
	targetPitch    float64
	targetDistance float64

	// Free-look inertia (radians per second)
	velYaw   float64
	velPitch float64

	// Tunables, overridable through the controller setters
	damping     float64
	maxVelocity float64
	minDistance float64
	maxDistance float64
}

func newRig() rig {
	d := (parameter.OrbitMinDistance + parameter.OrbitMaxDistance) / 2
	return rig{
		distance:       d,
		targetDistance: d,
		damping:        parameter.FreeLookDamping,
		maxVelocity:    parameter.FreeLookMaxVelocity,
		minDistance:    parameter.OrbitMinDistance,
		maxDistance:    parameter.OrbitMaxDistance,
	}
}

// pose derives the camera placement from the spherical state. The idle
// camera always looks at the origin
func (r *rig) pose() Pose {
	cp := math.Cos(r.pitch)
	return Pose{
		Position: vmath.Vec3F{
			X: r.distance * cp * math.Sin(r.yaw),
			Y: r.distance * math.Sin(r.pitch),
			Z: r.distance * cp * math.Cos(r.yaw),
		},
	}
}

// rotate adjusts the orbit targets by a drag delta, clamping pitch away
// from the poles
func (r *rig) rotate(dYaw, dPitch float64) {
	r.targetYaw += dYaw
	r.targetPitch = clampPitch(r.targetPitch + dPitch)
}

// zoom scales the target distance by notches of the wheel step, clamped
// to the configured range
func (r *rig) zoom(notches int) {
	r.targetDistance *= math.Pow(parameter.OrbitZoomStep, -float64(notches))
	if r.targetDistance < r.minDistance {
		r.targetDistance = r.minDistance
	}
	if r.targetDistance > r.maxDistance {
		r.targetDistance = r.maxDistance
	}
}

// spin adds angular velocity from a free-look drag release, clamped to
// the maximum rate
func (r *rig) spin(dYaw, dPitch float64) {
	r.velYaw = r.clampVel(r.velYaw + dYaw*parameter.FreeLookSensitivity)
	r.velPitch = r.clampVel(r.velPitch + dPitch*parameter.FreeLookSensitivity)
}

// haltSpin zeroes free-look inertia, used when a focus flight takes over
func (r *rig) haltSpin() {
	r.velYaw = 0
	r.velPitch = 0
}

// tick advances the idle camera by one frame in the given mode
func (r *rig) tick(mode Mode, dt time.Duration) {
	switch mode {
	case ModeOrbit:
		k := parameter.OrbitDampingRate * dt.Seconds()
		if k > 1 {
			k = 1
		}
		r.yaw += (r.targetYaw - r.yaw) * k
		r.pitch += (r.targetPitch - r.pitch) * k
		r.distance += (r.targetDistance - r.distance) * k

	case ModeFreeLook:
		r.yaw += r.velYaw * dt.Seconds()
		r.pitch = clampPitch(r.pitch + r.velPitch*dt.Seconds())

		// Wheel zoom keeps working in free-look: same damped approach
		// as orbit so a mode switch never causes a distance jump
		k := parameter.OrbitDampingRate * dt.Seconds()
		if k > 1 {
			k = 1
		}
		r.distance += (r.targetDistance - r.distance) * k

		// Per-frame multiplicative decay with an epsilon snap so the
		// camera comes to a complete rest
		r.velYaw *= r.damping
		r.velPitch *= r.damping
		if math.Abs(r.velYaw) < parameter.FreeLookEpsilon {
			r.velYaw = 0
		}
		if math.Abs(r.velPitch) < parameter.FreeLookEpsilon {
			r.velPitch = 0
		}

		// Targets track the pose so a mode switch does not snap back
		r.targetYaw = r.yaw
		r.targetPitch = r.pitch
	}
}

// syncToPose realigns the spherical state after an external pose restore
func (r *rig) syncToPose(p Pose) {
	d := vmath.V3FMag(p.Position)
	if d == 0 {
		return
	}
	r.distance = d
	r.targetDistance = d
	r.pitch = clampPitch(math.Asin(p.Position.Y / d))
	r.yaw = math.Atan2(p.Position.X, p.Position.Z)
	r.targetYaw = r.yaw
	r.targetPitch = r.pitch
}

func clampPitch(p float64) float64 {
	limit := math.Pi/2 - parameter.OrbitPolarMin
	if p > limit {
		return limit
	}
	if p < -limit {
		return -limit
	}
	return p
}

func (r *rig) clampVel(v float64) float64 {
	if v > r.maxVelocity {
		return r.maxVelocity
	}
	if v < -r.maxVelocity {
		return -r.maxVelocity
	}
	return v
}
