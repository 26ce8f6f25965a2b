package parameter

import "time"

// Focus flight choreography
const (
	// CameraFocusDuration / CameraReturnDuration time the two flights
	CameraFocusDuration  = 1200 * time.Millisecond
	CameraReturnDuration = 900 * time.Millisecond

	// CameraStandoffDistance is the base parking distance from a focused
	// body; CameraStandoffRadiusScale adds headroom for large bodies
	CameraStandoffDistance    = 4.0
	CameraStandoffRadiusScale = 2.0

	// CameraApproachAngle rotates the approach direction around world Y
	// so the flight arrives at a cinematic three-quarter angle instead of
	// head-on (radians)
	CameraApproachAngle = 0.5

	// CameraArcHeight lifts the Bézier control point above the straight
	// flight line
	CameraArcHeight = 2.5

	// CameraFocusEasing is the default easing for both flights
	CameraFocusEasing = "cubic-in-out"

	// CameraPoseEpsilon bounds acceptable pose drift after a return
	CameraPoseEpsilon = 1e-6
)

// Orbit mode
const (
	OrbitDampingRate = 8.0 // Per second, approach rate toward target angles
	OrbitMinDistance = 5.0
	OrbitMaxDistance = 60.0
	OrbitPolarMin    = 0.15 // Radians from the poles
	OrbitZoomStep    = 1.1  // Distance multiplier per wheel notch
)

// Inertial free-look mode
const (
	// FreeLookDamping is the per-frame velocity decay factor
	FreeLookDamping = 0.92

	// FreeLookMaxVelocity clamps angular velocity before application
	// (radians per second)
	FreeLookMaxVelocity = 3.0

	// FreeLookEpsilon snaps small velocities to exactly zero so decay
	// terminates
	FreeLookEpsilon = 1e-3

	// FreeLookSensitivity converts drag cells into angular velocity
	FreeLookSensitivity = 0.15
)
