package camera

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/crystal-galaxy/event"
	"github.com/lixenwraith/crystal-galaxy/parameter"
	"github.com/lixenwraith/crystal-galaxy/vmath"
)

var (
	// ErrDisposed is delivered on flight futures cancelled by Dispose
	ErrDisposed = errors.New("camera: controller disposed")
	// ErrFocusBusy rejects Focus outside the idle phase
	ErrFocusBusy = errors.New("camera: focus already in progress")
	// ErrNotFocused rejects ExitFocus outside the focused phase
	ErrNotFocused = errors.New("camera: not focused")
	// ErrInterrupted is delivered on flight futures cancelled externally,
	// typically on context loss
	ErrInterrupted = errors.New("camera: flight interrupted")
)

// Target is a focusable body in the galaxy
type Target interface {
	WorldPosition() vmath.Vec3F
	BodyRadius() float64
	TrackID() string
}

// FocusEffect receives depth-of-field transitions, enabled while the
// camera holds a focused pose. A nil effect is ignored
type FocusEffect interface {
	EnableDepthOfField(focusDistance float64)
	DisableDepthOfField()
}

// Reporter receives caught flight failures. A nil reporter is ignored
type Reporter interface {
	AnimationFailure(err error)
}

// Controller runs the camera state machine: orbit or inertial free-look
// while idle, Bézier focus flights toward selected bodies, and exact
// pose restoration on return.
//
// All methods must be called from the frame loop goroutine. During the
// focusing, focused and returning phases user steering input is locked;
// only ExitFocus and Dispose are accepted
type Controller struct {
	mode  Mode
	phase Phase
	pose  Pose
	rig   rig

	saved    Pose
	savedRig rig
	target   Target
	fl       *flight

	focusEase      vmath.EaseFunc
	returnEase     vmath.EaseFunc
	focusDuration  time.Duration
	returnDuration time.Duration
	standoff       float64
	approachAngle  float64

	effect   FocusEffect
	reporter Reporter
	queue    *event.Queue

	disposed bool
}

func NewController() *Controller {
	ease, _ := vmath.EaseByName(parameter.CameraFocusEasing)
	c := &Controller{
		rig:            newRig(),
		focusEase:      ease,
		returnEase:     ease,
		focusDuration:  parameter.CameraFocusDuration,
		returnDuration: parameter.CameraReturnDuration,
		standoff:       parameter.CameraStandoffDistance,
		approachAngle:  parameter.CameraApproachAngle,
	}
	c.pose = c.rig.pose()
	return c
}

// SetEffect installs the depth-of-field stage
func (c *Controller) SetEffect(e FocusEffect) { c.effect = e }

// SetReporter installs the failure reporter
func (c *Controller) SetReporter(r Reporter) { c.reporter = r }

// SetQueue installs the event queue for choreography notifications
func (c *Controller) SetQueue(q *event.Queue) { c.queue = q }

// SetEasing switches the flight easing by config name. Unknown names
// keep the cubic in-out default
func (c *Controller) SetEasing(name string) {
	ease, _ := vmath.EaseByName(name)
	c.focusEase = ease
	c.returnEase = ease
}

// SetFlightDurations overrides the configured flight lengths.
// Non-positive values keep the defaults
func (c *Controller) SetFlightDurations(focus, ret time.Duration) {
	if focus > 0 {
		c.focusDuration = focus
	}
	if ret > 0 {
		c.returnDuration = ret
	}
}

// SetStandoff overrides the focus parking distance and the approach
// angle around world Y. Non-positive distance keeps the default
func (c *Controller) SetStandoff(distance, approachAngle float64) {
	if distance > 0 {
		c.standoff = distance
	}
	c.approachAngle = approachAngle
}

// SetFreeLook overrides the inertia decay factor and the angular
// velocity clamp. Out-of-range values keep the defaults
func (c *Controller) SetFreeLook(damping, maxVelocity float64) {
	if damping > 0 && damping < 1 {
		c.rig.damping = damping
	}
	if maxVelocity > 0 {
		c.rig.maxVelocity = maxVelocity
	}
}

// SetZoomBounds overrides the orbit distance clamp, pulling the current
// target inside the new range. Ignored unless 0 < lo < hi
func (c *Controller) SetZoomBounds(lo, hi float64) {
	if lo <= 0 || hi <= lo {
		return
	}
	c.rig.minDistance = lo
	c.rig.maxDistance = hi
	if c.rig.targetDistance < lo {
		c.rig.targetDistance = lo
	}
	if c.rig.targetDistance > hi {
		c.rig.targetDistance = hi
	}
}

// Pose returns the camera placement for the current frame
func (c *Controller) Pose() Pose { return c.pose }

// Phase returns the focus state machine position
func (c *Controller) Phase() Phase { return c.phase }

// Mode returns the idle steering mode
func (c *Controller) Mode() Mode { return c.mode }

// Focused returns the focused target, nil outside the focus phases
func (c *Controller) Focused() Target {
	if c.phase == PhaseIdle {
		return nil
	}
	return c.target
}

// SetMode switches the idle steering mode, killing residual inertia
func (c *Controller) SetMode(m Mode) {
	c.rig.haltSpin()
	c.mode = m
}

// InputLocked reports whether user steering is suspended
func (c *Controller) InputLocked() bool {
	return c.disposed || c.phase != PhaseIdle
}

// Rotate applies an orbit drag delta. Ignored while input is locked or
// in free-look mode
func (c *Controller) Rotate(dYaw, dPitch float64) {
	if c.InputLocked() || c.mode != ModeOrbit {
		return
	}
	c.rig.rotate(dYaw, dPitch)
}

// Zoom applies wheel notches to the orbit distance. Ignored while locked
func (c *Controller) Zoom(notches int) {
	if c.InputLocked() {
		return
	}
	c.rig.zoom(notches)
}

// Spin applies a free-look drag release. Ignored while input is locked
// or in orbit mode
func (c *Controller) Spin(dYaw, dPitch float64) {
	if c.InputLocked() || c.mode != ModeFreeLook {
		return
	}
	c.rig.spin(dYaw, dPitch)
}

// Velocity returns the free-look angular velocity (yaw, pitch)
func (c *Controller) Velocity() (float64, float64) {
	return c.rig.velYaw, c.rig.velPitch
}

// Focus starts a flight toward the target and returns a future resolved
// when the camera parks (nil) or the flight is cancelled (error). Legal
// only from the idle phase; elsewhere the request is ignored with a
// warning and ErrFocusBusy
func (c *Controller) Focus(t Target) (<-chan error, error) {
	if c.disposed {
		return nil, ErrDisposed
	}
	if c.phase != PhaseIdle {
		log.Printf("[low] camera: focus on %q ignored in phase %s", t.TrackID(), c.phase)
		return nil, ErrFocusBusy
	}

	c.rig.haltSpin()
	c.saved = c.pose
	c.savedRig = c.rig
	c.target = t

	c.fl = newFlight(c.pose, c.standoffPose(t), parameter.CameraArcHeight,
		c.focusDuration, c.focusEase)
	c.phase = PhaseFocusing

	c.push(event.Event{Type: event.TypeFocusStart, Payload: &event.BodyPayload{TrackID: t.TrackID()}})
	return c.fl.done, nil
}

// ExitFocus starts the return flight to the saved pose. Legal only from
// the focused phase
func (c *Controller) ExitFocus() (<-chan error, error) {
	if c.disposed {
		return nil, ErrDisposed
	}
	if c.phase != PhaseFocused {
		return nil, ErrNotFocused
	}

	if c.effect != nil {
		c.effect.DisableDepthOfField()
	}

	c.fl = newFlight(c.pose, c.saved, parameter.CameraArcHeight,
		c.returnDuration, c.returnEase)
	c.phase = PhaseReturning

	c.push(event.Event{Type: event.TypeReturnStart})
	return c.fl.done, nil
}

// Tick advances the camera by one frame. Flight panics are caught here:
// the failure is reported, the pending future resolves with the error,
// and input control returns to the user
func (c *Controller) Tick(dt time.Duration) {
	if c.disposed {
		return
	}

	switch c.phase {
	case PhaseIdle:
		c.rig.tick(c.mode, dt)
		c.pose = c.rig.pose()

	case PhaseFocusing, PhaseReturning:
		c.advanceFlight(dt)

	case PhaseFocused:
		// Parked; pose held until ExitFocus
	}
}

func (c *Controller) advanceFlight(dt time.Duration) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("camera flight in phase %s: %v", c.phase, r)
			if c.reporter != nil {
				c.reporter.AnimationFailure(err)
			}
			c.resolveFlight(err)
			if c.effect != nil {
				c.effect.DisableDepthOfField()
			}
			c.phase = PhaseIdle
			c.rig.syncToPose(c.pose)
		}
	}()

	pose, finished := c.fl.advance(dt)
	c.pose = pose
	if !finished {
		return
	}

	switch c.phase {
	case PhaseFocusing:
		c.phase = PhaseFocused
		if c.effect != nil {
			c.effect.EnableDepthOfField(vmath.V3FDistance(c.pose.Position, c.target.WorldPosition()))
		}
		c.push(event.Event{Type: event.TypeFocusComplete, Payload: &event.BodyPayload{TrackID: c.target.TrackID()}})
		c.resolveFlight(nil)

	case PhaseReturning:
		c.pose = c.saved
		c.rig = c.savedRig
		c.phase = PhaseIdle
		c.target = nil
		c.push(event.Event{Type: event.TypeReturnComplete})
		c.resolveFlight(nil)
	}
}

// Interrupt cancels any active flight and unlocks input, resolving the
// pending future with ErrInterrupted. Used on rendering context loss;
// the pose stays wherever the flight left it
func (c *Controller) Interrupt() {
	if c.disposed || c.phase == PhaseIdle {
		return
	}

	c.resolveFlight(ErrInterrupted)
	if c.effect != nil {
		c.effect.DisableDepthOfField()
	}
	c.phase = PhaseIdle
	c.target = nil
	c.rig.syncToPose(c.pose)
}

// Dispose cancels any active flight with ErrDisposed and rejects all
// further calls. Idempotent
func (c *Controller) Dispose() {
	if c.disposed {
		return
	}
	c.resolveFlight(ErrDisposed)
	if c.effect != nil {
		c.effect.DisableDepthOfField()
	}
	c.disposed = true
}

// resolveFlight delivers the future result at most once
func (c *Controller) resolveFlight(err error) {
	if c.fl == nil {
		return
	}
	c.fl.done <- err
	close(c.fl.done)
	c.fl = nil
}

// standoffPose computes the parked camera placement: out along the
// body's radial direction from the origin, rotated by the approach angle
// around world Y, at the stand-off distance scaled by body size
func (c *Controller) standoffPose(t Target) Pose {
	body := t.WorldPosition()
	out := vmath.V3FNormalize(body)
	if out == (vmath.Vec3F{}) {
		out = vmath.Vec3F{Z: 1}
	}
	approach := vmath.V3FRotateY(out, c.approachAngle)
	dist := c.standoff + t.BodyRadius()*parameter.CameraStandoffRadiusScale

	return Pose{
		Position: vmath.V3FAdd(body, vmath.V3FScale(approach, dist)),
		LookAt:   body,
	}
}

func (c *Controller) push(ev event.Event) {
	if c.queue != nil {
		c.queue.Push(ev)
	}
}
