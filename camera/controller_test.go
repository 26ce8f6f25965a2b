package camera

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/crystal-galaxy/event"
	"github.com/lixenwraith/crystal-galaxy/parameter"
	"github.com/lixenwraith/crystal-galaxy/vmath"
)

type stubTarget struct {
	pos    vmath.Vec3F
	radius float64
	id     string
}

func (s stubTarget) WorldPosition() vmath.Vec3F { return s.pos }
func (s stubTarget) BodyRadius() float64        { return s.radius }
func (s stubTarget) TrackID() string            { return s.id }

type stubEffect struct {
	enabled  bool
	distance float64
	disables int
}

func (s *stubEffect) EnableDepthOfField(d float64) { s.enabled = true; s.distance = d }
func (s *stubEffect) DisableDepthOfField()         { s.enabled = false; s.disables++ }

type stubReporter struct{ errs []error }

func (s *stubReporter) AnimationFailure(err error) { s.errs = append(s.errs, err) }

const frameDt = 33 * time.Millisecond

// runFlight ticks until the controller leaves the given phase or the
// deadline of frames expires
func runFlight(t *testing.T, c *Controller, phase Phase) {
	t.Helper()
	for i := 0; i < 200; i++ {
		c.Tick(frameDt)
		if c.Phase() != phase {
			return
		}
	}
	t.Fatalf("still in phase %s after 200 frames", phase)
}

// TestFocusFlightLifecycle verifies the full idle → focusing → focused
// choreography: input lock, exact stand-off pose, depth of field, events
// and the resolved future
func TestFocusFlightLifecycle(t *testing.T) {
	c := NewController()
	q := event.NewQueue()
	effect := &stubEffect{}
	c.SetQueue(q)
	c.SetEffect(effect)

	body := stubTarget{pos: vmath.Vec3F{X: 10}, radius: 1, id: "t1"}
	done, err := c.Focus(body)
	if err != nil {
		t.Fatalf("Focus: %v", err)
	}
	if c.Phase() != PhaseFocusing || !c.InputLocked() {
		t.Fatalf("phase %s, locked %v after Focus", c.Phase(), c.InputLocked())
	}

	runFlight(t, c, PhaseFocusing)
	if c.Phase() != PhaseFocused {
		t.Fatalf("phase %s, want focused", c.Phase())
	}

	if c.Pose().LookAt != body.pos {
		t.Errorf("parked look-at %+v, want body position", c.Pose().LookAt)
	}
	wantDist := parameter.CameraStandoffDistance + body.radius*parameter.CameraStandoffRadiusScale
	gotDist := vmath.V3FDistance(c.Pose().Position, body.pos)
	if math.Abs(gotDist-wantDist) > 1e-9 {
		t.Errorf("stand-off distance %v, want %v", gotDist, wantDist)
	}
	if !effect.enabled || math.Abs(effect.distance-wantDist) > 1e-9 {
		t.Errorf("depth of field: enabled=%v distance=%v", effect.enabled, effect.distance)
	}

	select {
	case e := <-done:
		if e != nil {
			t.Errorf("future resolved with %v", e)
		}
	default:
		t.Error("future not resolved at focus completion")
	}

	var types []event.Type
	for _, ev := range q.Consume() {
		types = append(types, ev.Type)
	}
	if len(types) != 2 || types[0] != event.TypeFocusStart || types[1] != event.TypeFocusComplete {
		t.Errorf("events = %v", types)
	}
}

// TestFocusBusyRejected verifies a second focus request during a flight
// is rejected without disturbing the active one
func TestFocusBusyRejected(t *testing.T) {
	c := NewController()
	if _, err := c.Focus(stubTarget{pos: vmath.Vec3F{X: 5}, id: "a"}); err != nil {
		t.Fatalf("first Focus: %v", err)
	}

	done, err := c.Focus(stubTarget{pos: vmath.Vec3F{Z: 5}, id: "b"})
	if !errors.Is(err, ErrFocusBusy) || done != nil {
		t.Errorf("second Focus = (%v, %v), want ErrFocusBusy", done, err)
	}
	if c.Focused() == nil || c.Focused().TrackID() != "a" {
		t.Error("rejected request disturbed the active flight")
	}
}

// TestExitFocusRestoresPose verifies the return flight lands exactly on
// the saved pose and re-enables input
func TestExitFocusRestoresPose(t *testing.T) {
	c := NewController()
	effect := &stubEffect{}
	c.SetEffect(effect)

	// Steer away from the default pose first so restoration is non-trivial
	c.Rotate(0.7, 0.2)
	for i := 0; i < 60; i++ {
		c.Tick(frameDt)
	}
	saved := c.Pose()

	if _, err := c.ExitFocus(); !errors.Is(err, ErrNotFocused) {
		t.Errorf("ExitFocus while idle = %v, want ErrNotFocused", err)
	}

	done, err := c.Focus(stubTarget{pos: vmath.Vec3F{X: 8, Y: 2}, radius: 0.5, id: "t1"})
	if err != nil {
		t.Fatalf("Focus: %v", err)
	}
	runFlight(t, c, PhaseFocusing)
	<-done

	ret, err := c.ExitFocus()
	if err != nil {
		t.Fatalf("ExitFocus: %v", err)
	}
	if effect.enabled {
		t.Error("depth of field still enabled during return")
	}
	runFlight(t, c, PhaseReturning)

	if c.Phase() != PhaseIdle || c.InputLocked() {
		t.Fatalf("phase %s, locked %v after return", c.Phase(), c.InputLocked())
	}
	if !c.Pose().ApproxEqual(saved, parameter.CameraPoseEpsilon) {
		t.Errorf("restored pose %+v, want %+v", c.Pose(), saved)
	}
	if e := <-ret; e != nil {
		t.Errorf("return future resolved with %v", e)
	}
}

// TestFreeLookInertiaDecay verifies velocity after n frames equals the
// released velocity times the damping factor to the nth power, and that
// the epsilon snap brings the camera to a complete rest
func TestFreeLookInertiaDecay(t *testing.T) {
	c := NewController()
	c.SetMode(ModeFreeLook)

	c.Spin(2, 0)
	v0, _ := c.Velocity()
	if v0 == 0 {
		t.Fatal("spin did not impart velocity")
	}

	const n = 10
	for i := 0; i < n; i++ {
		c.Tick(frameDt)
	}
	got, _ := c.Velocity()
	want := v0 * math.Pow(parameter.FreeLookDamping, n)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("velocity after %d frames = %v, want %v", n, got, want)
	}

	for i := 0; i < 1000; i++ {
		c.Tick(frameDt)
	}
	if vy, vp := c.Velocity(); vy != 0 || vp != 0 {
		t.Errorf("velocity did not snap to rest: %v, %v", vy, vp)
	}
}

// TestFreeLookVelocityClamp verifies spin velocity saturates at the
// configured maximum
func TestFreeLookVelocityClamp(t *testing.T) {
	c := NewController()
	c.SetMode(ModeFreeLook)

	c.Spin(1e6, -1e6)
	vy, vp := c.Velocity()
	if vy != parameter.FreeLookMaxVelocity || vp != -parameter.FreeLookMaxVelocity {
		t.Errorf("velocity = %v, %v, want ±%v", vy, vp, parameter.FreeLookMaxVelocity)
	}
}

// TestOrbitZoomClamp verifies zoom saturates at the distance bounds
func TestOrbitZoomClamp(t *testing.T) {
	c := NewController()

	for i := 0; i < 100; i++ {
		c.Zoom(1)
	}
	for i := 0; i < 300; i++ {
		c.Tick(frameDt)
	}
	if d := vmath.V3FMag(c.Pose().Position); math.Abs(d-parameter.OrbitMinDistance) > 1e-6 {
		t.Errorf("zoomed-in distance %v, want %v", d, parameter.OrbitMinDistance)
	}

	for i := 0; i < 200; i++ {
		c.Zoom(-1)
	}
	for i := 0; i < 300; i++ {
		c.Tick(frameDt)
	}
	if d := vmath.V3FMag(c.Pose().Position); math.Abs(d-parameter.OrbitMaxDistance) > 1e-6 {
		t.Errorf("zoomed-out distance %v, want %v", d, parameter.OrbitMaxDistance)
	}
}

// TestFreeLookZoom verifies the wheel still drives the orbit distance in
// free-look mode, converging on the clamped target with the same damping
// as orbit mode
func TestFreeLookZoom(t *testing.T) {
	c := NewController()
	c.SetMode(ModeFreeLook)

	for i := 0; i < 100; i++ {
		c.Zoom(1)
	}
	for i := 0; i < 300; i++ {
		c.Tick(frameDt)
	}
	if d := vmath.V3FMag(c.Pose().Position); math.Abs(d-parameter.OrbitMinDistance) > 1e-6 {
		t.Errorf("free-look zoomed-in distance %v, want %v", d, parameter.OrbitMinDistance)
	}

	for i := 0; i < 200; i++ {
		c.Zoom(-1)
	}
	for i := 0; i < 300; i++ {
		c.Tick(frameDt)
	}
	if d := vmath.V3FMag(c.Pose().Position); math.Abs(d-parameter.OrbitMaxDistance) > 1e-6 {
		t.Errorf("free-look zoomed-out distance %v, want %v", d, parameter.OrbitMaxDistance)
	}
}

// TestSetFreeLookOverrides verifies the configured damping and velocity
// clamp replace the defaults, and out-of-range values are rejected
func TestSetFreeLookOverrides(t *testing.T) {
	c := NewController()
	c.SetMode(ModeFreeLook)
	c.SetFreeLook(0.5, 1.0)

	c.Spin(1e6, 0)
	if vy, _ := c.Velocity(); vy != 1.0 {
		t.Errorf("velocity = %v, want clamp at 1.0", vy)
	}
	c.Tick(frameDt)
	if vy, _ := c.Velocity(); math.Abs(vy-0.5) > 1e-9 {
		t.Errorf("velocity after one frame = %v, want 0.5", vy)
	}

	c.SetFreeLook(0, -1)
	c.SetFreeLook(1.5, 0)
	c.Spin(1e6, 0)
	if vy, _ := c.Velocity(); vy != 1.0 {
		t.Errorf("rejected override changed the clamp: velocity = %v", vy)
	}
}

// TestSetStandoffOverride verifies the configured parking distance and
// approach angle replace the defaults for focus flights
func TestSetStandoffOverride(t *testing.T) {
	c := NewController()
	c.SetStandoff(10, 0)

	body := stubTarget{pos: vmath.Vec3F{X: 10}, radius: 1, id: "t1"}
	if _, err := c.Focus(body); err != nil {
		t.Fatalf("Focus: %v", err)
	}
	runFlight(t, c, PhaseFocusing)

	wantDist := 10 + body.radius*parameter.CameraStandoffRadiusScale
	gotDist := vmath.V3FDistance(c.Pose().Position, body.pos)
	if math.Abs(gotDist-wantDist) > 1e-9 {
		t.Errorf("stand-off distance %v, want %v", gotDist, wantDist)
	}
	// Zero approach angle parks straight out along the radial direction
	want := vmath.Vec3F{X: 10 + wantDist}
	if got := c.Pose().Position; math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y) > 1e-9 || math.Abs(got.Z) > 1e-9 {
		t.Errorf("parked at %+v, want %+v", got, want)
	}
}

// TestSetZoomBoundsOverride verifies the configured distance range
// replaces the defaults and the current target is pulled inside it
func TestSetZoomBoundsOverride(t *testing.T) {
	c := NewController()
	c.SetZoomBounds(8, 20)

	// The default mid-range target sits above the new ceiling
	for i := 0; i < 300; i++ {
		c.Tick(frameDt)
	}
	if d := vmath.V3FMag(c.Pose().Position); math.Abs(d-20) > 1e-6 {
		t.Errorf("distance after bound change = %v, want 20", d)
	}

	for i := 0; i < 100; i++ {
		c.Zoom(1)
	}
	for i := 0; i < 300; i++ {
		c.Tick(frameDt)
	}
	if d := vmath.V3FMag(c.Pose().Position); math.Abs(d-8) > 1e-6 {
		t.Errorf("zoomed-in distance %v, want 8", d)
	}

	c.SetZoomBounds(20, 8)
	c.SetZoomBounds(-1, 5)
	for i := 0; i < 100; i++ {
		c.Zoom(1)
	}
	for i := 0; i < 300; i++ {
		c.Tick(frameDt)
	}
	if d := vmath.V3FMag(c.Pose().Position); math.Abs(d-8) > 1e-6 {
		t.Errorf("rejected bounds changed the floor: distance %v, want 8", d)
	}
}

// TestSteeringLockedDuringFlight verifies steering input is discarded
// while a flight holds the camera
func TestSteeringLockedDuringFlight(t *testing.T) {
	c := NewController()
	c.Focus(stubTarget{pos: vmath.Vec3F{X: 5}, id: "t1"})
	c.Tick(frameDt)

	pose := c.Pose()
	c.Rotate(1, 1)
	c.Zoom(5)
	c.Spin(1, 1)
	if c.Pose() != pose {
		t.Error("steering input moved the camera mid-flight")
	}
	if vy, vp := c.Velocity(); vy != 0 || vp != 0 {
		t.Error("spin accepted mid-flight")
	}
}

// TestInterruptCancelsFlight verifies an external interrupt (context
// loss) cancels the flight, resolves the future and restores input
func TestInterruptCancelsFlight(t *testing.T) {
	c := NewController()
	effect := &stubEffect{}
	c.SetEffect(effect)

	done, _ := c.Focus(stubTarget{pos: vmath.Vec3F{X: 5}, id: "t1"})
	c.Tick(frameDt)
	c.Interrupt()

	if c.Phase() != PhaseIdle || c.InputLocked() {
		t.Errorf("phase %s, locked %v after interrupt", c.Phase(), c.InputLocked())
	}
	if e := <-done; !errors.Is(e, ErrInterrupted) {
		t.Errorf("future resolved with %v, want ErrInterrupted", e)
	}
	if effect.enabled {
		t.Error("depth of field left enabled after interrupt")
	}

	// Idle interrupt is a no-op
	c.Interrupt()
}

// TestDisposeCancelsAndRejects verifies dispose resolves the pending
// future with ErrDisposed, rejects further requests and is idempotent
func TestDisposeCancelsAndRejects(t *testing.T) {
	c := NewController()
	done, _ := c.Focus(stubTarget{pos: vmath.Vec3F{X: 5}, id: "t1"})

	c.Dispose()
	c.Dispose()

	if e := <-done; !errors.Is(e, ErrDisposed) {
		t.Errorf("future resolved with %v, want ErrDisposed", e)
	}
	if _, err := c.Focus(stubTarget{id: "t2"}); !errors.Is(err, ErrDisposed) {
		t.Errorf("Focus after dispose = %v, want ErrDisposed", err)
	}
	if _, err := c.ExitFocus(); !errors.Is(err, ErrDisposed) {
		t.Errorf("ExitFocus after dispose = %v, want ErrDisposed", err)
	}
	c.Tick(frameDt)
}

// TestFlightPanicRecovered verifies a panic inside flight evaluation is
// caught, reported, and leaves the controller idle with input restored
func TestFlightPanicRecovered(t *testing.T) {
	c := NewController()
	rep := &stubReporter{}
	c.SetReporter(rep)
	c.focusEase = func(float64) float64 { panic("bad easing") }

	done, err := c.Focus(stubTarget{pos: vmath.Vec3F{X: 5}, id: "t1"})
	if err != nil {
		t.Fatalf("Focus: %v", err)
	}

	c.Tick(10 * time.Millisecond)
	if c.Phase() != PhaseIdle || c.InputLocked() {
		t.Errorf("phase %s, locked %v after flight panic", c.Phase(), c.InputLocked())
	}
	if len(rep.errs) != 1 {
		t.Fatalf("reported %d failures, want 1", len(rep.errs))
	}
	if e := <-done; e == nil {
		t.Error("future resolved nil after flight panic")
	}

	// Controller remains usable
	if _, err := c.Focus(stubTarget{pos: vmath.Vec3F{Z: 5}, id: "t2"}); err != nil {
		t.Errorf("Focus after recovery: %v", err)
	}
}
