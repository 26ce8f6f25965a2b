package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/crystal-galaxy/camera"
	"github.com/lixenwraith/crystal-galaxy/core"
	"github.com/lixenwraith/crystal-galaxy/device"
	"github.com/lixenwraith/crystal-galaxy/engine"
	"github.com/lixenwraith/crystal-galaxy/event"
	"github.com/lixenwraith/crystal-galaxy/fallback"
	"github.com/lixenwraith/crystal-galaxy/layout"
	"github.com/lixenwraith/crystal-galaxy/material"
	"github.com/lixenwraith/crystal-galaxy/render"
	"github.com/lixenwraith/crystal-galaxy/scene"
	"github.com/lixenwraith/crystal-galaxy/telemetry"
	"github.com/lixenwraith/crystal-galaxy/track"
)

var (
	viewLibrary     string
	viewPerformance bool
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Explore the library as an interactive crystal galaxy",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runView()
	},
}

func init() {
	viewCmd.Flags().StringVarP(&viewLibrary, "library", "l", "", "track library JSON file")
	viewCmd.Flags().BoolVar(&viewPerformance, "performance", false, "force performance mode")
	viewCmd.MarkFlagRequired("library")
	rootCmd.AddCommand(viewCmd)
}

// viewApp bundles the per-session state the frame callbacks share
type viewApp struct {
	screen   tcell.Screen
	loop     *engine.Loop
	router   *event.Router
	policy   *fallback.Policy
	profiler *device.Profiler
	galaxy   *scene.Galaxy
	ctrl     *camera.Controller
	renderer *render.Renderer
	hud      *render.HUD

	notifier *scene.Notifier

	selected string
	focused  string
	elapsed  time.Duration
	quit     bool
}

// OnFocusStart keeps the selection in step with flights started from a
// mouse click
func (a *viewApp) OnFocusStart(trackID string) { a.selected = trackID }

// OnFocusComplete pins the caption to the parked body
func (a *viewApp) OnFocusComplete(trackID string) { a.focused = trackID }

// OnReturnStart unpins the caption as the camera leaves the body
func (a *viewApp) OnReturnStart() { a.focused = "" }

// OnReturnComplete has nothing left to restore; the controller already
// holds the saved pose
func (a *viewApp) OnReturnComplete() {}

// OnPerformanceDegraded regenerates every body at the reduced tier
func (a *viewApp) OnPerformanceDegraded() { a.galaxy.Degrade() }

// subscribe wires the queue to the frame-start consumers: texture swaps
// and context transitions handled directly, choreography and degradation
// fanned out through the notifier
func (a *viewApp) subscribe() {
	a.router.Subscribe(event.TypeTextureLoaded, func(ev event.Event) {
		p := ev.Payload.(*event.TexturePayload)
		if tex, ok := p.Texture.(*material.Texture); ok {
			a.galaxy.ApplyTexture(p.TrackID, tex)
		}
	})
	a.router.Subscribe(event.TypeContextLost, func(event.Event) {
		a.ctrl.Interrupt()
	})
	a.router.Subscribe(event.TypeContextRestored, func(event.Event) {
		a.galaxy.RetryShaders()
	})

	observed := []event.Type{
		event.TypeFocusStart, event.TypeFocusComplete,
		event.TypeReturnStart, event.TypeReturnComplete,
		event.TypePerformanceDegraded,
	}
	for _, t := range observed {
		a.router.Subscribe(t, a.notifier.Dispatch)
	}
}

func runView() error {
	if err := setupLogging(); err != nil {
		return err
	}

	tracks, err := track.LoadLibrary(viewLibrary)
	if err != nil {
		return err
	}

	profiler := device.NewProfiler(device.EnvProbe{})
	if viewPerformance || cfg.PerformanceMode {
		profiler.ForcePerformanceMode()
	}

	registry := fallback.NewRegistry()
	registry.SetNotify(func(r fallback.Report) {
		log.Printf("[%s] fallback: %s: %s", r.Severity, r.Kind, r.Message)
	})
	queue := event.NewQueue()
	policy := fallback.NewPolicy(registry, profiler, queue)
	policy.SetEscalationThreshold(cfg.Fallback.EscalationThreshold)

	rings := layout.Compute(tracks)
	galaxy := scene.NewGalaxy(profiler, policy, queue, rings)
	galaxy.SetSpawner(core.Go)
	galaxy.SetComplexityWeights(cfg.Crystal.PopularityWeight, cfg.Crystal.DurationWeight)
	galaxy.SetCoverTimeout(time.Duration(cfg.Texture.TimeoutMS) * time.Millisecond)
	defer galaxy.Dispose()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	core.SetFinisher(screen.Fini)
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	w, h := screen.Size()
	app := &viewApp{
		screen:   screen,
		router:   event.NewRouter(queue),
		policy:   policy,
		profiler: profiler,
		galaxy:   galaxy,
		renderer: render.NewRenderer(w, h, profiler.Profile().Reading.TrueColor),
		hud:      render.NewHUD(),
		notifier: scene.NewNotifier(),
	}
	app.notifier.AddFocus(app)
	app.notifier.AddDegrade(app)
	app.subscribe()

	ctrl := camera.NewController()
	ctrl.SetQueue(queue)
	ctrl.SetReporter(policy)
	ctrl.SetEffect(app.renderer.DOF())
	ctrl.SetEasing(cfg.Camera.Easing)
	ctrl.SetFlightDurations(
		time.Duration(cfg.Camera.FocusDurationMS)*time.Millisecond,
		time.Duration(cfg.Camera.ReturnDurationMS)*time.Millisecond)
	ctrl.SetStandoff(cfg.Camera.StandoffDistance, cfg.Camera.ApproachAngle)
	ctrl.SetFreeLook(cfg.Camera.FreeLookDamping, cfg.Camera.MaxVelocity)
	ctrl.SetZoomBounds(cfg.Camera.ZoomMin, cfg.Camera.ZoomMax)
	app.ctrl = ctrl
	defer ctrl.Dispose()

	galaxy.Sync(tracks)

	var store *telemetry.Store
	if cfg.Telemetry.Enabled {
		store, err = telemetry.Open(cfg.Telemetry.Path)
		if err != nil {
			// The session runs without telemetry rather than failing
			log.Printf("[medium] telemetry: %v", err)
			store = nil
		}
	}
	defer store.Close()

	app.loop = engine.NewLoop(engine.NewTimeProvider(), cfg.Render.FPS,
		app.applyInput, app.update,
		engine.NewPerfMonitor(policy.PerformanceWarning))

	// The poll goroutine ends when Fini unblocks it with a nil event
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			app.loop.Post(ev)
		}
	})

	app.loop.Run()

	if store != nil {
		prof := profiler.Profile()
		sum := telemetry.Summary{
			Grade:        profiler.Grade().String(),
			Score:        prof.Score,
			GeometryTier: profiler.GeometryTier().String(),
			PerfForced:   profiler.PerformanceForced(),
			Bodies:       galaxy.Len(),
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Flush(ctx, sum, registry.Snapshot()); err != nil {
			log.Printf("[medium] telemetry flush: %v", err)
		}
	}
	return nil
}

// applyInput maps terminal events onto galaxy and camera operations.
// Runs at frame start for every queued event
func (a *viewApp) applyInput(raw any) {
	switch ev := raw.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		a.renderer.Resize(w, h)
		a.screen.Sync()

	case *tcell.EventInterrupt:
		a.policy.ContextLost()

	case *tcell.EventKey:
		a.handleKey(ev)

	case *tcell.EventMouse:
		a.handleMouse(ev)
	}
}

func (a *viewApp) handleKey(ev *tcell.EventKey) {
	// Any keystroke after a context loss means the terminal is back
	if a.policy.ContextIsLost() {
		a.policy.ContextRestored()
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		if _, err := a.ctrl.ExitFocus(); err == nil {
			a.galaxy.Hover("")
		}
	case tcell.KeyTab:
		a.selected = a.galaxy.Cycle(a.selected)
		a.galaxy.Hover(a.selected)
	case tcell.KeyEnter:
		a.focusSelected()
	case tcell.KeyCtrlC:
		a.quit = true
	case tcell.KeyUp:
		a.steer(0, 0.1)
	case tcell.KeyDown:
		a.steer(0, -0.1)
	case tcell.KeyLeft:
		a.steer(-0.1, 0)
	case tcell.KeyRight:
		a.steer(0.1, 0)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			a.quit = true
		case 'o', 'O':
			a.toggleMode()
		case '+', '=':
			a.ctrl.Zoom(1)
		case '-', '_':
			a.ctrl.Zoom(-1)
		}
	}
}

func (a *viewApp) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()

	switch {
	case ev.Buttons()&tcell.WheelUp != 0:
		a.ctrl.Zoom(1)
	case ev.Buttons()&tcell.WheelDown != 0:
		a.ctrl.Zoom(-1)
	case ev.Buttons()&tcell.Button1 != 0:
		if id := a.pick(x, y); id != "" {
			a.selected = id
			a.focusSelected()
		}
	default:
		a.galaxy.Hover(a.pick(x, y))
	}
}

func (a *viewApp) pick(x, y int) string {
	return a.renderer.BodyAt(x, y, a.galaxy.Bodies(), a.ctrl.Pose())
}

func (a *viewApp) focusSelected() {
	body := a.galaxy.Body(a.selected)
	if body == nil {
		return
	}
	a.galaxy.Select(a.selected)
	if _, err := a.ctrl.Focus(body); err != nil {
		return
	}
	a.galaxy.Hover(a.selected)
}

func (a *viewApp) steer(dYaw, dPitch float64) {
	if a.ctrl.Mode() == camera.ModeFreeLook {
		a.ctrl.Spin(dYaw, dPitch)
		return
	}
	a.ctrl.Rotate(dYaw, dPitch)
}

func (a *viewApp) toggleMode() {
	if a.ctrl.InputLocked() {
		return
	}
	if a.ctrl.Mode() == camera.ModeOrbit {
		a.ctrl.SetMode(camera.ModeFreeLook)
	} else {
		a.ctrl.SetMode(camera.ModeOrbit)
	}
}

// update is the frame body: consume queued galaxy events, advance the
// camera, compose and flush the frame
func (a *viewApp) update(dt time.Duration) bool {
	if a.quit {
		return false
	}
	a.elapsed += dt

	a.router.Dispatch()

	a.ctrl.Tick(dt)
	a.renderer.Frame(a.galaxy.Bodies(), a.ctrl.Pose(), a.elapsed)
	a.hud.Draw(a.renderer.Buf, a.hudState())
	render.Flush(a.renderer.Buf, a.screen)
	return true
}

func (a *viewApp) hudState() render.HUDState {
	state := render.HUDState{
		PerfMode: a.profiler.PerformanceForced(),
		Focused:  a.ctrl.Focused() != nil,
		Mode:     a.ctrl.Mode().String(),
	}
	captionID := a.selected
	if a.focused != "" {
		captionID = a.focused
	}
	if body := a.galaxy.Body(captionID); body != nil {
		state.Caption = render.Caption(body.Track)
		state.Unavailable = !body.Track.Available
	}
	return state
}
