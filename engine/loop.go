package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/crystal-galaxy/parameter"
)

// Loop runs the fixed-tick frame cycle on a single goroutine: drain
// queued input, advance game state by the elapsed time, and feed the
// frame duration to the performance monitor. Drift is corrected by
// scheduling each tick against an absolute deadline rather than
// sleeping a fixed interval
type Loop struct {
	clock    Clock
	interval time.Duration
	perf     *PerfMonitor

	// applyInput runs at frame start for every queued event; update
	// returns false to stop the loop
	applyInput func(ev any)
	update     func(dt time.Duration) bool

	input    chan any
	stopChan chan struct{}
	stopOnce sync.Once
	running  atomic.Bool
}

func NewLoop(clock Clock, fps int, applyInput func(ev any), update func(dt time.Duration) bool, perf *PerfMonitor) *Loop {
	if fps <= 0 {
		fps = parameter.FrameRate
	}
	return &Loop{
		clock:      clock,
		interval:   time.Second / time.Duration(fps),
		perf:       perf,
		applyInput: applyInput,
		update:     update,
		input:      make(chan any, parameter.InputChannelSize),
		stopChan:   make(chan struct{}),
	}
}

// Input returns the channel feeding events into the next frame. Sends
// must not block: producers drop on a full channel
func (l *Loop) Input() chan<- any { return l.input }

// Post offers an event without blocking, dropping it when the frame
// loop is saturated
func (l *Loop) Post(ev any) {
	select {
	case l.input <- ev:
	default:
	}
}

// Run blocks until update returns false or Stop is called
func (l *Loop) Run() {
	if !l.running.CompareAndSwap(false, true) {
		return
	}
	defer l.running.Store(false)

	last := l.clock.Now()
	deadline := last.Add(l.interval)
	timer := time.NewTimer(l.interval)
	defer timer.Stop()

	for {
		select {
		case <-l.stopChan:
			return
		case <-timer.C:
		}

		l.drainInput()

		now := l.clock.Now()
		dt := now.Sub(last)
		last = now
		// A stall (suspend, debugger) must not produce a catch-up jump
		if dt > 4*l.interval {
			dt = 4 * l.interval
		}

		if !l.update(dt) {
			return
		}

		if l.perf != nil {
			l.perf.Sample(l.clock.Now().Sub(now))
		}

		// Absolute deadline keeps the average rate at the target even
		// when individual frames run long
		deadline = deadline.Add(l.interval)
		wait := deadline.Sub(l.clock.Now())
		if wait < 0 {
			deadline = l.clock.Now()
			wait = 0
		}
		timer.Reset(wait)
	}
}

func (l *Loop) drainInput() {
	for {
		select {
		case ev := <-l.input:
			l.applyInput(ev)
		default:
			return
		}
	}
}

// Stop ends the loop from any goroutine. Idempotent
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stopChan) })
}
