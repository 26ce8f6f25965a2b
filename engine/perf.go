package engine

import (
	"time"

	"github.com/lixenwraith/crystal-galaxy/parameter"
)

// PerfMonitor watches frame durations over a fixed sample window and
// reports each completed window to the fallback policy. Windows under
// the breach threshold reset the policy's escalation streak; windows
// over it count toward forced performance mode
type PerfMonitor struct {
	warn func(metric string, threshold, value float64)

	window [parameter.PerfSampleWindow]time.Duration
	idx    int
	filled bool
}

// NewPerfMonitor wires the monitor to a warning sink, typically
// fallback.Policy.PerformanceWarning
func NewPerfMonitor(warn func(metric string, threshold, value float64)) *PerfMonitor {
	return &PerfMonitor{warn: warn}
}

// Sample records one frame duration. Each time the window fills, the
// average frame time is reported and the window restarts
func (p *PerfMonitor) Sample(d time.Duration) {
	p.window[p.idx] = d
	p.idx++
	if p.idx < len(p.window) {
		return
	}
	p.idx = 0
	p.filled = true

	var sum time.Duration
	for _, s := range p.window {
		sum += s
	}
	avg := sum / time.Duration(len(p.window))

	threshold := parameter.FrameBudget.Seconds() * 1000 * parameter.PerfBreachRatio
	p.warn("frame-ms", threshold, float64(avg.Microseconds())/1000)
}

// Windows reports whether at least one full window was sampled
func (p *PerfMonitor) Windows() bool { return p.filled }
