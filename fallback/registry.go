package fallback

import (
	"log"
	"sync"
	"time"

	"github.com/lixenwraith/crystal-galaxy/parameter"
)

// Registry is the process-wide append-only error log: a bounded ring of
// reports plus severity logging and the user-notification callback.
//
// Constructed at the application root and injected; the mutex exists
// because texture loader goroutines report concurrently with the frame
// loop
type Registry struct {
	mu     sync.Mutex
	ring   [parameter.ErrorRingSize]Report
	next   int
	count  int
	notify func(Report)
	clock  func() time.Time
}

func NewRegistry() *Registry {
	return &Registry{clock: time.Now}
}

// SetNotify installs the user-notification callback, fired for reports
// at severity high or above. No-op when unset
func (r *Registry) SetNotify(fn func(Report)) {
	r.mu.Lock()
	r.notify = fn
	r.mu.Unlock()
}

// Append logs one report: ring insert, severity-tagged log line, and the
// notification callback when severity warrants it
func (r *Registry) Append(report Report) {
	if report.Timestamp.IsZero() {
		report.Timestamp = r.clock()
	}

	r.mu.Lock()
	r.ring[r.next] = report
	r.next = (r.next + 1) % parameter.ErrorRingSize
	if r.count < parameter.ErrorRingSize {
		r.count++
	}
	notify := r.notify
	r.mu.Unlock()

	log.Printf("[%s] %s: %s", report.Severity, report.Kind, report.Message)

	if notify != nil && report.Severity >= SeverityHigh {
		notify(report)
	}
}

// Snapshot returns the logged reports oldest-first
func (r *Registry) Snapshot() []Report {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Report, 0, r.count)
	start := r.next - r.count
	if start < 0 {
		start += parameter.ErrorRingSize
	}
	for i := 0; i < r.count; i++ {
		out = append(out, r.ring[(start+i)%parameter.ErrorRingSize])
	}
	return out
}

// Len returns the number of retained reports
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}
