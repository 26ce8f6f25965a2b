package parameter

import "time"

// Frame loop timing
const (
	// FrameRate is the default render tick rate. Overridable via config;
	// the loop never busy-spins below this
	FrameRate = 30

	// FrameInterval is the tick period at the default frame rate
	FrameInterval = time.Second / FrameRate

	// FrameBudget is the per-frame wall-clock budget; frames exceeding it
	// feed the performance monitor
	FrameBudget = FrameInterval

	// PerfSampleWindow is how many frames the performance monitor averages
	// before judging a breach
	PerfSampleWindow = 30

	// PerfBreachRatio: a window whose average frame time exceeds
	// FrameBudget * ratio counts as one high-severity performance warning
	PerfBreachRatio = 1.5

	// InputChannelSize buffers terminal events between the poller
	// goroutine and the frame loop
	InputChannelSize = 256
)

// Event queue sizing
const (
	// EventQueueSize is the MPSC ring capacity; must be a power of two
	EventQueueSize = 256

	// EventBufferMask is the ring index mask
	EventBufferMask = EventQueueSize - 1
)
