package parameter

// Error registry and escalation policy
const (
	// ErrorRingSize bounds the append-only report log; oldest entries
	// are evicted
	ErrorRingSize = 128

	// EscalationThreshold is the number of consecutive high-severity
	// performance warnings that forces performance mode
	EscalationThreshold = 2
)
