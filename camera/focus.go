package camera

// Phase is the focus state machine position
type Phase int

const (
	// PhaseIdle accepts user input and focus requests
	PhaseIdle Phase = iota
	// PhaseFocusing flies toward the target; input suspended
	PhaseFocusing
	// PhaseFocused holds the stand-off pose; only exit is accepted
	PhaseFocused
	// PhaseReturning flies back to the saved pose; input suspended
	PhaseReturning
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseFocusing:
		return "focusing"
	case PhaseFocused:
		return "focused"
	case PhaseReturning:
		return "returning"
	default:
		return "unknown"
	}
}
