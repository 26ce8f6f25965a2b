package event

// Type identifies a galaxy event
type Type int

const (
	// === Selection ===

	// TypeBodyHovered signals the pointer rests over a crystal body
	// Trigger: Renderer picking on pointer move
	// Consumer: UI layer | Payload: *BodyPayload
	TypeBodyHovered Type = iota

	// TypeBodySelected signals a crystal body was selected
	// Trigger: Galaxy.Select on Enter/click
	// Consumer: Camera controller, UI layer | Payload: *BodyPayload
	TypeBodySelected

	// === Camera choreography ===

	// TypeFocusStart signals a focus flight began
	// Trigger: camera.Controller.Focus
	// Consumer: UI layer (hide hints) | Payload: *BodyPayload
	TypeFocusStart

	// TypeFocusComplete signals the camera parked at the target
	// Trigger: camera.Controller on terminal flight frame
	// Consumer: UI layer (show exit hint) | Payload: *BodyPayload
	TypeFocusComplete

	// TypeReturnStart signals the return flight began
	// Trigger: camera.Controller.ExitFocus
	// Consumer: UI layer | Payload: nil
	TypeReturnStart

	// TypeReturnComplete signals the camera restored the saved pose
	// Trigger: camera.Controller on terminal return frame
	// Consumer: UI layer | Payload: nil
	TypeReturnComplete

	// === Degradation ===

	// TypePerformanceDegraded signals the session was forced into
	// performance mode
	// Trigger: fallback.Policy escalation, context loss
	// Consumer: Galaxy (regenerate at lower tier), UI banner | Payload: nil
	TypePerformanceDegraded

	// TypeFallbackApplied signals a fallback artifact replaced a failed one
	// Trigger: fallback.Policy on any report with a fallback
	// Consumer: Diagnostics overlay | Payload: *FallbackPayload
	TypeFallbackApplied

	// TypeTextureLoaded signals an async cover texture finished loading
	// Trigger: material.Loader goroutine (won the timeout race)
	// Consumer: Galaxy (swap texture at frame start) | Payload: *TexturePayload
	TypeTextureLoaded

	// === Context ===

	// TypeContextLost signals the rendering context dropped
	// (terminal detach/suspend)
	// Trigger: fallback.Policy.ContextLost
	// Consumer: Camera controller, Galaxy | Payload: nil
	TypeContextLost

	// TypeContextRestored signals the rendering context came back
	// Trigger: fallback.Policy.ContextRestored
	// Consumer: Galaxy (one shader retry) | Payload: nil
	TypeContextRestored
)

// Event is one queued occurrence. Payload types are documented per Type
type Event struct {
	Type    Type
	Payload any
}

// BodyPayload carries the track identity of the affected body
type BodyPayload struct {
	TrackID string
}

// FallbackPayload describes an applied fallback for diagnostics
type FallbackPayload struct {
	Kind    string
	TrackID string
}

// TexturePayload carries a finished async texture load
type TexturePayload struct {
	TrackID string
	Texture any // *material.Texture; any avoids the import cycle
}
