package fallback

import "time"

// Kind is the failure taxonomy. Every caught failure maps to exactly one
type Kind string

const (
	KindShaderCompile Kind = "shader-compile"
	KindShaderLink    Kind = "shader-link"
	KindContextLost   Kind = "gpu-context-lost"
	KindTextureLoad   Kind = "texture-load"
	KindGeometry      Kind = "geometry-generation"
	KindAnimation     Kind = "animation"
	KindPerformance   Kind = "performance-warning"
)

// Severity orders reports for logging and the notification gate
type Severity int

const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

var severityNames = [...]string{"low", "medium", "high", "critical"}

func (s Severity) String() string {
	if s < SeverityLow || s > SeverityCritical {
		return "unknown"
	}
	return severityNames[s]
}

// Report is one logged failure. Append-only; the registry ring evicts
// the oldest entries when full
type Report struct {
	Kind            Kind
	Severity        Severity
	Message         string
	Timestamp       time.Time
	FallbackApplied bool
}
