package config

// Config is the root configuration structure, overlaid from an optional
// TOML file onto the compiled defaults
type Config struct {
	Crystal   CrystalConfig   `toml:"crystal"`
	Camera    CameraConfig    `toml:"camera"`
	Texture   TextureConfig   `toml:"texture"`
	Fallback  FallbackConfig  `toml:"fallback"`
	Render    RenderConfig    `toml:"render"`
	Telemetry TelemetryConfig `toml:"telemetry"`
	Log       LogConfig       `toml:"log"`

	// PerformanceMode comes from the environment, not the file
	PerformanceMode bool `toml:"-"`
}

// CrystalConfig tunes the geometry generator
type CrystalConfig struct {
	PopularityWeight float64 `toml:"popularity_weight"`
	DurationWeight   float64 `toml:"duration_weight"`
}

// CameraConfig tunes the choreography controller
type CameraConfig struct {
	FocusDurationMS  int     `toml:"focus_duration_ms"`
	ReturnDurationMS int     `toml:"return_duration_ms"`
	Easing           string  `toml:"easing"`
	StandoffDistance float64 `toml:"standoff_distance"`
	ApproachAngle    float64 `toml:"approach_angle"`
	FreeLookDamping  float64 `toml:"freelook_damping"`
	MaxVelocity      float64 `toml:"max_angular_velocity"`
	ZoomMin          float64 `toml:"zoom_min"`
	ZoomMax          float64 `toml:"zoom_max"`
}

// TextureConfig tunes cover art loading
type TextureConfig struct {
	TimeoutMS int `toml:"timeout_ms"`
}

// FallbackConfig tunes the error policy
type FallbackConfig struct {
	EscalationThreshold int `toml:"escalation_threshold"`
}

// RenderConfig tunes the frame loop
type RenderConfig struct {
	FPS int `toml:"fps"`
}

// TelemetryConfig controls the optional SQLite sink
type TelemetryConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// LogConfig controls debug logging; the terminal itself belongs to the
// renderer, so logs go to a file or nowhere
type LogConfig struct {
	Debug bool   `toml:"debug"`
	Dir   string `toml:"dir"`
}
