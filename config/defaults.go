package config

import "github.com/lixenwraith/crystal-galaxy/parameter"

// Default returns a Config mirroring the compiled parameter defaults
func Default() *Config {
	return &Config{
		Crystal: CrystalConfig{
			PopularityWeight: parameter.ComplexityPopularityWeight,
			DurationWeight:   parameter.ComplexityDurationWeight,
		},
		Camera: CameraConfig{
			FocusDurationMS:  int(parameter.CameraFocusDuration.Milliseconds()),
			ReturnDurationMS: int(parameter.CameraReturnDuration.Milliseconds()),
			Easing:           parameter.CameraFocusEasing,
			StandoffDistance: parameter.CameraStandoffDistance,
			ApproachAngle:    parameter.CameraApproachAngle,
			FreeLookDamping:  parameter.FreeLookDamping,
			MaxVelocity:      parameter.FreeLookMaxVelocity,
			ZoomMin:          parameter.OrbitMinDistance,
			ZoomMax:          parameter.OrbitMaxDistance,
		},
		Texture: TextureConfig{
			TimeoutMS: int(parameter.TextureLoadTimeout.Milliseconds()),
		},
		Fallback: FallbackConfig{
			EscalationThreshold: parameter.EscalationThreshold,
		},
		Render: RenderConfig{
			FPS: parameter.FrameRate,
		},
		Telemetry: TelemetryConfig{
			Path: "galaxy.db",
		},
		Log: LogConfig{
			Dir: "logs",
		},
	}
}

// ApplyDefaults fills zero values with the compiled defaults
func (c *Config) ApplyDefaults() {
	d := Default()

	if c.Crystal.PopularityWeight == 0 && c.Crystal.DurationWeight == 0 {
		c.Crystal = d.Crystal
	}
	if c.Camera.FocusDurationMS == 0 {
		c.Camera.FocusDurationMS = d.Camera.FocusDurationMS
	}
	if c.Camera.ReturnDurationMS == 0 {
		c.Camera.ReturnDurationMS = d.Camera.ReturnDurationMS
	}
	if c.Camera.Easing == "" {
		c.Camera.Easing = d.Camera.Easing
	}
	if c.Camera.StandoffDistance == 0 {
		c.Camera.StandoffDistance = d.Camera.StandoffDistance
	}
	if c.Camera.ApproachAngle == 0 {
		c.Camera.ApproachAngle = d.Camera.ApproachAngle
	}
	if c.Camera.FreeLookDamping == 0 {
		c.Camera.FreeLookDamping = d.Camera.FreeLookDamping
	}
	if c.Camera.MaxVelocity == 0 {
		c.Camera.MaxVelocity = d.Camera.MaxVelocity
	}
	if c.Camera.ZoomMin == 0 {
		c.Camera.ZoomMin = d.Camera.ZoomMin
	}
	if c.Camera.ZoomMax == 0 {
		c.Camera.ZoomMax = d.Camera.ZoomMax
	}
	if c.Texture.TimeoutMS == 0 {
		c.Texture.TimeoutMS = d.Texture.TimeoutMS
	}
	if c.Fallback.EscalationThreshold == 0 {
		c.Fallback.EscalationThreshold = d.Fallback.EscalationThreshold
	}
	if c.Render.FPS == 0 {
		c.Render.FPS = d.Render.FPS
	}
	if c.Telemetry.Path == "" {
		c.Telemetry.Path = d.Telemetry.Path
	}
	if c.Log.Dir == "" {
		c.Log.Dir = d.Log.Dir
	}
}
