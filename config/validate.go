package config

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/crystal-galaxy/vmath"
)

// Validate checks the configuration, naming the offending field
func (c *Config) Validate() error {
	var errs []error

	if err := c.Crystal.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("crystal: %w", err))
	}
	if err := c.Camera.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("camera: %w", err))
	}
	if err := c.Texture.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("texture: %w", err))
	}
	if err := c.Fallback.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("fallback: %w", err))
	}
	if err := c.Render.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("render: %w", err))
	}

	return errors.Join(errs...)
}

func (c *CrystalConfig) Validate() error {
	if c.PopularityWeight < 0 || c.DurationWeight < 0 {
		return errors.New("popularity_weight and duration_weight must be non-negative")
	}
	if c.PopularityWeight+c.DurationWeight == 0 {
		return errors.New("popularity_weight and duration_weight cannot both be zero")
	}
	return nil
}

func (c *CameraConfig) Validate() error {
	if c.FocusDurationMS <= 0 || c.ReturnDurationMS <= 0 {
		return errors.New("focus_duration_ms and return_duration_ms must be positive")
	}
	if _, ok := vmath.EaseByName(c.Easing); !ok {
		return fmt.Errorf("unknown easing %q", c.Easing)
	}
	if c.StandoffDistance <= 0 {
		return errors.New("standoff_distance must be positive")
	}
	if c.FreeLookDamping <= 0 || c.FreeLookDamping >= 1 {
		return errors.New("freelook_damping must be in (0, 1)")
	}
	if c.MaxVelocity <= 0 {
		return errors.New("max_angular_velocity must be positive")
	}
	if c.ZoomMin <= 0 || c.ZoomMax <= c.ZoomMin {
		return errors.New("zoom bounds must satisfy 0 < zoom_min < zoom_max")
	}
	return nil
}

func (c *TextureConfig) Validate() error {
	if c.TimeoutMS <= 0 {
		return errors.New("timeout_ms must be positive")
	}
	return nil
}

func (c *FallbackConfig) Validate() error {
	if c.EscalationThreshold < 1 {
		return errors.New("escalation_threshold must be at least 1")
	}
	return nil
}

func (c *RenderConfig) Validate() error {
	if c.FPS < 10 || c.FPS > 120 {
		return errors.New("fps must be between 10 and 120")
	}
	return nil
}
