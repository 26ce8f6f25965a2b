package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/crystal-galaxy/parameter"
)

// TestLoadDefaults verifies an empty path yields the compiled defaults
func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Crystal.PopularityWeight != parameter.ComplexityPopularityWeight {
		t.Errorf("popularity weight = %v", cfg.Crystal.PopularityWeight)
	}
	if cfg.Camera.Easing != parameter.CameraFocusEasing {
		t.Errorf("easing = %q", cfg.Camera.Easing)
	}
	if cfg.Render.FPS != parameter.FrameRate {
		t.Errorf("fps = %d", cfg.Render.FPS)
	}
}

// TestLoadOverlay verifies file values override defaults while omitted
// fields keep them
func TestLoadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "galaxy.toml")
	body := `
[crystal]
popularity_weight = 0.5
duration_weight = 0.5

[camera]
easing = "quad-out"
focus_duration_ms = 800
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Crystal.PopularityWeight != 0.5 || cfg.Crystal.DurationWeight != 0.5 {
		t.Errorf("weights = %v/%v", cfg.Crystal.PopularityWeight, cfg.Crystal.DurationWeight)
	}
	if cfg.Camera.Easing != "quad-out" || cfg.Camera.FocusDurationMS != 800 {
		t.Errorf("camera = %+v", cfg.Camera)
	}
	// Omitted field keeps the default
	if cfg.Camera.ReturnDurationMS != int(parameter.CameraReturnDuration.Milliseconds()) {
		t.Errorf("return duration = %d", cfg.Camera.ReturnDurationMS)
	}
}

// TestValidateRejects verifies out-of-range values fail with the field
// name in the error
func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"bad easing", "[camera]\neasing = \"bounce\"\n", "easing"},
		{"bad damping", "[camera]\nfreelook_damping = 1.5\n", "freelook_damping"},
		{"bad zoom", "[camera]\nzoom_min = 50.0\nzoom_max = 10.0\n", "zoom"},
		{"bad fps", "[render]\nfps = 500\n", "fps"},
		{"bad timeout", "[texture]\ntimeout_ms = -5\n", "timeout_ms"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "galaxy.toml")
			if err := os.WriteFile(path, []byte(tc.body), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatal("invalid config accepted")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not name %q", err, tc.want)
			}
		})
	}
}

// TestEnvPerformanceOverride verifies the environment flag forces
// performance mode
func TestEnvPerformanceOverride(t *testing.T) {
	t.Setenv(EnvPerformanceMode, "1")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.PerformanceMode {
		t.Error("performance mode not forced by environment")
	}

	t.Setenv(EnvPerformanceMode, "0")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.PerformanceMode {
		t.Error("performance mode forced without the flag")
	}
}
