package device

import (
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/crystal-galaxy/parameter"
)

// Grade is the coarse capability result driving both geometry and
// texture tier selection
type Grade int

const (
	GradeLow Grade = iota
	GradeMedium
	GradeHigh
)

func (g Grade) String() string {
	switch g {
	case GradeHigh:
		return "high"
	case GradeMedium:
		return "medium"
	}
	return "low"
}

// Profile is the cached one-shot capability result
type Profile struct {
	Reading Reading
	Score   int
	Grade   Grade
}

// Profiler computes the capability profile once per process and caches
// it. Constructed at the application root and injected; never a global.
//
// ForcePerformanceMode is sticky for the session: once forced, the
// effective grade is low and geometry drops to ultra-low, regardless of
// the probed score
type Profiler struct {
	probe  Probe
	once   sync.Once
	cached Profile
	forced atomic.Bool
}

func NewProfiler(probe Probe) *Profiler {
	return &Profiler{probe: probe}
}

// Profile returns the cached capability profile, probing on first call
func (p *Profiler) Profile() Profile {
	p.once.Do(func() {
		r := p.probe.Read()
		score := scoreReading(r)
		p.cached = Profile{Reading: r, Score: score, Grade: gradeFor(score)}
		if r.SavedPerfMode {
			p.forced.Store(true)
		}
	})
	return p.cached
}

// Grade returns the effective grade, accounting for forced performance
// mode
func (p *Profiler) Grade() Grade {
	prof := p.Profile()
	if p.forced.Load() {
		return GradeLow
	}
	return prof.Grade
}

// ForcePerformanceMode drops the session to the low grade. Idempotent;
// forcing twice is a no-op
func (p *Profiler) ForcePerformanceMode() {
	p.Profile() // Ensure the probe ran so Score/Reading stay reportable
	p.forced.Store(true)
}

// PerformanceForced reports whether the session runs in forced
// performance mode
func (p *Profiler) PerformanceForced() bool {
	return p.forced.Load()
}

// GeometryTier maps the effective grade to the geometry complexity tier
func (p *Profiler) GeometryTier() Tier {
	prof := p.Profile()
	if p.forced.Load() {
		return TierUltraLow
	}
	switch prof.Grade {
	case GradeHigh:
		if prof.Score >= parameter.DeviceUltraHighScore {
			return TierUltraHigh
		}
		return TierHigh
	case GradeMedium:
		return TierMedium
	}
	return TierLow
}

// TextureTier maps the effective grade to the texture quality table
func (p *Profiler) TextureTier() TextureTier {
	switch p.Grade() {
	case GradeHigh:
		return TextureTier{
			Resolution: parameter.TextureResolutionHigh,
			Dither:     true,
			Detail:     true,
		}
	case GradeMedium:
		return TextureTier{
			Resolution: parameter.TextureResolutionMedium,
			Dither:     true,
			Detail:     false,
		}
	}
	return TextureTier{
		Resolution: parameter.TextureResolutionLow,
		Dither:     false,
		Detail:     false,
		Compress:   true,
	}
}

func scoreReading(r Reading) int {
	score := 0
	if r.TrueColor {
		score += parameter.ScoreTrueColor
	}

	ext := len(r.Extensions) * parameter.ScorePerExtension
	if ext > parameter.ScoreExtensionCap {
		ext = parameter.ScoreExtensionCap
	}
	score += ext

	if r.Cells >= parameter.DeviceLargeSurfaceCells {
		score += parameter.ScoreLargeSurface
	}
	if knownVendor(r.Vendor) {
		score += parameter.ScoreKnownVendor
	}

	switch {
	case r.MemoryMB >= parameter.DeviceMemoryRichMB:
		score += parameter.ScoreMemoryRich
	case r.MemoryMB >= parameter.DeviceMemoryOKMB:
		score += parameter.ScoreMemoryOK
	}

	if r.Remote {
		score -= parameter.DeviceRemotePenalty
	}
	if r.SavedPerfMode {
		score -= parameter.DeviceSavedPerfPenalty
	}

	if score < 0 {
		score = 0
	}
	return score
}

var fastVendors = map[string]bool{
	"kitty":     true,
	"wezterm":   true,
	"alacritty": true,
	"konsole":   true,
	"iterm":     true,
	"iterm.app": true,
	"ghostty":   true,
}

func knownVendor(vendor string) bool {
	return fastVendors[vendor]
}

func gradeFor(score int) Grade {
	switch {
	case score >= parameter.DeviceGradeHighThreshold:
		return GradeHigh
	case score >= parameter.DeviceGradeMediumThreshold:
		return GradeMedium
	}
	return GradeLow
}
