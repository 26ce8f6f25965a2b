package device

// Tier is the discrete geometry complexity level assigned to crystal
// bodies. Profiling selects the session tier; runtime fallback may force
// a body to a lower tier, never a higher one
type Tier int

const (
	TierUltraLow Tier = iota
	TierLow
	TierMedium
	TierHigh
	TierUltraHigh
)

var tierNames = [...]string{"ultra-low", "low", "medium", "high", "ultra-high"}

func (t Tier) String() string {
	if t < TierUltraLow || t > TierUltraHigh {
		return "unknown"
	}
	return tierNames[t]
}

// Lower returns the next tier down, clamped at ultra-low
func (t Tier) Lower() Tier {
	if t <= TierUltraLow {
		return TierUltraLow
	}
	return t - 1
}

// TierByName resolves a tier from its config name
func TierByName(name string) (Tier, bool) {
	for i, n := range tierNames {
		if n == name {
			return Tier(i), true
		}
	}
	return TierMedium, false
}

// TextureTier caps texture cost per capability grade.
// Resolution is the side length of the square RGBA grid; Dither and
// Detail gate the speckle/detail passes; Compress collapses the grid to
// half resolution at load time
type TextureTier struct {
	Resolution int
	Dither     bool
	Detail     bool
	Compress   bool
}
