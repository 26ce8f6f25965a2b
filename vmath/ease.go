package vmath

// EaseFunc maps a time fraction t in [0,1] to an eased fraction in [0,1].
// All functions are exact at the endpoints: f(0)=0, f(1)=1
type EaseFunc func(t float64) float64

func EaseLinear(t float64) float64 { return t }

func EaseQuadIn(t float64) float64  { return t * t }
func EaseQuadOut(t float64) float64 { return t * (2 - t) }
func EaseQuadInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

func EaseCubicIn(t float64) float64 { return t * t * t }
func EaseCubicOut(t float64) float64 {
	u := t - 1
	return u*u*u + 1
}
func EaseCubicInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := 2*t - 2
	return 0.5*u*u*u + 1
}

func EaseQuartIn(t float64) float64 { return t * t * t * t }
func EaseQuartOut(t float64) float64 {
	u := t - 1
	return 1 - u*u*u*u
}
func EaseQuartInOut(t float64) float64 {
	if t < 0.5 {
		return 8 * t * t * t * t
	}
	u := t - 1
	return 1 - 8*u*u*u*u
}

// easings maps config names to functions. Unknown names fall back to
// cubic in-out, the flight default
var easings = map[string]EaseFunc{
	"linear":       EaseLinear,
	"quad-in":      EaseQuadIn,
	"quad-out":     EaseQuadOut,
	"quad-in-out":  EaseQuadInOut,
	"cubic-in":     EaseCubicIn,
	"cubic-out":    EaseCubicOut,
	"cubic-in-out": EaseCubicInOut,
	"quart-in":     EaseQuartIn,
	"quart-out":    EaseQuartOut,
	"quart-in-out": EaseQuartInOut,
}

// EaseByName resolves an easing function from its config name
func EaseByName(name string) (EaseFunc, bool) {
	f, ok := easings[name]
	if !ok {
		return EaseCubicInOut, false
	}
	return f, true
}
