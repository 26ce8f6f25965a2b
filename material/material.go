package material

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/crystal-galaxy/parameter"
)

// State distinguishes the full shading program from the guaranteed-valid
// flat fallback
type State int

const (
	StateShaderActive State = iota
	StateFallbackFlat
)

func (s State) String() string {
	if s == StateShaderActive {
		return "shader-active"
	}
	return "fallback-flat"
}

// Material is the per-body shading description the renderer evaluates.
// A fallback-flat material ignores the specular and rim terms
type Material struct {
	State       State
	Kind        string // "crystal-facet", "crystal-glow", ...
	SpecPower   float64
	RimStrength float64
	Ambient     float64
}

// Compile builds the full shading program for a material kind, validating
// its parameter source the way a shader compiler would. The source is the
// parameter block of the program; malformed blocks fail compilation and
// route through the fallback policy
func Compile(kind, source string) (Material, error) {
	if strings.TrimSpace(source) == "" {
		return Material{}, fmt.Errorf("compile %s: empty program source", kind)
	}
	if strings.Contains(source, "\x00") {
		return Material{}, fmt.Errorf("compile %s: binary garbage in program source", kind)
	}
	return Material{
		State:       StateShaderActive,
		Kind:        kind,
		SpecPower:   parameter.ShaderSpecPower,
		RimStrength: parameter.ShaderRimStrength,
		Ambient:     parameter.ShaderAmbient,
	}, nil
}

// DefaultProgramSource is the shipped facet program parameter block
const DefaultProgramSource = `facet-program
spec_power   16.0
rim_strength 0.45
ambient      0.18
`

// FlatFallback returns the always-valid flat material for a kind.
// Total: never fails, never nil
func FlatFallback(kind string) Material {
	return Material{
		State:   StateFallbackFlat,
		Kind:    kind,
		Ambient: parameter.ShaderAmbient,
	}
}
