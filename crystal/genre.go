package crystal

import (
	"github.com/lixenwraith/crystal-galaxy/track"
)

// Profile holds the genre shape factors.
// Elongation stretches the body along its Y axis. Sharpness above 1 pushes
// seeded vertices outward into spikes. Roughness above 1 jitters vertices
// radially. Factors at exactly 1.0 leave that pass inactive
type Profile struct {
	Elongation float64
	Sharpness  float64
	Roughness  float64
}

// defaultProfile applies to unrecognized genres: a regular crystal with
// only the facet-variation pass distinguishing tracks
var defaultProfile = Profile{Elongation: 1.0, Sharpness: 1.1, Roughness: 1.05}

// genreProfiles maps normalized genre tags to shape factors. Aggressive
// genres get spikes, orchestral genres get smooth elongated forms
var genreProfiles = map[string]Profile{
	"metal":      {Elongation: 1.4, Sharpness: 1.8, Roughness: 1.6},
	"rock":       {Elongation: 1.25, Sharpness: 1.5, Roughness: 1.4},
	"electronic": {Elongation: 1.1, Sharpness: 1.35, Roughness: 1.1},
	"classical":  {Elongation: 1.45, Sharpness: 1.0, Roughness: 1.0},
	"jazz":       {Elongation: 1.15, Sharpness: 1.15, Roughness: 1.3},
	"pop":        {Elongation: 1.0, Sharpness: 1.25, Roughness: 1.1},
	"ambient":    {Elongation: 1.55, Sharpness: 1.0, Roughness: 1.02},
	"hip-hop":    {Elongation: 1.05, Sharpness: 1.45, Roughness: 1.25},
	"soundtrack": {Elongation: 1.35, Sharpness: 1.1, Roughness: 1.05},
}

// ProfileFor resolves the shape profile for a track's normalized genre
func ProfileFor(genre string) Profile {
	if p, ok := genreProfiles[track.NormalizeGenre(genre)]; ok {
		return p
	}
	return defaultProfile
}
