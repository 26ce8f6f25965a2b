// Package layout places crystal bodies on genre rings: genres ordered by
// track count occupy concentric elliptical bands, tracks spread along
// their ring with seeded jitter. Placement is a pure function of the
// library, so the same collection always renders the same galaxy
package layout

import (
	"math"
	"sort"

	"github.com/lixenwraith/crystal-galaxy/crystal"
	"github.com/lixenwraith/crystal-galaxy/parameter"
	"github.com/lixenwraith/crystal-galaxy/track"
	"github.com/lixenwraith/crystal-galaxy/vmath"
)

// Rings is a computed placement, implementing scene.Positioner
type Rings struct {
	positions map[string]vmath.Vec3F
	genres    []string
}

// Compute lays out the whole library. The largest genre takes the
// innermost ring; within a ring tracks are spaced evenly by sorted id,
// then scattered by their seeded jitter
func Compute(tracks []track.Record) *Rings {
	byGenre := make(map[string][]track.Record)
	for _, rec := range tracks {
		g := track.NormalizeGenre(rec.Genre)
		byGenre[g] = append(byGenre[g], rec)
	}

	genres := make([]string, 0, len(byGenre))
	for g := range byGenre {
		genres = append(genres, g)
	}
	sort.Slice(genres, func(i, j int) bool {
		if len(byGenre[genres[i]]) != len(byGenre[genres[j]]) {
			return len(byGenre[genres[i]]) > len(byGenre[genres[j]])
		}
		return genres[i] < genres[j]
	})

	r := &Rings{
		positions: make(map[string]vmath.Vec3F, len(tracks)),
		genres:    genres,
	}
	for ring, genre := range genres {
		members := byGenre[genre]
		sort.Slice(members, func(i, j int) bool { return members[i].ID < members[j].ID })
		radius := parameter.RingBaseRadius + float64(ring)*parameter.RingSpacing
		for i, rec := range members {
			r.positions[rec.ID] = place(rec, radius, i, len(members))
		}
	}
	return r
}

func place(rec track.Record, radius float64, idx, count int) vmath.Vec3F {
	rng := vmath.NewLCG(crystal.Seed(rec) ^ parameter.SeedSaltLayout)

	angle := 2*math.Pi*float64(idx)/float64(count) +
		parameter.RingAngleJitter*rng.Range(-1, 1)

	pop := float64(rec.Popularity) / 100
	if pop > 1 {
		pop = 1
	}
	rr := radius - pop*parameter.RingPopularityOffset

	return vmath.Vec3F{
		X: rr * math.Cos(angle),
		Y: parameter.RingVerticalSpread * rng.Range(-1, 1),
		Z: rr * parameter.RingEllipseRatio * math.Sin(angle),
	}
}

// Position returns the placement for a track. Tracks absent from the
// computed library land at the origin
func (r *Rings) Position(rec track.Record) vmath.Vec3F {
	return r.positions[rec.ID]
}

// Genres returns the ring order, largest genre first
func (r *Rings) Genres() []string {
	return append([]string(nil), r.genres...)
}
