package crystal

import (
	"hash/fnv"

	"github.com/mitchellh/hashstructure/v2"

	"github.com/lixenwraith/crystal-galaxy/track"
)

// seedIdentity is the portion of a track that defines its silhouette.
// Numeric metadata (popularity, duration, bpm) shapes detail through the
// generator instead, so edits to those fields keep the silhouette stable
type seedIdentity struct {
	ID     string
	Title  string
	Artist string
}

// Seed derives the deterministic 64-bit generation seed for a track
func Seed(rec track.Record) uint64 {
	h, err := hashstructure.Hash(seedIdentity{
		ID:     rec.ID,
		Title:  rec.Title,
		Artist: rec.Artist,
	}, hashstructure.FormatV2, nil)
	if err == nil {
		return h
	}

	// hashstructure cannot fail on a plain string struct, but the seed
	// must be total: fall back to direct FNV over the identity fields
	f := fnv.New64a()
	f.Write([]byte(rec.ID))
	f.Write([]byte{0})
	f.Write([]byte(rec.Title))
	f.Write([]byte{0})
	f.Write([]byte(rec.Artist))
	return f.Sum64()
}

// ShapeSeed is the 32-bit hash exposed on the generated body
func ShapeSeed(rec track.Record) uint32 {
	s := Seed(rec)
	return uint32(s ^ (s >> 32))
}
