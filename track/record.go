package track

import (
	"strings"
)

// Record is one track of the user's library, produced by the external
// collection pipeline and read-only to the engine.
//
// Popularity is 0-100. BPM and Energy are optional; zero means unknown.
// CoverPath points at local cover art when the collector downloaded one;
// older collector exports carry the same local path under cover_url, and
// the loader folds it into CoverPath. Unavailable tracks still render,
// flagged dimmed
type Record struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Artist     string  `json:"artist"`
	Album      string  `json:"album"`
	Genre      string  `json:"genre"`
	Duration   int     `json:"duration"` // Seconds
	Popularity int     `json:"popularity"`
	BPM        float64 `json:"bpm,omitempty"`
	Energy     float64 `json:"energy,omitempty"` // 0-1
	CoverPath  string  `json:"cover_path,omitempty"`
	CoverURL   string  `json:"cover_url,omitempty"`
	Available  bool    `json:"available"`
}

// genreAliases folds collector genre tags (including the Russian tags the
// Yandex collector emits) onto the canonical profile keys
var genreAliases = map[string]string{
	"метал":         "metal",
	"металл":        "metal",
	"heavymetal":    "metal",
	"heavy metal":   "metal",
	"рок":           "rock",
	"hard rock":     "rock",
	"indie":         "rock",
	"электроника":   "electronic",
	"electro":       "electronic",
	"dance":         "electronic",
	"techno":        "electronic",
	"house":         "electronic",
	"классика":      "classical",
	"classic":       "classical",
	"джаз":          "jazz",
	"блюз":          "jazz",
	"blues":         "jazz",
	"поп":           "pop",
	"русский поп":   "pop",
	"эмбиент":       "ambient",
	"chill":         "ambient",
	"chillout":      "ambient",
	"хип-хоп":       "hip-hop",
	"hiphop":        "hip-hop",
	"hip hop":       "hip-hop",
	"рэп":           "hip-hop",
	"rap":           "hip-hop",
	"русский рэп":   "hip-hop",
	"foreignrap":    "hip-hop",
	"rusrap":        "hip-hop",
	"rusrock":       "rock",
	"ruspop":        "pop",
	"electronics":   "electronic",
	"dnb":           "electronic",
	"альтернатива":  "rock",
	"alternative":   "rock",
	"саундтрек":     "soundtrack",
	"soundtrack":    "soundtrack",
	"инструментал":  "ambient",
	"instrumental":  "ambient",
	"lounge":        "ambient",
	"classicmetal":  "metal",
	"numetal":       "metal",
	"punk":          "rock",
	"folk":          "rock",
	"soul":          "jazz",
	"rnb":           "pop",
	"r&b":           "pop",
	"русская поп-музыка": "pop",
}

// NormalizeGenre lower-cases, trims, and resolves collector aliases so
// genre lookups hit the shape-profile table consistently
func NormalizeGenre(genre string) string {
	g := strings.ToLower(strings.TrimSpace(genre))
	if g == "" {
		return "unknown"
	}
	if canonical, ok := genreAliases[g]; ok {
		return canonical
	}
	return g
}

// NormalizedGenre returns the canonical genre tag for profile lookups
func (r Record) NormalizedGenre() string {
	return NormalizeGenre(r.Genre)
}

// Valid reports whether the record carries the minimum fields the
// generator needs. Invalid records are skipped by the library loader
func (r Record) Valid() bool {
	return r.ID != "" && r.Title != "" && r.Duration >= 0 &&
		r.Popularity >= 0 && r.Popularity <= 100
}
