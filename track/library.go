package track

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
)

// libraryFile mirrors the collector's output: a metadata header plus the
// track array. Only the track array matters to the engine
type libraryFile struct {
	Metadata struct {
		TotalTracks int    `json:"total_tracks"`
		GeneratedAt string `json:"generated_at"`
		Source      string `json:"source"`
	} `json:"metadata"`
	Tracks []Record `json:"tracks"`
}

// LoadLibrary reads the collector's JSON library file.
//
// Invalid entries are skipped with a logged warning, never fatal.
// Duplicate IDs keep the first occurrence. A bare JSON array (no metadata
// wrapper) is accepted too, for hand-written fixtures
func LoadLibrary(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read library: %w", err)
	}

	var file libraryFile
	if err := json.Unmarshal(data, &file); err != nil {
		// Bare array fallback
		var records []Record
		if arrErr := json.Unmarshal(data, &records); arrErr != nil {
			return nil, fmt.Errorf("parse library %s: %w", path, err)
		}
		file.Tracks = records
	}

	seen := make(map[string]struct{}, len(file.Tracks))
	out := make([]Record, 0, len(file.Tracks))
	for i, rec := range file.Tracks {
		if !rec.Valid() {
			log.Printf("[low] track-load: skipping invalid entry %d (id=%q)", i, rec.ID)
			continue
		}
		if _, dup := seen[rec.ID]; dup {
			log.Printf("[low] track-load: duplicate id %q, keeping first", rec.ID)
			continue
		}
		// Older collector exports put the downloaded cover's local path
		// in cover_url. Remote URLs stay ignored; covers are never fetched
		if rec.CoverPath == "" && rec.CoverURL != "" && !strings.Contains(rec.CoverURL, "://") {
			rec.CoverPath = rec.CoverURL
		}
		seen[rec.ID] = struct{}{}
		out = append(out, rec)
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("library %s contains no usable tracks", path)
	}
	return out, nil
}
