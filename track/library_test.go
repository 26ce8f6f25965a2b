package track

import (
	"os"
	"path/filepath"
	"testing"
)

// TestNormalizeGenre verifies case folding and collector alias resolution
func TestNormalizeGenre(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Metal", "metal"},
		{"метал", "metal"},
		{"  Рок  ", "rock"},
		{"ELECTRO", "electronic"},
		{"джаз", "jazz"},
		{"rusrap", "hip-hop"},
		{"", "unknown"},
		{"shoegaze", "shoegaze"}, // Unrecognized tags pass through
	}

	for _, c := range cases {
		if got := NormalizeGenre(c.in); got != c.want {
			t.Errorf("NormalizeGenre(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func writeLibrary(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tracks.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestLoadLibraryCollectorFormat verifies the metadata-wrapped collector
// output parses and invalid/duplicate entries are dropped
func TestLoadLibraryCollectorFormat(t *testing.T) {
	path := writeLibrary(t, `{
		"metadata": {"total_tracks": 4, "source": "Yandex Music API"},
		"tracks": [
			{"id": "1", "title": "Alpha", "artist": "A", "album": "X", "duration": 240, "genre": "метал", "available": true},
			{"id": "", "title": "NoID", "artist": "B", "album": "X", "duration": 100, "genre": "pop", "available": true},
			{"id": "1", "title": "Dup", "artist": "C", "album": "X", "duration": 90, "genre": "rock", "available": true},
			{"id": "2", "title": "Beta", "artist": "D", "album": "Y", "duration": 180, "genre": "jazz", "available": false}
		]
	}`)

	recs, err := LoadLibrary(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if recs[0].Title != "Alpha" {
		t.Errorf("duplicate id did not keep first occurrence: %q", recs[0].Title)
	}
	if recs[0].NormalizedGenre() != "metal" {
		t.Errorf("genre = %q, want metal", recs[0].NormalizedGenre())
	}
	if recs[1].Available {
		t.Error("availability flag lost")
	}
}

// TestLoadLibraryBareArray verifies hand-written fixture files parse
func TestLoadLibraryBareArray(t *testing.T) {
	path := writeLibrary(t, `[
		{"id": "a", "title": "T", "artist": "A", "album": "X", "duration": 60, "genre": "pop", "popularity": 50, "bpm": 128, "available": true}
	]`)

	recs, err := LoadLibrary(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 || recs[0].BPM != 128 {
		t.Fatalf("unexpected records: %+v", recs)
	}
}

// TestLoadLibraryCoverURLFallback verifies a local path under the
// collector's cover_url key is folded into CoverPath, remote URLs are
// not, and an explicit cover_path wins
func TestLoadLibraryCoverURLFallback(t *testing.T) {
	path := writeLibrary(t, `[
		{"id": "a", "title": "T", "artist": "A", "album": "X", "duration": 60, "genre": "pop", "cover_url": "covers/a.png", "available": true},
		{"id": "b", "title": "U", "artist": "A", "album": "X", "duration": 60, "genre": "pop", "cover_url": "https://cdn.example/b.png", "available": true},
		{"id": "c", "title": "V", "artist": "A", "album": "X", "duration": 60, "genre": "pop", "cover_path": "covers/c.png", "cover_url": "covers/stale.png", "available": true}
	]`)

	recs, err := LoadLibrary(path)
	if err != nil {
		t.Fatal(err)
	}
	if recs[0].CoverPath != "covers/a.png" {
		t.Errorf("local cover_url not adopted: CoverPath = %q", recs[0].CoverPath)
	}
	if recs[1].CoverPath != "" {
		t.Errorf("remote cover_url adopted: CoverPath = %q", recs[1].CoverPath)
	}
	if recs[2].CoverPath != "covers/c.png" {
		t.Errorf("cover_path overridden: CoverPath = %q", recs[2].CoverPath)
	}
}

// TestLoadLibraryErrors verifies missing and empty libraries fail loudly
func TestLoadLibraryErrors(t *testing.T) {
	if _, err := LoadLibrary(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("missing file did not error")
	}

	path := writeLibrary(t, `{"tracks": []}`)
	if _, err := LoadLibrary(path); err == nil {
		t.Error("empty library did not error")
	}

	path = writeLibrary(t, `not json`)
	if _, err := LoadLibrary(path); err == nil {
		t.Error("malformed file did not error")
	}
}
