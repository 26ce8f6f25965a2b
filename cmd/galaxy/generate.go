package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/crystal-galaxy/crystal"
	"github.com/lixenwraith/crystal-galaxy/device"
	"github.com/lixenwraith/crystal-galaxy/track"
)

var (
	genLibrary string
	genTrackID string
	genTier    string
	genJSON    bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one crystal body and print its geometry stats",
	Long: `Generate builds the crystal body for a single track without opening a
terminal session. Useful for checking what a track's identity produces
at each detail tier; the same track and tier always print the same
numbers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd)
	},
}

func init() {
	generateCmd.Flags().StringVarP(&genLibrary, "library", "l", "", "track library JSON file")
	generateCmd.Flags().StringVarP(&genTrackID, "track-id", "t", "", "track to generate")
	generateCmd.Flags().StringVar(&genTier, "tier", "", "geometry tier (ultra-low, low, medium, high, ultra-high)")
	generateCmd.Flags().BoolVar(&genJSON, "json", false, "machine-readable output")
	generateCmd.MarkFlagRequired("library")
	generateCmd.MarkFlagRequired("track-id")
	rootCmd.AddCommand(generateCmd)
}

// bodyStats is the generate output shape, stable for scripting
type bodyStats struct {
	TrackID        string  `json:"track_id"`
	Title          string  `json:"title"`
	Artist         string  `json:"artist"`
	Genre          string  `json:"genre"`
	Tier           string  `json:"tier"`
	Seed           string  `json:"seed"`
	ShapeSeed      uint32  `json:"shape_seed"`
	Vertices       int     `json:"vertices"`
	Facets         int     `json:"facets"`
	BoundingRadius float64 `json:"bounding_radius"`
	Complexity     float64 `json:"complexity"`
	SafeFallback   bool    `json:"safe_fallback"`
}

func runGenerate(cmd *cobra.Command) error {
	tracks, err := track.LoadLibrary(genLibrary)
	if err != nil {
		return err
	}

	var rec track.Record
	found := false
	for _, t := range tracks {
		if t.ID == genTrackID {
			rec = t
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("track %q not in library %s", genTrackID, genLibrary)
	}

	tier := device.TierMedium
	if genTier != "" {
		var ok bool
		if tier, ok = device.TierByName(genTier); !ok {
			return usageError{err: fmt.Errorf("unknown tier %q", genTier)}
		}
	}

	gen := crystal.NewGenerator()
	gen.PopularityWeight = cfg.Crystal.PopularityWeight
	gen.DurationWeight = cfg.Crystal.DurationWeight
	res := gen.Generate(rec, tier)

	stats := bodyStats{
		TrackID:        rec.ID,
		Title:          rec.Title,
		Artist:         rec.Artist,
		Genre:          rec.NormalizedGenre(),
		Tier:           res.Tier.String(),
		Seed:           fmt.Sprintf("%016x", crystal.Seed(rec)),
		ShapeSeed:      res.ShapeSeed,
		Vertices:       res.Mesh.VertexCount(),
		Facets:         res.Mesh.FacetCount(),
		BoundingRadius: res.BoundingRadius,
		Complexity:     res.Complexity,
		SafeFallback:   res.SafeFallback,
	}

	out := cmd.OutOrStdout()
	if genJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	}

	fmt.Fprintf(out, "%s — %s  [%s]\n", stats.Title, stats.Artist, stats.Genre)
	fmt.Fprintf(out, "tier        %s\n", stats.Tier)
	fmt.Fprintf(out, "seed        %s\n", stats.Seed)
	fmt.Fprintf(out, "shape seed  %d\n", stats.ShapeSeed)
	fmt.Fprintf(out, "vertices    %d\n", stats.Vertices)
	fmt.Fprintf(out, "facets      %d\n", stats.Facets)
	fmt.Fprintf(out, "radius      %.3f\n", stats.BoundingRadius)
	fmt.Fprintf(out, "complexity  %.3f\n", stats.Complexity)
	if stats.SafeFallback {
		fmt.Fprintln(out, "safe fallback solid")
	}
	return nil
}
