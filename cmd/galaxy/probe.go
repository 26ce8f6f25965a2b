package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/crystal-galaxy/device"
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Print the device capability profile this terminal would get",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProbe(cmd)
	},
}

func init() {
	rootCmd.AddCommand(probeCmd)
}

var (
	probeTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	probeLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(14)
	probeValue = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	probeWarn  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

func runProbe(cmd *cobra.Command) error {
	profiler := device.NewProfiler(device.EnvProbe{})
	if cfg.PerformanceMode {
		profiler.ForcePerformanceMode()
	}
	prof := profiler.Profile()
	r := prof.Reading

	out := cmd.OutOrStdout()
	row := func(label, value string) {
		fmt.Fprintf(out, "%s %s\n", probeLabel.Render(label), probeValue.Render(value))
	}

	fmt.Fprintln(out, probeTitle.Render("device profile"))
	row("vendor", orUnknown(r.Vendor))
	row("truecolor", yesNo(r.TrueColor))
	row("palette", humanize.Comma(int64(r.PaletteSize))+" colors")
	row("cells", humanize.Comma(int64(r.Cells)))
	row("memory", memoryLine(r.MemoryMB))
	row("remote", yesNo(r.Remote))
	row("extensions", extensionsLine(r.Extensions))
	fmt.Fprintln(out)

	row("score", fmt.Sprintf("%d", prof.Score))
	row("grade", profiler.Grade().String())
	row("geometry", profiler.GeometryTier().String())
	tex := profiler.TextureTier()
	row("texture", fmt.Sprintf("%dx%d dither=%v detail=%v", tex.Resolution, tex.Resolution, tex.Dither, tex.Detail))

	if profiler.PerformanceForced() {
		fmt.Fprintln(out, probeWarn.Render("performance mode forced for this session"))
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

func memoryLine(mb int) string {
	if mb <= 0 {
		return "unknown"
	}
	return humanize.IBytes(uint64(mb) * 1024 * 1024)
}

func extensionsLine(ext []string) string {
	if len(ext) == 0 {
		return "none"
	}
	return strings.Join(ext, ", ")
}
