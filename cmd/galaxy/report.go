package main

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/crystal-galaxy/telemetry"
)

var (
	reportDB      string
	reportSession string
	reportLimit   int
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show recorded sessions and their fallback reports",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(cmd)
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportDB, "db", "", "telemetry database (defaults to the configured path)")
	reportCmd.Flags().StringVar(&reportSession, "session", "", "show one session's reports")
	reportCmd.Flags().IntVar(&reportLimit, "limit", 20, "maximum rows")
	rootCmd.AddCommand(reportCmd)
}

var (
	reportHead = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	reportDim  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	reportHot  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func runReport(cmd *cobra.Command) error {
	path := reportDB
	if path == "" {
		path = cfg.Telemetry.Path
	}

	store, err := telemetry.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	out := cmd.OutOrStdout()

	if reportSession != "" {
		reports, err := store.ListReports(ctx, reportSession, reportLimit)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, reportHead.Render("session "+reportSession))
		printReports(cmd, reports)
		return nil
	}

	sessions, err := store.ListSessions(ctx, reportLimit)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Fprintln(out, reportDim.Render("no sessions recorded"))
		return nil
	}

	fmt.Fprintln(out, reportHead.Render("sessions"))
	for _, s := range sessions {
		line := fmt.Sprintf("%s  %s  grade=%s score=%d tier=%s bodies=%d",
			s.ID[:8], humanize.Time(s.StartedAt), s.Grade, s.Score, s.GeometryTier, s.Bodies)
		if s.PerfForced {
			line += "  " + reportHot.Render("perf-forced")
		}
		fmt.Fprintln(out, line)
	}

	reports, err := store.ListReports(ctx, "", reportLimit)
	if err != nil {
		return err
	}
	if len(reports) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, reportHead.Render("recent reports"))
		printReports(cmd, reports)
	}
	return nil
}

func printReports(cmd *cobra.Command, reports []telemetry.ReportRow) {
	out := cmd.OutOrStdout()
	for _, r := range reports {
		sev := r.Severity
		if sev == "high" || sev == "critical" {
			sev = reportHot.Render(sev)
		}
		fmt.Fprintf(out, "%s  %-20s %-8s %s\n",
			reportDim.Render(r.CreatedAt.Format("2006-01-02 15:04:05")),
			r.Kind, sev, r.Message)
	}
}
