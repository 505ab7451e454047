package cli

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

var reportCopy bool

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show weekly and all-time statistics",
	Long: `Display the weekly focus chart, category breakdown, and the hour of
day where you focus best.

Examples:
  focusflow report
  focusflow report --copy`,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().BoolVar(&reportCopy, "copy", false, "Copy a plain-text report to the clipboard")
}

func runReport(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer func() {
		_ = app.Close()
	}()

	var plain strings.Builder

	summary := app.Reports.Summary()
	fmt.Println(titleStyle.Render("Focus Report"))
	fmt.Println()
	fmt.Printf("%s %d min across %d session(s), avg %d min\n",
		labelStyle.Render("All time:"),
		summary.AllTimeMinutes, summary.TotalSessions, summary.AverageSessionMinutes)
	fmt.Printf("%s %d\n", labelStyle.Render("Distractions:"), summary.TotalDistractions)
	fmt.Fprintf(&plain, "Focus report\nAll time: %d min across %d sessions\n",
		summary.AllTimeMinutes, summary.TotalSessions)

	// Weekly chart
	fmt.Println()
	fmt.Println(labelStyle.Render("Last 7 days:"))
	week := app.Reports.Weekly()
	maxMinutes := 0
	for _, day := range week {
		if day.Minutes > maxMinutes {
			maxMinutes = day.Minutes
		}
	}
	for _, day := range week {
		bar := ""
		if maxMinutes > 0 {
			bar = strings.Repeat("█", day.Minutes*20/maxMinutes)
		}
		fmt.Printf("  %s %s %d\n", day.Day.Format("Mon"), goodStyle.Render(bar), day.Minutes)
		fmt.Fprintf(&plain, "%s: %d min\n", day.Day.Format("Mon"), day.Minutes)
	}
	if best, ok := app.Reports.MostProductiveDay(); ok {
		fmt.Printf("  %s\n", dimStyle.Render(fmt.Sprintf("Most productive: %s (%d min)",
			best.Day.Format("Monday"), best.Minutes)))
	}

	// Category breakdown
	breakdown := app.Reports.Categories()
	if len(breakdown) > 0 {
		fmt.Println()
		fmt.Println(labelStyle.Render("By category:"))
		for _, c := range breakdown {
			fmt.Printf("  %s %-10s %4d min  %3.0f%%\n",
				c.Info.Emoji, c.Info.Label, c.Minutes, c.Share*100)
			fmt.Fprintf(&plain, "%s: %d min\n", c.Info.Label, c.Minutes)
		}
	}

	// Best focus window
	if best, ok := app.Reports.BestHour(); ok {
		fmt.Println()
		window := fmt.Sprintf("%02d:00-%02d:00", best.Hour, (best.Hour+2)%24)
		fmt.Printf("%s %s (%.1f distractions/session over %d sessions)\n",
			labelStyle.Render("Best focus window:"),
			valueStyle.Render(window), best.MeanDistractions, best.Sessions)
		fmt.Fprintf(&plain, "Best focus window: %s\n", window)
	}

	if app.Config.ReportFooterTemplate != "" {
		fmt.Println()
		fmt.Println(dimStyle.Render(app.Config.ReportFooterTemplate))
	}

	if reportCopy {
		if err := clipboard.WriteAll(plain.String()); err != nil {
			fmt.Println(dimStyle.Render("Could not access clipboard; report shown above only."))
		} else {
			fmt.Println()
			fmt.Println(goodStyle.Render("Report copied to clipboard."))
		}
	}

	return nil
}
