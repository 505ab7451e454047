package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ekaraman/focusflow/internal/core/models"
)

var (
	sessionsLimit    int
	sessionsCategory string
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List logged sessions, newest first",
	Long: `List logged focus sessions in reverse chronological order.

Examples:
  focusflow sessions
  focusflow sessions --limit 10
  focusflow sessions --category coding`,
	RunE: runSessions,
}

func init() {
	rootCmd.AddCommand(sessionsCmd)
	sessionsCmd.Flags().IntVar(&sessionsLimit, "limit", 20, "Maximum number of sessions to display")
	sessionsCmd.Flags().StringVar(&sessionsCategory, "category", "", "Filter by category")
}

func runSessions(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer func() {
		_ = app.Close()
	}()

	sessions := app.Sessions.All()
	if sessionsCategory != "" {
		filtered := sessions[:0:0]
		for _, s := range sessions {
			if s.Category == models.Category(sessionsCategory) {
				filtered = append(filtered, s)
			}
		}
		sessions = filtered
	}

	if len(sessions) == 0 {
		if sessionsCategory != "" {
			fmt.Printf("No sessions found for category: %s\n", sessionsCategory)
		} else {
			fmt.Println("No sessions yet. Log one with 'focusflow log'.")
		}
		return nil
	}

	shown := sessions
	if len(shown) > sessionsLimit {
		shown = shown[:sessionsLimit]
	}

	fmt.Printf("Showing %d of %d session(s)\n\n", len(shown), len(sessions))
	for _, s := range shown {
		info := s.Category.Info()
		status := goodStyle.Render("completed")
		if !s.Completed {
			status = warnStyle.Render("abandoned")
		}
		fmt.Printf("%s %s  %d min  score %d/100  %s\n",
			info.Emoji, valueStyle.Render(info.Label), s.Minutes(), s.FocusScore, status)
		fmt.Printf("   %s", dimStyle.Render(humanize.Time(s.Date.In(app.Location))))
		if s.DistractionCount > 0 {
			fmt.Printf("  %s", dimStyle.Render(fmt.Sprintf("%d distraction(s)", s.DistractionCount)))
		}
		fmt.Println()
	}

	return nil
}
