package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show today's progress at a glance",
	Long: `Display today's focused minutes against the daily goal, the current
streak, and the latest session.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer func() {
		_ = app.Close()
	}()

	summary := app.Reports.Summary()
	streak := app.Streaks.Get()

	fmt.Println(titleStyle.Render("focusflow"))
	fmt.Println()

	fmt.Printf("%s %s %s\n",
		labelStyle.Render("Today:"),
		progressBar(summary.TodayMinutes, summary.GoalMinutes, 20),
		valueStyle.Render(fmt.Sprintf("%d/%d min", summary.TodayMinutes, summary.GoalMinutes)))

	if streak.Current > 0 {
		fmt.Printf("%s %s\n",
			labelStyle.Render("Streak:"),
			valueStyle.Render(fmt.Sprintf("🔥 %d day(s), best %d", streak.Current, streak.Best)))
	}

	today := app.Sessions.Today()
	if len(today) > 0 {
		last := today[0]
		fmt.Printf("%s %s, %d min, score %d/100\n",
			labelStyle.Render("Last session:"),
			last.Category.Info().Label, last.Minutes(), last.FocusScore)
	} else {
		fmt.Println(dimStyle.Render("No sessions yet today. Log one with 'focusflow log'."))
	}

	return nil
}
