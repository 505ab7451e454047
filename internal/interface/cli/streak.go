package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show the daily-goal streak",
	RunE:  runStreak,
}

func init() {
	rootCmd.AddCommand(streakCmd)
}

func runStreak(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer func() {
		_ = app.Close()
	}()

	state := app.Streaks.Get()
	goal := app.Goals.Get()
	today := app.Tracker.TodayMinutes()

	if state.Current == 0 {
		fmt.Println("No streak yet. Hit your daily goal to start one.")
	} else {
		fmt.Printf("🔥 %s\n", valueStyle.Render(fmt.Sprintf("%d day(s)", state.Current)))
		fmt.Printf("%s %d day(s)\n", labelStyle.Render("Best:"), state.Best)
		if state.LastDate != "" {
			fmt.Printf("%s %s\n", labelStyle.Render("Last goal met:"), state.LastDate)
		}
	}

	if today >= goal {
		fmt.Println(goodStyle.Render(fmt.Sprintf("Today's goal met: %d/%d min", today, goal)))
	} else {
		fmt.Printf("%s %d/%d min\n", labelStyle.Render("Today:"), today, goal)
	}

	return nil
}
