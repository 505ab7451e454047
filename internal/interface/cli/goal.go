package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var goalCmd = &cobra.Command{
	Use:   "goal [minutes]",
	Short: "Show or set the daily goal in minutes",
	Long: `Show the daily focus goal, or set it by passing a minute count.

Examples:
  focusflow goal
  focusflow goal 90`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGoal,
}

func init() {
	rootCmd.AddCommand(goalCmd)
}

func runGoal(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer func() {
		_ = app.Close()
	}()

	if len(args) == 0 {
		fmt.Printf("Daily goal: %d min\n", app.Goals.Get())
		return nil
	}

	minutes, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid goal %q: expected a number of minutes", args[0])
	}
	if err := app.Goals.Set(minutes); err != nil {
		return fmt.Errorf("failed to set goal: %w", err)
	}

	fmt.Printf("Daily goal set to %d min\n", minutes)
	return nil
}
