package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var badgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "Show badge progress and unlocks",
	RunE:  runBadges,
}

func init() {
	rootCmd.AddCommand(badgesCmd)
}

func runBadges(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer func() {
		_ = app.Close()
	}()

	// Refresh progress so the listing reflects the latest sessions.
	if _, err := app.Engine.Evaluate(); err != nil {
		return fmt.Errorf("failed to evaluate badges: %w", err)
	}

	for _, b := range app.Badges.Get() {
		if b.Unlocked {
			fmt.Printf("%s %s\n", b.Emoji, badgeStyle.Render(b.Name))
			fmt.Printf("   %s", dimStyle.Render(b.Description))
			if b.UnlockedDate != nil {
				fmt.Printf("  %s", dimStyle.Render(fmt.Sprintf("(unlocked %s)", humanize.Time(*b.UnlockedDate))))
			}
			fmt.Println()
		} else {
			fmt.Printf("🔒 %s  %s\n", valueStyle.Render(b.Name),
				dimStyle.Render(fmt.Sprintf("%d/%d", b.Progress, b.Target)))
			fmt.Printf("   %s\n", dimStyle.Render(b.Description))
		}
	}

	return nil
}
