package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var clearForce bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all sessions, streak state, and badges",
	Long: `Delete every logged session along with streak state and badge unlocks.
The daily goal setting is kept.`,
	RunE: runClear,
}

func init() {
	rootCmd.AddCommand(clearCmd)
	clearCmd.Flags().BoolVar(&clearForce, "force", false, "Skip the confirmation prompt")
}

func runClear(cmd *cobra.Command, args []string) error {
	if !clearForce {
		fmt.Print("This deletes all sessions, streaks, and badges. Type 'yes' to continue: ")
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.TrimSpace(answer) != "yes" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	app, err := openApp()
	if err != nil {
		return err
	}
	defer func() {
		_ = app.Close()
	}()

	if err := app.Sessions.ClearAll(); err != nil {
		return fmt.Errorf("failed to clear data: %w", err)
	}

	fmt.Println("All session data cleared. Daily goal kept.")
	return nil
}
