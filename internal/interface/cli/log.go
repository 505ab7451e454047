package cli

import (
	"fmt"
	"time"

	"github.com/cbroglie/mustache"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
	"github.com/spf13/cobra"

	"github.com/ekaraman/focusflow/internal/core/engine"
	"github.com/ekaraman/focusflow/internal/core/models"
	"github.com/ekaraman/focusflow/internal/core/store"
)

var (
	logCategory     string
	logMinutes      int
	logDistractions int
	logAbandoned    bool
	logAt           string
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Record a finished focus session",
	Long: `Record a focus session, update the streak, and check for badge unlocks.

Examples:
  focusflow log --category coding --minutes 25
  focusflow log --category study --minutes 50 --distractions 3
  focusflow log --category reading --minutes 25 --abandoned
  focusflow log --category coding --minutes 25 --at "yesterday 9pm"`,
	RunE: runLog,
}

func init() {
	rootCmd.AddCommand(logCmd)
	logCmd.Flags().StringVar(&logCategory, "category", "", "Session category (study, coding, project, reading)")
	logCmd.Flags().IntVar(&logMinutes, "minutes", 0, "Session length in minutes")
	logCmd.Flags().IntVar(&logDistractions, "distractions", 0, "Number of distractions during the session")
	logCmd.Flags().BoolVar(&logAbandoned, "abandoned", false, "Session was stopped before the timer finished")
	logCmd.Flags().StringVar(&logAt, "at", "", "Backfill time (natural language or 2006-01-02T15:04)")
	_ = logCmd.MarkFlagRequired("category")
	_ = logCmd.MarkFlagRequired("minutes")
}

func runLog(cmd *cobra.Command, args []string) error {
	if logMinutes <= 0 {
		return fmt.Errorf("minutes must be positive, got %d", logMinutes)
	}

	app, err := openApp()
	if err != nil {
		return err
	}
	defer func() {
		_ = app.Close()
	}()

	input := store.SessionInput{
		Category:         models.Category(logCategory),
		Duration:         logMinutes * 60,
		DistractionCount: logDistractions,
		Completed:        !logAbandoned,
	}

	if logAt != "" {
		at, err := parseWhen(logAt)
		if err != nil {
			return fmt.Errorf("could not parse --at %q: %w", logAt, err)
		}
		input.At = at
	}

	result, err := app.Recorder.Record(input)
	if err != nil {
		return fmt.Errorf("failed to record session: %w", err)
	}

	fmt.Println(renderCelebration(app.Config.CelebrationTemplate, result))

	for _, b := range result.Unlocked {
		fmt.Println(badgeStyle.Render(fmt.Sprintf("%s Badge unlocked: %s", b.Emoji, b.Name)))
		fmt.Println(dimStyle.Render("   " + b.Description))
	}

	return nil
}

// parseWhen parses natural language times ("yesterday 9pm") and falls
// back to common timestamp layouts.
func parseWhen(s string) (time.Time, error) {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)

	result, err := w.Parse(s, time.Now())
	if err == nil && result != nil {
		return result.Time, nil
	}

	formats := []string{
		"2006-01-02",
		"2006-01-02T15:04",
		"2006-01-02T15:04:05",
		time.RFC3339,
	}
	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time")
}

// renderCelebration fills the celebration template. A broken custom
// template falls back to a plain summary line.
func renderCelebration(template string, result engine.Result) string {
	sess := result.Session
	data := map[string]interface{}{
		"emoji":    sess.Category.Info().Emoji,
		"minutes":  sess.Minutes(),
		"category": sess.Category.Info().Label,
		"score":    sess.FocusScore,
	}
	if result.Streak.Current >= 2 {
		data["streak"] = result.Streak.Current
	}

	out, err := mustache.Render(template, data)
	if err != nil {
		return fmt.Sprintf("Logged %d min of %s. Focus score: %d/100.",
			sess.Minutes(), sess.Category.Info().Label, sess.FocusScore)
	}
	return out
}
