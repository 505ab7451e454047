package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ekaraman/focusflow/internal/core/config"
	"github.com/ekaraman/focusflow/internal/core/engine"
	"github.com/ekaraman/focusflow/internal/core/models"
	"github.com/ekaraman/focusflow/internal/core/store"
)

// RecordSessionArgs defines arguments for the record_session tool
type RecordSessionArgs struct {
	Category     string `json:"category" jsonschema:"description=Session category (study, coding, project, reading),required"`
	Minutes      int    `json:"minutes" jsonschema:"description=Session length in minutes,required"`
	Distractions int    `json:"distractions,omitempty" jsonschema:"description=Number of distractions during the session"`
	Abandoned    bool   `json:"abandoned,omitempty" jsonschema:"description=Session was stopped before the timer finished"`
}

// ListSessionsArgs defines arguments for the list_sessions tool
type ListSessionsArgs struct {
	Limit    int    `json:"limit,omitempty" jsonschema:"description=Max sessions to return (default: 20)"`
	Category string `json:"category,omitempty" jsonschema:"description=Filter by category"`
}

// RecordResult is returned by record_session
type RecordResult struct {
	SessionID    string   `json:"session_id"`
	FocusScore   int      `json:"focus_score"`
	StreakDays   int      `json:"streak_days"`
	BadgeUnlocks []string `json:"badge_unlocks"`
	TodayMinutes int      `json:"today_minutes"`
	GoalMinutes  int      `json:"goal_minutes"`
}

// SessionSummary represents one session in the list view
type SessionSummary struct {
	ID           string `json:"id"`
	Category     string `json:"category"`
	Minutes      int    `json:"minutes"`
	Distractions int    `json:"distractions"`
	Completed    bool   `json:"completed"`
	FocusScore   int    `json:"focus_score"`
	Date         string `json:"date"`
}

// BadgeStatus represents one badge in the list view
type BadgeStatus struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Unlocked     bool   `json:"unlocked"`
	Progress     int    `json:"progress"`
	Target       int    `json:"target"`
	UnlockedDate string `json:"unlocked_date,omitempty"`
}

// StartServer starts the MCP server
func StartServer(dbPath string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app, err := engine.Open(dbPath, cfg)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			log.Printf("Error closing database: %v", closeErr)
		}
	}()

	s := server.NewMCPServer(
		"FocusFlow",
		"1.0.0",
	)

	recordTool := mcp.NewTool("record_session",
		mcp.WithDescription("Record a finished focus session. Updates the daily streak and badge unlocks and returns the resulting focus score."),
		mcp.WithString("category",
			mcp.Required(),
			mcp.Description("Session category (study, coding, project, reading)")),
		mcp.WithNumber("minutes",
			mcp.Required(),
			mcp.Description("Session length in minutes")),
		mcp.WithNumber("distractions",
			mcp.Description("Number of distractions during the session")),
		mcp.WithBoolean("abandoned",
			mcp.Description("Session was stopped before the timer finished")),
	)
	s.AddTool(recordTool, makeRecordSessionHandler(app))

	reportTool := mcp.NewTool("get_report",
		mcp.WithDescription("Get focus statistics: today's progress, weekly totals, category breakdown, and the best focus window"),
	)
	s.AddTool(reportTool, makeGetReportHandler(app))

	streakTool := mcp.NewTool("get_streak",
		mcp.WithDescription("Get the current daily-goal streak, the best streak, and today's progress toward the goal"),
	)
	s.AddTool(streakTool, makeGetStreakHandler(app))

	badgesTool := mcp.NewTool("list_badges",
		mcp.WithDescription("List all badges with unlock state and progress"),
	)
	s.AddTool(badgesTool, makeListBadgesHandler(app))

	sessionsTool := mcp.NewTool("list_sessions",
		mcp.WithDescription("List logged focus sessions, newest first, optionally filtered by category"),
		mcp.WithNumber("limit",
			mcp.Description("Max sessions to return (default: 20)")),
		mcp.WithString("category",
			mcp.Description("Filter by category")),
	)
	s.AddTool(sessionsTool, makeListSessionsHandler(app))

	return server.ServeStdio(s)
}

func makeRecordSessionHandler(app *engine.App) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args RecordSessionArgs
		argsBytes, _ := json.Marshal(request.Params.Arguments)
		if err := json.Unmarshal(argsBytes, &args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		if args.Minutes <= 0 {
			return mcp.NewToolResultError("minutes must be positive"), nil
		}

		result, err := app.Recorder.Record(store.SessionInput{
			Category:         models.Category(args.Category),
			Duration:         args.Minutes * 60,
			DistractionCount: args.Distractions,
			Completed:        !args.Abandoned,
		})
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("record failed: %v", err)), nil
		}

		summary := app.Reports.Summary()
		out := RecordResult{
			SessionID:    result.Session.ID,
			FocusScore:   result.Session.FocusScore,
			StreakDays:   result.Streak.Current,
			BadgeUnlocks: []string{},
			TodayMinutes: summary.TodayMinutes,
			GoalMinutes:  summary.GoalMinutes,
		}
		for _, b := range result.Unlocked {
			out.BadgeUnlocks = append(out.BadgeUnlocks, b.Name)
		}

		resultJSON, err := json.Marshal(out)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
		}
		return mcp.NewToolResultText(string(resultJSON)), nil
	}
}

func makeGetReportHandler(app *engine.App) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		summary := app.Reports.Summary()

		weekly := []map[string]interface{}{}
		for _, day := range app.Reports.Weekly() {
			weekly = append(weekly, map[string]interface{}{
				"day":     day.Day.Format("2006-01-02"),
				"minutes": day.Minutes,
			})
		}

		categories := []map[string]interface{}{}
		for _, c := range app.Reports.Categories() {
			categories = append(categories, map[string]interface{}{
				"category": string(c.Category),
				"minutes":  c.Minutes,
				"share":    c.Share,
			})
		}

		report := map[string]interface{}{
			"today_minutes":      summary.TodayMinutes,
			"goal_minutes":       summary.GoalMinutes,
			"all_time_minutes":   summary.AllTimeMinutes,
			"total_sessions":     summary.TotalSessions,
			"total_distractions": summary.TotalDistractions,
			"weekly":             weekly,
			"categories":         categories,
		}
		if best, ok := app.Reports.BestHour(); ok {
			report["best_hour"] = best.Hour
			report["best_hour_mean_distractions"] = best.MeanDistractions
		}

		resultJSON, err := json.Marshal(report)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
		}
		return mcp.NewToolResultText(string(resultJSON)), nil
	}
}

func makeGetStreakHandler(app *engine.App) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		state := app.Streaks.Get()
		resultJSON, err := json.Marshal(map[string]interface{}{
			"current":       state.Current,
			"best":          state.Best,
			"last_date":     state.LastDate,
			"today_minutes": app.Tracker.TodayMinutes(),
			"goal_minutes":  app.Goals.Get(),
		})
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
		}
		return mcp.NewToolResultText(string(resultJSON)), nil
	}
}

func makeListBadgesHandler(app *engine.App) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		// Refresh progress before listing
		if _, err := app.Engine.Evaluate(); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("evaluation failed: %v", err)), nil
		}

		var badges []BadgeStatus
		for _, b := range app.Badges.Get() {
			status := BadgeStatus{
				ID:       b.ID,
				Name:     b.Name,
				Unlocked: b.Unlocked,
				Progress: b.Progress,
				Target:   b.Target,
			}
			if b.UnlockedDate != nil {
				status.UnlockedDate = b.UnlockedDate.Format("2006-01-02")
			}
			badges = append(badges, status)
		}

		resultJSON, err := json.Marshal(map[string]interface{}{
			"badges": badges,
		})
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to marshal results: %v", err)), nil
		}
		return mcp.NewToolResultText(string(resultJSON)), nil
	}
}

func makeListSessionsHandler(app *engine.App) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args ListSessionsArgs
		argsBytes, _ := json.Marshal(request.Params.Arguments)
		if err := json.Unmarshal(argsBytes, &args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		limit := args.Limit
		if limit == 0 {
			limit = 20
		}

		var sessions []SessionSummary
		for _, s := range app.Sessions.All() {
			if args.Category != "" && s.Category != models.Category(args.Category) {
				continue
			}
			sessions = append(sessions, SessionSummary{
				ID:           s.ID,
				Category:     string(s.Category),
				Minutes:      s.Minutes(),
				Distractions: s.DistractionCount,
				Completed:    s.Completed,
				FocusScore:   s.FocusScore,
				Date:         s.Date.Format("2006-01-02 15:04:05"),
			})
			if len(sessions) >= limit {
				break
			}
		}

		resultJSON, err := json.Marshal(map[string]interface{}{
			"sessions": sessions,
		})
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to marshal results: %v", err)), nil
		}
		return mcp.NewToolResultText(string(resultJSON)), nil
	}
}
