package engine

import (
	"log/slog"
	"time"

	"github.com/ekaraman/focusflow/internal/core/badge"
	"github.com/ekaraman/focusflow/internal/core/clock"
	"github.com/ekaraman/focusflow/internal/core/config"
	"github.com/ekaraman/focusflow/internal/core/models"
	"github.com/ekaraman/focusflow/internal/core/report"
	"github.com/ekaraman/focusflow/internal/core/store"
	"github.com/ekaraman/focusflow/internal/core/streak"
)

// Result is everything a caller needs to present after recording a
// session: the stored session, the streak it produced, and any badges
// that unlocked because of it.
type Result struct {
	Session  models.Session
	Streak   models.StreakState
	Unlocked []models.Badge
}

// Recorder runs the record cascade: persist the session, update the
// streak, then re-evaluate badges. The session save is authoritative;
// a failure there aborts with an error. Failures in the follow-up
// steps are logged and swallowed so the recorded session is never
// reported as lost.
type Recorder struct {
	sessions *store.SessionStore
	tracker  *streak.Tracker
	badges   *badge.Engine
}

func NewRecorder(sessions *store.SessionStore, tracker *streak.Tracker, badges *badge.Engine) *Recorder {
	return &Recorder{sessions: sessions, tracker: tracker, badges: badges}
}

func (r *Recorder) Record(in store.SessionInput) (Result, error) {
	sess, err := r.sessions.Save(in)
	if err != nil {
		return Result{}, err
	}
	result := Result{Session: sess}

	state, err := r.tracker.Update()
	if err != nil {
		slog.Warn("streak update failed after session save", "error", err)
		return result, nil
	}
	result.Streak = state

	unlocked, err := r.badges.Evaluate()
	if err != nil {
		slog.Warn("badge evaluation failed after session save", "error", err)
		return result, nil
	}
	result.Unlocked = unlocked

	return result, nil
}

// App wires the full engine over one database handle.
type App struct {
	DB       *store.DB
	Config   *config.Config
	Sessions *store.SessionStore
	Goals    *store.GoalStore
	Streaks  *store.StreakStore
	Badges   *store.BadgeStore
	Tracker  *streak.Tracker
	Engine   *badge.Engine
	Reports  *report.Aggregator
	Recorder *Recorder
	Location *time.Location
}

// Open builds an App on the database at dbPath. An empty dbPath uses
// the default location under ~/.config/focusflow/.
func Open(dbPath string, cfg *config.Config) (*App, error) {
	if dbPath == "" {
		p, err := config.DefaultDBPath()
		if err != nil {
			return nil, err
		}
		dbPath = p
	}

	db, err := store.Open(dbPath)
	if err != nil {
		return nil, err
	}

	clk := clock.SystemClock{}
	loc := cfg.Location()

	goalFallback := store.DefaultDailyGoal
	if cfg.DailyGoalMinutes > 0 {
		goalFallback = cfg.DailyGoalMinutes
	}

	sessions := store.NewSessionStore(db, clk, loc)
	goals := store.NewGoalStore(db, goalFallback)
	streaks := store.NewStreakStore(db)
	badges := store.NewBadgeStore(db)
	tracker := streak.New(sessions, streaks, goals, clk, loc)
	badgeEngine := badge.New(sessions, streaks, badges, clk)

	return &App{
		DB:       db,
		Config:   cfg,
		Sessions: sessions,
		Goals:    goals,
		Streaks:  streaks,
		Badges:   badges,
		Tracker:  tracker,
		Engine:   badgeEngine,
		Reports:  report.New(sessions, goals, clk, loc),
		Recorder: NewRecorder(sessions, tracker, badgeEngine),
		Location: loc,
	}, nil
}

func (a *App) Close() error {
	return a.DB.Close()
}
