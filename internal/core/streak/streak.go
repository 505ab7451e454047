package streak

import (
	"time"

	"github.com/ekaraman/focusflow/internal/core/clock"
	"github.com/ekaraman/focusflow/internal/core/models"
	"github.com/ekaraman/focusflow/internal/core/store"
)

// Tracker maintains the consecutive-day counter over the daily goal.
// A day counts once its focused minutes reach the goal; a missed day is
// only detected lazily, the next time the goal is met again.
type Tracker struct {
	sessions *store.SessionStore
	streaks  *store.StreakStore
	goals    *store.GoalStore
	clock    clock.Clock
	loc      *time.Location
}

func New(sessions *store.SessionStore, streaks *store.StreakStore, goals *store.GoalStore, clk clock.Clock, loc *time.Location) *Tracker {
	return &Tracker{sessions: sessions, streaks: streaks, goals: goals, clock: clk, loc: loc}
}

// TodayMinutes sums today's focused minutes, floored per session.
func (t *Tracker) TodayMinutes() int {
	minutes := 0
	for _, s := range t.sessions.Today() {
		minutes += s.Minutes()
	}
	return minutes
}

// Update re-evaluates the streak after a session save. When today's goal
// is not (yet) met the state is left untouched: an unfinished day never
// decrements the streak.
func (t *Tracker) Update() (models.StreakState, error) {
	state := t.streaks.Get()

	if t.TodayMinutes() < t.goals.Get() {
		return state, nil
	}

	now := t.clock.Now()
	today := clock.DayKey(now, t.loc)
	yesterday := clock.DayKey(now.AddDate(0, 0, -1), t.loc)

	switch state.LastDate {
	case today:
		// Goal re-confirmed by a later session the same day; no double count.
	case yesterday:
		state.Current++
	default:
		// First qualifying day ever, or a gap since the last one.
		state.Current = 1
	}
	state.LastDate = today
	if state.Current > state.Best {
		state.Best = state.Current
	}

	if err := t.streaks.Put(state); err != nil {
		return state, err
	}
	return state, nil
}
