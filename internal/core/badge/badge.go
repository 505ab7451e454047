package badge

import (
	"github.com/ekaraman/focusflow/internal/core/clock"
	"github.com/ekaraman/focusflow/internal/core/models"
	"github.com/ekaraman/focusflow/internal/core/store"
)

// Engine evaluates the badge catalog against accumulated sessions and
// streak state. Unlocks are one-way and idempotent.
type Engine struct {
	sessions *store.SessionStore
	streaks  *store.StreakStore
	badges   *store.BadgeStore
	clock    clock.Clock
}

func New(sessions *store.SessionStore, streaks *store.StreakStore, badges *store.BadgeStore, clk clock.Clock) *Engine {
	return &Engine{sessions: sessions, streaks: streaks, badges: badges, clock: clk}
}

// Evaluate runs one unlock pass and refreshes display progress for every
// badge, unlocked or not. It returns the badges that transitioned to
// unlocked during this pass.
func (e *Engine) Evaluate() ([]models.Badge, error) {
	badges := e.badges.Get()
	sessions := e.sessions.All()
	streak := e.streaks.Get()

	perfect := 0
	for _, s := range sessions {
		if s.DistractionCount == 0 && s.Completed {
			perfect++
		}
	}

	standing := func(b models.Badge) int {
		switch b.Requirement {
		case models.RequirementSessions:
			return len(sessions)
		case models.RequirementStreak:
			return streak.Current
		case models.RequirementPerfectSession:
			return perfect
		}
		return 0
	}

	var unlocked []models.Badge
	for i := range badges {
		b := &badges[i]
		value := standing(*b)

		newlyUnlocked := !b.Unlocked && value >= b.Target
		if newlyUnlocked {
			b.Unlocked = true
			now := e.clock.Now()
			b.UnlockedDate = &now
		}

		// Progress is display-only, capped at the target even after unlock.
		b.Progress = value
		if b.Progress > b.Target {
			b.Progress = b.Target
		}

		if newlyUnlocked {
			unlocked = append(unlocked, *b)
		}
	}

	if err := e.badges.Put(badges); err != nil {
		return nil, err
	}
	return unlocked, nil
}
