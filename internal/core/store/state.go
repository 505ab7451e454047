package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/ekaraman/focusflow/internal/core/models"
)

// DefaultDailyGoal is the daily focused-minutes target used until the
// user configures one.
const DefaultDailyGoal = 120

// GoalStore persists the user-configurable daily goal in minutes.
type GoalStore struct {
	kv       KV
	fallback int
}

func NewGoalStore(kv KV, fallback int) *GoalStore {
	if fallback <= 0 {
		fallback = DefaultDailyGoal
	}
	return &GoalStore{kv: kv, fallback: fallback}
}

// Get returns the configured goal, or the fallback if unset or unreadable.
func (g *GoalStore) Get() int {
	raw, ok, err := g.kv.Get(goalKey)
	if err != nil {
		slog.Warn("daily goal unreadable, using fallback", "error", err)
		return g.fallback
	}
	if !ok {
		return g.fallback
	}
	minutes, err := strconv.Atoi(raw)
	if err != nil || minutes <= 0 {
		slog.Warn("daily goal corrupt, using fallback", "value", raw)
		return g.fallback
	}
	return minutes
}

// Set stores a new goal. The goal must be positive.
func (g *GoalStore) Set(minutes int) error {
	if minutes <= 0 {
		return fmt.Errorf("daily goal must be positive, got %d", minutes)
	}
	if err := g.kv.Set(goalKey, strconv.Itoa(minutes)); err != nil {
		return fmt.Errorf("persist daily goal: %w", err)
	}
	return nil
}

// StreakStore persists the singleton streak state.
type StreakStore struct {
	kv KV
}

func NewStreakStore(kv KV) *StreakStore {
	return &StreakStore{kv: kv}
}

// Get returns the persisted streak state, or the zero state if absent
// or unreadable.
func (s *StreakStore) Get() models.StreakState {
	raw, ok, err := s.kv.Get(streakKey)
	if err != nil {
		slog.Warn("streak state unreadable, treating as empty", "error", err)
		return models.StreakState{}
	}
	if !ok {
		return models.StreakState{}
	}
	var state models.StreakState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		slog.Warn("streak state corrupt, treating as empty", "error", err)
		return models.StreakState{}
	}
	return state
}

// Put persists the streak state.
func (s *StreakStore) Put(state models.StreakState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode streak state: %w", err)
	}
	if err := s.kv.Set(streakKey, string(data)); err != nil {
		return fmt.Errorf("persist streak state: %w", err)
	}
	return nil
}

// BadgeStore persists the badge catalog with its unlock state.
type BadgeStore struct {
	kv KV
}

func NewBadgeStore(kv KV) *BadgeStore {
	return &BadgeStore{kv: kv}
}

// Get returns the badge list. The stored unlock state is merged over
// the current catalog so new badge definitions appear locked and stale
// entries for removed definitions are dropped.
func (b *BadgeStore) Get() []models.Badge {
	catalog := models.BadgeCatalog()

	raw, ok, err := b.kv.Get(badgesKey)
	if err != nil {
		slog.Warn("badge state unreadable, using fresh catalog", "error", err)
		return catalog
	}
	if !ok {
		return catalog
	}
	var stored []models.Badge
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		slog.Warn("badge state corrupt, using fresh catalog", "error", err)
		return catalog
	}

	byID := make(map[string]models.Badge, len(stored))
	for _, badge := range stored {
		byID[badge.ID] = badge
	}
	for i := range catalog {
		if prev, ok := byID[catalog[i].ID]; ok {
			catalog[i].Unlocked = prev.Unlocked
			catalog[i].UnlockedDate = prev.UnlockedDate
			catalog[i].Progress = prev.Progress
		}
	}
	return catalog
}

// Put persists the badge list.
func (b *BadgeStore) Put(badges []models.Badge) error {
	data, err := json.Marshal(badges)
	if err != nil {
		return fmt.Errorf("encode badges: %w", err)
	}
	if err := b.kv.Set(badgesKey, string(data)); err != nil {
		return fmt.Errorf("persist badges: %w", err)
	}
	return nil
}
