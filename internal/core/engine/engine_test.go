package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/ekaraman/focusflow/internal/core/badge"
	"github.com/ekaraman/focusflow/internal/core/models"
	"github.com/ekaraman/focusflow/internal/core/store"
	"github.com/ekaraman/focusflow/internal/core/streak"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

type fixture struct {
	mem      *store.Memory
	recorder *Recorder
	streaks  *store.StreakStore
	badges   *store.BadgeStore
	clk      *fakeClock
}

func newFixture(t *testing.T, goalMinutes int) *fixture {
	t.Helper()
	mem := store.NewMemory()
	clk := &fakeClock{now: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}
	sessions := store.NewSessionStore(mem, clk, time.UTC)
	goals := store.NewGoalStore(mem, goalMinutes)
	streaks := store.NewStreakStore(mem)
	badges := store.NewBadgeStore(mem)
	tracker := streak.New(sessions, streaks, goals, clk, time.UTC)
	return &fixture{
		mem:      mem,
		recorder: NewRecorder(sessions, tracker, badge.New(sessions, streaks, badges, clk)),
		streaks:  streaks,
		badges:   badges,
		clk:      clk,
	}
}

func TestRecordRunsFullCascade(t *testing.T) {
	f := newFixture(t, 25)

	result, err := f.recorder.Record(store.SessionInput{
		Category:  models.CategoryCoding,
		Duration:  1500,
		Completed: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if result.Session.FocusScore != 100 {
		t.Errorf("focus score = %d, want 100", result.Session.FocusScore)
	}
	if result.Streak.Current != 1 {
		t.Errorf("streak = %d, want 1 (25 min meets the goal)", result.Streak.Current)
	}

	// A completed zero-distraction session unlocks perfect_focus in the
	// same cascade.
	found := false
	for _, b := range result.Unlocked {
		if b.ID == "perfect_focus" {
			found = true
		}
	}
	if !found {
		t.Errorf("unlocked = %v, want perfect_focus", result.Unlocked)
	}
}

func TestRecordPropagatesSaveFailure(t *testing.T) {
	f := newFixture(t, 25)
	f.mem.SetHook = func(key string) error {
		if key == "@focus_sessions" {
			return errors.New("disk full")
		}
		return nil
	}

	_, err := f.recorder.Record(store.SessionInput{
		Category:  models.CategoryStudy,
		Duration:  1500,
		Completed: true,
	})
	if err == nil {
		t.Fatal("expected save failure to propagate")
	}
}

func TestRecordHaltsCascadeOnStreakFailure(t *testing.T) {
	f := newFixture(t, 25)
	f.mem.SetHook = func(key string) error {
		if key == "@streak_state" {
			return errors.New("write denied")
		}
		return nil
	}

	result, err := f.recorder.Record(store.SessionInput{
		Category:  models.CategoryCoding,
		Duration:  1500,
		Completed: true,
	})
	if err != nil {
		t.Fatalf("streak failure must not surface as an error: %v", err)
	}
	if result.Session.ID == "" {
		t.Error("session must still be returned")
	}
	// Badges were never evaluated: perfect_focus stays locked.
	for _, b := range f.badges.Get() {
		if b.Unlocked {
			t.Errorf("badge %s unlocked despite halted cascade", b.ID)
		}
	}
}

func TestRecordSwallowsBadgeFailure(t *testing.T) {
	f := newFixture(t, 25)
	f.mem.SetHook = func(key string) error {
		if key == "@badges" {
			return errors.New("write denied")
		}
		return nil
	}

	result, err := f.recorder.Record(store.SessionInput{
		Category:  models.CategoryCoding,
		Duration:  1500,
		Completed: true,
	})
	if err != nil {
		t.Fatalf("badge failure must not surface as an error: %v", err)
	}
	if result.Streak.Current != 1 {
		t.Errorf("streak = %d, want 1 (streak step completed)", result.Streak.Current)
	}
	if len(result.Unlocked) != 0 {
		t.Errorf("unlocked = %v, want none after failed evaluation", result.Unlocked)
	}
}
