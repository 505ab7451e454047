package badge

import (
	"testing"
	"time"

	"github.com/ekaraman/focusflow/internal/core/models"
	"github.com/ekaraman/focusflow/internal/core/store"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

type fixture struct {
	sessions *store.SessionStore
	streaks  *store.StreakStore
	badges   *store.BadgeStore
	engine   *Engine
	clk      *fakeClock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	mem := store.NewMemory()
	clk := &fakeClock{now: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}
	sessions := store.NewSessionStore(mem, clk, time.UTC)
	streaks := store.NewStreakStore(mem)
	badges := store.NewBadgeStore(mem)
	return &fixture{
		sessions: sessions,
		streaks:  streaks,
		badges:   badges,
		engine:   New(sessions, streaks, badges, clk),
		clk:      clk,
	}
}

func (f *fixture) find(t *testing.T, id string) models.Badge {
	t.Helper()
	for _, b := range f.badges.Get() {
		if b.ID == id {
			return b
		}
	}
	t.Fatalf("badge %s not in catalog", id)
	return models.Badge{}
}

func (f *fixture) save(t *testing.T, in store.SessionInput) {
	t.Helper()
	if _, err := f.sessions.Save(in); err != nil {
		t.Fatal(err)
	}
}

func TestSessionsCountBadgeProgression(t *testing.T) {
	f := newFixture(t)

	for i := 0; i < 4; i++ {
		f.save(t, store.SessionInput{Category: models.CategoryCoding, Duration: 60, DistractionCount: 1, Completed: true})
		f.clk.now = f.clk.now.Add(time.Minute)
	}
	unlocked, err := f.engine.Evaluate()
	if err != nil {
		t.Fatal(err)
	}
	if len(unlocked) != 0 {
		t.Fatalf("unexpected unlocks after 4 sessions: %v", unlocked)
	}
	b := f.find(t, "first_5_sessions")
	if b.Unlocked || b.Progress != 4 {
		t.Errorf("after 4 sessions: unlocked=%v progress=%d, want locked progress=4", b.Unlocked, b.Progress)
	}

	// Fifth session unlocks it
	f.save(t, store.SessionInput{Category: models.CategoryCoding, Duration: 60, DistractionCount: 1, Completed: true})
	unlocked, err = f.engine.Evaluate()
	if err != nil {
		t.Fatal(err)
	}
	if len(unlocked) != 1 || unlocked[0].ID != "first_5_sessions" {
		t.Fatalf("unlocked = %v, want exactly first_5_sessions", unlocked)
	}

	b = f.find(t, "first_5_sessions")
	if !b.Unlocked || b.UnlockedDate == nil || b.Progress != 5 {
		t.Errorf("after 5 sessions: %+v, want unlocked with date and progress=5", b)
	}

	// Evaluating again never unlocks twice and never re-locks
	firstUnlockDate := *b.UnlockedDate
	f.clk.now = f.clk.now.Add(time.Hour)
	unlocked, err = f.engine.Evaluate()
	if err != nil {
		t.Fatal(err)
	}
	if len(unlocked) != 0 {
		t.Errorf("second evaluation reported unlocks: %v", unlocked)
	}
	b = f.find(t, "first_5_sessions")
	if !b.Unlocked || !b.UnlockedDate.Equal(firstUnlockDate) {
		t.Errorf("unlock state changed on re-evaluation: %+v", b)
	}
	if b.Progress != 5 {
		t.Errorf("progress = %d, want capped at target 5", b.Progress)
	}
}

func TestPerfectFocusBadge(t *testing.T) {
	f := newFixture(t)

	// Zero distractions but abandoned: no unlock
	f.save(t, store.SessionInput{Category: models.CategoryStudy, Duration: 600, DistractionCount: 0, Completed: false})
	if _, err := f.engine.Evaluate(); err != nil {
		t.Fatal(err)
	}
	if b := f.find(t, "perfect_focus"); b.Unlocked {
		t.Error("abandoned session must not unlock perfect_focus")
	}

	// Completed with zero distractions: unlock
	f.save(t, store.SessionInput{Category: models.CategoryStudy, Duration: 600, DistractionCount: 0, Completed: true})
	unlocked, err := f.engine.Evaluate()
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, b := range unlocked {
		if b.ID == "perfect_focus" {
			found = true
		}
	}
	if !found {
		t.Errorf("perfect_focus not in newly unlocked set: %v", unlocked)
	}
}

func TestStreakLengthBadge(t *testing.T) {
	f := newFixture(t)

	if err := f.streaks.Put(models.StreakState{Current: 7, LastDate: "2025-03-10", Best: 7}); err != nil {
		t.Fatal(err)
	}
	unlocked, err := f.engine.Evaluate()
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, b := range unlocked {
		if b.ID == "week_streak" {
			found = true
		}
	}
	if !found {
		t.Errorf("week_streak not unlocked at streak 7: %v", unlocked)
	}
}

func TestProgressTracksStandingAfterUnlock(t *testing.T) {
	f := newFixture(t)

	if err := f.streaks.Put(models.StreakState{Current: 9, LastDate: "2025-03-10", Best: 9}); err != nil {
		t.Fatal(err)
	}
	if _, err := f.engine.Evaluate(); err != nil {
		t.Fatal(err)
	}
	b := f.find(t, "week_streak")
	if b.Progress != b.Target {
		t.Errorf("progress = %d, want capped at target %d", b.Progress, b.Target)
	}
}
