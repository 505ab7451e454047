package report

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
	agg      *Aggregator
	clk      *fakeClock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	mem := store.NewMemory()
	clk := &fakeClock{now: time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)}
	sessions := store.NewSessionStore(mem, clk, time.UTC)
	goals := store.NewGoalStore(mem, store.DefaultDailyGoal)
	return &fixture{
		sessions: sessions,
		agg:      New(sessions, goals, clk, time.UTC),
		clk:      clk,
	}
}

func (f *fixture) save(t *testing.T, in store.SessionInput) {
	t.Helper()
	if _, err := f.sessions.Save(in); err != nil {
		t.Fatal(err)
	}
}

func TestSummary(t *testing.T) {
	f := newFixture(t)

	// Yesterday: 40 minutes. Today: 25 + 15 minutes.
	f.save(t, store.SessionInput{Category: models.CategoryCoding, Duration: 2400, DistractionCount: 2, Completed: true, At: f.clk.now.AddDate(0, 0, -1)})
	f.save(t, store.SessionInput{Category: models.CategoryCoding, Duration: 1500, DistractionCount: 1, Completed: true})
	f.save(t, store.SessionInput{Category: models.CategoryStudy, Duration: 900, Completed: false})

	s := f.agg.Summary()
	if s.TodayMinutes != 40 {
		t.Errorf("TodayMinutes = %d, want 40", s.TodayMinutes)
	}
	if s.AllTimeMinutes != 80 {
		t.Errorf("AllTimeMinutes = %d, want 80", s.AllTimeMinutes)
	}
	if s.TotalSessions != 3 {
		t.Errorf("TotalSessions = %d, want 3", s.TotalSessions)
	}
	if s.TotalDistractions != 3 {
		t.Errorf("TotalDistractions = %d, want 3", s.TotalDistractions)
	}
	if s.AverageSessionMinutes != 26 {
		t.Errorf("AverageSessionMinutes = %d, want 26", s.AverageSessionMinutes)
	}
	if s.GoalMinutes != store.DefaultDailyGoal {
		t.Errorf("GoalMinutes = %d, want default %d", s.GoalMinutes, store.DefaultDailyGoal)
	}
}

func TestWeeklyZeroFillsEmptyDays(t *testing.T) {
	f := newFixture(t)

	f.save(t, store.SessionInput{Category: models.CategoryCoding, Duration: 1800, Completed: true, At: f.clk.now.AddDate(0, 0, -2)})
	f.save(t, store.SessionInput{Category: models.CategoryCoding, Duration: 2700, Completed: true})

	week := f.agg.Weekly()
	if len(week) != 7 {
		t.Fatalf("len(Weekly()) = %d, want 7", len(week))
	}
	for i, day := range week {
		want := 0
		switch i {
		case 4:
			want = 30
		case 6:
			want = 45
		}
		if day.Minutes != want {
			t.Errorf("day[%d] (%s) minutes = %d, want %d", i, day.Day.Format("2006-01-02"), day.Minutes, want)
		}
	}
	if !week[6].Day.Equal(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("last bucket = %v, want today's midnight", week[6].Day)
	}
}

func TestMostProductiveDay(t *testing.T) {
	f := newFixture(t)

	if _, ok := f.agg.MostProductiveDay(); ok {
		t.Error("empty week reported a most productive day")
	}

	f.save(t, store.SessionInput{Category: models.CategoryReading, Duration: 600, Completed: true, At: f.clk.now.AddDate(0, 0, -3)})
	f.save(t, store.SessionInput{Category: models.CategoryReading, Duration: 3600, Completed: true, At: f.clk.now.AddDate(0, 0, -1)})

	best, ok := f.agg.MostProductiveDay()
	if !ok {
		t.Fatal("MostProductiveDay() reported no data")
	}
	if best.Minutes != 60 {
		t.Errorf("best.Minutes = %d, want 60", best.Minutes)
	}
	if !best.Day.Equal(time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("best.Day = %v, want 2025-03-09", best.Day)
	}
}

func TestCategoriesBreakdown(t *testing.T) {
	f := newFixture(t)

	f.save(t, store.SessionInput{Category: models.CategoryCoding, Duration: 3600, Completed: true})
	f.save(t, store.SessionInput{Category: models.CategoryStudy, Duration: 1800, Completed: true})

	breakdown := f.agg.Categories()
	if len(breakdown) != 2 {
		t.Fatalf("len = %d, want 2", len(breakdown))
	}
	if breakdown[0].Category != models.CategoryCoding || breakdown[0].Minutes != 60 {
		t.Errorf("top category = %+v, want coding with 60 minutes", breakdown[0])
	}
	if got := breakdown[0].Share; got < 0.66 || got > 0.67 {
		t.Errorf("coding share = %f, want ~2/3", got)
	}
	if breakdown[1].Info.Label != "Study" {
		t.Errorf("study label = %q, want from catalog", breakdown[1].Info.Label)
	}

	fav, ok := f.agg.FavoriteCategory()
	if !ok || fav.Category != models.CategoryCoding {
		t.Errorf("FavoriteCategory() = %+v ok=%v, want coding", fav, ok)
	}
}

func TestBestHourRequiresThreeSessions(t *testing.T) {
	f := newFixture(t)

	at := func(hour, n int) time.Time {
		return time.Date(2025, 3, 1+n, hour, 5, 0, 0, time.UTC)
	}

	// Only two sessions at 06:00, perfectly focused but below the floor.
	for n := 0; n < 2; n++ {
		f.save(t, store.SessionInput{Category: models.CategoryCoding, Duration: 1500, Completed: true, At: at(6, n)})
	}

	if _, ok := f.agg.BestHour(); ok {
		t.Error("BestHour() returned a window with no hour above the floor")
	}

	// Three sessions at 09:00 averaging one distraction, three at 14:00
	// averaging three.
	for n, d := range []int{0, 1, 2} {
		f.save(t, store.SessionInput{Category: models.CategoryCoding, Duration: 1500, DistractionCount: d, Completed: true, At: at(9, n)})
	}
	for n := 0; n < 3; n++ {
		f.save(t, store.SessionInput{Category: models.CategoryCoding, Duration: 1500, DistractionCount: 3, Completed: true, At: at(14, n)})
	}

	best, ok := f.agg.BestHour()
	if !ok {
		t.Fatal("BestHour() reported no data")
	}
	if best.Hour != 9 {
		t.Errorf("best hour = %d, want 9", best.Hour)
	}
	if best.MeanDistractions != 1.0 {
		t.Errorf("mean distractions = %f, want 1.0", best.MeanDistractions)
	}
	if best.Sessions != 3 {
		t.Errorf("sessions = %d, want 3", best.Sessions)
	}
}
