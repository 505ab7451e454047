package report

import (
	"sort"
	"time"

	"github.com/ekaraman/focusflow/internal/core/clock"
	"github.com/ekaraman/focusflow/internal/core/models"
	"github.com/ekaraman/focusflow/internal/core/store"
)

// Aggregator derives read-only views from the session log. It holds no
// state of its own; every call recomputes from the store.
type Aggregator struct {
	sessions *store.SessionStore
	goals    *store.GoalStore
	clock    clock.Clock
	loc      *time.Location
}

func New(sessions *store.SessionStore, goals *store.GoalStore, clk clock.Clock, loc *time.Location) *Aggregator {
	return &Aggregator{sessions: sessions, goals: goals, clock: clk, loc: loc}
}

// Summary is the headline statistics block.
type Summary struct {
	TodayMinutes          int
	GoalMinutes           int
	AllTimeMinutes        int
	TotalSessions         int
	TotalDistractions     int
	AverageSessionMinutes int
}

// DayTotal is one bucket of the weekly series.
type DayTotal struct {
	Day     time.Time // midnight in the aggregator's location
	Minutes int
}

// CategoryTotal is one slice of the category breakdown.
type CategoryTotal struct {
	Category models.Category
	Info     models.CategoryInfo
	Minutes  int
	Share    float64 // of all-time minutes, 0..1
}

// HourWindow is the recommended focus window derived from per-hour
// distraction averages.
type HourWindow struct {
	Hour             int // 0-23, local time
	MeanDistractions float64
	Sessions         int
}

// minSessionsPerHour is the statistical floor: hours with fewer
// sessions are too noisy to recommend.
const minSessionsPerHour = 3

func sumMinutes(sessions []models.Session) int {
	minutes := 0
	for _, s := range sessions {
		minutes += s.Minutes()
	}
	return minutes
}

// Summary computes the headline totals.
func (a *Aggregator) Summary() Summary {
	all := a.sessions.All()

	s := Summary{
		TodayMinutes:   sumMinutes(a.sessions.Today()),
		GoalMinutes:    a.goals.Get(),
		AllTimeMinutes: sumMinutes(all),
		TotalSessions:  len(all),
	}
	for _, sess := range all {
		s.TotalDistractions += sess.DistractionCount
	}
	if len(all) > 0 {
		s.AverageSessionMinutes = s.AllTimeMinutes / len(all)
	}
	return s
}

// Weekly returns the last 7 calendar days, oldest first, zero-filled.
func (a *Aggregator) Weekly() []DayTotal {
	now := a.clock.Now()
	recent := a.sessions.LastNDays(7)

	series := make([]DayTotal, 0, 7)
	for i := 6; i >= 0; i-- {
		day := clock.DayOf(now.AddDate(0, 0, -i), a.loc)
		total := DayTotal{Day: day}
		for _, s := range recent {
			if clock.SameDay(s.Date, day, a.loc) {
				total.Minutes += s.Minutes()
			}
		}
		series = append(series, total)
	}
	return series
}

// MostProductiveDay returns the weekly bucket with the most minutes, or
// ok=false when the whole week is empty.
func (a *Aggregator) MostProductiveDay() (DayTotal, bool) {
	var best DayTotal
	for _, day := range a.Weekly() {
		if day.Minutes > best.Minutes {
			best = day
		}
	}
	return best, best.Minutes > 0
}

// Categories returns the all-time per-category breakdown, most minutes
// first. Categories with no sessions are omitted; unknown categories
// keep their raw name but use the fallback display attributes.
func (a *Aggregator) Categories() []CategoryTotal {
	all := a.sessions.All()
	totals := make(map[models.Category]int)
	for _, s := range all {
		totals[s.Category] += s.Minutes()
	}

	allTime := sumMinutes(all)
	breakdown := make([]CategoryTotal, 0, len(totals))
	for category, minutes := range totals {
		total := CategoryTotal{
			Category: category,
			Info:     category.Info(),
			Minutes:  minutes,
		}
		if allTime > 0 {
			total.Share = float64(minutes) / float64(allTime)
		}
		breakdown = append(breakdown, total)
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Minutes != breakdown[j].Minutes {
			return breakdown[i].Minutes > breakdown[j].Minutes
		}
		return breakdown[i].Category < breakdown[j].Category
	})
	return breakdown
}

// FavoriteCategory returns the category with the most all-time minutes,
// or ok=false when no sessions exist.
func (a *Aggregator) FavoriteCategory() (CategoryTotal, bool) {
	breakdown := a.Categories()
	if len(breakdown) == 0 {
		return CategoryTotal{}, false
	}
	return breakdown[0], true
}

// BestHour finds the hour of day with the lowest mean distraction count,
// considering only hours with at least minSessionsPerHour sessions. The
// suggested focus window is the returned hour plus two hours.
func (a *Aggregator) BestHour() (HourWindow, bool) {
	var counts, distractions [24]int
	for _, s := range a.sessions.All() {
		hour := s.Date.In(a.loc).Hour()
		counts[hour]++
		distractions[hour] += s.DistractionCount
	}

	best := HourWindow{Hour: -1}
	for hour := 0; hour < 24; hour++ {
		if counts[hour] < minSessionsPerHour {
			continue
		}
		mean := float64(distractions[hour]) / float64(counts[hour])
		if best.Hour == -1 || mean < best.MeanDistractions {
			best = HourWindow{Hour: hour, MeanDistractions: mean, Sessions: counts[hour]}
		}
	}
	if best.Hour == -1 {
		return HourWindow{}, false
	}
	return best, true
}
