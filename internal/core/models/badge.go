package models

import "time"

// Requirement discriminates how a badge's unlock condition is measured.
type Requirement string

const (
	// RequirementSessions unlocks once the total session count reaches Target.
	RequirementSessions Requirement = "sessions-count"
	// RequirementStreak unlocks once the current streak reaches Target days.
	RequirementStreak Requirement = "streak-length"
	// RequirementPerfectSession unlocks once a completed session with zero
	// distractions exists.
	RequirementPerfectSession Requirement = "zero-distraction-session"
)

// Badge is a one-way achievement flag. The unlock transition happens at
// most once; Progress is display-only and recomputed on every evaluation.
type Badge struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	Emoji        string      `json:"emoji"`
	Requirement  Requirement `json:"requirement"`
	Target       int         `json:"target"`
	Unlocked     bool        `json:"unlocked"`
	UnlockedDate *time.Time  `json:"unlockedDate,omitempty"`
	Progress     int         `json:"progress"`
}

// BadgeCatalog returns the fixed badge definitions in display order,
// all locked. Persisted unlock state is merged over this catalog on load.
func BadgeCatalog() []Badge {
	return []Badge{
		{
			ID:          "first_5_sessions",
			Name:        "Getting Started",
			Description: "Complete 5 focus sessions",
			Emoji:       "🎖️",
			Requirement: RequirementSessions,
			Target:      5,
		},
		{
			ID:          "focus_marathon",
			Name:        "Focus Marathon",
			Description: "Complete 25 focus sessions",
			Emoji:       "🏃",
			Requirement: RequirementSessions,
			Target:      25,
		},
		{
			ID:          "week_streak",
			Name:        "Week Streak",
			Description: "Meet your daily goal 7 days in a row",
			Emoji:       "🔥",
			Requirement: RequirementStreak,
			Target:      7,
		},
		{
			ID:          "perfect_focus",
			Name:        "Perfect Focus",
			Description: "Finish a session with zero distractions",
			Emoji:       "🎯",
			Requirement: RequirementPerfectSession,
			Target:      1,
		},
	}
}
