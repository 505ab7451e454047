package models

// StreakState tracks consecutive days on which the daily goal was met.
// LastDate is the calendar day (YYYY-MM-DD) last counted toward the
// streak, empty until a first qualifying day exists. Best only grows.
type StreakState struct {
	Current  int    `json:"current"`
	LastDate string `json:"lastDate,omitempty"`
	Best     int    `json:"best"`
}
