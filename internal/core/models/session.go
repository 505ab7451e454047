package models

import (
	"errors"
	"fmt"
	"time"
)

// Category classifies what a focus session was spent on.
type Category string

const (
	CategoryStudy   Category = "study"
	CategoryCoding  Category = "coding"
	CategoryProject Category = "project"
	CategoryReading Category = "reading"
)

// CategoryInfo carries the display attributes for a category.
type CategoryInfo struct {
	Label string
	Emoji string
	Color string // hex, mapped to a terminal color at render time
}

var categoryCatalog = map[Category]CategoryInfo{
	CategoryStudy:   {Label: "Study", Emoji: "📚", Color: "#3b82f6"},
	CategoryCoding:  {Label: "Coding", Emoji: "💻", Color: "#8b5cf6"},
	CategoryProject: {Label: "Project", Emoji: "🎯", Color: "#ec4899"},
	CategoryReading: {Label: "Reading", Emoji: "📖", Color: "#10b981"},
}

// FallbackCategoryInfo is used for categories not in the catalog, e.g.
// data written by an older or newer version of the app.
var FallbackCategoryInfo = CategoryInfo{Label: "Other", Emoji: "📊", Color: "#6b7280"}

// Categories returns the closed category set in display order.
func Categories() []Category {
	return []Category{CategoryStudy, CategoryCoding, CategoryProject, CategoryReading}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := categoryCatalog[c]
	return ok
}

// Info returns display attributes for c, falling back to a generic
// label and color for unknown categories.
func (c Category) Info() CategoryInfo {
	if info, ok := categoryCatalog[c]; ok {
		return info
	}
	return FallbackCategoryInfo
}

// Session is one completed or abandoned focus-timer run. Sessions are
// immutable once saved; they are only ever bulk-cleared.
type Session struct {
	ID               string    `json:"id"`
	Category         Category  `json:"category"`
	Duration         int       `json:"duration"` // focused seconds
	DistractionCount int       `json:"distractionCount"`
	Completed        bool      `json:"completed"`
	FocusScore       int       `json:"focusScore"`
	Date             time.Time `json:"date"`
}

// Minutes returns the focused duration in whole minutes, floored.
func (s *Session) Minutes() int {
	return s.Duration / 60
}

// Validate checks the session invariants before it is persisted.
func (s *Session) Validate() error {
	if s.ID == "" {
		return errors.New("id is required")
	}
	if !s.Category.Valid() {
		return fmt.Errorf("unknown category %q", s.Category)
	}
	if s.Duration < 0 {
		return errors.New("duration must not be negative")
	}
	if s.DistractionCount < 0 {
		return errors.New("distraction count must not be negative")
	}
	if s.FocusScore < 0 || s.FocusScore > 100 {
		return fmt.Errorf("focus score %d out of range", s.FocusScore)
	}
	return nil
}
