package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"time"

	"github.com/ekaraman/focusflow/internal/core/clock"
	"github.com/ekaraman/focusflow/internal/core/models"
)

// Persisted state layout: one JSON document per key.
const (
	sessionsKey = "@focus_sessions"
	goalKey     = "@daily_goal"
	streakKey   = "@streak_state"
	badgesKey   = "@badges"
)

// SessionStore persists the append-only session log, newest first.
type SessionStore struct {
	kv    KV
	clock clock.Clock
	loc   *time.Location
}

func NewSessionStore(kv KV, clk clock.Clock, loc *time.Location) *SessionStore {
	return &SessionStore{kv: kv, clock: clk, loc: loc}
}

// SessionInput is the caller-supplied part of a session. The store
// stamps the id, completion date, and focus score on save.
type SessionInput struct {
	Category         models.Category
	Duration         int // focused seconds
	DistractionCount int
	Completed        bool
	// At overrides the completion time for backfilled sessions.
	// Zero means "now".
	At time.Time
}

// Save computes the focus score, stamps id and date, prepends the session
// to the persisted log, and writes the whole log back. Write failures
// propagate: a session that could not be persisted is not recorded.
func (s *SessionStore) Save(in SessionInput) (models.Session, error) {
	existing := s.All()

	date := in.At
	backfilled := !date.IsZero()
	if !backfilled {
		date = s.clock.Now()
	}

	session := models.Session{
		ID:               s.nextID(existing),
		Category:         in.Category,
		Duration:         in.Duration,
		DistractionCount: in.DistractionCount,
		Completed:        in.Completed,
		FocusScore:       models.ComputeFocusScore(in.DistractionCount, in.Completed),
		Date:             date,
	}
	if err := session.Validate(); err != nil {
		return models.Session{}, fmt.Errorf("invalid session: %w", err)
	}

	updated := append([]models.Session{session}, existing...)
	if backfilled {
		// Keep the log ordered newest-first even when a session is
		// recorded after the fact.
		sort.SliceStable(updated, func(i, j int) bool {
			return updated[i].Date.After(updated[j].Date)
		})
	}

	data, err := json.Marshal(updated)
	if err != nil {
		return models.Session{}, fmt.Errorf("encode sessions: %w", err)
	}
	if err := s.kv.Set(sessionsKey, string(data)); err != nil {
		return models.Session{}, fmt.Errorf("persist sessions: %w", err)
	}
	return session, nil
}

// nextID derives a time-based id, bumping past the most recently
// assigned one so ids stay unique and monotonic within the log.
func (s *SessionStore) nextID(existing []models.Session) string {
	id := s.clock.Now().UnixMilli()
	for _, prev := range existing {
		if last, err := strconv.ParseInt(prev.ID, 10, 64); err == nil && id <= last {
			id = last + 1
		}
	}
	return strconv.FormatInt(id, 10)
}

// All returns every session, newest first. Read or decode failures are
// logged and degrade to an empty log; reads never fail.
func (s *SessionStore) All() []models.Session {
	raw, ok, err := s.kv.Get(sessionsKey)
	if err != nil {
		slog.Warn("session log unreadable, treating as empty", "error", err)
		return nil
	}
	if !ok || raw == "" {
		return nil
	}
	var sessions []models.Session
	if err := json.Unmarshal([]byte(raw), &sessions); err != nil {
		slog.Warn("session log corrupt, treating as empty", "error", err)
		return nil
	}
	return sessions
}

// Today returns the sessions whose completion date falls on the current
// calendar day in the store's location.
func (s *SessionStore) Today() []models.Session {
	now := s.clock.Now()
	var today []models.Session
	for _, sess := range s.All() {
		if clock.SameDay(sess.Date, now, s.loc) {
			today = append(today, sess)
		}
	}
	return today
}

// LastNDays returns sessions within a rolling n*24h window ending now.
func (s *SessionStore) LastNDays(n int) []models.Session {
	cutoff := s.clock.Now().Add(-time.Duration(n) * 24 * time.Hour)
	var recent []models.Session
	for _, sess := range s.All() {
		if !sess.Date.Before(cutoff) {
			recent = append(recent, sess)
		}
	}
	return recent
}

// ClearAll deletes the session log together with the derived streak and
// badge state. The daily goal deliberately survives a clear.
func (s *SessionStore) ClearAll() error {
	for _, key := range []string{sessionsKey, streakKey, badgesKey} {
		if err := s.kv.Remove(key); err != nil {
			return fmt.Errorf("clear %s: %w", key, err)
		}
	}
	return nil
}
