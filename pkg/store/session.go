package store

import (
	"encoding/json"
	"os"
	"time"
)

// sessionMaxAge is how long an untouched session snapshot stays usable.
const sessionMaxAge = 24 * time.Hour

// SaveSession overwrites the in-progress workout snapshot wholesale. The ID
// and creation time of an existing snapshot are preserved; LastModified is
// stamped on every save.
func (s *Store) SaveSession(sess Session, now time.Time) *Session {
	if existing := s.Session(); existing != nil {
		sess.ID = existing.ID
		sess.CreatedAt = existing.CreatedAt
	}
	if sess.ID == "" {
		sess.ID = "session-" + NewID()
	}
	if sess.CreatedAt.IsZero() {
		sess.CreatedAt = now
	}
	sess.LastModified = now

	data, err := json.Marshal(sess)
	if err != nil {
		s.log.WithError(err).Error("serializing session")
		return nil
	}
	if err := os.WriteFile(s.path(sessionFile), data, 0644); err != nil {
		s.log.WithError(err).Error("writing session")
		return nil
	}
	s.notify()
	return &sess
}

// Session returns the stored snapshot, or nil. A snapshot that fails basic
// shape validation is cleared rather than returned.
func (s *Store) Session() *Session {
	data, err := os.ReadFile(s.path(sessionFile))
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.WithError(err).Error("reading session")
		}
		return nil
	}
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		s.log.WithError(err).Error("malformed session, clearing")
		s.ClearSession()
		return nil
	}
	if sess.ID == "" {
		s.log.Warn("invalid session data, clearing")
		s.ClearSession()
		return nil
	}
	return &sess
}

// ClearSession removes the snapshot. Returns false only on a real removal
// failure; a missing snapshot clears cleanly.
func (s *Store) ClearSession() bool {
	if err := os.Remove(s.path(sessionFile)); err != nil && !os.IsNotExist(err) {
		s.log.WithError(err).Error("clearing session")
		return false
	}
	s.notify()
	return true
}

// HasActiveSession reports whether a snapshot with at least one exercise
// exists.
func (s *Store) HasActiveSession() bool {
	sess := s.Session()
	return sess != nil && len(sess.Exercises) > 0
}

// SessionStale reports whether the snapshot is older than 24 hours.
func (s *Store) SessionStale(now time.Time) bool {
	sess := s.Session()
	if sess == nil {
		return false
	}
	return now.Sub(sess.LastModified) > sessionMaxAge
}

// CleanupStaleSession discards a stale snapshot. Returns true if one was
// removed.
func (s *Store) CleanupStaleSession(now time.Time) bool {
	if !s.SessionStale(now) {
		return false
	}
	s.log.Info("cleaning up stale workout session")
	return s.ClearSession()
}

// Summary derives a progress view of the session.
func (sess *Session) Summary() SessionSummary {
	totalSets, completedSets := 0, 0
	for _, ex := range sess.Exercises {
		totalSets += len(ex.Sets)
		for _, set := range ex.Sets {
			if set.Completed {
				completedSets++
			}
		}
	}
	pct := 0
	if totalSets > 0 {
		pct = int(float64(completedSets)/float64(totalSets)*100 + 0.5)
	}
	return SessionSummary{
		ID:                 sess.ID,
		WorkoutName:        sess.WorkoutName,
		ExerciseCount:      len(sess.Exercises),
		TotalSets:          totalSets,
		CompletedSets:      completedSets,
		ProgressPercentage: pct,
		Duration:           sess.WorkoutDuration,
		IsActive:           sess.IsWorkoutActive,
		LastModified:       sess.LastModified,
	}
}
