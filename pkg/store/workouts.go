package store

import (
	"sort"
	"time"
)

// SaveWorkout inserts the workout, or replaces an existing one with the same
// ID. The write is best-effort: a storage failure is logged and swallowed,
// and subscribers are only notified after a successful write. No internal
// consistency of the stored totals is verified here.
func (s *Store) SaveWorkout(w Workout) {
	workouts := s.Workouts()
	replaced := false
	for i := range workouts {
		if workouts[i].ID == w.ID {
			workouts[i] = w
			replaced = true
			break
		}
	}
	if !replaced {
		workouts = append(workouts, w)
	}
	if s.writeList(workoutsFile, workouts) {
		s.notify()
	}
}

// Workouts returns the full workout list. Order is not guaranteed; callers
// needing chronology must sort by Date themselves.
func (s *Store) Workouts() []Workout {
	workouts := []Workout{}
	s.readList(workoutsFile, &workouts)
	return workouts
}

// WorkoutByID returns the workout with the given id, or nil.
func (s *Store) WorkoutByID(id string) *Workout {
	for _, w := range s.Workouts() {
		if w.ID == id {
			return &w
		}
	}
	return nil
}

// DeleteWorkout removes the workout with the given id. Deleting an unknown
// id is a no-op, but still rewrites and notifies.
func (s *Store) DeleteWorkout(id string) {
	workouts := s.Workouts()
	kept := workouts[:0]
	for _, w := range workouts {
		if w.ID != id {
			kept = append(kept, w)
		}
	}
	if s.writeList(workoutsFile, kept) {
		s.notify()
	}
}

// RecentWorkouts returns up to limit workouts, most recent first.
func (s *Store) RecentWorkouts(limit int) []Workout {
	workouts := s.Workouts()
	sort.Slice(workouts, func(i, j int) bool {
		return workouts[i].Date.After(workouts[j].Date)
	})
	if limit > 0 && len(workouts) > limit {
		workouts = workouts[:limit]
	}
	return workouts
}

// WorkoutsByDateRange returns workouts whose date falls within [start, end].
func (s *Store) WorkoutsByDateRange(start, end time.Time) []Workout {
	var out []Workout
	for _, w := range s.Workouts() {
		if !w.Date.Before(start) && !w.Date.After(end) {
			out = append(out, w)
		}
	}
	return out
}

// WorkoutsByWeek returns workouts in the calendar week at the given offset
// from the week containing now (0 = this week, -1 = last week). Weeks start
// Sunday 00:00:00 local time.
func (s *Store) WorkoutsByWeek(offset int, now time.Time) []Workout {
	start := StartOfWeek(now).AddDate(0, 0, offset*7)
	end := start.AddDate(0, 0, 7).Add(-time.Nanosecond)
	return s.WorkoutsByDateRange(start, end)
}

// StartOfWeek returns Sunday 00:00:00 local time for the week containing t.
func StartOfWeek(t time.Time) time.Time {
	t = t.In(time.Local)
	day := t.AddDate(0, 0, -int(t.Weekday()))
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.Local)
}
