package store

import "time"

// SaveGoal inserts the goal, or replaces an existing one with the same ID.
func (s *Store) SaveGoal(g Goal) {
	goals := s.Goals()
	replaced := false
	for i := range goals {
		if goals[i].ID == g.ID {
			goals[i] = g
			replaced = true
			break
		}
	}
	if !replaced {
		goals = append(goals, g)
	}
	if s.writeList(goalsFile, goals) {
		s.notify()
	}
}

// SaveGoals replaces the whole goal list in one write with one notification.
// Used by the auto-tracker to persist a batch of progress updates.
func (s *Store) SaveGoals(goals []Goal) {
	if s.writeList(goalsFile, goals) {
		s.notify()
	}
}

// Goals returns the full goal list.
func (s *Store) Goals() []Goal {
	goals := []Goal{}
	s.readList(goalsFile, &goals)
	return goals
}

// GoalByID returns the goal with the given id, or nil.
func (s *Store) GoalByID(id string) *Goal {
	for _, g := range s.Goals() {
		if g.ID == id {
			return &g
		}
	}
	return nil
}

// DeleteGoal removes the goal with the given id; unknown ids are a no-op.
func (s *Store) DeleteGoal(id string) {
	goals := s.Goals()
	kept := goals[:0]
	for _, g := range goals {
		if g.ID != id {
			kept = append(kept, g)
		}
	}
	if s.writeList(goalsFile, kept) {
		s.notify()
	}
}

// UpdateGoalProgress sets a goal's current value and keeps the completed
// flag in sync: crossing the target marks it completed with a timestamp, and
// dropping back below clears both. Unknown ids are ignored.
func (s *Store) UpdateGoalProgress(id string, progress float64, now time.Time) {
	goals := s.Goals()
	for i := range goals {
		if goals[i].ID != id {
			continue
		}
		g := &goals[i]
		g.Current = progress
		if progress >= g.Target && !g.Completed {
			g.Completed = true
			t := now
			g.CompletedDate = &t
		} else if progress < g.Target && g.Completed {
			g.Completed = false
			g.CompletedDate = nil
		}
		if s.writeList(goalsFile, goals) {
			s.notify()
		}
		return
	}
}

// GoalsByType returns goals of the given type.
func (s *Store) GoalsByType(t GoalType) []Goal {
	var out []Goal
	for _, g := range s.Goals() {
		if g.Type == t {
			out = append(out, g)
		}
	}
	return out
}

// ActiveGoals returns goals not yet completed.
func (s *Store) ActiveGoals() []Goal {
	var out []Goal
	for _, g := range s.Goals() {
		if !g.Completed {
			out = append(out, g)
		}
	}
	return out
}

// CompletedGoals returns goals already completed.
func (s *Store) CompletedGoals() []Goal {
	var out []Goal
	for _, g := range s.Goals() {
		if g.Completed {
			out = append(out, g)
		}
	}
	return out
}
