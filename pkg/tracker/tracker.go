// Package tracker keeps goal progress in step with the workout log.
// Strength goals are written through to the store whenever a matching
// exercise is logged; habit and consistency goals are recomputed live from
// aggregate statistics at render time and never written back.
package tracker

import (
	"strings"
	"time"

	"github.com/fittrack/fittrack/pkg/stats"
	"github.com/fittrack/fittrack/pkg/store"
)

// Apply scans a freshly saved workout against all strength goals and
// persists any progress as a single batch write. For each goal, the first
// exercise whose name contains the goal's exercise name (case-insensitive
// substring) is consulted; its best completed set drives the metric. Current
// only moves up, and a goal that crosses its target is completed permanently
// with a timestamp.
func Apply(s *store.Store, w store.Workout, now time.Time) {
	goals := s.Goals()
	updated := false

	for i := range goals {
		g := &goals[i]
		if g.Type != store.GoalStrength || g.ExerciseName == "" {
			continue
		}

		ex := matchExercise(w, g.ExerciseName)
		if ex == nil {
			continue
		}

		maxValue := 0.0
		for _, set := range ex.Sets {
			if !set.Completed {
				continue
			}
			switch g.Metric {
			case store.MetricWeight:
				if set.Weight > maxValue {
					maxValue = set.Weight
				}
			case store.MetricReps:
				if float64(set.Reps) > maxValue {
					maxValue = float64(set.Reps)
				}
			}
		}

		if maxValue > g.Current {
			g.Current = maxValue
			if maxValue >= g.Target && !g.Completed {
				g.Completed = true
				t := now
				g.CompletedDate = &t
			}
			updated = true
		}
	}

	if updated {
		s.SaveGoals(goals)
	}
}

// matchExercise returns the first exercise in the workout whose name
// contains needle, ignoring case. First match wins, not best match: a goal
// named "Press" can attach to "Overhead Press" before "Bench Press".
func matchExercise(w store.Workout, needle string) *store.Exercise {
	needle = strings.ToLower(needle)
	for i := range w.Exercises {
		if strings.Contains(strings.ToLower(w.Exercises[i].Name), needle) {
			return &w.Exercises[i]
		}
	}
	return nil
}

// Refresh recomputes the live-tracked goal types against a statistics
// snapshot: weekly habit goals track this week's workout count and
// consistency goals track the current streak. Completion is derived and may
// revert when the underlying number drops. The returned slice is for
// display; it is never persisted.
func Refresh(goals []store.Goal, st stats.Stats) []store.Goal {
	out := make([]store.Goal, len(goals))
	copy(out, goals)
	for i := range out {
		g := &out[i]
		switch {
		case g.Type == store.GoalHabit && g.Frequency == store.FrequencyWeekly:
			g.Current = float64(st.WeeklyWorkouts)
		case g.Type == store.GoalConsistency:
			g.Current = float64(st.CurrentStreak)
		default:
			continue
		}
		g.Completed = g.Current >= g.Target
		if !g.Completed {
			g.CompletedDate = nil
		}
	}
	return out
}

// DefaultGoals builds the starter goals offered when the goal store is
// empty, seeded with current statistics.
func DefaultGoals(st stats.Stats, now time.Time) []store.Goal {
	return []store.Goal{
		{
			ID:          store.NewID(),
			Title:       "Workout 4x per week",
			Description: "Maintain consistent workout schedule",
			Type:        store.GoalHabit,
			Frequency:   store.FrequencyWeekly,
			Target:      4,
			Current:     float64(st.WeeklyWorkouts),
			Unit:        "workouts",
			Category:    "workout",
			CreatedDate: now,
			Completed:   st.WeeklyWorkouts >= 4,
		},
		{
			ID:          store.NewID(),
			Title:       "30-Day Streak",
			Description: "Work out every day for 30 days",
			Type:        store.GoalConsistency,
			Target:      30,
			Current:     float64(st.CurrentStreak),
			Unit:        "days",
			CreatedDate: now,
			Completed:   st.CurrentStreak >= 30,
		},
	}
}

// StrengthGoalTemplates is the predefined strength goal catalog.
var StrengthGoalTemplates = []store.Goal{
	{
		Title:        "Bench Press 135 lbs",
		Description:  "Achieve a 135 lb bench press",
		Type:         store.GoalStrength,
		Target:       135,
		Unit:         "lbs",
		ExerciseName: "Bench Press",
		Metric:       store.MetricWeight,
	},
	{
		Title:        "Squat Body Weight",
		Description:  "Squat your body weight",
		Type:         store.GoalStrength,
		Target:       150,
		Unit:         "lbs",
		ExerciseName: "Squat",
		Metric:       store.MetricWeight,
	},
	{
		Title:        "Deadlift 225 lbs",
		Description:  "Achieve a 225 lb deadlift",
		Type:         store.GoalStrength,
		Target:       225,
		Unit:         "lbs",
		ExerciseName: "Deadlift",
		Metric:       store.MetricWeight,
	},
	{
		Title:        "100 Push-ups",
		Description:  "Complete 100 push-ups in one session",
		Type:         store.GoalStrength,
		Target:       100,
		Unit:         "reps",
		ExerciseName: "Push-up",
		Metric:       store.MetricReps,
	},
}
