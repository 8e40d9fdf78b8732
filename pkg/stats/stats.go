// Package stats computes derived statistics over the workout log. Every
// function is pure: it takes a snapshot of the full list plus the current
// time and recomputes from scratch, so results are identical for identical
// inputs.
package stats

import (
	"math"
	"sort"
	"time"

	"github.com/fittrack/fittrack/pkg/store"
)

// DefaultWeeklyGoal is the fixed weekly workout target shown on the
// dashboard. It is not derived from goal data.
const DefaultWeeklyGoal = 4

// Stats is a flat snapshot of derived workout statistics.
type Stats struct {
	TotalWorkouts  int `json:"totalWorkouts"`
	WeeklyWorkouts int `json:"weeklyWorkouts"`
	TotalSets      int `json:"totalSets"`
	TotalReps      int `json:"totalReps"`
	TotalWeight    int `json:"totalWeight"`
	TotalHours     int `json:"totalHours"`
	CurrentStreak  int `json:"currentStreak"`
	WeeklyGoal     int `json:"weeklyGoal"`
	AvgDuration    int `json:"avgDuration"`
}

// Calculate computes the full statistics snapshot. The week boundary is
// Sunday 00:00:00 local time of the week containing now. Totals come from
// the per-workout stored fields, not from the nested sets.
func Calculate(workouts []store.Workout, now time.Time) Stats {
	st := Stats{
		TotalWorkouts: len(workouts),
		WeeklyGoal:    DefaultWeeklyGoal,
	}

	weekStart := store.StartOfWeek(now)
	totalMinutes := 0
	for _, w := range workouts {
		st.TotalSets += w.TotalSets
		st.TotalReps += w.TotalReps
		st.TotalWeight += w.TotalWeight
		totalMinutes += w.Duration
		if !w.Date.Before(weekStart) {
			st.WeeklyWorkouts++
		}
	}
	st.TotalHours = int(math.Round(float64(totalMinutes) / 60))
	if len(workouts) > 0 {
		st.AvgDuration = int(math.Round(float64(totalMinutes) / float64(len(workouts))))
	}
	st.CurrentStreak = CurrentStreak(workouts, now)
	return st
}

// CurrentStreak returns the length of the run of consecutive calendar days
// with at least one workout, anchored at today. A day without a workout
// between today and the run breaks it; in particular, no workout today means
// a streak of zero. Time of day is discarded.
func CurrentStreak(workouts []store.Workout, now time.Time) int {
	if len(workouts) == 0 {
		return 0
	}

	seen := make(map[time.Time]bool)
	var days []time.Time
	for _, w := range workouts {
		d := calendarDay(w.Date)
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	today := calendarDay(now)
	streak := 0
	for _, d := range days {
		// Rounding absorbs the off-by-an-hour from DST transitions.
		diff := int(math.Round(today.Sub(d).Hours() / 24))
		if diff == streak {
			streak++
		} else if diff > streak+1 {
			break
		}
	}
	return streak
}

// calendarDay truncates t to local midnight.
func calendarDay(t time.Time) time.Time {
	t = t.In(time.Local)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// MonthlyWorkouts counts workouts since the first of the month containing
// now.
func MonthlyWorkouts(workouts []store.Workout, now time.Time) int {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)
	count := 0
	for _, w := range workouts {
		if !w.Date.Before(monthStart) {
			count++
		}
	}
	return count
}
