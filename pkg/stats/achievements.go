package stats

import (
	"sort"
	"strings"
	"time"

	"github.com/fittrack/fittrack/pkg/store"
)

// Achievement is one earnable badge. Progress and Target are zero for
// badges without a measurable progression.
type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Earned      bool   `json:"earned"`
	Progress    int    `json:"progress,omitempty"`
	Target      int    `json:"target,omitempty"`
}

// DefaultBodyWeight is assumed for the strength milestone badge when the
// user hasn't configured their own.
const DefaultBodyWeight = 150.0

// Achievements computes the fixed badge set from the workout log. bodyWeight
// feeds the bench press milestone; pass DefaultBodyWeight when unknown.
func Achievements(workouts []store.Workout, st Stats, bodyWeight float64, now time.Time) []Achievement {
	monthly := MonthlyWorkouts(workouts, now)
	return []Achievement{
		{
			ID:          "first-workout",
			Title:       "First Workout",
			Description: "Complete your first workout",
			Earned:      len(workouts) > 0,
		},
		{
			ID:          "week-warrior",
			Title:       "Week Warrior",
			Description: "Complete 5 workouts in a week",
			Earned:      st.WeeklyWorkouts >= 5,
			Progress:    st.WeeklyWorkouts,
			Target:      5,
		},
		{
			ID:          "consistency-king",
			Title:       "Consistency King",
			Description: "Maintain a 30-day workout streak",
			Earned:      st.CurrentStreak >= 30,
			Progress:    st.CurrentStreak,
			Target:      30,
		},
		{
			ID:          "strength-milestone",
			Title:       "Strength Milestone",
			Description: "Bench press your body weight",
			Earned:      hasBodyWeightBench(workouts, bodyWeight),
		},
		{
			ID:          "volume-victor",
			Title:       "Volume Victor",
			Description: "Lift 50,000 lbs total volume",
			Earned:      st.TotalWeight >= 50000,
			Progress:    st.TotalWeight,
			Target:      50000,
		},
		{
			ID:          "goal-getter",
			Title:       "Goal Getter",
			Description: "Achieve your monthly workout goal",
			Earned:      monthly >= 16,
			Progress:    monthly,
			Target:      16,
		},
		{
			ID:          "century-club",
			Title:       "Century Club",
			Description: "Complete 100 total workouts",
			Earned:      len(workouts) >= 100,
			Progress:    len(workouts),
			Target:      100,
		},
	}
}

// hasBodyWeightBench reports whether any completed bench press set reached
// the given body weight.
func hasBodyWeightBench(workouts []store.Workout, bodyWeight float64) bool {
	if bodyWeight <= 0 {
		bodyWeight = DefaultBodyWeight
	}
	for _, w := range workouts {
		for _, ex := range w.Exercises {
			if !strings.Contains(strings.ToLower(ex.Name), "bench") {
				continue
			}
			for _, set := range ex.Sets {
				if set.Completed && set.Weight >= bodyWeight {
					return true
				}
			}
		}
	}
	return false
}

// FirstWorkoutDate returns the date of the earliest workout, or the zero
// time when none exist.
func FirstWorkoutDate(workouts []store.Workout) time.Time {
	if len(workouts) == 0 {
		return time.Time{}
	}
	sorted := make([]store.Workout, len(workouts))
	copy(sorted, workouts)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })
	return sorted[0].Date
}
