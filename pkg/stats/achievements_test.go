package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fittrack/fittrack/pkg/store"
)

func achievementByID(t *testing.T, list []Achievement, id string) Achievement {
	t.Helper()
	for _, a := range list {
		if a.ID == id {
			return a
		}
	}
	t.Fatalf("achievement %q not found", id)
	return Achievement{}
}

func TestAchievementsEmptyLog(t *testing.T) {
	badges := Achievements(nil, Calculate(nil, testNow), DefaultBodyWeight, testNow)
	require.Len(t, badges, 7)
	for _, b := range badges {
		assert.False(t, b.Earned, b.ID)
	}
}

func TestFirstWorkoutBadge(t *testing.T) {
	workouts := []store.Workout{workoutOn(daysAgo(1))}
	badges := Achievements(workouts, Calculate(workouts, testNow), DefaultBodyWeight, testNow)
	assert.True(t, achievementByID(t, badges, "first-workout").Earned)
}

func TestWeekWarriorProgress(t *testing.T) {
	// Three workouts this week (which started Sunday Aug 30).
	workouts := []store.Workout{
		workoutOn(daysAgo(0)),
		workoutOn(daysAgo(1)),
		workoutOn(time.Date(2026, 8, 30, 7, 0, 0, 0, time.Local)),
	}
	badges := Achievements(workouts, Calculate(workouts, testNow), DefaultBodyWeight, testNow)

	ww := achievementByID(t, badges, "week-warrior")
	assert.False(t, ww.Earned)
	assert.Equal(t, 3, ww.Progress)
	assert.Equal(t, 5, ww.Target)
}

func TestStrengthMilestoneUsesBodyWeight(t *testing.T) {
	workouts := []store.Workout{
		liftWorkout("w1", daysAgo(1), "Bench Press",
			store.Set{Reps: 3, Weight: 160, Completed: true}),
	}
	st := Calculate(workouts, testNow)

	earned := func(bodyWeight float64) bool {
		return achievementByID(t, Achievements(workouts, st, bodyWeight, testNow), "strength-milestone").Earned
	}
	assert.True(t, earned(150))
	assert.False(t, earned(180))
	// Zero falls back to the default of 150
	assert.True(t, earned(0))
}

func TestStrengthMilestoneIgnoresIncompleteAndOtherLifts(t *testing.T) {
	workouts := []store.Workout{
		liftWorkout("w1", daysAgo(1), "Bench Press",
			store.Set{Reps: 1, Weight: 200, Completed: false}),
		liftWorkout("w2", daysAgo(2), "Squat",
			store.Set{Reps: 5, Weight: 250, Completed: true}),
	}
	badges := Achievements(workouts, Calculate(workouts, testNow), 150, testNow)
	assert.False(t, achievementByID(t, badges, "strength-milestone").Earned)
}

func TestVolumeVictor(t *testing.T) {
	w := workoutOn(daysAgo(1))
	w.TotalWeight = 50000
	workouts := []store.Workout{w}

	badges := Achievements(workouts, Calculate(workouts, testNow), DefaultBodyWeight, testNow)
	assert.True(t, achievementByID(t, badges, "volume-victor").Earned)
}

func TestGoalGetterCountsCurrentMonth(t *testing.T) {
	var workouts []store.Workout
	for day := 1; day <= 16; day++ {
		workouts = append(workouts, workoutOn(time.Date(2026, 8, day, 8, 0, 0, 0, time.Local)))
	}
	// Last month's sessions don't count
	workouts = append(workouts, workoutOn(time.Date(2026, 7, 10, 8, 0, 0, 0, time.Local)))

	badges := Achievements(workouts, Calculate(workouts, testNow), DefaultBodyWeight, testNow)
	gg := achievementByID(t, badges, "goal-getter")
	assert.True(t, gg.Earned)
	assert.Equal(t, 16, gg.Progress)
}

func TestFirstWorkoutDate(t *testing.T) {
	assert.True(t, FirstWorkoutDate(nil).IsZero())

	workouts := []store.Workout{
		workoutOn(daysAgo(1)),
		workoutOn(daysAgo(10)),
		workoutOn(daysAgo(5)),
	}
	assert.True(t, FirstWorkoutDate(workouts).Equal(daysAgo(10)))
}
