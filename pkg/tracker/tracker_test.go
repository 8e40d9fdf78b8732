package tracker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fittrack/fittrack/pkg/stats"
	"github.com/fittrack/fittrack/pkg/store"
)

var testNow = time.Date(2026, 8, 31, 9, 30, 0, 0, time.Local)

func setupTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.NewStore(t.TempDir())
	require.NoError(t, err)
	return s
}

func benchWorkout(name string, sets ...store.Set) store.Workout {
	return store.Workout{
		ID:        store.NewID(),
		Date:      testNow,
		Name:      "Push Day",
		Exercises: []store.Exercise{{Name: name, Sets: sets}},
	}
}

func TestApplyAdvancesAndCompletesGoal(t *testing.T) {
	s := setupTestStore(t)
	s.SaveGoal(store.Goal{
		ID:           "g1",
		Title:        "Bench 150",
		Type:         store.GoalStrength,
		Target:       150,
		Current:      100,
		ExerciseName: "Bench",
		Metric:       store.MetricWeight,
	})

	w := benchWorkout("Bench Press", store.Set{Reps: 3, Weight: 155, Completed: true})
	Apply(s, w, testNow)

	g := s.GoalByID("g1")
	require.NotNil(t, g)
	assert.Equal(t, 155.0, g.Current)
	assert.True(t, g.Completed)
	require.NotNil(t, g.CompletedDate)
	assert.True(t, g.CompletedDate.Equal(testNow))
}

func TestApplyNeverDecreasesCurrent(t *testing.T) {
	s := setupTestStore(t)
	s.SaveGoal(store.Goal{
		ID:           "g1",
		Type:         store.GoalStrength,
		Target:       200,
		Current:      150,
		ExerciseName: "Bench",
		Metric:       store.MetricWeight,
	})

	Apply(s, benchWorkout("Bench Press", store.Set{Reps: 5, Weight: 135, Completed: true}), testNow)

	assert.Equal(t, 150.0, s.GoalByID("g1").Current)
}

func TestApplyIgnoresIncompleteSets(t *testing.T) {
	s := setupTestStore(t)
	s.SaveGoal(store.Goal{
		ID:           "g1",
		Type:         store.GoalStrength,
		Target:       200,
		ExerciseName: "Bench",
		Metric:       store.MetricWeight,
	})

	Apply(s, benchWorkout("Bench Press", store.Set{Reps: 1, Weight: 500, Completed: false}), testNow)

	assert.Equal(t, 0.0, s.GoalByID("g1").Current)
}

func TestApplyRepsMetric(t *testing.T) {
	s := setupTestStore(t)
	s.SaveGoal(store.Goal{
		ID:           "g1",
		Type:         store.GoalStrength,
		Target:       100,
		ExerciseName: "Push-up",
		Metric:       store.MetricReps,
	})

	Apply(s, benchWorkout("Push-ups",
		store.Set{Reps: 40, Completed: true},
		store.Set{Reps: 35, Completed: true}), testNow)

	assert.Equal(t, 40.0, s.GoalByID("g1").Current)
}

func TestApplyFirstSubstringMatchWins(t *testing.T) {
	s := setupTestStore(t)
	s.SaveGoal(store.Goal{
		ID:           "g1",
		Type:         store.GoalStrength,
		Target:       200,
		ExerciseName: "press",
		Metric:       store.MetricWeight,
	})

	w := store.Workout{
		ID:   store.NewID(),
		Date: testNow,
		Exercises: []store.Exercise{
			{Name: "Overhead Press", Sets: []store.Set{{Reps: 5, Weight: 95, Completed: true}}},
			{Name: "Bench Press", Sets: []store.Set{{Reps: 5, Weight: 185, Completed: true}}},
		},
	}
	Apply(s, w, testNow)

	// Only the first matching exercise is consulted.
	assert.Equal(t, 95.0, s.GoalByID("g1").Current)
}

func TestApplyNeverRevertsCompletion(t *testing.T) {
	s := setupTestStore(t)
	done := testNow.Add(-48 * time.Hour)
	s.SaveGoal(store.Goal{
		ID:            "g1",
		Type:          store.GoalStrength,
		Target:        150,
		Current:       155,
		ExerciseName:  "Bench",
		Metric:        store.MetricWeight,
		Completed:     true,
		CompletedDate: &done,
	})

	Apply(s, benchWorkout("Bench Press", store.Set{Reps: 1, Weight: 160, Completed: true}), testNow)

	g := s.GoalByID("g1")
	assert.Equal(t, 160.0, g.Current)
	assert.True(t, g.Completed)
	// The original completion timestamp stands.
	assert.True(t, g.CompletedDate.Equal(done))
}

func TestApplySkipsNonStrengthGoals(t *testing.T) {
	s := setupTestStore(t)
	s.SaveGoal(store.Goal{ID: "g1", Type: store.GoalHabit, Frequency: store.FrequencyWeekly, Target: 4})

	Apply(s, benchWorkout("Bench Press", store.Set{Reps: 5, Weight: 135, Completed: true}), testNow)

	assert.Equal(t, 0.0, s.GoalByID("g1").Current)
}

func TestRefreshTracksLiveGoals(t *testing.T) {
	goals := []store.Goal{
		{ID: "g1", Type: store.GoalHabit, Frequency: store.FrequencyWeekly, Target: 4},
		{ID: "g2", Type: store.GoalConsistency, Target: 30},
		{ID: "g3", Type: store.GoalStrength, Target: 150, Current: 120},
	}
	st := stats.Stats{WeeklyWorkouts: 5, CurrentStreak: 12}

	out := Refresh(goals, st)
	assert.Equal(t, 5.0, out[0].Current)
	assert.True(t, out[0].Completed)
	assert.Equal(t, 12.0, out[1].Current)
	assert.False(t, out[1].Completed)
	// Strength goals pass through untouched.
	assert.Equal(t, 120.0, out[2].Current)
}

func TestRefreshRevertsCompletion(t *testing.T) {
	done := testNow
	goals := []store.Goal{{
		ID:            "g1",
		Type:          store.GoalHabit,
		Frequency:     store.FrequencyWeekly,
		Target:        4,
		Current:       5,
		Completed:     true,
		CompletedDate: &done,
	}}

	out := Refresh(goals, stats.Stats{WeeklyWorkouts: 2})
	assert.Equal(t, 2.0, out[0].Current)
	assert.False(t, out[0].Completed)
	assert.Nil(t, out[0].CompletedDate)

	// The input slice is left alone.
	assert.True(t, goals[0].Completed)
}

func TestDefaultGoals(t *testing.T) {
	goals := DefaultGoals(stats.Stats{WeeklyWorkouts: 4, CurrentStreak: 3}, testNow)
	require.Len(t, goals, 2)

	habit, streak := goals[0], goals[1]
	assert.Equal(t, store.GoalHabit, habit.Type)
	assert.Equal(t, 4.0, habit.Current)
	assert.True(t, habit.Completed)

	assert.Equal(t, store.GoalConsistency, streak.Type)
	assert.Equal(t, 3.0, streak.Current)
	assert.False(t, streak.Completed)
}
