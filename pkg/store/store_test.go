package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	s, err := NewStore(dir)
	require.NoError(t, err)
	return s
}

func testWorkout(id, name string, date time.Time) Workout {
	w := Workout{
		ID:   id,
		Date: date,
		Name: name,
		Exercises: []Exercise{
			{
				ID:       NewID(),
				Name:     "Bench Press",
				Category: "Chest",
				Sets: []Set{
					{Reps: 5, Weight: 135, Completed: true},
					{Reps: 5, Weight: 135, Completed: true},
				},
			},
		},
		Duration: 45,
	}
	w.ComputeTotals()
	return w
}

func TestSaveWorkoutInsert(t *testing.T) {
	s := setupTestStore(t)

	s.SaveWorkout(testWorkout("w1", "Push Day", time.Now()))

	workouts := s.Workouts()
	require.Len(t, workouts, 1)
	assert.Equal(t, "Push Day", workouts[0].Name)
	assert.Equal(t, 2, workouts[0].TotalSets)
	assert.Equal(t, 10, workouts[0].TotalReps)
	assert.Equal(t, 1350, workouts[0].TotalWeight)
}

func TestSaveWorkoutReplacesByID(t *testing.T) {
	s := setupTestStore(t)

	s.SaveWorkout(testWorkout("w1", "Push Day", time.Now()))
	s.SaveWorkout(testWorkout("w1", "Renamed", time.Now()))

	workouts := s.Workouts()
	require.Len(t, workouts, 1)
	assert.Equal(t, "Renamed", workouts[0].Name)
}

func TestDeleteWorkout(t *testing.T) {
	s := setupTestStore(t)

	s.SaveWorkout(testWorkout("w1", "A", time.Now()))
	s.SaveWorkout(testWorkout("w2", "B", time.Now()))

	s.DeleteWorkout("w1")
	workouts := s.Workouts()
	require.Len(t, workouts, 1)
	assert.Equal(t, "w2", workouts[0].ID)

	// Unknown id is a no-op
	s.DeleteWorkout("nope")
	assert.Len(t, s.Workouts(), 1)
}

func TestWorkoutByID(t *testing.T) {
	s := setupTestStore(t)

	s.SaveWorkout(testWorkout("w1", "A", time.Now()))

	w := s.WorkoutByID("w1")
	require.NotNil(t, w)
	assert.Equal(t, "A", w.Name)
	assert.Nil(t, s.WorkoutByID("missing"))
}

func TestCorruptFileReadsAsEmpty(t *testing.T) {
	s := setupTestStore(t)

	err := os.WriteFile(filepath.Join(s.Root, "workouts.json"), []byte("{not json"), 0644)
	require.NoError(t, err)

	assert.Empty(t, s.Workouts())
}

func TestMissingFileReadsAsEmpty(t *testing.T) {
	s := setupTestStore(t)
	assert.Empty(t, s.Workouts())
	assert.Empty(t, s.Goals())
	assert.Empty(t, s.Measurements())
}

func TestSubscribeNotifiesAfterWrite(t *testing.T) {
	s := setupTestStore(t)

	calls := 0
	unsubscribe := s.Subscribe(func() { calls++ })

	s.SaveWorkout(testWorkout("w1", "A", time.Now()))
	assert.Equal(t, 1, calls)

	// Reads don't notify
	s.Workouts()
	assert.Equal(t, 1, calls)

	s.DeleteWorkout("w1")
	assert.Equal(t, 2, calls)

	unsubscribe()
	s.SaveWorkout(testWorkout("w2", "B", time.Now()))
	assert.Equal(t, 2, calls)
}

func TestRecentWorkoutsSorted(t *testing.T) {
	s := setupTestStore(t)

	now := time.Now()
	s.SaveWorkout(testWorkout("old", "Old", now.AddDate(0, 0, -5)))
	s.SaveWorkout(testWorkout("new", "New", now))
	s.SaveWorkout(testWorkout("mid", "Mid", now.AddDate(0, 0, -2)))

	recent := s.RecentWorkouts(2)
	require.Len(t, recent, 2)
	assert.Equal(t, "new", recent[0].ID)
	assert.Equal(t, "mid", recent[1].ID)
}

func TestWorkoutsByWeek(t *testing.T) {
	s := setupTestStore(t)

	// A Wednesday; the week runs from Sunday Aug 30 00:00.
	now := time.Date(2026, 9, 2, 12, 0, 0, 0, time.Local)
	s.SaveWorkout(testWorkout("in", "In", time.Date(2026, 8, 30, 0, 0, 0, 0, time.Local)))
	s.SaveWorkout(testWorkout("out", "Out", time.Date(2026, 8, 29, 23, 0, 0, 0, time.Local)))

	thisWeek := s.WorkoutsByWeek(0, now)
	require.Len(t, thisWeek, 1)
	assert.Equal(t, "in", thisWeek[0].ID)

	lastWeek := s.WorkoutsByWeek(-1, now)
	require.Len(t, lastWeek, 1)
	assert.Equal(t, "out", lastWeek[0].ID)
}

func TestClearAll(t *testing.T) {
	s := setupTestStore(t)

	s.SaveWorkout(testWorkout("w1", "A", time.Now()))
	s.SaveGoal(Goal{ID: "g1", Title: "G", Type: GoalStrength, Target: 100})

	s.ClearAll()
	assert.Empty(t, s.Workouts())
	assert.Empty(t, s.Goals())
}

func TestComputeTotalsSkipsIncompleteSets(t *testing.T) {
	w := Workout{
		Exercises: []Exercise{{
			Name: "Squat",
			Sets: []Set{
				{Reps: 5, Weight: 225, Completed: true},
				{Reps: 5, Weight: 500, Completed: false},
			},
		}},
	}
	w.ComputeTotals()
	assert.Equal(t, 1, w.TotalSets)
	assert.Equal(t, 5, w.TotalReps)
	assert.Equal(t, 1125, w.TotalWeight)
}
