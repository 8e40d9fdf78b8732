package store

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportImportRoundTrip(t *testing.T) {
	s := setupTestStore(t)

	s.SaveWorkout(testWorkout("w1", "Push Day", time.Now().Round(0)))
	s.SaveWorkout(testWorkout("w2", "Leg Day", time.Now().AddDate(0, 0, -1).Round(0)))
	s.SaveGoal(Goal{ID: "g1", Title: "Bench 135", Type: GoalStrength, Target: 135, ExerciseName: "Bench Press", Metric: MetricWeight})

	exported, err := s.Export(time.Now())
	require.NoError(t, err)

	wantWorkouts := s.Workouts()
	wantGoals := s.Goals()

	s.ClearAll()
	require.Empty(t, s.Workouts())

	require.True(t, s.Import(exported))
	assert.Equal(t, wantWorkouts, s.Workouts())
	assert.Equal(t, wantGoals, s.Goals())
}

func TestExportShape(t *testing.T) {
	s := setupTestStore(t)
	s.SaveWorkout(testWorkout("w1", "Push Day", time.Now()))

	exported, err := s.Export(time.Now())
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(exported), &doc))
	for _, key := range []string{"workouts", "goals", "exportDate", "version", "app"} {
		assert.Contains(t, doc, key)
	}
}

func TestImportRejectsBadPayloads(t *testing.T) {
	s := setupTestStore(t)
	s.SaveWorkout(testWorkout("w1", "Keep Me", time.Now()))

	// Malformed JSON
	assert.False(t, s.Import("{not json"))
	// Missing the workouts key
	assert.False(t, s.Import(`{"goals": []}`))

	// Existing data untouched
	require.Len(t, s.Workouts(), 1)
	assert.Equal(t, "Keep Me", s.Workouts()[0].Name)
}
