package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSession() Session {
	return Session{
		WorkoutName: "Push Day",
		Exercises: []SessionExercise{{
			ID:   NewID(),
			Name: "Bench Press",
			Sets: []Set{
				{Reps: 5, Weight: 135, Completed: true},
				{Reps: 5, Weight: 135, Completed: false},
			},
		}},
		IsWorkoutActive: true,
	}
}

func TestSaveSessionAssignsIdentity(t *testing.T) {
	s := setupTestStore(t)
	now := time.Now()

	saved := s.SaveSession(testSession(), now)
	require.NotNil(t, saved)
	assert.NotEmpty(t, saved.ID)
	assert.True(t, saved.CreatedAt.Equal(now))
	assert.True(t, saved.LastModified.Equal(now))
}

func TestSaveSessionPreservesIdentityOnOverwrite(t *testing.T) {
	s := setupTestStore(t)
	created := time.Now().Add(-time.Hour)

	first := s.SaveSession(testSession(), created)
	require.NotNil(t, first)

	later := time.Now()
	second := s.SaveSession(testSession(), later)
	require.NotNil(t, second)
	assert.Equal(t, first.ID, second.ID)
	assert.True(t, second.CreatedAt.Equal(first.CreatedAt))
	assert.True(t, second.LastModified.Equal(later))
}

func TestSessionStaleCleanup(t *testing.T) {
	s := setupTestStore(t)
	now := time.Now()

	s.SaveSession(testSession(), now.Add(-25*time.Hour))
	assert.True(t, s.SessionStale(now))
	assert.True(t, s.CleanupStaleSession(now))
	assert.Nil(t, s.Session())

	// Fresh sessions survive cleanup
	s.SaveSession(testSession(), now.Add(-time.Hour))
	assert.False(t, s.SessionStale(now))
	assert.False(t, s.CleanupStaleSession(now))
	assert.NotNil(t, s.Session())
}

func TestInvalidSessionCleared(t *testing.T) {
	s := setupTestStore(t)

	err := os.WriteFile(filepath.Join(s.Root, "session.json"), []byte(`{"exercises": []}`), 0644)
	require.NoError(t, err)

	assert.Nil(t, s.Session())
	// The bad snapshot was removed, not just skipped
	_, err = os.Stat(filepath.Join(s.Root, "session.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestHasActiveSession(t *testing.T) {
	s := setupTestStore(t)
	assert.False(t, s.HasActiveSession())

	s.SaveSession(testSession(), time.Now())
	assert.True(t, s.HasActiveSession())
}

func TestSessionSummary(t *testing.T) {
	s := setupTestStore(t)

	saved := s.SaveSession(testSession(), time.Now())
	require.NotNil(t, saved)

	sum := saved.Summary()
	assert.Equal(t, 1, sum.ExerciseCount)
	assert.Equal(t, 2, sum.TotalSets)
	assert.Equal(t, 1, sum.CompletedSets)
	assert.Equal(t, 50, sum.ProgressPercentage)
	assert.True(t, sum.IsActive)
}
