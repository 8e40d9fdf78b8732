package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveGoalUpsert(t *testing.T) {
	s := setupTestStore(t)

	s.SaveGoal(Goal{ID: "g1", Title: "Bench 135", Type: GoalStrength, Target: 135})
	s.SaveGoal(Goal{ID: "g1", Title: "Bench 155", Type: GoalStrength, Target: 155})
	s.SaveGoal(Goal{ID: "g2", Title: "Streak", Type: GoalConsistency, Target: 30})

	goals := s.Goals()
	require.Len(t, goals, 2)

	g := s.GoalByID("g1")
	require.NotNil(t, g)
	assert.Equal(t, "Bench 155", g.Title)
}

func TestUpdateGoalProgressCompletes(t *testing.T) {
	s := setupTestStore(t)
	now := time.Now()

	s.SaveGoal(Goal{ID: "g1", Title: "Bench 135", Type: GoalStrength, Target: 135, Current: 100})

	s.UpdateGoalProgress("g1", 140, now)
	g := s.GoalByID("g1")
	require.NotNil(t, g)
	assert.Equal(t, 140.0, g.Current)
	assert.True(t, g.Completed)
	require.NotNil(t, g.CompletedDate)
	assert.True(t, g.CompletedDate.Equal(now))
}

func TestUpdateGoalProgressReverts(t *testing.T) {
	s := setupTestStore(t)

	s.SaveGoal(Goal{ID: "g1", Title: "Bench", Type: GoalStrength, Target: 135})
	s.UpdateGoalProgress("g1", 140, time.Now())
	require.True(t, s.GoalByID("g1").Completed)

	s.UpdateGoalProgress("g1", 120, time.Now())
	g := s.GoalByID("g1")
	assert.False(t, g.Completed)
	assert.Nil(t, g.CompletedDate)
}

func TestGoalFilters(t *testing.T) {
	s := setupTestStore(t)

	s.SaveGoal(Goal{ID: "g1", Type: GoalStrength, Target: 100, Completed: true})
	s.SaveGoal(Goal{ID: "g2", Type: GoalHabit, Target: 4})
	s.SaveGoal(Goal{ID: "g3", Type: GoalStrength, Target: 200})

	assert.Len(t, s.GoalsByType(GoalStrength), 2)
	assert.Len(t, s.ActiveGoals(), 2)
	assert.Len(t, s.CompletedGoals(), 1)
}

func TestSaveGoalsBatchSingleNotify(t *testing.T) {
	s := setupTestStore(t)

	calls := 0
	s.Subscribe(func() { calls++ })

	s.SaveGoals([]Goal{
		{ID: "g1", Type: GoalStrength, Target: 100},
		{ID: "g2", Type: GoalHabit, Target: 4},
	})

	assert.Equal(t, 1, calls)
	assert.Len(t, s.Goals(), 2)
}
