package stats

import (
	"sort"
	"time"

	"github.com/fittrack/fittrack/pkg/store"
)

// Record is the best completed set ever logged for an exercise. Date is the
// date of the workout containing the set.
type Record struct {
	Weight float64   `json:"weight"`
	Reps   int       `json:"reps"`
	Date   time.Time `json:"date"`
}

// RecordEntry is a record annotated for display: the exercise name it
// belongs to and the weight improvement over the previous best.
type RecordEntry struct {
	Exercise    string    `json:"exercise"`
	Weight      float64   `json:"weight"`
	Reps        int       `json:"reps"`
	Date        time.Time `json:"date"`
	Improvement float64   `json:"improvement"`
}

// beats reports whether the candidate set outranks the current best:
// heavier wins, and more reps breaks a weight tie.
func beats(weight float64, reps int, bestWeight float64, bestReps int) bool {
	return weight > bestWeight || (weight == bestWeight && reps > bestReps)
}

// PersonalRecords returns, per exact exercise name, the best completed set
// across all workouts. Incomplete sets are never candidates.
func PersonalRecords(workouts []store.Workout) map[string]Record {
	records := make(map[string]Record)
	for _, w := range workouts {
		for _, ex := range w.Exercises {
			for _, set := range ex.Sets {
				if !set.Completed {
					continue
				}
				best, ok := records[ex.Name]
				if !ok || beats(set.Weight, set.Reps, best.Weight, best.Reps) {
					records[ex.Name] = Record{Weight: set.Weight, Reps: set.Reps, Date: w.Date}
				}
			}
		}
	}
	return records
}

// RecordsWithImprovement returns all personal records sorted most recent
// first, each with the weight gained over the best set from any other
// workout. Improvement is zero when no prior best exists.
func RecordsWithImprovement(workouts []store.Workout) []RecordEntry {
	// Track which workout produced each record so it can be excluded from
	// the prior-best scan.
	type holder struct {
		Record
		workoutID string
	}
	records := make(map[string]holder)
	for _, w := range workouts {
		for _, ex := range w.Exercises {
			for _, set := range ex.Sets {
				if !set.Completed {
					continue
				}
				best, ok := records[ex.Name]
				if !ok || beats(set.Weight, set.Reps, best.Weight, best.Reps) {
					records[ex.Name] = holder{
						Record:    Record{Weight: set.Weight, Reps: set.Reps, Date: w.Date},
						workoutID: w.ID,
					}
				}
			}
		}
	}

	var entries []RecordEntry
	for name, rec := range records {
		prevWeight, prevReps := 0.0, 0
		hasPrev := false
		for _, w := range workouts {
			if w.ID == rec.workoutID {
				continue
			}
			for _, ex := range w.Exercises {
				if ex.Name != name {
					continue
				}
				for _, set := range ex.Sets {
					if !set.Completed {
						continue
					}
					if !hasPrev || beats(set.Weight, set.Reps, prevWeight, prevReps) {
						prevWeight, prevReps = set.Weight, set.Reps
						hasPrev = true
					}
				}
			}
		}
		improvement := 0.0
		if hasPrev {
			improvement = rec.Weight - prevWeight
		}
		entries = append(entries, RecordEntry{
			Exercise:    name,
			Weight:      rec.Weight,
			Reps:        rec.Reps,
			Date:        rec.Date,
			Improvement: improvement,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Date.Equal(entries[j].Date) {
			return entries[i].Date.After(entries[j].Date)
		}
		return entries[i].Exercise < entries[j].Exercise
	})
	return entries
}

// HistoryPoint is the best completed weight for an exercise in one workout.
type HistoryPoint struct {
	Date   time.Time `json:"date"`
	Weight float64   `json:"weight"`
	Reps   int       `json:"reps"`
}

// ExerciseHistory returns the per-workout best completed set for an exact
// exercise name, oldest first. Workouts without a completed set of that
// exercise are skipped.
func ExerciseHistory(workouts []store.Workout, name string) []HistoryPoint {
	var points []HistoryPoint
	for _, w := range workouts {
		bestWeight, bestReps := 0.0, 0
		found := false
		for _, ex := range w.Exercises {
			if ex.Name != name {
				continue
			}
			for _, set := range ex.Sets {
				if !set.Completed {
					continue
				}
				if !found || beats(set.Weight, set.Reps, bestWeight, bestReps) {
					bestWeight, bestReps = set.Weight, set.Reps
					found = true
				}
			}
		}
		if found {
			points = append(points, HistoryPoint{Date: w.Date, Weight: bestWeight, Reps: bestReps})
		}
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	return points
}
