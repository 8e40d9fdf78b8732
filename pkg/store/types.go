package store

import "time"

// Workout is one completed training session. The totals are computed by the
// caller at save time and stored redundantly; readers sum the stored fields
// rather than walking the nested sets.
type Workout struct {
	ID          string     `json:"id"`
	Date        time.Time  `json:"date"`
	Name        string     `json:"name"`
	Exercises   []Exercise `json:"exercises"`
	Duration    int        `json:"duration"` // minutes
	TotalSets   int        `json:"totalSets"`
	TotalReps   int        `json:"totalReps"`
	TotalWeight int        `json:"totalWeight"` // lbs
}

// Exercise is one movement performed during a session.
type Exercise struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Sets     []Set  `json:"sets"`
}

// Set is one performed set. Only completed sets count toward statistics,
// records, or goal progress.
type Set struct {
	Reps      int     `json:"reps"`
	Weight    float64 `json:"weight"` // lbs
	Completed bool    `json:"completed"`
	RestTime  int     `json:"restTime,omitempty"` // seconds, informational
}

// ComputeTotals fills in the redundant totals from the contained sets,
// counting completed sets only.
func (w *Workout) ComputeTotals() {
	w.TotalSets = 0
	w.TotalReps = 0
	w.TotalWeight = 0
	for _, ex := range w.Exercises {
		for _, set := range ex.Sets {
			if !set.Completed {
				continue
			}
			w.TotalSets++
			w.TotalReps += set.Reps
			w.TotalWeight += int(set.Weight) * set.Reps
		}
	}
}

// GoalType categorizes what a goal tracks.
type GoalType string

const (
	GoalStrength    GoalType = "strength"
	GoalHabit       GoalType = "habit"
	GoalConsistency GoalType = "consistency"
	GoalBodyweight  GoalType = "bodyweight"
)

// GoalMetric is the dimension a strength goal measures.
type GoalMetric string

const (
	MetricWeight GoalMetric = "weight"
	MetricReps   GoalMetric = "reps"
	MetricVolume GoalMetric = "volume"
)

// GoalFrequency is the cadence of a habit goal.
type GoalFrequency string

const (
	FrequencyDaily   GoalFrequency = "daily"
	FrequencyWeekly  GoalFrequency = "weekly"
	FrequencyMonthly GoalFrequency = "monthly"
)

// Goal is a target the user is tracking. Strength goals carry ExerciseName
// and Metric; habit goals carry Frequency and Streak. The extra fields are
// omitted from JSON for the other types.
type Goal struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Description   string        `json:"description,omitempty"`
	Type          GoalType      `json:"type"`
	Target        float64       `json:"target"`
	Current       float64       `json:"current"`
	Unit          string        `json:"unit"`
	Category      string        `json:"category,omitempty"`
	CreatedDate   time.Time     `json:"createdDate"`
	TargetDate    *time.Time    `json:"targetDate,omitempty"`
	Completed     bool          `json:"completed"`
	CompletedDate *time.Time    `json:"completedDate,omitempty"`
	Icon          string        `json:"icon,omitempty"`
	Color         string        `json:"color,omitempty"`
	ExerciseName  string        `json:"exerciseName,omitempty"`
	Metric        GoalMetric    `json:"metric,omitempty"`
	Frequency     GoalFrequency `json:"frequency,omitempty"`
	Streak        int           `json:"streak,omitempty"`
}

// IsActive reports whether the goal is still being worked toward.
func (g *Goal) IsActive() bool {
	return !g.Completed
}

// Measurement is a monthly body measurement entry.
type Measurement struct {
	Month   string   `json:"month"` // display label, e.g. "Jan 2026"
	Weight  *float64 `json:"weight,omitempty"`
	BodyFat *float64 `json:"bodyFat,omitempty"`
	Date    string   `json:"date"` // YYYY-MM-DD
}

// SessionExercise mirrors Exercise for the in-progress session snapshot.
type SessionExercise struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Sets     []Set  `json:"sets"`
}

// Session is the in-progress workout snapshot, overwritten wholesale on
// every autosave.
type Session struct {
	ID               string            `json:"id"`
	WorkoutName      string            `json:"workoutName"`
	Exercises        []SessionExercise `json:"exercises"`
	IsWorkoutActive  bool              `json:"isWorkoutActive"`
	WorkoutStartTime *time.Time        `json:"workoutStartTime"`
	WorkoutDuration  int               `json:"workoutDuration"` // seconds
	TemplateID       string            `json:"templateId,omitempty"`
	CreatedAt        time.Time         `json:"createdAt"`
	LastModified     time.Time         `json:"lastModified"`
}

// SessionSummary is a derived view of a session for display.
type SessionSummary struct {
	ID                 string    `json:"id"`
	WorkoutName        string    `json:"workoutName"`
	ExerciseCount      int       `json:"exerciseCount"`
	TotalSets          int       `json:"totalSets"`
	CompletedSets      int       `json:"completedSets"`
	ProgressPercentage int       `json:"progressPercentage"`
	Duration           int       `json:"duration"`
	IsActive           bool      `json:"isActive"`
	LastModified       time.Time `json:"lastModified"`
}

// TemplateExercise is an exercise slot in a workout template, with a
// suggested set/rep scheme but no logged sets.
type TemplateExercise struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Sets     int    `json:"sets"`
	Reps     string `json:"reps"` // free text, e.g. "8-10" or "30 sec"
}

// Template is a reusable workout outline.
type Template struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Duration    string             `json:"duration,omitempty"`
	Difficulty  string             `json:"difficulty,omitempty"`
	Exercises   []TemplateExercise `json:"exercises"`
}
