package store

// builtinTemplates is the stock workout template catalog.
var builtinTemplates = []Template{
	{
		ID:         "upper-body-strength",
		Name:       "Upper Body Strength",
		Duration:   "45 min",
		Difficulty: "Intermediate",
		Exercises: []TemplateExercise{
			{Name: "Bench Press", Category: "Chest", Sets: 4, Reps: "8-10"},
			{Name: "Incline Dumbbell Press", Category: "Chest", Sets: 3, Reps: "10-12"},
			{Name: "Pull-ups", Category: "Back", Sets: 4, Reps: "6-8"},
			{Name: "Barbell Rows", Category: "Back", Sets: 3, Reps: "8-10"},
			{Name: "Overhead Press", Category: "Shoulders", Sets: 3, Reps: "8-10"},
			{Name: "Lateral Raises", Category: "Shoulders", Sets: 3, Reps: "12-15"},
			{Name: "Bicep Curls", Category: "Arms", Sets: 3, Reps: "10-12"},
			{Name: "Tricep Dips", Category: "Arms", Sets: 3, Reps: "8-12"},
		},
	},
	{
		ID:         "hiit-cardio",
		Name:       "HIIT Cardio",
		Duration:   "30 min",
		Difficulty: "Advanced",
		Exercises: []TemplateExercise{
			{Name: "Burpees", Category: "Cardio", Sets: 4, Reps: "30 sec"},
			{Name: "Jump Squats", Category: "Cardio", Sets: 4, Reps: "20 reps"},
			{Name: "Mountain Climbers", Category: "Core", Sets: 4, Reps: "30 sec"},
			{Name: "High Knees", Category: "Cardio", Sets: 4, Reps: "30 sec"},
			{Name: "Jumping Jacks", Category: "Cardio", Sets: 4, Reps: "30 sec"},
			{Name: "Box Jumps", Category: "Cardio", Sets: 3, Reps: "10-12"},
		},
	},
	{
		ID:         "lower-body-power",
		Name:       "Lower Body Power",
		Duration:   "50 min",
		Difficulty: "Intermediate",
		Exercises: []TemplateExercise{
			{Name: "Squats", Category: "Legs", Sets: 4, Reps: "8-10"},
			{Name: "Deadlifts", Category: "Back", Sets: 4, Reps: "6-8"},
			{Name: "Bulgarian Split Squats", Category: "Legs", Sets: 3, Reps: "10-12"},
			{Name: "Romanian Deadlifts", Category: "Back", Sets: 3, Reps: "10-12"},
			{Name: "Walking Lunges", Category: "Legs", Sets: 3, Reps: "12-15"},
			{Name: "Leg Press", Category: "Legs", Sets: 3, Reps: "12-15"},
			{Name: "Leg Curls", Category: "Legs", Sets: 3, Reps: "12-15"},
			{Name: "Calf Raises", Category: "Legs", Sets: 4, Reps: "15-20"},
			{Name: "Hip Thrusts", Category: "Legs", Sets: 3, Reps: "12-15"},
			{Name: "Jump Squats", Category: "Cardio", Sets: 3, Reps: "10-12"},
		},
	},
}

// Templates returns user templates followed by the built-in catalog.
func (s *Store) Templates() []Template {
	custom := []Template{}
	s.readList(templatesFile, &custom)
	return append(custom, builtinTemplates...)
}

// TemplateByID returns the template with the given id, or nil.
func (s *Store) TemplateByID(id string) *Template {
	for _, t := range s.Templates() {
		if t.ID == id {
			return &t
		}
	}
	return nil
}

// SaveTemplate inserts or replaces a user template. Built-in templates are
// shadowed, not modified, when a user template shares their id.
func (s *Store) SaveTemplate(t Template) {
	custom := []Template{}
	s.readList(templatesFile, &custom)
	replaced := false
	for i := range custom {
		if custom[i].ID == t.ID {
			custom[i] = t
			replaced = true
			break
		}
	}
	if !replaced {
		custom = append(custom, t)
	}
	if s.writeList(templatesFile, custom) {
		s.notify()
	}
}
