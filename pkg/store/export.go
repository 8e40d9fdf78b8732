package store

import (
	"encoding/json"
	"time"
)

// exportVersion is the export document version. Bump on shape changes.
const exportVersion = "1.0.0"

// ExportData is the combined export document. Field names and nesting are a
// stable contract: an export must import back losslessly.
type ExportData struct {
	Workouts   []Workout `json:"workouts"`
	Goals      []Goal    `json:"goals"`
	ExportDate time.Time `json:"exportDate"`
	Version    string    `json:"version"`
	App        string    `json:"app"`
}

// Export returns the full dataset as a pretty-printed JSON document.
func (s *Store) Export(now time.Time) (string, error) {
	data := ExportData{
		Workouts:   s.Workouts(),
		Goals:      s.Goals(),
		ExportDate: now,
		Version:    exportVersion,
		App:        "fittrack",
	}
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Import replaces the workout list (and the goal list, when present) from an
// export document. Returns false on malformed JSON or a payload missing the
// workouts key; nothing is modified in that case.
func (s *Store) Import(jsonData string) bool {
	var raw struct {
		Workouts *[]Workout `json:"workouts"`
		Goals    *[]Goal    `json:"goals"`
	}
	if err := json.Unmarshal([]byte(jsonData), &raw); err != nil {
		s.log.WithError(err).Error("importing data")
		return false
	}
	if raw.Workouts == nil {
		return false
	}
	ok := s.writeList(workoutsFile, *raw.Workouts)
	if raw.Goals != nil {
		ok = s.writeList(goalsFile, *raw.Goals) && ok
	}
	if ok {
		s.notify()
	}
	return ok
}
