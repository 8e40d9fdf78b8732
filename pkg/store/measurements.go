package store

import (
	"sort"
	"time"
)

// Measurements returns all body measurements, oldest first.
func (s *Store) Measurements() []Measurement {
	measurements := []Measurement{}
	s.readList(measurementsFile, &measurements)
	return measurements
}

// SaveMeasurement appends a measurement and keeps the list sorted by date.
// The month label is derived from the date when unset.
func (s *Store) SaveMeasurement(m Measurement) {
	if m.Month == "" {
		if t, err := time.ParseInLocation("2006-01-02", m.Date, time.Local); err == nil {
			m.Month = t.Format("Jan 2006")
		}
	}
	measurements := append(s.Measurements(), m)
	sort.Slice(measurements, func(i, j int) bool {
		return measurements[i].Date < measurements[j].Date
	})
	if s.writeList(measurementsFile, measurements) {
		s.notify()
	}
}
