package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func TestSaveMeasurementDerivesMonth(t *testing.T) {
	s := setupTestStore(t)

	s.SaveMeasurement(Measurement{Date: "2026-08-15", Weight: f(180)})

	got := s.Measurements()
	require.Len(t, got, 1)
	assert.Equal(t, "Aug 2026", got[0].Month)
}

func TestMeasurementsSortedByDate(t *testing.T) {
	s := setupTestStore(t)

	s.SaveMeasurement(Measurement{Date: "2026-08-01", Weight: f(182)})
	s.SaveMeasurement(Measurement{Date: "2026-06-01", Weight: f(185), BodyFat: f(19)})
	s.SaveMeasurement(Measurement{Date: "2026-07-01", Weight: f(184)})

	got := s.Measurements()
	require.Len(t, got, 3)
	assert.Equal(t, "2026-06-01", got[0].Date)
	assert.Equal(t, "2026-07-01", got[1].Date)
	assert.Equal(t, "2026-08-01", got[2].Date)
}
