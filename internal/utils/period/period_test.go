package period_test

import (
	"errors"
	"testing"
	"time"

	"github.com/andridns/expense-tracker-backend/internal/apperrors"
	"github.com/andridns/expense-tracker-backend/internal/utils/period"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRange_Year(t *testing.T) {
	start, end, err := period.Range("2025")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestRange_Month(t *testing.T) {
	start, end, err := period.Range("2025-03")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestRange_Quarter(t *testing.T) {
	start, end, err := period.Range("2025-Q2")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestRange_Semester(t *testing.T) {
	start, end, err := period.Range("2025-S2")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestRange_LowercaseQuarter(t *testing.T) {
	start, _, err := period.Range("2025-q1")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), start)
}

func TestRange_Invalid(t *testing.T) {
	for _, value := range []string{"", "20x5", "2025-13", "2025-Q5", "2025-S3", "March 2025"} {
		_, _, err := period.Range(value)
		assert.Error(t, err, "value %q should be rejected", value)
		assert.True(t, errors.Is(err, apperrors.ErrValidation), "value %q should yield a validation error", value)
	}
}

func TestKey(t *testing.T) {
	ts := time.Date(2025, 8, 15, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025", period.Key(ts, period.Yearly))
	assert.Equal(t, "2025-08", period.Key(ts, period.Monthly))
	assert.Equal(t, "2025-Q3", period.Key(ts, period.Quarterly))
	assert.Equal(t, "2025-S2", period.Key(ts, period.Semester))
}

func TestKeyForMonth(t *testing.T) {
	assert.Equal(t, "2024-Q1", period.KeyForMonth(2024, 2, period.Quarterly))
	assert.Equal(t, "2024-12", period.KeyForMonth(2024, 12, period.Monthly))
}

func TestParseGranularity(t *testing.T) {
	g, err := period.ParseGranularity("QUARTERLY")
	require.NoError(t, err)
	assert.Equal(t, period.Quarterly, g)

	_, err = period.ParseGranularity("weekly")
	assert.Error(t, err)
}
