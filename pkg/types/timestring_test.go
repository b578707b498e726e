package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	assert.NoError(t, TimeString("09:00").Validate())
	assert.NoError(t, TimeString("23:59").Validate())
	assert.Error(t, TimeString("24:00").Validate())
	assert.Error(t, TimeString("9:00:00").Validate())
	assert.Error(t, TimeString("bogus").Validate())
	assert.Error(t, TimeString("").Validate())
}

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("14:00")
	require.NoError(t, err)
	assert.Equal(t, TimeString("14:00"), ts)

	_, err = NewTimeStringFromString("25:00")
	assert.Error(t, err)
}

func TestAddMinutes(t *testing.T) {
	tests := []struct {
		start    TimeString
		minutes  int
		expected TimeString
	}{
		{"09:00", 90, "10:30"},
		{"14:00", 240, "18:00"},
		{"16:00", 600, "02:00"}, // заворот через полночь
		{"23:30", 60, "00:30"},
		{"11:00", 0, "11:00"},
	}

	for _, tt := range tests {
		result, err := tt.start.AddMinutes(tt.minutes)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, result)
	}
}

func TestAddMinutes_InvalidTime(t *testing.T) {
	_, err := TimeString("bogus").AddMinutes(30)
	assert.Error(t, err)
}

func TestToTime(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	result, err := TimeString("14:00").ToTime(date)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 15, 14, 0, 0, 0, time.UTC), result)
}

func TestOrdering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("11:00"))
	assert.False(t, TimeString("11:00").IsBefore("09:00"))
	assert.True(t, TimeString("16:00").IsAfter("14:00"))
}

func TestValue(t *testing.T) {
	v, err := TimeString("09:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "09:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestScan(t *testing.T) {
	var ts TimeString

	// Postgres отдаёт TIME с секундами
	require.NoError(t, ts.Scan("09:00:00"))
	assert.Equal(t, TimeString("09:00"), ts)

	require.NoError(t, ts.Scan("14:30"))
	assert.Equal(t, TimeString("14:30"), ts)

	require.NoError(t, ts.Scan([]byte("16:00:00")))
	assert.Equal(t, TimeString("16:00"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 9, 15, 11, 0, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("11:00"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
	assert.Error(t, ts.Scan("not a time"))
}
