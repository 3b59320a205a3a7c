package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_Ordering(t *testing.T) {
	morning, err := NewTimeStringFromString("09:00")
	require.NoError(t, err)
	afternoon, err := NewTimeStringFromString("13:00")
	require.NoError(t, err)

	assert.True(t, morning.IsBefore(afternoon))
	assert.True(t, afternoon.IsAfter(morning))
	assert.False(t, morning.IsBefore(morning))
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		minutes int
		want    string
	}{
		{"within hour", "09:00", 30, "09:30"},
		{"across hour", "09:45", 30, "10:15"},
		{"caps at end of day", "23:30", 60, "23:59"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.start)
			require.NoError(t, err)

			got, err := ts.AddMinutes(tt.minutes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestTimeString_Invalid(t *testing.T) {
	_, err := NewTimeStringFromString("25:00")
	assert.Error(t, err)

	_, err = NewTimeStringFromString("9am")
	assert.Error(t, err)
}

func TestDateString_CalendarDayIdentity(t *testing.T) {
	// Two timestamps on the same calendar day with different clock times
	// must normalize to the same date.
	early := time.Date(2026, 9, 14, 0, 30, 0, 0, time.UTC)
	late := time.Date(2026, 9, 14, 23, 30, 0, 0, time.UTC)

	assert.Equal(t, NewDateString(early), NewDateString(late))
	assert.Equal(t, "2026-09-14", NewDateString(early).String())
}

func TestDateString_Weekday(t *testing.T) {
	d, err := NewDateStringFromString("2026-09-14")
	require.NoError(t, err)

	wd, err := d.Weekday()
	require.NoError(t, err)
	assert.Equal(t, time.Monday, wd)
}

func TestDateString_ScanFromTime(t *testing.T) {
	var d DateString
	require.NoError(t, d.Scan(time.Date(2026, 3, 2, 15, 4, 5, 0, time.UTC)))
	assert.Equal(t, "2026-03-02", d.String())
}
