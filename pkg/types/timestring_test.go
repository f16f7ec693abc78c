package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	cases := []struct {
		input   string
		wantErr bool
	}{
		{"10:00", false},
		{"00:00", false},
		{"23:59", false},
		{"24:00", true},
		{"10:60", true},
		{"10:00:00", true},
		{"garbage", true},
		{"", true},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.input, ts.String())
		})
	}
}

func TestParseDBTime(t *testing.T) {
	// PostgreSQL отдаёт колонку TIME как HH:MM:SS
	ts, err := ParseDBTime("09:30:00")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	// Уже нормализованное значение проходит как есть
	ts, err = ParseDBTime("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	_, err = ParseDBTime("garbage")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2025, 10, 15, 7, 5, 59, 0, time.UTC))
	assert.Equal(t, "07:05", ts.String())
}

func TestComparisons(t *testing.T) {
	early := TimeString("09:00")
	late := TimeString("18:30")

	assert.True(t, early.IsBefore(late))
	assert.False(t, late.IsBefore(early))
	assert.True(t, late.IsAfter(early))
	assert.False(t, early.IsAfter(early))
}

func TestAddMinutes(t *testing.T) {
	ts, err := TimeString("10:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, "11:30", ts.String())

	_, err = TimeString("garbage").AddMinutes(10)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestMinutes(t *testing.T) {
	minutes, err := TimeString("01:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 90, minutes)
}

func TestIsZero(t *testing.T) {
	assert.True(t, TimeString("").IsZero())
	assert.False(t, TimeString("10:00").IsZero())
}
