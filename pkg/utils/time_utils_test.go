package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, 2024, parsed.Year())
	assert.Equal(t, time.June, parsed.Month())
	assert.Equal(t, 1, parsed.Day())

	_, err = ParseDate("01/06/2024")
	assert.Error(t, err)
}

func TestFormatDate_ZeroTime(t *testing.T) {
	assert.Equal(t, "", FormatDate(time.Time{}))
}

func TestDaysBetweenInclusive(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{name: "same day", start: "2024-06-01", end: "2024-06-01", want: 1},
		{name: "three days", start: "2024-06-01", end: "2024-06-03", want: 3},
		{name: "across month boundary", start: "2024-06-29", end: "2024-07-02", want: 4},
		{name: "across leap day", start: "2024-02-28", end: "2024-03-01", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, err := ParseDate(tt.start)
			require.NoError(t, err)
			end, err := ParseDate(tt.end)
			require.NoError(t, err)

			assert.Equal(t, tt.want, DaysBetweenInclusive(start, end))
		})
	}
}
