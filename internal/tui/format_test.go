package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatMinutes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		minutes   int
		hasPlayed bool
		expected  string
	}{
		{name: "never played", minutes: 0, hasPlayed: false, expected: "0"},
		{name: "played but rounded to zero", minutes: 0, hasPlayed: true, expected: "< 1m"},
		{name: "minutes only", minutes: 45, hasPlayed: true, expected: "45m"},
		{name: "whole hours", minutes: 120, hasPlayed: true, expected: "2h"},
		{name: "hours and minutes", minutes: 150, hasPlayed: true, expected: "2h 30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, FormatMinutes(tt.minutes, tt.hasPlayed))
		})
	}
}

func TestFormatElapsed(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "00:00:00", FormatElapsed(0))
	assert.Equal(t, "00:00:59", FormatElapsed(59*time.Second))
	assert.Equal(t, "01:30:05", FormatElapsed(time.Hour+30*time.Minute+5*time.Second))
	assert.Equal(t, "00:00:00", FormatElapsed(-time.Minute), "negative elapsed clamps to zero")
}

func TestFormatLastPlayed(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "—", FormatLastPlayed(nil))

	when := time.Date(2025, 3, 10, 21, 30, 0, 0, time.UTC)
	assert.Equal(t, "10 Mar 2025 21:30", FormatLastPlayed(&when))
}

func TestValidateGameName(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateGameName("OK"))
	assert.NoError(t, ValidateGameName("Hollow Knight"))
	assert.Error(t, ValidateGameName(""))
	assert.Error(t, ValidateGameName("   "))
	assert.Error(t, ValidateGameName("X"))
	assert.Error(t, ValidateGameName("This game name is much much too long!"))
}

func TestValidateDescription(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateDescription(""))
	assert.NoError(t, ValidateDescription("A short description."))

	long := make([]rune, 201)
	for i := range long {
		long[i] = 'a'
	}
	assert.Error(t, ValidateDescription(string(long)))
}
