package cmd

import (
	"strings"
	"testing"
	"time"

	"gotest.tools/assert"

	"github.com/julien-sobczak/the-moodwriter/internal/mood"
)

func TestFormatJourneyRow(t *testing.T) {
	tests := []struct {
		name         string
		entry        mood.JourneyEntry
		expectedName string
		expectedVal  string
	}{
		{
			name:         "Known emotion shows its display name",
			entry:        mood.JourneyEntry{Date: "3/07", Emotion: "joy", Value: 0.8},
			expectedName: "開心",
			expectedVal:  "+0.8",
		},
		{
			name:         "Negative valence keeps its sign",
			entry:        mood.JourneyEntry{Date: "11/21", Emotion: "sad", Value: -0.6},
			expectedName: "難過",
			expectedVal:  "-0.6",
		},
		{
			name:         "Unknown emotion falls back to the key",
			entry:        mood.JourneyEntry{Date: "3/07", Emotion: "angry", Value: 0},
			expectedName: "angry",
			expectedVal:  "+0.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := FormatJourneyRow(tt.entry)
			assert.Assert(t, strings.HasPrefix(row, tt.entry.Date))
			assert.Assert(t, strings.Contains(row, tt.expectedName))
			assert.Assert(t, strings.HasSuffix(row, tt.expectedVal))
		})
	}
}

func TestFormatRainbow(t *testing.T) {
	session := mood.NewBlankSession()
	assert.Equal(t, "○○○○○○○", FormatRainbow(session))

	session = session.CompleteTask("a")
	session = session.CompleteTask("b")
	assert.Equal(t, "●●○○○○○", FormatRainbow(session))

	for i := 0; i < 10; i++ {
		session = session.CompleteTask(string(rune('c' + i)))
	}
	assert.Equal(t, "●●●●●●●", FormatRainbow(session))
}

func TestFormatJourneyRowSeed(t *testing.T) {
	today := time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC)
	for _, entry := range mood.SeedJourney(today) {
		row := FormatJourneyRow(entry)
		assert.Assert(t, len(row) > 0)
	}
}
