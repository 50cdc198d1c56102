package mood

import (
	"fmt"
	"time"
)

// JourneyWindow bounds the journey to the most recent entries.
const JourneyWindow = 14

// JourneyEntry records the mood of one day.
type JourneyEntry struct {
	// Date label in M/DD form (day zero-padded)
	Date string
	// Key of the classified preset
	Emotion string
	// Copy of the preset valence at classification time
	Value float64
}

// DateLabel formats a date the way journey entries are keyed.
func DateLabel(date time.Time) string {
	return fmt.Sprintf("%d/%02d", int(date.Month()), date.Day())
}

// RecordToday updates the journey with today's classification.
//
// An existing entry for today is updated in place, keeping its position;
// otherwise a new entry is appended. The result is truncated to the
// JourneyWindow most recent entries, dropping the oldest first.
func RecordToday(journey []JourneyEntry, preset *EmotionPreset, today time.Time) []JourneyEntry {
	label := DateLabel(today)

	for i := range journey {
		if journey[i].Date == label {
			journey[i].Emotion = preset.Key
			journey[i].Value = preset.Valence
			return lastEntries(journey, JourneyWindow)
		}
	}

	journey = append(journey, JourneyEntry{
		Date:    label,
		Emotion: preset.Key,
		Value:   preset.Valence,
	})
	return lastEntries(journey, JourneyWindow)
}

func lastEntries(journey []JourneyEntry, n int) []JourneyEntry {
	if len(journey) <= n {
		return journey
	}
	return journey[len(journey)-n:]
}

// Keys of the demo entries seeded before today, oldest first.
var seedEmotions = []string{"calm", "joy", "neutral", "anxious", "joy", "sad", "calm"}

// SeedJourney returns the fixed demo journey covering the 7 days before today.
func SeedJourney(today time.Time) []JourneyEntry {
	var entries []JourneyEntry
	days := len(seedEmotions)
	for i, key := range seedEmotions {
		preset, ok := PresetByKey(key)
		if !ok {
			preset = Neutral()
		}
		date := today.AddDate(0, 0, i-days)
		entries = append(entries, JourneyEntry{
			Date:    DateLabel(date),
			Emotion: preset.Key,
			Value:   preset.Valence,
		})
	}
	return entries
}
