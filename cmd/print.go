package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/julien-sobczak/the-moodwriter/internal/core"
	"github.com/julien-sobczak/the-moodwriter/internal/mood"
)

// Closest ANSI color per category (terminal output of one-shot commands)
var presetColors = map[string]color.Attribute{
	"joy":     color.FgYellow,
	"calm":    color.FgGreen,
	"anxious": color.FgMagenta,
	"sad":     color.FgBlue,
	"neutral": color.FgWhite,
}

func applyColorConfig() {
	if !core.CurrentConfig().UI.Color {
		color.NoColor = true
	}
}

// PrintPreset writes a classification result for one-shot commands.
func PrintPreset(preset *mood.EmotionPreset) {
	applyColorConfig()

	categoryColor := color.New(presetColors[preset.Key], color.Bold)
	categoryColor.Printf("%s (%s)\n", preset.Name, preset.Key)
	fmt.Printf("  color    %s\n", preset.Color)
	fmt.Printf("  valence  %+.1f\n", preset.Valence)
	fmt.Println("  try:")
	for _, task := range preset.Tasks {
		fmt.Printf("  - %s\n", task)
	}
}

// FormatJourneyRow renders one journey entry as an aligned text row.
func FormatJourneyRow(entry mood.JourneyEntry) string {
	preset, ok := mood.PresetByKey(entry.Emotion)
	name := entry.Emotion
	if ok {
		name = preset.Name
	}
	return fmt.Sprintf("%-5s  %-8s %+.1f", entry.Date, name, entry.Value)
}

// FormatRainbow renders the 7 progress slots as a single line.
func FormatRainbow(session mood.Session) string {
	var sb strings.Builder
	for _, lit := range session.Rainbow {
		if lit {
			sb.WriteString("●")
		} else {
			sb.WriteString("○")
		}
	}
	return sb.String()
}
