package mood

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// VisualStyle tags a category for the rendering layer.
// Pure data: the core never interprets the tag.
type VisualStyle struct {
	// Animation family to render (burst, drift, ripple, rain, still)
	Tag string
	// Main display color of the category
	Color string
	// Dimmed variant, stronger valences keep more of the main color
	Accent string
}

var styleTags = map[string]string{
	"joy":     "burst",
	"calm":    "drift",
	"anxious": "ripple",
	"sad":     "rain",
	"neutral": "still",
}

// StyleFor returns the visual style of a category.
// Unknown keys fall back to the neutral style.
func StyleFor(key string) VisualStyle {
	preset, ok := PresetByKey(key)
	if !ok {
		preset = Neutral()
	}
	return VisualStyle{
		Tag:    styleTags[preset.Key],
		Color:  preset.Color,
		Accent: accentColor(preset.Color, preset.Valence),
	}
}

func accentColor(hex string, valence float64) string {
	base, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	gray := colorful.Color{R: 0.5, G: 0.5, B: 0.5}
	// Neutral valences fade further toward gray
	fade := (1 - math.Abs(valence)) * 0.6
	return base.BlendLab(gray, fade).Clamped().Hex()
}
