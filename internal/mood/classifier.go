package mood

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/julien-sobczak/the-moodwriter/pkg/text"
)

// Classify maps a free-text mood description to a preset.
//
// Matching happens in two passes over the non-neutral presets, always in
// priority order (joy, calm, anxious, sad): first the keywords as raw
// substrings, then the English fallback pattern on the case-folded input.
// The first match wins. Blank input and unmatched input map to neutral.
//
// Known quirk kept from the matching rules: negated text still matches the
// contained keyword ("不開心" resolves to joy).
func Classify(input string) *EmotionPreset {
	if text.IsBlank(input) {
		return Neutral()
	}

	for _, preset := range Presets() {
		if preset.Key == NeutralKey {
			continue
		}
		for _, keyword := range preset.Keywords {
			if strings.Contains(input, keyword) {
				return preset
			}
		}
	}

	// Unicode-aware case folding (a cases.Caser is stateful, do not share)
	folded := cases.Fold().String(input)
	for _, preset := range Presets() {
		if preset.Key == NeutralKey || preset.Pattern == nil {
			continue
		}
		if preset.Pattern.MatchString(folded) {
			return preset
		}
	}

	return Neutral()
}
