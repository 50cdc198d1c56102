package mood

import (
	"bufio"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/julien-sobczak/the-moodwriter/internal/core"
	"github.com/julien-sobczak/the-moodwriter/pkg/resync"

	_ "embed"
)

//go:embed presets.yaml
var presetsRaw string

//go:embed tasks.md
var tasksRaw string

// NeutralKey identifies the default preset returned when nothing matches.
const NeutralKey = "neutral"

// EmotionPreset is one of the five fixed emotion categories.
// Presets are read-only for the lifetime of the process.
type EmotionPreset struct {
	// Unique identifier (ex: "joy")
	Key string
	// Display label
	Name string
	// Hex display color (ex: "#FFD54F")
	Color string
	// Fixed sentiment score in [-1, 1]
	Valence float64
	// Keywords matched as substrings of the raw input
	Keywords []string
	// English fallback pattern matched against the case-folded input,
	// nil when the category has no fallback
	Pattern *regexp.Regexp
	// Suggested micro-actions
	Tasks []string
}

/* Embedded file formats */

type presetsFile struct {
	Presets []presetDefinition `yaml:"presets"`
}

type presetDefinition struct {
	Key      string   `yaml:"key"`
	Name     string   `yaml:"name"`
	Color    string   `yaml:"color"`
	Valence  float64  `yaml:"valence"`
	Keywords []string `yaml:"keywords"`
	Fallback string   `yaml:"fallback"`
}

var (
	// Lazy-load the registry and ensure a single read
	registryOnce  resync.Once
	registryOrder []*EmotionPreset
	registryIndex map[string]*EmotionPreset
)

// Presets returns the presets in matching priority order (neutral last).
func Presets() []*EmotionPreset {
	loadRegistry()
	return registryOrder
}

// PresetByKey returns the preset for a key.
func PresetByKey(key string) (*EmotionPreset, bool) {
	loadRegistry()
	preset, ok := registryIndex[key]
	return preset, ok
}

// Neutral returns the default preset.
func Neutral() *EmotionPreset {
	preset, _ := PresetByKey(NeutralKey)
	return preset
}

func loadRegistry() {
	registryOnce.Do(func() {
		presets, err := ParsePresets(presetsRaw, tasksRaw)
		if err != nil {
			// The files are embedded: failing here is a programming error.
			core.CurrentLogger().Fatalf("Unable to load emotion presets: %v", err)
		}
		registryOrder = presets
		registryIndex = make(map[string]*EmotionPreset, len(presets))
		for _, preset := range presets {
			registryIndex[preset.Key] = preset
		}
	})
}

// ParsePresets builds the preset list from the two embedded documents.
func ParsePresets(presetsDoc string, tasksDoc string) ([]*EmotionPreset, error) {
	var file presetsFile
	if err := yaml.Unmarshal([]byte(presetsDoc), &file); err != nil {
		return nil, err
	}
	if len(file.Presets) == 0 {
		return nil, fmt.Errorf("no presets defined")
	}

	tasks, err := ParseTaskSections(tasksDoc)
	if err != nil {
		return nil, err
	}

	var results []*EmotionPreset
	neutralCount := 0
	seen := make(map[string]bool)
	for _, definition := range file.Presets {
		if definition.Key == "" {
			return nil, fmt.Errorf("preset without a key")
		}
		if seen[definition.Key] {
			return nil, fmt.Errorf("duplicate preset %q", definition.Key)
		}
		seen[definition.Key] = true
		if definition.Valence < -1 || definition.Valence > 1 {
			return nil, fmt.Errorf("preset %q: valence %v outside [-1, 1]", definition.Key, definition.Valence)
		}

		var pattern *regexp.Regexp
		if definition.Fallback != "" {
			pattern, err = regexp.Compile(definition.Fallback)
			if err != nil {
				return nil, fmt.Errorf("preset %q: invalid fallback pattern: %w", definition.Key, err)
			}
		}

		if definition.Key == NeutralKey {
			neutralCount++
		}

		results = append(results, &EmotionPreset{
			Key:      definition.Key,
			Name:     definition.Name,
			Color:    definition.Color,
			Valence:  definition.Valence,
			Keywords: definition.Keywords,
			Pattern:  pattern,
			Tasks:    tasks[definition.Key],
		})
	}

	if neutralCount != 1 {
		return nil, fmt.Errorf("expected exactly one %q preset, found %d", NeutralKey, neutralCount)
	}
	if results[len(results)-1].Key != NeutralKey {
		return nil, fmt.Errorf("%q preset must come last", NeutralKey)
	}

	return results, nil
}

// ParseTaskSections extracts the per-emotion micro-action lists by reading
// the Markdown document line by line.
func ParseTaskSections(md string) (map[string][]string, error) {
	results := make(map[string][]string)

	var currentKey string
	scanner := bufio.NewScanner(strings.NewReader(md))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "## ") {
			currentKey = strings.TrimSpace(strings.TrimPrefix(line, "## "))
			continue
		}
		if !strings.HasPrefix(line, "* ") {
			// Not a list item
			continue
		}
		if currentKey == "" {
			// List item before the first section
			continue
		}
		results[currentKey] = append(results[currentKey], strings.TrimPrefix(line, "* "))
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
