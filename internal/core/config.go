package core

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julien-sobczak/the-moodwriter/pkg/resync"
	"github.com/pelletier/go-toml/v2"
)

// Default ~/.moodwriter/config content applied when the file is missing
const DefaultConfig = `
[ui]
color = true

[journal]
seed = true
`

var (
	// Lazy-load configuration and ensure a single read
	configOnce      resync.Once
	configSingleton *Config
)

// Note: Fields must be public for toml package to unmarshall
type Config struct {
	UI      UIConfig      `toml:"ui"`
	Journal JournalConfig `toml:"journal"`

	// Path of the file the configuration was read from, empty for defaults
	path string
}

type UIConfig struct {
	// Colorize command output
	Color bool `toml:"color"`
}

type JournalConfig struct {
	// Start new sessions with the demo journey seed
	Seed bool `toml:"seed"`
}

// CurrentConfig returns the user configuration, loading it on first use.
func CurrentConfig() *Config {
	configOnce.Do(func() {
		var err error
		configSingleton, err = ReadConfigFromPath(ConfigPath())
		if err != nil {
			CurrentLogger().Fatalf("Unable to read configuration: %v", err)
		}
	})
	return configSingleton
}

// ResetConfig clears the cached configuration. Only useful in tests.
func ResetConfig() {
	configOnce.Reset()
	configSingleton = nil
}

// ConfigPath returns the location of the optional configuration file.
// $MOODWRITER_HOME overrides the default $HOME/.moodwriter directory.
func ConfigPath() string {
	home := os.Getenv("MOODWRITER_HOME")
	if home == "" {
		userHome, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		home = filepath.Join(userHome, ".moodwriter")
	}
	return filepath.Join(home, "config")
}

// ReadConfigFromPath parses the configuration file.
// A missing file is not an error; defaults apply.
func ReadConfigFromPath(path string) (*Config, error) {
	config, err := defaultConfig()
	if err != nil {
		return nil, err
	}

	if path == "" {
		return config, nil
	}
	content, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(content, config); err != nil {
		return nil, fmt.Errorf("invalid configuration file %q: %w", path, err)
	}
	config.path = path
	return config, nil
}

func defaultConfig() (*Config, error) {
	config := &Config{}
	if err := toml.Unmarshal([]byte(DefaultConfig), config); err != nil {
		return nil, err
	}
	return config, nil
}

// Check validates the configuration file without caching it.
func (c *Config) Check() error {
	if c.path == "" {
		// Running on defaults
		return nil
	}
	_, err := ReadConfigFromPath(c.path)
	return err
}
