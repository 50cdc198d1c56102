package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gotest.tools/assert"
)

func TestReadConfigFromPath(t *testing.T) {
	tests := []struct {
		name          string
		fileContent   string
		expectedColor bool
		expectedSeed  bool
	}{
		{
			name:          "Missing file applies defaults",
			fileContent:   "",
			expectedColor: true,
			expectedSeed:  true,
		},
		{
			name: "Partial file keeps remaining defaults",
			fileContent: `
[ui]
color = false
`,
			expectedColor: false,
			expectedSeed:  true,
		},
		{
			name: "Complete file",
			fileContent: `
[ui]
color = false

[journal]
seed = false
`,
			expectedColor: false,
			expectedSeed:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config")
			if tt.fileContent != "" {
				err := os.WriteFile(path, []byte(tt.fileContent), 0644)
				require.NoError(t, err)
			}

			config, err := ReadConfigFromPath(path)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedColor, config.UI.Color)
			assert.Equal(t, tt.expectedSeed, config.Journal.Seed)
		})
	}
}

func TestReadConfigFromPathInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")
	err := os.WriteFile(path, []byte("ui = {"), 0644)
	require.NoError(t, err)

	_, err = ReadConfigFromPath(path)
	require.Error(t, err)
}

func TestConfigCheck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")
	err := os.WriteFile(path, []byte("[ui]\ncolor = true\n"), 0644)
	require.NoError(t, err)

	config, err := ReadConfigFromPath(path)
	require.NoError(t, err)
	require.NoError(t, config.Check())

	// Corrupt the file after the initial read
	err = os.WriteFile(path, []byte("[ui"), 0644)
	require.NoError(t, err)
	require.Error(t, config.Check())
}

func TestCurrentConfigSingleton(t *testing.T) {
	t.Setenv("MOODWRITER_HOME", t.TempDir())
	ResetConfig()
	defer ResetConfig()

	c1 := CurrentConfig()
	c2 := CurrentConfig()
	assert.Equal(t, c1, c2)
	assert.Equal(t, true, c1.UI.Color)
}
