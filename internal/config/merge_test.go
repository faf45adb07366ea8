package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/sheetboard/internal/config"
)

// newDefaultTarget returns a Config with non-zero values everywhere so tests
// can tell an untouched section from a replaced one.
func newDefaultTarget() *config.Config {
	return &config.Config{
		Source: config.SourceConfig{
			URL:     "https://sheets.example/base.tsv",
			Timeout: 30 * time.Second,
		},
		Server: config.ServerConfig{Addr: "127.0.0.1:8080"},
		Logging: config.LoggingConfig{
			Level:  "info",
			Format: "console",
			File:   "/var/log/sheetboard.log",
		},
	}
}

// writeOverlay writes YAML content to a temp file and returns its path.
func writeOverlay(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestShallowMergeYAML_SingleKeyOverride(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
server:
  addr: 0.0.0.0:9000
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, "0.0.0.0:9000", target.Server.Addr)
	assert.Equal(t, "https://sheets.example/base.tsv", target.Source.URL)
	assert.Equal(t, 30*time.Second, target.Source.Timeout)
	assert.Equal(t, "info", target.Logging.Level)
}

func TestShallowMergeYAML_MultipleKeyOverride(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
source:
  url: https://sheets.example/other.tsv
  timeout: 5s
logging:
  level: debug
  format: json
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, "https://sheets.example/other.tsv", target.Source.URL)
	assert.Equal(t, 5*time.Second, target.Source.Timeout)
	assert.Equal(t, "debug", target.Logging.Level)
	assert.Equal(t, "json", target.Logging.Format)
	assert.Equal(t, "127.0.0.1:8080", target.Server.Addr)
}

func TestShallowMergeYAML_ZeroValueFieldsReplaceDefaults(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
logging:
  level: warn
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	// The whole section is replaced, so fields the overlay omits are zeroed.
	assert.Equal(t, "warn", target.Logging.Level)
	assert.Empty(t, target.Logging.Format)
	assert.Empty(t, target.Logging.File)
}

func TestShallowMergeYAML_EmptyAndCommentOnlyFiles(t *testing.T) {
	for name, content := range map[string]string{
		"empty":        "",
		"comment only": "# nothing configured yet\n",
	} {
		t.Run(name, func(t *testing.T) {
			target := newDefaultTarget()
			require.NoError(t, config.ShallowMergeYAML(target, writeOverlay(t, content)))
			assert.Equal(t, newDefaultTarget(), target)
		})
	}
}

func TestShallowMergeYAML_UnknownKeysIgnored(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
theme:
  dark: true
server:
  addr: :7000
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))
	assert.Equal(t, ":7000", target.Server.Addr)
}

func TestShallowMergeYAML_Errors(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		target  *config.Config
		wantErr string
	}{
		{
			name:    "corrupted yaml",
			path:    func(t *testing.T) string { return writeOverlay(t, "source: [unclosed") },
			target:  newDefaultTarget(),
			wantErr: "parsing config YAML",
		},
		{
			name:    "section of the wrong shape",
			path:    func(t *testing.T) string { return writeOverlay(t, "source: just-a-string\n") },
			target:  newDefaultTarget(),
			wantErr: `applying config section "source"`,
		},
		{
			name:    "bad duration",
			path:    func(t *testing.T) string { return writeOverlay(t, "source:\n  timeout: soon\n") },
			target:  newDefaultTarget(),
			wantErr: `applying config section "source"`,
		},
		{
			name:    "missing file",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.yaml") },
			target:  newDefaultTarget(),
			wantErr: "reading config file",
		},
		{
			name:    "nil target",
			path:    func(t *testing.T) string { return writeOverlay(t, "") },
			wantErr: "nil target",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := config.ShallowMergeYAML(tt.target, tt.path(t))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
