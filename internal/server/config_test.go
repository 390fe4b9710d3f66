package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lox/hangman/internal/words"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFileConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFileConfig(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, DefaultFileConfig(), cfg)
	assert.Equal(t, "localhost:8080", cfg.Address())
	require.NoError(t, cfg.Validate())

	category, list, err := cfg.WordList()
	require.NoError(t, err)
	assert.Equal(t, "Baseball", category)
	assert.Equal(t, words.DefaultWords, list)
}

func TestLoadFileConfig(t *testing.T) {
	path := writeFile(t, "hangman.hcl", `
server {
  port = 9090
  seed = 7
}

words {
  category = "Infielders"
  list     = ["Jeter", "Ripken"]
}
`)
	cfg, err := LoadFileConfig(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "localhost:9090", cfg.Address())
	assert.Equal(t, "info", cfg.Server.LogLevel)
	require.NotNil(t, cfg.Server.Seed)
	assert.Equal(t, int64(7), *cfg.Server.Seed)

	category, list, err := cfg.WordList()
	require.NoError(t, err)
	assert.Equal(t, "Infielders", category)
	assert.Equal(t, []string{"Jeter", "Ripken"}, list)
}

func TestWordListFromFile(t *testing.T) {
	list := writeFile(t, "words.hcl", `
category = "Catchers"
words    = ["Bench", "Berra"]
`)
	cfg := DefaultFileConfig()
	cfg.Words = &WordSettings{File: list}

	category, got, err := cfg.WordList()
	require.NoError(t, err)
	assert.Equal(t, "Catchers", category)
	assert.Equal(t, []string{"Bench", "Berra"}, got)

	cfg.Words.Category = "Override"
	category, _, err = cfg.WordList()
	require.NoError(t, err)
	assert.Equal(t, "Override", category)
}

func TestFileConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*FileConfig)
		wantErr string
	}{
		{name: "defaults", mutate: func(*FileConfig) {}},
		{name: "bad port", mutate: func(c *FileConfig) { c.Server.Port = 70000 }, wantErr: "invalid port"},
		{name: "bad level", mutate: func(c *FileConfig) { c.Server.LogLevel = "loud" }, wantErr: "invalid log level"},
		{
			name:    "bad word",
			mutate:  func(c *FileConfig) { c.Words = &WordSettings{List: []string{"n0"}} },
			wantErr: "words: word 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultFileConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFileConfigParseError(t *testing.T) {
	path := writeFile(t, "bad.hcl", `server {`)
	_, err := LoadFileConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse HCL file")
}
