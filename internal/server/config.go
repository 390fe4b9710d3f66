package server

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/hangman/internal/game"
	"github.com/lox/hangman/internal/words"
)

// FileConfig is the optional HCL configuration for `hangman serve`:
//
//	server {
//	  address   = "0.0.0.0"
//	  port      = 8080
//	  log_level = "debug"
//	  seed      = 42
//	}
//
//	words {
//	  category = "Baseball"
//	  list     = ["Lucas", "Chen"]
//	  # or: file = "words.hcl"
//	}
type FileConfig struct {
	Server ServerSettings `hcl:"server,block"`
	Words  *WordSettings  `hcl:"words,block"`
}

// ServerSettings contains listener and logging settings.
type ServerSettings struct {
	Address  string `hcl:"address,optional"`
	Port     int    `hcl:"port,optional"`
	LogLevel string `hcl:"log_level,optional"`
	Seed     *int64 `hcl:"seed,optional"`
}

// WordSettings selects the word list. File takes precedence over List.
type WordSettings struct {
	File     string   `hcl:"file,optional"`
	Category string   `hcl:"category,optional"`
	List     []string `hcl:"list,optional"`
}

// DefaultFileConfig returns the configuration used when no file is present.
func DefaultFileConfig() *FileConfig {
	return &FileConfig{
		Server: ServerSettings{
			Address:  "localhost",
			Port:     8080,
			LogLevel: "info",
		},
	}
}

// LoadFileConfig loads configuration from an HCL file. A missing file yields
// the defaults.
func LoadFileConfig(filename string) (*FileConfig, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultFileConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config FileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if config.Server.Address == "" {
		config.Server.Address = "localhost"
	}
	if config.Server.Port == 0 {
		config.Server.Port = 8080
	}
	if config.Server.LogLevel == "" {
		config.Server.LogLevel = "info"
	}

	return &config, nil
}

// Validate checks the configuration.
func (c *FileConfig) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}

	switch c.Server.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Server.LogLevel)
	}

	if c.Words != nil && c.Words.File == "" && len(c.Words.List) > 0 {
		if err := words.Validate(c.Words.List); err != nil {
			return fmt.Errorf("words: %w", err)
		}
	}
	return nil
}

// Address returns host:port for the listener.
func (c *FileConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}

// WordList resolves the configured category and words, reading the word
// file if one is named.
func (c *FileConfig) WordList() (string, []string, error) {
	if c.Words == nil {
		return game.DefaultCategory, words.DefaultWords, nil
	}
	if c.Words.File != "" {
		f, err := words.LoadFile(c.Words.File)
		if err != nil {
			return "", nil, err
		}
		category := f.Category
		if c.Words.Category != "" {
			category = c.Words.Category
		}
		return category, f.Words, nil
	}
	if len(c.Words.List) == 0 {
		return c.Words.Category, words.DefaultWords, nil
	}
	return c.Words.Category, c.Words.List, nil
}
