package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".excerpt"

// xdgConfigFile is the file name looked up inside XDGConfigDir.
const xdgConfigFile = "config.yaml"

// Report format names accepted in the configuration file.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

// Log format names accepted by --log-format.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the structure of the .excerpt configuration file.
//
// Before and After are pointers because zero is a meaningful margin and
// must be distinguishable from "not set".
type File struct {
	// Inputs replaces the default input list.
	Inputs []string `yaml:"inputs,omitempty"`

	// Pattern is the literal marker to search for.
	Pattern string `yaml:"pattern,omitempty"`

	// Encoding is the WHATWG label of the input encoding.
	Encoding string `yaml:"encoding,omitempty"`

	// Before is the leading context in characters.
	Before *int `yaml:"before,omitempty"`

	// After is the trailing context in characters.
	After *int `yaml:"after,omitempty"`

	// Jobs is the number of inputs processed concurrently.
	Jobs int `yaml:"jobs,omitempty"`

	// Format is one of text, json or markdown.
	Format string `yaml:"format,omitempty"`
}

// LoadConfigFile loads a configuration file from a YAML document.
// If the file does not exist, it returns ErrConfigNotFound.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .excerpt in the current directory
// 3. Look for config.yaml in the XDG config directory
// 4. Look for .excerpt in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	candidates := make([]string, 0, 3)
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, DefaultConfigFile))
	}
	candidates = append(candidates, filepath.Join(XDGConfigDir(), xdgConfigFile))
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, DefaultConfigFile))
	}

	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}

	return ""
}
