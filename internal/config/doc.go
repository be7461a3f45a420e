// Package config provides configuration structures and utilities for excerpt.
// It defines the input files, the marker to search for, the context margins
// and the report format, and loads overrides from an optional YAML file.
package config
