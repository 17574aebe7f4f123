package config

import (
	"os"
	"path/filepath"
	"strings"
)

// Environment variable names.
const (
	EnvKeybinds = "HYPRHELP_KEYBINDS"
	EnvOutput   = "HYPRHELP_OUTPUT"
	EnvLog      = "HYPRHELP_LOG"
	EnvFormat   = "HYPRHELP_FORMAT"
	EnvLogLevel = "HYPRHELP_LOG_LEVEL"
	EnvVerbose  = "HYPRHELP_VERBOSE"
)

// loadFromEnv overrides config from environment variables. If sources is
// non-nil, it records every field that was set.
func loadFromEnv(cfg *Config, sources map[string]ConfigSource) {
	set := func(field string) {
		if sources != nil {
			sources[field] = SourceEnv
		}
	}

	if v := os.Getenv(EnvKeybinds); v != "" {
		cfg.CandidatePaths = splitList(v, string(filepath.ListSeparator))
		set("candidate_paths")
	}
	if v := os.Getenv(EnvOutput); v != "" {
		cfg.OutputFile = v
		set("output_file")
	}
	if v := os.Getenv(EnvFormat); v != "" {
		cfg.Format = v
		set("format")
	}
	if v := os.Getenv(EnvLog); v != "" {
		cfg.LogFile = v
		set("log_file")
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
		set("log_level")
	}
	if v := os.Getenv(EnvVerbose); v != "" {
		cfg.Verbose = boolFromString(v)
		set("verbose")
	}
}

func boolFromString(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
