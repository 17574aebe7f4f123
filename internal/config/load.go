package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/nibzard/hyprhelp/internal/logging"
	"github.com/nibzard/hyprhelp/internal/render"
)

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. User config file
// 3. Environment variables
// 4. CLI flags
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cws, err := load(fs, args, nil)
	if err != nil {
		return nil, err
	}
	return cws.Config, nil
}

// LoadWithSources loads configuration and tracks the source of each value.
func LoadWithSources(fs *flag.FlagSet, args []string) (*ConfigWithSources, error) {
	sources := make(map[string]ConfigSource)
	for _, field := range configFields() {
		sources[field] = SourceDefault
	}
	return load(fs, args, sources)
}

func load(fs *flag.FlagSet, args []string, sources map[string]ConfigSource) (*ConfigWithSources, error) {
	cfg := &Config{}

	// 1. Set defaults
	setDefaults(cfg)

	// 2. Try to load from user config file
	if userConfigFile := findUserConfigFile(); userConfigFile != "" {
		if err := loadConfigFile(cfg, userConfigFile, sources); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", userConfigFile, err)
		}
		cfg.ConfigFile = userConfigFile
	}

	// 3. Override from environment
	loadFromEnv(cfg, sources)

	// 4. Parse CLI flags (they override everything)
	if err := parseFlags(cfg, fs, args, sources); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	// 5. Compute derived values
	if err := finalizeConfig(cfg); err != nil {
		return nil, fmt.Errorf("finalizing config: %w", err)
	}

	return &ConfigWithSources{Config: cfg, Sources: sources}, nil
}

// loadConfigFile validates and applies a TOML config file. Keys present in the
// file are recorded in sources when it is non-nil.
func loadConfigFile(cfg *Config, path string, sources map[string]ConfigSource) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var raw map[string]interface{}
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return err
	}
	if raw == nil {
		raw = map[string]interface{}{}
	}
	if err := validateRaw(path, raw); err != nil {
		return err
	}

	meta, err := toml.Decode(string(data), cfg)
	if err != nil {
		return err
	}
	if sources != nil {
		for _, field := range configFields() {
			if meta.IsDefined(field) {
				sources[field] = SourceUserFile
			}
		}
	}
	return nil
}

// finalizeConfig expands paths and validates enumerated values.
func finalizeConfig(cfg *Config) error {
	cfg.CandidatePaths = expandPaths(cfg.CandidatePaths)
	if len(cfg.CandidatePaths) == 0 {
		return fmt.Errorf("no keybinding file candidates configured")
	}
	cfg.OutputFile = expandPath(cfg.OutputFile)
	if cfg.OutputFile == "" {
		return fmt.Errorf("output file is empty")
	}
	cfg.LogFile = expandPath(cfg.LogFile)

	format, err := render.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	cfg.Format = string(format)

	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return err
	}
	return nil
}

// OutputFormat returns the parsed output format.
func (c *Config) OutputFormat() render.Format {
	format, err := render.ParseFormat(c.Format)
	if err != nil {
		return render.FormatMarkdown
	}
	return format
}
