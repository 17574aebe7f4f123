package config

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceUserFile ConfigSource = "user file"
	SourceEnv      ConfigSource = "environment"
	SourceFlag     ConfigSource = "flag"
)

// ConfigWithSources holds configuration along with source information for each field.
type ConfigWithSources struct {
	Config  *Config
	Sources map[string]ConfigSource
}

// Default values.
const (
	DefaultOutputFile = "/tmp/hypr_help.md"
	DefaultLogFile    = "/tmp/hypr_help_debug.log"
	DefaultFormat     = "markdown"
	DefaultLogLevel   = "debug"
)

// DefaultCandidatePaths returns the keybinding file locations checked in order.
func DefaultCandidatePaths() []string {
	return []string{
		"~/.config/hypr/configs/Keybinds.conf",
		"~/dotfiles/dotconfig/hypr/configs/Keybinds.conf",
		"/home/amiral/dotfiles/dotconfig/hypr/configs/Keybinds.conf",
	}
}

// Config holds the full configuration for hyprhelp.
type Config struct {
	// Keybinding file candidates, first existing wins
	CandidatePaths []string `toml:"candidate_paths"`

	// Output
	OutputFile string `toml:"output_file"`
	Format     string `toml:"format"`

	// Debug log
	LogFile  string `toml:"log_file"`
	LogLevel string `toml:"log_level"`
	Verbose  bool   `toml:"verbose"`

	// ConfigFile is the user config file that was applied (computed)
	ConfigFile string `toml:"-"`
}

// configFields returns the list of configurable field names for source tracking.
func configFields() []string {
	return []string{
		"candidate_paths",
		"output_file",
		"format",
		"log_file",
		"log_level",
		"verbose",
	}
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	cfg.CandidatePaths = DefaultCandidatePaths()
	cfg.OutputFile = DefaultOutputFile
	cfg.Format = DefaultFormat
	cfg.LogFile = DefaultLogFile
	cfg.LogLevel = DefaultLogLevel
	cfg.Verbose = false
}
