package config

import (
	"flag"
)

// flagFields maps flag names to the config field they set.
var flagFields = map[string]string{
	"keybinds":  "candidate_paths",
	"output":    "output_file",
	"format":    "format",
	"log":       "log_file",
	"log-level": "log_level",
	"verbose":   "verbose",
}

// parseFlags defines the global flags on fs and parses args. If sources is
// non-nil, explicitly set flags are recorded.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string, sources map[string]ConfigSource) error {
	if fs == nil {
		fs = flag.NewFlagSet(appName, flag.ContinueOnError)
	}

	var keybinds string
	fs.StringVar(&keybinds, "keybinds", "", "Comma-separated keybinding file candidates (replaces the defaults)")
	fs.StringVar(&cfg.OutputFile, "output", cfg.OutputFile, "Output document path")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "Output format (markdown|html|json)")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "Debug log path")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Debug log level (debug|info|warn|error)")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Mirror debug log entries to stderr")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if keybinds != "" {
		cfg.CandidatePaths = splitList(keybinds, ",")
	}

	if sources != nil {
		fs.Visit(func(f *flag.Flag) {
			if field, ok := flagFields[f.Name]; ok {
				sources[field] = SourceFlag
			}
		})
	}
	return nil
}
