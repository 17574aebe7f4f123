package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# hyprhelp configuration file
# Values can be overridden by HYPRHELP_* environment variables or CLI flags.

# Keybinding files, checked in order; the first one that exists is used.
# Paths support ~ and $VAR expansion.
candidate_paths = [
  "~/.config/hypr/configs/Keybinds.conf",
  "~/dotfiles/dotconfig/hypr/configs/Keybinds.conf",
]

# Rendered document, overwritten on every run
output_file = "/tmp/hypr_help.md"

# Output format: markdown, html or json
format = "markdown"

# Debug log, truncated on every run
log_file = "/tmp/hypr_help_debug.log"

# Debug log level: debug, info, warn or error
log_level = "debug"

# Mirror debug log entries to stderr
verbose = false
`
}
