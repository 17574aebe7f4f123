// Package config handles configuration loading and defaults.
//
// Configuration is loaded from multiple sources in priority order:
// 1. Built-in defaults
// 2. User config file (hyprhelp.toml, see below)
// 3. Environment variables (HYPRHELP_*)
// 4. CLI flags
//
// Each level overrides the previous one, so CLI flags take precedence.
// With no file, environment or flags, the defaults reproduce the fixed
// behaviour: the three Keybinds.conf candidates, /tmp/hypr_help.md and
// /tmp/hypr_help_debug.log.
//
// User-level config locations:
// - $HYPRHELP_CONFIG when set
// - ~/.hyprhelp/hyprhelp.toml (preferred)
// - Windows: %APPDATA%\hyprhelp\hyprhelp.toml
// - macOS: ~/Library/Application Support/hyprhelp/hyprhelp.toml
// - Linux/BSD: $XDG_CONFIG_HOME/hyprhelp/hyprhelp.toml or ~/.config/hyprhelp/hyprhelp.toml
//
// The file is checked against an embedded JSON Schema before it is applied.
package config
