// Package keybinds parses Hyprland keybinding config files.
//
// A config file is read line by line. Each trimmed line is classified as:
//   - a section header: three or more leading '#' characters, rendered as a
//     labelled separator row. Empty labels and the KEYBINDINGS banner are skipped.
//   - a bind directive: "bind" plus optional flag letters, an '=' and the
//     comma-separated fields "mods, key, action". Everything after the first '#'
//     is the description.
//   - anything else, which is ignored.
//
// Bind lines that do not carry all three fields are dropped without an error.
package keybinds
