package render

import "strings"

// Substitution replaces every occurrence of From with To.
type Substitution struct {
	From string
	To   string
}

// Substitutions are applied in slice order. Later entries see the output of
// earlier ones, so "$mainMod" must come before "SUPER".
type Substitutions []Substitution

// DefaultSubstitutions returns the display table for modifier and key names.
func DefaultSubstitutions() Substitutions {
	return Substitutions{
		{From: "$mainMod", To: "SUPER"},
		{From: "$customMod", To: "ALT"},
		{From: "SHIFT", To: "⇧"},
		{From: "CTRL", To: "⌃"},
		{From: "SUPER", To: "⌘"},
		{From: "ALT", To: "⌥"},
		{From: "RETURN", To: "⏎"},
		{From: "SPACE", To: "␣"},
		{From: "exec, ", To: ""},
	}
}

// Apply runs every substitution over s.
func (subs Substitutions) Apply(s string) string {
	for _, sub := range subs {
		if sub.From == "" {
			continue
		}
		s = strings.ReplaceAll(s, sub.From, sub.To)
	}
	return s
}
