package config

import (
	"os"
	"path/filepath"
	"strings"
)

// expandPath expands $VAR references and a leading ~ in p. Unset variables
// and a ~ that cannot be resolved are left as is, so the path simply fails
// the existence check.
func expandPath(p string) string {
	if p == "" {
		return p
	}

	expanded := os.Expand(p, lookupEnvOrKeep)
	if expanded != "~" && !strings.HasPrefix(expanded, "~/") {
		return expanded
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return expanded
	}
	if expanded == "~" {
		return home
	}
	return filepath.Join(home, expanded[2:])
}

// lookupEnvOrKeep returns the value of a set variable and the literal $name
// otherwise.
func lookupEnvOrKeep(name string) string {
	if v, ok := os.LookupEnv(name); ok {
		return v
	}
	return "$" + name
}

// expandPaths expands every path and drops blank entries.
func expandPaths(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, expandPath(p))
	}
	return out
}

// splitList splits a comma or OS path-list separated value.
func splitList(s string, sep string) []string {
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
