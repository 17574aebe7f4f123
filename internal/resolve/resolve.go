// Package resolve picks the keybinding config file from a list of candidates.
package resolve

import (
	"errors"
	"os"
)

// ErrNotFound is returned when none of the candidate paths exist.
var ErrNotFound = errors.New("keybinds file not found")

// Logger receives one entry per checked path.
type Logger interface {
	Info(msg interface{}, keyvals ...interface{})
}

// Candidate is a checked path.
type Candidate struct {
	Path   string
	Exists bool
}

// Resolve returns the first candidate that exists. Existence is a point-in-time
// check; the file may still disappear before it is read.
func Resolve(candidates []string, logger Logger) (string, error) {
	for _, path := range candidates {
		if logger != nil {
			logger.Info("Checking path", "path", path)
		}
		if exists(path) {
			if logger != nil {
				logger.Info("Found config", "path", path)
			}
			return path, nil
		}
	}
	return "", ErrNotFound
}

// Check reports the existence of every candidate without stopping at the first.
func Check(candidates []string) []Candidate {
	out := make([]Candidate, 0, len(candidates))
	for _, path := range candidates {
		out = append(out, Candidate{Path: path, Exists: exists(path)})
	}
	return out
}

func exists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
