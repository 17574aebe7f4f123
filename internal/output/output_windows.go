//go:build windows

package output

import "os"

// renameio does not support Windows, so the file is overwritten in place.
func writeFile(path string, data []byte) error {
	return os.WriteFile(path, data, FileMode)
}
