//go:build !windows

package output

import (
	"fmt"

	"github.com/google/renameio/v2"
)

// writeFile writes through a pending file: fsync, then atomic rename.
func writeFile(path string, data []byte) error {
	pendingFile, err := renameio.NewPendingFile(path, renameio.WithPermissions(FileMode))
	if err != nil {
		return fmt.Errorf("create pending file: %w", err)
	}
	// no-op once committed
	defer pendingFile.Cleanup()

	if _, err := pendingFile.Write(data); err != nil {
		return fmt.Errorf("write pending file: %w", err)
	}
	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace: %w", err)
	}
	return nil
}
