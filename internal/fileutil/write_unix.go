//go:build !windows

package fileutil

import (
	"io/fs"

	"github.com/google/renameio/v2"
)

// writeFile fsyncs a temp file and renames it over path.
func writeFile(path string, data []byte, perm fs.FileMode) error {
	return renameio.WriteFile(path, data, perm)
}
