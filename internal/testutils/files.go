// TiCS: disabled // Test helpers.

package testutils

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

// DirContents returns the regular files under dir as a map of slash separated relative paths to contents.
func DirContents(t *testing.T, dir string) map[string]string {
	t.Helper()

	files := make(map[string]string)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		files[filepath.ToSlash(relPath)] = string(content)
		return nil
	})
	require.NoError(t, err, "Could not read contents of %s", dir)

	return files
}

// IsUnixNonRoot returns true if the current operating system is Unix-like and not running as root.
// File permissions are only enforced in that case.
func IsUnixNonRoot() bool {
	if o := runtime.GOOS; o != "linux" && o != "darwin" {
		return false
	}
	return os.Getuid() != 0
}
