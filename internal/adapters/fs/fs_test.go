package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// tempDir returns a symlink-free temporary directory so expected paths
// match the canonical paths produced by the classifier.
func tempDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

// writeFlake creates a flake project in dir, initialized when withLock is set.
func writeFlake(t *testing.T, dir string, withLock bool) {
	t.Helper()
	writeFile(t, filepath.Join(dir, "flake.nix"), "{ outputs = { self }: { }; }\n")
	if withLock {
		writeFile(t, filepath.Join(dir, "flake.lock"), "{\"nodes\": {}, \"version\": 7}\n")
	}
}
