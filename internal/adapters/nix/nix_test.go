package nix_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeNix is a stand-in for the nix binary. It answers `eval --raw <query>`
// for the package "pkgA" and fails for everything else.
const fakeNix = `#!/bin/sh
if [ "$1" != "eval" ] || [ "$2" != "--raw" ]; then
  echo "unexpected arguments: $*" >&2
  exit 2
fi
case "$3" in
  nixpkgs#pkgA.meta.description) printf 'A demo package' ;;
  nixpkgs#pkgA.version) printf '1.2.3' ;;
  nixpkgs#pkgA.meta.homepage) echo "error: attribute 'homepage' missing" >&2; exit 1 ;;
  nixpkgs#pkgA.meta.position) printf '/nix/store/abc-source/pkgs/pkgA.nix:42' ;;
  *) echo "error: flake does not provide attribute" >&2; exit 1 ;;
esac
`

// writeFakeNix installs the fake binary in a temporary directory and returns its path.
func writeFakeNix(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nix")
	//nolint:gosec // test helper needs an executable script
	require.NoError(t, os.WriteFile(path, []byte(fakeNix), 0o700))
	return path
}
