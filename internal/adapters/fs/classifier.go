// Package fs provides file system adapters for discovering and classifying Nix files.
package fs

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/nh/internal/core/domain"
	"go.trai.ch/nh/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Classifier = (*Classifier)(nil)

// Classifier implements ports.Classifier on the local file system.
type Classifier struct{}

// NewClassifier creates a new Classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify resolves path to a package definition unit.
//
// A flake is always referred to by its directory, so a path naming flake.nix is
// replaced by its parent. A directory with only a default.nix becomes that file.
func (c *Classifier) Classify(path string) (domain.PackageUnit, error) {
	resolved, err := canonicalize(path)
	if err != nil {
		return domain.PackageUnit{}, err
	}

	if filepath.Base(resolved) == domain.FlakeFile {
		resolved = filepath.Dir(resolved)
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return domain.PackageUnit{}, statError(err, resolved)
	}

	if info.IsDir() {
		switch {
		case exists(filepath.Join(resolved, domain.FlakeFile)):
			if !exists(filepath.Join(resolved, domain.FlakeLockFile)) {
				return domain.PackageUnit{}, zerr.With(
					zerr.Wrap(domain.ErrFlakeNotInitialized, "failed to classify path"),
					"path", resolved,
				)
			}
			return domain.NewFlakeProject(resolved), nil
		case exists(filepath.Join(resolved, domain.DefaultFile)):
			resolved = filepath.Join(resolved, domain.DefaultFile)
		default:
			notFound := zerr.Wrap(domain.ErrNotFound, "failed to classify path")
			notFound = zerr.With(notFound, "path", resolved)
			return domain.PackageUnit{}, zerr.With(notFound, "reason", "directory has neither flake.nix nor default.nix")
		}
	}

	//nolint:gosec // path is the user's own package definition
	content, err := os.ReadFile(resolved)
	if err != nil {
		return domain.PackageUnit{}, zerr.With(zerr.Wrap(err, "failed to read package definition"), "path", resolved)
	}

	return domain.NewStandaloneFile(resolved, bytes.Contains(content, []byte(domain.PlatformFetchMarker))), nil
}

// canonicalize returns the absolute, symlink-free form of path.
// A path that does not exist fails with domain.ErrNotFound.
func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve absolute path"), "path", path)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", statError(err, abs)
	}
	return resolved, nil
}

func statError(err error, path string) error {
	if errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(domain.ErrNotFound, "failed to classify path"), "path", path)
	}
	return zerr.With(zerr.Wrap(err, "failed to stat path"), "path", path)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
