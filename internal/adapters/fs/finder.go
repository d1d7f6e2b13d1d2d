package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.trai.ch/nh/internal/core/domain"
	"go.trai.ch/nh/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Finder = (*Finder)(nil)

// Finder discovers package definitions below a directory.
type Finder struct {
	classifier ports.Classifier
	walker     *Walker
	logger     ports.Logger
	out        io.Writer
}

// NewFinder creates a new Finder. Skip notices for uninitialized flakes are written to out.
func NewFinder(classifier ports.Classifier, walker *Walker, logger ports.Logger, out io.Writer) *Finder {
	return &Finder{
		classifier: classifier,
		walker:     walker,
		logger:     logger,
		out:        out,
	}
}

// FindAll walks root for .nix entries and classifies each one.
//
// Flakes without a lock file are reported on the output writer and left out.
// Entries that are not package definitions are left out with a debug log line,
// and any other classification failure is logged as a warning. None of these end the walk.
func (f *Finder) FindAll(ctx context.Context, root string, ignores []string) ([]domain.PackageUnit, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, statError(err, root)
	}

	for _, pattern := range ignores {
		if err := domain.ValidatePattern(pattern); err != nil {
			return nil, zerr.Wrap(err, "malformed ignore pattern")
		}
	}

	var units []domain.PackageUnit
	for path := range f.walker.WalkMatches(root, domain.NixExtension, ignores) {
		if ctx.Err() != nil {
			break
		}

		unit, err := f.classifier.Classify(path)
		switch {
		case err == nil:
			units = append(units, unit)
		case errors.Is(err, domain.ErrFlakeNotInitialized):
			_, _ = fmt.Fprintf(f.out, "Skipping %s as it is a flake without lock file\n", path)
		case errors.Is(err, domain.ErrNotFound):
			f.logger.Debug(fmt.Sprintf("skipping %s: not a package definition", path))
		default:
			f.logger.Warn(fmt.Sprintf("skipping %s: %v", path, err))
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, zerr.Wrap(err, "discovery interrupted")
	}
	return units, nil
}
