// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/nh/internal/core/domain"
)

// Classifier resolves a filesystem path to a package definition unit.
//
//go:generate go run go.uber.org/mock/mockgen -source=classifier.go -destination=mocks/mock_classifier.go -package=mocks
type Classifier interface {
	// Classify canonicalizes path and decides whether it is a standalone file or a flake project.
	//
	// It fails with domain.ErrNotFound when the path does not exist or has no recognized shape,
	// and with domain.ErrFlakeNotInitialized for a flake directory without a lock file.
	Classify(path string) (domain.PackageUnit, error)
}

// Finder discovers package definition units below a directory.
type Finder interface {
	// FindAll walks root and returns every unit that classifies successfully.
	// Entries matching one of ignores are not visited. Candidates that fail
	// classification are skipped, never fatal.
	FindAll(ctx context.Context, root string, ignores []string) ([]domain.PackageUnit, error)
}
