package ports

import (
	"context"

	"go.trai.ch/nh/internal/core/domain"
)

// Evaluator evaluates Nix installables in raw output mode.
//
//go:generate go run go.uber.org/mock/mockgen -source=evaluator.go -destination=mocks/mock_evaluator.go -package=mocks
type Evaluator interface {
	// Eval returns the raw value of query, or an empty string when evaluation fails.
	Eval(ctx context.Context, query string) string
}

// MetadataFetcher looks up package metadata.
type MetadataFetcher interface {
	// Fetch resolves the metadata of packageName in projectRef. It never fails;
	// fields whose lookup failed are left empty.
	Fetch(ctx context.Context, packageName, projectRef string) domain.MetadataRecord

	// FetchAll calls Fetch once per name and keeps the input order.
	FetchAll(ctx context.Context, projectRef string, names []string) []domain.MetadataRecord
}

// Updater refreshes the pinned inputs of a package definition.
type Updater interface {
	// Update echoes the update command and runs it unless dryRun is set.
	Update(ctx context.Context, unit domain.PackageUnit, dryRun bool) error
}
