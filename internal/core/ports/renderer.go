package ports

import "go.trai.ch/nh/internal/core/domain"

// Renderer presents results to the user.
//
//go:generate go run go.uber.org/mock/mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// RenderUnits writes a list of package definition units.
	RenderUnits(units []domain.PackageUnit) error

	// RenderRecords writes package metadata records.
	RenderRecords(records []domain.MetadataRecord) error
}
