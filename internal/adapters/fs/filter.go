package fs

import (
	"github.com/sahilm/fuzzy"
	"go.trai.ch/nh/internal/core/domain"
)

// Filter keeps the units whose path fuzzy-matches pattern, best match first.
// An empty pattern returns units unchanged.
func Filter(units []domain.PackageUnit, pattern string) []domain.PackageUnit {
	if pattern == "" {
		return units
	}

	paths := make([]string, len(units))
	for i, u := range units {
		paths[i] = u.Path
	}

	matches := fuzzy.Find(pattern, paths)
	result := make([]domain.PackageUnit, 0, len(matches))
	for _, m := range matches {
		result = append(result, units[m.Index])
	}
	return result
}
