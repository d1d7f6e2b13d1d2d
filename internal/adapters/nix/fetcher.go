package nix

import (
	"context"

	"go.trai.ch/nh/internal/core/domain"
	"go.trai.ch/nh/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

var _ ports.MetadataFetcher = (*Fetcher)(nil)

// Fetcher implements ports.MetadataFetcher with one evaluation per attribute.
type Fetcher struct {
	evaluator ports.Evaluator
}

// NewFetcher creates a new Fetcher.
func NewFetcher(evaluator ports.Evaluator) *Fetcher {
	return &Fetcher{evaluator: evaluator}
}

// Fetch evaluates every metadata attribute of packageName concurrently and
// waits for all of them. A failed attribute is left empty.
func (f *Fetcher) Fetch(ctx context.Context, packageName, projectRef string) domain.MetadataRecord {
	results := make([]string, len(domain.Attributes))

	var g errgroup.Group
	g.SetLimit(len(domain.Attributes))

	for i, attr := range domain.Attributes {
		g.Go(func() error {
			value := f.evaluator.Eval(ctx, domain.Query(projectRef, packageName, attr))
			if attr == domain.AttrPosition {
				value = domain.StripPosition(value)
			}
			// Each goroutine owns its slot.
			results[i] = value
			return nil
		})
	}
	_ = g.Wait()

	values := make(map[domain.Attribute]string, len(results))
	for i, attr := range domain.Attributes {
		values[attr] = results[i]
	}
	return domain.NewMetadataRecord(packageName, values)
}

// FetchAll fetches the metadata of each name in turn.
func (f *Fetcher) FetchAll(ctx context.Context, projectRef string, names []string) []domain.MetadataRecord {
	records := make([]domain.MetadataRecord, 0, len(names))
	for _, name := range names {
		records = append(records, f.Fetch(ctx, name, projectRef))
	}
	return records
}
