package catalogrepo

import (
	"context"

	"github.com/gayathri-1911/travel-assistant/internal/domain/catalog"
)

// MemoryRepository serves the bundled sample catalog. It stands in for the
// headless CMS in development and tests; records are immutable for the process
// lifetime.
type MemoryRepository struct {
	tours        []catalog.Tour
	destinations []catalog.Destination
}

// NewMemoryRepository constructs a repository preloaded with the sample catalog.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		tours:        sampleTours(),
		destinations: sampleDestinations(),
	}
}

// ListTours implements catalog.Repository.
func (r *MemoryRepository) ListTours(_ context.Context) ([]catalog.Tour, error) {
	return append([]catalog.Tour(nil), r.tours...), nil
}

// ListDestinations implements catalog.Repository.
func (r *MemoryRepository) ListDestinations(_ context.Context) ([]catalog.Destination, error) {
	return append([]catalog.Destination(nil), r.destinations...), nil
}

var _ catalog.Repository = (*MemoryRepository)(nil)
