package catalog

import "context"

// Repository is the backing content source for tours and destinations.
type Repository interface {
	ListTours(ctx context.Context) ([]Tour, error)
	ListDestinations(ctx context.Context) ([]Destination, error)
}
