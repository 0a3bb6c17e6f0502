package catalogrepo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gayathri-1911/travel-assistant/internal/domain/catalog"
)

// PostgresRepository implements catalog.Repository using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// ListTours fetches the full tour catalog ordered by creation time.
func (r *PostgresRepository) ListTours(ctx context.Context) ([]catalog.Tour, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT uid, title, description, price, duration, location, highlights,
		       category, COALESCE(image_url, ''), rating, reviews_count,
		       created_at, updated_at
		FROM tours
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tours []catalog.Tour
	for rows.Next() {
		var tour catalog.Tour
		if err := rows.Scan(
			&tour.UID,
			&tour.Title,
			&tour.Description,
			&tour.Price,
			&tour.Duration,
			&tour.Location,
			&tour.Highlights,
			&tour.Category,
			&tour.ImageURL,
			&tour.Rating,
			&tour.ReviewsCount,
			&tour.CreatedAt,
			&tour.UpdatedAt,
		); err != nil {
			return nil, err
		}
		tours = append(tours, tour)
	}
	return tours, rows.Err()
}

// ListDestinations fetches all destinations ordered by creation time.
func (r *PostgresRepository) ListDestinations(ctx context.Context) ([]catalog.Destination, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT uid, title, description, popular_tours, COALESCE(image_url, ''),
		       best_time_to_visit, created_at
		FROM destinations
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var destinations []catalog.Destination
	for rows.Next() {
		var dest catalog.Destination
		if err := rows.Scan(
			&dest.UID,
			&dest.Title,
			&dest.Description,
			&dest.PopularTours,
			&dest.ImageURL,
			&dest.BestTimeToVisit,
			&dest.CreatedAt,
		); err != nil {
			return nil, err
		}
		destinations = append(destinations, dest)
	}
	return destinations, rows.Err()
}

var _ catalog.Repository = (*PostgresRepository)(nil)
