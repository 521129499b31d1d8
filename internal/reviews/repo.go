package reviews

import "context"

// Repo defines persistence operations for reviews.
type Repo interface {
	Create(ctx context.Context, review Review) error
	BulkCreate(ctx context.Context, reviews []Review) error
	GetByID(ctx context.Context, reviewID string) (Review, error)
	ListByBusiness(ctx context.Context, businessID string, limit, offset int) ([]Review, error)
	AllByBusiness(ctx context.Context, businessID string) ([]Review, error)
	CountByBusiness(ctx context.Context, businessID string) (int, error)
}
