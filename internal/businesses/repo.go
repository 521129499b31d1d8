package businesses

import "context"

// Repo persists businesses.
type Repo interface {
	Create(ctx context.Context, b Business) error
	GetByID(ctx context.Context, id string) (Business, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Business, error)
}
