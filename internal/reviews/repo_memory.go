package reviews

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo stores reviews in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu         sync.RWMutex
	byID       map[string]Review
	byBusiness map[string][]string
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID:       make(map[string]Review),
		byBusiness: make(map[string][]string),
	}
}

// Create stores the review.
func (r *MemoryRepo) Create(ctx context.Context, review Review) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[review.ID]; !exists {
		r.byBusiness[review.BusinessID] = append(r.byBusiness[review.BusinessID], review.ID)
	}
	r.byID[review.ID] = review
	return nil
}

// BulkCreate stores a batch of reviews.
func (r *MemoryRepo) BulkCreate(ctx context.Context, reviews []Review) error {
	for _, review := range reviews {
		if err := r.Create(ctx, review); err != nil {
			return err
		}
	}
	return nil
}

// GetByID returns a review by its ID.
func (r *MemoryRepo) GetByID(ctx context.Context, reviewID string) (Review, error) {
	if err := ctx.Err(); err != nil {
		return Review{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	review, ok := r.byID[reviewID]
	if !ok {
		return Review{}, ErrNotFound
	}
	return review, nil
}

// ListByBusiness returns a page of reviews for a business, newest first by creation.
func (r *MemoryRepo) ListByBusiness(ctx context.Context, businessID string, limit, offset int) ([]Review, error) {
	all, err := r.AllByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if offset >= len(all) {
		return []Review{}, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

// AllByBusiness returns every review for a business.
func (r *MemoryRepo) AllByBusiness(ctx context.Context, businessID string) ([]Review, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := r.byBusiness[businessID]
	out := make([]Review, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.byID[id])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// CountByBusiness returns the number of reviews stored for a business.
func (r *MemoryRepo) CountByBusiness(ctx context.Context, businessID string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byBusiness[businessID]), nil
}
