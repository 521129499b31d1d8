package reviews

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service contains business logic for reviews.
type Service struct {
	Repo Repo
}

// Add validates and stores a single review for a business.
func (s *Service) Add(ctx context.Context, businessID string, review Review) (Review, error) {
	if review.Rating < 1 || review.Rating > 5 {
		return Review{}, ErrInvalidRating
	}
	review.ID = uuid.NewString()
	review.BusinessID = businessID
	review.Text = strings.TrimSpace(review.Text)
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now().UTC()
	}
	if err := s.Repo.Create(ctx, review); err != nil {
		return Review{}, err
	}
	return review, nil
}

// AddBatch validates and stores imported reviews, skipping records with
// out-of-range ratings. It returns the number stored and the number skipped.
func (s *Service) AddBatch(ctx context.Context, businessID string, batch []Review) (int, int, error) {
	accepted := make([]Review, 0, len(batch))
	skipped := 0
	now := time.Now().UTC()
	for _, review := range batch {
		if review.Rating < 1 || review.Rating > 5 {
			skipped++
			continue
		}
		review.ID = uuid.NewString()
		review.BusinessID = businessID
		if review.CreatedAt.IsZero() {
			review.CreatedAt = now
		}
		accepted = append(accepted, review)
	}
	if len(accepted) == 0 {
		return 0, skipped, nil
	}
	if err := s.Repo.BulkCreate(ctx, accepted); err != nil {
		return 0, skipped, err
	}
	return len(accepted), skipped, nil
}

// List returns a page of reviews for a business.
func (s *Service) List(ctx context.Context, businessID string, limit, offset int) ([]Review, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.Repo.ListByBusiness(ctx, businessID, limit, offset)
}
