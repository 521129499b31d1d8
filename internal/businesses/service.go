package businesses

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service contains business logic for merchant profiles.
type Service struct {
	Repo Repo
}

// Create validates and stores a new business for the given owner.
func (s *Service) Create(ctx context.Context, ownerID string, b Business) (Business, error) {
	b.Name = strings.TrimSpace(b.Name)
	if b.Name == "" {
		return Business{}, ErrInvalidName
	}
	b.ID = uuid.NewString()
	b.OwnerID = ownerID
	if strings.TrimSpace(b.Timezone) == "" {
		b.Timezone = "UTC"
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
	if err := s.Repo.Create(ctx, b); err != nil {
		return Business{}, err
	}
	return b, nil
}

// Get returns a business by ID.
func (s *Service) Get(ctx context.Context, id string) (Business, error) {
	return s.Repo.GetByID(ctx, id)
}

// ListForOwner returns the businesses owned by the given user.
func (s *Service) ListForOwner(ctx context.Context, ownerID string) ([]Business, error) {
	return s.Repo.ListByOwner(ctx, ownerID)
}
