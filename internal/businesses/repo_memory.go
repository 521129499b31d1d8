package businesses

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory Repo used when no database is configured.
type MemoryRepo struct {
	mu      sync.RWMutex
	byID    map[string]Business
	byOwner map[string][]string
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID:    make(map[string]Business),
		byOwner: make(map[string][]string),
	}
}

func (r *MemoryRepo) Create(ctx context.Context, b Business) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[b.ID] = b
	r.byOwner[b.OwnerID] = append(r.byOwner[b.OwnerID], b.ID)
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Business, error) {
	if err := ctx.Err(); err != nil {
		return Business{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.byID[id]
	if !ok {
		return Business{}, ErrNotFound
	}
	return b, nil
}

func (r *MemoryRepo) ListByOwner(ctx context.Context, ownerID string) ([]Business, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := r.byOwner[ownerID]
	out := make([]Business, 0, len(ids))
	for _, id := range ids {
		if b, ok := r.byID[id]; ok {
			out = append(out, b)
		}
	}
	return out, nil
}
