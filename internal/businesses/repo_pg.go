package businesses

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const businessColumns = `id, owner_id, name, industry, timezone, created_at`

func (r *PGRepo) Create(ctx context.Context, b Business) error {
	const query = `
INSERT INTO businesses (id, owner_id, name, industry, timezone, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.DB.ExecContext(ctx, query,
		b.ID, b.OwnerID, b.Name, b.Industry, b.Timezone, b.CreatedAt)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (Business, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+businessColumns+` FROM businesses WHERE id = $1`, id)
	var b Business
	err := row.Scan(&b.ID, &b.OwnerID, &b.Name, &b.Industry, &b.Timezone, &b.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Business{}, ErrNotFound
	}
	return b, err
}

func (r *PGRepo) ListByOwner(ctx context.Context, ownerID string) ([]Business, error) {
	const query = `
SELECT ` + businessColumns + `
FROM businesses
WHERE owner_id = $1
ORDER BY created_at ASC`
	rows, err := r.DB.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Business{}
	for rows.Next() {
		var b Business
		if err := rows.Scan(&b.ID, &b.OwnerID, &b.Name, &b.Industry, &b.Timezone, &b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
