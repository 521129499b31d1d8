package reviews

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const reviewColumns = `
	id, business_id, rating, text,
	published_at, owner_response, sentiment, staff_mentions, themes, language,
	legacy_date, legacy_response, legacy_staff, legacy_tags, created_at`

// Create inserts a new review.
func (r *PGRepo) Create(ctx context.Context, review Review) error {
	const query = `
INSERT INTO reviews (
	id, business_id, rating, text,
	published_at, owner_response, sentiment, staff_mentions, themes, language,
	legacy_date, legacy_response, legacy_staff, legacy_tags, created_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.DB.ExecContext(ctx, query,
		review.ID,
		review.BusinessID,
		review.Rating,
		review.Text,
		review.PublishedAt,
		review.OwnerResponse,
		review.Sentiment,
		review.StaffMentions,
		review.Themes,
		review.Language,
		review.LegacyDate,
		review.LegacyResponse,
		review.LegacyStaff,
		review.LegacyTags,
		review.CreatedAt,
	)
	return err
}

// BulkCreate inserts a batch of reviews inside one transaction.
func (r *PGRepo) BulkCreate(ctx context.Context, reviews []Review) error {
	if len(reviews) == 0 {
		return nil
	}
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const query = `
INSERT INTO reviews (
	id, business_id, rating, text,
	published_at, owner_response, sentiment, staff_mentions, themes, language,
	legacy_date, legacy_response, legacy_staff, legacy_tags, created_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	for _, review := range reviews {
		if _, err := tx.ExecContext(ctx, query,
			review.ID,
			review.BusinessID,
			review.Rating,
			review.Text,
			review.PublishedAt,
			review.OwnerResponse,
			review.Sentiment,
			review.StaffMentions,
			review.Themes,
			review.Language,
			review.LegacyDate,
			review.LegacyResponse,
			review.LegacyStaff,
			review.LegacyTags,
			review.CreatedAt,
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// GetByID returns a review by its ID.
func (r *PGRepo) GetByID(ctx context.Context, reviewID string) (Review, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT`+reviewColumns+` FROM reviews WHERE id = $1`, reviewID)
	review, err := scanReview(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Review{}, ErrNotFound
	}
	return review, err
}

// ListByBusiness returns a page of reviews for a business, newest first.
func (r *PGRepo) ListByBusiness(ctx context.Context, businessID string, limit, offset int) ([]Review, error) {
	const query = `
SELECT` + reviewColumns + `
FROM reviews
WHERE business_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`
	rows, err := r.DB.QueryContext(ctx, query, businessID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReviews(rows)
}

// AllByBusiness returns every review for a business, newest first.
func (r *PGRepo) AllByBusiness(ctx context.Context, businessID string) ([]Review, error) {
	const query = `
SELECT` + reviewColumns + `
FROM reviews
WHERE business_id = $1
ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReviews(rows)
}

// CountByBusiness returns the number of reviews stored for a business.
func (r *PGRepo) CountByBusiness(ctx context.Context, businessID string) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM reviews WHERE business_id = $1`, businessID).Scan(&count)
	return count, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReview(row rowScanner) (Review, error) {
	var review Review
	err := row.Scan(
		&review.ID,
		&review.BusinessID,
		&review.Rating,
		&review.Text,
		&review.PublishedAt,
		&review.OwnerResponse,
		&review.Sentiment,
		&review.StaffMentions,
		&review.Themes,
		&review.Language,
		&review.LegacyDate,
		&review.LegacyResponse,
		&review.LegacyStaff,
		&review.LegacyTags,
		&review.CreatedAt,
	)
	return review, err
}

func scanReviews(rows *sql.Rows) ([]Review, error) {
	out := []Review{}
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, review)
	}
	return out, rows.Err()
}
