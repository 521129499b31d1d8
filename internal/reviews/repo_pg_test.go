package reviews

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
)

func reviewRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "business_id", "rating", "text",
		"published_at", "owner_response", "sentiment", "staff_mentions", "themes", "language",
		"legacy_date", "legacy_response", "legacy_staff", "legacy_tags", "created_at",
	})
}

func TestPGRepoGetByID(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer mockDB.Close()
	repo := &PGRepo{DB: mockDB}

	created := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs("rev-1").
		WillReturnRows(reviewRows().AddRow(
			"rev-1", "biz-1", 5, "Great",
			"2025-05-01", "Thanks", "positive", "Maria", "service", "en",
			"", "", "", "", created,
		))

	got, err := repo.GetByID(context.Background(), "rev-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != "rev-1" || got.Rating != 5 || got.StaffMentions != "Maria" {
		t.Fatalf("unexpected review: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer mockDB.Close()
	repo := &PGRepo{DB: mockDB}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs("missing").
		WillReturnRows(reviewRows())

	if _, err := repo.GetByID(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoBulkCreateCommitsTransaction(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer mockDB.Close()
	repo := &PGRepo{DB: mockDB}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO reviews")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO reviews")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	batch := []Review{
		{ID: "a", BusinessID: "biz-1", Rating: 5},
		{ID: "b", BusinessID: "biz-1", Rating: 4},
	}
	if err := repo.BulkCreate(context.Background(), batch); err != nil {
		t.Fatalf("bulk create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGRepoBulkCreateRollsBackOnError(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer mockDB.Close()
	repo := &PGRepo{DB: mockDB}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO reviews")).
		WillReturnError(errors.New("constraint violation"))
	mock.ExpectRollback()

	err = repo.BulkCreate(context.Background(), []Review{{ID: "a", BusinessID: "biz-1", Rating: 5}})
	if err == nil {
		t.Fatalf("expected error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGRepoListByBusiness(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer mockDB.Close()
	repo := &PGRepo{DB: mockDB}

	created := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs("biz-1", 10, 0).
		WillReturnRows(reviewRows().
			AddRow("b", "biz-1", 4, "Good", "", "", "", "", "", "", "2024-11-20", "", "", "", created).
			AddRow("a", "biz-1", 5, "Great", "2025-05-01", "", "", "", "", "", "", "", "", "", created))

	got, err := repo.ListByBusiness(context.Background(), "biz-1", 10, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 || got[0].ID != "b" || got[1].PublishedAt != "2025-05-01" {
		t.Fatalf("unexpected reviews: %+v", got)
	}
}

func TestPGRepoCountByBusiness(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer mockDB.Close()
	repo := &PGRepo{DB: mockDB}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM reviews")).
		WithArgs("biz-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	count, err := repo.CountByBusiness(context.Background(), "biz-1")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 42 {
		t.Fatalf("count = %d, want 42", count)
	}
}
