package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/iliyamo/vitahires/internal/model"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

const applicationInsertQ = `INSERT INTO applications \(job_id, user_id, cover_letter\) VALUES \(\?,\?,\?\)`

func TestApplicationCreate_Success(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()
	repo := NewApplicationRepo(db)

	appliedAt := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectExec(applicationInsertQ).
		WithArgs(5, 7, "hi").
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectQuery(`SELECT applied_at FROM applications WHERE id=\?`).
		WithArgs(11).
		WillReturnRows(sqlmock.NewRows([]string{"applied_at"}).AddRow(appliedAt))

	app, err := repo.Create(context.Background(), 5, 7, "hi")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if app.ID != 11 || app.JobID != 5 || app.UserID != 7 {
		t.Fatalf("unexpected application: %+v", app)
	}
	if app.Status != model.ApplicationPending {
		t.Fatalf("Status = %q, want pending", app.Status)
	}
	if !app.AppliedAt.Equal(appliedAt) {
		t.Fatalf("AppliedAt = %v, want %v", app.AppliedAt, appliedAt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestApplicationCreate_DuplicatePair(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()
	repo := NewApplicationRepo(db)

	// The unique constraint is the guard; its violation must come back
	// as the typed outcome, not a raw driver error.
	mock.ExpectExec(applicationInsertQ).
		WithArgs(5, 7, "").
		WillReturnError(errors.New("Error 1062 (23000): Duplicate entry '5-7' for key 'applications.uq_job_application'"))

	_, err := repo.Create(context.Background(), 5, 7, "")
	if err != ErrAlreadyApplied {
		t.Fatalf("want ErrAlreadyApplied, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestApplicationCreate_DBError(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()
	repo := NewApplicationRepo(db)

	mock.ExpectExec(applicationInsertQ).
		WithArgs(5, 7, "").
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), 5, 7, "")
	if err == nil || err == ErrAlreadyApplied {
		t.Fatalf("want plain db error, got %v", err)
	}
}
