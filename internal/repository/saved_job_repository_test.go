package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

const (
	savedDeleteQ = `DELETE FROM saved_jobs WHERE job_id=\? AND user_id=\?`
	savedInsertQ = `INSERT INTO saved_jobs \(job_id, user_id\) VALUES \(\?,\?\)`
)

func TestSavedJobToggle_RemovesExistingBookmark(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()
	repo := NewSavedJobRepo(db)

	// A hit on the delete finishes the toggle; no insert may follow.
	mock.ExpectExec(savedDeleteQ).
		WithArgs(5, 7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	saved, err := repo.Toggle(context.Background(), 5, 7)
	if err != nil {
		t.Fatalf("Toggle error: %v", err)
	}
	if saved {
		t.Fatalf("saved = true, want false after removal")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSavedJobToggle_AddsBookmark(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()
	repo := NewSavedJobRepo(db)

	mock.ExpectExec(savedDeleteQ).
		WithArgs(5, 7).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(savedInsertQ).
		WithArgs(5, 7).
		WillReturnResult(sqlmock.NewResult(1, 1))

	saved, err := repo.Toggle(context.Background(), 5, 7)
	if err != nil {
		t.Fatalf("Toggle error: %v", err)
	}
	if !saved {
		t.Fatalf("saved = false, want true after insert")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSavedJobToggle_LosingInsertRaceStillSaved(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()
	repo := NewSavedJobRepo(db)

	// A concurrent identical save lands between our delete and insert;
	// the constraint violation still means "the job is saved".
	mock.ExpectExec(savedDeleteQ).
		WithArgs(5, 7).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(savedInsertQ).
		WithArgs(5, 7).
		WillReturnError(errors.New("Error 1062 (23000): Duplicate entry '5-7' for key 'saved_jobs.uq_saved_job'"))

	saved, err := repo.Toggle(context.Background(), 5, 7)
	if err != nil {
		t.Fatalf("Toggle error: %v", err)
	}
	if !saved {
		t.Fatalf("saved = false, want true after duplicate insert")
	}
}

func TestSavedJobToggle_DBError(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()
	repo := NewSavedJobRepo(db)

	mock.ExpectExec(savedDeleteQ).
		WithArgs(5, 7).
		WillReturnError(errors.New("db down"))

	if _, err := repo.Toggle(context.Background(), 5, 7); err == nil {
		t.Fatalf("want error, got nil")
	}
}
