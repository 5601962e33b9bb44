package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

const (
	jobCountQ = `SELECT COUNT\(\*\)\s+FROM jobs j\s+WHERE j\.is_active = 1 AND j\.is_approved = 1$`
	// The data query must keep newest-first ordering and fixed-size pages.
	jobPageQ = `(?s)SELECT\s+j\.id,.+FROM jobs j\s+LEFT JOIN employer_profiles p ON p\.user_id = j\.posted_by\s+WHERE j\.is_active = 1 AND j\.is_approved = 1\s+ORDER BY j\.posted_at DESC\s+LIMIT \? OFFSET \?$`
)

var jobPageCols = []string{
	"id", "title", "location", "job_type", "category",
	"experience_level", "company", "salary_min", "salary_max", "posted_at",
}

// jobPageRows builds n listing rows with descending posted_at, the order
// the database would hand back.
func jobPageRows(startID uint64, n int) *sqlmock.Rows {
	rows := sqlmock.NewRows(jobPageCols)
	for i := 0; i < n; i++ {
		rows.AddRow(
			startID-uint64(i),
			fmt.Sprintf("Job %d", startID-uint64(i)),
			"Berlin", "full_time", "engineering", "mid",
			"Acme", 60000, 80000,
			fmt.Sprintf("2026-08-%02d 10:00:00", 28-i),
		)
	}
	return rows
}

func TestJobSearch_PaginatesThirteenJobs(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()
	repo := NewJobRepo(db)

	// First page: full page of 12 out of 13 matches.
	mock.ExpectQuery(jobCountQ).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(13))
	mock.ExpectQuery(jobPageQ).
		WithArgs(SearchPageSize, 0).
		WillReturnRows(jobPageRows(13, 12))

	page1, total, err := repo.Search(context.Background(), JobSearchQuery{Page: 1})
	if err != nil {
		t.Fatalf("Search page 1 error: %v", err)
	}
	if total != 13 {
		t.Fatalf("total = %d, want 13", total)
	}
	if len(page1) != 12 {
		t.Fatalf("page 1 size = %d, want 12", len(page1))
	}
	if page1[0].ID != 13 || page1[11].ID != 2 {
		t.Fatalf("page 1 spans IDs %d..%d, want 13..2", page1[0].ID, page1[11].ID)
	}

	// Second page: the single remaining match, offset by one full page.
	mock.ExpectQuery(jobCountQ).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(13))
	mock.ExpectQuery(jobPageQ).
		WithArgs(SearchPageSize, 12).
		WillReturnRows(jobPageRows(1, 1))

	page2, total, err := repo.Search(context.Background(), JobSearchQuery{Page: 2})
	if err != nil {
		t.Fatalf("Search page 2 error: %v", err)
	}
	if total != 13 {
		t.Fatalf("total = %d, want 13", total)
	}
	if len(page2) != 1 {
		t.Fatalf("page 2 size = %d, want 1", len(page2))
	}
	if page2[0].ID != 1 {
		t.Fatalf("page 2 job ID = %d, want 1", page2[0].ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestJobSearch_PageBeyondLastIsEmpty(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()
	repo := NewJobRepo(db)

	mock.ExpectQuery(jobCountQ).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(13))
	mock.ExpectQuery(jobPageQ).
		WithArgs(SearchPageSize, 48).
		WillReturnRows(sqlmock.NewRows(jobPageCols))

	out, total, err := repo.Search(context.Background(), JobSearchQuery{Page: 5})
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if total != 13 {
		t.Fatalf("total = %d, want 13", total)
	}
	if len(out) != 0 {
		t.Fatalf("page 5 size = %d, want 0", len(out))
	}
}

func TestJobSearch_PageZeroIsFirstPage(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()
	repo := NewJobRepo(db)

	mock.ExpectQuery(jobCountQ).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(jobPageQ).
		WithArgs(SearchPageSize, 0).
		WillReturnRows(jobPageRows(1, 1))

	out, _, err := repo.Search(context.Background(), JobSearchQuery{Page: 0})
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("size = %d, want 1", len(out))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestJobSearch_NullSalaryFormatsAsUnspecified(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()
	repo := NewJobRepo(db)

	rows := sqlmock.NewRows(jobPageCols).
		AddRow(7, "Job 7", "", "", "design", "", "", nil, nil, "2026-08-28 10:00:00")
	mock.ExpectQuery(jobCountQ).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(jobPageQ).
		WithArgs(SearchPageSize, 0).
		WillReturnRows(rows)

	out, _, err := repo.Search(context.Background(), JobSearchQuery{Page: 1})
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("size = %d, want 1", len(out))
	}
	if out[0].Salary != "Salary not specified" {
		t.Fatalf("Salary = %q, want %q", out[0].Salary, "Salary not specified")
	}
}
