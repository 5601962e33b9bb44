package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/vitahires/internal/model"
)

// ApplicationRepo provides persistence for job applications. The apply
// operation is a guarded one-way creation: the INSERT either succeeds
// once per (job, user) pair or hits the unique constraint. There is no
// check-then-insert window; the constraint is the check.
type ApplicationRepo struct{ db *sql.DB }

func NewApplicationRepo(db *sql.DB) *ApplicationRepo { return &ApplicationRepo{db: db} }

// Create inserts a pending application and populates the generated ID
// and applied_at. A duplicate (job_id, user_id) pair returns
// ErrAlreadyApplied and leaves the existing row untouched.
func (r *ApplicationRepo) Create(ctx context.Context, jobID, userID uint64, coverLetter string) (model.Application, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO applications (job_id, user_id, cover_letter) VALUES (?,?,?)",
		jobID, userID, coverLetter)
	if err != nil {
		if isDuplicateKey(err) {
			return model.Application{}, ErrAlreadyApplied
		}
		return model.Application{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Application{}, err
	}
	app := model.Application{
		ID:          uint64(id),
		JobID:       jobID,
		UserID:      userID,
		CoverLetter: coverLetter,
		Status:      model.ApplicationPending,
	}
	err = r.db.QueryRowContext(ctx,
		"SELECT applied_at FROM applications WHERE id=?", app.ID).Scan(&app.AppliedAt)
	return app, err
}

// SeekerApplicationRow is what a jobseeker sees on their dashboard:
// their application joined with the posting it targets.
type SeekerApplicationRow struct {
	ID        uint64 `json:"id"`
	JobID     uint64 `json:"job_id"`
	JobTitle  string `json:"job_title"`
	Company   string `json:"company"`
	Status    string `json:"status"`
	AppliedAt string `json:"applied_at"`
}

// ListByUser returns the seeker's applications, newest first.
func (r *ApplicationRepo) ListByUser(ctx context.Context, userID uint64) ([]SeekerApplicationRow, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT a.id, a.job_id, j.title, COALESCE(p.company_name,''), a.status,
			DATE_FORMAT(a.applied_at, '%Y-%m-%d %T')
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		LEFT JOIN employer_profiles p ON p.user_id = j.posted_by
		WHERE a.user_id = ?
		ORDER BY a.applied_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SeekerApplicationRow
	for rows.Next() {
		var a SeekerApplicationRow
		if err := rows.Scan(&a.ID, &a.JobID, &a.JobTitle, &a.Company, &a.Status, &a.AppliedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// EmployerApplicationRow is what an employer sees: an application
// against one of their postings, with the applicant's name.
type EmployerApplicationRow struct {
	ID        uint64 `json:"id"`
	JobID     uint64 `json:"job_id"`
	JobTitle  string `json:"job_title"`
	Applicant string `json:"applicant"`
	Status    string `json:"status"`
	AppliedAt string `json:"applied_at"`
}

// ListForEmployer returns the newest applications across all of the
// employer's postings, capped at limit.
func (r *ApplicationRepo) ListForEmployer(ctx context.Context, employerID uint64, limit int) ([]EmployerApplicationRow, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT a.id, a.job_id, j.title,
			COALESCE(CONCAT(sp.first_name, ' ', sp.last_name), ''), a.status,
			DATE_FORMAT(a.applied_at, '%Y-%m-%d %T')
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		LEFT JOIN jobseeker_profiles sp ON sp.user_id = a.user_id
		WHERE j.posted_by = ?
		ORDER BY a.applied_at DESC
		LIMIT ?`, employerID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]EmployerApplicationRow, 0, limit)
	for rows.Next() {
		var a EmployerApplicationRow
		if err := rows.Scan(&a.ID, &a.JobID, &a.JobTitle, &a.Applicant, &a.Status, &a.AppliedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// ExistsForUser reports whether the seeker already applied to the job.
// Used only to decorate the job detail response; the apply path relies
// on the unique constraint instead.
func (r *ApplicationRepo) ExistsForUser(ctx context.Context, jobID, userID uint64) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		"SELECT 1 FROM applications WHERE job_id=? AND user_id=? LIMIT 1",
		jobID, userID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	return err == nil, err
}

// CountAll returns the total number of applications.
func (r *ApplicationRepo) CountAll(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM applications").Scan(&n)
	return n, err
}
