package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/vitahires/internal/model"
)

// JobRepo provides persistence for job postings. Every seeker-facing
// read goes through the active+approved visibility gate; only owner and
// admin paths see hidden rows.
type JobRepo struct{ db *sql.DB }

func NewJobRepo(db *sql.DB) *JobRepo { return &JobRepo{db: db} }

// DB exposes the underlying handle for handler-level transactions.
func (r *JobRepo) DB() *sql.DB { return r.db }

const jobColumns = `id, title, description, COALESCE(requirements,''), COALESCE(location,''),
	COALESCE(job_type,''), category, salary_min, salary_max, COALESCE(experience_level,''),
	COALESCE(skills_required,''), posted_by, is_active, is_approved, posted_at, expires_at`

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface{ Scan(dest ...any) error }

func scanJob(s rowScanner) (model.Job, error) {
	var (
		j         model.Job
		jobType   string
		expLevel  string
		salaryMin sql.NullInt64
		salaryMax sql.NullInt64
		expiresAt sql.NullTime
	)
	err := s.Scan(&j.ID, &j.Title, &j.Description, &j.Requirements, &j.Location,
		&jobType, &j.Category, &salaryMin, &salaryMax, &expLevel,
		&j.SkillsRequired, &j.PostedBy, &j.IsActive, &j.IsApproved, &j.PostedAt, &expiresAt)
	if err != nil {
		return model.Job{}, err
	}
	j.JobType = model.JobType(jobType)
	j.ExperienceLevel = model.ExperienceLevel(expLevel)
	if salaryMin.Valid {
		v := int(salaryMin.Int64)
		j.SalaryMin = &v
	}
	if salaryMax.Valid {
		v := int(salaryMax.Int64)
		j.SalaryMax = &v
	}
	if expiresAt.Valid {
		t := expiresAt.Time
		j.ExpiresAt = &t
	}
	return j, nil
}

// Create inserts a new posting and populates the generated ID and
// posted_at on the provided job. Salary bounds and expiry stay exactly
// as given; no ordering or deadline validation happens here.
func (r *JobRepo) Create(ctx context.Context, j *model.Job) error {
	var salaryMin, salaryMax any
	if j.SalaryMin != nil {
		salaryMin = *j.SalaryMin
	}
	if j.SalaryMax != nil {
		salaryMax = *j.SalaryMax
	}
	var expiresAt any
	if j.ExpiresAt != nil {
		expiresAt = *j.ExpiresAt
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO jobs (title, description, requirements, location, job_type, category,
			salary_min, salary_max, experience_level, skills_required, posted_by,
			is_active, is_approved, expires_at)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		j.Title, j.Description, j.Requirements, j.Location, string(j.JobType), j.Category,
		salaryMin, salaryMax, string(j.ExperienceLevel), j.SkillsRequired, j.PostedBy,
		j.IsActive, j.IsApproved, expiresAt)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	j.ID = uint64(id)
	return r.db.QueryRowContext(ctx,
		"SELECT posted_at FROM jobs WHERE id=?", j.ID).Scan(&j.PostedAt)
}

// GetVisible fetches a job by id through the visibility gate. A job
// that exists but is inactive or unapproved returns ErrJobNotFound,
// indistinguishable from a job that never existed.
func (r *JobRepo) GetVisible(ctx context.Context, id uint64) (model.Job, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+jobColumns+" FROM jobs WHERE id=? AND is_active=1 AND is_approved=1 LIMIT 1", id)
	j, err := scanJob(row)
	if err == sql.ErrNoRows {
		return model.Job{}, ErrJobNotFound
	}
	return j, err
}

// ListByOwner returns all postings created by the given employer,
// newest first, regardless of visibility flags.
func (r *JobRepo) ListByOwner(ctx context.Context, ownerID uint64) ([]model.Job, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+jobColumns+" FROM jobs WHERE posted_by=? ORDER BY posted_at DESC", ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

// ListFeatured returns the newest visible postings, capped at limit.
func (r *JobRepo) ListFeatured(ctx context.Context, limit int) ([]model.Job, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+jobColumns+" FROM jobs WHERE is_active=1 AND is_approved=1 ORDER BY posted_at DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Job, 0, limit)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

// CountVisible returns the number of postings passing the visibility gate.
func (r *JobRepo) CountVisible(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM jobs WHERE is_active=1 AND is_approved=1").Scan(&n)
	return n, err
}

// CountAll returns the total number of postings, hidden ones included.
func (r *JobRepo) CountAll(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM jobs").Scan(&n)
	return n, err
}

// CountPendingApproval returns postings with is_approved=0. Approval is
// auto-set at creation, so this stays at zero unless rows are edited
// out of band; the admin dashboard still reports it.
func (r *JobRepo) CountPendingApproval(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM jobs WHERE is_approved=0").Scan(&n)
	return n, err
}

// ListRecent returns the newest postings for the admin dashboard,
// hidden ones included.
func (r *JobRepo) ListRecent(ctx context.Context, limit int) ([]model.Job, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+jobColumns+" FROM jobs ORDER BY posted_at DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Job, 0, limit)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, rows.Err()
}
