package repository

import (
	"context"
	"database/sql"
)

// SavedJobRepo provides persistence for job bookmarks. Saving is a
// toggle: each call flips the (job, user) row between present and
// absent. The unique constraint on (job_id, user_id) keeps two
// concurrent saves from producing two rows.
type SavedJobRepo struct{ db *sql.DB }

func NewSavedJobRepo(db *sql.DB) *SavedJobRepo { return &SavedJobRepo{db: db} }

// Toggle flips the bookmark for (job, user) and reports the resulting
// state: true when the job is now saved, false when the call removed an
// existing bookmark. The delete runs first so the whole operation is a
// single write either way; a concurrent duplicate insert collapses onto
// the existing row via the unique constraint.
func (r *SavedJobRepo) Toggle(ctx context.Context, jobID, userID uint64) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM saved_jobs WHERE job_id=? AND user_id=?", jobID, userID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if affected > 0 {
		return false, nil // was saved, now removed
	}
	_, err = r.db.ExecContext(ctx,
		"INSERT INTO saved_jobs (job_id, user_id) VALUES (?,?)", jobID, userID)
	if err != nil {
		if isDuplicateKey(err) {
			// lost a race against an identical save; the job is saved either way
			return true, nil
		}
		return false, err
	}
	return true, nil
}

// SavedJobRow is the dashboard shape of a bookmark joined with its posting.
type SavedJobRow struct {
	JobID    uint64 `json:"job_id"`
	JobTitle string `json:"job_title"`
	Company  string `json:"company"`
	Location string `json:"location"`
	SavedAt  string `json:"saved_at"`
}

// ListByUser returns the seeker's bookmarks, newest first.
func (r *SavedJobRepo) ListByUser(ctx context.Context, userID uint64) ([]SavedJobRow, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT s.job_id, j.title, COALESCE(p.company_name,''), COALESCE(j.location,''),
			DATE_FORMAT(s.saved_at, '%Y-%m-%d %T')
		FROM saved_jobs s
		JOIN jobs j ON j.id = s.job_id
		LEFT JOIN employer_profiles p ON p.user_id = j.posted_by
		WHERE s.user_id = ?
		ORDER BY s.saved_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SavedJobRow
	for rows.Next() {
		var s SavedJobRow
		if err := rows.Scan(&s.JobID, &s.JobTitle, &s.Company, &s.Location, &s.SavedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// ExistsForUser reports whether the seeker has the job bookmarked.
// Used only to decorate the job detail response.
func (r *SavedJobRepo) ExistsForUser(ctx context.Context, jobID, userID uint64) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		"SELECT 1 FROM saved_jobs WHERE job_id=? AND user_id=? LIMIT 1",
		jobID, userID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	return err == nil, err
}
