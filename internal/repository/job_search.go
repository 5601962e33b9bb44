package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/iliyamo/vitahires/internal/utils"
)

// SearchPageSize is the fixed number of results per search page.
const SearchPageSize = 12

// JobSearchQuery defines filters & pagination for searching postings.
// Every filter is optional; an empty string means "no restriction".
type JobSearchQuery struct {
	Keywords        string
	Location        string
	Category        string
	JobType         string
	ExperienceLevel string
	Page            int
}

// PublicJobRow is the row shape returned to the public listing.
type PublicJobRow struct {
	ID              uint64 `json:"id"`
	Title           string `json:"title"`
	Location        string `json:"location"`
	JobType         string `json:"job_type"`
	Category        string `json:"category"`
	ExperienceLevel string `json:"experience_level"`
	Company         string `json:"company"`
	Salary          string `json:"salary"`
	PostedAt        string `json:"posted_at"`
}

// buildJobFilter translates a JobSearchQuery into a WHERE condition and
// its arguments. The visibility gate is always present and cannot be
// widened; filters only narrow it. Keywords are a single OR block over
// title, description and skills_required, ANDed with everything else.
// Matching is case-insensitive throughout.
func buildJobFilter(q JobSearchQuery) (string, []any) {
	where := []string{"j.is_active = 1", "j.is_approved = 1"}
	args := []any{}

	if kw := strings.TrimSpace(q.Keywords); kw != "" {
		where = append(where,
			"(LOWER(j.title) LIKE ? OR LOWER(j.description) LIKE ? OR LOWER(j.skills_required) LIKE ?)")
		pat := "%" + strings.ToLower(kw) + "%"
		args = append(args, pat, pat, pat)
	}
	if loc := strings.TrimSpace(q.Location); loc != "" {
		where = append(where, "LOWER(j.location) LIKE ?")
		args = append(args, "%"+strings.ToLower(loc)+"%")
	}
	if q.Category != "" {
		where = append(where, "j.category = ?")
		args = append(args, q.Category)
	}
	if q.JobType != "" {
		where = append(where, "j.job_type = ?")
		args = append(args, q.JobType)
	}
	if q.ExperienceLevel != "" {
		where = append(where, "j.experience_level = ?")
		args = append(args, q.ExperienceLevel)
	}
	return strings.Join(where, " AND "), args
}

// Search returns one page of visible postings matching q, newest first,
// along with the total match count. Pages beyond the last yield an
// empty slice, not an error.
func (r *JobRepo) Search(ctx context.Context, q JobSearchQuery) ([]PublicJobRow, int64, error) {
	cond, args := buildJobFilter(q)

	var total int64
	countSQL := `SELECT COUNT(*)
		FROM jobs j
		WHERE ` + cond
	if err := r.db.QueryRowContext(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * SearchPageSize

	dataSQL := `SELECT
			j.id,
			j.title,
			COALESCE(j.location, '')         AS location,
			COALESCE(j.job_type, '')         AS job_type,
			j.category,
			COALESCE(j.experience_level, '') AS experience_level,
			COALESCE(p.company_name, '')     AS company,
			j.salary_min,
			j.salary_max,
			DATE_FORMAT(j.posted_at, '%Y-%m-%d %T') AS posted_at
		FROM jobs j
		LEFT JOIN employer_profiles p ON p.user_id = j.posted_by
		WHERE ` + cond + `
		ORDER BY j.posted_at DESC
		LIMIT ? OFFSET ?`

	argsData := append(append([]any{}, args...), SearchPageSize, offset)

	rows, err := r.db.QueryContext(ctx, dataSQL, argsData...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]PublicJobRow, 0, SearchPageSize)
	for rows.Next() {
		var (
			d    PublicJobRow
			sMin sql.NullInt64
			sMax sql.NullInt64
		)
		if err := rows.Scan(
			&d.ID,
			&d.Title,
			&d.Location,
			&d.JobType,
			&d.Category,
			&d.ExperienceLevel,
			&d.Company,
			&sMin,
			&sMax,
			&d.PostedAt,
		); err != nil {
			return nil, 0, err
		}
		var minP, maxP *int
		if sMin.Valid {
			v := int(sMin.Int64)
			minP = &v
		}
		if sMax.Valid {
			v := int(sMax.Int64)
			maxP = &v
		}
		d.Salary = utils.FormatSalary(minP, maxP)
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}
