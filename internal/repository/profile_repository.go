package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/vitahires/internal/model"
)

// ProfileRepo provides persistence for both role profile tables. Each
// non-admin user owns exactly one profile row of the kind matching
// their role, created inside the registration transaction.
type ProfileRepo struct{ db *sql.DB }

func NewProfileRepo(db *sql.DB) *ProfileRepo { return &ProfileRepo{db: db} }

// CreateJobSeekerTx inserts the seeker profile shell at registration.
func (r *ProfileRepo) CreateJobSeekerTx(ctx context.Context, tx *sql.Tx, userID uint64, firstName, lastName string) error {
	_, err := tx.ExecContext(ctx,
		"INSERT INTO jobseeker_profiles (user_id, first_name, last_name) VALUES (?,?,?)",
		userID, firstName, lastName)
	return err
}

// CreateEmployerTx inserts the employer profile shell at registration.
func (r *ProfileRepo) CreateEmployerTx(ctx context.Context, tx *sql.Tx, userID uint64, companyName, contactPerson string) error {
	_, err := tx.ExecContext(ctx,
		"INSERT INTO employer_profiles (user_id, company_name, contact_person) VALUES (?,?,?)",
		userID, companyName, contactPerson)
	return err
}

// GetJobSeeker fetches the seeker profile for a user.
func (r *ProfileRepo) GetJobSeeker(ctx context.Context, userID uint64) (model.JobSeekerProfile, error) {
	var (
		p     model.JobSeekerProfile
		years sql.NullInt64
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, first_name, last_name, COALESCE(phone,''), COALESCE(location,''),
			COALESCE(skills,''), experience_years, COALESCE(resume_filename,''), COALESCE(bio,''),
			COALESCE(linkedin_url,''), COALESCE(portfolio_url,''), job_alerts, updated_at
		FROM jobseeker_profiles WHERE user_id=? LIMIT 1`, userID).
		Scan(&p.ID, &p.UserID, &p.FirstName, &p.LastName, &p.Phone, &p.Location,
			&p.Skills, &years, &p.ResumeFilename, &p.Bio,
			&p.LinkedinURL, &p.PortfolioURL, &p.JobAlerts, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.JobSeekerProfile{}, ErrProfileNotFound
	}
	if years.Valid {
		v := int(years.Int64)
		p.ExperienceYears = &v
	}
	return p, err
}

// UpdateJobSeeker overwrites the editable seeker fields. The resume
// filename is managed separately by SetResume.
func (r *ProfileRepo) UpdateJobSeeker(ctx context.Context, p model.JobSeekerProfile) error {
	var years any
	if p.ExperienceYears != nil {
		years = *p.ExperienceYears
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE jobseeker_profiles
		SET first_name=?, last_name=?, phone=?, location=?, skills=?, experience_years=?,
			bio=?, linkedin_url=?, portfolio_url=?, job_alerts=?
		WHERE user_id=?`,
		p.FirstName, p.LastName, p.Phone, p.Location, p.Skills, years,
		p.Bio, p.LinkedinURL, p.PortfolioURL, p.JobAlerts, p.UserID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// zero can also mean "no change"; verify the row exists
		var one int
		if err := r.db.QueryRowContext(ctx,
			"SELECT 1 FROM jobseeker_profiles WHERE user_id=? LIMIT 1", p.UserID).Scan(&one); err == sql.ErrNoRows {
			return ErrProfileNotFound
		} else if err != nil {
			return err
		}
	}
	return nil
}

// SetResume records the stored filename of the latest uploaded resume.
func (r *ProfileRepo) SetResume(ctx context.Context, userID uint64, filename string) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE jobseeker_profiles SET resume_filename=? WHERE user_id=?", filename, userID)
	return err
}

// GetEmployer fetches the employer profile for a user.
func (r *ProfileRepo) GetEmployer(ctx context.Context, userID uint64) (model.EmployerProfile, error) {
	var p model.EmployerProfile
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, company_name, COALESCE(company_size,''), COALESCE(industry,''),
			COALESCE(company_description,''), COALESCE(website,''), COALESCE(location,''),
			COALESCE(contact_person,''), COALESCE(phone,''), is_verified, updated_at
		FROM employer_profiles WHERE user_id=? LIMIT 1`, userID).
		Scan(&p.ID, &p.UserID, &p.CompanyName, &p.CompanySize, &p.Industry,
			&p.CompanyDescription, &p.Website, &p.Location,
			&p.ContactPerson, &p.Phone, &p.IsVerified, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.EmployerProfile{}, ErrProfileNotFound
	}
	return p, err
}

// UpdateEmployer overwrites the editable employer fields. IsVerified is
// informational and never written from this path.
func (r *ProfileRepo) UpdateEmployer(ctx context.Context, p model.EmployerProfile) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE employer_profiles
		SET company_name=?, company_size=?, industry=?, company_description=?,
			website=?, location=?, contact_person=?, phone=?
		WHERE user_id=?`,
		p.CompanyName, p.CompanySize, p.Industry, p.CompanyDescription,
		p.Website, p.Location, p.ContactPerson, p.Phone, p.UserID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var one int
		if err := r.db.QueryRowContext(ctx,
			"SELECT 1 FROM employer_profiles WHERE user_id=? LIMIT 1", p.UserID).Scan(&one); err == sql.ErrNoRows {
			return ErrProfileNotFound
		} else if err != nil {
			return err
		}
	}
	return nil
}
