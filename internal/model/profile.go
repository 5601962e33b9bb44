package model

import "time"

// JobSeekerProfile holds the role-specific record owned by exactly one
// jobseeker user. It is created at registration and removed with the
// user (database cascade).
//
// Fields:
//  ID              – primary key identifier.
//  UserID          – owning user (unique).
//  FirstName       – given name.
//  LastName        – family name.
//  Phone           – optional contact number.
//  Location        – optional free-text location.
//  Skills          – free-text comma-separated skills.
//  ExperienceYears – optional years of experience.
//  ResumeFilename  – stored filename of the uploaded resume, if any.
//  Bio             – free-text biography.
//  LinkedinURL     – optional external link.
//  PortfolioURL    – optional external link.
//  JobAlerts       – opt-in flag for job alert emails.
//  UpdatedAt       – timestamp of last update.
type JobSeekerProfile struct {
	ID              uint64    // jobseeker_profiles.id
	UserID          uint64    // jobseeker_profiles.user_id
	FirstName       string    // jobseeker_profiles.first_name
	LastName        string    // jobseeker_profiles.last_name
	Phone           string    // jobseeker_profiles.phone
	Location        string    // jobseeker_profiles.location
	Skills          string    // jobseeker_profiles.skills
	ExperienceYears *int      // jobseeker_profiles.experience_years (nullable)
	ResumeFilename  string    // jobseeker_profiles.resume_filename
	Bio             string    // jobseeker_profiles.bio
	LinkedinURL     string    // jobseeker_profiles.linkedin_url
	PortfolioURL    string    // jobseeker_profiles.portfolio_url
	JobAlerts       bool      // jobseeker_profiles.job_alerts
	UpdatedAt       time.Time // jobseeker_profiles.updated_at
}

// FullName joins the first and last name for display and notification text.
func (p JobSeekerProfile) FullName() string {
	return p.FirstName + " " + p.LastName
}

// EmployerProfile holds the role-specific record owned by exactly one
// employer user. IsVerified is informational only; no workflow reads it.
type EmployerProfile struct {
	ID                 uint64    // employer_profiles.id
	UserID             uint64    // employer_profiles.user_id
	CompanyName        string    // employer_profiles.company_name
	CompanySize        string    // employer_profiles.company_size
	Industry           string    // employer_profiles.industry
	CompanyDescription string    // employer_profiles.company_description
	Website            string    // employer_profiles.website
	Location           string    // employer_profiles.location
	ContactPerson      string    // employer_profiles.contact_person
	Phone              string    // employer_profiles.phone
	IsVerified         bool      // employer_profiles.is_verified
	UpdatedAt          time.Time // employer_profiles.updated_at
}
