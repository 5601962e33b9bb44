package model

import "time"

// JobType is the closed set of employment arrangements a posting may use.
type JobType string

const (
	JobTypeFullTime JobType = "full-time"
	JobTypePartTime JobType = "part-time"
	JobTypeContract JobType = "contract"
	JobTypeRemote   JobType = "remote"
)

// ValidJobType reports whether s is one of the known job types.
func ValidJobType(s string) bool {
	switch JobType(s) {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeRemote:
		return true
	}
	return false
}

// ExperienceLevel is the closed set of seniority tiers.
type ExperienceLevel string

const (
	ExperienceEntry  ExperienceLevel = "entry"
	ExperienceMid    ExperienceLevel = "mid"
	ExperienceSenior ExperienceLevel = "senior"
)

// ValidExperienceLevel reports whether s is one of the known levels.
func ValidExperienceLevel(s string) bool {
	switch ExperienceLevel(s) {
	case ExperienceEntry, ExperienceMid, ExperienceSenior:
		return true
	}
	return false
}

// CategoryOther is the fallback category applied when a posting does not
// name a recognized one.
const CategoryOther = "other"

// jobCategories is the closed catalog of posting categories.
var jobCategories = map[string]bool{
	"software-development": true,
	"data-science":         true,
	"cybersecurity":        true,
	"devops":               true,
	"mobile-development":   true,
	"web-development":      true,
	"it-support":           true,
	"project-management":   true,
	"ui-ux-design":         true,
	CategoryOther:          true,
}

// ValidCategory reports whether s is one of the known categories.
func ValidCategory(s string) bool { return jobCategories[s] }

// NormalizeCategory maps anything outside the closed catalog to "other".
func NormalizeCategory(s string) string {
	if jobCategories[s] {
		return s
	}
	return CategoryOther
}

// Job represents a posting in the `jobs` table. A job is visible to
// seekers only when both IsActive and IsApproved are set; everything a
// seeker can do (search, detail, apply, save) reads through that gate.
//
// Fields:
//  ID              – primary key identifier.
//  Title           – posting title.
//  Description     – full description text.
//  Requirements    – free-text requirements.
//  Location        – free-text location, matched by substring in search.
//  JobType         – employment arrangement (full-time, part-time, contract, remote).
//  Category        – closed catalog value, defaulting to "other".
//  SalaryMin       – optional lower salary bound; no ordering against SalaryMax is enforced.
//  SalaryMax       – optional upper salary bound.
//  ExperienceLevel – seniority tier (entry, mid, senior).
//  SkillsRequired  – free-text comma-separated skills.
//  PostedBy        – owning employer user id.
//  IsActive        – soft-delete / pause flag.
//  IsApproved      – moderation gate; set true at creation, nothing toggles it.
//  PostedAt        – creation timestamp; search orders newest first on it.
//  ExpiresAt       – optional deadline; stored but never enforced.
type Job struct {
	ID              uint64     // jobs.id
	Title           string     // jobs.title
	Description     string     // jobs.description
	Requirements    string     // jobs.requirements
	Location        string     // jobs.location
	JobType         JobType    // jobs.job_type
	Category        string     // jobs.category
	SalaryMin       *int       // jobs.salary_min (nullable)
	SalaryMax       *int       // jobs.salary_max (nullable)
	ExperienceLevel ExperienceLevel // jobs.experience_level
	SkillsRequired  string     // jobs.skills_required
	PostedBy        uint64     // jobs.posted_by
	IsActive        bool       // jobs.is_active
	IsApproved      bool       // jobs.is_approved
	PostedAt        time.Time  // jobs.posted_at
	ExpiresAt       *time.Time // jobs.expires_at (nullable)
}
