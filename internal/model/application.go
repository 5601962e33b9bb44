package model

import "time"

// ApplicationStatus is the closed set of review states for an application.
// New applications always start as pending; nothing in the service moves
// them further yet.
type ApplicationStatus string

const (
	ApplicationPending     ApplicationStatus = "pending"
	ApplicationReviewed    ApplicationStatus = "reviewed"
	ApplicationShortlisted ApplicationStatus = "shortlisted"
	ApplicationRejected    ApplicationStatus = "rejected"
)

// Application links one job and one jobseeker in the `applications`
// table. The (job_id, user_id) pair is unique: a seeker holds at most
// one application per job, enforced by the database constraint.
//
// Fields:
//  ID          – primary key identifier.
//  JobID       – the job applied to.
//  UserID      – the applying jobseeker.
//  CoverLetter – optional free text supplied at apply time.
//  Status      – review state, starts at pending.
//  AppliedAt   – creation timestamp.
type Application struct {
	ID          uint64            // applications.id
	JobID       uint64            // applications.job_id
	UserID      uint64            // applications.user_id
	CoverLetter string            // applications.cover_letter
	Status      ApplicationStatus // applications.status
	AppliedAt   time.Time         // applications.applied_at
}

// SavedJob is a bookmark row in the `saved_jobs` table. Unlike an
// application it is a toggle: saving an already-saved job removes the
// row. The (job_id, user_id) pair is unique.
type SavedJob struct {
	ID      uint64    // saved_jobs.id
	JobID   uint64    // saved_jobs.job_id
	UserID  uint64    // saved_jobs.user_id
	SavedAt time.Time // saved_jobs.saved_at
}
