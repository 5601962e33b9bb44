// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios: a job
// that is absent or hidden by its visibility flags surfaces as
// ErrJobNotFound either way, while a duplicate application surfaces
// as ErrAlreadyApplied so the handler can report the "already
// applied" outcome instead of a storage failure.
package repository

import (
	"errors"
	"strings"
)

// ErrEmailExists is returned when registering with an email that is
// already taken. Handlers translate this into an HTTP 409 response.
var ErrEmailExists = errors.New("email already exists")

// ErrJobNotFound is returned when a job does not exist or is filtered
// out by the active+approved visibility gate. The two cases are
// deliberately indistinguishable to callers.
var ErrJobNotFound = errors.New("job not found")

// ErrAlreadyApplied is returned when a jobseeker applies to a job they
// already hold an application for. The database unique constraint on
// (job_id, user_id) is what actually enforces this; the repository
// maps the violation onto this value.
var ErrAlreadyApplied = errors.New("already applied")

// ErrSlugExists is returned when creating a blog post whose slug is
// already taken.
var ErrSlugExists = errors.New("slug already exists")

// ErrProfileNotFound is returned when a role profile row is missing
// for a user.
var ErrProfileNotFound = errors.New("profile not found")

// ErrMessageNotFound is returned when a message does not exist or does
// not belong to the requesting recipient.
var ErrMessageNotFound = errors.New("message not found")

// ErrPostNotFound is returned when a blog post is absent or unpublished.
var ErrPostNotFound = errors.New("post not found")

// isDuplicateKey reports whether err is a MySQL duplicate-entry
// violation (error 1062), the signal the uniqueness invariants rest on.
func isDuplicateKey(err error) bool {
	return err != nil && strings.Contains(err.Error(), "1062")
}
