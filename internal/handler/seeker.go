package handler

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/vitahires/internal/model"
	"github.com/iliyamo/vitahires/internal/queue"
	"github.com/iliyamo/vitahires/internal/repository"
)

// Narrow interfaces over the repositories so tests can swap in fakes.
type visibleJobFinder interface {
	GetVisible(ctx context.Context, id uint64) (model.Job, error)
}
type applicationStore interface {
	Create(ctx context.Context, jobID, userID uint64, coverLetter string) (model.Application, error)
	ListByUser(ctx context.Context, userID uint64) ([]repository.SeekerApplicationRow, error)
}
type savedJobStore interface {
	Toggle(ctx context.Context, jobID, userID uint64) (bool, error)
	ListByUser(ctx context.Context, userID uint64) ([]repository.SavedJobRow, error)
}
type userFinder interface {
	GetByID(ctx context.Context, id uint64) (model.User, error)
}
type inboxLister interface {
	ListInbox(ctx context.Context, recipientID uint64, limit int) ([]repository.InboxRow, error)
}

// NotifyFunc hands a notification to the queue. Delivery is best
// effort: a failed publish must never fail the request that caused it.
type NotifyFunc func(ctx context.Context, n queue.EmailNotification) error

// SeekerHandler serves the jobseeker-only endpoints: applying, saving
// and the seeker dashboard.
type SeekerHandler struct {
	Jobs         visibleJobFinder
	Applications applicationStore
	Saved        savedJobStore
	Users        userFinder
	Messages     inboxLister
	Notify       NotifyFunc
}

func NewSeekerHandler(jobs visibleJobFinder, apps applicationStore, saved savedJobStore, users userFinder, messages inboxLister, notify NotifyFunc) *SeekerHandler {
	return &SeekerHandler{Jobs: jobs, Applications: apps, Saved: saved, Users: users, Messages: messages, Notify: notify}
}

type applyReq struct {
	CoverLetter string `json:"cover_letter"`
}

// Apply: POST /v1/jobs/:id/apply. Applying is one-way: the first
// attempt creates the application, every later attempt gets a distinct
// conflict answer. Uniqueness is enforced by the applications table, so
// two racing requests cannot both succeed.
func (h *SeekerHandler) Apply(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	jobID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid job id"})
	}
	var req applyReq
	_ = c.Bind(&req) // cover letter is optional; an empty body is fine

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	job, err := h.Jobs.GetVisible(ctx, jobID)
	if err != nil {
		if err == repository.ErrJobNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "job not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	app, err := h.Applications.Create(ctx, jobID, uid, req.CoverLetter)
	if err != nil {
		if err == repository.ErrAlreadyApplied {
			return c.JSON(http.StatusConflict, echo.Map{"error": "already applied"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "apply failed"})
	}

	// The application is committed; anything past this point is best
	// effort and must not change the response.
	if h.Notify != nil {
		if owner, oerr := h.Users.GetByID(ctx, job.PostedBy); oerr != nil {
			log.Printf("apply notify: load employer %d: %v", job.PostedBy, oerr)
		} else if nerr := h.Notify(ctx, queue.ApplicationReceivedEmail(owner.Email, job.Title)); nerr != nil {
			log.Printf("apply notify: publish for job %d: %v", jobID, nerr)
		}
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"application_id": app.ID,
		"job_id":         app.JobID,
		"status":         string(app.Status),
		"applied_at":     app.AppliedAt,
	})
}

// ToggleSave: POST /v1/jobs/:id/save. A true toggle: saving an already
// saved job removes the bookmark instead of erroring.
func (h *SeekerHandler) ToggleSave(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	jobID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid job id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if _, err := h.Jobs.GetVisible(ctx, jobID); err != nil {
		if err == repository.ErrJobNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "job not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	saved, err := h.Saved.Toggle(ctx, jobID, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save failed"})
	}
	msg := "job saved"
	if !saved {
		msg = "job unsaved"
	}
	return c.JSON(http.StatusOK, echo.Map{"saved": saved, "message": msg})
}

// ListApplications: GET /v1/seeker/applications.
func (h *SeekerHandler) ListApplications(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	rows, err := h.Applications.ListByUser(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if rows == nil {
		rows = []repository.SeekerApplicationRow{}
	}
	return c.JSON(http.StatusOK, echo.Map{"applications": rows, "count": len(rows)})
}

// ListSaved: GET /v1/seeker/saved-jobs.
func (h *SeekerHandler) ListSaved(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	rows, err := h.Saved.ListByUser(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if rows == nil {
		rows = []repository.SavedJobRow{}
	}
	return c.JSON(http.StatusOK, echo.Map{"saved_jobs": rows, "count": len(rows)})
}

// Dashboard: GET /v1/seeker/dashboard. Applications and bookmarks in
// one response for the landing page.
func (h *SeekerHandler) Dashboard(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	apps, err := h.Applications.ListByUser(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	saved, err := h.Saved.ListByUser(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	inbox, err := h.Messages.ListInbox(ctx, uid, 5)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if apps == nil {
		apps = []repository.SeekerApplicationRow{}
	}
	if saved == nil {
		saved = []repository.SavedJobRow{}
	}
	if inbox == nil {
		inbox = []repository.InboxRow{}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"applications":      apps,
		"application_count": len(apps),
		"saved_jobs":        saved,
		"saved_count":       len(saved),
		"recent_messages":   inbox,
	})
}
