package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/vitahires/internal/model"
	"github.com/iliyamo/vitahires/internal/repository"
	"github.com/iliyamo/vitahires/internal/utils"
)

// EmployerHandler serves the employer-only endpoints: posting jobs,
// listing own postings and the employer dashboard.
type EmployerHandler struct {
	Jobs         *repository.JobRepo
	Applications *repository.ApplicationRepo
	Messages     *repository.MessageRepo
}

func NewEmployerHandler(jobs *repository.JobRepo, apps *repository.ApplicationRepo, messages *repository.MessageRepo) *EmployerHandler {
	return &EmployerHandler{Jobs: jobs, Applications: apps, Messages: messages}
}

type postJobReq struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	Requirements    string `json:"requirements"`
	Location        string `json:"location"`
	JobType         string `json:"job_type"`
	Category        string `json:"category"`
	SalaryMin       *int   `json:"salary_min"`
	SalaryMax       *int   `json:"salary_max"`
	ExperienceLevel string `json:"experience_level"`
	SkillsRequired  string `json:"skills_required"`
	ExpiresAt       string `json:"expires_at"` // RFC3339, optional
}

// PostJob: POST /v1/employer/jobs. New postings go live immediately:
// both visibility flags are set on insert. Salary bounds are stored as
// given, even when min exceeds max.
func (h *EmployerHandler) PostJob(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req postJobReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	if req.Title == "" || req.Description == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title/description required"})
	}
	if req.JobType != "" && !model.ValidJobType(req.JobType) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid job_type"})
	}
	if req.ExperienceLevel != "" && !model.ValidExperienceLevel(req.ExperienceLevel) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid experience_level"})
	}

	var expiresAt *time.Time
	if s := strings.TrimSpace(req.ExpiresAt); s != "" {
		t, perr := time.Parse(time.RFC3339, s)
		if perr != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid expires_at"})
		}
		expiresAt = &t
	}

	job := model.Job{
		Title:           req.Title,
		Description:     req.Description,
		Requirements:    strings.TrimSpace(req.Requirements),
		Location:        strings.TrimSpace(req.Location),
		JobType:         model.JobType(req.JobType),
		Category:        model.NormalizeCategory(req.Category),
		SalaryMin:       req.SalaryMin,
		SalaryMax:       req.SalaryMax,
		ExperienceLevel: model.ExperienceLevel(req.ExperienceLevel),
		SkillsRequired:  strings.TrimSpace(req.SkillsRequired),
		PostedBy:        uid,
		IsActive:        true,
		IsApproved:      true,
		ExpiresAt:       expiresAt,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if err := h.Jobs.Create(ctx, &job); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create job failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"id":        job.ID,
		"title":     job.Title,
		"category":  job.Category,
		"posted_at": job.PostedAt,
	})
}

// ListMyJobs: GET /v1/employer/jobs. All own postings regardless of
// visibility, newest first.
func (h *EmployerHandler) ListMyJobs(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	jobs, err := h.Jobs.ListByOwner(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	out := make([]echo.Map, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, echo.Map{
			"id":          j.ID,
			"title":       j.Title,
			"location":    j.Location,
			"job_type":    string(j.JobType),
			"category":    j.Category,
			"salary":      utils.FormatSalary(j.SalaryMin, j.SalaryMax),
			"is_active":   j.IsActive,
			"is_approved": j.IsApproved,
			"posted_at":   j.PostedAt,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"jobs": out, "count": len(out)})
}

// Dashboard: GET /v1/employer/dashboard. Own postings plus the latest
// applications across them.
func (h *EmployerHandler) Dashboard(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	jobs, err := h.Jobs.ListByOwner(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	apps, err := h.Applications.ListForEmployer(ctx, uid, 20)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	inbox, err := h.Messages.ListInbox(ctx, uid, 5)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if apps == nil {
		apps = []repository.EmployerApplicationRow{}
	}
	if inbox == nil {
		inbox = []repository.InboxRow{}
	}

	active := 0
	for _, j := range jobs {
		if j.IsActive && j.IsApproved {
			active++
		}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"job_count":           len(jobs),
		"active_jobs":         active,
		"recent_applications": apps,
		"recent_messages":     inbox,
	})
}
