package handler

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/vitahires/internal/model"
	"github.com/iliyamo/vitahires/internal/queue"
	"github.com/iliyamo/vitahires/internal/repository"
	"github.com/iliyamo/vitahires/internal/utils"
)

// PublicHandler serves the unauthenticated surface: job search and
// detail, site stats, the blog and the contact form. Job detail also
// decorates the response for logged-in seekers, so it reads the viewer
// identity when the optional auth middleware put one in the context.
type PublicHandler struct {
	Jobs         *repository.JobRepo
	Profiles     *repository.ProfileRepo
	Applications *repository.ApplicationRepo
	Saved        *repository.SavedJobRepo
	Users        *repository.UserRepo
	Blog         *repository.BlogRepo
	AdminEmail   string
	Notify       NotifyFunc
}

// parseSearchQuery maps query params onto a search. Unknown enum values
// pass through untouched; they simply match nothing. A page value that
// fails to parse falls back to 1.
func parseSearchQuery(c echo.Context) repository.JobSearchQuery {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		page = 1
	}
	return repository.JobSearchQuery{
		Keywords:        c.QueryParam("keywords"),
		Location:        c.QueryParam("location"),
		Category:        strings.TrimSpace(c.QueryParam("category")),
		JobType:         strings.TrimSpace(c.QueryParam("job_type")),
		ExperienceLevel: strings.TrimSpace(c.QueryParam("experience_level")),
		Page:            page,
	}
}

// SearchJobs: GET /v1/jobs. Fixed page size, newest first.
func (h *PublicHandler) SearchJobs(c echo.Context) error {
	q := parseSearchQuery(c)

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	rows, total, err := h.Jobs.Search(ctx, q)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "search failed"})
	}

	totalPages := (total + repository.SearchPageSize - 1) / repository.SearchPageSize
	return c.JSON(http.StatusOK, echo.Map{
		"jobs":        rows,
		"total":       total,
		"page":        q.Page,
		"page_size":   repository.SearchPageSize,
		"total_pages": totalPages,
	})
}

// FeaturedJobs: GET /v1/jobs/featured. The newest visible postings for
// the landing page.
func (h *PublicHandler) FeaturedJobs(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	jobs, err := h.Jobs.ListFeatured(ctx, 6)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	out := make([]echo.Map, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, echo.Map{
			"id":        j.ID,
			"title":     j.Title,
			"location":  j.Location,
			"job_type":  string(j.JobType),
			"category":  j.Category,
			"salary":    utils.FormatSalary(j.SalaryMin, j.SalaryMax),
			"posted_at": j.PostedAt,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"jobs": out})
}

// JobDetail: GET /v1/jobs/:id. Hidden and missing jobs are the same 404.
// When the caller is an authenticated jobseeker the payload carries
// has_applied and is_saved so the UI can render the right buttons.
func (h *PublicHandler) JobDetail(c echo.Context) error {
	jobID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid job id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	j, err := h.Jobs.GetVisible(ctx, jobID)
	if err != nil {
		if err == repository.ErrJobNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "job not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	company := ""
	if p, perr := h.Profiles.GetEmployer(ctx, j.PostedBy); perr == nil {
		company = p.CompanyName
	}

	resp := echo.Map{
		"id":               j.ID,
		"title":            j.Title,
		"description":      j.Description,
		"requirements":     j.Requirements,
		"location":         j.Location,
		"job_type":         string(j.JobType),
		"category":         j.Category,
		"experience_level": string(j.ExperienceLevel),
		"skills_required":  j.SkillsRequired,
		"salary":           utils.FormatSalary(j.SalaryMin, j.SalaryMax),
		"company":          company,
		"posted_at":        j.PostedAt,
	}

	if role, ok := currentRole(c); ok && role == model.RoleJobSeeker {
		if uid, uerr := getUserID(c); uerr == nil {
			applied, aerr := h.Applications.ExistsForUser(ctx, jobID, uid)
			saved, serr := h.Saved.ExistsForUser(ctx, jobID, uid)
			if aerr == nil && serr == nil {
				resp["has_applied"] = applied
				resp["is_saved"] = saved
			}
		}
	}
	return c.JSON(http.StatusOK, resp)
}

// Stats: GET /v1/stats. Public site counters.
func (h *PublicHandler) Stats(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	jobs, err := h.Jobs.CountVisible(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	seekers, err := h.Users.CountByRole(ctx, model.RoleJobSeeker)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	employers, err := h.Users.CountByRole(ctx, model.RoleEmployer)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"active_jobs": jobs,
		"job_seekers": seekers,
		"employers":   employers,
	})
}

// BlogList: GET /v1/blog. Published posts only, newest first.
func (h *PublicHandler) BlogList(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	posts, err := h.Blog.ListPublished(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if posts == nil {
		posts = []repository.PublicPostRow{}
	}
	return c.JSON(http.StatusOK, echo.Map{"posts": posts})
}

// BlogDetail: GET /v1/blog/:slug. Drafts 404 like missing posts.
func (h *PublicHandler) BlogDetail(c echo.Context) error {
	slug := c.Param("slug")

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	p, err := h.Blog.GetPublishedBySlug(ctx, slug)
	if err != nil {
		if err == repository.ErrPostNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "post not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"id":           p.ID,
		"title":        p.Title,
		"slug":         p.Slug,
		"content":      p.Content,
		"excerpt":      p.Excerpt,
		"category":     p.Category,
		"published_at": p.PublishedAt,
	})
}

type contactReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Contact: POST /v1/contact. Forwards the form to the site admin via
// the notification queue. Delivery is best effort like every other
// notification: a failed publish is logged and the sender still gets
// the accepted answer.
func (h *PublicHandler) Contact(c echo.Context) error {
	var req contactReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)
	if req.Name == "" || req.Email == "" || req.Message == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name/email/message required"})
	}

	if h.Notify != nil {
		n := queue.ContactFormEmail(h.AdminEmail, req.Name, req.Email, req.Subject, req.Message)
		if err := h.Notify(c.Request().Context(), n); err != nil {
			log.Printf("contact notify: %v", err)
		}
	}
	return c.JSON(http.StatusAccepted, echo.Map{"message": "thanks, we will get back to you"})
}
