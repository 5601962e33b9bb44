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

// AdminHandler serves the admin-only endpoints: the overview dashboard
// and blog authoring.
type AdminHandler struct {
	Users        *repository.UserRepo
	Jobs         *repository.JobRepo
	Applications *repository.ApplicationRepo
	Blog         *repository.BlogRepo
}

func NewAdminHandler(u *repository.UserRepo, j *repository.JobRepo, a *repository.ApplicationRepo, b *repository.BlogRepo) *AdminHandler {
	return &AdminHandler{Users: u, Jobs: j, Applications: a, Blog: b}
}

// Dashboard: GET /v1/admin/dashboard. Site-wide counters plus the
// newest users and postings, hidden rows included.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	users, err := h.Users.CountAll(ctx)
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
	jobs, err := h.Jobs.CountAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	pending, err := h.Jobs.CountPendingApproval(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	apps, err := h.Applications.CountAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	recentUsers, err := h.Users.ListRecent(ctx, 10)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	recentJobs, err := h.Jobs.ListRecent(ctx, 10)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	jobRows := make([]echo.Map, 0, len(recentJobs))
	for _, j := range recentJobs {
		jobRows = append(jobRows, echo.Map{
			"id":          j.ID,
			"title":       j.Title,
			"category":    j.Category,
			"is_active":   j.IsActive,
			"is_approved": j.IsApproved,
			"posted_at":   j.PostedAt,
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"total_users":        users,
		"job_seekers":        seekers,
		"employers":          employers,
		"total_jobs":         jobs,
		"pending_approval":   pending,
		"total_applications": apps,
		"recent_users":       recentUsers,
		"recent_jobs":        jobRows,
	})
}

type blogPostReq struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Excerpt   string `json:"excerpt"`
	Category  string `json:"category"`
	Published bool   `json:"published"`
}

// CreateBlogPost: POST /v1/admin/blog. The slug derives from the title;
// on a collision one random suffix is appended and the insert retried
// once before giving up.
func (h *AdminHandler) CreateBlogPost(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req blogPostReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Content = strings.TrimSpace(req.Content)
	if req.Title == "" || req.Content == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title/content required"})
	}

	post := model.BlogPost{
		Title:       req.Title,
		Slug:        utils.Slugify(req.Title),
		Content:     req.Content,
		Excerpt:     strings.TrimSpace(req.Excerpt),
		Category:    strings.TrimSpace(req.Category),
		AuthorID:    uid,
		IsPublished: req.Published,
	}
	if post.IsPublished {
		now := time.Now().UTC()
		post.PublishedAt = &now
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if err := h.Blog.Create(ctx, &post); err != nil {
		if err != repository.ErrSlugExists {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create post failed"})
		}
		post.Slug = post.Slug + "-" + utils.SlugSuffix()
		if err := h.Blog.Create(ctx, &post); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create post failed"})
		}
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"id":        post.ID,
		"slug":      post.Slug,
		"published": post.IsPublished,
	})
}
