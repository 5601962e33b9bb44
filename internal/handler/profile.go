package handler

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/vitahires/internal/config"
	"github.com/iliyamo/vitahires/internal/model"
	"github.com/iliyamo/vitahires/internal/repository"
	"github.com/iliyamo/vitahires/internal/utils"
)

// ProfileHandler serves profile reads and writes for both roles, plus
// resume upload and download.
type ProfileHandler struct {
	Cfg      config.Config
	Profiles *repository.ProfileRepo
}

func NewProfileHandler(cfg config.Config, p *repository.ProfileRepo) *ProfileHandler {
	return &ProfileHandler{Cfg: cfg, Profiles: p}
}

// Get: GET /v1/profile. The payload shape follows the caller's role.
func (h *ProfileHandler) Get(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	role, ok := currentRole(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	switch role {
	case model.RoleJobSeeker:
		p, err := h.Profiles.GetJobSeeker(ctx, uid)
		if err != nil {
			if err == repository.ErrProfileNotFound {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "profile not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
		}
		return c.JSON(http.StatusOK, echo.Map{
			"first_name":       p.FirstName,
			"last_name":        p.LastName,
			"phone":            p.Phone,
			"location":         p.Location,
			"skills":           p.Skills,
			"experience_years": p.ExperienceYears,
			"resume_filename":  p.ResumeFilename,
			"bio":              p.Bio,
			"linkedin_url":     p.LinkedinURL,
			"portfolio_url":    p.PortfolioURL,
			"job_alerts":       p.JobAlerts,
		})
	case model.RoleEmployer:
		p, err := h.Profiles.GetEmployer(ctx, uid)
		if err != nil {
			if err == repository.ErrProfileNotFound {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "profile not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
		}
		return c.JSON(http.StatusOK, echo.Map{
			"company_name":        p.CompanyName,
			"company_size":        p.CompanySize,
			"industry":            p.Industry,
			"company_description": p.CompanyDescription,
			"website":             p.Website,
			"location":            p.Location,
			"contact_person":      p.ContactPerson,
			"phone":               p.Phone,
			"is_verified":         p.IsVerified,
		})
	default:
		return c.JSON(http.StatusForbidden, echo.Map{"error": "no profile for role"})
	}
}

type seekerProfileReq struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Phone           string `json:"phone"`
	Location        string `json:"location"`
	Skills          string `json:"skills"`
	ExperienceYears *int   `json:"experience_years"`
	Bio             string `json:"bio"`
	LinkedinURL     string `json:"linkedin_url"`
	PortfolioURL    string `json:"portfolio_url"`
	JobAlerts       bool   `json:"job_alerts"`
}

type employerProfileReq struct {
	CompanyName        string `json:"company_name"`
	CompanySize        string `json:"company_size"`
	Industry           string `json:"industry"`
	CompanyDescription string `json:"company_description"`
	Website            string `json:"website"`
	Location           string `json:"location"`
	ContactPerson      string `json:"contact_person"`
	Phone              string `json:"phone"`
}

// Update: PUT /v1/profile. Full replace of the editable fields; the
// resume filename and the employer verification flag are not touched
// here.
func (h *ProfileHandler) Update(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	role, ok := currentRole(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	switch role {
	case model.RoleJobSeeker:
		var req seekerProfileReq
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
		}
		if strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "first_name/last_name required"})
		}
		p := model.JobSeekerProfile{
			UserID:          uid,
			FirstName:       strings.TrimSpace(req.FirstName),
			LastName:        strings.TrimSpace(req.LastName),
			Phone:           req.Phone,
			Location:        req.Location,
			Skills:          req.Skills,
			ExperienceYears: req.ExperienceYears,
			Bio:             req.Bio,
			LinkedinURL:     req.LinkedinURL,
			PortfolioURL:    req.PortfolioURL,
			JobAlerts:       req.JobAlerts,
		}
		if err := h.Profiles.UpdateJobSeeker(ctx, p); err != nil {
			if err == repository.ErrProfileNotFound {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "profile not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
		}
	case model.RoleEmployer:
		var req employerProfileReq
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
		}
		if strings.TrimSpace(req.CompanyName) == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "company_name required"})
		}
		p := model.EmployerProfile{
			UserID:             uid,
			CompanyName:        strings.TrimSpace(req.CompanyName),
			CompanySize:        req.CompanySize,
			Industry:           req.Industry,
			CompanyDescription: req.CompanyDescription,
			Website:            req.Website,
			Location:           req.Location,
			ContactPerson:      req.ContactPerson,
			Phone:              req.Phone,
		}
		if err := h.Profiles.UpdateEmployer(ctx, p); err != nil {
			if err == repository.ErrProfileNotFound {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "profile not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
		}
	default:
		return c.JSON(http.StatusForbidden, echo.Map{"error": "no profile for role"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "profile updated"})
}

// UploadResume: POST /v1/profile/resume. Multipart upload, jobseeker
// only. The stored name embeds the user ID and a timestamp so uploads
// never collide; the profile keeps only the latest name.
func (h *ProfileHandler) UploadResume(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	fh, err := c.FormFile("resume")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "resume file required"})
	}
	if !utils.AllowedResumeFile(fh.Filename) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "only pdf, doc and docx accepted"})
	}
	maxBytes := int64(h.Cfg.MaxUploadMB) << 20
	if fh.Size > maxBytes {
		return c.JSON(http.StatusRequestEntityTooLarge, echo.Map{"error": "file too large"})
	}

	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "read upload failed"})
	}
	defer src.Close()

	if err := os.MkdirAll(h.Cfg.UploadDir, 0o755); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "store upload failed"})
	}
	stored := utils.ResumeStorageName(uid, fh.Filename, time.Now())
	dst, err := os.Create(filepath.Join(h.Cfg.UploadDir, stored))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "store upload failed"})
	}
	defer dst.Close()
	if _, err := io.Copy(dst, io.LimitReader(src, maxBytes)); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "store upload failed"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()
	if err := h.Profiles.SetResume(ctx, uid, stored); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update profile failed"})
	}

	return c.JSON(http.StatusOK, echo.Map{"resume_filename": stored})
}

// ServeUpload: GET /uploads/:filename. The filename is reduced to its
// base so path traversal cannot escape the upload directory.
func (h *ProfileHandler) ServeUpload(c echo.Context) error {
	name := filepath.Base(c.Param("filename"))
	if name == "." || name == "/" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid filename"})
	}
	path := filepath.Join(h.Cfg.UploadDir, name)
	if _, err := os.Stat(path); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "file not found"})
	}
	return c.File(path)
}
