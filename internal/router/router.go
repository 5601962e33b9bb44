package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // the Echo web framework handles routing

	"github.com/iliyamo/vitahires/internal/handler"    // handlers implementing the endpoint logic
	"github.com/iliyamo/vitahires/internal/middleware" // JWT authentication and role enforcement
	"github.com/iliyamo/vitahires/internal/model"      // role constants for route guards
)

// Deps bundles everything route registration needs. main builds one of
// these after wiring the repositories and handlers.
type Deps struct {
	Auth     *handler.AuthHandler
	Public   *handler.PublicHandler
	Seeker   *handler.SeekerHandler
	Employer *handler.EmployerHandler
	Admin    *handler.AdminHandler
	Profile  *handler.ProfileHandler
	Message  *handler.MessageHandler

	JWTSecret string
}

// RegisterRoutes registers routes that do not require authentication.
// Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Load balancers and monitoring hit this to verify the service is up.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth wires the authentication surface. Unauthenticated
// operations live under /v1/auth, the session-bound ones under /v1.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	// Registration is role-specific: each form creates the user and its
	// profile in one shot.
	g.POST("/register/jobseeker", a.RegisterJobSeeker)
	g.POST("/register/employer", a.RegisterEmployer)
	g.POST("/login", a.Login)
	// Refresh rotates the refresh token and issues a fresh pair.
	g.POST("/refresh", a.Refresh)
	// Logout does not require a JWT: a refresh token in the body ends
	// that session, a bearer token with no body ends all of them.
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.GET("/me", a.Me)
}

// RegisterPublic wires the guest-visible browse endpoints. Job search
// and detail run behind OptionalJWT so a logged-in seeker gets
// has_applied / is_saved decoration while guests pass straight through.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, jwtSecret string) {
	opt := middleware.OptionalJWT(jwtSecret)

	e.GET("/v1/jobs", p.SearchJobs)
	e.GET("/v1/jobs/featured", p.FeaturedJobs)
	e.GET("/v1/jobs/:id", p.JobDetail, opt)
	e.GET("/v1/stats", p.Stats)
	e.GET("/v1/blog", p.BlogList)
	e.GET("/v1/blog/:slug", p.BlogDetail)
	e.POST("/v1/contact", p.Contact)
}

// RegisterSeeker wires the jobseeker-only endpoints.
func RegisterSeeker(e *echo.Echo, s *handler.SeekerHandler, jwtSecret string) {
	g := e.Group("/v1")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole(model.RoleJobSeeker))

	// Applying and saving hang off the job resource.
	g.POST("/jobs/:id/apply", s.Apply)
	g.POST("/jobs/:id/save", s.ToggleSave)

	g.GET("/seeker/applications", s.ListApplications)
	g.GET("/seeker/saved-jobs", s.ListSaved)
	g.GET("/seeker/dashboard", s.Dashboard)
}

// RegisterEmployer wires the employer-only endpoints.
func RegisterEmployer(e *echo.Echo, h *handler.EmployerHandler, jwtSecret string) {
	g := e.Group("/v1/employer")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole(model.RoleEmployer))

	g.POST("/jobs", h.PostJob)
	g.GET("/jobs", h.ListMyJobs)
	g.GET("/dashboard", h.Dashboard)
}

// RegisterAdmin wires the admin-only endpoints.
func RegisterAdmin(e *echo.Echo, h *handler.AdminHandler, jwtSecret string) {
	g := e.Group("/v1/admin")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole(model.RoleAdmin))

	g.GET("/dashboard", h.Dashboard)
	g.POST("/blog", h.CreateBlogPost)
}

// RegisterShared wires endpoints open to every authenticated role:
// profile management, resume upload and messaging. Resume downloads
// are served from the upload directory without auth so employers can
// follow resume links from applications.
func RegisterShared(e *echo.Echo, p *handler.ProfileHandler, m *handler.MessageHandler, jwtSecret string) {
	g := e.Group("/v1")
	g.Use(middleware.JWTAuth(jwtSecret))

	g.GET("/profile", p.Get)
	g.PUT("/profile", p.Update)
	g.POST("/profile/resume", p.UploadResume, middleware.RequireRole(model.RoleJobSeeker))

	g.POST("/messages", m.Send)
	g.GET("/messages", m.Inbox)
	g.POST("/messages/:id/read", m.MarkRead)

	e.GET("/uploads/:filename", p.ServeUpload)
}

// RegisterAll is the one-stop registration main calls.
func RegisterAll(e *echo.Echo, d Deps) {
	RegisterRoutes(e)
	RegisterAuth(e, d.Auth, d.JWTSecret)
	RegisterPublic(e, d.Public, d.JWTSecret)
	RegisterSeeker(e, d.Seeker, d.JWTSecret)
	RegisterEmployer(e, d.Employer, d.JWTSecret)
	RegisterAdmin(e, d.Admin, d.JWTSecret)
	RegisterShared(e, d.Profile, d.Message, d.JWTSecret)
}
