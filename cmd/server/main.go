package main // Entry point package

import (
	"log" // Logging library
	"os"  // environment lookups for optional settings

	"github.com/joho/godotenv"    // loads .env files in development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/vitahires/internal/config"
	"github.com/iliyamo/vitahires/internal/database"
	"github.com/iliyamo/vitahires/internal/handler"
	"github.com/iliyamo/vitahires/internal/middleware"
	"github.com/iliyamo/vitahires/internal/queue"
	"github.com/iliyamo/vitahires/internal/repository"
	"github.com/iliyamo/vitahires/internal/router"
	queue_publisher "github.com/iliyamo/vitahires/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Repositories share the one pool.
	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	profiles := repository.NewProfileRepo(db)
	jobs := repository.NewJobRepo(db)
	applications := repository.NewApplicationRepo(db)
	savedJobs := repository.NewSavedJobRepo(db)
	messages := repository.NewMessageRepo(db)
	blog := repository.NewBlogRepo(db)

	// The email consumer drains the notification queue in the background
	// and delivers over SMTP. It reconnects on its own; a fatal start
	// error only disables notifications, never the API.
	go func() {
		if err := queue.StartEmailConsumer(queue.NewSMTPSender(config.LoadMailConfig())); err != nil {
			log.Printf("email consumer stopped: %v", err)
		}
	}()

	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@vitahires.com"
	}

	deps := router.Deps{
		Auth:   handler.NewAuthHandler(cfg, db, users, profiles, tokens),
		Seeker: handler.NewSeekerHandler(jobs, applications, savedJobs, users, messages, queue_publisher.PublishEmail),
		Public: &handler.PublicHandler{
			Jobs:         jobs,
			Profiles:     profiles,
			Applications: applications,
			Saved:        savedJobs,
			Users:        users,
			Blog:         blog,
			AdminEmail:   adminEmail,
			Notify:       queue_publisher.PublishEmail,
		},
		Employer:  handler.NewEmployerHandler(jobs, applications, messages),
		Admin:     handler.NewAdminHandler(users, jobs, applications, blog),
		Profile:   handler.NewProfileHandler(cfg, profiles),
		Message:   handler.NewMessageHandler(messages, users),
		JWTSecret: cfg.JWTSecret,
	}

	e := echo.New()

	// Redis-backed token bucket in front of everything. When Redis is
	// unreachable the limiter fails open.
	rlCfg := config.LoadRateLimitConfig()
	if rlCfg.Enabled {
		e.Use(middleware.NewTokenBucket(rlCfg, config.NewRedisClient()))
	}

	router.RegisterAll(e, deps)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
