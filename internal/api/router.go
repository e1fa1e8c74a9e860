package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/brightline/tutoring-platform/internal/api/handler"
	"github.com/brightline/tutoring-platform/internal/api/middleware"
	"github.com/brightline/tutoring-platform/internal/core/domain"
	"github.com/brightline/tutoring-platform/internal/core/service"
	"github.com/brightline/tutoring-platform/internal/infrastructure/config"
	mongodb "github.com/brightline/tutoring-platform/internal/infrastructure/db/mongo"
	redisdb "github.com/brightline/tutoring-platform/internal/infrastructure/db/redis"
	"github.com/brightline/tutoring-platform/internal/infrastructure/whatsapp"
)

// NewRouter builds and returns the Echo instance with all routes
// registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("tutoring"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	contactRepo := mongodb.NewContactRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, 24*time.Hour)
	userService := service.NewUserService(userRepo, log)

	sender := whatsapp.NewClient(cfg.WhatsApp.AccountSID, cfg.WhatsApp.AuthToken)
	notifier := service.NewWhatsAppNotifier(service.ChannelConfig{
		AccountSID:    cfg.WhatsApp.AccountSID,
		AuthToken:     cfg.WhatsApp.AuthToken,
		SenderAddress: cfg.WhatsApp.From,
		Recipient:     cfg.WhatsApp.Recipient,
	}, sender, contactRepo, log)
	contactService := service.NewContactService(contactRepo, notifier, log)

	limiter := redisdb.NewRateLimiter(rdb, 5, time.Minute)

	authHandler := handler.NewAuthHandler(authService, 24*time.Hour)
	userHandler := handler.NewUserHandler(userService)
	contactHandler := handler.NewContactHandler(contactService, limiter, log)
	dashboardHandler := handler.NewDashboardHandler(userRepo)

	authRequired := middleware.Auth(cfg.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/sign-out", authHandler.SignOut)

	// --- Public contact form ---
	e.POST("/contact-forms", contactHandler.Submit)

	// --- Role dashboards ---
	e.GET("/dashboards/admin", dashboardHandler.Show(domain.RoleAdministrator, "admin"),
		middleware.Guard(domain.RoleAdministrator, cfg.JWTSecret))
	e.GET("/dashboards/tutor", dashboardHandler.Show(domain.RoleTutor, "tutor"),
		middleware.Guard(domain.RoleTutor, cfg.JWTSecret))
	e.GET("/dashboards/student", dashboardHandler.Show(domain.RoleStudent, "student"),
		middleware.Guard(domain.RoleStudent, cfg.JWTSecret))
	e.GET("/dashboards/parent", dashboardHandler.Show(domain.RoleParent, "parent"),
		middleware.Guard(domain.RoleParent, cfg.JWTSecret))

	// --- Managed user records ---
	users := e.Group("/users", authRequired)
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.GET("/:id", userHandler.Get)
	users.PATCH("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// --- Operator view of submissions ---
	submissions := e.Group("/contact-submissions", authRequired)
	submissions.GET("", contactHandler.ListSubmissions)
	submissions.GET("/:id", contactHandler.GetSubmission)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
