package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/campushub/campus-portal/docs"
	"github.com/campushub/campus-portal/internal/api/handler"
	"github.com/campushub/campus-portal/internal/api/middleware"
	"github.com/campushub/campus-portal/internal/core/domain"
	"github.com/campushub/campus-portal/internal/core/ports"
	"github.com/campushub/campus-portal/internal/core/service"
	mongodb "github.com/campushub/campus-portal/internal/infrastructure/db/mongo"
	redisdb "github.com/campushub/campus-portal/internal/infrastructure/db/redis"
)

// Options carries the tunables the router needs beyond its storage handles.
type Options struct {
	SessionTTL   time.Duration
	BcryptCost   int
	SecureCookie bool
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, opts Options, audit ports.AuditRecorder, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("campus"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	announcementRepo := mongodb.NewAnnouncementRepository(db)
	contactRepo := mongodb.NewContactRepository(db)
	sessionStore := redisdb.NewSessionStore(rdb)

	hasher := service.NewPasswordHasher(opts.BcryptCost)
	sessions := service.NewSessionManager(sessionStore, opts.SessionTTL, log)
	authService := service.NewAuthService(userRepo, sessions, hasher, audit, log)
	userService := service.NewUserService(userRepo, sessions, hasher, log)
	announcementService := service.NewAnnouncementService(announcementRepo, log)
	contactService := service.NewContactService(contactRepo, log)

	cookies := handler.CookieConfig{TTL: opts.SessionTTL, Secure: opts.SecureCookie}
	authHandler := handler.NewAuthHandler(authService, cookies)
	userHandler := handler.NewUserHandler(userService)
	announcementHandler := handler.NewAnnouncementHandler(announcementService)
	contactHandler := handler.NewContactHandler(contactService)

	requireAuth := middleware.Auth(sessions)
	requireAdmin := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth ---
	v1 := e.Group("/v1")
	v1.POST("/auth/signup", authHandler.Signup)
	v1.POST("/auth/login", authHandler.Login)
	v1.POST("/auth/logout", authHandler.Logout)
	v1.GET("/auth/me", authHandler.Me, requireAuth)

	// --- Profile ---
	v1.GET("/profile", userHandler.GetProfile, requireAuth)
	v1.PUT("/profile", userHandler.UpdateProfile, requireAuth)
	v1.PUT("/profile/password", authHandler.ChangePassword, requireAuth)

	// --- Announcements ---
	v1.GET("/announcements", announcementHandler.List)
	v1.GET("/announcements/bookmarked", announcementHandler.ListBookmarked, requireAuth)
	v1.GET("/announcements/:id", announcementHandler.Get)
	v1.POST("/announcements", announcementHandler.Create, requireAuth, requireAdmin)
	v1.PUT("/announcements/:id", announcementHandler.Update, requireAuth, requireAdmin)
	v1.DELETE("/announcements/:id", announcementHandler.Delete, requireAuth, requireAdmin)
	v1.POST("/announcements/:id/bookmark", announcementHandler.Bookmark, requireAuth)
	v1.DELETE("/announcements/:id/bookmark", announcementHandler.Unbookmark, requireAuth)

	// --- Contacts ---
	v1.GET("/contacts", contactHandler.List)
	v1.GET("/contacts/:id", contactHandler.Get)
	v1.POST("/contacts", contactHandler.Create, requireAuth, requireAdmin)
	v1.PUT("/contacts/:id", contactHandler.Update, requireAuth, requireAdmin)
	v1.DELETE("/contacts/:id", contactHandler.Delete, requireAuth, requireAdmin)

	// --- Admin user surface ---
	admin := v1.Group("/admin", requireAuth, requireAdmin)
	admin.GET("/users", userHandler.ListUsers)
	admin.POST("/users", userHandler.CreateUser)
	admin.PUT("/users/:id", userHandler.UpdateUser)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Ops endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
