package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/velkart/commerce-api/internal/api/handler"
	"github.com/velkart/commerce-api/internal/api/middleware"
	"github.com/velkart/commerce-api/internal/core/service"
	mongostore "github.com/velkart/commerce-api/internal/infrastructure/db/mongo"
	redisstore "github.com/velkart/commerce-api/internal/infrastructure/db/redis"
	"github.com/velkart/commerce-api/internal/infrastructure/hash"
	"github.com/velkart/commerce-api/internal/infrastructure/queue"
	"github.com/velkart/commerce-api/internal/infrastructure/token"
	"github.com/velkart/commerce-api/internal/pkg/config"
)

// NewRouter builds the Echo instance with all routes registered and returns
// it together with the order-event dispatcher, which the caller must Start.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, *queue.Dispatcher) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	// --- Dependencies ---
	userRepo := mongostore.NewUserRepository(db)
	orderRepo := mongostore.NewOrderRepository(db)
	eventRepo := mongostore.NewOrderEventRepository(db)

	hasher := hash.NewBcryptHasher(cfg.BcryptCost)
	tokens := token.NewJWTIssuer(cfg.JWTSecret, cfg.JWTTTL)
	limiter := redisstore.NewResetLimiter(rdb)

	eventService := service.NewOrderEventService(eventRepo, log)
	dispatcher := queue.NewDispatcher(cfg.Workers, eventService, log)

	authService := service.NewAuthService(userRepo, hasher, tokens, limiter, log)
	orderService := service.NewOrderService(orderRepo, dispatcher, log)

	authHandler := handler.NewAuthHandler(authService)
	orderHandler := handler.NewOrderHandler(orderService)

	authMiddleware := middleware.Auth(tokens)
	adminMiddleware := middleware.AdminOnly(userRepo)

	// --- Auth routes ---
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)
	e.POST("/api/auth/forgot-password", authHandler.ForgotPassword)
	e.PUT("/api/auth/profile", authHandler.UpdateProfile, authMiddleware)

	// --- Order routes ---
	e.GET("/api/orders/mine", orderHandler.Mine, authMiddleware)
	e.GET("/api/orders", orderHandler.All, authMiddleware, adminMiddleware)
	e.PUT("/api/orders/:orderID/status", orderHandler.UpdateStatus, authMiddleware, adminMiddleware)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e, dispatcher
}
