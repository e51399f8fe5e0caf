package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/cargolink/logistics-api/docs"
	"github.com/cargolink/logistics-api/internal/api/handler"
	"github.com/cargolink/logistics-api/internal/api/middleware"
	"github.com/cargolink/logistics-api/internal/core/service"
	"github.com/cargolink/logistics-api/internal/infrastructure/config"
	mongodb "github.com/cargolink/logistics-api/internal/infrastructure/db/mongo"
	redisdb "github.com/cargolink/logistics-api/internal/infrastructure/db/redis"
	"github.com/cargolink/logistics-api/internal/infrastructure/notify"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("logistics"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	clientRepo := mongodb.NewClientRepository(db)
	seqRepo := mongodb.NewSequenceRepository(db)
	bookingRepo := mongodb.NewBookingRepository(db)
	containerRepo := mongodb.NewContainerRepository(db)
	warehouseRepo := mongodb.NewWarehouseRepository(db)
	paymentRepo := mongodb.NewPaymentRepository(db)

	// --- Services ---
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.JWTLifetime, cfg.TestUserID)
	minter := service.NewMinter(seqRepo)
	authService := service.NewAuthService(userRepo, tokens, log)
	throttle := redisdb.NewOTPThrottle(rdb, cfg.OTPCooldown)
	otpService := service.NewOTPService(clientRepo, tokens, throttle, notify.NewLogNotifier(log), cfg.OTPTTL, log)
	clientService := service.NewClientService(clientRepo, minter, tokens, log)
	bookingService := service.NewBookingService(bookingRepo, minter, log)
	containerService := service.NewContainerService(containerRepo, minter, log)
	warehouseService := service.NewWarehouseService(warehouseRepo, minter, log)
	paymentService := service.NewPaymentService(paymentRepo, bookingRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	clientHandler := handler.NewClientHandler(clientService, otpService, !cfg.IsProduction())
	bookingHandler := handler.NewBookingHandler(bookingService)
	containerHandler := handler.NewContainerHandler(containerService)
	warehouseHandler := handler.NewWarehouseHandler(warehouseService)
	paymentHandler := handler.NewPaymentHandler(paymentService)

	// --- Gate stages ---
	authenticated := middleware.Auth(tokens)
	admin := middleware.RequireAdmin(userRepo)
	notTestUser := middleware.RejectTestUser()

	v1 := e.Group("/api/v1")

	// --- Staff routes ---
	v1.POST("/register", authHandler.Register)
	v1.POST("/login", authHandler.Login)
	v1.GET("/login-check", authHandler.LoginCheck, authenticated)
	v1.GET("/admin-check", authHandler.AdminCheck, authenticated, admin)
	v1.PUT("/profile", authHandler.UpdateProfile, authenticated, notTestUser)
	v1.GET("/secret", authHandler.Secret, authenticated, admin)
	v1.GET("/all-users", authHandler.AllUsers, authenticated, admin)
	v1.PUT("/admin/update-role", authHandler.UpdateRole, authenticated, admin)

	// --- Client routes ---
	v1.POST("/client/create", clientHandler.Create)
	v1.GET("/client/all", clientHandler.List, authenticated, admin)
	v1.GET("/client/:id", clientHandler.GetByID, authenticated, admin)
	v1.PUT("/client/update", clientHandler.Update, authenticated)
	v1.DELETE("/client/delete/:id", clientHandler.Delete, authenticated, admin)
	v1.POST("/client/form/add", clientHandler.AddForm, authenticated)
	v1.POST("/client/generate-otp", clientHandler.GenerateOTP)
	v1.POST("/client/verify-otp", clientHandler.VerifyOTP)

	// --- Booking routes ---
	v1.POST("/booking/create", bookingHandler.Create, authenticated)
	v1.GET("/booking/all", bookingHandler.List, authenticated, admin)
	v1.GET("/booking/:id", bookingHandler.GetByID, authenticated)
	v1.PUT("/booking/status", bookingHandler.UpdateStatus, authenticated, admin)

	// --- Container routes ---
	v1.POST("/container/create", containerHandler.Create, authenticated, admin)
	v1.GET("/container/all", containerHandler.List, authenticated)
	v1.GET("/container/:id", containerHandler.GetByID, authenticated)

	// --- Warehouse routes ---
	v1.POST("/warehouse/create", warehouseHandler.Create, authenticated, admin)
	v1.GET("/warehouse/all", warehouseHandler.List, authenticated)

	// --- Payment routes ---
	v1.POST("/payment/create", paymentHandler.Create, authenticated)
	v1.GET("/payment/:id", paymentHandler.GetByID, authenticated)
	v1.PUT("/payment/status", paymentHandler.UpdateStatus, authenticated, admin)

	// --- Ops endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
