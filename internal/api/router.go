package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/marinacaribe/yacht-rental-system/docs"
	"github.com/marinacaribe/yacht-rental-system/internal/api/handler"
	"github.com/marinacaribe/yacht-rental-system/internal/api/middleware"
	"github.com/marinacaribe/yacht-rental-system/internal/core/domain"
	"github.com/marinacaribe/yacht-rental-system/internal/core/ports"
)

// Dependencies carries everything the router needs. Services are constructed
// in main so the seeder and the HTTP layer share the same instances.
type Dependencies struct {
	JWTSecret string
	Log       zerolog.Logger

	Mongo *mongo.Database
	Redis *redis.Client

	Auth         ports.AuthService
	Users        ports.UserService
	Clients      ports.ClientService
	Yachts       ports.YachtService
	Reservations ports.ReservationService
	Activity     ports.ActivityService
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("yachtrental"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	userHandler := handler.NewUserHandler(deps.Users)
	clientHandler := handler.NewClientHandler(deps.Clients)
	yachtHandler := handler.NewYachtHandler(deps.Yachts)
	reservationHandler := handler.NewReservationHandler(deps.Reservations, deps.Clients, deps.Yachts)
	activityHandler := handler.NewActivityHandler(deps.Activity)

	authRequired := middleware.Auth(deps.JWTSecret, deps.Auth)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	staff := middleware.RBAC(domain.RoleAdmin, domain.RoleEmployee)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, authRequired)
	e.GET("/auth/me", authHandler.Me, authRequired)

	// --- Health probes and operational surface (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Business routes ---
	v1 := e.Group("/v1", authRequired)

	users := v1.Group("/users", adminOnly)
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	clients := v1.Group("/clients", staff)
	clients.GET("", clientHandler.List)
	clients.POST("", clientHandler.Create)
	clients.GET("/:id", clientHandler.Get)
	clients.PUT("/:id", clientHandler.Update)
	clients.DELETE("/:id", clientHandler.Delete)

	yachts := v1.Group("/yachts", staff)
	yachts.GET("", yachtHandler.List)
	yachts.POST("", yachtHandler.Create)
	yachts.GET("/:id", yachtHandler.Get)
	yachts.PUT("/:id", yachtHandler.Update)
	yachts.DELETE("/:id", yachtHandler.Delete)

	reservations := v1.Group("/reservations", staff)
	reservations.GET("", reservationHandler.List)
	reservations.POST("", reservationHandler.Create)
	reservations.GET("/:id", reservationHandler.Get)
	reservations.PUT("/:id", reservationHandler.Update)
	reservations.POST("/:id/cancel", reservationHandler.Cancel)
	reservations.DELETE("/:id", reservationHandler.Delete)

	activity := v1.Group("/activity", adminOnly)
	activity.GET("", activityHandler.List)
	activity.POST("/prune", activityHandler.Prune)

	return e
}
