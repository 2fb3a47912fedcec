package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yourplaces/places-api/internal/api/handler"
	"github.com/yourplaces/places-api/internal/api/middleware"
	"github.com/yourplaces/places-api/internal/core/ports"
	"github.com/yourplaces/places-api/internal/core/service"
	"github.com/yourplaces/places-api/internal/infrastructure/config"
	mongodb "github.com/yourplaces/places-api/internal/infrastructure/db/mongo"
	redisdb "github.com/yourplaces/places-api/internal/infrastructure/db/redis"
	"github.com/yourplaces/places-api/internal/infrastructure/geocode"
	"github.com/yourplaces/places-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(client *mongo.Client, db *mongo.Database, rdb *redis.Client, images ports.ImageStore, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("places_http"))

	// --- Dependencies ---
	placeRepo := mongodb.NewPlaceRepository(db)
	userRepo := mongodb.NewUserRepository(db)
	txRunner := mongodb.NewTxRunner(client)

	geocoder := geocode.NewCachedGeocoder(
		geocode.NewClient(geocode.Config{
			BaseURL: cfg.Geocoder.BaseURL,
			APIKey:  cfg.Geocoder.APIKey,
			Timeout: cfg.Geocoder.Timeout,
		}, log),
		redisdb.NewGeocodeCache(rdb),
		log,
	)

	placeService := service.NewPlaceService(placeRepo, userRepo, txRunner, geocoder, images, log)
	userService := service.NewUserService(userRepo, cfg.JWTSecret, cfg.TokenTTL)

	placeHandler := handler.NewPlaceHandler(placeService, images)
	userHandler := handler.NewUserHandler(userService, images)
	authMiddleware := middleware.Auth(cfg.JWTSecret)

	// --- User routes ---
	users := e.Group("/api/users")
	users.GET("", userHandler.List)
	users.POST("/signup", userHandler.Signup)
	users.POST("/login", userHandler.Login)

	// --- Place routes; mutations require a valid token ---
	places := e.Group("/api/places")
	places.GET("/:pid", placeHandler.Get)
	places.GET("/user/:uid", placeHandler.ListByUser)
	places.POST("", placeHandler.Create, authMiddleware)
	places.PATCH("/:pid", placeHandler.Update, authMiddleware)
	places.DELETE("/:pid", placeHandler.Delete, authMiddleware)

	// --- Uploaded images are served as-is ---
	e.Static("/uploads/images", cfg.UploadDir)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
