package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/wanderstay/travel-api/internal/api/handler"
	"github.com/wanderstay/travel-api/internal/api/middleware"
	"github.com/wanderstay/travel-api/internal/auth"
	"github.com/wanderstay/travel-api/internal/core/domain"
	"github.com/wanderstay/travel-api/internal/core/ports"
	"github.com/wanderstay/travel-api/internal/core/service"
	"github.com/wanderstay/travel-api/internal/infrastructure/config"
	mongorepo "github.com/wanderstay/travel-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/wanderstay/travel-api/internal/infrastructure/db/redis"
	"github.com/wanderstay/travel-api/internal/infrastructure/searchapi"
)

// NewRouter builds the Echo instance with all routes registered. Everything
// the server needs arrives through the parameters; nothing reads the
// environment from here down.
func NewRouter(cfg *config.Config, db *mongo.Database, mongoClient *mongo.Client, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("travel"))

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	userRepo := mongorepo.NewUserRepository(db)
	hotelRepo := mongorepo.NewHotelRepository(db)
	bookingRepo := mongorepo.NewBookingRepository(db)
	reviewRepo := mongorepo.NewReviewRepository(db)

	var hotelProvider ports.HotelSearchProvider = searchapi.NewHotelbedsClient(
		cfg.Hotelbeds.APIKey, cfg.Hotelbeds.APISecret,
		searchapi.WithHotelbedsBaseURL(cfg.Hotelbeds.BaseURL),
	)
	var flightProvider ports.FlightSearchProvider = searchapi.NewAviationstackClient(
		cfg.Aviationstack.AccessKey,
		searchapi.WithAviationstackBaseURL(cfg.Aviationstack.BaseURL),
	)
	searchCache := redisinfra.NewSearchCache(rdb, 10*time.Minute)

	authService := service.NewAuthService(userRepo, tokens, cfg.SignUpCode)
	userService := service.NewUserService(userRepo)
	hotelService := service.NewHotelService(hotelRepo, log)
	bookingService := service.NewBookingService(bookingRepo, hotelRepo, log)
	reviewService := service.NewReviewService(reviewRepo, userRepo, log)
	favoriteService := service.NewFavoriteService(userRepo, hotelRepo)
	searchService := service.NewSearchService(hotelProvider, flightProvider, searchCache, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	hotelHandler := handler.NewHotelHandler(hotelService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService)
	searchHandler := handler.NewSearchHandler(searchService)
	healthHandler := handler.NewHealthHandler(mongoClient, rdb)

	authed := middleware.Auth(tokens)
	operatorOnly := middleware.RequireRole(domain.RoleOperator)

	// Auth
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// Hotel catalogue: reads are public, writes are operator only.
	e.GET("/hotels", hotelHandler.List)
	e.GET("/hotels/:id", hotelHandler.Get)
	e.POST("/hotels", hotelHandler.Create, authed, operatorOnly)
	e.PUT("/hotels/:id", hotelHandler.Update, authed, operatorOnly)
	e.DELETE("/hotels/:id", hotelHandler.Delete, authed, operatorOnly)

	// Bookings
	e.POST("/bookings", bookingHandler.Create, authed)
	e.GET("/bookings/my", bookingHandler.ListMine, authed)
	e.DELETE("/bookings/:id", bookingHandler.Delete, authed)

	// Reviews: per-hotel listings are public, one route per source.
	e.POST("/reviews", reviewHandler.Create, authed)
	e.GET("/reviews/localHotels/:hotelId", reviewHandler.ListForHotel(domain.SourceLocal))
	e.GET("/reviews/externalHotels/:hotelId", reviewHandler.ListForHotel(domain.SourceExternal))
	e.GET("/reviews/my-reviews", reviewHandler.ListMine, authed)
	e.DELETE("/reviews/:reviewId", reviewHandler.Delete, authed)

	// Favorites and profile, all scoped to the session's own user.
	e.GET("/users/me/favorites", favoriteHandler.List, authed)
	e.POST("/users/me/favorites", favoriteHandler.Add, authed)
	e.DELETE("/users/me/favorites/:hotelId", favoriteHandler.Remove, authed)
	e.GET("/users/me", userHandler.Profile, authed)
	e.PUT("/users/me/name", userHandler.UpdateUsername, authed)
	e.PUT("/users/me/avatar", userHandler.UpdateAvatar, authed)

	// Third-party search proxies. Public; the upstream key is ours and the
	// responses carry no user data.
	e.GET("/search/hotels", searchHandler.SearchHotels)
	e.GET("/search/flights", searchHandler.SearchFlights)

	// Observability and probes
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/health", healthHandler.Live)
	e.GET("/health/ready", healthHandler.Ready)
	e.GET("/swagger/*", echoswagger.WrapHandler)

	e.RouteNotFound("/*", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "route not found")
	})

	return e
}
