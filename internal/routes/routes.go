package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/court-booking/internal/auth"
	"github.com/BruksfildServices01/court-booking/internal/chat"
	"github.com/BruksfildServices01/court-booking/internal/config"
	"github.com/BruksfildServices01/court-booking/internal/factory"
	"github.com/BruksfildServices01/court-booking/internal/handlers"
	"github.com/BruksfildServices01/court-booking/internal/middleware"
	"github.com/BruksfildServices01/court-booking/internal/ratelimit"
	ucBooking "github.com/BruksfildServices01/court-booking/internal/usecase/booking"
	"github.com/BruksfildServices01/court-booking/internal/validators"
)

// Deps is everything RegisterRoutes wires together. Limiter may be nil to
// disable rate limiting.
type Deps struct {
	Config  *config.Config
	Store   *factory.Store
	Limiter ratelimit.Limiter
}

func RegisterRoutes(r *gin.Engine, deps Deps) error {
	cfg := deps.Config
	store := deps.Store

	if err := validators.RegisterBindingRules(); err != nil {
		return err
	}

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	r.Use(middleware.MetricsMiddleware())
	if deps.Limiter != nil {
		r.Use(middleware.RateLimitMiddleware(deps.Limiter))
	}

	// ======================================================
	// INFRA
	// ======================================================
	tokens := auth.NewTokenIssuer(cfg.JWTSecret)
	streamTokens := chat.NewStreamTokens(cfg.StreamAPIKey, cfg.StreamAPISecret)

	// ======================================================
	// USE CASES
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(store.Bookings)
	updateBookingUC := ucBooking.NewUpdateBooking(store.Bookings)
	deleteBookingUC := ucBooking.NewDeleteBooking(store.Bookings)
	listBookingsUC := ucBooking.NewListBookings(store.Bookings)
	listUserBookingsUC := ucBooking.NewListUserBookings(store.Bookings)

	// ======================================================
	// HANDLERS
	// ======================================================
	systemHandler := handlers.NewSystemHandler(store.System)
	authHandler := handlers.NewAuthHandler(store.Users, tokens)
	profileHandler := handlers.NewProfileHandler()
	userHandler := handlers.NewUserHandler(store.Users)
	courtHandler := handlers.NewCourtHandler(store.Courts)
	streamHandler := handlers.NewStreamHandler(streamTokens)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		updateBookingUC,
		deleteBookingUC,
		listBookingsUC,
		listUserBookingsUC,
	)

	// ======================================================
	// SYSTEM
	// ======================================================
	r.GET("/", systemHandler.Root)
	r.GET("/health", systemHandler.Health)
	r.GET("/version", systemHandler.Version)
	r.GET("/metrics", systemHandler.Metrics())

	// ======================================================
	// AUTH
	// ======================================================
	r.POST("/signup", authHandler.Signup)
	r.POST("/login", authHandler.Login)
	r.GET("/profile", middleware.AuthMiddleware(tokens), profileHandler.GetProfile)

	r.POST("/users", userHandler.Sync)
	r.GET("/stream-token", streamHandler.Token)

	// ======================================================
	// COURTS
	// ======================================================
	r.GET("/courts", courtHandler.List)

	// ======================================================
	// BOOKINGS
	// ======================================================
	bookings := r.Group("/bookings")
	{
		bookings.POST("", bookingHandler.Create)
		bookings.GET("", bookingHandler.List)
		bookings.GET("/currentUser/:id", bookingHandler.ListForUser)
		bookings.PUT("/:id", bookingHandler.Update)
		bookings.DELETE("/:id", bookingHandler.Delete)
	}

	return nil
}
