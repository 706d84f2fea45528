package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kunalm01/ibe-engine/internal/config"
	"github.com/kunalm01/ibe-engine/internal/domain/booking"
	"github.com/kunalm01/ibe-engine/internal/domain/guest"
	"github.com/kunalm01/ibe-engine/internal/domain/itinerary"
	"github.com/kunalm01/ibe-engine/internal/domain/promotion"
	"github.com/kunalm01/ibe-engine/internal/domain/property"
	"github.com/kunalm01/ibe-engine/internal/domain/rates"
	"github.com/kunalm01/ibe-engine/internal/domain/review"
	"github.com/kunalm01/ibe-engine/internal/domain/rooms"
	"github.com/kunalm01/ibe-engine/internal/middleware"
	"github.com/kunalm01/ibe-engine/internal/pkg/database"
	"github.com/kunalm01/ibe-engine/internal/pkg/ibeapi"
	"github.com/kunalm01/ibe-engine/internal/pkg/jwt"
	pkgresponse "github.com/kunalm01/ibe-engine/internal/pkg/response"
	"github.com/kunalm01/ibe-engine/internal/pkg/validator"
)

func main() {
	cfg := config.Load()
	setupLogger(cfg)

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Int("tenant", cfg.TenantID).
		Msg("Starting IBE gateway")

	backend := ibeapi.NewClient(cfg.BackendBaseURL, cfg.BackendAPIKey, cfg.BackendTimeout, "ibe-engine/1.0")

	redis, err := database.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer database.CloseRedis(redis)

	var itineraryRepo itinerary.Repository
	if redis != nil {
		itineraryRepo = itinerary.NewRedisRepository(redis)
	} else {
		log.Warn().Msg("No Redis URL configured, itineraries held in process memory")
		itineraryRepo = itinerary.NewMemoryRepository()
	}

	jwtService := jwt.NewService(cfg.JWTSecret)
	v := validator.New()

	// ---------- Services ----------
	propertyService := property.NewService(backend, cfg.TenantID)
	ratesService := rates.NewService(backend)
	promotionService := promotion.NewService(backend, cfg.TenantID)
	itineraryService := itinerary.NewService(itineraryRepo, backend, propertyService, cfg.TenantID, cfg.CheckoutWindow)
	bookingService := booking.NewService(backend)
	reviewService := review.NewService(backend, cfg.TenantID)

	// ---------- Handlers ----------
	propertyHandler := property.NewHandler(propertyService)
	guestHandler := guest.NewHandler(propertyService, v)
	roomsHandler := rooms.NewHandler(backend, propertyService)
	ratesHandler := rates.NewHandler(ratesService)
	promotionHandler := promotion.NewHandler(promotionService)
	itineraryHandler := itinerary.NewHandler(itineraryService, v)
	bookingHandler := booking.NewHandler(bookingService)
	reviewHandler := review.NewHandler(reviewService)

	authMiddleware := middleware.Auth(jwtService)

	// ---------- Router ----------
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(cfg.AllowedOrigins))
	r.Use(chimw.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		pkgresponse.OK(w, map[string]string{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
			pkgresponse.OK(w, map[string]string{"message": "pong"})
		})

		// A fresh session id for the UI to carry in X-Session-ID.
		r.Post("/session", func(w http.ResponseWriter, r *http.Request) {
			pkgresponse.Created(w, map[string]string{"sessionId": uuid.NewString()})
		})

		r.Mount("/config", propertyHandler.Routes())
		r.Mount("/guests", guestHandler.Routes())
		r.Mount("/rooms", roomsHandler.Routes())
		r.Mount("/rates", ratesHandler.Routes())
		r.Mount("/promotions", promotionHandler.Routes())
		r.Mount("/itinerary", itineraryHandler.Routes())
		r.Mount("/reviews", reviewHandler.Routes(authMiddleware))

		r.Route("/bookings", func(r chi.Router) {
			r.Use(authMiddleware)
			r.Mount("/", bookingHandler.Routes())
		})
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}

func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: "15:04:05",
		})
	}
}
