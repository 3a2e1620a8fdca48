package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/vitalog-app/backend/config"
	"github.com/vitalog-app/backend/internal/api"
	"github.com/vitalog-app/backend/internal/database"
	"github.com/vitalog-app/backend/internal/router"
	"github.com/vitalog-app/backend/internal/service"
	"github.com/vitalog-app/backend/internal/status"
)

// Server wires the services and handlers together and runs the HTTP server.
type Server struct {
	engine   *gin.Engine
	http     *http.Server
	db       *gorm.DB
	healthDB *database.DB
	redis    *redis.Client
	cfg      *config.Config
}

// New builds a Server from configuration: database, Redis, services, routes.
func New(cfg *config.Config) (*Server, error) {
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewGorm(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, err
	}

	// Raw connection for the health endpoint; failure is not fatal because
	// gorm already verified the database is reachable.
	healthDB, err := database.New(cfg)
	if err != nil {
		log.Printf("Health check connection unavailable: %v", err)
		healthDB = nil
	}

	// Redis is optional: without it the app runs uncached and unthrottled.
	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Printf("Redis unavailable, continuing without cache: %v", err)
		redisClient = nil
	}

	thresholds := status.Thresholds{
		CalorieLowerRatio:     cfg.CalorieLowerRatio,
		CalorieUpperRatio:     cfg.CalorieUpperRatio,
		ExerciseLowCalories:   cfg.ExerciseLowCalories,
		ExerciseHighCalories:  cfg.ExerciseHighCalories,
		ExerciseFairBandRatio: cfg.ExerciseFairBandRatio,
	}

	var cache *service.SummaryCache
	if redisClient != nil {
		cache = service.NewSummaryCache(redisClient, time.Hour)
	}

	authService := service.NewAuthService(db, cfg.JWTSecret)
	entryService := service.NewEntryService(db, thresholds, cache)
	goalService := service.NewGoalService(db)

	engine := router.SetupRouter(
		api.NewAuthHandler(authService),
		api.NewEntryHandler(entryService),
		api.NewGoalHandler(goalService, entryService),
		api.NewDashboardHandler(entryService, thresholds, cache),
		authService,
		healthDB,
		redisClient,
		cfg.AllowedOrigins,
	)

	return &Server{
		engine:   engine,
		db:       db,
		healthDB: healthDB,
		redis:    redisClient,
		cfg:      cfg,
	}, nil
}

// Start runs the HTTP server until it fails or is shut down.
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:    s.cfg.ServerHost + ":" + s.cfg.ServerPort,
		Handler: s.engine,
	}

	log.Printf("Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			log.Printf("Redis close failed: %v", err)
		}
	}
	if s.healthDB != nil {
		if err := s.healthDB.Close(); err != nil {
			log.Printf("Database close failed: %v", err)
		}
	}
	if s.http != nil {
		return s.http.Shutdown(ctx)
	}
	return nil
}
