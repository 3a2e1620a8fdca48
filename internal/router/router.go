package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/vitalog-app/backend/internal/api"
	"github.com/vitalog-app/backend/internal/database"
	"github.com/vitalog-app/backend/internal/middleware"
	"github.com/vitalog-app/backend/internal/service"
)

// SetupRouter configures the application routes
func SetupRouter(
	authHandler *api.AuthHandler,
	entryHandler *api.EntryHandler,
	goalHandler *api.GoalHandler,
	dashboardHandler *api.DashboardHandler,
	authService service.IAuthService,
	healthDB *database.DB,
	redisClient *redis.Client,
	allowedOrigins []string,
) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORS(allowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		if healthDB != nil {
			if err := healthDB.HealthCheck(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	v1 := router.Group("/api/v1")

	// Auth routes are public
	authHandler.RegisterRoutes(v1)

	// Everything else requires a valid token
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authService))

	entryGroup := protected.Group("")
	goalGroup := protected.Group("")
	if redisClient != nil {
		entryGroup.Use(middleware.NewEntryWriteRateLimiter(redisClient).RateLimitMiddleware())
		goalGroup.Use(middleware.NewGoalWriteRateLimiter(redisClient).RateLimitMiddleware())
	}

	entryHandler.RegisterRoutes(entryGroup)
	goalHandler.RegisterRoutes(goalGroup)
	dashboardHandler.RegisterRoutes(protected)

	return router
}
