package route

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/moodtunes/moodtunes-backend/api/middleware"
	"github.com/moodtunes/moodtunes-backend/bootstrap"
	"github.com/moodtunes/moodtunes-backend/mongo"
)

func Setup(env *bootstrap.Env, timeout time.Duration, db mongo.Database, engine *gin.Engine) {
	if env.CORSOrigin != "" {
		engine.Use(corsMiddleware(env.CORSOrigin))
	}

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	publicRouter := engine.Group("/api")
	optionalRouter := engine.Group("/api")
	optionalRouter.Use(middleware.OptionalJwtAuthMiddleware(env.AccessTokenSecret))
	protectedRouter := engine.Group("/api")
	protectedRouter.Use(middleware.JwtAuthMiddleware(env.AccessTokenSecret))

	NewAuthRouter(env, timeout, db, publicRouter, protectedRouter)
	NewSongRouter(env, timeout, db, optionalRouter, protectedRouter)
	NewPlaylistRouter(timeout, db, optionalRouter, protectedRouter)
	NewMoodRouter(timeout, db, protectedRouter)
	NewGameRouter(timeout, db, protectedRouter)
	NewAnalyticsRouter(timeout, db, protectedRouter)
}

func corsMiddleware(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
