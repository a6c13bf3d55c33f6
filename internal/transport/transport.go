package transport

import (
	"github.com/gin-gonic/gin"

	"github.com/grandmixture/profile-card/internal/transport/middleware"
)

func InitRoutes(profileHandler *ProfileHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())

	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	router.GET("/outfit-image", profileHandler.OutfitImage)
	router.GET("/character-info", profileHandler.CharacterInfo)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "profile-card-service",
		})
	})
	return router
}
