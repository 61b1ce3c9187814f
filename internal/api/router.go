package api

import (
	"github.com/gin-gonic/gin"

	"github.com/propden/backend-go/internal/config"
	"github.com/propden/backend-go/internal/handler"
	"github.com/propden/backend-go/internal/middleware"
)

func SetupRouter(
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	propertyHandler *handler.PropertyHandler,
	listingHandler *handler.ListingHandler,
	authMiddleware *middleware.AuthMiddleware,
) *gin.Engine {
	r := gin.Default()
	r.SetTrustedProxies(nil)

	r.Use(middleware.RequestID())
	r.Use(middleware.CORS(cfg))
	r.Use(middleware.BodySizeLimit())

	// Public routes
	r.GET("/api/v1/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// User routes
	userGroup := r.Group("/api/v1/user")
	{
		userGroup.POST("/register", authHandler.Register)
		userGroup.POST("/login", authHandler.Login)
		userGroup.POST("/logout", authMiddleware.RequireAuth(), authHandler.Logout)
	}

	// Property routes (all protected)
	propertyGroup := r.Group("/api/v1/property")
	propertyGroup.Use(authMiddleware.RequireAuth())
	{
		propertyGroup.POST("", propertyHandler.Create)
		propertyGroup.GET("/nearby", propertyHandler.Nearby)
		propertyGroup.GET("/:id", propertyHandler.GetByID)
		propertyGroup.PUT("/:id", propertyHandler.Update)
		propertyGroup.DELETE("/:id", propertyHandler.Delete)
	}

	// Listing routes (all protected)
	listingGroup := r.Group("/api/v1/listing")
	listingGroup.Use(authMiddleware.RequireAuth())
	{
		listingGroup.POST("", listingHandler.Create)
		listingGroup.GET("", listingHandler.GetAll)
		listingGroup.GET("/seller/:sellerId", listingHandler.GetBySeller)
		listingGroup.GET("/:id", listingHandler.GetByID)
		listingGroup.PUT("/:id", listingHandler.Update)
		listingGroup.DELETE("/:id", listingHandler.Delete)
	}

	return r
}
