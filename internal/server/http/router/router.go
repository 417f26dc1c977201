package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/maropko/parceltrack/internal/server/http/dto"
	"github.com/maropko/parceltrack/internal/server/http/handlers"
	"github.com/maropko/parceltrack/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.ShipmentFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	validate := dto.NewValidator()
	trackHandler := handlers.NewTrackHandler(facade)
	authHandler := handlers.NewAuthHandler(facade, validate)
	adminHandler := handlers.NewAdminHandler(facade, validate)
	orderHandler := handlers.NewOrderHandler(facade, validate)
	trackingHandler := handlers.NewTrackingHandler(facade, validate)

	api := engine.Group("/api")
	api.GET("/track/:trackingNumber", trackHandler.Lookup)

	admin := api.Group("/admin")
	admin.POST("/login", authHandler.Login)

	adminAuth := admin.Group("")
	adminAuth.Use(middleware.AuthRequired(facade))
	adminAuth.GET("/stats", orderHandler.Stats)
	adminAuth.POST("/users", adminHandler.Create)
	adminAuth.GET("/users", adminHandler.List)
	adminAuth.GET("/users/:id", adminHandler.Get)
	adminAuth.PUT("/users/:id", adminHandler.Update)
	adminAuth.DELETE("/users/:id", adminHandler.Delete)

	orders := api.Group("/orders")
	orders.Use(middleware.AuthRequired(facade))
	orders.POST("", orderHandler.Create)
	orders.GET("", orderHandler.List)
	orders.GET("/:id", orderHandler.Get)
	orders.PUT("/:id", orderHandler.Update)
	orders.DELETE("/:id", orderHandler.Delete)

	tracking := api.Group("/tracking")
	tracking.Use(middleware.AuthRequired(facade))
	tracking.POST("", trackingHandler.Add)

	return engine
}
