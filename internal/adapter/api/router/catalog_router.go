package router

import (
	"github.com/labstack/echo/v4"

	"baupanel/internal/adapter/api/handler"
	"baupanel/internal/adapter/api/middleware"
)

// SetupCatalogRouter initializes catalog entry routes
func SetupCatalogRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	catalogHandler := handler.GetCatalogHandler()

	catalog := e.Group("/v1/catalog")
	catalog.Use(authMiddleware.Authenticate)
	catalog.GET("/folders/:folderId/entries", catalogHandler.ListEntries)

	admin := e.Group("/v1/admin/catalog")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.POST("/entries", catalogHandler.CreateEntry)
	admin.DELETE("/entries/:id", catalogHandler.DeleteEntry)
}
