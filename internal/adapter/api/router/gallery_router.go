package router

import (
	"github.com/labstack/echo/v4"

	"baupanel/internal/adapter/api/handler"
	"baupanel/internal/adapter/api/middleware"
)

// SetupGalleryRouter initializes gallery routes
func SetupGalleryRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	galleryHandler := handler.GetGalleryHandler()

	// Public listing
	e.GET("/v1/gallery", galleryHandler.ListImages)

	admin := e.Group("/v1/admin/gallery")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.POST("", galleryHandler.UploadImage)
	admin.DELETE("/:id", galleryHandler.DeleteImage)
}
