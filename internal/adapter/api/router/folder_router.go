package router

import (
	"github.com/labstack/echo/v4"

	"baupanel/internal/adapter/api/handler"
	"baupanel/internal/adapter/api/middleware"
)

// SetupFolderRouter initializes catalog folder routes
func SetupFolderRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	folderHandler := handler.GetFolderHandler()

	// Authenticated read routes
	folders := e.Group("/v1/folders")
	folders.Use(authMiddleware.Authenticate)
	folders.GET("", folderHandler.ListChildren)
	folders.GET("/:id", folderHandler.GetFolder)

	// Admin routes
	admin := e.Group("/v1/admin/folders")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.POST("", folderHandler.CreateFolder)
	admin.PUT("/:id", folderHandler.RenameFolder)
	admin.DELETE("/:id", folderHandler.DeleteFolder)
}
