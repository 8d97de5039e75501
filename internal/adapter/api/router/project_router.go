package router

import (
	"github.com/labstack/echo/v4"

	"baupanel/internal/adapter/api/handler"
	"baupanel/internal/adapter/api/middleware"
)

// SetupProjectRouter initializes project and project file routes
func SetupProjectRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	projectHandler := handler.GetProjectHandler()
	projectFileHandler := handler.GetProjectFileHandler()

	// Customer-facing routes: browse visible folders, mark files read,
	// decide on reports
	projects := e.Group("/v1/projects")
	projects.Use(authMiddleware.Authenticate)
	projects.GET("/:id", projectHandler.GetProject)
	projects.GET("/:id/folders", projectHandler.ListFolderPaths)
	projects.GET("/:id/files", projectHandler.ListFolder)
	projects.POST("/:id/files/read", projectFileHandler.MarkFileRead)
	projects.POST("/:id/reports/decision", projectFileHandler.DecideReport)

	// Admin routes
	admin := e.Group("/v1/admin/projects")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.POST("", projectHandler.CreateProject)
	admin.GET("", projectHandler.ListProjects)
	admin.GET("/:id/folders", projectHandler.ListFolderPaths)
	admin.GET("/:id/files", projectHandler.ListFolder)
	admin.PUT("/:id", projectHandler.UpdateProject)
	admin.DELETE("/:id", projectHandler.DeleteProject)
	admin.POST("/:id/files", projectFileHandler.UploadFile)
	admin.DELETE("/:id/files/:fileId", projectFileHandler.DeleteFile)
}
