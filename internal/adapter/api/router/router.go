package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"baupanel/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	SetupFolderRouter(e, authMiddleware, adminMiddleware)
	SetupCatalogRouter(e, authMiddleware, adminMiddleware)
	SetupProjectRouter(e, authMiddleware, adminMiddleware)
	SetupCustomerRouter(e, authMiddleware, adminMiddleware)
	SetupGalleryRouter(e, authMiddleware, adminMiddleware)
}
