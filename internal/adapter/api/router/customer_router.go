package router

import (
	"github.com/labstack/echo/v4"

	"baupanel/internal/adapter/api/handler"
	"baupanel/internal/adapter/api/middleware"
)

// SetupCustomerRouter initializes customer routes (admin only)
func SetupCustomerRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	customerHandler := handler.GetCustomerHandler()

	admin := e.Group("/v1/admin/customers")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.POST("", customerHandler.CreateCustomer)
	admin.GET("", customerHandler.ListCustomers)
	admin.GET("/:id", customerHandler.GetCustomer)
	admin.DELETE("/:id", customerHandler.DeleteCustomer)
}
