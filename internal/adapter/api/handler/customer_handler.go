package handler

import (
	"github.com/labstack/echo/v4"

	"baupanel/internal/usecase"
	"baupanel/pkg/response"
	"baupanel/pkg/utils"
)

type CustomerHandler struct {
	customerUseCase *usecase.CustomerUseCase
}

func NewCustomerHandler(customerUseCase *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{
		customerUseCase: customerUseCase,
	}
}

type createCustomerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
}

func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	var req createCustomerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	customer, err := h.customerUseCase.CreateCustomer(c.Request().Context(), usecase.CreateCustomerInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, customer)
}

func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	customer, err := h.customerUseCase.GetCustomer(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, customer)
}

func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	customers, total, err := h.customerUseCase.ListCustomers(c.Request().Context(), pagination.Page, pagination.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, customers, total, pagination.Page, pagination.PageSize)
}

func (h *CustomerHandler) DeleteCustomer(c echo.Context) error {
	if err := h.customerUseCase.DeleteCustomer(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message": "Customer and all related data deleted successfully",
	})
}
