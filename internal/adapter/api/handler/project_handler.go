package handler

import (
	"github.com/labstack/echo/v4"

	"baupanel/internal/usecase"
	"baupanel/pkg/response"
	"baupanel/pkg/utils"
)

type ProjectHandler struct {
	projectUseCase *usecase.ProjectUseCase
}

func NewProjectHandler(projectUseCase *usecase.ProjectUseCase) *ProjectHandler {
	return &ProjectHandler{
		projectUseCase: projectUseCase,
	}
}

type createProjectRequest struct {
	Name       string `json:"name" validate:"required"`
	CustomerID string `json:"customer_id" validate:"required"`
	Address    string `json:"address"`
}

type updateProjectRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

func (h *ProjectHandler) CreateProject(c echo.Context) error {
	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	project, err := h.projectUseCase.CreateProject(c.Request().Context(), usecase.CreateProjectInput{
		Name:       req.Name,
		CustomerID: req.CustomerID,
		Address:    req.Address,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, project)
}

func (h *ProjectHandler) GetProject(c echo.Context) error {
	project, err := h.projectUseCase.GetProject(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, project)
}

func (h *ProjectHandler) ListProjects(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	projects, total, err := h.projectUseCase.ListProjects(c.Request().Context(), pagination.Page, pagination.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, projects, total, pagination.Page, pagination.PageSize)
}

func (h *ProjectHandler) UpdateProject(c echo.Context) error {
	var req updateProjectRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	project, err := h.projectUseCase.UpdateProject(c.Request().Context(), c.Param("id"), usecase.CreateProjectInput{
		Name:    req.Name,
		Address: req.Address,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, project)
}

func (h *ProjectHandler) DeleteProject(c echo.Context) error {
	if err := h.projectUseCase.DeleteProject(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message": "Project and all related data deleted successfully",
	})
}

func (h *ProjectHandler) ListFolderPaths(c echo.Context) error {
	isAdmin, _ := c.Get("isAdmin").(bool)
	return response.Success(c, h.projectUseCase.FolderPaths(isAdmin))
}

func (h *ProjectHandler) ListFolder(c echo.Context) error {
	isAdmin, _ := c.Get("isAdmin").(bool)

	listing, err := h.projectUseCase.ListFolder(
		c.Request().Context(),
		c.Param("id"),
		c.QueryParam("path"),
		isAdmin,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listing)
}
