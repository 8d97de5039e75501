package handler

import (
	"github.com/labstack/echo/v4"

	"baupanel/internal/usecase"
	"baupanel/pkg/response"
)

type FolderHandler struct {
	folderUseCase *usecase.FolderUseCase
}

func NewFolderHandler(folderUseCase *usecase.FolderUseCase) *FolderHandler {
	return &FolderHandler{
		folderUseCase: folderUseCase,
	}
}

type createFolderRequest struct {
	Name     string `json:"name" validate:"required"`
	ParentID string `json:"parent_id"`
}

type renameFolderRequest struct {
	Name string `json:"name" validate:"required"`
}

func (h *FolderHandler) CreateFolder(c echo.Context) error {
	var req createFolderRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	folder, err := h.folderUseCase.CreateFolder(c.Request().Context(), usecase.CreateFolderInput{
		Name:     req.Name,
		ParentID: req.ParentID,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, folder)
}

func (h *FolderHandler) GetFolder(c echo.Context) error {
	folder, err := h.folderUseCase.GetFolder(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, folder)
}

func (h *FolderHandler) ListChildren(c echo.Context) error {
	folders, err := h.folderUseCase.ListChildren(c.Request().Context(), c.QueryParam("parent_id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, folders)
}

func (h *FolderHandler) RenameFolder(c echo.Context) error {
	var req renameFolderRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	folder, err := h.folderUseCase.RenameFolder(c.Request().Context(), c.Param("id"), req.Name)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, folder)
}

func (h *FolderHandler) DeleteFolder(c echo.Context) error {
	if err := h.folderUseCase.DeleteFolder(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message": "Folder and its contents deleted successfully",
	})
}
