package handler

import (
	"github.com/labstack/echo/v4"

	"baupanel/internal/usecase"
	"baupanel/pkg/errors"
	"baupanel/pkg/logger"
	"baupanel/pkg/response"
)

type CatalogHandler struct {
	catalogUseCase *usecase.CatalogUseCase
}

func NewCatalogHandler(catalogUseCase *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{
		catalogUseCase: catalogUseCase,
	}
}

func (h *CatalogHandler) CreateEntry(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("Missing or invalid file", err))
	}

	src, err := file.Open()
	if err != nil {
		logger.Error("Error opening uploaded file: %v", err)
		return response.Error(c, errors.Internal("Unable to read file", err))
	}
	defer src.Close()

	entry, err := h.catalogUseCase.CreateEntry(c.Request().Context(), usecase.CreateCatalogEntryInput{
		FolderID:    c.FormValue("folder_id"),
		Title:       c.FormValue("title"),
		File:        src,
		ContentType: file.Header.Get("Content-Type"),
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, entry)
}

func (h *CatalogHandler) ListEntries(c echo.Context) error {
	entries, err := h.catalogUseCase.ListEntries(c.Request().Context(), c.Param("folderId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, entries)
}

func (h *CatalogHandler) DeleteEntry(c echo.Context) error {
	if err := h.catalogUseCase.DeleteEntry(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message": "Catalog entry deleted successfully",
	})
}
