package handler

import (
	"github.com/labstack/echo/v4"

	"baupanel/internal/usecase"
	"baupanel/pkg/errors"
	"baupanel/pkg/logger"
	"baupanel/pkg/response"
)

type GalleryHandler struct {
	galleryUseCase *usecase.GalleryUseCase
}

func NewGalleryHandler(galleryUseCase *usecase.GalleryUseCase) *GalleryHandler {
	return &GalleryHandler{
		galleryUseCase: galleryUseCase,
	}
}

func (h *GalleryHandler) UploadImage(c echo.Context) error {
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

	image, err := h.galleryUseCase.UploadImage(c.Request().Context(), usecase.UploadGalleryImageInput{
		Title:       c.FormValue("title"),
		File:        src,
		ContentType: file.Header.Get("Content-Type"),
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, image)
}

func (h *GalleryHandler) ListImages(c echo.Context) error {
	images, err := h.galleryUseCase.ListImages(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, images)
}

func (h *GalleryHandler) DeleteImage(c echo.Context) error {
	if err := h.galleryUseCase.DeleteImage(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message": "Gallery image deleted successfully",
	})
}
