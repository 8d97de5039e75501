package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"baupanel/internal/usecase"
	"baupanel/pkg/errors"
	"baupanel/pkg/logger"
	"baupanel/pkg/response"
)

type ProjectFileHandler struct {
	projectFileUseCase *usecase.ProjectFileUseCase
	maxFileSize        int64
}

func NewProjectFileHandler(projectFileUseCase *usecase.ProjectFileUseCase, maxUploadSizeMB int64) *ProjectFileHandler {
	return &ProjectFileHandler{
		projectFileUseCase: projectFileUseCase,
		maxFileSize:        maxUploadSizeMB * 1024 * 1024,
	}
}

func (h *ProjectFileHandler) UploadFile(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("Missing or invalid file", err))
	}

	if file.Size > h.maxFileSize {
		return response.Error(c, errors.BadRequest(fmt.Sprintf("File size exceeds maximum allowed (%dMB)", h.maxFileSize/(1024*1024)), nil))
	}

	fileType := file.Header.Get("Content-Type")
	if !isAllowedFileType(fileType) {
		return response.Error(c, errors.BadRequest("File type not supported", nil))
	}

	src, err := file.Open()
	if err != nil {
		logger.Error("Error opening uploaded file: %v", err)
		return response.Error(c, errors.Internal("Unable to read file", err))
	}
	defer src.Close()

	uid, _ := c.Get("uid").(string)

	uploaded, err := h.projectFileUseCase.UploadFile(c.Request().Context(), usecase.UploadProjectFileInput{
		ProjectID:   c.Param("id"),
		FolderPath:  c.FormValue("path"),
		Filename:    file.Filename,
		File:        src,
		ContentType: fileType,
		UploadedBy:  uid,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, uploaded)
}

func (h *ProjectFileHandler) DeleteFile(c echo.Context) error {
	err := h.projectFileUseCase.DeleteFile(
		c.Request().Context(),
		c.Param("id"),
		c.QueryParam("path"),
		c.Param("fileId"),
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message": "File deleted successfully",
	})
}

type markReadRequest struct {
	Path     string `json:"path" validate:"required"`
	Filename string `json:"filename" validate:"required"`
}

func (h *ProjectFileHandler) MarkFileRead(c echo.Context) error {
	var req markReadRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid, _ := c.Get("uid").(string)

	if err := h.projectFileUseCase.MarkFileRead(c.Request().Context(), c.Param("id"), uid, req.Path, req.Filename); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message": "File marked as read",
	})
}

type decideReportRequest struct {
	Path     string `json:"path" validate:"required"`
	Filename string `json:"filename" validate:"required"`
	Decision string `json:"decision" validate:"required,oneof=approved rejected"`
}

func (h *ProjectFileHandler) DecideReport(c echo.Context) error {
	var req decideReportRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid, _ := c.Get("uid").(string)

	if err := h.projectFileUseCase.DecideReport(c.Request().Context(), c.Param("id"), uid, req.Path, req.Filename, req.Decision); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message": "Report decision recorded",
	})
}

func isAllowedFileType(fileType string) bool {
	switch fileType {
	case "image/jpeg", "image/jpg", "image/png", "application/pdf":
		return true
	}
	return false
}
