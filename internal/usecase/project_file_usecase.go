package usecase

import (
	"context"
	"io"
	"time"

	"baupanel/internal/domain/entity"
	"baupanel/internal/domain/repository"
	"baupanel/internal/domain/service"
	"baupanel/internal/domain/taxonomy"
	"baupanel/pkg/errors"
	"baupanel/pkg/logger"
)

type ProjectFileUseCase struct {
	fileRepo       repository.ProjectFileRepository
	projectRepo    repository.ProjectRepository
	readStatusRepo repository.FileReadStatusRepository
	approvalRepo   repository.ReportApprovalRepository
	fileStorage    service.FileStorageService
	cascade        *CascadeUseCase
}

func NewProjectFileUseCase(
	fileRepo repository.ProjectFileRepository,
	projectRepo repository.ProjectRepository,
	readStatusRepo repository.FileReadStatusRepository,
	approvalRepo repository.ReportApprovalRepository,
	fileStorage service.FileStorageService,
	cascade *CascadeUseCase,
) *ProjectFileUseCase {
	return &ProjectFileUseCase{
		fileRepo:       fileRepo,
		projectRepo:    projectRepo,
		readStatusRepo: readStatusRepo,
		approvalRepo:   approvalRepo,
		fileStorage:    fileStorage,
		cascade:        cascade,
	}
}

type UploadProjectFileInput struct {
	ProjectID   string
	FolderPath  string
	Filename    string
	File        io.Reader
	ContentType string
	UploadedBy  string
}

func (uc *ProjectFileUseCase) UploadFile(ctx context.Context, input UploadProjectFileInput) (*entity.ProjectFile, error) {
	if input.FolderPath == "" {
		input.FolderPath = taxonomy.DefaultPath()
	}
	if !taxonomy.IsValidPath(input.FolderPath) {
		return nil, errors.BadRequest("Unknown folder path", nil)
	}

	if _, err := uc.projectRepo.GetByID(ctx, input.ProjectID); err != nil {
		return nil, err
	}

	storageFolder := "projects/" + input.ProjectID + "/" + taxonomy.StorageKey(input.FolderPath)
	result, err := uc.fileStorage.Upload(ctx, input.File, input.ContentType, storageFolder)
	if err != nil {
		return nil, errors.Internal("Failed to upload file", err)
	}

	file := &entity.ProjectFile{
		ProjectID:   input.ProjectID,
		FolderPath:  input.FolderPath,
		Filename:    input.Filename,
		URL:         result.URL,
		ObjectName:  result.Name,
		Size:        result.Size,
		ContentType: input.ContentType,
		UploadedBy:  input.UploadedBy,
		CreatedAt:   time.Now(),
	}

	if err := uc.fileRepo.Create(ctx, file); err != nil {
		return nil, err
	}

	return file, nil
}

// DeleteFile removes a single file: asset payload best effort, metadata
// record, and both cross-reference collections for its (project, path) pair.
func (uc *ProjectFileUseCase) DeleteFile(ctx context.Context, projectID, folderPath, fileID string) error {
	if !taxonomy.IsValidPath(folderPath) {
		return errors.BadRequest("Unknown folder path", nil)
	}

	file, err := uc.fileRepo.GetByID(ctx, projectID, folderPath, fileID)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil
		}
		return err
	}

	if file.ObjectName != "" {
		outcome, err := uc.fileStorage.Destroy(ctx, file.ObjectName)
		if outcome == service.DeleteOutcomeFailed {
			logger.Warn("Asset cleanup failed for file %s (%s): %v", file.ID, file.ObjectName, err)
		}
	}

	if err := uc.fileRepo.Delete(ctx, projectID, folderPath, fileID); err != nil && !errors.IsNotFound(err) {
		return err
	}

	return uc.cascade.DeleteFileRelatedData(ctx, projectID, filePath(folderPath, file.Filename))
}

// MarkFileRead records that a customer opened a file.
func (uc *ProjectFileUseCase) MarkFileRead(ctx context.Context, projectID, customerID, folderPath, filename string) error {
	if !taxonomy.IsValidPath(folderPath) {
		return errors.BadRequest("Unknown folder path", nil)
	}
	if taxonomy.IsAdminOnly(folderPath) {
		return errors.Forbidden("This folder is not available", nil)
	}

	return uc.readStatusRepo.Create(ctx, &entity.FileReadStatus{
		ProjectID:  projectID,
		CustomerID: customerID,
		FilePath:   filePath(folderPath, filename),
		ReadAt:     time.Now(),
	})
}

// DecideReport records a customer's approval or rejection of a report file.
func (uc *ProjectFileUseCase) DecideReport(ctx context.Context, projectID, customerID, folderPath, filename, decision string) error {
	if decision != "approved" && decision != "rejected" {
		return errors.BadRequest("Decision must be approved or rejected", nil)
	}
	if !taxonomy.IsValidPath(folderPath) {
		return errors.BadRequest("Unknown folder path", nil)
	}

	return uc.approvalRepo.Create(ctx, &entity.ReportApproval{
		ProjectID:  projectID,
		CustomerID: customerID,
		FilePath:   filePath(folderPath, filename),
		Status:     decision,
		DecidedAt:  time.Now(),
		CreatedAt:  time.Now(),
	})
}

// filePath is the canonical identifier the cross-reference records key on.
func filePath(folderPath, filename string) string {
	return folderPath + "/" + filename
}
