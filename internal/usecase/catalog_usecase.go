package usecase

import (
	"context"
	"io"
	"strings"
	"time"

	"baupanel/internal/domain/entity"
	"baupanel/internal/domain/repository"
	"baupanel/internal/domain/service"
	"baupanel/pkg/errors"
	"baupanel/pkg/logger"
)

type CatalogUseCase struct {
	entryRepo   repository.CatalogEntryRepository
	folderRepo  repository.FolderRepository
	fileStorage service.FileStorageService
}

func NewCatalogUseCase(
	entryRepo repository.CatalogEntryRepository,
	folderRepo repository.FolderRepository,
	fileStorage service.FileStorageService,
) *CatalogUseCase {
	return &CatalogUseCase{
		entryRepo:   entryRepo,
		folderRepo:  folderRepo,
		fileStorage: fileStorage,
	}
}

type CreateCatalogEntryInput struct {
	FolderID    string
	Title       string
	File        io.Reader
	ContentType string
}

func (uc *CatalogUseCase) CreateEntry(ctx context.Context, input CreateCatalogEntryInput) (*entity.CatalogEntry, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, errors.BadRequest("Entry title is required", nil)
	}
	if input.ContentType != "application/pdf" {
		return nil, errors.BadRequest("Catalog entries must be PDF documents", nil)
	}

	if _, err := uc.folderRepo.GetByID(ctx, input.FolderID); err != nil {
		return nil, err
	}

	result, err := uc.fileStorage.Upload(ctx, input.File, input.ContentType, "catalog/"+input.FolderID)
	if err != nil {
		return nil, errors.Internal("Failed to upload catalog document", err)
	}

	siblings, err := uc.entryRepo.CountByFolder(ctx, input.FolderID)
	if err != nil {
		return nil, err
	}

	entry := &entity.CatalogEntry{
		FolderID:   input.FolderID,
		Title:      title,
		FileURL:    result.URL,
		ObjectName: result.Name,
		Order:      siblings,
		CreatedAt:  time.Now(),
	}

	if err := uc.entryRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

func (uc *CatalogUseCase) ListEntries(ctx context.Context, folderID string) ([]*entity.CatalogEntry, error) {
	return uc.entryRepo.ListByFolder(ctx, folderID)
}

// DeleteEntry is the explicit per-entry deletion path: it attempts the
// asset-store cleanup the folder cascade deliberately skips, then removes
// the metadata record.
func (uc *CatalogUseCase) DeleteEntry(ctx context.Context, id string) error {
	entry, err := uc.entryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil
		}
		return err
	}

	if entry.ObjectName != "" {
		outcome, err := uc.fileStorage.Destroy(ctx, entry.ObjectName)
		if outcome == service.DeleteOutcomeFailed {
			logger.Warn("Asset cleanup failed for catalog entry %s (%s): %v", entry.ID, entry.ObjectName, err)
		}
	}

	return uc.entryRepo.Delete(ctx, id)
}
