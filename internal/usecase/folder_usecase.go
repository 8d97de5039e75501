package usecase

import (
	"context"
	"strings"
	"time"

	"baupanel/internal/domain/entity"
	"baupanel/internal/domain/repository"
	"baupanel/pkg/errors"
)

type FolderUseCase struct {
	folderRepo repository.FolderRepository
	cascade    *CascadeUseCase
}

func NewFolderUseCase(folderRepo repository.FolderRepository, cascade *CascadeUseCase) *FolderUseCase {
	return &FolderUseCase{
		folderRepo: folderRepo,
		cascade:    cascade,
	}
}

type CreateFolderInput struct {
	Name     string
	ParentID string
}

func (uc *FolderUseCase) CreateFolder(ctx context.Context, input CreateFolderInput) (*entity.Folder, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.BadRequest("Folder name is required", nil)
	}

	if input.ParentID != "" {
		if _, err := uc.folderRepo.GetByID(ctx, input.ParentID); err != nil {
			return nil, err
		}
	}

	// New folders are appended after their siblings; orders are never
	// compacted after a deletion.
	siblings, err := uc.folderRepo.CountByParent(ctx, input.ParentID)
	if err != nil {
		return nil, err
	}

	folder := &entity.Folder{
		Name:      name,
		ParentID:  input.ParentID,
		Order:     siblings,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := uc.folderRepo.Create(ctx, folder); err != nil {
		return nil, err
	}

	return folder, nil
}

func (uc *FolderUseCase) GetFolder(ctx context.Context, id string) (*entity.Folder, error) {
	return uc.folderRepo.GetByID(ctx, id)
}

func (uc *FolderUseCase) ListChildren(ctx context.Context, parentID string) ([]*entity.Folder, error) {
	return uc.folderRepo.ListByParent(ctx, parentID)
}

func (uc *FolderUseCase) RenameFolder(ctx context.Context, id, name string) (*entity.Folder, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.BadRequest("Folder name is required", nil)
	}

	folder, err := uc.folderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	folder.Name = name
	folder.UpdatedAt = time.Now()

	if err := uc.folderRepo.Update(ctx, folder); err != nil {
		return nil, err
	}

	return folder, nil
}

// DeleteFolder removes the folder and its whole subtree, entries included.
func (uc *FolderUseCase) DeleteFolder(ctx context.Context, id string) error {
	return uc.cascade.DeleteFolderCascade(ctx, id)
}
