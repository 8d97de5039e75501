package repository

import (
	"context"

	"baupanel/internal/domain/entity"
)

// ProjectFileRepository addresses the per-(project, folder) file collections.
// Implementations derive the concrete collection from the folder path's
// flattened storage key.
type ProjectFileRepository interface {
	Create(ctx context.Context, file *entity.ProjectFile) error
	GetByID(ctx context.Context, projectID, folderPath, id string) (*entity.ProjectFile, error)
	ListByPath(ctx context.Context, projectID, folderPath string) ([]*entity.ProjectFile, error)
	Delete(ctx context.Context, projectID, folderPath, id string) error
}
