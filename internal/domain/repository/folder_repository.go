package repository

import (
	"context"

	"baupanel/internal/domain/entity"
)

type FolderRepository interface {
	Create(ctx context.Context, folder *entity.Folder) error
	GetByID(ctx context.Context, id string) (*entity.Folder, error)
	ListByParent(ctx context.Context, parentID string) ([]*entity.Folder, error)
	CountByParent(ctx context.Context, parentID string) (int, error)
	Update(ctx context.Context, folder *entity.Folder) error
	Delete(ctx context.Context, id string) error
}
