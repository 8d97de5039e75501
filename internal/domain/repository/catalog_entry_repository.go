package repository

import (
	"context"

	"baupanel/internal/domain/entity"
)

type CatalogEntryRepository interface {
	Create(ctx context.Context, entry *entity.CatalogEntry) error
	GetByID(ctx context.Context, id string) (*entity.CatalogEntry, error)
	ListByFolder(ctx context.Context, folderID string) ([]*entity.CatalogEntry, error)
	CountByFolder(ctx context.Context, folderID string) (int, error)
	Update(ctx context.Context, entry *entity.CatalogEntry) error
	Delete(ctx context.Context, id string) error
	// DeleteBatch removes the given entries as a single atomic write.
	DeleteBatch(ctx context.Context, ids []string) error
}
