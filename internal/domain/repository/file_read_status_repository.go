package repository

import (
	"context"

	"baupanel/internal/domain/entity"
)

type FileReadStatusRepository interface {
	Create(ctx context.Context, status *entity.FileReadStatus) error
	ListByProject(ctx context.Context, projectID string) ([]*entity.FileReadStatus, error)
	ListByProjectAndFilePath(ctx context.Context, projectID, filePath string) ([]*entity.FileReadStatus, error)
	// DeleteBatch removes the given records as a single atomic write.
	DeleteBatch(ctx context.Context, ids []string) error
}
