package repository

import (
	"context"

	"baupanel/internal/domain/entity"
)

type ReportApprovalRepository interface {
	Create(ctx context.Context, approval *entity.ReportApproval) error
	ListByProject(ctx context.Context, projectID string) ([]*entity.ReportApproval, error)
	ListByProjectAndFilePath(ctx context.Context, projectID, filePath string) ([]*entity.ReportApproval, error)
	// DeleteBatch removes the given records as a single atomic write.
	DeleteBatch(ctx context.Context, ids []string) error
}
