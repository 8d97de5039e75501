package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"baupanel/internal/domain/entity"
	"baupanel/internal/domain/repository"
	"baupanel/pkg/errors"
)

type firestoreReportApprovalRepository struct {
	client *firestore.Client
}

func NewFirestoreReportApprovalRepository(client *firestore.Client) repository.ReportApprovalRepository {
	return &firestoreReportApprovalRepository{
		client: client,
	}
}

func (r *firestoreReportApprovalRepository) Create(ctx context.Context, approval *entity.ReportApproval) error {
	if approval.ID == "" {
		doc := r.client.Collection("report_approvals").NewDoc()
		approval.ID = doc.ID
	}
	if approval.CreatedAt.IsZero() {
		approval.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("report_approvals").Doc(approval.ID).Set(ctx, approval)
	if err != nil {
		return errors.Internal("Failed to create report approval", err)
	}

	return nil
}

func (r *firestoreReportApprovalRepository) ListByProject(ctx context.Context, projectID string) ([]*entity.ReportApproval, error) {
	return r.list(ctx, r.client.Collection("report_approvals").Where("projectId", "==", projectID))
}

func (r *firestoreReportApprovalRepository) ListByProjectAndFilePath(ctx context.Context, projectID, filePath string) ([]*entity.ReportApproval, error) {
	query := r.client.Collection("report_approvals").
		Where("projectId", "==", projectID).
		Where("filePath", "==", filePath)
	return r.list(ctx, query)
}

func (r *firestoreReportApprovalRepository) list(ctx context.Context, query firestore.Query) ([]*entity.ReportApproval, error) {
	iter := query.Documents(ctx)

	var approvals []*entity.ReportApproval
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate report approvals", err)
		}

		var approval entity.ReportApproval
		if err := doc.DataTo(&approval); err != nil {
			return nil, errors.Internal("Failed to parse report approval data", err)
		}
		approvals = append(approvals, &approval)
	}

	return approvals, nil
}

func (r *firestoreReportApprovalRepository) DeleteBatch(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	batch := r.client.Batch()
	for _, id := range ids {
		batch.Delete(r.client.Collection("report_approvals").Doc(id))
	}

	if _, err := batch.Commit(ctx); err != nil {
		return errors.Internal("Failed to batch delete report approvals", err)
	}

	return nil
}
