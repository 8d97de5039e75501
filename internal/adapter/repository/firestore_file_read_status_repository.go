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

type firestoreFileReadStatusRepository struct {
	client *firestore.Client
}

func NewFirestoreFileReadStatusRepository(client *firestore.Client) repository.FileReadStatusRepository {
	return &firestoreFileReadStatusRepository{
		client: client,
	}
}

func (r *firestoreFileReadStatusRepository) Create(ctx context.Context, readStatus *entity.FileReadStatus) error {
	if readStatus.ID == "" {
		doc := r.client.Collection("file_read_statuses").NewDoc()
		readStatus.ID = doc.ID
	}
	if readStatus.ReadAt.IsZero() {
		readStatus.ReadAt = time.Now()
	}

	_, err := r.client.Collection("file_read_statuses").Doc(readStatus.ID).Set(ctx, readStatus)
	if err != nil {
		return errors.Internal("Failed to create file read status", err)
	}

	return nil
}

func (r *firestoreFileReadStatusRepository) ListByProject(ctx context.Context, projectID string) ([]*entity.FileReadStatus, error) {
	return r.list(ctx, r.client.Collection("file_read_statuses").Where("projectId", "==", projectID))
}

func (r *firestoreFileReadStatusRepository) ListByProjectAndFilePath(ctx context.Context, projectID, filePath string) ([]*entity.FileReadStatus, error) {
	query := r.client.Collection("file_read_statuses").
		Where("projectId", "==", projectID).
		Where("filePath", "==", filePath)
	return r.list(ctx, query)
}

func (r *firestoreFileReadStatusRepository) list(ctx context.Context, query firestore.Query) ([]*entity.FileReadStatus, error) {
	iter := query.Documents(ctx)

	var statuses []*entity.FileReadStatus
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate file read statuses", err)
		}

		var readStatus entity.FileReadStatus
		if err := doc.DataTo(&readStatus); err != nil {
			return nil, errors.Internal("Failed to parse file read status data", err)
		}
		statuses = append(statuses, &readStatus)
	}

	return statuses, nil
}

func (r *firestoreFileReadStatusRepository) DeleteBatch(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	batch := r.client.Batch()
	for _, id := range ids {
		batch.Delete(r.client.Collection("file_read_statuses").Doc(id))
	}

	if _, err := batch.Commit(ctx); err != nil {
		return errors.Internal("Failed to batch delete file read statuses", err)
	}

	return nil
}
