package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"baupanel/internal/domain/entity"
	"baupanel/internal/domain/repository"
	"baupanel/pkg/errors"
)

type firestoreFolderRepository struct {
	client *firestore.Client
}

func NewFirestoreFolderRepository(client *firestore.Client) repository.FolderRepository {
	return &firestoreFolderRepository{
		client: client,
	}
}

func (r *firestoreFolderRepository) Create(ctx context.Context, folder *entity.Folder) error {
	if folder.ID == "" {
		doc := r.client.Collection("folders").NewDoc()
		folder.ID = doc.ID
	}

	now := time.Now()
	if folder.CreatedAt.IsZero() {
		folder.CreatedAt = now
	}
	folder.UpdatedAt = now

	_, err := r.client.Collection("folders").Doc(folder.ID).Set(ctx, folder)
	if err != nil {
		return errors.Internal("Failed to create folder", err)
	}

	return nil
}

func (r *firestoreFolderRepository) GetByID(ctx context.Context, id string) (*entity.Folder, error) {
	doc, err := r.client.Collection("folders").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Folder", err)
		}
		return nil, errors.Internal("Failed to get folder", err)
	}

	var folder entity.Folder
	if err := doc.DataTo(&folder); err != nil {
		return nil, errors.Internal("Failed to parse folder data", err)
	}

	return &folder, nil
}

func (r *firestoreFolderRepository) ListByParent(ctx context.Context, parentID string) ([]*entity.Folder, error) {
	iter := r.client.Collection("folders").Where("parentId", "==", parentID).Documents(ctx)

	var folders []*entity.Folder
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate folders", err)
		}

		var folder entity.Folder
		if err := doc.DataTo(&folder); err != nil {
			return nil, errors.Internal("Failed to parse folder data", err)
		}
		folders = append(folders, &folder)
	}

	return folders, nil
}

func (r *firestoreFolderRepository) CountByParent(ctx context.Context, parentID string) (int, error) {
	docs, err := r.client.Collection("folders").Where("parentId", "==", parentID).Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to count folders", err)
	}
	return len(docs), nil
}

func (r *firestoreFolderRepository) Update(ctx context.Context, folder *entity.Folder) error {
	folder.UpdatedAt = time.Now()

	_, err := r.client.Collection("folders").Doc(folder.ID).Set(ctx, folder)
	if err != nil {
		return errors.Internal("Failed to update folder", err)
	}

	return nil
}

func (r *firestoreFolderRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("folders").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete folder", err)
	}

	return nil
}
